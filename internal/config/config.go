// Package config defines the CLI structure and configuration for PADSERVO.
package config

import (
	"github.com/padservo/padservo/internal/cmd"
)

type Log struct {
	Level            string `help:"Log level: trace, debug, info, warn, error" default:"info" env:"PADSERVO_LOG_LEVEL"`
	File             string `help:"Log file path (default: none; logs only to console)" env:"PADSERVO_LOG_FILE"`
	ReportFile       string `help:"Controller report file path (default: stdout at trace level, otherwise none)" env:"PADSERVO_LOG_REPORT_FILE"`
	ReportTimestamps bool   `help:"Prefix controller report lines with the wall clock time" env:"PADSERVO_LOG_REPORT_TIMESTAMPS"`
}

// CLI is the root command structure for Kong CLI parsing.
type CLI struct {
	Log    `embed:"" prefix:"log."`
	Config string `help:"Configuration file to load before the default locations" type:"path" env:"PADSERVO_CONFIG"`

	Run       cmd.Run            `cmd:"" default:"withargs" help:"Start the controller dispatch loop"`
	ConfigCmd cmd.ConfigCommand  `cmd:"" name:"config" help:"Configuration helpers"`
	Keys      cmd.Keys           `cmd:"" help:"List keyboard key names and gamepad button names"`
	Service   cmd.ServiceCommand `cmd:"" help:"Manage the boot-time service"`
}
