package cmd

import "log/slog"

// ServiceCommand manages the boot-time service that runs the dispatch loop.
type ServiceCommand struct {
	Install   ServiceInstall   `cmd:"" help:"Install and start the padservo service"`
	Uninstall ServiceUninstall `cmd:"" help:"Stop and remove the padservo service"`
}

type ServiceInstall struct {
	RunConfig string `help:"Configuration file passed to 'padservo run'" type:"path" name:"run-config"`
}

func (s *ServiceInstall) Run(logger *slog.Logger) error {
	return install(logger, s.RunConfig)
}

type ServiceUninstall struct{}

func (s *ServiceUninstall) Run(logger *slog.Logger) error {
	return uninstall(logger)
}
