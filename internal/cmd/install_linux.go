//go:build linux

package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

const (
	serviceName = "padservo.service"
	servicePath = "/etc/systemd/system/padservo.service"
)

func install(logger *slog.Logger, runConfig string) error {
	exePath, err := currentExecutable()
	if err != nil {
		return err
	}
	if runConfig != "" {
		if _, err := os.Stat(runConfig); err != nil {
			return fmt.Errorf("run config: %w", err)
		}
	}

	unit := systemdUnitContent(exePath, runConfig)
	if err := os.WriteFile(servicePath, []byte(unit), 0o644); err != nil {
		return err
	}

	for _, args := range [][]string{
		{"daemon-reload"},
		{"enable", serviceName},
		{"restart", serviceName},
	} {
		if err := runSystemctl(args...); err != nil {
			return err
		}
	}

	logger.Info("padservo service installed", "path", servicePath, "exe", exePath, "config", runConfig)
	return nil
}

func uninstall(logger *slog.Logger) error {
	var errs []error
	for _, args := range [][]string{
		{"stop", serviceName},
		{"disable", serviceName},
	} {
		if err := runSystemctl(args...); err != nil {
			errs = append(errs, err)
		}
	}
	if err := os.Remove(servicePath); err != nil && !os.IsNotExist(err) {
		errs = append(errs, err)
	}
	if err := runSystemctl("daemon-reload"); err != nil {
		errs = append(errs, err)
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	logger.Info("padservo service removed", "path", servicePath)
	return nil
}

// systemdUnitContent renders the unit. The service waits for bluetooth so
// paired controllers show up as joystick nodes.
func systemdUnitContent(exePath, runConfig string) string {
	start := fmt.Sprintf("%q run", exePath)
	if runConfig != "" {
		start += fmt.Sprintf(" --config %q", runConfig)
	}
	return fmt.Sprintf(`[Unit]
Description=padservo controller dispatch
After=bluetooth.target
Wants=bluetooth.target

[Service]
Type=simple
ExecStart=%s
WorkingDirectory=%s
Restart=on-failure

[Install]
WantedBy=multi-user.target
`, start, filepath.Dir(exePath))
}

func currentExecutable() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.EvalSymlinks(exe)
}

func runSystemctl(args ...string) error {
	cmd := exec.Command("systemctl", args...)
	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("systemctl %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(string(output)))
	}
	return nil
}
