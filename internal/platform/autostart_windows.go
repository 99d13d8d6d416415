//go:build windows

package platform

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"
	"syscall"
)

const runKey = `HKCU\Software\Microsoft\Windows\CurrentVersion\Run`

func (service *platformService) EnableAutostart(appName string, launch LaunchCommand) error {
	if err := launch.validate(appName); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	if err := reg("add", runKey, "/v", appName, "/t", "REG_SZ", "/d", runValue(launch), "/f"); err != nil {
		return fmt.Errorf("enable autostart: %w", err)
	}
	return nil
}

func (service *platformService) DisableAutostart(appName string) error {
	if strings.TrimSpace(appName) == "" {
		return fmt.Errorf("disable autostart: %w", errEmptyAppName)
	}
	if err := reg("delete", runKey, "/v", appName, "/f"); err != nil {
		return fmt.Errorf("disable autostart: %w", err)
	}
	return nil
}

func fallbackConfigDir(homeDir string) string {
	return filepath.Join(homeDir, "AppData", "Roaming")
}

func reg(args ...string) error {
	output, err := exec.Command("reg", args...).CombinedOutput()
	if err != nil {
		return fmt.Errorf("reg %s: %w: %s", args[0], err, strings.TrimSpace(string(output)))
	}
	return nil
}

// runValue builds the Run key command line. The executable is always
// quoted; arguments use CommandLineToArgvW escaping.
func runValue(launch LaunchCommand) string {
	parts := []string{`"` + strings.Trim(launch.Path, `"`) + `"`}
	for _, arg := range launch.Args {
		parts = append(parts, syscall.EscapeArg(arg))
	}
	return strings.Join(parts, " ")
}
