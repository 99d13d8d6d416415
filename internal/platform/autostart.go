package platform

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

var (
	errEmptyAppName  = errors.New("app name is empty")
	errEmptyExecPath = errors.New("exec path is empty")
)

// Service defines OS-specific helpers needed by the application.
type Service interface {
	GetConfigDir() (string, error)
	EnableAutostart(appName string, launch LaunchCommand) error
	DisableAutostart(appName string) error
}

// LaunchCommand is what the login item runs.
type LaunchCommand struct {
	Path string
	Args []string
}

// Argv returns the executable followed by its arguments.
func (launch LaunchCommand) Argv() []string {
	return append([]string{launch.Path}, launch.Args...)
}

func (launch LaunchCommand) validate(appName string) error {
	if strings.TrimSpace(appName) == "" {
		return errEmptyAppName
	}
	if launch.Path == "" {
		return errEmptyExecPath
	}
	return nil
}

type platformService struct{}

// NewService returns a platform-specific implementation.
func NewService() Service {
	return &platformService{}
}

// GetConfigDir returns the OS-standard configuration directory.
func (service *platformService) GetConfigDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err == nil && configDir != "" {
		return configDir, nil
	}

	homeDir, homeErr := os.UserHomeDir()
	if homeErr != nil {
		if err != nil {
			return "", fmt.Errorf("get config dir: %w", err)
		}
		return "", fmt.Errorf("get config dir: %w", homeErr)
	}

	return fallbackConfigDir(homeDir), nil
}

// ApplyAutostart registers the running executable with args as a login
// item, or removes the login item when disabled.
func ApplyAutostart(service Service, appName string, enabled bool, args ...string) error {
	if !enabled {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, LaunchCommand{Path: execPath, Args: args})
}

// loginItemSlug lowercases appName and replaces spaces with dashes.
func loginItemSlug(appName string) string {
	name := strings.ToLower(strings.TrimSpace(appName))
	if name == "" {
		return "luxtray"
	}
	return strings.Join(strings.Fields(name), "-")
}
