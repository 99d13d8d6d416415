package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"

	"luxtray/internal/core/model"
	"luxtray/internal/ui/preferences"
)

const settingsFileName = "settings.yaml"

// yamlSettings is the on-disk layout. Durations are Go duration strings;
// work_minutes and break_minutes are still read from older files.
type yamlSettings struct {
	Work          string `yaml:"work"`
	Break         string `yaml:"break"`
	WorkMinutes   int    `yaml:"work_minutes,omitempty"`
	BreakMinutes  int    `yaml:"break_minutes,omitempty"`
	StartPolicy   string `yaml:"start_policy"`
	Notifications *bool  `yaml:"notifications"`
	Autostart     bool   `yaml:"autostart"`
	LogLevel      string `yaml:"log_level,omitempty"`
}

// LoadSettings reads user preferences from the default YAML location.
// If the config file does not exist, default settings are returned.
func LoadSettings(appName string) (preferences.Settings, error) {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return preferences.DefaultSettings(), err
	}
	return LoadSettingsFrom(configPath)
}

// LoadSettingsFrom reads user preferences from configPath.
func LoadSettingsFrom(configPath string) (preferences.Settings, error) {
	settings := preferences.DefaultSettings()

	rawData, err := os.ReadFile(configPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	applyYamlSettings(&settings, fileData)
	return settings, nil
}

// SaveSettings writes user preferences to the default YAML location.
func SaveSettings(appName string, settings preferences.Settings) error {
	configPath, err := ResolveConfigPath(appName)
	if err != nil {
		return err
	}
	return SaveSettingsTo(configPath, settings)
}

// SaveSettingsTo writes user preferences to configPath.
func SaveSettingsTo(configPath string, settings preferences.Settings) error {
	if err := os.MkdirAll(filepath.Dir(configPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	notifications := settings.Notifications
	fileData := yamlSettings{
		Work:          preferences.FormatDuration(settings.WorkDuration),
		Break:         preferences.FormatDuration(settings.BreakDuration),
		StartPolicy:   string(settings.StartPolicy),
		Notifications: &notifications,
		Autostart:     settings.Autostart,
		LogLevel:      settings.LogLevel,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	if err := os.WriteFile(configPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

// ResolveConfigPath returns <UserConfigDir>/<appName>/settings.yaml.
func ResolveConfigPath(appName string) (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(configDir, appName, settingsFileName), nil
}

func applyYamlSettings(settings *preferences.Settings, fileData yamlSettings) {
	if d, ok := fileDuration(fileData.Work, fileData.WorkMinutes); ok {
		settings.WorkDuration = d
	}
	if d, ok := fileDuration(fileData.Break, fileData.BreakMinutes); ok {
		settings.BreakDuration = d
	}
	if policy, err := model.ParseStartPolicy(fileData.StartPolicy); err == nil {
		settings.StartPolicy = policy
	}
	if fileData.Notifications != nil {
		settings.Notifications = *fileData.Notifications
	}
	if fileData.LogLevel != "" {
		settings.LogLevel = fileData.LogLevel
	}

	settings.Autostart = fileData.Autostart
}

func fileDuration(text string, minutes int) (time.Duration, bool) {
	if text != "" {
		return preferences.ParseDuration(text)
	}
	if minutes > 0 {
		return time.Duration(minutes) * time.Minute, true
	}
	return 0, false
}
