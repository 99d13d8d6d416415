package preferences

import (
	"strconv"
	"strings"
	"time"

	"luxtray/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	WorkDuration  time.Duration
	BreakDuration time.Duration
	StartPolicy   model.StartPolicy

	Notifications bool
	Autostart     bool
	LogLevel      string
}

// DefaultSettings returns default settings for LuxTray.
func DefaultSettings() Settings {
	config := model.DefaultPomodoroConfig()
	return Settings{
		WorkDuration:  config.Work,
		BreakDuration: config.Break,
		StartPolicy:   config.StartPolicy,
		Notifications: true,
		Autostart:     false,
		LogLevel:      "info",
	}
}

// PomodoroConfig converts settings to the controller configuration.
func (settings Settings) PomodoroConfig() model.PomodoroConfig {
	return model.PomodoroConfig{
		Work:        settings.WorkDuration,
		Break:       settings.BreakDuration,
		StartPolicy: settings.StartPolicy,
	}.Normalized()
}

// FormatDuration renders d the way ParseDuration reads it back, dropping
// trailing zero units ("25m", "1h", "1m30s").
func FormatDuration(d time.Duration) string {
	text := d.String()
	if strings.HasSuffix(text, "m0s") {
		text = strings.TrimSuffix(text, "0s")
	}
	if strings.HasSuffix(text, "h0m") {
		text = strings.TrimSuffix(text, "0m")
	}
	return text
}

// ParseDuration reads a positive Go duration ("90s", "1h30m"). A bare
// integer is taken as minutes.
func ParseDuration(value string) (time.Duration, bool) {
	value = strings.TrimSpace(value)
	if minutes, err := strconv.Atoi(value); err == nil {
		if minutes <= 0 {
			return 0, false
		}
		return time.Duration(minutes) * time.Minute, true
	}
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
