package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxtray/internal/core/model"
	"luxtray/internal/ui/preferences"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	settings, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "absent.yaml"))

	require.NoError(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestSaveThenLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.yaml")
	want := preferences.Settings{
		WorkDuration:  50 * time.Minute,
		BreakDuration: 10 * time.Minute,
		StartPolicy:   model.StartRestart,
		Notifications: false,
		Autostart:     true,
		LogLevel:      "debug",
	}

	require.NoError(t, SaveSettingsTo(path, want))
	got, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSubMinuteDurationsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	for _, d := range []time.Duration{30 * time.Second, 90 * time.Second, 1500 * time.Millisecond} {
		want := preferences.DefaultSettings()
		want.WorkDuration = d
		want.BreakDuration = d / 3

		require.NoError(t, SaveSettingsTo(path, want))
		got, err := LoadSettingsFrom(path)

		require.NoError(t, err)
		assert.Equal(t, want.WorkDuration, got.WorkDuration, "work %v", d)
		assert.Equal(t, want.BreakDuration, got.BreakDuration, "break %v", d/3)
	}
}

func TestSavedFileUsesDurationStrings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	settings := preferences.DefaultSettings()
	settings.WorkDuration = 90 * time.Second

	require.NoError(t, SaveSettingsTo(path, settings))
	raw, err := os.ReadFile(path)

	require.NoError(t, err)
	assert.Contains(t, string(raw), "work: 1m30s\n")
	assert.Contains(t, string(raw), "break: 5m\n")
	assert.NotContains(t, string(raw), "minutes")
}

func TestLegacyMinuteKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 50\nbreak_minutes: 10\n"), 0o644))

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, 50*time.Minute, settings.WorkDuration)
	assert.Equal(t, 10*time.Minute, settings.BreakDuration)

	require.NoError(t, os.WriteFile(path, []byte("work: 45s\nwork_minutes: 50\n"), 0o644))
	settings, err = LoadSettingsFrom(path)

	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, settings.WorkDuration)
}

func TestInvalidFieldsKeepDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	raw := "work: soon\nbreak: -5m\nstart_policy: extend\n"
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	settings, err := LoadSettingsFrom(path)

	require.NoError(t, err)
	defaults := preferences.DefaultSettings()
	assert.Equal(t, defaults.WorkDuration, settings.WorkDuration)
	assert.Equal(t, defaults.BreakDuration, settings.BreakDuration)
	assert.Equal(t, model.StartIgnore, settings.StartPolicy)
	assert.True(t, settings.Notifications)
}

func TestMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: [oops"), 0o644))

	settings, err := LoadSettingsFrom(path)

	require.Error(t, err)
	assert.Equal(t, preferences.DefaultSettings(), settings)
}

func TestDefaultLocation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv("AppData", t.TempDir())

	path, err := ResolveConfigPath("LuxTray")
	require.NoError(t, err)
	assert.Equal(t, "settings.yaml", filepath.Base(path))
	assert.Equal(t, "LuxTray", filepath.Base(filepath.Dir(path)))

	settings := preferences.DefaultSettings()
	settings.WorkDuration = 45 * time.Minute
	require.NoError(t, SaveSettings("LuxTray", settings))

	loaded, err := LoadSettings("LuxTray")
	require.NoError(t, err)
	assert.Equal(t, 45*time.Minute, loaded.WorkDuration)
}
