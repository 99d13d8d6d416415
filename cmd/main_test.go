package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luxtray/internal/core/model"
	"luxtray/internal/core/pomodoro"
	"luxtray/resources"
)

func TestApplyOverrides(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work_minutes: 50\nbreak_minutes: 10\n"), 0o644))

	opts := &options{}
	cmd := bindCommand(opts)
	require.NoError(t, cmd.ParseFlags([]string{
		"--config", path,
		"--break-ms", "3000",
		"--start-policy", "restart",
		"--log-level", "debug",
	}))

	stored := loadSettings(opts)
	settings, err := applyOverrides(cmd, opts, stored)

	require.NoError(t, err)
	assert.Equal(t, 10*time.Minute, stored.BreakDuration)
	assert.Equal(t, 50*time.Minute, settings.WorkDuration)
	assert.Equal(t, 3*time.Second, settings.BreakDuration)
	assert.Equal(t, model.StartRestart, settings.StartPolicy)
	assert.Equal(t, "debug", settings.LogLevel)
}

func TestApplyOverridesRejectsBadFlags(t *testing.T) {
	dir := t.TempDir()
	for _, args := range [][]string{
		{"--work-ms", "0"},
		{"--break-ms=-1"},
		{"--start-policy", "extend"},
	} {
		opts := &options{}
		cmd := bindCommand(opts)
		require.NoError(t, cmd.ParseFlags(append(args, "--config", filepath.Join(dir, "none.yaml"))))

		_, err := applyOverrides(cmd, opts, loadSettings(opts))
		assert.Error(t, err, "args %v", args)
	}
}

func TestFlagOverridesStayOutOfSavedSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.yaml")
	require.NoError(t, os.WriteFile(path, []byte("work: 50m\nbreak: 10m\n"), 0o644))

	opts := &options{}
	cmd := bindCommand(opts)
	require.NoError(t, cmd.ParseFlags([]string{"--config", path, "--work-ms", "30000", "--start-policy", "restart"}))
	stored := loadSettings(opts)
	running, err := applyOverrides(cmd, opts, stored)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, running.WorkDuration)

	// Save with only the break edited.
	updated := running
	updated.BreakDuration = 90 * time.Second
	updated.Notifications = false
	stored = persistable(stored, running, updated)
	require.NoError(t, saveSettings(path, stored))

	reloaded := loadSettings(opts)
	assert.Equal(t, 50*time.Minute, reloaded.WorkDuration)
	assert.Equal(t, 90*time.Second, reloaded.BreakDuration)
	assert.Equal(t, model.StartIgnore, reloaded.StartPolicy)
	assert.False(t, reloaded.Notifications)

	// Editing an overridden field persists the new value.
	updated.WorkDuration = 40 * time.Second
	assert.Equal(t, 40*time.Second, persistable(stored, running, updated).WorkDuration)
}

func TestAutostartArgs(t *testing.T) {
	args, err := autostartArgs("")
	require.NoError(t, err)
	assert.Empty(t, args)

	abs := filepath.Join(t.TempDir(), "settings.yaml")
	args, err = autostartArgs(abs)
	require.NoError(t, err)
	assert.Equal(t, []string{"--config", abs}, args)

	args, err = autostartArgs("relative.yaml")
	require.NoError(t, err)
	require.Len(t, args, 2)
	assert.True(t, filepath.IsAbs(args[1]))
	assert.Equal(t, "relative.yaml", filepath.Base(args[1]))
}

func TestStatusText(t *testing.T) {
	assert.Equal(t, "idle", statusText(pomodoro.Snapshot{Phase: pomodoro.PhaseIdle}))
	assert.Equal(t, "busy", statusText(pomodoro.Snapshot{Phase: pomodoro.PhaseIdle, Signal: pomodoro.SignalBusy}))
	assert.Equal(t, "working 24:59", statusText(pomodoro.Snapshot{Phase: pomodoro.PhaseWorking, Remaining: 24*time.Minute + 59*time.Second}))
	assert.Equal(t, "on break 05:00", statusText(pomodoro.Snapshot{Phase: pomodoro.PhaseOnBreak, Remaining: 5 * time.Minute}))
}

func TestIconFor(t *testing.T) {
	assert.Equal(t, resources.IconBusy, iconFor(pomodoro.SignalBusy))
	assert.Equal(t, resources.IconAvailable, iconFor(pomodoro.SignalAvailable))
	assert.Equal(t, resources.IconOff, iconFor(pomodoro.SignalOff))
	assert.Equal(t, resources.IconOff, iconFor(""))
}
