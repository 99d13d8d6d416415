package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"github.com/spf13/cobra"

	"luxtray/internal/core/model"
	"luxtray/internal/core/pomodoro"
	"luxtray/internal/device"
	"luxtray/internal/device/luxafor"
	"luxtray/internal/log"
	"luxtray/internal/platform"
	"luxtray/internal/storage"
	"luxtray/internal/ui/notify"
	"luxtray/internal/ui/preferences"
	"luxtray/internal/ui/tray"
	"luxtray/resources"
)

const appName = "LuxTray"

type options struct {
	configPath  string
	logLevel    string
	workMs      int
	breakMs     int
	startPolicy string
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	return bindCommand(&options{})
}

func bindCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:          "luxtray",
		Short:        "Luxafor status light and Pomodoro timer in the system tray",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			stored := loadSettings(opts)
			settings, err := applyOverrides(cmd, opts, stored)
			if err != nil {
				return err
			}
			return run(opts, stored, settings)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.configPath, "config", "c", "", "path to settings.yaml (default: user config dir)")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")
	flags.IntVar(&opts.workMs, "work-ms", 0, "work session length in milliseconds")
	flags.IntVar(&opts.breakMs, "break-ms", 0, "break length in milliseconds")
	flags.StringVar(&opts.startPolicy, "start-policy", "", "start while a session runs: ignore or restart")
	return cmd
}

// loadSettings reads the settings file. An unreadable file falls back to
// defaults.
func loadSettings(opts *options) preferences.Settings {
	var settings preferences.Settings
	var err error
	if opts.configPath != "" {
		settings, err = storage.LoadSettingsFrom(opts.configPath)
	} else {
		settings, err = storage.LoadSettings(appName)
	}
	if err != nil {
		log.Warn().Err(err).Msg("load settings, using defaults")
	}
	return settings
}

// applyOverrides returns settings with the flags given on the command line
// applied. They last for this run only.
func applyOverrides(cmd *cobra.Command, opts *options, settings preferences.Settings) (preferences.Settings, error) {
	flags := cmd.Flags()
	if flags.Changed("log-level") {
		settings.LogLevel = opts.logLevel
	}
	if flags.Changed("work-ms") {
		if opts.workMs <= 0 {
			return settings, fmt.Errorf("--work-ms must be positive, got %d", opts.workMs)
		}
		settings.WorkDuration = time.Duration(opts.workMs) * time.Millisecond
	}
	if flags.Changed("break-ms") {
		if opts.breakMs <= 0 {
			return settings, fmt.Errorf("--break-ms must be positive, got %d", opts.breakMs)
		}
		settings.BreakDuration = time.Duration(opts.breakMs) * time.Millisecond
	}
	if flags.Changed("start-policy") {
		policy, err := model.ParseStartPolicy(opts.startPolicy)
		if err != nil {
			return settings, err
		}
		settings.StartPolicy = policy
	}
	return settings, nil
}

func run(opts *options, stored, settings preferences.Settings) error {
	log.SetLevel(settings.LogLevel)

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		if errors.Is(err, platform.ErrAlreadyRunning) {
			log.Warn().Err(err).Msg("another LuxTray is running")
		}
		return err
	}
	defer func() {
		_ = guard.Release()
	}()
	log.Debug().Str("addr", guard.Address()).Msg("single instance lock held")

	slot := device.NewSlot(luxafor.NewScanner())
	status := device.NewStatus(slot)
	status.Reconnect()

	controller := pomodoro.New(settings.PomodoroConfig(), status, pomodoro.SystemClock())
	controller.SetAvailable()

	fyneApp := app.NewWithID("com.luxtray.app")
	fyneApp.SetIcon(resources.MustIcon(resources.IconAvailable))
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		controller.Shutdown()
		_ = slot.Close()
		return errors.New("system tray unsupported on this platform")
	}

	notifier := notify.New(fyneApp)
	notifier.SetEnabled(settings.Notifications)
	go notifier.Run(controller.Subscribe(8))

	autostart := platform.NewService()
	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		stored = persistable(stored, settings, updated)
		settings = updated
		controller.UpdateConfig(settings.PomodoroConfig())
		notifier.SetEnabled(settings.Notifications)
		if err := saveSettings(opts.configPath, stored); err != nil {
			log.Error().Err(err).Msg("save settings")
		}
		args, err := autostartArgs(opts.configPath)
		if err != nil {
			log.Warn().Err(err).Msg("resolve config path for autostart")
		}
		if err := platform.ApplyAutostart(autostart, appName, settings.Autostart, args...); err != nil {
			log.Warn().Err(err).Msg("apply autostart")
		}
	})

	done := make(chan struct{})
	var shutdownOnce sync.Once
	shutdown := func() {
		shutdownOnce.Do(func() {
			close(done)
			controller.Shutdown()
			if err := slot.Close(); err != nil {
				log.Warn().Err(err).Msg("close device")
			}
		})
	}

	var trayManager *tray.Manager
	trayManager = tray.New(desktopApp, tray.Callbacks{
		OnAvailable: controller.SetAvailable,
		OnBusy:      controller.SetBusy,
		OnOff:       controller.TurnOff,
		OnStart:     controller.Start,
		OnStop:      controller.Stop,
		OnReconnect: func() {
			go func() {
				connected := status.Reconnect()
				fyne.Do(func() {
					trayManager.SetConnected(connected)
				})
			}()
		},
		OnPreferences: prefsWindow.Show,
		OnStatusClick: notifier.Clicked,
		OnQuit: func() {
			shutdown()
			fyneApp.Quit()
		},
	})
	trayManager.SetConnected(status.Connected())
	applySnapshot(trayManager, controller.Snapshot())

	updates := controller.Subscribe(16)
	go func() {
		for notice := range updates {
			if notice.Type == pomodoro.NoticeNotification {
				continue
			}
			snapshot := controller.Snapshot()
			fyne.Do(func() {
				applySnapshot(trayManager, snapshot)
			})
		}
	}()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-done:
				return
			case <-ticker.C:
				snapshot := controller.Snapshot()
				if snapshot.Phase == pomodoro.PhaseIdle {
					continue
				}
				fyne.Do(func() {
					trayManager.SetStatus(statusText(snapshot))
				})
			}
		}
	}()

	fyneApp.Lifecycle().SetOnStopped(shutdown)
	log.Info().
		Dur("work", settings.PomodoroConfig().Work).
		Dur("break", settings.PomodoroConfig().Break).
		Bool("device", status.Connected()).
		Msg("LuxTray started")
	fyneApp.Run()
	return nil
}

// persistable returns what the settings file should hold after the user
// saved updated. A field still at the value a flag gave it for this run
// keeps its stored value.
func persistable(stored, running, updated preferences.Settings) preferences.Settings {
	out := updated
	if updated.WorkDuration == running.WorkDuration {
		out.WorkDuration = stored.WorkDuration
	}
	if updated.BreakDuration == running.BreakDuration {
		out.BreakDuration = stored.BreakDuration
	}
	if updated.StartPolicy == running.StartPolicy {
		out.StartPolicy = stored.StartPolicy
	}
	if updated.LogLevel == running.LogLevel {
		out.LogLevel = stored.LogLevel
	}
	return out
}

// autostartArgs makes the login item load the same settings file.
func autostartArgs(configPath string) ([]string, error) {
	if configPath == "" {
		return nil, nil
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return []string{"--config", configPath}, err
	}
	return []string{"--config", abs}, nil
}

func saveSettings(configPath string, settings preferences.Settings) error {
	if configPath != "" {
		return storage.SaveSettingsTo(configPath, settings)
	}
	return storage.SaveSettings(appName, settings)
}

func applySnapshot(trayManager *tray.Manager, snapshot pomodoro.Snapshot) {
	trayManager.SetRunning(snapshot.Phase != pomodoro.PhaseIdle)
	trayManager.SetStatus(statusText(snapshot))
	trayManager.SetIcon(resources.MustIcon(iconFor(snapshot.Signal)))
}

func statusText(snapshot pomodoro.Snapshot) string {
	switch snapshot.Phase {
	case pomodoro.PhaseWorking:
		return "working " + tray.FormatRemaining(snapshot.Remaining)
	case pomodoro.PhaseOnBreak:
		return "on break " + tray.FormatRemaining(snapshot.Remaining)
	}
	if snapshot.Signal == "" {
		return "idle"
	}
	return string(snapshot.Signal)
}

func iconFor(signal pomodoro.Signal) resources.IconKind {
	switch signal {
	case pomodoro.SignalBusy:
		return resources.IconBusy
	case pomodoro.SignalAvailable:
		return resources.IconAvailable
	}
	return resources.IconOff
}
