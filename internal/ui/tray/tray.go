package tray

import (
	"fmt"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

const menuTitle = "LuxTray"

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnAvailable   func()
	OnBusy        func()
	OnOff         func()
	OnStart       func()
	OnStop        func()
	OnReconnect   func()
	OnPreferences func()
	OnStatusClick func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	callbacks   Callbacks
	statusItem  *fyne.MenuItem
	pomodoro    *fyne.MenuItem
	deviceItem  *fyne.MenuItem
	items       []*fyne.MenuItem
	running     bool
	statusLabel string
	connected   bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		statusLabel: "idle",
	}

	manager.statusItem = fyne.NewMenuItem("", func() { call(manager.callbacks.OnStatusClick) })
	manager.deviceItem = fyne.NewMenuItem("", nil)
	manager.deviceItem.Disabled = true
	manager.pomodoro = fyne.NewMenuItem("Start Pomodoro", manager.togglePomodoro)

	manager.items = []*fyne.MenuItem{
		manager.statusItem,
		manager.deviceItem,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Available", func() { call(manager.callbacks.OnAvailable) }),
		fyne.NewMenuItem("Busy", func() { call(manager.callbacks.OnBusy) }),
		fyne.NewMenuItem("Off", func() { call(manager.callbacks.OnOff) }),
		fyne.NewMenuItemSeparator(),
		manager.pomodoro,
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reconnect", func() { call(manager.callbacks.OnReconnect) }),
		fyne.NewMenuItem("Preferences", func() { call(manager.callbacks.OnPreferences) }),
		fyne.NewMenuItem("Exit", func() { call(manager.callbacks.OnQuit) }),
	}
	// fyne appends its own Quit item unless the menu already has one.
	manager.items[len(manager.items)-1].IsQuit = true

	manager.refreshLabels()
	manager.refreshMenu()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshLabels()
	manager.refreshMenu()
}

// SetRunning toggles the Pomodoro menu item between start and stop.
func (manager *Manager) SetRunning(running bool) {
	manager.running = running
	manager.refreshLabels()
	manager.refreshMenu()
}

// SetConnected updates the device line.
func (manager *Manager) SetConnected(connected bool) {
	manager.connected = connected
	manager.refreshLabels()
	manager.refreshMenu()
}

// SetIcon swaps the tray icon.
func (manager *Manager) SetIcon(icon fyne.Resource) {
	if manager.app != nil && icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

func (manager *Manager) togglePomodoro() {
	if manager.running {
		call(manager.callbacks.OnStop)
		return
	}
	call(manager.callbacks.OnStart)
}

func (manager *Manager) refreshLabels() {
	manager.statusItem.Label = fmt.Sprintf("Status: %s", manager.statusLabel)
	if manager.connected {
		manager.deviceItem.Label = "Luxafor connected"
	} else {
		manager.deviceItem.Label = "No device"
	}
	if manager.running {
		manager.pomodoro.Label = "Stop Pomodoro"
	} else {
		manager.pomodoro.Label = "Start Pomodoro"
	}
}

func (manager *Manager) refreshMenu() {
	if manager.app != nil {
		manager.app.SetSystemTrayMenu(fyne.NewMenu(menuTitle, manager.items...))
	}
}

// FormatRemaining renders a countdown as mm:ss.
func FormatRemaining(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Round(time.Second).Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

func call(fn func()) {
	if fn != nil {
		fn()
	}
}
