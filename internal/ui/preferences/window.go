package preferences

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"luxtray/internal/core/model"
)

var policyLabels = map[model.StartPolicy]string{
	model.StartIgnore:  "Keep the running session",
	model.StartRestart: "Restart the work session",
}

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings)
	workEntry     *widget.Entry
	breakEntry    *widget.Entry
	policy        *widget.Select
	notifications *widget.Check
	autostart     *widget.Check
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("LuxTray Settings")

	prefs := &Window{
		window:        window,
		settings:      settings,
		onSave:        onSave,
		workEntry:     widget.NewEntry(),
		breakEntry:    widget.NewEntry(),
		policy:        widget.NewSelect([]string{policyLabels[model.StartIgnore], policyLabels[model.StartRestart]}, nil),
		notifications: widget.NewCheck("Show notifications", nil),
		autostart:     widget.NewCheck("Start at login", nil),
	}
	prefs.workEntry.SetPlaceHolder("25m")
	prefs.breakEntry.SetPlaceHolder("5m")
	prefs.UpdateSettings(settings)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Pomodoro", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewForm(
			widget.NewFormItem("Work session", prefs.workEntry),
			widget.NewFormItem("Break", prefs.breakEntry),
		),
		widget.NewLabel("Durations such as 25m, 90s or 1h30m"),
		widget.NewLabel("Start while a session runs"),
		prefs.policy,
		widget.NewLabelWithStyle("General", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.notifications,
		prefs.autostart,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	cancelButton := widget.NewButton("Cancel", func() {
		window.Hide()
	})
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 320))
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.workEntry.SetText(FormatDuration(settings.WorkDuration))
	prefs.breakEntry.SetText(FormatDuration(settings.BreakDuration))
	prefs.policy.SetSelected(policyLabels[settings.PomodoroConfig().StartPolicy])
	prefs.notifications.SetChecked(settings.Notifications)
	prefs.autostart.SetChecked(settings.Autostart)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if d, ok := ParseDuration(prefs.workEntry.Text); ok {
		settings.WorkDuration = d
	}
	if d, ok := ParseDuration(prefs.breakEntry.Text); ok {
		settings.BreakDuration = d
	}
	for policy, label := range policyLabels {
		if prefs.policy.Selected == label {
			settings.StartPolicy = policy
		}
	}
	settings.Notifications = prefs.notifications.Checked
	settings.Autostart = prefs.autostart.Checked

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}
