package notify

import (
	"sync/atomic"

	"fyne.io/fyne/v2"

	"luxtray/internal/core/pomodoro"
	"luxtray/internal/log"
)

const placeholderMessage = "Clicked it."

// Sender delivers OS notifications. fyne.App satisfies it.
type Sender interface {
	SendNotification(*fyne.Notification)
}

// Notifier forwards controller notifications to the desktop.
type Notifier struct {
	sender  Sender
	enabled atomic.Bool
	last    atomic.Pointer[fyne.Notification]
}

// New creates an enabled notifier.
func New(sender Sender) *Notifier {
	notifier := &Notifier{sender: sender}
	notifier.enabled.Store(true)
	return notifier
}

// SetEnabled turns desktop notifications on or off.
func (notifier *Notifier) SetEnabled(enabled bool) {
	notifier.enabled.Store(enabled)
}

// Notify sends a notification unless disabled.
func (notifier *Notifier) Notify(title, message string) {
	notification := fyne.NewNotification(title, message)
	notifier.last.Store(notification)
	log.Info().Str("title", title).Str("message", message).Msg("notification")
	if !notifier.enabled.Load() || notifier.sender == nil {
		return
	}
	notifier.sender.SendNotification(notification)
}

// Run forwards notification notices until the channel closes.
func (notifier *Notifier) Run(notices <-chan pomodoro.Notice) {
	for notice := range notices {
		if notice.Type == pomodoro.NoticeNotification {
			notifier.Notify(notice.Title, notice.Message)
		}
	}
}

// Clicked handles a click on the last notification. There is no action
// bound to notifications yet, so it shows a placeholder.
func (notifier *Notifier) Clicked() {
	last := notifier.last.Load()
	if last == nil {
		log.Debug().Msg("notification clicked, nothing shown yet")
		return
	}
	log.Info().Str("title", last.Title).Msg("notification clicked")
	if notifier.sender != nil {
		notifier.sender.SendNotification(fyne.NewNotification(last.Title, placeholderMessage))
	}
}
