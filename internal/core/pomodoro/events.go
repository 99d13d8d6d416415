package pomodoro

import "time"

// Phase represents the current stage of the Pomodoro cycle.
type Phase string

const (
	PhaseIdle    Phase = "idle"
	PhaseWorking Phase = "working"
	PhaseOnBreak Phase = "on_break"
)

// EventType identifies an input to the controller.
type EventType string

const (
	EventStart        EventType = "start"
	EventStop         EventType = "stop"
	EventWorkExpired  EventType = "work_expired"
	EventBreakExpired EventType = "break_expired"
	EventShutdown     EventType = "shutdown"
	EventSetAvailable EventType = "set_available"
	EventSetBusy      EventType = "set_busy"
	EventTurnOff      EventType = "turn_off"
)

// Event is a command or timer expiry delivered to HandleEvent.
// Generation is only meaningful for expiries; it identifies the countdown
// that fired.
type Event struct {
	Type       EventType
	Generation uint64
}

// Signal is the last status sent to the indicator.
type Signal string

const (
	SignalAvailable Signal = "available"
	SignalBusy      Signal = "busy"
	SignalOff       Signal = "off"
)

// NoticeType defines the type of controller notice.
type NoticeType string

const (
	NoticePhaseChange  NoticeType = "phase_change"
	NoticeSignal       NoticeType = "signal"
	NoticeNotification NoticeType = "notification"
)

// Notice is a controller update for observers.
type Notice struct {
	Type      NoticeType
	Phase     Phase
	Signal    Signal
	Title     string
	Message   string
	Remaining time.Duration
	At        time.Time
}

const notificationTitle = "Pomodoro"

const (
	messageSessionFinished = "Your Pomodoro session has finished."
	messageNextSession     = "Time for another Pomodoro."
)
