package pomodoro

import (
	"sync"
	"time"

	"luxtray/internal/core/model"
	"luxtray/internal/log"
)

// Indicator is the device-facing side of the controller.
type Indicator interface {
	SetAvailable()
	SetBusy()
	TurnOff()
	Celebrate()
}

// Snapshot is a point-in-time view of the controller.
type Snapshot struct {
	Phase       Phase
	Remaining   time.Duration
	Sessions    int
	WorkActive  bool
	BreakActive bool
	Signal      Signal
}

// Controller is the Pomodoro state machine. All inputs go through
// HandleEvent, which is serialized by the controller mutex.
type Controller struct {
	mu          sync.Mutex
	config      model.PomodoroConfig
	indicator   Indicator
	clock       Clock
	phase       Phase
	work        countdown
	rest        countdown
	generation  uint64
	sessions    int
	signal      Signal
	subscribers []chan Notice
	shutdown    bool
}

// New creates an idle controller.
func New(config model.PomodoroConfig, indicator Indicator, clock Clock) *Controller {
	if clock == nil {
		clock = SystemClock()
	}
	return &Controller{
		config:    config.Normalized(),
		indicator: indicator,
		clock:     clock,
		phase:     PhaseIdle,
	}
}

// Subscribe registers a new observer channel.
// Sends never block; a full channel drops the notice.
func (controller *Controller) Subscribe(buffer int) <-chan Notice {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Notice, buffer)
	controller.mu.Lock()
	if controller.shutdown {
		close(ch)
	} else {
		controller.subscribers = append(controller.subscribers, ch)
	}
	controller.mu.Unlock()
	return ch
}

// UpdateConfig replaces durations and start policy.
// Running countdowns keep their deadline; the next one uses the new values.
func (controller *Controller) UpdateConfig(config model.PomodoroConfig) {
	controller.mu.Lock()
	controller.config = config.Normalized()
	controller.mu.Unlock()
}

// Config returns the active configuration.
func (controller *Controller) Config() model.PomodoroConfig {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.config
}

// Snapshot returns the current phase and remaining time.
func (controller *Controller) Snapshot() Snapshot {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	snapshot := Snapshot{
		Phase:       controller.phase,
		Sessions:    controller.sessions,
		WorkActive:  controller.work.active(),
		BreakActive: controller.rest.active(),
		Signal:      controller.signal,
	}
	var deadline time.Time
	switch controller.phase {
	case PhaseWorking:
		deadline = controller.work.deadline
	case PhaseOnBreak:
		deadline = controller.rest.deadline
	}
	if !deadline.IsZero() {
		snapshot.Remaining = deadline.Sub(controller.clock.Now())
		if snapshot.Remaining < 0 {
			snapshot.Remaining = 0
		}
	}
	return snapshot
}

// Start begins a work session.
func (controller *Controller) Start() { controller.HandleEvent(Event{Type: EventStart}) }

// Stop abandons the current cycle and returns to idle.
func (controller *Controller) Stop() { controller.HandleEvent(Event{Type: EventStop}) }

// Shutdown stops all countdowns and switches the indicator off.
func (controller *Controller) Shutdown() { controller.HandleEvent(Event{Type: EventShutdown}) }

// SetAvailable signals availability without touching the cycle.
func (controller *Controller) SetAvailable() { controller.HandleEvent(Event{Type: EventSetAvailable}) }

// SetBusy signals busy without touching the cycle.
func (controller *Controller) SetBusy() { controller.HandleEvent(Event{Type: EventSetBusy}) }

// TurnOff switches the indicator off without touching the cycle.
func (controller *Controller) TurnOff() { controller.HandleEvent(Event{Type: EventTurnOff}) }

// HandleEvent applies a single event to the state machine.
func (controller *Controller) HandleEvent(event Event) {
	controller.mu.Lock()
	defer controller.mu.Unlock()

	if controller.shutdown {
		log.Debug().Str("event", string(event.Type)).Msg("event after shutdown ignored")
		return
	}

	switch event.Type {
	case EventStart:
		controller.handleStartLocked()
	case EventStop:
		controller.handleStopLocked()
	case EventWorkExpired:
		controller.handleWorkExpiredLocked(event.Generation)
	case EventBreakExpired:
		controller.handleBreakExpiredLocked(event.Generation)
	case EventShutdown:
		controller.handleShutdownLocked()
	case EventSetAvailable:
		controller.signalLocked(SignalAvailable)
	case EventSetBusy:
		controller.signalLocked(SignalBusy)
	case EventTurnOff:
		controller.signalLocked(SignalOff)
	default:
		log.Warn().Str("event", string(event.Type)).Msg("unknown pomodoro event")
	}
}

func (controller *Controller) handleStartLocked() {
	if controller.phase != PhaseIdle {
		if controller.config.StartPolicy != model.StartRestart {
			log.Debug().Str("phase", string(controller.phase)).Msg("start ignored, cycle active")
			return
		}
		controller.stopCountdownsLocked()
	}

	controller.signalLocked(SignalBusy)
	controller.startWorkLocked()
	controller.setPhaseLocked(PhaseWorking, controller.config.Work)
}

func (controller *Controller) handleStopLocked() {
	if controller.phase == PhaseIdle {
		return
	}
	controller.stopCountdownsLocked()
	controller.signalLocked(SignalAvailable)
	controller.setPhaseLocked(PhaseIdle, 0)
}

func (controller *Controller) handleWorkExpiredLocked(generation uint64) {
	if controller.phase != PhaseWorking || !controller.work.active() || controller.work.generation != generation {
		log.Debug().Uint64("generation", generation).Msg("stale work expiry")
		return
	}

	controller.work.stop()
	controller.signalLocked(SignalAvailable)
	controller.indicator.Celebrate()
	controller.sessions++
	controller.startBreakLocked()
	controller.setPhaseLocked(PhaseOnBreak, controller.config.Break)
	controller.notifyLocked(messageSessionFinished)
	log.Info().Int("sessions", controller.sessions).Msg("pomodoro session finished")
}

func (controller *Controller) handleBreakExpiredLocked(generation uint64) {
	if controller.phase != PhaseOnBreak || !controller.rest.active() || controller.rest.generation != generation {
		log.Debug().Uint64("generation", generation).Msg("stale break expiry")
		return
	}

	controller.rest.stop()
	controller.signalLocked(SignalBusy)
	controller.notifyLocked(messageNextSession)
	controller.startWorkLocked()
	controller.setPhaseLocked(PhaseWorking, controller.config.Work)
}

func (controller *Controller) handleShutdownLocked() {
	controller.stopCountdownsLocked()
	controller.signalLocked(SignalOff)
	if controller.phase != PhaseIdle {
		controller.setPhaseLocked(PhaseIdle, 0)
	}
	controller.shutdown = true

	for _, ch := range controller.subscribers {
		close(ch)
	}
	controller.subscribers = nil
}

func (controller *Controller) startWorkLocked() {
	controller.rest.stop()
	controller.arm(&controller.work, controller.config.Work, EventWorkExpired)
}

func (controller *Controller) startBreakLocked() {
	controller.work.stop()
	controller.arm(&controller.rest, controller.config.Break, EventBreakExpired)
}

func (controller *Controller) arm(target *countdown, duration time.Duration, expiry EventType) {
	target.stop()
	controller.generation++
	generation := controller.generation
	target.generation = generation
	target.deadline = controller.clock.Now().Add(duration)
	target.timer = controller.clock.AfterFunc(duration, func() {
		controller.HandleEvent(Event{Type: expiry, Generation: generation})
	})
}

func (controller *Controller) stopCountdownsLocked() {
	controller.work.stop()
	controller.rest.stop()
}

func (controller *Controller) signalLocked(signal Signal) {
	switch signal {
	case SignalAvailable:
		controller.indicator.SetAvailable()
	case SignalBusy:
		controller.indicator.SetBusy()
	case SignalOff:
		controller.indicator.TurnOff()
	}
	controller.signal = signal
	controller.emitLocked(Notice{
		Type:   NoticeSignal,
		Phase:  controller.phase,
		Signal: signal,
		At:     controller.clock.Now(),
	})
}

func (controller *Controller) setPhaseLocked(phase Phase, remaining time.Duration) {
	controller.phase = phase
	controller.emitLocked(Notice{
		Type:      NoticePhaseChange,
		Phase:     phase,
		Signal:    controller.signal,
		Remaining: remaining,
		At:        controller.clock.Now(),
	})
}

func (controller *Controller) notifyLocked(message string) {
	controller.emitLocked(Notice{
		Type:    NoticeNotification,
		Phase:   controller.phase,
		Title:   notificationTitle,
		Message: message,
		At:      controller.clock.Now(),
	})
}

func (controller *Controller) emitLocked(notice Notice) {
	for _, ch := range controller.subscribers {
		select {
		case ch <- notice:
		default:
		}
	}
}
