package pomodoro

import "time"

// Timer is a pending callback that can be cancelled.
type Timer interface {
	Stop() bool
}

// Clock creates countdown timers.
type Clock interface {
	Now() time.Time
	AfterFunc(d time.Duration, f func()) Timer
}

type systemClock struct{}

// SystemClock returns a Clock backed by the time package.
func SystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now()
}

func (systemClock) AfterFunc(d time.Duration, f func()) Timer {
	return time.AfterFunc(d, f)
}

type countdown struct {
	timer      Timer
	deadline   time.Time
	generation uint64
}

func (c *countdown) active() bool {
	return c.timer != nil
}

func (c *countdown) stop() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = nil
	c.deadline = time.Time{}
}
