package pomodoro

import (
	"sort"
	"sync"
	"time"
)

type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*fakeTimer
}

type fakeTimer struct {
	clock    *fakeClock
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2026, 1, 5, 9, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) AfterFunc(d time.Duration, f func()) Timer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	timer := &fakeTimer{clock: clock, deadline: clock.now.Add(d), fn: f}
	clock.timers = append(clock.timers, timer)
	return timer
}

func (timer *fakeTimer) Stop() bool {
	timer.clock.mu.Lock()
	defer timer.clock.mu.Unlock()
	if timer.stopped || timer.fired {
		return false
	}
	timer.stopped = true
	return true
}

// Advance moves time forward, firing due timers in deadline order.
func (clock *fakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	target := clock.now.Add(d)
	clock.mu.Unlock()

	for {
		clock.mu.Lock()
		due := clock.dueLocked(target)
		if due == nil {
			clock.now = target
			clock.mu.Unlock()
			return
		}
		clock.now = due.deadline
		due.fired = true
		clock.mu.Unlock()
		due.fn()
	}
}

func (clock *fakeClock) dueLocked(target time.Time) *fakeTimer {
	var pending []*fakeTimer
	for _, timer := range clock.timers {
		if !timer.stopped && !timer.fired && !timer.deadline.After(target) {
			pending = append(pending, timer)
		}
	}
	if len(pending) == 0 {
		return nil
	}
	sort.SliceStable(pending, func(i, j int) bool {
		return pending[i].deadline.Before(pending[j].deadline)
	})
	return pending[0]
}

// Pending returns the number of armed timers.
func (clock *fakeClock) Pending() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	count := 0
	for _, timer := range clock.timers {
		if !timer.stopped && !timer.fired {
			count++
		}
	}
	return count
}

// Last returns the most recently created timer.
func (clock *fakeClock) Last() *fakeTimer {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	if len(clock.timers) == 0 {
		return nil
	}
	return clock.timers[len(clock.timers)-1]
}
