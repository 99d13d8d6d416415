package model

import (
	"fmt"
	"strings"
	"time"
)

// StartPolicy decides what a start command does while a cycle is active.
type StartPolicy string

const (
	// StartIgnore drops start commands while working or on break.
	StartIgnore StartPolicy = "ignore"
	// StartRestart begins a fresh work session from the current phase.
	StartRestart StartPolicy = "restart"
)

const (
	DefaultWorkDuration  = 25 * time.Minute
	DefaultBreakDuration = 5 * time.Minute
)

// ParseStartPolicy converts a user-supplied value into a StartPolicy.
func ParseStartPolicy(value string) (StartPolicy, error) {
	switch StartPolicy(strings.ToLower(strings.TrimSpace(value))) {
	case StartIgnore:
		return StartIgnore, nil
	case StartRestart:
		return StartRestart, nil
	}
	return "", fmt.Errorf("unknown start policy %q", value)
}

// PomodoroConfig contains runtime settings for the Pomodoro controller.
type PomodoroConfig struct {
	Work        time.Duration
	Break       time.Duration
	StartPolicy StartPolicy
}

// DefaultPomodoroConfig returns the classic 25/5 cycle.
func DefaultPomodoroConfig() PomodoroConfig {
	return PomodoroConfig{
		Work:        DefaultWorkDuration,
		Break:       DefaultBreakDuration,
		StartPolicy: StartIgnore,
	}
}

// Normalized replaces unusable values with defaults.
func (config PomodoroConfig) Normalized() PomodoroConfig {
	if config.Work <= 0 {
		config.Work = DefaultWorkDuration
	}
	if config.Break <= 0 {
		config.Break = DefaultBreakDuration
	}
	if config.StartPolicy != StartRestart {
		config.StartPolicy = StartIgnore
	}
	return config
}
