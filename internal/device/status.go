package device

import (
	"errors"

	"luxtray/internal/log"
)

const (
	celebrationRepeat = 5
	greetingSpeed     = 100
	greetingRepeat    = 5
)

// Status maps availability states onto device commands.
// Failures are logged and never returned; an absent device is a no-op.
type Status struct {
	slot *Slot
}

// NewStatus creates a facade over the slot.
func NewStatus(slot *Slot) *Status {
	return &Status{slot: slot}
}

// SetAvailable shows solid green.
func (status *Status) SetAvailable() {
	status.color("available", ColorGreen)
}

// SetBusy shows solid red.
func (status *Status) SetBusy() {
	status.color("busy", ColorRed)
}

// TurnOff switches every LED off.
func (status *Status) TurnOff() {
	status.color("off", ColorBlack)
}

// Celebrate plays the rainbow wave pattern.
func (status *Status) Celebrate() {
	status.run("celebrate", func(handle Handle) error {
		return handle.RunPattern(PatternRainbowWave, celebrationRepeat)
	})
}

// Greet plays a white wave, used after a device is bound.
func (status *Status) Greet() {
	status.run("greet", func(handle Handle) error {
		return handle.Wave(WaveOverlappingLong, ColorWhite, greetingSpeed, greetingRepeat)
	})
}

// Reconnect rebinds the slot and greets the new device.
// Discovery failures are logged only.
func (status *Status) Reconnect() bool {
	if err := status.slot.Reconnect(); err != nil {
		if errors.Is(err, ErrNoDevice) {
			log.Info().Msg("no indicator device connected")
		} else {
			log.Warn().Err(err).Msg("reconnect indicator device")
		}
		return false
	}
	status.Greet()
	return true
}

// Connected reports whether commands currently reach a device.
func (status *Status) Connected() bool {
	return status.slot.Connected()
}

func (status *Status) color(name string, color Color) {
	status.run(name, func(handle Handle) error {
		return handle.SetColor(TargetAll, color)
	})
}

func (status *Status) run(name string, command func(Handle) error) {
	sent, err := status.slot.Do(command)
	if !sent {
		log.Debug().Str("command", name).Msg("no device, command skipped")
		return
	}
	if err != nil {
		log.Warn().Err(err).Str("command", name).Msg("device command failed")
	}
}
