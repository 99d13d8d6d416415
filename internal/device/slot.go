package device

import (
	"fmt"
	"sync"

	"luxtray/internal/log"
)

// Slot owns the currently bound device handle.
// Reconnect and Close are the only writers; every command runs under the
// slot lock so device writes are issued in call order.
type Slot struct {
	mu      sync.Mutex
	scanner Scanner
	handle  Handle
}

// NewSlot creates an empty slot backed by the given scanner.
func NewSlot(scanner Scanner) *Slot {
	return &Slot{scanner: scanner}
}

// Connected reports whether a handle is bound.
func (slot *Slot) Connected() bool {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.handle != nil
}

// Reconnect disposes the bound handle, rescans and binds the first device.
// It returns ErrNoDevice when discovery comes back empty; the slot is then
// left empty.
func (slot *Slot) Reconnect() error {
	slot.mu.Lock()
	defer slot.mu.Unlock()

	slot.disposeLocked()

	if slot.scanner == nil {
		return ErrNoDevice
	}
	handles, err := slot.scanner.Scan()
	if err != nil {
		return fmt.Errorf("scan devices: %w", err)
	}
	if len(handles) == 0 {
		return ErrNoDevice
	}

	slot.handle = handles[0]
	for _, extra := range handles[1:] {
		if err := extra.Close(); err != nil {
			log.Debug().Err(err).Msg("close surplus device")
		}
	}
	log.Info().Int("found", len(handles)).Msg("indicator device bound")
	return nil
}

// Close disposes the bound handle, if any.
func (slot *Slot) Close() error {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	return slot.disposeLocked()
}

// Do runs fn with the bound handle under the slot lock.
// It reports false without calling fn when no handle is bound.
func (slot *Slot) Do(fn func(Handle) error) (bool, error) {
	slot.mu.Lock()
	defer slot.mu.Unlock()
	if slot.handle == nil {
		return false, nil
	}
	return true, fn(slot.handle)
}

func (slot *Slot) disposeLocked() error {
	if slot.handle == nil {
		return nil
	}
	err := slot.handle.Close()
	slot.handle = nil
	if err != nil {
		log.Warn().Err(err).Msg("dispose indicator device")
		return fmt.Errorf("close device: %w", err)
	}
	return nil
}
