// Package luxafor drives Luxafor flags over USB HID.
package luxafor

import (
	"fmt"
	"io"
	"sync"

	"github.com/karalabe/hid"

	"luxtray/internal/device"
	"luxtray/internal/log"
)

// Device is an open Luxafor flag.
type Device struct {
	mu     sync.Mutex
	conn   io.WriteCloser
	path   string
	closed bool
}

func newDevice(conn io.WriteCloser, path string) *Device {
	return &Device{conn: conn, path: path}
}

// SetColor switches the target LEDs to a solid color.
func (dev *Device) SetColor(target device.Target, color device.Color) error {
	return dev.send(colorReport(target, color))
}

// RunPattern plays a built-in pattern.
func (dev *Device) RunPattern(pattern device.Pattern, repeat uint8) error {
	return dev.send(patternReport(pattern, repeat))
}

// Wave plays a built-in wave in the given color.
func (dev *Device) Wave(wave device.Wave, color device.Color, speed, repeat uint8) error {
	return dev.send(waveReport(wave, color, speed, repeat))
}

// Close releases the HID handle.
func (dev *Device) Close() error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.closed {
		return nil
	}
	dev.closed = true
	if err := dev.conn.Close(); err != nil {
		return fmt.Errorf("close luxafor %s: %w", dev.path, err)
	}
	return nil
}

func (dev *Device) send(r report) error {
	dev.mu.Lock()
	defer dev.mu.Unlock()
	if dev.closed {
		return fmt.Errorf("write luxafor %s: device closed", dev.path)
	}
	if _, err := dev.conn.Write(r.wire()); err != nil {
		return fmt.Errorf("write luxafor %s: %w", dev.path, err)
	}
	return nil
}

// Scanner enumerates Luxafor flags on the HID bus.
type Scanner struct{}

// NewScanner returns a HID scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan opens every attached Luxafor flag.
func (scanner *Scanner) Scan() ([]device.Handle, error) {
	if !hid.Supported() {
		log.Warn().Msg("usb hid unsupported on this platform")
		return nil, nil
	}

	var handles []device.Handle
	var firstErr error
	for _, info := range hid.Enumerate(VendorID, ProductID) {
		conn, err := info.Open()
		if err != nil {
			log.Warn().Err(err).Str("path", info.Path).Msg("open luxafor")
			if firstErr == nil {
				firstErr = fmt.Errorf("open luxafor %s: %w", info.Path, err)
			}
			continue
		}
		handles = append(handles, newDevice(conn, info.Path))
	}
	if len(handles) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return handles, nil
}
