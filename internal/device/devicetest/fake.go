// Package devicetest provides recording device fakes for tests.
package devicetest

import (
	"sync"

	"luxtray/internal/device"
)

// Command is one recorded device call.
type Command struct {
	Kind    string
	Target  device.Target
	Color   device.Color
	Pattern device.Pattern
	Wave    device.Wave
	Repeat  uint8
}

// Handle records every command it receives.
type Handle struct {
	mu       sync.Mutex
	Name     string
	commands []Command
	closed   int
	Err      error
	CloseErr error
	// Log, when set, receives "<name>:<kind>" for each call, shared across handles.
	Log *[]string
}

// NewHandle returns a recording handle.
func NewHandle(name string) *Handle {
	return &Handle{Name: name}
}

func (handle *Handle) record(command Command) error {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	handle.commands = append(handle.commands, command)
	if handle.Log != nil {
		*handle.Log = append(*handle.Log, handle.Name+":"+command.Kind)
	}
	return handle.Err
}

func (handle *Handle) SetColor(target device.Target, color device.Color) error {
	return handle.record(Command{Kind: "color", Target: target, Color: color})
}

func (handle *Handle) RunPattern(pattern device.Pattern, repeat uint8) error {
	return handle.record(Command{Kind: "pattern", Pattern: pattern, Repeat: repeat})
}

func (handle *Handle) Wave(wave device.Wave, color device.Color, speed, repeat uint8) error {
	return handle.record(Command{Kind: "wave", Wave: wave, Color: color, Repeat: repeat})
}

func (handle *Handle) Close() error {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	handle.closed++
	if handle.Log != nil {
		*handle.Log = append(*handle.Log, handle.Name+":close")
	}
	return handle.CloseErr
}

// Commands returns a copy of the recorded commands.
func (handle *Handle) Commands() []Command {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return append([]Command(nil), handle.commands...)
}

// Colors returns only the colors of recorded color commands.
func (handle *Handle) Colors() []device.Color {
	var colors []device.Color
	for _, command := range handle.Commands() {
		if command.Kind == "color" {
			colors = append(colors, command.Color)
		}
	}
	return colors
}

// Count returns how many commands of kind were recorded.
func (handle *Handle) Count(kind string) int {
	count := 0
	for _, command := range handle.Commands() {
		if command.Kind == kind {
			count++
		}
	}
	return count
}

// Closed returns how many times Close was called.
func (handle *Handle) Closed() int {
	handle.mu.Lock()
	defer handle.mu.Unlock()
	return handle.closed
}

// Scanner hands out a scripted sequence of scan results.
type Scanner struct {
	mu      sync.Mutex
	Results [][]device.Handle
	Err     error
	scans   int
	Log     *[]string
}

func (scanner *Scanner) Scan() ([]device.Handle, error) {
	scanner.mu.Lock()
	defer scanner.mu.Unlock()
	scanner.scans++
	if scanner.Log != nil {
		*scanner.Log = append(*scanner.Log, "scan")
	}
	if scanner.Err != nil {
		return nil, scanner.Err
	}
	if len(scanner.Results) == 0 {
		return nil, nil
	}
	result := scanner.Results[0]
	scanner.Results = scanner.Results[1:]
	return result, nil
}

// Scans returns how many times Scan was called.
func (scanner *Scanner) Scans() int {
	scanner.mu.Lock()
	defer scanner.mu.Unlock()
	return scanner.scans
}

// Connected returns a status facade already bound to handle.
func Connected(handle device.Handle) (*device.Status, *device.Slot) {
	slot := device.NewSlot(&Scanner{Results: [][]device.Handle{{handle}}})
	_ = slot.Reconnect()
	return device.NewStatus(slot), slot
}
