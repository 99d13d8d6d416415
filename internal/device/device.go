package device

import "errors"

// ErrNoDevice indicates that discovery found no indicator device.
var ErrNoDevice = errors.New("no indicator device found")

// Color is a flat RGB value.
type Color struct {
	R uint8
	G uint8
	B uint8
}

var (
	ColorGreen = Color{G: 255}
	ColorRed   = Color{R: 255}
	ColorBlack = Color{}
	ColorWhite = Color{R: 255, G: 255, B: 255}
)

// Target selects which LEDs a color command applies to.
type Target uint8

const (
	TargetFront Target = 0x41
	TargetBack  Target = 0x42
	TargetAll   Target = 0xFF
)

// Pattern is a built-in animation stored on the device.
type Pattern uint8

const (
	PatternTrafficLights Pattern = 1
	PatternRandom1       Pattern = 2
	PatternRandom2       Pattern = 3
	PatternRandom3       Pattern = 4
	PatternPolice        Pattern = 5
	PatternRandom4       Pattern = 6
	PatternRandom5       Pattern = 7
	PatternRainbowWave   Pattern = 8
)

// Wave is a built-in wave shape.
type Wave uint8

const (
	WaveShort            Wave = 1
	WaveLong             Wave = 2
	WaveOverlappingShort Wave = 3
	WaveOverlappingLong  Wave = 4
)

// Handle is an open connection to one indicator device.
type Handle interface {
	SetColor(target Target, color Color) error
	RunPattern(pattern Pattern, repeat uint8) error
	Wave(wave Wave, color Color, speed, repeat uint8) error
	Close() error
}

// Scanner discovers connected indicator devices.
type Scanner interface {
	Scan() ([]Handle, error)
}
