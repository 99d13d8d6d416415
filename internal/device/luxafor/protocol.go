package luxafor

import "luxtray/internal/device"

const (
	VendorID  uint16 = 0x04D8
	ProductID uint16 = 0xF372

	reportSize = 8
)

const (
	commandColor   byte = 0x01
	commandWave    byte = 0x04
	commandPattern byte = 0x06
)

type report [reportSize]byte

func colorReport(target device.Target, color device.Color) report {
	return report{commandColor, byte(target), color.R, color.G, color.B}
}

func waveReport(wave device.Wave, color device.Color, speed, repeat uint8) report {
	return report{commandWave, byte(wave), color.R, color.G, color.B, 0, repeat, speed}
}

func patternReport(pattern device.Pattern, repeat uint8) report {
	return report{commandPattern, byte(pattern), repeat}
}

// wire prefixes the report with HID report id 0.
func (r report) wire() []byte {
	out := make([]byte, 0, reportSize+1)
	out = append(out, 0)
	return append(out, r[:]...)
}
