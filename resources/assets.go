package resources

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"sync"

	"fyne.io/fyne/v2"
)

const iconSize = 64

// IconKind selects a tray icon.
type IconKind string

const (
	IconAvailable IconKind = "available"
	IconBusy      IconKind = "busy"
	IconOff       IconKind = "off"
)

var iconColors = map[IconKind]color.NRGBA{
	IconAvailable: {R: 0, G: 200, B: 70, A: 255},
	IconBusy:      {R: 220, G: 30, B: 30, A: 255},
	IconOff:       {R: 120, G: 120, B: 120, A: 255},
}

var iconCache sync.Map

// Icon returns a Fyne resource for the given tray icon.
func Icon(kind IconKind) (fyne.Resource, error) {
	if cached, ok := iconCache.Load(kind); ok {
		return cached.(fyne.Resource), nil
	}

	fill, ok := iconColors[kind]
	if !ok {
		return nil, fmt.Errorf("load icon %s: unknown kind", kind)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, drawDisc(fill)); err != nil {
		return nil, fmt.Errorf("encode icon %s: %w", kind, err)
	}

	resource := fyne.NewStaticResource("luxtray-"+string(kind)+".png", buf.Bytes())
	iconCache.Store(kind, resource)
	return resource, nil
}

// MustIcon returns a Fyne resource or panics on error.
func MustIcon(kind IconKind) fyne.Resource {
	resource, err := Icon(kind)
	if err != nil {
		panic(err)
	}
	return resource
}

// drawDisc renders a filled circle with a light rim on a transparent square.
func drawDisc(fill color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, iconSize, iconSize))
	rim := color.NRGBA{R: 255, G: 255, B: 255, A: 230}
	center := float64(iconSize-1) / 2
	outer := center - 1
	inner := outer - 4

	for y := 0; y < iconSize; y++ {
		for x := 0; x < iconSize; x++ {
			dx := float64(x) - center
			dy := float64(y) - center
			dist := dx*dx + dy*dy
			switch {
			case dist <= inner*inner:
				img.SetNRGBA(x, y, fill)
			case dist <= outer*outer:
				img.SetNRGBA(x, y, rim)
			}
		}
	}
	return img
}
