package ui

import "image/color"

// Pie chart drawing area, in fyne units
const (
	PieChartWidth  float32 = 520
	PieChartHeight float32 = 320
	PieChartRadius         = 110.0
)

// Layout sizing
const (
	WindowWidth  float32 = 900
	WindowHeight float32 = 640
	SettingsW    float32 = 420
	SettingsH    float32 = 320
)

// Log levels offered in settings
var LogLevels = []string{"debug", "info", "warn", "error"}

// Text fragments
const (
	MiddleDotSeparator = " · "
	DashPlaceholder    = "—"
)

// Slice colors, cycled when a chart has more slices
var slicePalette = []color.Color{
	color.NRGBA{R: 0x36, G: 0xa2, B: 0xeb, A: 0xff},
	color.NRGBA{R: 0xff, G: 0x63, B: 0x84, A: 0xff},
	color.NRGBA{R: 0xff, G: 0x9f, B: 0x40, A: 0xff},
	color.NRGBA{R: 0xff, G: 0xcd, B: 0x56, A: 0xff},
	color.NRGBA{R: 0x4b, G: 0xc0, B: 0xc0, A: 0xff},
	color.NRGBA{R: 0x99, G: 0x66, B: 0xff, A: 0xff},
	color.NRGBA{R: 0xc9, G: 0xcb, B: 0xcf, A: 0xff},
	color.NRGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff},
}

// SliceColor returns the color of the i-th slice
func SliceColor(i int) color.Color {
	if i < 0 {
		i = -i
	}
	return slicePalette[i%len(slicePalette)]
}
