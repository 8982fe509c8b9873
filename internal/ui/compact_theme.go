package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"
)

// CompactTheme is the default theme with tighter spacing, smaller text and
// the tracker's accent colors
type CompactTheme struct {
	fyne.Theme
}

// NewCompactTheme creates a new compact theme
func NewCompactTheme() fyne.Theme {
	return &CompactTheme{Theme: theme.DefaultTheme()}
}

type variantColors struct {
	light, dark color.Color
}

var compactColors = map[fyne.ThemeColorName]variantColors{
	theme.ColorNamePrimary: {
		light: color.NRGBA{R: 0x36, G: 0xa2, B: 0xeb, A: 0xff},
		dark:  color.NRGBA{R: 0x5c, G: 0xb6, B: 0xf2, A: 0xff},
	},
	theme.ColorNameSuccess: {
		light: color.NRGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff},
		dark:  color.NRGBA{R: 0x2e, G: 0xa0, B: 0x43, A: 0xff},
	},
	theme.ColorNameError: {
		light: color.NRGBA{R: 0xb7, G: 0x1c, B: 0x1c, A: 0xff},
		dark:  color.NRGBA{R: 0xef, G: 0x53, B: 0x50, A: 0xff},
	},
	theme.ColorNameBackground: {
		light: color.NRGBA{R: 0xfa, G: 0xfa, B: 0xfa, A: 0xff},
		dark:  color.NRGBA{R: 0x1b, G: 0x1d, B: 0x22, A: 0xff},
	},
	// Chart labels read this, so it matches the muted label gray in light mode
	theme.ColorNameForeground: {
		light: color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff},
		dark:  color.NRGBA{R: 0xe6, G: 0xe6, B: 0xe6, A: 0xff},
	},
}

// Color returns theme colors
func (t *CompactTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	if c, ok := compactColors[name]; ok {
		if variant == theme.VariantDark {
			return c.dark
		}
		return c.light
	}
	return t.Theme.Color(name, variant)
}

var compactSizes = map[fyne.ThemeSizeName]float32{
	theme.SizeNamePadding:         3,
	theme.SizeNameInnerPadding:    6,
	theme.SizeNameLineSpacing:     2,
	theme.SizeNameScrollBar:       12,
	theme.SizeNameText:            13,
	theme.SizeNameHeadingText:     17,
	theme.SizeNameSubHeadingText:  14,
	theme.SizeNameCaptionText:     10,
	theme.SizeNameInputRadius:     3,
	theme.SizeNameSelectionRadius: 2,
}

// Size returns theme sizes with compact adjustments
func (t *CompactTheme) Size(name fyne.ThemeSizeName) float32 {
	if size, ok := compactSizes[name]; ok {
		return size
	}
	return t.Theme.Size(name)
}
