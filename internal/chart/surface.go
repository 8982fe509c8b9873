package chart

import "image/color"

// TextAlign is the horizontal anchor of drawn text relative to its x coordinate
type TextAlign string

const (
	AlignLeft  TextAlign = "left"
	AlignRight TextAlign = "right"
)

// TextBaseline is the vertical anchor of drawn text relative to its y coordinate
type TextBaseline string

const (
	BaselineMiddle TextBaseline = "middle"
)

// Surface is the subset of a 2D canvas context the renderers draw with
type Surface interface {
	Save()
	Restore()
	SetFont(font string)
	SetFillColor(c color.Color)
	SetStrokeColor(c color.Color)
	SetLineWidth(w float64)
	BeginPath()
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
	SetTextAlign(a TextAlign)
	SetTextBaseline(b TextBaseline)
	FillText(text string, x, y float64)
	// ForegroundColor is the computed text color of the host element, or
	// nil when the host has none.
	ForegroundColor() color.Color
}

// Arc is the rendered geometry of one pie slice. Angles are in radians,
// measured clockwise from the positive x axis in screen coordinates.
type Arc struct {
	X, Y        float64
	StartAngle  float64
	EndAngle    float64
	OuterRadius float64
}

// Angle returns the angular size of the slice
func (a Arc) Angle() float64 {
	return a.EndAngle - a.StartAngle
}

// MidAngle returns the angle bisecting the slice
func (a Arc) MidAngle() float64 {
	return (a.StartAngle + a.EndAngle) / 2
}
