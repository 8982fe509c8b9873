package ui

import (
	"image/color"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"

	"github.com/arcadia-tracker/arcadia-ui/internal/chart"
)

// CanvasSurface is a chart.Surface that turns the drawing calls into fyne
// canvas objects positioned in surface coordinates
type CanvasSurface struct {
	*chart.Recorder
}

// NewCanvasSurface creates a surface whose foreground is the given color,
// or the current theme's foreground when nil
func NewCanvasSurface(foreground color.Color) *CanvasSurface {
	if foreground == nil {
		foreground = ThemeForeground()
	}
	return &CanvasSurface{Recorder: chart.NewRecorder(foreground)}
}

// ThemeForeground returns the foreground color of the running app's theme,
// nil when no app is running
func ThemeForeground() color.Color {
	app := fyne.CurrentApp()
	if app == nil || app.Settings() == nil || app.Settings().Theme() == nil {
		return nil
	}
	return app.Settings().Theme().Color(theme.ColorNameForeground, app.Settings().ThemeVariant())
}

// Objects returns one canvas.Line per stroked segment and one canvas.Text
// per filled text, in drawing order
func (s *CanvasSurface) Objects() []fyne.CanvasObject {
	var objects []fyne.CanvasObject
	for _, stroke := range s.Strokes() {
		for i := 1; i < len(stroke.Points); i++ {
			line := canvas.NewLine(stroke.Color)
			line.StrokeWidth = float32(stroke.Width)
			line.Position1 = toPosition(stroke.Points[i-1])
			line.Position2 = toPosition(stroke.Points[i])
			objects = append(objects, line)
		}
	}
	for _, text := range s.Texts() {
		objects = append(objects, newCanvasText(text))
	}
	return objects
}

func newCanvasText(t chart.FilledText) *canvas.Text {
	text := canvas.NewText(t.Text, t.Color)
	text.TextSize = fontSize(t.Font)

	size := fyne.MeasureText(t.Text, text.TextSize, text.TextStyle)
	text.Resize(size)

	// canvas.Text is placed by its top-left corner
	x := float32(t.At.X)
	if t.Align == chart.AlignRight {
		x -= size.Width
	}
	y := float32(t.At.Y)
	if t.Baseline == chart.BaselineMiddle {
		y -= size.Height / 2
	}
	text.Move(fyne.NewPos(x, y))
	return text
}

func toPosition(p chart.Point) fyne.Position {
	return fyne.NewPos(float32(p.X), float32(p.Y))
}

// fontSize reads the pixel size of a CSS-style font such as "11px sans-serif"
func fontSize(font string) float32 {
	size, _, found := strings.Cut(strings.TrimSpace(font), "px")
	if !found {
		return theme.TextSize()
	}
	px, err := strconv.ParseFloat(size, 32)
	if err != nil || px <= 0 {
		return theme.TextSize()
	}
	return float32(px)
}
