package ui

import (
	"image/color"
	"math"
	"testing"

	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcadia-tracker/arcadia-ui/internal/chart"
)

func TestCanvasSurface_Objects(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	surface := NewCanvasSurface(color.Black)
	arcs := []chart.Arc{
		{X: 100, Y: 100, StartAngle: -math.Pi / 2, EndAngle: math.Pi / 2, OuterRadius: 50},
		{X: 100, Y: 100, StartAngle: math.Pi / 2, EndAngle: 3 * math.Pi / 2, OuterRadius: 50},
	}
	chart.NewOuterLabels(nil).Draw(surface, arcs, []string{"Music", "Movies"})

	objects := surface.Objects()
	require.Len(t, objects, 6)

	first, ok := objects[0].(*canvas.Line)
	require.True(t, ok)
	assert.InDelta(t, 150, first.Position1.X, 0.01)
	assert.InDelta(t, 165, first.Position2.X, 0.01)
	assert.Equal(t, float32(1), first.StrokeWidth)

	right, ok := objects[4].(*canvas.Text)
	require.True(t, ok)
	assert.Equal(t, "Music", right.Text)
	assert.Equal(t, float32(11), right.TextSize)
	assert.InDelta(t, 189, right.Position().X, 0.01)

	left, ok := objects[5].(*canvas.Text)
	require.True(t, ok)
	// Right-aligned text ends at its anchor
	assert.InDelta(t, 11, left.Position().X+left.Size().Width, 0.01)
	assert.Less(t, left.Position().Y, float32(100))
	assert.Equal(t, color.Color(color.Black), left.Color)
}

func TestCanvasSurface_ThemeForeground(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	surface := NewCanvasSurface(nil)

	want := a.Settings().Theme().Color(theme.ColorNameForeground, a.Settings().ThemeVariant())
	assert.Equal(t, want, surface.ForegroundColor())
}

func TestFontSize(t *testing.T) {
	a := test.NewApp()
	defer a.Quit()

	assert.Equal(t, float32(11), fontSize("11px sans-serif"))
	assert.Equal(t, float32(13.5), fontSize(" 13.5px serif"))
	assert.Equal(t, theme.TextSize(), fontSize("bold"))
	assert.Equal(t, theme.TextSize(), fontSize("-2px"))
}
