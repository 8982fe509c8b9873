package chart

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArcsFromValues(t *testing.T) {
	t.Parallel()

	arcs := ArcsFromValues([]float64{1, 3, -2}, 10, 20, 30)
	require.Len(t, arcs, 3)

	assert.InDelta(t, -math.Pi/2, arcs[0].StartAngle, delta)
	assert.InDelta(t, math.Pi/2, arcs[0].Angle(), delta)
	assert.InDelta(t, arcs[0].EndAngle, arcs[1].StartAngle, delta)
	assert.InDelta(t, 3*math.Pi/2, arcs[1].Angle(), delta)
	assert.InDelta(t, 0, arcs[2].Angle(), delta)

	for _, arc := range arcs {
		assert.Equal(t, 10.0, arc.X)
		assert.Equal(t, 20.0, arc.Y)
		assert.Equal(t, 30.0, arc.OuterRadius)
	}
}

func TestArc_MidAngle(t *testing.T) {
	t.Parallel()

	arc := Arc{StartAngle: 0, EndAngle: math.Pi}
	assert.InDelta(t, math.Pi/2, arc.MidAngle(), delta)
}

func TestRecorder_SaveRestore(t *testing.T) {
	t.Parallel()

	rec := NewRecorder(nil)
	rec.Save()
	rec.SetFont("20px serif")
	rec.Restore()
	rec.FillText("x", 0, 0)

	require.Len(t, rec.Texts(), 1)
	assert.Equal(t, "10px sans-serif", rec.Texts()[0].Font)

	// Unbalanced restore is ignored
	rec.Restore()
	rec.BeginPath()
	rec.MoveTo(0, 0)
	rec.Stroke()
	assert.Empty(t, rec.Strokes())
}
