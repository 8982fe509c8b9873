package ui

import (
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/arcadia-tracker/arcadia-ui/internal/chart"
	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
)

// PieChart is a pie with outer labels on a fixed-size drawing area
type PieChart struct {
	container *fyne.Container
	labels    *chart.OuterLabels
	size      fyne.Size
	radius    float64
	log       logger.Logger

	arcs   []chart.Arc
	colors []color.Color
}

// NewPieChart creates an empty chart
func NewPieChart(log logger.Logger) *PieChart {
	log = logger.OrNop(log)
	return &PieChart{
		container: container.NewWithoutLayout(),
		labels:    chart.NewOuterLabels(log),
		size:      fyne.NewSize(PieChartWidth, PieChartHeight),
		radius:    PieChartRadius,
		log:       log,
	}
}

// Container returns the canvas object holding the chart
func (p *PieChart) Container() *fyne.Container {
	return p.container
}

// Arcs returns the geometry of the current slices
func (p *PieChart) Arcs() []chart.Arc {
	return p.arcs
}

// SetData redraws the chart with one slice per value, labelled by names
func (p *PieChart) SetData(values []float64, names []string) {
	cx, cy := float64(p.size.Width)/2, float64(p.size.Height)/2
	p.arcs = chart.ArcsFromValues(values, cx, cy, p.radius)
	p.colors = make([]color.Color, len(p.arcs))
	for i := range p.arcs {
		p.colors[i] = SliceColor(i)
	}

	pie := canvas.NewRasterWithPixels(p.pixel)
	pie.SetMinSize(p.size)
	pie.Resize(p.size)

	surface := NewCanvasSurface(nil)
	p.labels.Draw(surface, p.arcs, names)

	p.container.Objects = append([]fyne.CanvasObject{pie}, surface.Objects()...)
	p.container.Resize(p.size)
	p.container.Refresh()

	p.log.Debug("pie chart updated", logger.Int("slices", len(p.arcs)))
}

// pixel maps raster pixels to slice colors
func (p *PieChart) pixel(x, y, w, h int) color.Color {
	if w == 0 || h == 0 || len(p.arcs) == 0 {
		return color.Transparent
	}
	// Raster pixels may be scaled relative to surface units
	px := (float64(x) + 0.5) * float64(p.size.Width) / float64(w)
	py := (float64(y) + 0.5) * float64(p.size.Height) / float64(h)
	return p.colorAt(px, py)
}

func (p *PieChart) colorAt(x, y float64) color.Color {
	first := p.arcs[0]
	dx, dy := x-first.X, y-first.Y
	if math.Hypot(dx, dy) > first.OuterRadius {
		return color.Transparent
	}

	angle := math.Atan2(dy, dx)
	for angle < chart.StartAngle {
		angle += 2 * math.Pi
	}
	for i, arc := range p.arcs {
		if angle >= arc.StartAngle && angle < arc.EndAngle {
			return p.colors[i]
		}
	}
	return color.Transparent
}
