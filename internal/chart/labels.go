package chart

import (
	"image/color"
	"math"

	"github.com/arcadia-tracker/arcadia-ui/internal/logger"
)

// Defaults of the outer label layout
const (
	DefaultMinSliceRatio = 0.03
	DefaultElbowLength   = 15.0
	DefaultTailLength    = 20.0
	DefaultTextGap       = 4.0
	DefaultFont          = "11px sans-serif"
	DefaultLineWidth     = 1.0
)

// DefaultTextColor is used when the surface reports no foreground color (#666)
var DefaultTextColor = color.NRGBA{R: 0x66, G: 0x66, B: 0x66, A: 0xff}

// OuterLabels draws each slice's label outside the pie, joined to the slice
// by a two-segment leader line: radially out from the rim to an elbow, then
// horizontally away from the center.
type OuterLabels struct {
	// MinSliceRatio is the share of the total angle below which a slice is
	// not labelled.
	MinSliceRatio float64
	ElbowLength   float64
	TailLength    float64
	TextGap       float64
	Font          string
	LineWidth     float64

	log logger.Logger
}

// NewOuterLabels returns a renderer with the default layout
func NewOuterLabels(log logger.Logger) *OuterLabels {
	return &OuterLabels{
		MinSliceRatio: DefaultMinSliceRatio,
		ElbowLength:   DefaultElbowLength,
		TailLength:    DefaultTailLength,
		TextGap:       DefaultTextGap,
		Font:          DefaultFont,
		LineWidth:     DefaultLineWidth,
		log:           logger.OrNop(log),
	}
}

// Draw renders labels[i] next to arcs[i]. Missing labels draw as empty
// text. Nothing is drawn when there are no arcs or they span no angle.
func (o *OuterLabels) Draw(s Surface, arcs []Arc, labels []string) {
	if len(arcs) == 0 {
		return
	}

	var total float64
	for _, arc := range arcs {
		total += arc.Angle()
	}
	if total <= 0 {
		o.log.Debug("pie labels skipped: arcs span no angle", logger.Int("arcs", len(arcs)))
		return
	}

	textColor := s.ForegroundColor()
	if textColor == nil {
		textColor = DefaultTextColor
	}

	s.Save()
	s.SetFont(o.Font)
	s.SetFillColor(textColor)
	s.SetStrokeColor(textColor)
	s.SetLineWidth(o.LineWidth)

	for i, arc := range arcs {
		if arc.Angle()/total < o.MinSliceRatio {
			o.log.Debug("pie label hidden for narrow slice",
				logger.Int("index", i), logger.Float64("ratio", arc.Angle()/total))
			continue
		}

		mid := arc.MidAngle()
		cos, sin := math.Cos(mid), math.Sin(mid)

		startX := arc.X + cos*arc.OuterRadius
		startY := arc.Y + sin*arc.OuterRadius
		elbowX := arc.X + cos*(arc.OuterRadius+o.ElbowLength)
		elbowY := arc.Y + sin*(arc.OuterRadius+o.ElbowLength)

		// Right half of the pie labels to the right, left half to the left
		direction, align := 1.0, AlignLeft
		if cos < 0 {
			direction, align = -1.0, AlignRight
		}
		endX := elbowX + direction*o.TailLength

		s.BeginPath()
		s.MoveTo(startX, startY)
		s.LineTo(elbowX, elbowY)
		s.LineTo(endX, elbowY)
		s.Stroke()

		label := ""
		if i < len(labels) {
			label = labels[i]
		}
		s.SetTextAlign(align)
		s.SetTextBaseline(BaselineMiddle)
		s.FillText(label, endX+direction*o.TextGap, elbowY)
	}

	s.Restore()
}
