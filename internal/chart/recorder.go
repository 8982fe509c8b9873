package chart

import "image/color"

// OpKind names a recorded Surface call
type OpKind string

const (
	OpSave            OpKind = "save"
	OpRestore         OpKind = "restore"
	OpSetFont         OpKind = "font"
	OpSetFillColor    OpKind = "fillStyle"
	OpSetStrokeColor  OpKind = "strokeStyle"
	OpSetLineWidth    OpKind = "lineWidth"
	OpBeginPath       OpKind = "beginPath"
	OpMoveTo          OpKind = "moveTo"
	OpLineTo          OpKind = "lineTo"
	OpStroke          OpKind = "stroke"
	OpSetTextAlign    OpKind = "textAlign"
	OpSetTextBaseline OpKind = "textBaseline"
	OpFillText        OpKind = "fillText"
)

// Op is one recorded call. Only the fields relevant to Kind are set.
type Op struct {
	Kind  OpKind
	X, Y  float64
	Width float64
	Text  string
	Color color.Color
}

// Point is a position on the surface
type Point struct {
	X, Y float64
}

// StrokedPath is a path as it was when Stroke was called
type StrokedPath struct {
	Points []Point
	Color  color.Color
	Width  float64
}

// FilledText is text as it was when FillText was called
type FilledText struct {
	Text     string
	At       Point
	Align    TextAlign
	Baseline TextBaseline
	Font     string
	Color    color.Color
}

type drawState struct {
	font     string
	fill     color.Color
	stroke   color.Color
	width    float64
	align    TextAlign
	baseline TextBaseline
}

// Recorder is a Surface that keeps every call plus the resolved strokes and
// texts, so drawing can be asserted in tests or replayed onto another canvas.
type Recorder struct {
	// Foreground is returned by ForegroundColor
	Foreground color.Color

	ops     []Op
	state   drawState
	saved   []drawState
	path    []Point
	strokes []StrokedPath
	texts   []FilledText
}

// NewRecorder creates a recorder with canvas defaults: black ink, 1 unit lines
func NewRecorder(foreground color.Color) *Recorder {
	return &Recorder{
		Foreground: foreground,
		state: drawState{
			font:     "10px sans-serif",
			fill:     color.Black,
			stroke:   color.Black,
			width:    1,
			align:    AlignLeft,
			baseline: "alphabetic",
		},
	}
}

func (r *Recorder) record(op Op) { r.ops = append(r.ops, op) }

func (r *Recorder) Save() {
	r.record(Op{Kind: OpSave})
	r.saved = append(r.saved, r.state)
}

func (r *Recorder) Restore() {
	r.record(Op{Kind: OpRestore})
	if n := len(r.saved); n > 0 {
		r.state = r.saved[n-1]
		r.saved = r.saved[:n-1]
	}
}

func (r *Recorder) SetFont(font string) {
	r.record(Op{Kind: OpSetFont, Text: font})
	r.state.font = font
}

func (r *Recorder) SetFillColor(c color.Color) {
	r.record(Op{Kind: OpSetFillColor, Color: c})
	r.state.fill = c
}

func (r *Recorder) SetStrokeColor(c color.Color) {
	r.record(Op{Kind: OpSetStrokeColor, Color: c})
	r.state.stroke = c
}

func (r *Recorder) SetLineWidth(w float64) {
	r.record(Op{Kind: OpSetLineWidth, Width: w})
	r.state.width = w
}

func (r *Recorder) BeginPath() {
	r.record(Op{Kind: OpBeginPath})
	r.path = nil
}

func (r *Recorder) MoveTo(x, y float64) {
	r.record(Op{Kind: OpMoveTo, X: x, Y: y})
	r.path = append(r.path, Point{X: x, Y: y})
}

func (r *Recorder) LineTo(x, y float64) {
	r.record(Op{Kind: OpLineTo, X: x, Y: y})
	r.path = append(r.path, Point{X: x, Y: y})
}

func (r *Recorder) Stroke() {
	r.record(Op{Kind: OpStroke})
	if len(r.path) < 2 {
		return
	}
	r.strokes = append(r.strokes, StrokedPath{
		Points: append([]Point(nil), r.path...),
		Color:  r.state.stroke,
		Width:  r.state.width,
	})
}

func (r *Recorder) SetTextAlign(a TextAlign) {
	r.record(Op{Kind: OpSetTextAlign, Text: string(a)})
	r.state.align = a
}

func (r *Recorder) SetTextBaseline(b TextBaseline) {
	r.record(Op{Kind: OpSetTextBaseline, Text: string(b)})
	r.state.baseline = b
}

func (r *Recorder) FillText(text string, x, y float64) {
	r.record(Op{Kind: OpFillText, Text: text, X: x, Y: y})
	r.texts = append(r.texts, FilledText{
		Text:     text,
		At:       Point{X: x, Y: y},
		Align:    r.state.align,
		Baseline: r.state.baseline,
		Font:     r.state.font,
		Color:    r.state.fill,
	})
}

func (r *Recorder) ForegroundColor() color.Color {
	return r.Foreground
}

// Ops returns every recorded call in order
func (r *Recorder) Ops() []Op { return r.ops }

// Strokes returns the stroked paths in drawing order
func (r *Recorder) Strokes() []StrokedPath { return r.strokes }

// Texts returns the filled texts in drawing order
func (r *Recorder) Texts() []FilledText { return r.texts }
