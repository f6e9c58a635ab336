// Package plottest provides a plot.Canvas that records what is drawn, for
// rendering frames without a window.
package plottest

import (
	plot "github.com/DeltaTestSoftware/teslaplot"
)

const (
	GlyphWidth  = 8
	GlyphHeight = 16
)

type OpKind string

const (
	Point   OpKind = "point"
	Line    OpKind = "line"
	Rect    OpKind = "rect"
	Fill    OpKind = "fill"
	Ellipse OpKind = "ellipse"
	Text    OpKind = "text"
)

// Op is one drawing call. Lines store their end point in W and H.
type Op struct {
	Kind  OpKind
	X, Y  int
	W, H  int
	Text  string
	Color plot.Color
}

// Recorder is a fixed size plot.Canvas with monospaced glyph metrics.
type Recorder struct {
	Width  int
	Height int
	Ops    []Op
}

func NewRecorder(width, height int) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (int, int) {
	return r.Width, r.Height
}

func (r *Recorder) DrawPoint(x, y int, color plot.Color) {
	r.Ops = append(r.Ops, Op{Kind: Point, X: x, Y: y, Color: color})
}

func (r *Recorder) DrawLine(fromX, fromY, toX, toY int, color plot.Color) {
	r.Ops = append(r.Ops, Op{Kind: Line, X: fromX, Y: fromY, W: toX, H: toY, Color: color})
}

func (r *Recorder) DrawRect(x, y, width, height int, color plot.Color) {
	r.Ops = append(r.Ops, Op{Kind: Rect, X: x, Y: y, W: width, H: height, Color: color})
}

func (r *Recorder) FillRect(x, y, width, height int, color plot.Color) {
	r.Ops = append(r.Ops, Op{Kind: Fill, X: x, Y: y, W: width, H: height, Color: color})
}

func (r *Recorder) DrawEllipse(x, y, width, height int, color plot.Color) {
	r.Ops = append(r.Ops, Op{Kind: Ellipse, X: x, Y: y, W: width, H: height, Color: color})
}

func (r *Recorder) GetTextSize(text string) (int, int) {
	return len([]rune(text)) * GlyphWidth, GlyphHeight
}

func (r *Recorder) DrawText(text string, x, y int, color plot.Color) {
	r.Ops = append(r.Ops, Op{Kind: Text, X: x, Y: y, Text: text, Color: color})
}

// Texts returns every drawn string in drawing order.
func (r *Recorder) Texts() []string {
	var texts []string
	for _, op := range r.Ops {
		if op.Kind == Text {
			texts = append(texts, op.Text)
		}
	}
	return texts
}

func (r *Recorder) Has(text string) bool {
	for _, t := range r.Texts() {
		if t == text {
			return true
		}
	}
	return false
}

func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the ops matching keep.
func (r *Recorder) Filter(keep func(Op) bool) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if keep(op) {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
}

var _ plot.Canvas = (*Recorder)(nil)
