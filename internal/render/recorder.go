package render

import (
	"image/color"

	"github.com/plus3/spawnfield/internal/sprite"
)

// OpKind identifies a recorded paint call
type OpKind int

const (
	OpClear OpKind = iota
	OpFill
	OpGradient
	OpFrame
	OpLine
	OpSave
	OpRestore
	OpAlpha
)

var opNames = [...]string{"clear", "fill", "gradient", "frame", "line", "save", "restore", "alpha"}

func (k OpKind) String() string {
	if int(k) < len(opNames) {
		return opNames[k]
	}
	return "unknown"
}

// Op is one recorded call. X/Y/W/H hold the rectangle, or the line start and end
// in X/Y and X1/Y1. Alpha is the global alpha in effect when the call was made.
type Op struct {
	Kind   OpKind
	X, Y   float64
	W, H   float64
	X1, Y1 float64
	Sheet  string
	Frame  int
	Color  color.RGBA
	Alpha  float64
}

// Recorder is a Surface that remembers every call instead of painting
type Recorder struct {
	paintState
	Ops []Op
}

// NewRecorder returns an empty recorder with alpha 1
func NewRecorder() *Recorder {
	return &Recorder{paintState: newPaintState()}
}

// Reset drops recorded ops and paint state
func (r *Recorder) Reset() {
	r.Ops = r.Ops[:0]
	r.paintState = newPaintState()
}

// Count returns the number of recorded ops of kind
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of kind in call order
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Recorder) record(op Op) {
	op.Alpha = r.alpha
	r.Ops = append(r.Ops, op)
}

func (r *Recorder) ClearRect(x, y, w, h float64) {
	r.record(Op{Kind: OpClear, X: x, Y: y, W: w, H: h})
}

func (r *Recorder) FillRect(x, y, w, h float64, c color.Color) {
	r.record(Op{Kind: OpFill, X: x, Y: y, W: w, H: h, Color: color.RGBAModel.Convert(c).(color.RGBA)})
}

func (r *Recorder) FillGradient(x, y, w, h float64, top, _ color.Color) {
	r.record(Op{Kind: OpGradient, X: x, Y: y, W: w, H: h, Color: color.RGBAModel.Convert(top).(color.RGBA)})
}

func (r *Recorder) DrawFrame(sheet *sprite.Sheet, frame int, x, y, w, h float64) {
	op := Op{Kind: OpFrame, X: x, Y: y, W: w, H: h, Frame: frame}
	if sheet != nil {
		op.Sheet = sheet.Name
	}
	r.record(op)
}

func (r *Recorder) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {
	r.record(Op{Kind: OpLine, X: x0, Y: y0, X1: x1, Y1: y1, W: width, Color: color.RGBAModel.Convert(c).(color.RGBA)})
}

func (r *Recorder) Save() {
	r.paintState.Save()
	r.record(Op{Kind: OpSave})
}

func (r *Recorder) Restore() {
	r.paintState.Restore()
	r.record(Op{Kind: OpRestore})
}

func (r *Recorder) SetAlpha(alpha float64) {
	r.paintState.SetAlpha(alpha)
	r.record(Op{Kind: OpAlpha})
}

type discard struct{}

// Discard accepts every call and paints nothing
var Discard Surface = discard{}

func (discard) ClearRect(x, y, w, h float64) {}
func (discard) FillRect(x, y, w, h float64, c color.Color) {}
func (discard) FillGradient(x, y, w, h float64, top, bottom color.Color) {}
func (discard) DrawFrame(sheet *sprite.Sheet, frame int, x, y, w, h float64) {}
func (discard) StrokeLine(x0, y0, x1, y1, width float64, c color.Color) {}
func (discard) Save() {}
func (discard) Restore() {}
func (discard) SetAlpha(alpha float64) {}
