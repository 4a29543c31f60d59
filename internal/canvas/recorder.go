package canvas

import (
	"fmt"
	"image/color"
	"io"

	"github.com/arcanaland/tableau/internal/layout"
)

// OpKind names a recorded surface call.
type OpKind int

const (
	OpMove OpKind = iota
	OpLine
	OpBeginFill
	OpEndFill
	OpColor
	OpPenSize
	OpDot
	OpWrite
	OpWriteUpsideDown
	OpCursor
)

var opNames = map[OpKind]string{
	OpMove:            "move",
	OpLine:            "line",
	OpBeginFill:       "begin_fill",
	OpEndFill:         "end_fill",
	OpColor:           "color",
	OpPenSize:         "pen_size",
	OpDot:             "dot",
	OpWrite:           "write",
	OpWriteUpsideDown: "write_upside_down",
	OpCursor:          "cursor",
}

func (k OpKind) String() string {
	if name, ok := opNames[k]; ok {
		return name
	}
	return fmt.Sprintf("op(%d)", int(k))
}

// Op is one recorded surface call.
type Op struct {
	Kind   OpKind
	Point  layout.Point
	Text   string
	Stroke color.Color
	Fill   color.Color
	Size   float64
	Show   bool
}

// Recorder is a Surface that keeps every call it receives. EndFill ops
// carry the fill colour that was current when the region was closed.
type Recorder struct {
	Ops []Op

	stroke color.Color
	fill   color.Color
}

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) MoveTo(p layout.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpMove, Point: p})
}

func (r *Recorder) LineTo(p layout.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpLine, Point: p, Stroke: r.stroke})
}

func (r *Recorder) BeginFill() {
	r.Ops = append(r.Ops, Op{Kind: OpBeginFill})
}

func (r *Recorder) EndFill() {
	r.Ops = append(r.Ops, Op{Kind: OpEndFill, Fill: r.fill})
}

func (r *Recorder) SetColor(stroke, fill color.Color) {
	r.stroke, r.fill = stroke, fill
	r.Ops = append(r.Ops, Op{Kind: OpColor, Stroke: stroke, Fill: fill})
}

func (r *Recorder) SetPenSize(width float64) {
	r.Ops = append(r.Ops, Op{Kind: OpPenSize, Size: width})
}

func (r *Recorder) Dot(p layout.Point, diameter float64) {
	r.Ops = append(r.Ops, Op{Kind: OpDot, Point: p, Size: diameter, Stroke: r.stroke})
}

func (r *Recorder) Write(p layout.Point, text string, f Font, a Align) {
	r.Ops = append(r.Ops, Op{Kind: OpWrite, Point: p, Text: text, Size: float64(f.Size)})
}

func (r *Recorder) WriteUpsideDown(p layout.Point, text string, f Font) {
	r.Ops = append(r.Ops, Op{Kind: OpWriteUpsideDown, Point: p, Text: text, Size: float64(f.Size)})
}

func (r *Recorder) ShowCursor(show bool) {
	r.Ops = append(r.Ops, Op{Kind: OpCursor, Show: show})
}

// Count returns how many ops of kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

// Filter returns the recorded ops of kind in order.
func (r *Recorder) Filter(kind OpKind) []Op {
	var ops []Op
	for _, op := range r.Ops {
		if op.Kind == kind {
			ops = append(ops, op)
		}
	}
	return ops
}

func (r *Recorder) Reset() {
	r.Ops = nil
}

// Dump writes one line per op, used for --trace output.
func (r *Recorder) Dump(w io.Writer) error {
	for i, op := range r.Ops {
		var err error
		switch op.Kind {
		case OpMove, OpLine:
			_, err = fmt.Fprintf(w, "%5d %-18s %v\n", i, op.Kind, op.Point)
		case OpDot:
			_, err = fmt.Fprintf(w, "%5d %-18s %v d=%g\n", i, op.Kind, op.Point, op.Size)
		case OpWrite, OpWriteUpsideDown:
			_, err = fmt.Fprintf(w, "%5d %-18s %v %q\n", i, op.Kind, op.Point, op.Text)
		case OpPenSize:
			_, err = fmt.Fprintf(w, "%5d %-18s %g\n", i, op.Kind, op.Size)
		case OpCursor:
			_, err = fmt.Fprintf(w, "%5d %-18s %t\n", i, op.Kind, op.Show)
		default:
			_, err = fmt.Fprintf(w, "%5d %s\n", i, op.Kind)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// Tee forwards every call to all of its surfaces in order.
type Tee []Surface

func (t Tee) MoveTo(p layout.Point) {
	for _, s := range t {
		s.MoveTo(p)
	}
}

func (t Tee) LineTo(p layout.Point) {
	for _, s := range t {
		s.LineTo(p)
	}
}

func (t Tee) BeginFill() {
	for _, s := range t {
		s.BeginFill()
	}
}

func (t Tee) EndFill() {
	for _, s := range t {
		s.EndFill()
	}
}

func (t Tee) SetColor(stroke, fill color.Color) {
	for _, s := range t {
		s.SetColor(stroke, fill)
	}
}

func (t Tee) SetPenSize(width float64) {
	for _, s := range t {
		s.SetPenSize(width)
	}
}

func (t Tee) Dot(p layout.Point, diameter float64) {
	for _, s := range t {
		s.Dot(p, diameter)
	}
}

func (t Tee) Write(p layout.Point, text string, f Font, a Align) {
	for _, s := range t {
		s.Write(p, text, f, a)
	}
}

func (t Tee) WriteUpsideDown(p layout.Point, text string, f Font) {
	for _, s := range t {
		s.WriteUpsideDown(p, text, f)
	}
}

func (t Tee) ShowCursor(show bool) {
	for _, s := range t {
		s.ShowCursor(show)
	}
}
