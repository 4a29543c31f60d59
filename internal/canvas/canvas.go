// Package canvas provides the drawing surface cards are rendered onto.
//
// A Surface is a plain pen plotter working in absolute table coordinates.
// Context layers turtle-style relative drawing (heading, forward, arcs)
// over a Surface and keeps all cursor state explicit.
package canvas

import (
	"image/color"

	"github.com/arcanaland/tableau/internal/layout"
)

// Align controls where written text sits relative to the cursor.
type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

func (a Align) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "left"
	}
}

// Font describes text styling. Surfaces treat it as a hint.
type Font struct {
	Family string
	Size   int
	Style  string
}

// Surface is the low-level drawing collaborator.
type Surface interface {
	// MoveTo lifts the pen and moves it to p.
	MoveTo(p layout.Point)
	// LineTo draws a line from the pen position to p.
	LineTo(p layout.Point)
	// BeginFill starts collecting the outline of a filled region.
	BeginFill()
	// EndFill fills the region visited since BeginFill.
	EndFill()
	SetColor(stroke, fill color.Color)
	SetPenSize(width float64)
	// Dot draws a filled circle of the stroke colour centred on p.
	Dot(p layout.Point, diameter float64)
	Write(p layout.Point, text string, f Font, a Align)
	// WriteUpsideDown writes text rotated 180 degrees about p.
	WriteUpsideDown(p layout.Point, text string, f Font)
	ShowCursor(show bool)
}
