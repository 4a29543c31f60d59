// Package layout holds the fixed geometry of the card table: its size,
// the six stack anchors and the dimensions of a card.
package layout

import (
	"fmt"
	"math"

	"github.com/arcanaland/tableau/internal/card"
)

// Table dimensions in canvas units.
const (
	TableWidth   = 1100
	TableHeight  = 800
	CanvasBorder = 30
	FontHeight   = 14
	TicSep       = 50
	TicsWidth    = 60

	HalfWidth  = TableWidth / 2
	HalfHeight = TableHeight / 2

	// StackBase is the y coordinate every stack starts from.
	StackBase = HalfHeight - 25

	// NumberScale divides a y coordinate to give a card-number label.
	NumberScale = 10

	// DefaultCardSize is the scale factor cards are derived from.
	DefaultCardSize = 10
)

// Point is a position on the table. The origin is the table centre and y
// grows upwards.
type Point struct {
	X, Y float64
}

func (p Point) Add(dx, dy float64) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

func (p Point) String() string {
	return fmt.Sprintf("[%d, %d]", int(p.X), int(p.Y))
}

// StackWidth is the widest a stack may be drawn.
func StackWidth() float64 {
	return float64(TableWidth) / float64(card.NumStacks+1)
}

// StackGap is the space between neighbouring stacks.
func StackGap() float64 {
	return math.Floor((TableWidth - card.NumStacks*StackWidth()) / (card.NumStacks + 1))
}

var anchors = computeAnchors()

func computeAnchors() [card.NumStacks]Point {
	var pts [card.NumStacks]Point
	sw := StackWidth()
	gap := StackGap()
	for i := range pts {
		x := -HalfWidth + float64(i+1)*gap + float64(i)*sw + sw/2
		// round away float noise before truncating towards zero
		x = math.Round(x*1e6) / 1e6
		pts[i] = Point{X: math.Trunc(x), Y: StackBase}
	}
	return pts
}

// Anchor returns the fixed marker position of a stack.
func Anchor(s card.StackID) (Point, error) {
	if !s.Valid() {
		return Point{}, fmt.Errorf("no anchor for %v: %w", s, card.ErrInvalidIdentifier)
	}
	return anchors[s.Index()], nil
}

// Anchors returns all stack anchors in table order.
func Anchors() [card.NumStacks]Point {
	return anchors
}

// Geometry holds the card dimensions derived from a single size factor.
type Geometry struct {
	Size       float64
	CardWidth  float64
	CardHeight float64
	Radius     float64
	// Step is how far each card in a stack sits below the previous one.
	Step     float64
	FontSize int
}

// NewGeometry derives card dimensions from size. Even sizes keep the
// label offsets on whole units.
func NewGeometry(size float64) Geometry {
	if size <= 0 {
		size = DefaultCardSize
	}
	return Geometry{
		Size:       size,
		CardWidth:  size * 12.6,
		CardHeight: size * 20,
		Radius:     size / 2,
		Step:       size * 6,
		FontSize:   int(size * 1.8),
	}
}

// CardOrigin returns the top-left corner of the k-th card (zero-based)
// dealt on a stack whose anchor is a.
func (g Geometry) CardOrigin(a Point, k int) Point {
	return Point{X: a.X - g.CardWidth/2, Y: a.Y - float64(k)*g.Step}
}

// LabelOffsets returns where the upper-left and the upside-down
// lower-right labels are written relative to the cursor left below a card.
func (g Geometry) LabelOffsets() (top, bottom Point) {
	top = Point{X: g.Size * 0.7, Y: g.Size * 2.4}
	bottom = Point{X: top.X + g.Size*10.5, Y: top.Y - g.Size*15.5}
	return top, bottom
}

// CardNumbers derives the two labels of a card from the y coordinate the
// cursor rests at once the card has been drawn. The numbers identify the
// stacking position, not a rank: cards at the same height always carry
// the same labels.
func (g Geometry) CardNumbers(y float64) (top, bottom int) {
	off, _ := g.LabelOffsets()
	top = int(math.Trunc((y + off.Y) / NumberScale))
	bottom = int(math.Trunc(y/NumberScale)) + int(math.Trunc(g.Size/5))
	return top, bottom
}
