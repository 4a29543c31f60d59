// Package render deals a game description onto a drawing context.
//
// Rendering happens in two steps. Layout turns a description into card
// placements and rejects unknown stacks or suits before anything is drawn.
// Render then draws each placement in deal order.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/arcanaland/tableau/internal/canvas"
	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/layout"
)

// Placement is one card to draw.
type Placement struct {
	Stack card.StackID
	Suit  card.SuitID
	Joker bool
	// Index is the card's position within its stack, counting jokers.
	Index  int
	Origin layout.Point
	// Cursor is where the pen rests once the card is drawn; labels are
	// written relative to it.
	Cursor layout.Point
	// Top and Bottom are the card-number labels. Jokers have none.
	Top, Bottom int
}

// Label returns the upper-left label text, empty for jokers.
func (p Placement) Label() string {
	if p.Joker {
		return ""
	}
	return strconv.Itoa(p.Top)
}

// Renderer draws game descriptions.
type Renderer struct {
	geom   layout.Geometry
	font   canvas.Font
	logger *log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger used for per-stack debug output.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		r.logger = l
	}
}

// WithFont overrides the label font family and style.
func WithFont(family, style string) Option {
	return func(r *Renderer) {
		r.font.Family = family
		r.font.Style = style
	}
}

// New returns a renderer for cards of the given geometry.
func New(geom layout.Geometry, opts ...Option) *Renderer {
	r := &Renderer{
		geom:   geom,
		font:   canvas.Font{Family: "Arial", Size: geom.FontSize, Style: "normal"},
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Geometry returns the card geometry in use.
func (r *Renderer) Geometry() layout.Geometry {
	return r.geom
}

// Layout computes the placements for g without drawing. Every deal's
// stack and suit are resolved before any placement is produced, so an
// invalid description yields an error and no placements.
//
// Count and Extra are expected to be within 0..card.MaxCards and
// 0..Count; other values are laid out as given.
func (r *Renderer) Layout(g card.GameDescription) ([]Placement, error) {
	anchors := make([]layout.Point, len(g))
	for i, d := range g {
		a, err := layout.Anchor(d.Stack)
		if err != nil {
			return nil, fmt.Errorf("deal %d: %w", i+1, err)
		}
		if _, err := iconFor(d.Suit); err != nil {
			return nil, fmt.Errorf("deal %d: %w", i+1, err)
		}
		anchors[i] = a
	}

	var placements []Placement
	for i, d := range g {
		for k := 0; k < d.Count+d.Extra; k++ {
			origin := r.geom.CardOrigin(anchors[i], k)
			p := Placement{
				Stack:  d.Stack,
				Suit:   d.Suit,
				Joker:  k >= d.Count,
				Index:  k,
				Origin: origin,
				Cursor: origin.Add(0, -r.geom.Step),
			}
			if !p.Joker {
				p.Top, p.Bottom = r.geom.CardNumbers(p.Cursor.Y)
			}
			placements = append(placements, p)
		}
	}
	return placements, nil
}

// Render draws g onto dc. Nothing is drawn when g holds an unknown stack
// or suit.
func (r *Renderer) Render(dc *canvas.Context, g card.GameDescription) error {
	placements, err := r.Layout(g)
	if err != nil {
		return err
	}

	for _, d := range g {
		r.logger.Debug("dealing stack", "stack", d.Stack, "suit", d.Suit.Theme(), "cards", d.Count, "extra", d.Extra)
	}

	for _, p := range placements {
		if err := r.drawCard(dc, p); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) drawCard(dc *canvas.Context, p Placement) error {
	dc.PenUp()
	dc.Goto(p.Origin)

	if p.Joker {
		drawJoker(dc, r.geom, p.Origin)
	} else {
		icon, err := iconFor(p.Suit)
		if err != nil {
			return err
		}
		icon(dc, r.geom, p.Origin)
		r.drawLabels(dc, p)
	}

	dc.PenUp()
	dc.SetHeading(0)
	dc.Goto(p.Cursor)
	return nil
}

// drawLabels writes the card number at the upper left and, rotated, at
// the lower right of the card.
func (r *Renderer) drawLabels(dc *canvas.Context, p Placement) {
	top, bottom := r.geom.LabelOffsets()
	dc.PenUp()
	dc.Pen(canvas.Named("black"))

	dc.Goto(p.Cursor.Add(top.X, top.Y))
	dc.Write(strconv.Itoa(p.Top), r.font, canvas.AlignLeft)

	dc.Goto(p.Cursor.Add(bottom.X, bottom.Y))
	dc.WriteUpsideDown(strconv.Itoa(p.Bottom), r.font)
}
