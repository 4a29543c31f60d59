package render

import (
	"fmt"
	"math"

	"github.com/arcanaland/tableau/internal/canvas"
	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/layout"
)

// iconFunc draws a complete card, body and artwork, whose top-left corner
// is origin.
type iconFunc func(dc *canvas.Context, g layout.Geometry, origin layout.Point)

var icons = map[card.SuitID]iconFunc{
	card.SuitA: drawOrange,
	card.SuitB: drawWatermelon,
	card.SuitC: drawStrawberry,
	card.SuitD: drawAvocado,
}

func iconFor(s card.SuitID) (iconFunc, error) {
	icon, ok := icons[s]
	if !ok {
		return nil, fmt.Errorf("no artwork for %v: %w", s, card.ErrInvalidIdentifier)
	}
	return icon, nil
}

// drawCardBody draws the rounded card outline clockwise from origin and
// fills it.
func drawCardBody(dc *canvas.Context, g layout.Geometry, origin layout.Point, fill string) {
	dc.PenUp()
	dc.Goto(origin)
	dc.Color(canvas.Named("black"), canvas.Named(fill))
	dc.SetHeading(0)
	dc.PenDown()
	dc.BeginFill()
	for i := 0; i < 2; i++ {
		dc.Forward(g.CardWidth)
		dc.Circle(-g.Radius, 90)
		dc.Forward(g.CardHeight)
		dc.Circle(-g.Radius, 90)
	}
	dc.EndFill()
	dc.PenUp()
}

// faceCentre returns the middle of the card face.
func faceCentre(g layout.Geometry, origin layout.Point) layout.Point {
	return origin.Add(g.CardWidth/2, -g.Radius-g.CardHeight/2)
}

// disc fills a circle of the given radius centred on c.
func disc(dc *canvas.Context, c layout.Point, radius float64, stroke, fill string) {
	dc.PenUp()
	dc.Goto(c.Add(0, -radius))
	dc.SetHeading(0)
	dc.Color(canvas.Named(stroke), canvas.Named(fill))
	dc.PenDown()
	dc.BeginFill()
	dc.Circle(radius, 360)
	dc.EndFill()
	dc.PenUp()
}

// ellipse fills an axis-aligned ellipse rotated by tilt degrees.
func ellipse(dc *canvas.Context, c layout.Point, rx, ry, tilt float64, stroke, fill string) {
	const sides = 36
	rad := tilt * math.Pi / 180
	point := func(i int) layout.Point {
		a := 2 * math.Pi * float64(i) / sides
		x, y := rx*math.Cos(a), ry*math.Sin(a)
		return c.Add(x*math.Cos(rad)-y*math.Sin(rad), x*math.Sin(rad)+y*math.Cos(rad))
	}

	dc.PenUp()
	dc.Goto(point(0))
	dc.Color(canvas.Named(stroke), canvas.Named(fill))
	dc.PenDown()
	dc.BeginFill()
	for i := 1; i <= sides; i++ {
		dc.Goto(point(i))
	}
	dc.EndFill()
	dc.PenUp()
}

// polygon fills the closed outline through pts.
func polygon(dc *canvas.Context, pts []layout.Point, stroke, fill string) {
	if len(pts) == 0 {
		return
	}
	dc.PenUp()
	dc.Goto(pts[0])
	dc.Color(canvas.Named(stroke), canvas.Named(fill))
	dc.PenDown()
	dc.BeginFill()
	for _, p := range pts[1:] {
		dc.Goto(p)
	}
	dc.Goto(pts[0])
	dc.EndFill()
	dc.PenUp()
}

func seeds(dc *canvas.Context, pts []layout.Point, diameter float64, colour string) {
	dc.Pen(canvas.Named(colour))
	for _, p := range pts {
		dc.PenUp()
		dc.Goto(p)
		dc.Dot(diameter)
	}
}

func drawOrange(dc *canvas.Context, g layout.Geometry, origin layout.Point) {
	drawCardBody(dc, g, origin, "white")
	s := g.Size
	c := faceCentre(g, origin).Add(0, -s)

	disc(dc, c, s*4.5, "black", "orange")
	stem := c.Add(0, s*4.5)
	ellipse(dc, stem.Add(-s*1.2, s*0.8), s*1.6, s*0.6, 30, "black", "green")
	ellipse(dc, stem.Add(s*1.2, s*0.8), s*1.6, s*0.6, -30, "black", "green")
}

func drawWatermelon(dc *canvas.Context, g layout.Geometry, origin layout.Point) {
	drawCardBody(dc, g, origin, "white")
	s := g.Size
	c := faceCentre(g, origin).Add(0, s*2)

	// slice: rind then flesh, both as downward half discs
	half := func(radius float64, fill string) {
		dc.PenUp()
		dc.Goto(c.Add(-radius, 0))
		dc.Color(canvas.Named("black"), canvas.Named(fill))
		dc.SetHeading(270)
		dc.PenDown()
		dc.BeginFill()
		dc.Circle(radius, 180)
		dc.Goto(c.Add(-radius, 0))
		dc.EndFill()
		dc.PenUp()
	}
	half(s*5, "dark green")
	half(s*4.2, "red")

	seeds(dc, []layout.Point{
		c.Add(-s*2, -s*1.2),
		c.Add(0, -s*2),
		c.Add(s*2, -s*1.2),
		c.Add(-s, -s*3),
		c.Add(s, -s*3),
	}, s*0.6, "black")
}

func drawStrawberry(dc *canvas.Context, g layout.Geometry, origin layout.Point) {
	drawCardBody(dc, g, origin, "white")
	s := g.Size
	c := faceCentre(g, origin)

	body := []layout.Point{
		c.Add(-s*3.5, s*2),
		c.Add(-s*2.5, s*3),
		c.Add(0, s*3.2),
		c.Add(s*2.5, s*3),
		c.Add(s*3.5, s*2),
		c.Add(s*3, -s*0.5),
		c.Add(s*1.5, -s*3),
		c.Add(0, -s*4.5),
		c.Add(-s*1.5, -s*3),
		c.Add(-s*3, -s*0.5),
	}
	polygon(dc, body, "black", "crimson")

	top := c.Add(0, s*3.2)
	polygon(dc, []layout.Point{
		top.Add(-s*2.5, 0),
		top.Add(-s*0.8, s*0.6),
		top.Add(0, s*2),
		top.Add(s*0.8, s*0.6),
		top.Add(s*2.5, 0),
		top.Add(0, -s*0.8),
	}, "black", "green")

	seeds(dc, []layout.Point{
		c.Add(-s*1.5, s*1.2),
		c.Add(s*1.5, s*1.2),
		c.Add(0, 0),
		c.Add(-s, -s*1.6),
		c.Add(s, -s*1.6),
		c.Add(0, -s*3),
	}, s*0.5, "yellow")
}

func drawAvocado(dc *canvas.Context, g layout.Geometry, origin layout.Point) {
	drawCardBody(dc, g, origin, "white")
	s := g.Size
	c := faceCentre(g, origin)

	ellipse(dc, c, s*3.6, s*5.4, 0, "black", "olive")
	ellipse(dc, c.Add(0, -s*0.2), s*2.9, s*4.6, 0, "black", "khaki")
	disc(dc, c.Add(0, -s*1.2), s*1.8, "black", "brown")
}

// drawJoker draws the joker card: a magenta card holding a glass with a
// drink and a straw. Jokers carry no number.
func drawJoker(dc *canvas.Context, g layout.Geometry, origin layout.Point) {
	drawCardBody(dc, g, origin, "magenta")
	s := g.Size

	cup := origin.Add(g.CardWidth/3.2, -g.CardHeight/3.5)
	rect := func(tl layout.Point, w, h float64, fill string) {
		polygon(dc, []layout.Point{tl, tl.Add(w, 0), tl.Add(w, -h), tl.Add(0, -h)}, "black", fill)
	}
	rect(cup, s*5, s*10, "white")
	rect(cup.Add(0, -s*2), s*5, s*8, "light blue")

	dc.PenUp()
	dc.Goto(cup.Add(s*4, -s*2))
	dc.Color(canvas.Named("black"), canvas.Named("black"))
	dc.SetHeading(80)
	dc.PenSize(2)
	dc.PenDown()
	dc.Forward(s * 5)
	dc.Left(100)
	dc.Forward(s * 1.5)
	dc.PenUp()
	dc.PenSize(1)
}
