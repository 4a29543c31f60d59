package canvas

import (
	"image/color"
	"math"

	"github.com/arcanaland/tableau/internal/layout"
)

// Context is a turtle-style cursor over a Surface. Every drawing routine
// receives the Context explicitly; none of its state is global.
//
// Headings are in degrees, 0 pointing east and growing anticlockwise.
type Context struct {
	surface Surface

	pos     layout.Point
	heading float64
	penDown bool
	filling bool

	stroke color.Color
	fill   color.Color
}

// NewContext returns a Context at the origin, heading east, pen up.
func NewContext(s Surface) *Context {
	return &Context{
		surface: s,
		stroke:  color.Black,
		fill:    color.Black,
	}
}

// Surface returns the surface the context draws on.
func (c *Context) Surface() Surface {
	return c.surface
}

// Position returns the cursor position.
func (c *Context) Position() layout.Point {
	return c.pos
}

// Heading returns the cursor heading in degrees.
func (c *Context) Heading() float64 {
	return c.heading
}

func (c *Context) IsDown() bool {
	return c.penDown
}

func (c *Context) PenUp() {
	c.penDown = false
}

func (c *Context) PenDown() {
	c.penDown = true
}

// Goto moves the cursor to p, drawing when the pen is down.
func (c *Context) Goto(p layout.Point) {
	if c.penDown {
		c.surface.LineTo(p)
	} else {
		c.surface.MoveTo(p)
	}
	c.pos = p
}

// Jump moves the cursor to p without drawing, leaving the pen state as is.
func (c *Context) Jump(p layout.Point) {
	c.surface.MoveTo(p)
	c.pos = p
}

// Home lifts the pen and returns to the origin heading east.
func (c *Context) Home() {
	c.PenUp()
	c.Goto(layout.Point{})
	c.heading = 0
}

func (c *Context) SetHeading(deg float64) {
	c.heading = normalize(deg)
}

func (c *Context) Left(deg float64) {
	c.heading = normalize(c.heading + deg)
}

func (c *Context) Right(deg float64) {
	c.heading = normalize(c.heading - deg)
}

// Forward moves dist units along the heading.
func (c *Context) Forward(dist float64) {
	rad := c.heading * math.Pi / 180
	c.Goto(c.pos.Add(dist*math.Cos(rad), dist*math.Sin(rad)))
}

// Circle draws an arc of extent degrees with the given radius. A positive
// radius puts the centre to the left of the cursor and turns anticlockwise;
// a negative radius puts it to the right and turns clockwise. A negative
// extent runs the arc backwards.
func (c *Context) Circle(radius, extent float64) {
	if radius == 0 || extent == 0 {
		return
	}
	frac := math.Abs(extent) / 360
	steps := 1 + int(math.Min(11+math.Abs(radius)/6, 59)*frac)
	w := extent / float64(steps)
	w2 := w / 2
	l := 2 * radius * math.Sin(w2*math.Pi/180)
	if radius < 0 {
		l, w, w2 = -l, -w, -w2
	}
	c.Left(w2)
	for i := 0; i < steps; i++ {
		c.Forward(l)
		c.Left(w)
	}
	c.Left(-w2)
}

// Color sets the stroke and fill colours.
func (c *Context) Color(stroke, fill color.Color) {
	c.stroke, c.fill = stroke, fill
	c.surface.SetColor(stroke, fill)
}

// Pen sets only the stroke colour.
func (c *Context) Pen(stroke color.Color) {
	c.Color(stroke, c.fill)
}

func (c *Context) PenSize(width float64) {
	c.surface.SetPenSize(width)
}

func (c *Context) BeginFill() {
	c.filling = true
	c.surface.BeginFill()
}

func (c *Context) EndFill() {
	if !c.filling {
		return
	}
	c.filling = false
	c.surface.EndFill()
}

// Dot draws a filled circle at the cursor.
func (c *Context) Dot(diameter float64) {
	c.surface.Dot(c.pos, diameter)
}

func (c *Context) Write(text string, f Font, a Align) {
	c.surface.Write(c.pos, text, f, a)
}

func (c *Context) WriteUpsideDown(text string, f Font) {
	c.surface.WriteUpsideDown(c.pos, text, f)
}

func (c *Context) ShowCursor() {
	c.surface.ShowCursor(true)
}

func (c *Context) HideCursor() {
	c.surface.ShowCursor(false)
}

func normalize(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}
