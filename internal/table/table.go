// Package table draws the felt card table the stacks are dealt onto.
package table

import (
	"fmt"
	"image/color"
	"math"

	"github.com/arcanaland/tableau/internal/canvas"
	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/layout"
)

// AxisFont is used for coordinate labels and stack names.
var AxisFont = canvas.Font{Family: "Consolas", Size: 10, Style: "normal"}

// Options controls what is drawn besides the felt and border.
type Options struct {
	ShowAxes bool
	// Background overrides the felt colour name.
	Background string
}

// Draw paints the table. With axes enabled it also writes x coordinates
// along the bottom, y coordinates down the left and marks every stack
// anchor. The context is left at home with a thin black pen.
func Draw(dc *canvas.Context, opts Options) error {
	bg := opts.Background
	if bg == "" {
		bg = "felt"
	}
	felt, err := canvas.ParseColor(bg)
	if err != nil {
		return err
	}
	lightGreen := canvas.Named("light green")

	fillFelt(dc, felt)
	dc.Color(lightGreen, lightGreen)
	dc.PenUp()

	if opts.ShowAxes {
		drawAxes(dc)
		drawStackMarkers(dc)
	}

	drawBorder(dc)

	dc.Color(canvas.Named("black"), canvas.Named("black"))
	dc.PenSize(1)
	dc.Home()
	return nil
}

// fillFelt covers the whole canvas, axis margins included.
func fillFelt(dc *canvas.Context, felt color.Color) {
	w, h := canvas.CanvasSize()
	hw, hh := float64(w)/2, float64(h)/2

	dc.PenUp()
	dc.Goto(layout.Point{X: -hw, Y: hh})
	dc.Color(felt, felt)
	dc.BeginFill()
	dc.Goto(layout.Point{X: hw, Y: hh})
	dc.Goto(layout.Point{X: hw, Y: -hh})
	dc.Goto(layout.Point{X: -hw, Y: -hh})
	dc.Goto(layout.Point{X: -hw, Y: hh})
	dc.EndFill()
}

func drawAxes(dc *canvas.Context) {
	for x := -layout.HalfWidth + layout.TicSep; x < layout.HalfWidth; x += layout.TicSep {
		dc.Goto(layout.Point{X: float64(x), Y: -layout.HalfHeight - layout.FontHeight})
		dc.Write(fmt.Sprintf("| %d", x), AxisFont, canvas.AlignLeft)
	}

	maxTic := int(math.Trunc(float64(layout.StackBase)/layout.TicSep)) * layout.TicSep
	for y := -maxTic; y < maxTic+layout.TicSep; y += layout.TicSep {
		dc.Goto(layout.Point{X: -layout.HalfWidth, Y: float64(y) - layout.FontHeight/2})
		dc.Write(fmt.Sprintf("%4d -", y), AxisFont, canvas.AlignRight)
	}
}

func drawStackMarkers(dc *canvas.Context) {
	half := math.Floor(layout.StackWidth() / 2)
	for _, s := range card.Stacks() {
		a, _ := layout.Anchor(s)

		dc.PenUp()
		dc.Goto(a)
		dc.Dot(7)

		dc.PenSize(2)
		dc.Goto(layout.Point{X: a.X - half, Y: a.Y})
		dc.SetHeading(0)
		dc.PenDown()
		dc.Forward(layout.StackWidth())
		dc.PenUp()

		dc.Goto(layout.Point{X: a.X - half, Y: a.Y + 4})
		dc.Write(fmt.Sprintf("%s: %s", s, a), AxisFont, canvas.AlignLeft)
	}
}

func drawBorder(dc *canvas.Context) {
	dc.PenUp()
	dc.PenSize(3)
	dc.Goto(layout.Point{X: -layout.HalfWidth, Y: layout.HalfHeight})
	dc.PenDown()
	dc.Goto(layout.Point{X: layout.HalfWidth, Y: layout.HalfHeight})
	dc.Goto(layout.Point{X: layout.HalfWidth, Y: -layout.HalfHeight})
	dc.Goto(layout.Point{X: -layout.HalfWidth, Y: -layout.HalfHeight})
	dc.Goto(layout.Point{X: -layout.HalfWidth, Y: layout.HalfHeight})
	dc.PenUp()
}
