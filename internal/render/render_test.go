package render

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/tableau/internal/canvas"
	"github.com/arcanaland/tableau/internal/card"
	"github.com/arcanaland/tableau/internal/game"
	"github.com/arcanaland/tableau/internal/layout"
)

func newRenderer() *Renderer {
	return New(layout.NewGeometry(layout.DefaultCardSize))
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return false
	}
	r1, g1, b1, a1 := a.RGBA()
	r2, g2, b2, a2 := b.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func fillsOf(rec *canvas.Recorder, name string) int {
	n := 0
	for _, op := range rec.Filter(canvas.OpEndFill) {
		if sameColor(op.Fill, canvas.Named(name)) {
			n++
		}
	}
	return n
}

func TestLayoutSingleStack(t *testing.T) {
	g := game.Literal(card.StackDeal{Stack: card.Stack3, Suit: card.SuitB, Count: 3, Extra: 1})

	placements, err := newRenderer().Layout(g)
	require.NoError(t, err)
	require.Len(t, placements, 4)

	anchor, _ := layout.Anchor(card.Stack3)
	for i, p := range placements {
		assert.Equal(t, i, p.Index)
		assert.Equal(t, card.Stack3, p.Stack)
		assert.Equal(t, anchor.X-63, p.Origin.X)
		assert.Equal(t, anchor.Y-float64(i)*60, p.Origin.Y)
		if i > 0 {
			assert.Less(t, p.Origin.Y, placements[i-1].Origin.Y, "each card sits lower than the last")
		}
	}

	for _, p := range placements[:3] {
		assert.False(t, p.Joker)
		assert.NotEmpty(t, p.Label())
	}
	assert.True(t, placements[3].Joker)
	assert.Empty(t, placements[3].Label())
}

func TestLayoutCardNumbers(t *testing.T) {
	g := game.Literal(card.StackDeal{Stack: card.Stack1, Suit: card.SuitA, Count: 3})

	placements, err := newRenderer().Layout(g)
	require.NoError(t, err)

	var tops, bottoms []int
	for _, p := range placements {
		tops = append(tops, p.Top)
		bottoms = append(bottoms, p.Bottom)
	}
	assert.Equal(t, []int{33, 27, 21}, tops)
	assert.Equal(t, []int{33, 27, 21}, bottoms)
}

func TestLayoutNumbersFollowPositionNotSuit(t *testing.T) {
	r := newRenderer()
	a, err := r.Layout(game.Literal(card.StackDeal{Stack: card.Stack2, Suit: card.SuitA, Count: 4}))
	require.NoError(t, err)
	b, err := r.Layout(game.Literal(card.StackDeal{Stack: card.Stack6, Suit: card.SuitD, Count: 4}))
	require.NoError(t, err)

	for i := range a {
		assert.Equal(t, a[i].Top, b[i].Top)
	}
}

func TestRenderCompleteness(t *testing.T) {
	rec := canvas.NewRecorder()
	dc := canvas.NewContext(rec)
	g := game.Literal(card.StackDeal{Stack: card.Stack3, Suit: card.SuitB, Count: 3, Extra: 1})

	require.NoError(t, newRenderer().Render(dc, g))

	writes := rec.Filter(canvas.OpWrite)
	flipped := rec.Filter(canvas.OpWriteUpsideDown)
	require.Len(t, writes, 3, "one upper label per suited card")
	require.Len(t, flipped, 3, "one lower label per suited card")
	assert.Equal(t, 1, fillsOf(rec, "magenta"), "one joker body")

	assert.Equal(t, []string{"33", "27", "21"}, []string{writes[0].Text, writes[1].Text, writes[2].Text})
	for i := 1; i < len(writes); i++ {
		assert.Less(t, writes[i].Point.Y, writes[i-1].Point.Y)
	}

	// the joker is drawn after every label, lower down the stack
	var jokerAt int
	for i, op := range rec.Ops {
		if op.Kind == canvas.OpEndFill && sameColor(op.Fill, canvas.Named("magenta")) {
			jokerAt = i
		}
	}
	var lastLabel int
	for i, op := range rec.Ops {
		if op.Kind == canvas.OpWriteUpsideDown {
			lastLabel = i
		}
	}
	assert.Greater(t, jokerAt, lastLabel)
}

func TestRenderIsDeterministic(t *testing.T) {
	g := game.Literal(card.StackDeal{Stack: card.Stack1, Suit: card.SuitC, Count: 5, Extra: 2})
	r := newRenderer()

	first := canvas.NewRecorder()
	require.NoError(t, r.Render(canvas.NewContext(first), g))
	second := canvas.NewRecorder()
	require.NoError(t, r.Render(canvas.NewContext(second), g))

	assert.Equal(t, first.Ops, second.Ops)
}

func TestRenderEmptyDescription(t *testing.T) {
	rec := canvas.NewRecorder()
	dc := canvas.NewContext(rec)

	require.NoError(t, newRenderer().Render(dc, nil))
	require.NoError(t, newRenderer().Render(dc, card.GameDescription{}))

	assert.Empty(t, rec.Ops)
	assert.Equal(t, layout.Point{}, dc.Position())
}

func TestRenderEmptyStackDrawsNothing(t *testing.T) {
	rec := canvas.NewRecorder()
	g := game.Literal(card.StackDeal{Stack: card.Stack4, Suit: card.SuitC})

	require.NoError(t, newRenderer().Render(canvas.NewContext(rec), g))
	assert.Empty(t, rec.Ops)
}

func TestRenderInvalidIdentifier(t *testing.T) {
	tests := []struct {
		name string
		game card.GameDescription
	}{
		{
			name: "unknown stack",
			game: game.Literal(card.StackDeal{Stack: card.StackID(9), Suit: card.SuitA, Count: 1}),
		},
		{
			name: "unknown suit",
			game: game.Literal(card.StackDeal{Stack: card.Stack1, Suit: card.SuitID(5), Count: 1}),
		},
		{
			name: "bad entry after a good one",
			game: game.Literal(
				card.StackDeal{Stack: card.Stack1, Suit: card.SuitA, Count: 2},
				card.StackDeal{Stack: card.StackID(0), Suit: card.SuitA, Count: 1},
			),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := canvas.NewRecorder()
			err := newRenderer().Render(canvas.NewContext(rec), tt.game)
			assert.ErrorIs(t, err, card.ErrInvalidIdentifier)
			assert.Empty(t, rec.Ops, "nothing is drawn for an invalid description")
		})
	}
}

func TestRenderStacksAreIndependent(t *testing.T) {
	g := game.Literal(
		card.StackDeal{Stack: card.Stack6, Suit: card.SuitD, Count: 9, Extra: 6},
		card.StackDeal{Stack: card.Stack2, Suit: card.SuitA, Count: 1},
	)
	placements, err := newRenderer().Layout(g)
	require.NoError(t, err)
	require.Len(t, placements, 16)

	last := placements[15]
	anchor, _ := layout.Anchor(card.Stack2)
	assert.Equal(t, card.Stack2, last.Stack)
	assert.Equal(t, 0, last.Index)
	assert.Equal(t, layout.Point{X: anchor.X - 63, Y: anchor.Y}, last.Origin)
}

func TestRenderEverySuitOnRaster(t *testing.T) {
	g, err := game.Fixed(8)
	require.NoError(t, err)
	g = append(g, card.StackDeal{Stack: card.Stack5, Suit: card.SuitA, Count: 2, Extra: 2})

	w, h := canvas.CanvasSize()
	r := canvas.NewRaster(w, h, canvas.Named("felt"))
	require.NoError(t, newRenderer().Render(canvas.NewContext(r), g))

	var buf bytes.Buffer
	require.NoError(t, r.WritePNG(&buf))
	assert.NotZero(t, buf.Len())
}

func TestRenderLogsStacks(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	r := New(layout.NewGeometry(10), WithLogger(logger), WithFont("Courier", "bold"))

	g := game.Literal(card.StackDeal{Stack: card.Stack1, Suit: card.SuitB, Count: 1})
	require.NoError(t, r.Render(canvas.NewContext(canvas.NewRecorder()), g))

	assert.Contains(t, buf.String(), "dealing stack")
	assert.Contains(t, buf.String(), "watermelon")
}
