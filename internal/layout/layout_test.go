package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/tableau/internal/card"
)

func TestAnchors(t *testing.T) {
	want := []float64{-449, -270, -91, 88, 267, 446}
	for i, s := range card.Stacks() {
		a, err := Anchor(s)
		require.NoError(t, err)
		assert.Equal(t, want[i], a.X, "x of %v", s)
		assert.Equal(t, float64(StackBase), a.Y, "y of %v", s)
	}
}

func TestAnchorUnknownStack(t *testing.T) {
	_, err := Anchor(card.StackID(9))
	assert.ErrorIs(t, err, card.ErrInvalidIdentifier)
}

func TestStackSpacing(t *testing.T) {
	assert.InDelta(t, 157.142, StackWidth(), 0.001)
	assert.Equal(t, 22.0, StackGap())
}

func TestGeometry(t *testing.T) {
	g := NewGeometry(10)
	assert.InDelta(t, 126, g.CardWidth, 1e-9)
	assert.InDelta(t, 200, g.CardHeight, 1e-9)
	assert.InDelta(t, 5, g.Radius, 1e-9)
	assert.InDelta(t, 60, g.Step, 1e-9)
	assert.Equal(t, 18, g.FontSize)

	// non-positive sizes fall back to the default
	assert.Equal(t, NewGeometry(DefaultCardSize), NewGeometry(0))
}

func TestCardOrigin(t *testing.T) {
	g := NewGeometry(10)
	a := Point{X: -449, Y: 375}
	assert.Equal(t, Point{X: -512, Y: 375}, g.CardOrigin(a, 0))
	assert.Equal(t, Point{X: -512, Y: 255}, g.CardOrigin(a, 2))
}

func TestCardNumbers(t *testing.T) {
	g := NewGeometry(10)
	tests := []struct {
		y          float64
		top, bottom int
	}{
		{y: 315, top: 33, bottom: 33},
		{y: 255, top: 27, bottom: 27},
		{y: 15, top: 3, bottom: 3},
		{y: -45, top: -2, bottom: -2},
		{y: -225, top: -20, bottom: -20},
	}
	for _, tt := range tests {
		top, bottom := g.CardNumbers(tt.y)
		assert.Equal(t, tt.top, top, "top label at y=%v", tt.y)
		assert.Equal(t, tt.bottom, bottom, "bottom label at y=%v", tt.y)
	}
}

func TestPointString(t *testing.T) {
	assert.Equal(t, "[-449, 375]", Point{X: -449, Y: 375}.String())
}
