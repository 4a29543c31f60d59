package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arcanaland/tableau/internal/canvas"
	"github.com/arcanaland/tableau/internal/layout"
)

func TestDrawWithAxes(t *testing.T) {
	rec := canvas.NewRecorder()
	dc := canvas.NewContext(rec)

	require.NoError(t, Draw(dc, Options{ShowAxes: true}))

	writes := rec.Filter(canvas.OpWrite)
	// 21 x tics, 15 y tics, 6 stack names
	assert.Len(t, writes, 42)
	assert.Equal(t, "| -500", writes[0].Text)
	assert.Equal(t, "| 500", writes[20].Text)
	assert.Equal(t, "-350 -", writes[21].Text)
	assert.Equal(t, " 350 -", writes[35].Text)
	assert.Equal(t, "Stack 1: [-449, 375]", writes[36].Text)

	assert.Equal(t, 6, rec.Count(canvas.OpDot))
	assert.Equal(t, 10, rec.Count(canvas.OpLine), "six stack bars and four border sides")
	assert.Equal(t, 1, rec.Count(canvas.OpEndFill))

	assert.Equal(t, layout.Point{}, dc.Position())
	assert.False(t, dc.IsDown())
}

func TestDrawWithoutAxes(t *testing.T) {
	rec := canvas.NewRecorder()
	require.NoError(t, Draw(canvas.NewContext(rec), Options{}))

	assert.Zero(t, rec.Count(canvas.OpWrite))
	assert.Zero(t, rec.Count(canvas.OpDot))
	assert.Equal(t, 4, rec.Count(canvas.OpLine))
}

func TestDrawBackground(t *testing.T) {
	err := Draw(canvas.NewContext(canvas.NewRecorder()), Options{Background: "no such colour"})
	assert.Error(t, err)

	rec := canvas.NewRecorder()
	require.NoError(t, Draw(canvas.NewContext(rec), Options{Background: "#334455"}))
	fills := rec.Filter(canvas.OpEndFill)
	require.Len(t, fills, 1)
	r, _, _, _ := fills[0].Fill.RGBA()
	assert.Equal(t, uint32(0x33), r>>8)
}

func TestStackLabelsMatchAnchors(t *testing.T) {
	rec := canvas.NewRecorder()
	require.NoError(t, Draw(canvas.NewContext(rec), Options{ShowAxes: true}))

	var names []string
	for _, op := range rec.Filter(canvas.OpWrite) {
		if strings.HasPrefix(op.Text, "Stack ") {
			names = append(names, op.Text)
		}
	}
	assert.Equal(t, []string{
		"Stack 1: [-449, 375]",
		"Stack 2: [-270, 375]",
		"Stack 3: [-91, 375]",
		"Stack 4: [88, 375]",
		"Stack 5: [267, 375]",
		"Stack 6: [446, 375]",
	}, names)
}
