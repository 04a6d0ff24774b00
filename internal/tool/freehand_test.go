package tool

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

func TestPenPathGrowsOnePointPerMove(t *testing.T) {
	h := newFakeHost()
	pen := h.buildTool(t, item.KindPen)

	pen.DrawStart(geom.NewPoint(0, 0))
	const moves = 25
	for i := 1; i <= moves; i++ {
		pen.DrawMove(geom.NewPoint(float32(i), float32(i)))
	}

	s, ok := h.drawing.(*item.Stroke)
	require.True(t, ok, "stroke accumulates in the in-progress slot")
	assert.Len(t, s.Points, moves+1)

	pen.DrawEnd()
	assert.Nil(t, h.drawing)
	require.Len(t, h.items, 1)
	assert.Equal(t, item.KindPen, h.items[0].Kind())
}

func TestPenCommitNotifiesOnce(t *testing.T) {
	h := newFakeHost()
	pen := h.buildTool(t, item.KindPen)

	pen.DrawStart(geom.NewPoint(0, 0))
	pen.DrawMove(geom.NewPoint(5, 5))
	pen.DrawEnd()

	committed := h.notifying()
	require.Len(t, committed, 1)
	assert.Equal(t, "add", committed[0].op)
	assert.Equal(t, item.KindPen, committed[0].kind)
}

func TestPenConvertsToWorldCoordinates(t *testing.T) {
	h := newFakeHost()
	h.coords.PanX, h.coords.PanY = 50, 50
	pen := h.buildTool(t, item.KindPen)

	pen.DrawStart(geom.NewPoint(60, 70))
	pen.DrawEnd()

	s := h.items[0].(*item.Stroke)
	require.Len(t, s.Points, 1)
	assert.Equal(t, geom.NewPoint(10, 20), s.Points[0])
}

func TestEraserCommitsEraserKind(t *testing.T) {
	h := newFakeHost()
	eraser := h.buildTool(t, item.KindEraser)

	eraser.DrawStart(geom.NewPoint(0, 0))
	eraser.DrawMove(geom.NewPoint(10, 10))
	eraser.DrawEnd()

	require.Len(t, h.items, 1)
	assert.Equal(t, item.KindEraser, h.items[0].Kind())
}

func TestFreehandAbortDropsStroke(t *testing.T) {
	h := newFakeHost()
	pen := h.buildTool(t, item.KindPen).(*freehandTool)

	pen.DrawStart(geom.NewPoint(0, 0))
	pen.DrawMove(geom.NewPoint(5, 5))
	pen.Abort()
	h.SetDrawingItem(nil) // the board clears the slot on abort
	pen.DrawEnd()

	assert.Empty(t, h.items)
	assert.Empty(t, h.notifying())
}

func TestFreehandMoveWithoutStartIsNoop(t *testing.T) {
	h := newFakeHost()
	pen := h.buildTool(t, item.KindPen)

	pen.DrawMove(geom.NewPoint(5, 5))
	pen.DrawEnd()

	assert.Empty(t, h.items)
	assert.Nil(t, h.drawing)
}
