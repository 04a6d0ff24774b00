package tool

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// addRect puts a rect straight into the fake collection.
func addRect(h *fakeHost, x, y, w, hgt float32) *item.Rect {
	r := item.NewRect(x, y, item.ShapeOptions{StrokeColor: "#000000ff", StrokeWidth: 2})
	r.Width = w
	r.Height = hgt
	h.AddItem(r, false)
	return r
}

func TestPointerSelectTopmostWins(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer)

	addRect(h, 0, 0, 100, 100)
	b := addRect(h, 50, 50, 100, 100)

	// (60, 60) lies in the overlap; the most recently added rect wins.
	ptr.DrawStart(geom.NewPoint(60, 60))
	ptr.DrawEnd()

	assert.Equal(t, b.ID(), h.selected)
}

func TestPointerSelectMissClears(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer)
	a := addRect(h, 0, 0, 10, 10)
	h.selected = a.ID()

	ptr.DrawStart(geom.NewPoint(500, 500))
	ptr.DrawEnd()

	assert.Empty(t, h.selected)
}

func TestPointerDragInvariance(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer)
	r := addRect(h, 10, 10, 100, 50)
	h.selected = r.ID()

	ptr.DrawStart(geom.NewPoint(40, 30))
	ptr.DrawMove(geom.NewPoint(47, 33))
	ptr.DrawMove(geom.NewPoint(60, 45))
	ptr.DrawEnd()

	assert.InDelta(t, 30, r.X, 1e-4)
	assert.InDelta(t, 25, r.Y, 1e-4)
	assert.Equal(t, float32(100), r.Width)
	assert.Equal(t, float32(50), r.Height)
}

func TestPointerDragStartsOnHoveredItem(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer)
	r := addRect(h, 10, 10, 100, 50)
	h.SetHoveredID(r.ID())

	ptr.DrawStart(geom.NewPoint(40, 30))
	ptr.DrawMove(geom.NewPoint(50, 40))
	ptr.DrawEnd()

	assert.InDelta(t, 20, r.X, 1e-4)
	assert.Equal(t, r.ID(), h.selected, "dragging a hovered item selects it")
}

func TestPointerDragNotifiesOnlyOnRelease(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer)
	r := addRect(h, 10, 10, 100, 50)
	h.selected = r.ID()
	h.events = nil

	ptr.DrawStart(geom.NewPoint(40, 30))
	for i := 0; i < 10; i++ {
		ptr.DrawMove(geom.NewPoint(40+float32(i), 30))
	}
	ptr.DrawEnd()

	committed := h.notifying()
	require.Len(t, committed, 1)
	assert.Equal(t, "update", committed[0].op)
}

func TestPointerResizeHandlePrecision(t *testing.T) {
	// Rect (10,10,100,50) stroke 2 has bbox (9,9)-(111,61); each corner
	// handle owns a 10x10 world-unit hit box around it.
	cases := []struct {
		name       string
		start      geom.Point
		wantX      float32
		wantY      float32
		wantWidth  float32
		wantHeight float32
	}{
		{"se", geom.NewPoint(113, 63), 10, 10, 105, 54},
		{"nw", geom.NewPoint(7, 7), 15, 14, 95, 46},
		{"ne", geom.NewPoint(113, 7), 10, 14, 105, 46},
		{"sw", geom.NewPoint(7, 63), 15, 10, 95, 54},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			h := newFakeHost()
			ptr := h.buildTool(t, ToolPointer)
			r := addRect(h, 10, 10, 100, 50)
			h.selected = r.ID()

			ptr.DrawStart(tc.start)
			ptr.DrawMove(tc.start.Translate(5, 4))
			ptr.DrawEnd()

			assert.InDelta(t, tc.wantX, r.X, 1e-4)
			assert.InDelta(t, tc.wantY, r.Y, 1e-4)
			assert.InDelta(t, tc.wantWidth, r.Width, 1e-4)
			assert.InDelta(t, tc.wantHeight, r.Height, 1e-4)
		})
	}
}

func TestPointerResizeRequiresSelection(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer)
	r := addRect(h, 10, 10, 100, 50)

	// Handle-corner click without selection falls through to select.
	ptr.DrawStart(geom.NewPoint(110, 60))
	ptr.DrawMove(geom.NewPoint(115, 64))
	ptr.DrawEnd()

	assert.Equal(t, float32(100), r.Width)
	assert.Equal(t, r.ID(), h.selected)
}

func TestPointerHoverTracksTopmostItem(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer).(*pointerTool)
	r := addRect(h, 10, 10, 100, 50)

	ptr.HoverMove(geom.NewPoint(40, 30))
	assert.Equal(t, r.ID(), h.HoveredID(), "leading edge fires immediately")
}

func TestPointerHoverThrottled(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer).(*pointerTool)
	r := addRect(h, 10, 10, 100, 50)

	ptr.HoverMove(geom.NewPoint(40, 30))
	require.Equal(t, r.ID(), h.HoveredID())

	// Inside the window the miss is deferred, not dropped.
	ptr.HoverMove(geom.NewPoint(500, 500))
	assert.Equal(t, r.ID(), h.HoveredID())

	assert.Eventually(t, func() bool { return h.HoveredID() == "" },
		time.Second, 10*time.Millisecond, "trailing edge recomputes with the last point")
}

func TestPointerHoverSuppressedWhileDragging(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer).(*pointerTool)
	r := addRect(h, 10, 10, 100, 50)
	h.selected = r.ID()

	ptr.DrawStart(geom.NewPoint(40, 30))
	ptr.HoverMove(geom.NewPoint(500, 500))
	assert.Empty(t, h.HoveredID())
	ptr.DrawEnd()
}

func TestPointerDragCancelsQueuedHover(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer).(*pointerTool)
	r := addRect(h, 10, 10, 100, 50)
	other := addRect(h, 200, 10, 100, 50)
	h.selected = r.ID()

	// Prime the throttle window, then queue a trailing hover over the
	// other rect before starting the drag.
	ptr.HoverMove(geom.NewPoint(40, 30))
	require.Equal(t, r.ID(), h.HoveredID())
	ptr.HoverMove(geom.NewPoint(240, 30))

	ptr.DrawStart(geom.NewPoint(40, 30))
	ptr.DrawMove(geom.NewPoint(50, 40))

	assert.Never(t, func() bool { return h.HoveredID() == other.ID() },
		3*hoverInterval, 10*time.Millisecond,
		"a queued hover must not fire once a drag is in progress")
	ptr.DrawEnd()
}

func TestPointerGestureUsesPseudoItem(t *testing.T) {
	h := newFakeHost()
	ptr := h.buildTool(t, ToolPointer)

	ptr.DrawStart(geom.NewPoint(5, 5))
	require.NotNil(t, h.drawing)
	assert.Equal(t, item.KindPointer, h.drawing.Kind())

	ptr.DrawEnd()
	assert.Nil(t, h.drawing)
}
