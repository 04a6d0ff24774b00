package tool

import (
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// ToolPointer is the selection/drag/resize tool's registry name.
const ToolPointer = "pointer"

// handleBoxSize is the edge length, in world units, of the hit box
// around each resize handle.
const handleBoxSize float32 = 10

// hoverInterval bounds how often plain mouse movement re-runs the
// hit test.
const hoverInterval = 150 * time.Millisecond

type pointerState int

const (
	pointerIdle pointerState = iota
	pointerDragging
	pointerResizing
)

// pointerTool enters exactly one of three states on drawing-start:
// resizing when the start lands in a handle box of the selected
// resizable item, dragging when it lands on the selected or hovered
// item, and plain selection otherwise. Moves feed world-space deltas
// since the previous move into the target item. Hover tracking runs
// only while idle.
type pointerTool struct {
	host Host

	state    pointerState
	targetID string
	handle   string
	last     geom.Point

	hover *throttle
}

func init() {
	register(ToolPointer, func(h Host) Tool {
		return &pointerTool{host: h, hover: newThrottle(hoverInterval)}
	})
}

func (t *pointerTool) Name() string { return ToolPointer }

func (t *pointerTool) Activated() {}

func (t *pointerTool) Deactivated() {
	t.reset()
	t.host.SetHoveredID("")
}

func (t *pointerTool) reset() {
	t.state = pointerIdle
	t.targetID = ""
	t.handle = ""
	t.hover.Stop()
}

func (t *pointerTool) DrawStart(p geom.Point) {
	// A trailing hover queued just before the gesture must not fire
	// mid-drag.
	t.hover.Stop()

	w := t.host.Coords().ToWorld(p)
	t.last = w
	t.host.SetDrawingItem(item.NewPointer())

	if sel := t.host.SelectedID(); sel != "" {
		if r, ok := t.host.ItemByID(sel).(item.Resizable); ok {
			if h := t.handleAt(r, w); h != "" {
				t.state = pointerResizing
				t.targetID = sel
				t.handle = h
				return
			}
		}
	}

	hit := t.hitTest(w)
	if hit != "" && (hit == t.host.SelectedID() || hit == t.host.HoveredID()) {
		t.state = pointerDragging
		t.targetID = hit
		t.host.SetSelectedID(hit)
		return
	}

	// Fallback: plain selection, topmost match wins.
	t.state = pointerIdle
	t.host.SetSelectedID(hit)
	t.host.Refresh()
}

func (t *pointerTool) DrawMove(p geom.Point) {
	w := t.host.Coords().ToWorld(p)
	dx, dy := w.X-t.last.X, w.Y-t.last.Y
	t.last = w

	switch t.state {
	case pointerDragging:
		t.host.UpdateItem(t.targetID, func(it item.Item) {
			it.MoveBy(dx, dy)
		}, false)
	case pointerResizing:
		t.host.UpdateItem(t.targetID, func(it item.Item) {
			if r, ok := it.(item.Resizable); ok {
				r.ResizeBy(dx, dy, t.handle)
			}
		}, false)
	}
}

func (t *pointerTool) DrawEnd() {
	t.host.SetDrawingItem(nil)
	if t.state != pointerIdle && t.targetID != "" {
		// One committed notification per completed drag or resize.
		t.host.UpdateItem(t.targetID, func(item.Item) {}, true)
	}
	t.reset()
}

func (t *pointerTool) Abort() {
	t.reset()
}

// HoverMove recomputes the hovered item on plain mouse movement,
// throttled and suppressed entirely during a drag or resize.
func (t *pointerTool) HoverMove(p geom.Point) {
	if t.state != pointerIdle {
		return
	}
	t.hover.Do(func() {
		w := t.host.Coords().ToWorld(p)
		hit := t.hitTest(w)
		if hit != t.host.HoveredID() {
			t.host.SetHoveredID(hit)
			t.host.Refresh()
		}
	})
}

// hitTest returns the topmost item whose bounding box contains w.
// Items are held newest-first, so the first match is the visually
// topmost one.
func (t *pointerTool) hitTest(w geom.Point) string {
	for _, it := range t.host.Items() {
		if bb := it.BoundingBox(); bb != nil && bb.Contains(w) {
			return it.ID()
		}
	}
	return ""
}

// handleAt names the resize handle whose hit box contains w, or "".
func (t *pointerTool) handleAt(r item.Resizable, w geom.Point) string {
	bb := r.BoundingBox()
	if bb == nil {
		return ""
	}
	for _, name := range r.ResizeHandles() {
		c := item.HandlePoint(*bb, name)
		box := geom.NewBBox(c.X-handleBoxSize/2, c.Y-handleBoxSize/2, handleBoxSize, handleBoxSize)
		if box.Contains(w) {
			return name
		}
	}
	return ""
}

func (t *pointerTool) Options(selected item.Item) fyne.CanvasObject {
	if selected == nil {
		return widget.NewLabel("Nothing selected")
	}
	del := widget.NewButton("Delete", func() {
		t.host.RemoveItem(selected.ID(), true)
	})
	return container.NewHBox(widget.NewLabel(selected.Kind()), del)
}
