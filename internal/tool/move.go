package tool

import (
	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// ToolMove is the pan tool's registry name.
const ToolMove = "move"

// moveTool pans the view. While the gesture runs, the delta since the
// anchor lives in the coords offset so the pan stays uncommitted; the
// gesture end folds it into the committed pan.
type moveTool struct {
	host   Host
	anchor geom.Point
	active bool
}

func init() {
	register(ToolMove, func(h Host) Tool { return &moveTool{host: h} })
}

func (t *moveTool) Name() string { return ToolMove }

func (t *moveTool) Activated()   {}
func (t *moveTool) Deactivated() { t.active = false }

func (t *moveTool) DrawStart(p geom.Point) {
	t.anchor = p
	t.active = true
	t.host.SetDrawingItem(item.NewMove())
}

func (t *moveTool) DrawMove(p geom.Point) {
	if !t.active {
		return
	}
	t.host.Coords().SetOffset(p.X-t.anchor.X, p.Y-t.anchor.Y)
	t.host.Refresh()
}

func (t *moveTool) DrawEnd() {
	if !t.active {
		return
	}
	t.active = false
	t.host.SetDrawingItem(nil)
	t.host.Coords().CommitOffset()
	t.host.Refresh()
}

func (t *moveTool) Abort() {
	t.active = false
	t.host.Coords().SetOffset(0, 0)
	t.host.Refresh()
}
