package tool

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// freehandTool accumulates a stroke in the host's in-progress slot and
// commits it on drawing-end. Keeping the stroke out of the collection
// until then lets a touch-cancel abort it without ever notifying
// listeners. Both the pen and the eraser are this tool; the eraser just
// starts with wider, background-colored defaults.
type freehandTool struct {
	host Host
	name string
	opts item.StrokeOptions

	newStroke func(geom.Point, item.StrokeOptions) *item.Stroke
	active    bool
}

func init() {
	register(item.KindPen, func(h Host) Tool {
		return &freehandTool{
			host: h, name: item.KindPen,
			opts:      item.DefaultStrokeOptions(),
			newStroke: item.NewPen,
		}
	})
	register(item.KindEraser, func(h Host) Tool {
		return &freehandTool{
			host: h, name: item.KindEraser,
			opts:      item.DefaultEraserOptions(),
			newStroke: item.NewEraser,
		}
	})
}

func (t *freehandTool) Name() string { return t.name }

func (t *freehandTool) Activated()   {}
func (t *freehandTool) Deactivated() { t.active = false }

func (t *freehandTool) DrawStart(p geom.Point) {
	w := t.host.Coords().ToWorld(p)
	t.host.SetDrawingItem(t.newStroke(w, t.opts))
	t.active = true
	t.host.Refresh()
}

func (t *freehandTool) DrawMove(p geom.Point) {
	if !t.active {
		return
	}
	s, ok := t.host.DrawingItem().(*item.Stroke)
	if !ok {
		return
	}
	s.Append(t.host.Coords().ToWorld(p))
	t.host.Refresh()
}

func (t *freehandTool) DrawEnd() {
	if !t.active {
		return
	}
	t.active = false
	it := t.host.DrawingItem()
	t.host.SetDrawingItem(nil)
	if s, ok := it.(*item.Stroke); ok {
		t.host.AddItem(s, true)
	}
}

func (t *freehandTool) Abort() { t.active = false }

func (t *freehandTool) Options(item.Item) fyne.CanvasObject {
	rows := []fyne.CanvasObject{
		newWidthSlider("Size", t.opts.Size, func(v float32) { t.opts.Size = v }),
	}
	if t.name == item.KindPen {
		rows = append([]fyne.CanvasObject{
			newPalette(func(hex string) { t.opts.Color = hex }),
		}, rows...)
	}
	return container.NewVBox(rows...)
}
