package tool

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// shapeTool is the shared gesture handler of the rect, circle and line
// tools: drawing-start creates a zero-size item at the anchor and
// commits it immediately, every move recomputes the geometry from the
// anchor to the current point, drawing-end just forgets the item id.
// A click without a drag therefore leaves a zero-size item; that is a
// valid placement, not an error.
type shapeTool struct {
	host Host
	name string
	opts item.ShapeOptions

	create func(anchor geom.Point, opts item.ShapeOptions) item.Item
	update func(it item.Item, anchor, cur geom.Point)

	anchor   geom.Point
	activeID string
}

func init() {
	register(item.KindRect, func(h Host) Tool {
		return &shapeTool{
			host: h, name: item.KindRect, opts: item.DefaultShapeOptions(),
			create: func(a geom.Point, opts item.ShapeOptions) item.Item {
				return item.NewRect(a.X, a.Y, opts)
			},
			update: func(it item.Item, a, cur geom.Point) {
				r, ok := it.(*item.Rect)
				if !ok {
					return
				}
				bb := geom.BBoxFromPoints(a, cur)
				r.X, r.Y, r.Width, r.Height = bb.X, bb.Y, bb.Width, bb.Height
			},
		}
	})
	register(item.KindCircle, func(h Host) Tool {
		return &shapeTool{
			host: h, name: item.KindCircle, opts: item.DefaultShapeOptions(),
			create: func(a geom.Point, opts item.ShapeOptions) item.Item {
				return item.NewCircle(a.X, a.Y, opts)
			},
			update: func(it item.Item, a, cur geom.Point) {
				c, ok := it.(*item.Circle)
				if !ok {
					return
				}
				// The anchor is the center; the drag sets the radius.
				c.Diameter = 2 * a.Distance(cur)
			},
		}
	})
	register(item.KindLine, func(h Host) Tool {
		return &shapeTool{
			host: h, name: item.KindLine, opts: item.DefaultShapeOptions(),
			create: func(a geom.Point, opts item.ShapeOptions) item.Item {
				return item.NewLine(a.X, a.Y, opts)
			},
			update: func(it item.Item, a, cur geom.Point) {
				l, ok := it.(*item.Line)
				if !ok {
					return
				}
				l.X2, l.Y2 = cur.X, cur.Y
			},
		}
	})
}

func (t *shapeTool) Name() string { return t.name }

func (t *shapeTool) Activated()   {}
func (t *shapeTool) Deactivated() { t.activeID = "" }

func (t *shapeTool) DrawStart(p geom.Point) {
	w := t.host.Coords().ToWorld(p)
	it := t.create(w, t.opts)
	t.host.AddItem(it, true)
	t.anchor = w
	t.activeID = it.ID()
}

func (t *shapeTool) DrawMove(p geom.Point) {
	if t.activeID == "" {
		return
	}
	w := t.host.Coords().ToWorld(p)
	t.host.UpdateItem(t.activeID, func(it item.Item) {
		t.update(it, t.anchor, w)
	}, false)
}

func (t *shapeTool) DrawEnd() {
	if t.activeID == "" {
		return
	}
	// Close the gesture with one committed update.
	t.host.UpdateItem(t.activeID, func(item.Item) {}, true)
	t.activeID = ""
}

func (t *shapeTool) Abort() { t.activeID = "" }

// Options edits the defaults for new shapes and, when a same-kind item
// is selected, restyles it in place.
func (t *shapeTool) Options(selected item.Item) fyne.CanvasObject {
	apply := func(mutate func(*item.ShapeOptions)) {
		mutate(&t.opts)
		if selected == nil || selected.Kind() != t.name {
			return
		}
		t.host.UpdateItem(selected.ID(), func(it item.Item) {
			switch s := it.(type) {
			case *item.Rect:
				mutate(&s.Options)
			case *item.Circle:
				mutate(&s.Options)
			case *item.Line:
				mutate(&s.Options)
			}
		}, true)
	}

	rows := []fyne.CanvasObject{
		newPalette(func(hex string) {
			apply(func(o *item.ShapeOptions) { o.StrokeColor = hex })
		}),
		newWidthSlider("Width", t.opts.StrokeWidth, func(w float32) {
			apply(func(o *item.ShapeOptions) { o.StrokeWidth = w })
		}),
	}
	if t.name != item.KindLine {
		rows = append(rows, newPalette(func(hex string) {
			apply(func(o *item.ShapeOptions) { o.FillColor = hex })
		}))
	}
	return container.NewVBox(rows...)
}
