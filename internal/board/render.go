package board

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

var highlightColor = color.NRGBA{R: 30, G: 120, B: 240, A: 255}

func (b *Board) CreateRenderer() fyne.WidgetRenderer {
	r := &boardRenderer{board: b}
	r.background = canvas.NewRectangle(b.background)
	return r
}

// boardRenderer rebuilds the full scene on every refresh: background,
// items oldest to newest so later items paint on top, then the
// in-progress item, then the selection highlight. No dirty-rectangle
// tracking; the scene is flat and fyne batches the paint.
type boardRenderer struct {
	board      *Board
	background *canvas.Rectangle
}

func (r *boardRenderer) Objects() []fyne.CanvasObject {
	b := r.board

	b.mu.RLock()
	items := make([]item.Item, len(b.items))
	copy(items, b.items)
	drawing := b.drawing
	selected := b.selected
	b.mu.RUnlock()

	rc := &item.RenderContext{Coords: b.coords, Background: b.background}
	objects := []fyne.CanvasObject{r.background}

	for i := len(items) - 1; i >= 0; i-- {
		objects = append(objects, items[i].Draw(rc)...)
	}
	if drawing != nil {
		objects = append(objects, drawing.Draw(rc)...)
	}

	for _, it := range items {
		if it.ID() != selected {
			continue
		}
		objects = append(objects, r.highlight(it, rc)...)
		break
	}
	return objects
}

// highlight draws the selection outline and, for resizable items, the
// corner handle boxes sized to match their world-unit hit boxes.
func (r *boardRenderer) highlight(it item.Item, rc *item.RenderContext) []fyne.CanvasObject {
	bb := it.BoundingBox()
	if bb == nil {
		return nil
	}
	zoom := rc.Coords.Zoom()

	outline := canvas.NewRectangle(color.Transparent)
	outline.StrokeColor = highlightColor
	outline.StrokeWidth = 1
	tl := rc.Coords.ToCanvas(geom.NewPoint(bb.X, bb.Y))
	outline.Move(fyne.NewPos(tl.X, tl.Y))
	outline.Resize(fyne.NewSize(bb.Width*zoom, bb.Height*zoom))
	objects := []fyne.CanvasObject{outline}

	res, ok := it.(item.Resizable)
	if !ok {
		return objects
	}
	const box float32 = 10
	for _, name := range res.ResizeHandles() {
		c := rc.Coords.ToCanvas(item.HandlePoint(*bb, name))
		h := canvas.NewRectangle(color.White)
		h.StrokeColor = highlightColor
		h.StrokeWidth = 1
		half := box / 2 * zoom
		h.Move(fyne.NewPos(c.X-half, c.Y-half))
		h.Resize(fyne.NewSize(box*zoom, box*zoom))
		objects = append(objects, h)
	}
	return objects
}

func (r *boardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.board.viewSize = size
}

func (r *boardRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}

func (r *boardRenderer) Refresh() {
	r.background.FillColor = r.board.background
	canvas.Refresh(r.board)
}

func (r *boardRenderer) Destroy() {}
