package item

import (
	"encoding/json"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"sketchboard/internal/geom"
)

// Rect is an axis-aligned rectangle. X/Y is the top-left corner in
// world coordinates. A zero-size rect is a valid item.
type Rect struct {
	id      string
	X       float32
	Y       float32
	Width   float32
	Height  float32
	Options ShapeOptions
}

type rectPayload struct {
	X       float32      `json:"x"`
	Y       float32      `json:"y"`
	Width   float32      `json:"width"`
	Height  float32      `json:"height"`
	Options ShapeOptions `json:"options"`
}

func NewRect(x, y float32, opts ShapeOptions) *Rect {
	return &Rect{id: NewID(), X: x, Y: y, Options: opts}
}

func init() {
	registerDecoder(KindRect, func(id string, data json.RawMessage) (Item, error) {
		var p rectPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &Rect{id: id, X: p.X, Y: p.Y, Width: p.Width, Height: p.Height, Options: p.Options}, nil
	})
}

func (r *Rect) ID() string   { return r.id }
func (r *Rect) Kind() string { return KindRect }

func (r *Rect) Draw(rc *RenderContext) []fyne.CanvasObject {
	zoom := rc.Coords.Zoom()
	fill := color.Color(color.Transparent)
	if r.Options.FillColor != "" {
		fill = ParseColor(r.Options.FillColor)
	}
	rect := canvas.NewRectangle(fill)
	rect.StrokeColor = ParseColor(r.Options.StrokeColor)
	rect.StrokeWidth = r.Options.StrokeWidth * zoom

	tl := rc.Coords.ToCanvas(geom.NewPoint(r.X, r.Y))
	rect.Move(fyne.NewPos(tl.X, tl.Y))
	rect.Resize(fyne.NewSize(r.Width*zoom, r.Height*zoom))
	return []fyne.CanvasObject{rect}
}

func (r *Rect) BoundingBox() *geom.BBox {
	bb := geom.NewBBox(r.X, r.Y, r.Width, r.Height).Inflate(r.Options.StrokeWidth / 2)
	return &bb
}

func (r *Rect) Export() (Record, error) {
	return exportRecord(r.id, KindRect, rectPayload{
		X: r.X, Y: r.Y, Width: r.Width, Height: r.Height, Options: r.Options,
	})
}

func (r *Rect) MoveBy(dx, dy float32) bool {
	r.X += dx
	r.Y += dy
	return true
}

func (r *Rect) ResizeHandles() []string { return CornerHandles }

func (r *Rect) ResizeBy(dx, dy float32, handle string) bool {
	switch handle {
	case HandleNW:
		r.X += dx
		r.Y += dy
		r.Width -= dx
		r.Height -= dy
	case HandleNE:
		r.Y += dy
		r.Width += dx
		r.Height -= dy
	case HandleSE:
		r.Width += dx
		r.Height += dy
	case HandleSW:
		r.X += dx
		r.Width -= dx
		r.Height += dy
	default:
		return false
	}
	return true
}
