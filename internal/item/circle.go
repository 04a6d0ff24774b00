package item

import (
	"encoding/json"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"sketchboard/internal/geom"
)

// Circle is stored as its center point and diameter, matching the way
// the circle tool grows it from a drag away from the anchor.
type Circle struct {
	id       string
	X        float32
	Y        float32
	Diameter float32
	Options  ShapeOptions
}

type circlePayload struct {
	X        float32      `json:"x"`
	Y        float32      `json:"y"`
	Diameter float32      `json:"diameter"`
	Options  ShapeOptions `json:"options"`
}

func NewCircle(x, y float32, opts ShapeOptions) *Circle {
	return &Circle{id: NewID(), X: x, Y: y, Options: opts}
}

func init() {
	registerDecoder(KindCircle, func(id string, data json.RawMessage) (Item, error) {
		var p circlePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &Circle{id: id, X: p.X, Y: p.Y, Diameter: p.Diameter, Options: p.Options}, nil
	})
}

func (c *Circle) ID() string   { return c.id }
func (c *Circle) Kind() string { return KindCircle }

func (c *Circle) Draw(rc *RenderContext) []fyne.CanvasObject {
	zoom := rc.Coords.Zoom()
	fill := color.Color(color.Transparent)
	if c.Options.FillColor != "" {
		fill = ParseColor(c.Options.FillColor)
	}
	circle := canvas.NewCircle(fill)
	circle.StrokeColor = ParseColor(c.Options.StrokeColor)
	circle.StrokeWidth = c.Options.StrokeWidth * zoom

	r := c.Diameter / 2
	tl := rc.Coords.ToCanvas(geom.NewPoint(c.X-r, c.Y-r))
	circle.Move(fyne.NewPos(tl.X, tl.Y))
	circle.Resize(fyne.NewSize(c.Diameter*zoom, c.Diameter*zoom))
	return []fyne.CanvasObject{circle}
}

func (c *Circle) BoundingBox() *geom.BBox {
	r := c.Diameter / 2
	bb := geom.NewBBox(c.X-r, c.Y-r, c.Diameter, c.Diameter).Inflate(c.Options.StrokeWidth / 2)
	return &bb
}

func (c *Circle) Export() (Record, error) {
	return exportRecord(c.id, KindCircle, circlePayload{
		X: c.X, Y: c.Y, Diameter: c.Diameter, Options: c.Options,
	})
}

func (c *Circle) MoveBy(dx, dy float32) bool {
	c.X += dx
	c.Y += dy
	return true
}
