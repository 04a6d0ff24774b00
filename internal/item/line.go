package item

import (
	"encoding/json"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"sketchboard/internal/geom"
)

// Line is a straight segment between two world points.
type Line struct {
	id      string
	X1      float32
	Y1      float32
	X2      float32
	Y2      float32
	Options ShapeOptions
}

type linePayload struct {
	X1      float32      `json:"x1"`
	Y1      float32      `json:"y1"`
	X2      float32      `json:"x2"`
	Y2      float32      `json:"y2"`
	Options ShapeOptions `json:"options"`
}

func NewLine(x, y float32, opts ShapeOptions) *Line {
	return &Line{id: NewID(), X1: x, Y1: y, X2: x, Y2: y, Options: opts}
}

func init() {
	registerDecoder(KindLine, func(id string, data json.RawMessage) (Item, error) {
		var p linePayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &Line{id: id, X1: p.X1, Y1: p.Y1, X2: p.X2, Y2: p.Y2, Options: p.Options}, nil
	})
}

func (l *Line) ID() string   { return l.id }
func (l *Line) Kind() string { return KindLine }

func (l *Line) Draw(rc *RenderContext) []fyne.CanvasObject {
	seg := canvas.NewLine(ParseColor(l.Options.StrokeColor))
	seg.StrokeWidth = l.Options.StrokeWidth * rc.Coords.Zoom()
	a := rc.Coords.ToCanvas(geom.NewPoint(l.X1, l.Y1))
	b := rc.Coords.ToCanvas(geom.NewPoint(l.X2, l.Y2))
	seg.Position1 = fyne.NewPos(a.X, a.Y)
	seg.Position2 = fyne.NewPos(b.X, b.Y)
	return []fyne.CanvasObject{seg}
}

func (l *Line) BoundingBox() *geom.BBox {
	bb := geom.BBoxFromPoints(geom.NewPoint(l.X1, l.Y1), geom.NewPoint(l.X2, l.Y2)).
		Inflate(l.Options.StrokeWidth / 2)
	return &bb
}

func (l *Line) Export() (Record, error) {
	return exportRecord(l.id, KindLine, linePayload{
		X1: l.X1, Y1: l.Y1, X2: l.X2, Y2: l.Y2, Options: l.Options,
	})
}

// MoveBy shifts both endpoints, keeping length and direction.
func (l *Line) MoveBy(dx, dy float32) bool {
	l.X1 += dx
	l.Y1 += dy
	l.X2 += dx
	l.Y2 += dy
	return true
}
