package item

import (
	"encoding/json"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"sketchboard/internal/geom"
)

// Stroke is a freehand path, the payload of both the pen and the
// eraser. The raw points are persisted untouched; smoothing and
// thinning are applied at draw time only. The eraser is the same item
// painted with the board background color, which masks what lies under
// it without deleting any geometry.
type Stroke struct {
	id      string
	kind    string
	Points  []geom.Point
	Options StrokeOptions
}

type strokePayload struct {
	Points  []geom.Point  `json:"points"`
	Options StrokeOptions `json:"options"`
}

func NewPen(start geom.Point, opts StrokeOptions) *Stroke {
	return &Stroke{id: NewID(), kind: KindPen, Points: []geom.Point{start}, Options: opts}
}

func NewEraser(start geom.Point, opts StrokeOptions) *Stroke {
	return &Stroke{id: NewID(), kind: KindEraser, Points: []geom.Point{start}, Options: opts}
}

func init() {
	decode := func(kind string) decoder {
		return func(id string, data json.RawMessage) (Item, error) {
			var p strokePayload
			if err := json.Unmarshal(data, &p); err != nil {
				return nil, err
			}
			return &Stroke{id: id, kind: kind, Points: p.Points, Options: p.Options}, nil
		}
	}
	registerDecoder(KindPen, decode(KindPen))
	registerDecoder(KindEraser, decode(KindEraser))
}

func (s *Stroke) ID() string   { return s.id }
func (s *Stroke) Kind() string { return s.kind }

// Append adds one raw point. Every move event appends exactly one
// point; decimation would break replaying an imported stroke.
func (s *Stroke) Append(p geom.Point) {
	s.Points = append(s.Points, p)
}

func (s *Stroke) Draw(rc *RenderContext) []fyne.CanvasObject {
	col := ParseColor(s.Options.Color)
	if s.kind == KindEraser {
		col = rc.Background
	}
	zoom := rc.Coords.Zoom()

	pts := smoothPath(s.Points, s.Options.Smoothing, s.Options.Streamline)
	if len(pts) == 1 {
		// A click without a drag still leaves a dot.
		dot := canvas.NewCircle(col)
		r := s.Options.Size / 2 * zoom
		c := rc.Coords.ToCanvas(pts[0])
		dot.Move(fyne.NewPos(c.X-r, c.Y-r))
		dot.Resize(fyne.NewSize(2*r, 2*r))
		return []fyne.CanvasObject{dot}
	}

	objects := make([]fyne.CanvasObject, 0, len(pts)-1)
	for i := 1; i < len(pts); i++ {
		seg := canvas.NewLine(col)
		seg.StrokeWidth = s.segmentWidth(pts[i-1], pts[i]) * zoom
		a := rc.Coords.ToCanvas(pts[i-1])
		b := rc.Coords.ToCanvas(pts[i])
		seg.Position1 = fyne.NewPos(a.X, a.Y)
		seg.Position2 = fyne.NewPos(b.X, b.Y)
		objects = append(objects, seg)
	}
	return objects
}

// segmentWidth thins fast segments: the further apart two consecutive
// points landed, the faster the pointer moved there.
func (s *Stroke) segmentWidth(a, b geom.Point) float32 {
	if s.Options.Thinning <= 0 || s.Options.Size <= 0 {
		return s.Options.Size
	}
	speed := a.Distance(b) / s.Options.Size
	if speed > 1 {
		speed = 1
	}
	w := s.Options.Size * (1 - s.Options.Thinning*speed)
	if floor := s.Options.Size / 4; w < floor {
		w = floor
	}
	return w
}

func (s *Stroke) BoundingBox() *geom.BBox {
	if len(s.Points) == 0 {
		return nil
	}
	bb := geom.NewBBox(s.Points[0].X, s.Points[0].Y, 0, 0)
	for _, p := range s.Points[1:] {
		bb = bb.Union(geom.NewBBox(p.X, p.Y, 0, 0))
	}
	bb = bb.Inflate(s.Options.Size / 2)
	return &bb
}

func (s *Stroke) Export() (Record, error) {
	return exportRecord(s.id, s.kind, strokePayload{Points: s.Points, Options: s.Options})
}

func (s *Stroke) MoveBy(dx, dy float32) bool {
	for i := range s.Points {
		s.Points[i].X += dx
		s.Points[i].Y += dy
	}
	return true
}

// smoothPath applies the streamline and smoothing coefficients to the
// raw point sequence. Streamline makes the rendered path trail the
// pointer (each output point chases its raw input), smoothing averages
// each interior point with its neighbors. Both leave endpoints alone so
// the stroke starts and ends exactly where the user did.
func smoothPath(raw []geom.Point, smoothing, streamline float32) []geom.Point {
	if len(raw) < 3 || (smoothing <= 0 && streamline <= 0) {
		return raw
	}

	pts := make([]geom.Point, len(raw))
	pts[0] = raw[0]
	follow := clamp01(streamline) * 0.85
	for i := 1; i < len(raw); i++ {
		prev := pts[i-1]
		pts[i] = geom.NewPoint(
			prev.X+(raw[i].X-prev.X)*(1-follow),
			prev.Y+(raw[i].Y-prev.Y)*(1-follow),
		)
	}
	pts[len(pts)-1] = raw[len(raw)-1]

	if w := clamp01(smoothing) / 2; w > 0 {
		out := make([]geom.Point, len(pts))
		out[0] = pts[0]
		out[len(pts)-1] = pts[len(pts)-1]
		for i := 1; i < len(pts)-1; i++ {
			mx := (pts[i-1].X + pts[i+1].X) / 2
			my := (pts[i-1].Y + pts[i+1].Y) / 2
			out[i] = geom.NewPoint(pts[i].X+(mx-pts[i].X)*w, pts[i].Y+(my-pts[i].Y)*w)
		}
		pts = out
	}
	return pts
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
