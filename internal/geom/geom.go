package geom

import "math"

// Point is a 2D point. Depending on context it holds world or canvas
// coordinates; the zero value is the origin.
type Point struct {
	X float32 `json:"x"`
	Y float32 `json:"y"`
}

func NewPoint(x, y float32) Point {
	return Point{X: x, Y: y}
}

// Translate returns the point shifted by (dx, dy).
func (p Point) Translate(dx, dy float32) Point {
	return Point{X: p.X + dx, Y: p.Y + dy}
}

// Distance returns the Euclidean distance to q.
func (p Point) Distance(q Point) float32 {
	dx := float64(p.X - q.X)
	dy := float64(p.Y - q.Y)
	return float32(math.Hypot(dx, dy))
}

// BBox is an axis-aligned bounding box with its origin at the top-left.
type BBox struct {
	X      float32
	Y      float32
	Width  float32
	Height float32
}

func NewBBox(x, y, width, height float32) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// BBoxFromPoints returns the box spanned by two arbitrary corner points.
func BBoxFromPoints(a, b Point) BBox {
	x := min32(a.X, b.X)
	y := min32(a.Y, b.Y)
	return BBox{X: x, Y: y, Width: abs32(b.X - a.X), Height: abs32(b.Y - a.Y)}
}

func (b BBox) Right() float32  { return b.X + b.Width }
func (b BBox) Bottom() float32 { return b.Y + b.Height }

func (b BBox) Center() Point {
	return Point{X: b.X + b.Width/2, Y: b.Y + b.Height/2}
}

// Contains reports whether p lies inside the box, edges included.
func (b BBox) Contains(p Point) bool {
	return p.X >= b.X && p.X <= b.Right() && p.Y >= b.Y && p.Y <= b.Bottom()
}

// Inflate grows the box by m on every side.
func (b BBox) Inflate(m float32) BBox {
	return BBox{X: b.X - m, Y: b.Y - m, Width: b.Width + 2*m, Height: b.Height + 2*m}
}

// Union returns the smallest box covering both b and o.
func (b BBox) Union(o BBox) BBox {
	x := min32(b.X, o.X)
	y := min32(b.Y, o.Y)
	r := max32(b.Right(), o.Right())
	bt := max32(b.Bottom(), o.Bottom())
	return BBox{X: x, Y: y, Width: r - x, Height: bt - y}
}

func min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b float32) float32 {
	if a > b {
		return a
	}
	return b
}

func abs32(a float32) float32 {
	if a < 0 {
		return -a
	}
	return a
}
