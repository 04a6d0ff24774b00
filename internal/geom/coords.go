package geom

import "errors"

// ErrInvalidZoom is returned when a non-positive zoom factor is requested.
var ErrInvalidZoom = errors.New("zoom factor must be positive")

// Coords converts between world coordinates (where item geometry lives)
// and canvas pixel coordinates. Pan is the committed view origin; Offset
// accumulates an in-flight pan gesture. Both are summed before a
// transform, so consumers never need to care which bucket a shift sits in.
type Coords struct {
	PanX    float32
	PanY    float32
	OffsetX float32
	OffsetY float32
	zoom    float32
}

func NewCoords() *Coords {
	return &Coords{zoom: 1}
}

func (c *Coords) Zoom() float32 { return c.zoom }

// SetZoom rejects non-positive factors: a zero zoom would make ToWorld
// divide by zero and a negative one would mirror the scene.
func (c *Coords) SetZoom(z float32) error {
	if z <= 0 {
		return ErrInvalidZoom
	}
	c.zoom = z
	return nil
}

// ToCanvas maps a world point to canvas pixels.
func (c *Coords) ToCanvas(p Point) Point {
	return Point{
		X: p.X*c.zoom + c.PanX + c.OffsetX,
		Y: p.Y*c.zoom + c.PanY + c.OffsetY,
	}
}

// ToWorld maps a canvas pixel point back to world coordinates. Exact
// inverse of ToCanvas for a fixed pan/offset/zoom.
func (c *Coords) ToWorld(p Point) Point {
	return Point{
		X: (p.X - c.PanX - c.OffsetX) / c.zoom,
		Y: (p.Y - c.PanY - c.OffsetY) / c.zoom,
	}
}

// Shift adds to the in-flight pan offset.
func (c *Coords) Shift(dx, dy float32) {
	c.OffsetX += dx
	c.OffsetY += dy
}

// SetOffset replaces the in-flight pan offset.
func (c *Coords) SetOffset(dx, dy float32) {
	c.OffsetX = dx
	c.OffsetY = dy
}

// CommitOffset folds the in-flight offset into the committed pan. The
// visible sum is unchanged.
func (c *Coords) CommitOffset() {
	c.PanX += c.OffsetX
	c.PanY += c.OffsetY
	c.OffsetX = 0
	c.OffsetY = 0
}
