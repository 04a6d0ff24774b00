// Package item holds the drawing entities a board persists: shapes,
// freehand strokes, text, pictures, plus the pseudo-items the move and
// pointer tools use to mark a gesture in progress. Every variant
// implements the Item contract and registers a decoder so collections
// round-trip through {id, type, data} records.
package item

import (
	"encoding/json"
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"github.com/google/uuid"

	"sketchboard/internal/geom"
)

// Kind tags. These are the "type" values of exported records.
const (
	KindRect    = "rect"
	KindCircle  = "circle"
	KindLine    = "line"
	KindPen     = "pen"
	KindEraser  = "eraser"
	KindText    = "text"
	KindPicture = "picture"
	KindMove    = "move"
	KindPointer = "pointer"
	KindClear   = "clear"
)

// Record is the serialized form of one item. Data carries exactly the
// geometric and style payload, never derived state.
type Record struct {
	ID   string          `json:"id"`
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// RenderContext is what an item needs to paint itself: the live
// world-to-canvas transform and the board background (the eraser draws
// with it).
type RenderContext struct {
	Coords     *geom.Coords
	Background color.Color
}

// Item is the capability contract shared by every variant. Geometry is
// stored in world coordinates; Draw applies the context's transform and
// scales size-like fields by the zoom factor so shapes stay
// proportionally correct at any zoom.
type Item interface {
	ID() string
	Kind() string

	// Draw returns the canvas objects painting this item, positioned in
	// canvas pixels. Pseudo-items return nil.
	Draw(rc *RenderContext) []fyne.CanvasObject

	// BoundingBox is the axis-aligned world-space box used for
	// hit-testing and the selection outline, inflated by half the stroke
	// width for stroked variants. Nil when not applicable.
	BoundingBox() *geom.BBox

	// Export round-trips through Decode without loss.
	Export() (Record, error)

	// MoveBy applies a relative move, reporting whether the variant
	// supports one.
	MoveBy(dx, dy float32) bool
}

// Resizable is the opt-in resize contract. ResizeBy applies a relative
// drag of the named handle; unknown handles are a no-op returning false.
type Resizable interface {
	Item
	ResizeHandles() []string
	ResizeBy(dx, dy float32, handle string) bool
}

// RemoveHooker is implemented by items that must release an external
// attachment when they leave the collection (Text detaches its edit
// overlay).
type RemoveHooker interface {
	OnRemove()
}

// backspaceOptOut lets a variant keep the backspace key for itself.
type backspaceOptOut interface {
	RemovableWithBackspace() bool
}

// RemovableWithBackspace reports whether pressing backspace/delete with
// this item selected should delete it. Defaults to true.
func RemovableWithBackspace(it Item) bool {
	if o, ok := it.(backspaceOptOut); ok {
		return o.RemovableWithBackspace()
	}
	return true
}

// NewID returns a fresh collection-unique item id.
func NewID() string {
	return uuid.NewString()
}

// Resize handle names, clockwise from the top-left corner.
const (
	HandleNW = "nw"
	HandleNE = "ne"
	HandleSE = "se"
	HandleSW = "sw"
)

// CornerHandles is the handle set shared by box-shaped resizables.
var CornerHandles = []string{HandleNW, HandleNE, HandleSE, HandleSW}

// HandlePoint returns the world position of a named handle on a
// bounding box.
func HandlePoint(bb geom.BBox, handle string) geom.Point {
	switch handle {
	case HandleNW:
		return geom.NewPoint(bb.X, bb.Y)
	case HandleNE:
		return geom.NewPoint(bb.Right(), bb.Y)
	case HandleSE:
		return geom.NewPoint(bb.Right(), bb.Bottom())
	case HandleSW:
		return geom.NewPoint(bb.X, bb.Bottom())
	}
	return bb.Center()
}

// decoder reconstructs a variant from its exported payload.
type decoder func(id string, data json.RawMessage) (Item, error)

var decoders = map[string]decoder{}

func registerDecoder(kind string, fn decoder) {
	decoders[kind] = fn
}

// Decode reconstructs an item from a record, keeping its original id.
func Decode(rec Record) (Item, error) {
	fn, ok := decoders[rec.Type]
	if !ok {
		return nil, fmt.Errorf("unknown item type %q", rec.Type)
	}
	if rec.ID == "" {
		return nil, fmt.Errorf("item record of type %q has no id", rec.Type)
	}
	it, err := fn(rec.ID, rec.Data)
	if err != nil {
		return nil, fmt.Errorf("decode %s item %s: %w", rec.Type, rec.ID, err)
	}
	return it, nil
}

func exportRecord(id, kind string, payload any) (Record, error) {
	data, err := json.Marshal(payload)
	if err != nil {
		return Record{}, fmt.Errorf("export %s item %s: %w", kind, id, err)
	}
	return Record{ID: id, Type: kind, Data: data}, nil
}
