package item

import (
	"encoding/json"

	"fyne.io/fyne/v2"

	"sketchboard/internal/geom"
)

// pseudo is the shared body of the move and pointer markers. They carry
// no geometry and paint nothing; the board's in-progress slot holds one
// while a pan or selection gesture is underway so "is a gesture active"
// has a uniform answer.
type pseudo struct {
	id   string
	kind string
}

func NewMove() Item    { return &pseudo{id: NewID(), kind: KindMove} }
func NewPointer() Item { return &pseudo{id: NewID(), kind: KindPointer} }

func init() {
	decode := func(kind string) decoder {
		return func(id string, _ json.RawMessage) (Item, error) {
			return &pseudo{id: id, kind: kind}, nil
		}
	}
	registerDecoder(KindMove, decode(KindMove))
	registerDecoder(KindPointer, decode(KindPointer))
	// Old exports may carry clear markers; accept them so the rest of
	// the collection still loads.
	registerDecoder(KindClear, decode(KindClear))
}

func (p *pseudo) ID() string   { return p.id }
func (p *pseudo) Kind() string { return p.kind }

func (p *pseudo) Draw(*RenderContext) []fyne.CanvasObject { return nil }
func (p *pseudo) BoundingBox() *geom.BBox                 { return nil }
func (p *pseudo) MoveBy(dx, dy float32) bool              { return false }

func (p *pseudo) Export() (Record, error) {
	return exportRecord(p.id, p.kind, struct{}{})
}
