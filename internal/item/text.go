package item

import (
	"encoding/json"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"

	"sketchboard/internal/geom"
)

// Text renders its content on the canvas except while Editing, when the
// platform shows a live input overlay in its place. The item only holds
// the flag and the content; the overlay widget belongs to the UI layer,
// which hooks DetachEditor so removal can tear it down.
type Text struct {
	id      string
	X       float32
	Y       float32
	Content string
	Options TextOptions

	// Transient edit state, never exported.
	Editing      bool
	DetachEditor func()
}

type textPayload struct {
	X       float32     `json:"x"`
	Y       float32     `json:"y"`
	Content string      `json:"content"`
	Options TextOptions `json:"options"`
}

func NewText(x, y float32, content string, opts TextOptions) *Text {
	return &Text{id: NewID(), X: x, Y: y, Content: content, Options: opts}
}

func init() {
	registerDecoder(KindText, func(id string, data json.RawMessage) (Item, error) {
		var p textPayload
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return &Text{id: id, X: p.X, Y: p.Y, Content: p.Content, Options: p.Options}, nil
	})
}

func (t *Text) ID() string   { return t.id }
func (t *Text) Kind() string { return KindText }

func (t *Text) Draw(rc *RenderContext) []fyne.CanvasObject {
	if t.Editing {
		// The overlay input is showing; drawing the text under it would
		// double it up.
		return nil
	}
	txt := canvas.NewText(t.Content, ParseColor(t.Options.FontColor))
	txt.TextSize = t.Options.FontSize * rc.Coords.Zoom()
	pos := rc.Coords.ToCanvas(geom.NewPoint(t.X, t.Y))
	txt.Move(fyne.NewPos(pos.X, pos.Y))
	return []fyne.CanvasObject{txt}
}

func (t *Text) BoundingBox() *geom.BBox {
	content := t.Content
	if content == "" {
		// Keep an empty item selectable.
		content = " "
	}
	size := fyne.MeasureText(content, t.Options.FontSize, fyne.TextStyle{})
	bb := geom.NewBBox(t.X, t.Y, size.Width, size.Height)
	return &bb
}

func (t *Text) Export() (Record, error) {
	return exportRecord(t.id, KindText, textPayload{
		X: t.X, Y: t.Y, Content: t.Content, Options: t.Options,
	})
}

func (t *Text) MoveBy(dx, dy float32) bool {
	t.X += dx
	t.Y += dy
	return true
}

// RemovableWithBackspace keeps the backspace key for content editing
// while the overlay is up.
func (t *Text) RemovableWithBackspace() bool { return !t.Editing }

// OnRemove detaches the edit overlay if one is attached.
func (t *Text) OnRemove() {
	t.Editing = false
	if t.DetachEditor != nil {
		t.DetachEditor()
	}
}
