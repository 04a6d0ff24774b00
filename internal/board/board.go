// Package board implements the whiteboard host widget. The board owns
// the item collection, the selection, the coordinate context and the
// active tool; raw pointer and touch events are normalized here and
// handed to the tool, which mutates items back through the board's API.
package board

import (
	"image"
	"image/color"
	"log"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
	"sketchboard/internal/tool"
)

// Change notification types, mirrored in the exported event payload.
const (
	EventAdd    = "add"
	EventUpdate = "update"
	EventRemove = "remove"
	EventClear  = "clear"
)

// Event describes one committed mutation for the surrounding
// application (a persistence or sync layer, typically).
type Event struct {
	Type string       `json:"type"`
	Item *item.Record `json:"item,omitempty"`
}

// Board is the whiteboard host widget.
type Board struct {
	widget.BaseWidget

	// mu guards items, drawing, selection and hover; the renderer reads
	// them while tools write.
	mu       sync.RWMutex
	items    []item.Item // index 0 is the newest item
	drawing  item.Item
	selected string
	hovered  string

	coords     *geom.Coords
	background color.Color
	viewSize   fyne.Size

	tools    map[string]tool.Tool
	active   string
	previous string

	// OnChange receives committed mutations.
	OnChange func(Event)
	// OnToolChange fires after a tool switch, for toolbar highlighting
	// and options-panel swaps.
	OnToolChange func(name string)
	// OnSelectionChange fires whenever the selected item id changes.
	OnSelectionChange func(id string)

	// Platform capabilities, wired by the UI layer. A missing hook
	// leaves the corresponding tool inert instead of crashing.
	ShowEditor  func(t *item.Text)
	PickImageFn func(done func(image.Image, error))
}

var _ fyne.Widget = (*Board)(nil)
var _ fyne.Draggable = (*Board)(nil)
var _ desktop.Mouseable = (*Board)(nil)
var _ desktop.Hoverable = (*Board)(nil)
var _ mobile.Touchable = (*Board)(nil)
var _ tool.Host = (*Board)(nil)

func New() *Board {
	b := &Board{
		coords:     geom.NewCoords(),
		background: color.White,
		tools:      map[string]tool.Tool{},
	}
	for _, name := range tool.Names() {
		t, err := tool.Build(name, b)
		if err != nil {
			// Attachment failure disables one tool, not the board.
			log.Printf("[board] tool %q not attached: %v", name, err)
			continue
		}
		b.tools[name] = t
	}
	b.active = b.DefaultToolName()
	b.ExtendBaseWidget(b)
	return b
}

func (b *Board) emit(ev Event) {
	if b.OnChange != nil {
		b.OnChange(ev)
	}
}

func recordOf(it item.Item) *item.Record {
	rec, err := it.Export()
	if err != nil {
		log.Printf("[board] cannot export %s item %s: %v", it.Kind(), it.ID(), err)
		return nil
	}
	return &rec
}

// indexOf must be called with mu held.
func (b *Board) indexOf(id string) int {
	for i, it := range b.items {
		if it.ID() == id {
			return i
		}
	}
	return -1
}

// AddItem prepends an item: newest items sit at index 0, draw last and
// win hit tests. A duplicate id is dropped to keep the collection
// unique.
func (b *Board) AddItem(it item.Item, notify bool) {
	if it == nil {
		return
	}
	b.mu.Lock()
	if b.indexOf(it.ID()) >= 0 {
		b.mu.Unlock()
		log.Printf("[board] duplicate item id %s dropped", it.ID())
		return
	}
	b.items = append([]item.Item{it}, b.items...)
	b.mu.Unlock()

	b.Refresh()
	if notify {
		b.emit(Event{Type: EventAdd, Item: recordOf(it)})
	}
}

func (b *Board) RemoveItem(id string, notify bool) {
	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		return
	}
	it := b.items[i]
	b.items = append(b.items[:i], b.items[i+1:]...)
	if b.selected == id {
		b.selected = ""
	}
	if b.hovered == id {
		b.hovered = ""
	}
	b.mu.Unlock()

	rec := recordOf(it)
	if hook, ok := it.(item.RemoveHooker); ok {
		hook.OnRemove()
	}
	b.Refresh()
	if notify {
		b.emit(Event{Type: EventRemove, Item: rec})
	}
}

// UpdateItem applies a mutation to the item with the given id. An
// unknown id is a silent no-op: the gesture that produced the update
// may have outlived its item.
func (b *Board) UpdateItem(id string, mutate func(item.Item), notify bool) {
	b.mu.Lock()
	i := b.indexOf(id)
	if i < 0 {
		b.mu.Unlock()
		return
	}
	it := b.items[i]
	mutate(it)
	b.mu.Unlock()

	b.Refresh()
	if notify {
		b.emit(Event{Type: EventUpdate, Item: recordOf(it)})
	}
}

func (b *Board) ItemByID(id string) item.Item {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if i := b.indexOf(id); i >= 0 {
		return b.items[i]
	}
	return nil
}

// Items returns a snapshot of the collection, newest first.
func (b *Board) Items() []item.Item {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]item.Item, len(b.items))
	copy(out, b.items)
	return out
}

func (b *Board) ClearItems(notify bool) {
	b.mu.Lock()
	removed := b.items
	b.items = nil
	b.selected = ""
	b.hovered = ""
	b.drawing = nil
	b.mu.Unlock()

	for _, it := range removed {
		if hook, ok := it.(item.RemoveHooker); ok {
			hook.OnRemove()
		}
	}
	b.Refresh()
	if notify {
		b.emit(Event{Type: EventClear})
	}
}

func (b *Board) SetDrawingItem(it item.Item) {
	b.mu.Lock()
	b.drawing = it
	b.mu.Unlock()
}

func (b *Board) DrawingItem() item.Item {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.drawing
}

// SetSelectedID switches the selection. A text item losing selection is
// forced out of edit mode; its overlay has no anchor anymore.
func (b *Board) SetSelectedID(id string) {
	b.mu.Lock()
	if b.selected == id {
		b.mu.Unlock()
		return
	}
	old := b.selected
	b.selected = id
	var oldItem item.Item
	if i := b.indexOf(old); i >= 0 {
		oldItem = b.items[i]
	}
	b.mu.Unlock()

	if txt, ok := oldItem.(*item.Text); ok && txt.Editing {
		txt.Editing = false
		if txt.DetachEditor != nil {
			txt.DetachEditor()
		}
	}
	if b.OnSelectionChange != nil {
		b.OnSelectionChange(id)
	}
	b.Refresh()
}

func (b *Board) SelectedID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selected
}

func (b *Board) SetHoveredID(id string) {
	b.mu.Lock()
	b.hovered = id
	b.mu.Unlock()
}

func (b *Board) HoveredID() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.hovered
}

func (b *Board) Coords() *geom.Coords { return b.coords }

func (b *Board) ViewSize() fyne.Size {
	if b.viewSize.Width > 0 {
		return b.viewSize
	}
	return b.Size()
}

func (b *Board) BackgroundColor() color.Color { return b.background }

// ActivateTool switches the active tool by name. Unknown names are a
// logged no-op so one bad button cannot wedge the board.
func (b *Board) ActivateTool(name string) {
	next, ok := b.tools[name]
	if !ok {
		log.Printf("[board] unknown tool %q", name)
		return
	}
	if cur, ok := b.tools[b.active]; ok {
		cur.Deactivated()
	}
	if name != b.active {
		b.previous = b.active
	}
	b.active = name
	// Notify before Activated: a tool may switch away again in there
	// (clear does), and its nested notification must come last so
	// listeners end on the tool that is actually active.
	if b.OnToolChange != nil {
		b.OnToolChange(name)
	}
	next.Activated()
	b.Refresh()
}

func (b *Board) ActiveToolName() string   { return b.active }
func (b *Board) PreviousToolName() string { return b.previous }
func (b *Board) DefaultToolName() string  { return item.KindPen }

// ActiveTool exposes the live tool instance, mainly for options panels.
func (b *Board) ActiveTool() tool.Tool { return b.tools[b.active] }

func (b *Board) ShowTextEditor(t *item.Text) {
	if b.ShowEditor == nil {
		log.Printf("[board] no text editor capability attached")
		return
	}
	b.ShowEditor(t)
}

func (b *Board) PickImage(done func(image.Image, error)) {
	if b.PickImageFn == nil {
		log.Printf("[board] no image picker capability attached")
		done(nil, nil)
		return
	}
	b.PickImageFn(done)
}

// DeleteSelected removes the selected item unless it claims the
// backspace key for itself (a text item in edit mode does).
func (b *Board) DeleteSelected() {
	id := b.SelectedID()
	if id == "" {
		return
	}
	it := b.ItemByID(id)
	if it == nil || !item.RemovableWithBackspace(it) {
		return
	}
	b.RemoveItem(id, true)
}
