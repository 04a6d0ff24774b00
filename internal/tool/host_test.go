package tool

import (
	"image"
	"image/color"
	"sync"
	"testing"

	"fyne.io/fyne/v2"
	fynetest "fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/require"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

func TestMain(m *testing.M) {
	fynetest.NewApp()
	m.Run()
}

type fakeEvent struct {
	op     string
	kind   string
	notify bool
}

// fakeHost implements Host with just enough board behavior for tool
// tests: a newest-first collection, the in-progress slot, selection and
// a faithful activate/deactivate tool switch.
type fakeHost struct {
	items    []item.Item
	drawing  item.Item
	selected string

	// hovered is written from the hover throttle's timer goroutine.
	hoverMu sync.Mutex
	hovered string

	coords *geom.Coords
	view   fyne.Size

	tools    map[string]Tool
	active   string
	previous string

	events      []fakeEvent
	editorShown []*item.Text
	pickImage   image.Image
	pickErr     error
	refreshes   int
}

func newFakeHost() *fakeHost {
	return &fakeHost{
		coords: geom.NewCoords(),
		view:   fyne.NewSize(400, 300),
		tools:  map[string]Tool{},
	}
}

func (h *fakeHost) buildTool(t *testing.T, name string) Tool {
	t.Helper()
	tl, err := Build(name, h)
	require.NoError(t, err)
	h.tools[name] = tl
	return tl
}

func (h *fakeHost) AddItem(it item.Item, notify bool) {
	h.items = append([]item.Item{it}, h.items...)
	h.events = append(h.events, fakeEvent{"add", it.Kind(), notify})
}

func (h *fakeHost) RemoveItem(id string, notify bool) {
	for i, it := range h.items {
		if it.ID() == id {
			h.items = append(h.items[:i], h.items[i+1:]...)
			if h.selected == id {
				h.selected = ""
			}
			h.events = append(h.events, fakeEvent{"remove", it.Kind(), notify})
			return
		}
	}
}

func (h *fakeHost) UpdateItem(id string, mutate func(item.Item), notify bool) {
	it := h.ItemByID(id)
	if it == nil {
		return
	}
	mutate(it)
	h.events = append(h.events, fakeEvent{"update", it.Kind(), notify})
}

func (h *fakeHost) ItemByID(id string) item.Item {
	for _, it := range h.items {
		if it.ID() == id {
			return it
		}
	}
	return nil
}

func (h *fakeHost) Items() []item.Item { return h.items }

func (h *fakeHost) ClearItems(notify bool) {
	h.items = nil
	h.events = append(h.events, fakeEvent{"clear", "", notify})
}

func (h *fakeHost) SetDrawingItem(it item.Item) { h.drawing = it }
func (h *fakeHost) DrawingItem() item.Item      { return h.drawing }

func (h *fakeHost) SetSelectedID(id string) { h.selected = id }
func (h *fakeHost) SelectedID() string      { return h.selected }

func (h *fakeHost) SetHoveredID(id string) {
	h.hoverMu.Lock()
	defer h.hoverMu.Unlock()
	h.hovered = id
}

func (h *fakeHost) HoveredID() string {
	h.hoverMu.Lock()
	defer h.hoverMu.Unlock()
	return h.hovered
}

func (h *fakeHost) Coords() *geom.Coords          { return h.coords }
func (h *fakeHost) ViewSize() fyne.Size           { return h.view }
func (h *fakeHost) BackgroundColor() color.Color  { return color.White }
func (h *fakeHost) Refresh()                      { h.refreshes++ }

func (h *fakeHost) ActivateTool(name string) {
	if cur, ok := h.tools[h.active]; ok {
		cur.Deactivated()
	}
	h.previous = h.active
	h.active = name
	if next, ok := h.tools[name]; ok {
		next.Activated()
	}
}

func (h *fakeHost) ActiveToolName() string   { return h.active }
func (h *fakeHost) PreviousToolName() string { return h.previous }
func (h *fakeHost) DefaultToolName() string  { return item.KindPen }

func (h *fakeHost) ShowTextEditor(t *item.Text) { h.editorShown = append(h.editorShown, t) }

func (h *fakeHost) PickImage(done func(image.Image, error)) {
	done(h.pickImage, h.pickErr)
}

// notifying returns only the committed events.
func (h *fakeHost) notifying() []fakeEvent {
	var out []fakeEvent
	for _, e := range h.events {
		if e.notify {
			out = append(out, e)
		}
	}
	return out
}
