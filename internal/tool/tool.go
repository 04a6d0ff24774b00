// Package tool turns raw pointer gestures into item mutations. One tool
// exists per interaction modality; exactly one is active at a time. A
// tool receives canvas-pixel coordinates from its host and converts to
// world coordinates before touching any item payload. Tools never hold
// their own copy of the item collection: every mutation funnels through
// the Host so id uniqueness and change notifications stay in one place.
package tool

import (
	"fmt"
	"image"
	"image/color"
	"sort"

	"fyne.io/fyne/v2"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// Host is the narrow surface a tool gets over its owning board. A tool
// is handed its host at construction time; it never goes looking for
// one.
type Host interface {
	// Item collection. AddItem prepends, so index 0 is the newest item.
	// notify=false marks a speculative in-flight mutation; at least one
	// notifying mutation must close out every completed gesture.
	AddItem(it item.Item, notify bool)
	RemoveItem(id string, notify bool)
	UpdateItem(id string, mutate func(item.Item), notify bool)
	ItemByID(id string) item.Item
	Items() []item.Item
	ClearItems(notify bool)

	// The single-slot, not-yet-committed drawing in progress.
	SetDrawingItem(it item.Item)
	DrawingItem() item.Item

	// Transient UI state.
	SetSelectedID(id string)
	SelectedID() string
	SetHoveredID(id string)
	HoveredID() string

	// View.
	Coords() *geom.Coords
	ViewSize() fyne.Size
	BackgroundColor() color.Color
	Refresh()

	// Tool switching. PreviousToolName is a depth-1 history, enough for
	// the clear tool to restore whatever was active before it.
	ActivateTool(name string)
	ActiveToolName() string
	PreviousToolName() string
	DefaultToolName() string

	// Platform capabilities the UI layer provides.
	ShowTextEditor(t *item.Text)
	PickImage(done func(img image.Image, err error))
}

// Tool is the per-modality gesture handler. Coordinates are canvas
// pixels. A DrawMove or DrawEnd with no matching DrawStart must be a
// harmless no-op: the user may have switched tools mid-gesture.
type Tool interface {
	Name() string
	Activated()
	Deactivated()
	DrawStart(p geom.Point)
	DrawMove(p geom.Point)
	DrawEnd()
}

// HoverMover is implemented by tools that track plain (non-drag) mouse
// movement. Only the pointer tool does today.
type HoverMover interface {
	HoverMove(p geom.Point)
}

// Aborter lets a tool drop gesture state when the platform cancels a
// touch sequence.
type Aborter interface {
	Abort()
}

// OptionsProvider supplies the options panel shown while the tool is
// active. The selected item, if any, is passed so panels can edit it in
// place.
type OptionsProvider interface {
	Options(selected item.Item) fyne.CanvasObject
}

var builders = map[string]func(Host) Tool{}

func register(name string, fn func(Host) Tool) {
	builders[name] = fn
}

// Build constructs the named tool attached to h.
func Build(name string, h Host) (Tool, error) {
	fn, ok := builders[name]
	if !ok {
		return nil, fmt.Errorf("unknown tool %q", name)
	}
	return fn(h), nil
}

// Names lists every registered tool, sorted for deterministic setup.
func Names() []string {
	names := make([]string, 0, len(builders))
	for name := range builders {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
