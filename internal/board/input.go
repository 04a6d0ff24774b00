package board

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/driver/mobile"

	"sketchboard/internal/geom"
	"sketchboard/internal/tool"
)

// Pointer and touch routing. Mouse positions arrive widget-relative
// from the driver, touch positions are normalized by fyne to the same
// basis; both become the canvas-pixel points handed to the active tool.

const (
	zoomStep = 1.1
	zoomMin  = 0.25
	zoomMax  = 4
)

func (b *Board) activeTool() tool.Tool { return b.tools[b.active] }

func toPoint(pos fyne.Position) geom.Point {
	return geom.NewPoint(pos.X, pos.Y)
}

func (b *Board) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if t := b.activeTool(); t != nil {
		t.DrawStart(toPoint(e.Position))
	}
}

func (b *Board) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	if t := b.activeTool(); t != nil {
		t.DrawEnd()
	}
}

func (b *Board) Dragged(e *fyne.DragEvent) {
	if t := b.activeTool(); t != nil {
		t.DrawMove(toPoint(e.Position))
	}
}

// DragEnd is intentionally empty: MouseUp/TouchUp close the gesture.
func (b *Board) DragEnd() {}

func (b *Board) MouseIn(*desktop.MouseEvent) {}

func (b *Board) MouseMoved(e *desktop.MouseEvent) {
	if h, ok := b.activeTool().(tool.HoverMover); ok {
		h.HoverMove(toPoint(e.Position))
	}
}

func (b *Board) MouseOut() {
	b.SetHoveredID("")
}

func (b *Board) TouchDown(e *mobile.TouchEvent) {
	if t := b.activeTool(); t != nil {
		t.DrawStart(toPoint(e.Position))
	}
}

func (b *Board) TouchUp(e *mobile.TouchEvent) {
	if t := b.activeTool(); t != nil {
		t.DrawEnd()
	}
}

// TouchCancel aborts the in-progress item without committing it.
func (b *Board) TouchCancel(*mobile.TouchEvent) {
	b.SetDrawingItem(nil)
	if a, ok := b.activeTool().(tool.Aborter); ok {
		a.Abort()
	}
	b.Refresh()
}

// Scrolled zooms around the current view, clamped to a sane range.
func (b *Board) Scrolled(e *fyne.ScrollEvent) {
	z := b.coords.Zoom()
	if e.Scrolled.DY > 0 {
		z *= zoomStep
	} else {
		z /= zoomStep
	}
	if z < zoomMin {
		z = zoomMin
	}
	if z > zoomMax {
		z = zoomMax
	}
	if err := b.coords.SetZoom(z); err != nil {
		return
	}
	b.Refresh()
}

// TypedKey routes delete/backspace to the selected item. The UI layer
// forwards window key events here.
func (b *Board) TypedKey(e *fyne.KeyEvent) {
	switch e.Name {
	case fyne.KeyDelete, fyne.KeyBackspace:
		b.DeleteSelected()
	}
}
