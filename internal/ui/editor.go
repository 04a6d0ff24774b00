package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/board"
	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// attachTextEditor wires the board's text editing capability to an
// entry overlaid on the canvas. The entry lives in the overlay
// container stacked over the board and follows the item's canvas
// position; the item only renders itself again once the entry is gone.
func attachTextEditor(b *board.Board, win fyne.Window, overlay *fyne.Container) {
	b.ShowEditor = func(txt *item.Text) {
		entry := widget.NewEntry()
		entry.SetText(txt.Content)

		place := func() {
			pos := b.Coords().ToCanvas(geom.NewPoint(txt.X, txt.Y))
			size := fyne.MeasureText(entry.Text+"  ", txt.Options.FontSize, fyne.TextStyle{})
			entry.Move(fyne.NewPos(pos.X, pos.Y))
			entry.Resize(fyne.NewSize(size.Width+themePad, size.Height+themePad))
		}

		detach := func() {
			txt.Editing = false
			txt.DetachEditor = nil
			overlay.Remove(entry)
			overlay.Refresh()
			b.Refresh()
		}
		txt.DetachEditor = func() {
			overlay.Remove(entry)
			overlay.Refresh()
		}

		entry.OnChanged = func(s string) {
			// Keep the live content in the item so the bounding box and
			// any export stay honest, without notifying per keystroke.
			b.UpdateItem(txt.ID(), func(it item.Item) {
				it.(*item.Text).Content = s
			}, false)
			place()
		}
		entry.OnSubmitted = func(string) {
			detach()
			b.UpdateItem(txt.ID(), func(item.Item) {}, true)
		}

		place()
		overlay.Add(entry)
		overlay.Refresh()
		win.Canvas().Focus(entry)
	}
}

// Rough padding around the measured text so the entry's frame does not
// clip the content.
const themePad = 12

// newOverlay holds transient editing widgets above the board.
func newOverlay() *fyne.Container {
	return container.NewWithoutLayout()
}
