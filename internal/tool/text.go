package tool

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// textTool creates an empty text item at the world origin the moment it
// is selected, marks it selected and opens the edit overlay. Placement
// ignores where the user clicks afterwards; click-to-place is a known
// gap kept for compatibility with the observed behavior.
type textTool struct {
	host Host
	opts item.TextOptions
}

func init() {
	register(item.KindText, func(h Host) Tool {
		return &textTool{host: h, opts: item.DefaultTextOptions()}
	})
}

func (t *textTool) Name() string { return item.KindText }

func (t *textTool) Activated() {
	txt := item.NewText(0, 0, "", t.opts)
	txt.Editing = true
	t.host.AddItem(txt, true)
	t.host.SetSelectedID(txt.ID())
	t.host.ShowTextEditor(txt)
	t.host.Refresh()
}

func (t *textTool) Deactivated()         {}
func (t *textTool) DrawStart(geom.Point) {}
func (t *textTool) DrawMove(geom.Point)  {}
func (t *textTool) DrawEnd()             {}

func (t *textTool) Options(selected item.Item) fyne.CanvasObject {
	txt, ok := selected.(*item.Text)
	if !ok {
		return widget.NewLabel("Select a text item")
	}

	size := widget.NewSlider(8, 72)
	size.SetValue(float64(txt.Options.FontSize))
	size.OnChanged = func(v float64) {
		t.opts.FontSize = float32(v)
		t.host.UpdateItem(txt.ID(), func(it item.Item) {
			if tt, ok := it.(*item.Text); ok {
				tt.Options.FontSize = float32(v)
			}
		}, true)
	}

	edit := widget.NewButton("Edit", func() {
		t.host.UpdateItem(txt.ID(), func(it item.Item) {
			if tt, ok := it.(*item.Text); ok {
				tt.Editing = true
				t.host.ShowTextEditor(tt)
			}
		}, false)
	})

	return container.NewVBox(
		newPalette(func(hex string) {
			t.opts.FontColor = hex
			t.host.UpdateItem(txt.ID(), func(it item.Item) {
				if tt, ok := it.(*item.Text); ok {
					tt.Options.FontColor = hex
				}
			}, true)
		}),
		container.NewBorder(nil, nil, widget.NewLabel("Size"), edit, size),
	)
}
