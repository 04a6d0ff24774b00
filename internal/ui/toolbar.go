package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/board"
	"sketchboard/internal/item"
	"sketchboard/internal/tool"
)

// toolOrder fixes the button layout; the registry itself is sorted
// alphabetically, which is no way to arrange a toolbar.
var toolOrder = []string{
	tool.ToolPointer,
	tool.ToolMove,
	item.KindPen,
	item.KindEraser,
	item.KindRect,
	item.KindCircle,
	item.KindLine,
	item.KindText,
	item.KindPicture,
	tool.ToolClear,
}

// newToolbar builds the tool buttons and the options panel that swaps
// with the active tool. It hooks the board's tool and selection
// callbacks to keep both in sync.
func newToolbar(b *board.Board) fyne.CanvasObject {
	buttons := make(map[string]*widget.Button, len(toolOrder))
	bar := container.NewHBox()

	for _, name := range toolOrder {
		name := name
		icon, err := iconFor(name)
		if err != nil {
			log.Printf("[ui] %v", err)
		}
		btn := widget.NewButtonWithIcon("", icon, func() {
			b.ActivateTool(name)
		})
		buttons[name] = btn
		bar.Add(btn)
	}
	bar.Add(widget.NewSeparator())

	options := container.NewHBox()
	refreshOptions := func() {
		options.RemoveAll()
		if p, ok := b.ActiveTool().(tool.OptionsProvider); ok {
			var selected item.Item
			if id := b.SelectedID(); id != "" {
				selected = b.ItemByID(id)
			}
			if panel := p.Options(selected); panel != nil {
				options.Add(panel)
			}
		}
		options.Refresh()
	}

	highlight := func(active string) {
		for name, btn := range buttons {
			if name == active {
				btn.Importance = widget.HighImportance
			} else {
				btn.Importance = widget.MediumImportance
			}
			btn.Refresh()
		}
	}

	b.OnToolChange = func(name string) {
		highlight(name)
		refreshOptions()
	}
	b.OnSelectionChange = func(string) {
		refreshOptions()
	}

	highlight(b.ActiveToolName())
	refreshOptions()

	return container.NewHBox(
		widget.NewLabel(lang.L("Tools")),
		bar,
		options,
		layout.NewSpacer(),
	)
}
