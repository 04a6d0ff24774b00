package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"sketchboard/internal/item"
	"sketchboard/internal/tool"
)

// iconFor maps a tool name to its toolbar icon. Unknown names get the
// question mark and an error so the toolbar can log the gap instead of
// showing a blank button.
func iconFor(name string) (fyne.Resource, error) {
	switch name {
	case tool.ToolPointer:
		return theme.SearchIcon(), nil
	case tool.ToolMove:
		return theme.ViewFullScreenIcon(), nil
	case tool.ToolClear:
		return theme.ContentClearIcon(), nil
	case item.KindPen:
		return theme.DocumentCreateIcon(), nil
	case item.KindEraser:
		return theme.DeleteIcon(), nil
	case item.KindRect:
		return theme.CheckButtonIcon(), nil
	case item.KindCircle:
		return theme.RadioButtonIcon(), nil
	case item.KindLine:
		return theme.ContentRemoveIcon(), nil
	case item.KindText:
		return theme.DocumentIcon(), nil
	case item.KindPicture:
		return theme.FileImageIcon(), nil
	}
	return theme.QuestionIcon(), fmt.Errorf("no icon for tool %q", name)
}
