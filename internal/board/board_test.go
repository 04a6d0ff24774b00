package board

import (
	"bytes"
	"testing"

	fynetest "fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sketchboard/internal/item"
	"sketchboard/internal/tool"
)

func TestMain(m *testing.M) {
	fynetest.NewApp()
	m.Run()
}

func newBoard() (*Board, *[]Event) {
	b := New()
	events := &[]Event{}
	b.OnChange = func(ev Event) { *events = append(*events, ev) }
	return b, events
}

func addRect(b *Board, x, y, w, h float32) *item.Rect {
	r := item.NewRect(x, y, item.DefaultShapeOptions())
	r.Width, r.Height = w, h
	b.AddItem(r, true)
	return r
}

func TestAddItemPrependsNewestFirst(t *testing.T) {
	b, events := newBoard()

	first := addRect(b, 0, 0, 10, 10)
	second := addRect(b, 20, 20, 10, 10)

	items := b.Items()
	require.Len(t, items, 2)
	assert.Equal(t, second.ID(), items[0].ID())
	assert.Equal(t, first.ID(), items[1].ID())

	require.Len(t, *events, 2)
	assert.Equal(t, EventAdd, (*events)[0].Type)
	assert.Equal(t, first.ID(), (*events)[0].Item.ID)
}

func TestAddItemDropsDuplicateID(t *testing.T) {
	b, events := newBoard()

	r := addRect(b, 0, 0, 10, 10)
	b.AddItem(r, true)

	assert.Len(t, b.Items(), 1)
	assert.Len(t, *events, 1)
}

func TestRemoveItemClearsSelectionAndHover(t *testing.T) {
	b, events := newBoard()

	r := addRect(b, 0, 0, 10, 10)
	b.SetSelectedID(r.ID())
	b.SetHoveredID(r.ID())

	b.RemoveItem(r.ID(), true)

	assert.Empty(t, b.Items())
	assert.Empty(t, b.SelectedID())
	assert.Empty(t, b.HoveredID())
	last := (*events)[len(*events)-1]
	assert.Equal(t, EventRemove, last.Type)
	assert.Equal(t, r.ID(), last.Item.ID)
}

func TestUpdateItemUnknownIDIsNoOp(t *testing.T) {
	b, events := newBoard()

	called := false
	b.UpdateItem("missing", func(item.Item) { called = true }, true)

	assert.False(t, called)
	assert.Empty(t, *events)
}

func TestUpdateItemNotifiesWithFreshRecord(t *testing.T) {
	b, events := newBoard()
	r := addRect(b, 0, 0, 10, 10)
	*events = nil

	b.UpdateItem(r.ID(), func(it item.Item) {
		it.MoveBy(5, 5)
	}, true)

	require.Len(t, *events, 1)
	assert.Equal(t, EventUpdate, (*events)[0].Type)

	moved, err := item.Decode(*(*events)[0].Item)
	require.NoError(t, err)
	assert.Equal(t, float32(5), moved.(*item.Rect).X)
}

func TestSilentMutationsEmitNothing(t *testing.T) {
	b, events := newBoard()
	r := item.NewRect(0, 0, item.DefaultShapeOptions())

	b.AddItem(r, false)
	b.UpdateItem(r.ID(), func(item.Item) {}, false)
	b.RemoveItem(r.ID(), false)
	b.ClearItems(false)

	assert.Empty(t, *events)
}

func TestClearItemsEmptiesEverything(t *testing.T) {
	b, events := newBoard()
	addRect(b, 0, 0, 10, 10)
	r := addRect(b, 5, 5, 10, 10)
	b.SetSelectedID(r.ID())
	*events = nil

	b.ClearItems(true)

	assert.Empty(t, b.Items())
	assert.Empty(t, b.SelectedID())
	require.Len(t, *events, 1)
	assert.Equal(t, EventClear, (*events)[0].Type)
	assert.Nil(t, (*events)[0].Item)
}

func TestSelectionChangeEndsTextEditing(t *testing.T) {
	b, _ := newBoard()

	txt := item.NewText(0, 0, "", item.DefaultTextOptions())
	txt.Editing = true
	detached := false
	txt.DetachEditor = func() { detached = true }
	b.AddItem(txt, false)

	var changes []string
	b.OnSelectionChange = func(id string) { changes = append(changes, id) }

	b.SetSelectedID(txt.ID())
	b.SetSelectedID("")

	assert.False(t, txt.Editing)
	assert.True(t, detached)
	assert.Equal(t, []string{txt.ID(), ""}, changes)
}

func TestSaveLoadRoundTripKeepsIDsAndOrder(t *testing.T) {
	b, _ := newBoard()
	first := addRect(b, 0, 0, 10, 10)
	line := item.NewLine(0, 0, item.DefaultShapeOptions())
	line.X2, line.Y2 = 30, 40
	b.AddItem(line, false)

	var buf bytes.Buffer
	require.NoError(t, b.Save(&buf))

	loaded, _ := newBoard()
	require.NoError(t, loaded.Load(&buf))

	items := loaded.Items()
	require.Len(t, items, 2)
	assert.Equal(t, line.ID(), items[0].ID())
	assert.Equal(t, first.ID(), items[1].ID())
	assert.Equal(t, item.KindLine, items[0].Kind())
}

func TestImportRecordsRejectsDuplicatesAtomically(t *testing.T) {
	b, _ := newBoard()
	addRect(b, 0, 0, 10, 10)

	rec, err := item.NewRect(0, 0, item.DefaultShapeOptions()).Export()
	require.NoError(t, err)
	err = b.ImportRecords([]item.Record{rec, rec})

	assert.Error(t, err)
	assert.Len(t, b.Items(), 1, "a failed import leaves the board untouched")
}

func TestLoadRejectsGarbage(t *testing.T) {
	b, _ := newBoard()
	assert.Error(t, b.Load(bytes.NewBufferString("not json")))
}

func TestActivateToolTracksPrevious(t *testing.T) {
	b, _ := newBoard()

	var switched []string
	b.OnToolChange = func(name string) { switched = append(switched, name) }

	b.ActivateTool(item.KindRect)
	b.ActivateTool(item.KindPen)

	assert.Equal(t, item.KindPen, b.ActiveToolName())
	assert.Equal(t, item.KindRect, b.PreviousToolName())
	assert.Equal(t, []string{item.KindRect, item.KindPen}, switched)
}

func TestClearToolNotificationEndsOnRestoredTool(t *testing.T) {
	b, _ := newBoard()
	addRect(b, 0, 0, 10, 10)

	var switched []string
	b.OnToolChange = func(name string) { switched = append(switched, name) }

	b.ActivateTool(item.KindRect)
	b.ActivateTool(tool.ToolClear)

	assert.Empty(t, b.Items())
	assert.Equal(t, item.KindRect, b.ActiveToolName())
	require.NotEmpty(t, switched)
	assert.Equal(t, b.ActiveToolName(), switched[len(switched)-1],
		"the last tool notification must name the tool that ends up active")
}

func TestActivateUnknownToolIsNoOp(t *testing.T) {
	b, _ := newBoard()
	before := b.ActiveToolName()

	b.ActivateTool("stamp")

	assert.Equal(t, before, b.ActiveToolName())
}

func TestDeleteSelectedHonorsBackspaceOptOut(t *testing.T) {
	b, events := newBoard()

	txt := item.NewText(0, 0, "keep me", item.DefaultTextOptions())
	txt.Editing = true
	b.AddItem(txt, false)
	b.SetSelectedID(txt.ID())
	*events = nil

	b.DeleteSelected()
	assert.Len(t, b.Items(), 1, "an editing text item owns the backspace key")

	txt.Editing = false
	b.DeleteSelected()
	assert.Empty(t, b.Items())
	require.Len(t, *events, 1)
	assert.Equal(t, EventRemove, (*events)[0].Type)
}
