package tool

import "sketchboard/internal/geom"

// ToolClear is the clear tool's registry name.
const ToolClear = "clear"

// clearTool is not a drawing tool: activating it empties the board and
// immediately re-activates whichever tool was active before, so it can
// never stay selected.
type clearTool struct {
	host Host
}

func init() {
	register(ToolClear, func(h Host) Tool { return &clearTool{host: h} })
}

func (t *clearTool) Name() string { return ToolClear }

func (t *clearTool) Activated() {
	t.host.SetSelectedID("")
	t.host.SetHoveredID("")
	t.host.ClearItems(true)

	prev := t.host.PreviousToolName()
	if prev == "" || prev == ToolClear {
		prev = t.host.DefaultToolName()
	}
	t.host.ActivateTool(prev)
}

func (t *clearTool) Deactivated()         {}
func (t *clearTool) DrawStart(geom.Point) {}
func (t *clearTool) DrawMove(geom.Point)  {}
func (t *clearTool) DrawEnd()             {}
