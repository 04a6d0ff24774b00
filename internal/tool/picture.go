package tool

import (
	"image"
	"log"

	"sketchboard/internal/geom"
	"sketchboard/internal/item"
)

// picturePlacementScale caps a freshly placed picture at this share of
// the visible canvas.
const picturePlacementScale float32 = 0.8

// pictureTool has no canvas gesture: selecting it opens the platform
// file picker, and a successful decode drops the image centered in the
// current view, sized to fit, selects it and hands control back to the
// default tool. A picker that reports an error (or is dismissed) just
// switches back.
type pictureTool struct {
	host Host
}

func init() {
	register(item.KindPicture, func(h Host) Tool { return &pictureTool{host: h} })
}

func (t *pictureTool) Name() string { return item.KindPicture }

func (t *pictureTool) Activated() {
	t.host.PickImage(func(img image.Image, err error) {
		defer t.host.ActivateTool(t.host.DefaultToolName())
		if err != nil || img == nil {
			if err != nil {
				log.Printf("[tool] picture load failed: %v", err)
			}
			return
		}
		t.place(img)
	})
}

func (t *pictureTool) place(img image.Image) {
	coords := t.host.Coords()
	view := t.host.ViewSize()

	// Available space in world units, then fit preserving aspect ratio.
	maxW := view.Width / coords.Zoom() * picturePlacementScale
	maxH := view.Height / coords.Zoom() * picturePlacementScale
	bounds := img.Bounds()
	w := float32(bounds.Dx())
	h := float32(bounds.Dy())
	if w <= 0 || h <= 0 {
		return
	}
	if scale := minf(maxW/w, maxH/h); scale < 1 {
		w *= scale
		h *= scale
	}

	center := coords.ToWorld(geom.NewPoint(view.Width/2, view.Height/2))
	pic, err := item.NewPictureFromImage(img, center.X-w/2, center.Y-h/2, w, h)
	if err != nil {
		log.Printf("[tool] picture placement failed: %v", err)
		return
	}
	t.host.AddItem(pic, true)
	t.host.SetSelectedID(pic.ID())
	t.host.Refresh()
}

func (t *pictureTool) Deactivated()         {}
func (t *pictureTool) DrawStart(geom.Point) {}
func (t *pictureTool) DrawMove(geom.Point)  {}
func (t *pictureTool) DrawEnd()             {}

func minf(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
