package export

import (
	"fmt"
	"image/png"
	"io"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/software"
)

// PNG rasterizes a canvas object offscreen and writes it as a PNG,
// used to snapshot the board view without touching the live window.
func PNG(w io.Writer, obj fyne.CanvasObject) error {
	img := software.Render(obj, fyne.CurrentApp().Settings().Theme())
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	return nil
}
