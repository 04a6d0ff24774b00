package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"sketchboard/internal/board"
)

var imageExtensions = []string{".png", ".jpg", ".jpeg", ".gif"}

// attachImagePicker wires the board's image capability to a file open
// dialog. A cancelled dialog reports (nil, nil) so the picture tool can
// stand down quietly.
func attachImagePicker(b *board.Board, win fyne.Window) {
	b.PickImageFn = func(done func(image.Image, error)) {
		fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				done(nil, err)
				return
			}
			defer rc.Close()
			img, _, err := image.Decode(rc)
			done(img, err)
		}, win)
		fd.SetFilter(storage.NewExtensionFileFilter(imageExtensions))
		fd.Show()
	}
}
