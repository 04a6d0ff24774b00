package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/lang"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/widget"

	"sketchboard/internal/board"
	"sketchboard/internal/export"
)

// RunApp opens the main window around an already-wired board and
// blocks until the window closes. shareLink, when non-empty, is shown
// in the status bar so peers on the LAN know where to connect.
func RunApp(shareLink string, b *board.Board) {
	a := app.New()
	win := a.NewWindow(lang.L("Sketchboard"))
	win.Resize(fyne.NewSize(1024, 768))

	overlay := newOverlay()
	attachTextEditor(b, win, overlay)
	attachImagePicker(b, win)

	status := widget.NewLabel(lang.L("Ready"))
	if shareLink != "" {
		status.SetText(lang.L("Share") + ": " + shareLink)
	}

	content := container.NewBorder(
		newToolbar(b), status, nil, nil,
		container.NewStack(b, overlay),
	)
	win.SetContent(content)
	win.Canvas().SetOnTypedKey(b.TypedKey)
	win.SetMainMenu(mainMenu(win, b, status))
	win.ShowAndRun()
}

func mainMenu(win fyne.Window, b *board.Board, status *widget.Label) *fyne.MainMenu {
	open := fyne.NewMenuItem(lang.L("Open")+"…", func() {
		fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				return
			}
			defer rc.Close()
			if err := b.Load(rc); err != nil {
				log.Printf("[ui] %v", err)
				dialog.ShowError(err, win)
				return
			}
			status.SetText(lang.L("Loaded") + ": " + rc.URI().Name())
		}, win)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
		fd.Show()
	})

	save := fyne.NewMenuItem(lang.L("Save")+"…", func() {
		fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer wc.Close()
			if err := b.Save(wc); err != nil {
				log.Printf("[ui] %v", err)
				dialog.ShowError(err, win)
				return
			}
			status.SetText(lang.L("Saved") + ": " + wc.URI().Name())
		}, win)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
		fd.SetFileName("board.json")
		fd.Show()
	})

	exportPDF := fyne.NewMenuItem(lang.L("Export PDF")+"…", func() {
		fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer wc.Close()
			if err := export.PDF(wc, b.Items()); err != nil {
				log.Printf("[ui] %v", err)
				dialog.ShowError(err, win)
			}
		}, win)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{".pdf"}))
		fd.SetFileName("board.pdf")
		fd.Show()
	})

	exportPNG := fyne.NewMenuItem(lang.L("Export PNG")+"…", func() {
		fd := dialog.NewFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer wc.Close()
			if err := export.PNG(wc, b); err != nil {
				log.Printf("[ui] %v", err)
				dialog.ShowError(err, win)
			}
		}, win)
		fd.SetFilter(storage.NewExtensionFileFilter([]string{".png"}))
		fd.SetFileName("board.png")
		fd.Show()
	})

	return fyne.NewMainMenu(fyne.NewMenu(lang.L("File"),
		open, save,
		fyne.NewMenuItemSeparator(),
		exportPDF, exportPNG,
	))
}
