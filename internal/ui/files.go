package ui

import (
	"fmt"
	"image"
	"io"
	"log/slog"
	"os"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/storage"

	"localboard/internal/board"
	"localboard/internal/export"
	"localboard/internal/logging"
)

func (w *BoardWidget) exportOptions() export.Options {
	return export.Options{
		Background: parseColor(w.DrawingContext().Background, nil),
		Images:     export.LoadImageFile,
	}
}

// SaveToFile writes the document as JSON.
func (w *BoardWidget) SaveToFile(writer fyne.URIWriteCloser) {
	defer closeLogged(writer)

	shapes := w.board.Shapes()
	if err := export.WriteJSON(writer, shapes); err != nil {
		logging.Logger().Error("[UI] save failed", "err", err)
		w.SetStatus("Error saving file")
		return
	}
	w.SetStatus(fmt.Sprintf("Saved %d shapes", len(shapes)))
}

// LoadFromFile replaces the board with a JSON document.
func (w *BoardWidget) LoadFromFile(reader fyne.URIReadCloser) {
	defer closeLogged(reader)

	w.SetStatus("Loading file...")
	shapes, err := export.ReadJSON(reader)
	if err != nil {
		logging.Logger().Error("[UI] load failed", "err", err)
		w.SetStatus("Error parsing file - invalid format")
		return
	}
	w.board.Load(shapes)
	w.SetStatus(fmt.Sprintf("Loaded %d shapes", len(shapes)))
}

// ExportToFile renders the board as PDF or PNG, chosen by the extension.
func (w *BoardWidget) ExportToFile(writer fyne.URIWriteCloser) {
	defer closeLogged(writer)

	area := w.board.Area()
	shapes := w.board.Shapes()
	var err error
	switch strings.ToLower(writer.URI().Extension()) {
	case ".pdf":
		err = export.WritePDF(writer, shapes, area.Width, area.Height, w.exportOptions())
	default:
		img := export.RenderToRaster(shapes, int(area.Width), int(area.Height), w.exportOptions())
		err = export.WritePNG(writer, img)
	}
	if err != nil {
		logging.Logger().Error("[UI] export failed", "err", err)
		w.SetStatus("Error exporting board")
		return
	}
	w.SetStatus("Exported " + writer.URI().Name())
}

// ImportImage places the picture at path in the middle of the board at its
// natural size.
func (w *BoardWidget) ImportImage(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return fmt.Errorf("read image header: %w", err)
	}
	area := w.board.Area()
	wd, ht := float64(cfg.Width), float64(cfg.Height)
	_, ok := w.board.OnImportImage(path, board.Placement{
		X:      (area.Width - wd) / 2,
		Y:      (area.Height - ht) / 2,
		Width:  wd,
		Height: ht,
	})
	if !ok {
		return fmt.Errorf("image %s is empty", path)
	}
	return nil
}

// fileActions wires the toolbar's document commands to fyne dialogs.
func fileActions(w *BoardWidget, win fyne.Window) Actions {
	return Actions{
		Open: func() {
			d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
				if err != nil {
					dialog.ShowError(err, win)
					return
				}
				if r != nil {
					w.LoadFromFile(r)
				}
			}, win)
			d.SetFilter(storage.NewExtensionFileFilter([]string{".json"}))
			d.Show()
		},
		Save: func() {
			dialog.ShowFileSave(func(wr fyne.URIWriteCloser, err error) {
				if err != nil {
					dialog.ShowError(err, win)
					return
				}
				if wr != nil {
					w.SaveToFile(wr)
				}
			}, win)
		},
		Export: func() {
			d := dialog.NewFileSave(func(wr fyne.URIWriteCloser, err error) {
				if err != nil {
					dialog.ShowError(err, win)
					return
				}
				if wr != nil {
					w.ExportToFile(wr)
				}
			}, win)
			d.SetFileName("board.png")
			d.Show()
		},
		ImportImage: func() {
			d := dialog.NewFileOpen(func(r fyne.URIReadCloser, err error) {
				if err != nil {
					dialog.ShowError(err, win)
					return
				}
				if r == nil {
					return
				}
				path := r.URI().Path()
				closeLogged(r)
				if err := w.ImportImage(path); err != nil {
					dialog.ShowError(err, win)
				}
			}, win)
			d.SetFilter(storage.NewExtensionFileFilter([]string{".png", ".jpg", ".jpeg", ".gif", ".bmp", ".tiff", ".webp"}))
			d.Show()
		},
	}
}

func closeLogged(c io.Closer) {
	if err := c.Close(); err != nil {
		logging.Logger().Warn("[UI] close failed", slog.Any("err", err))
	}
}
