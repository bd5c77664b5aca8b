package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"localboard/internal/engine"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Color    color.Color
	OnTapped func(color.Color)
}

func newColorSwatch(c color.Color, tapped func(color.Color)) *colorSwatch {
	s := &colorSwatch{Color: c, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(s.Color)
	rect.SetMinSize(fyne.NewSize(32, 32))

	border := canvas.NewRectangle(color.Transparent)
	border.StrokeColor = color.Gray{Y: 150}
	border.StrokeWidth = 1

	return widget.NewSimpleRenderer(container.NewStack(rect, border))
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Color)
	}
}

// Actions are the document-level commands the toolbar triggers.
type Actions struct {
	Open        func()
	Save        func()
	Export      func()
	ImportImage func()
}

// --- The Main Toolbar ---
func NewToolbar(board *BoardWidget, actions Actions) fyne.CanvasObject {
	b := board.Board()

	tb := widget.NewToolbar(
		widget.NewToolbarAction(theme.FolderOpenIcon(), actions.Open),
		widget.NewToolbarAction(theme.DocumentSaveIcon(), actions.Save),
		widget.NewToolbarAction(theme.DownloadIcon(), actions.Export),
		widget.NewToolbarAction(theme.FileImageIcon(), actions.ImportImage),
		widget.NewToolbarSeparator(),
		widget.NewToolbarAction(theme.ContentUndoIcon(), b.OnUndo),
		widget.NewToolbarAction(theme.ContentRedoIcon(), b.OnRedo),
		widget.NewToolbarAction(theme.DeleteIcon(), b.OnDeleteSelected),
		widget.NewToolbarAction(theme.ContentClearIcon(), b.OnClear),
	)

	// --- Tool picker ---
	names := make([]string, 0)
	for _, t := range engine.Tools() {
		names = append(names, string(t))
	}
	toolSelect := widget.NewSelect(names, func(name string) {
		board.SetTool(engine.Tool(name))
	})
	toolSelect.SetSelected(string(board.DrawingContext().Tool))

	// --- Color Palette ---
	onColorTapped := func(c color.Color) {
		board.SetColor(c)
	}
	colorBox := container.NewHBox(
		newColorSwatch(color.Black, onColorTapped),
		newColorSwatch(color.NRGBA{R: 255, A: 255}, onColorTapped),         // Red
		newColorSwatch(color.NRGBA{G: 255, A: 255}, onColorTapped),         // Green
		newColorSwatch(color.NRGBA{B: 255, A: 255}, onColorTapped),         // Blue
		newColorSwatch(color.NRGBA{R: 255, G: 255, A: 255}, onColorTapped), // Yellow
	)

	// --- Stroke Width and Eraser Size Sliders ---
	dc := board.DrawingContext()
	strokeSlider := widget.NewSlider(1.0, 50.0)
	strokeSlider.SetValue(dc.StrokeWidth)
	strokeSlider.OnChanged = func(val float64) {
		board.SetStroke(float32(val))
	}
	eraserSlider := widget.NewSlider(2.0, 100.0)
	eraserSlider.SetValue(dc.EraserSize)
	eraserSlider.OnChanged = func(val float64) {
		board.SetEraserSize(float32(val))
	}
	sliderSize := fyne.NewSize(120, 35)

	// --- Assemble everything ---
	return container.NewHBox(
		tb,
		widget.NewSeparator(),
		widget.NewLabel("Tool:"),
		toolSelect,
		widget.NewSeparator(),
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		widget.NewLabel("Size:"),
		container.New(layout.NewGridWrapLayout(sliderSize), strokeSlider),
		widget.NewLabel("Eraser:"),
		container.New(layout.NewGridWrapLayout(sliderSize), eraserSlider),
		layout.NewSpacer(),
	)
}
