package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"

	"localboard/internal/board"
	"localboard/internal/config"
	"localboard/internal/engine"
)

// rotateStep is the rotation applied to the selection per R key press.
const rotateStep = 15

func RunApp(cfg config.Config) {
	myApp := app.New()
	myWindow := myApp.NewWindow("Local Whiteboard")
	myWindow.Resize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)))

	// Create the interactive board widget
	b := board.New(cfg.Canvas.Width, cfg.Canvas.Height)
	boardWidget := NewBoardWidget(b, engine.DrawingContext{
		Tool:        engine.Tool(cfg.Drawing.Tool),
		StrokeColor: cfg.Drawing.StrokeColor,
		StrokeWidth: cfg.Drawing.StrokeWidth,
		EraserSize:  cfg.Drawing.EraserSize,
		Background:  cfg.Drawing.Background,
	})

	// Create the toolbar and pass it a reference to the board
	toolbar := NewToolbar(boardWidget, fileActions(boardWidget, myWindow))
	bindKeys(myWindow.Canvas(), boardWidget)

	// Set up the main layout
	content := container.NewBorder(toolbar, boardWidget.statusBar, nil, nil, boardWidget)

	myWindow.SetContent(content)
	myWindow.ShowAndRun()
}

func bindKeys(c fyne.Canvas, w *BoardWidget) {
	b := w.Board()
	shortcut := func(key fyne.KeyName, mod fyne.KeyModifier, fn func()) {
		c.AddShortcut(&desktop.CustomShortcut{KeyName: key, Modifier: mod}, func(fyne.Shortcut) { fn() })
	}
	shortcut(fyne.KeyZ, fyne.KeyModifierShortcutDefault, b.OnUndo)
	shortcut(fyne.KeyY, fyne.KeyModifierShortcutDefault, b.OnRedo)
	shortcut(fyne.KeyZ, fyne.KeyModifierShortcutDefault|fyne.KeyModifierShift, b.OnRedo)

	c.SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyDelete, fyne.KeyBackspace:
			b.OnDeleteSelected()
		case fyne.KeyEscape:
			b.Deselect()
		case fyne.KeyR:
			w.RotateSelected(rotateStep)
		}
	})
}
