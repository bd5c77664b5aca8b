package ui

import (
	"image/color"
	"math"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"localboard/internal/board"
	"localboard/internal/engine"
	"localboard/internal/export"
	"localboard/internal/state"
)

// scrollScaleStep is the scale applied to the selection per scroll notch.
const scrollScaleStep = 1.1

var selectionColor = color.NRGBA{R: 30, G: 120, B: 255, A: 255}

// BoardWidget shows a board and turns mouse input into board events. It
// never edits shape records itself: moves and scroll-zooms of the selection
// are reported through OnTransformEnd.
type BoardWidget struct {
	widget.BaseWidget
	board *board.Board

	mu sync.RWMutex
	dc engine.DrawingContext

	// Select-tool drag preview.
	moving bool
	moveDX float32
	moveDY float32

	statusBar *widget.Label
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.Scrollable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)

func NewBoardWidget(b *board.Board, dc engine.DrawingContext) *BoardWidget {
	w := &BoardWidget{
		board:     b,
		dc:        dc,
		statusBar: widget.NewLabel("Ready"),
	}
	w.ExtendBaseWidget(w)
	b.OnChange = w.Refresh
	b.OnToolChange(dc.Tool)
	return w
}

// Board returns the board driven by the widget.
func (w *BoardWidget) Board() *board.Board { return w.board }

// DrawingContext returns the current toolbar settings.
func (w *BoardWidget) DrawingContext() engine.DrawingContext {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.dc
}

func (w *BoardWidget) updateContext(f func(*engine.DrawingContext)) {
	w.mu.Lock()
	f(&w.dc)
	w.mu.Unlock()
}

func (w *BoardWidget) SetTool(t engine.Tool) {
	w.updateContext(func(dc *engine.DrawingContext) { dc.Tool = t })
	w.board.OnToolChange(t)
	w.SetStatus("Tool: " + string(t))
}

func (w *BoardWidget) SetColor(c color.Color) {
	w.updateContext(func(dc *engine.DrawingContext) { dc.StrokeColor = export.HexColor(c) })
}

func (w *BoardWidget) SetStroke(s float32) {
	w.updateContext(func(dc *engine.DrawingContext) { dc.StrokeWidth = float64(s) })
}

func (w *BoardWidget) SetEraserSize(s float32) {
	w.updateContext(func(dc *engine.DrawingContext) { dc.EraserSize = float64(s) })
}

func (w *BoardWidget) SetStatus(text string) {
	w.statusBar.SetText(text)
}

// Resize keeps the board's canvas bounds in step with the widget.
func (w *BoardWidget) Resize(size fyne.Size) {
	w.BaseWidget.Resize(size)
	w.board.Resize(float64(size.Width), float64(size.Height))
}

func toPoint(p fyne.Position) state.Point {
	return state.Point{X: float64(p.X), Y: float64(p.Y)}
}

func (w *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	dc := w.DrawingContext()
	w.board.OnPointerDown(dc, toPoint(e.Position))
	if dc.Tool == engine.ToolSelect && w.board.Selected() != "" {
		w.mu.Lock()
		w.moving, w.moveDX, w.moveDY = true, 0, 0
		w.mu.Unlock()
	}
}

func (w *BoardWidget) Dragged(e *fyne.DragEvent) {
	w.mu.Lock()
	if w.moving {
		w.moveDX += e.Dragged.DX
		w.moveDY += e.Dragged.DY
		w.mu.Unlock()
		w.Refresh()
		return
	}
	w.mu.Unlock()
	w.board.OnPointerMove(toPoint(e.Position))
}

func (w *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	w.finishGesture()
}

// DragEnd also ends the gesture: fyne may deliver it instead of MouseUp when
// the pointer is released outside the widget.
func (w *BoardWidget) DragEnd() {
	w.finishGesture()
}

func (w *BoardWidget) finishGesture() {
	w.mu.Lock()
	moving, dx, dy := w.moving, w.moveDX, w.moveDY
	w.moving, w.moveDX, w.moveDY = false, 0, 0
	w.mu.Unlock()

	if !moving {
		w.board.OnPointerUp()
		return
	}
	s, ok := w.board.SelectedShape()
	if !ok || (dx == 0 && dy == 0) {
		w.Refresh()
		return
	}
	d := engine.Identity(s)
	d.X += float64(dx)
	d.Y += float64(dy)
	w.board.OnTransformEnd(s.ID, d)
}

// Scrolled scales the selected shape.
func (w *BoardWidget) Scrolled(e *fyne.ScrollEvent) {
	s, ok := w.board.SelectedShape()
	if !ok || e.Scrolled.DY == 0 {
		return
	}
	f := scrollScaleStep
	if e.Scrolled.DY < 0 {
		f = 1 / scrollScaleStep
	}
	d := engine.Identity(s)
	d.ScaleX, d.ScaleY = f, f
	w.board.OnTransformEnd(s.ID, d)
}

// RotateSelected turns the selected shape by deg degrees.
func (w *BoardWidget) RotateSelected(deg float64) {
	s, ok := w.board.SelectedShape()
	if !ok {
		return
	}
	d := engine.Identity(s)
	d.Rotation = math.Mod(s.Rotation+deg, 360)
	w.board.OnTransformEnd(s.ID, d)
}

func (w *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (w *BoardWidget) MouseOut() {}

func (w *BoardWidget) MouseMoved(*desktop.MouseEvent) {}

func (w *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	r := &boardWidgetRenderer{board: w}
	r.background = canvas.NewRectangle(color.White)
	r.Refresh()
	return r
}

type boardWidgetRenderer struct {
	board      *BoardWidget
	background *canvas.Rectangle
	objects    []fyne.CanvasObject
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

func (r *boardWidgetRenderer) Refresh() {
	w := r.board
	dc := w.DrawingContext()
	r.background.FillColor = parseColor(dc.Background, color.White)

	w.mu.RLock()
	moving, dx, dy := w.moving, w.moveDX, w.moveDY
	w.mu.RUnlock()
	selected := w.board.Selected()

	objects := []fyne.CanvasObject{r.background}
	for _, s := range w.board.Shapes() {
		var ox, oy float32
		if moving && s.ID == selected {
			ox, oy = dx, dy
		}
		if pic, ok := s.Geom.(state.Picture); ok {
			img := canvas.NewImageFromFile(pic.Src)
			img.FillMode = canvas.ImageFillStretch
			img.Move(fyne.NewPos(float32(pic.X)+ox, float32(pic.Y)+oy))
			img.Resize(fyne.NewSize(float32(pic.Width), float32(pic.Height)))
			objects = append(objects, img)
		}
		pathColor := parseColor(s.Stroke, color.Black)
		for _, l := range engine.Outline(s) {
			objects = append(objects, polylineObjects(l, pathColor, float32(s.StrokeWidth), ox, oy)...)
		}
		if s.ID == selected {
			b := engine.Bounds(s).Expand(engine.SelectRadius)
			frame := canvas.NewRectangle(color.Transparent)
			frame.StrokeColor = selectionColor
			frame.StrokeWidth = 1
			frame.Move(fyne.NewPos(float32(b.X)+ox, float32(b.Y)+oy))
			frame.Resize(fyne.NewSize(float32(b.Width), float32(b.Height)))
			objects = append(objects, frame)
		}
	}
	r.objects = objects
	canvas.Refresh(w)
}

func polylineObjects(l engine.Polyline, c color.Color, width, ox, oy float32) []fyne.CanvasObject {
	pts := l.Points
	if l.Closed && len(pts) > 2 {
		pts = append(pts[:len(pts):len(pts)], pts[0])
	}
	objects := make([]fyne.CanvasObject, 0, len(pts))
	for i := 0; i < len(pts)-1; i++ {
		segment := canvas.NewLine(c)
		segment.StrokeWidth = width
		segment.Position1 = fyne.NewPos(float32(pts[i].X)+ox, float32(pts[i].Y)+oy)
		segment.Position2 = fyne.NewPos(float32(pts[i+1].X)+ox, float32(pts[i+1].Y)+oy)
		objects = append(objects, segment)
	}
	return objects
}

func parseColor(s string, def color.Color) color.Color {
	c, err := export.ParseColor(s)
	if err != nil {
		return def
	}
	return c
}

func (r *boardWidgetRenderer) Destroy() {}
func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
}
func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(300, 300)
}
