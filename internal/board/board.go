// Package board is the event-driven core of the whiteboard. A Board owns the
// shape store and the undo history, and is driven exclusively through its
// On* handlers; renderers only read Shapes and feed transforms back through
// OnTransformEnd.
package board

import (
	"math"
	"sync"

	"localboard/internal/engine"
	"localboard/internal/logging"
	"localboard/internal/state"
)

// Placement positions an imported picture.
type Placement struct {
	X, Y          float64
	Width, Height float64
}

// gesture tracks one pointer-down → pointer-up interaction. Its end is
// gated on active, not on the pointer still being over the canvas.
type gesture struct {
	active     bool
	tool       engine.Tool
	anchor     state.Point
	eraserSize float64
	erased     int
}

// Board is the whiteboard state machine.
type Board struct {
	mu       sync.RWMutex
	store    *state.Store
	history  *state.History
	area     state.Area
	tool     engine.Tool
	selected string
	gesture  gesture

	// OnChange is called after every handler that changed what a renderer
	// should show. It runs without the board lock held.
	OnChange func()
}

// New returns an empty board over a canvas of the given size.
func New(width, height float64) *Board {
	return &Board{
		store:   state.NewStore(),
		history: state.NewHistory(),
		area:    state.Area{Width: width, Height: height},
		tool:    engine.ShapeTool(state.KindPen),
	}
}

func (b *Board) notify() {
	if b.OnChange != nil {
		b.OnChange()
	}
}

func (b *Board) commit() {
	b.history.Commit(b.store.Snapshot())
}

// OnPointerDown starts a gesture with the tool and colours in dc.
func (b *Board) OnPointerDown(dc engine.DrawingContext, p state.Point) {
	b.mu.Lock()
	if b.gesture.active {
		// The previous gesture never saw its pointer-up.
		b.endGesture()
	}
	b.changeTool(dc.Tool)

	switch dc.Tool {
	case engine.ToolSelect:
		b.selectAt(p)
	case engine.ToolEraser:
		b.gesture = gesture{active: true, tool: dc.Tool, eraserSize: dc.EraserSize}
		b.eraseAt(p)
	default:
		s, ok := engine.NewShape(dc, p, b.area)
		if !ok {
			logging.Logger().Debug("[BOARD] ignoring pointer-down for tool", "tool", dc.Tool)
			b.mu.Unlock()
			return
		}
		b.store.Append(s)
		b.gesture = gesture{active: true, tool: dc.Tool, anchor: b.area.ClampPoint(p)}
	}
	b.mu.Unlock()
	b.notify()
}

// OnPointerMove grows the in-progress shape or erases under the pointer.
// Moves outside a gesture are ignored.
func (b *Board) OnPointerMove(p state.Point) {
	b.mu.Lock()
	if !b.gesture.active {
		b.mu.Unlock()
		return
	}
	if b.gesture.tool == engine.ToolEraser {
		b.eraseAt(p)
	} else if s, ok := b.store.Last(); ok {
		b.store.SetLast(engine.Drag(s, b.gesture.anchor, p, b.area))
	}
	b.mu.Unlock()
	b.notify()
}

// OnPointerUp ends the active gesture and commits it to history.
func (b *Board) OnPointerUp() {
	b.mu.Lock()
	ended := b.endGesture()
	b.mu.Unlock()
	if ended {
		b.notify()
	}
}

// endGesture freezes the active gesture. Drawing gestures always commit; an
// erase gesture commits once, and only if it removed something.
func (b *Board) endGesture() bool {
	g := b.gesture
	if !g.active {
		return false
	}
	b.gesture = gesture{}
	if g.tool == engine.ToolEraser {
		if g.erased == 0 {
			return false
		}
		logging.Logger().Debug("[BOARD] erase gesture ended", "removed", g.erased)
	}
	b.commit()
	return true
}

func (b *Board) eraseAt(p state.Point) {
	removed, ok := engine.Erase(b.store, p, b.gesture.eraserSize)
	if !ok {
		return
	}
	b.gesture.erased++
	if removed.ID == b.selected {
		b.selected = ""
	}
	logging.Logger().Debug("[BOARD] erased", "id", removed.ID, "kind", removed.Kind)
}

// OnToolChange switches the active tool. Leaving the select tool drops the
// selection and with it the transform handles.
func (b *Board) OnToolChange(t engine.Tool) {
	b.mu.Lock()
	b.changeTool(t)
	b.mu.Unlock()
	b.notify()
}

func (b *Board) changeTool(t engine.Tool) {
	b.tool = t
	if t != engine.ToolSelect {
		b.selected = ""
	}
}

// OnTransformEnd folds a finished move/scale/rotate of shape id into its
// canonical parameters and commits. Unknown ids and pen strokes are ignored.
func (b *Board) OnTransformEnd(id string, d engine.TransformDelta) {
	b.mu.Lock()
	s, ok := b.store.Get(id)
	if !ok || !s.Transformable() {
		b.mu.Unlock()
		return
	}
	b.store.Replace(engine.Normalize(s, d))
	b.commit()
	b.mu.Unlock()
	b.notify()
}

// OnDeleteSelected removes the selected shape, if any.
func (b *Board) OnDeleteSelected() {
	b.mu.Lock()
	if b.selected == "" || !b.store.Remove(b.selected) {
		b.selected = ""
		b.mu.Unlock()
		return
	}
	logging.Logger().Debug("[BOARD] deleted", "id", b.selected)
	b.selected = ""
	b.commit()
	b.mu.Unlock()
	b.notify()
}

// OnClear removes every shape as one undoable step.
func (b *Board) OnClear() {
	b.mu.Lock()
	b.gesture = gesture{}
	b.selected = ""
	if b.store.Len() == 0 {
		b.mu.Unlock()
		return
	}
	b.store.Clear()
	b.commit()
	logging.Logger().Info("[BOARD] cleared")
	b.mu.Unlock()
	b.notify()
}

// OnUndo restores the previous snapshot. It is a no-op at the start of
// history.
func (b *Board) OnUndo() {
	b.mu.Lock()
	snap, ok := b.history.Undo()
	b.restore(snap, ok)
	b.mu.Unlock()
	if ok {
		b.notify()
	}
}

// OnRedo re-applies the next snapshot. It is a no-op at the end of history.
func (b *Board) OnRedo() {
	b.mu.Lock()
	snap, ok := b.history.Redo()
	b.restore(snap, ok)
	b.mu.Unlock()
	if ok {
		b.notify()
	}
}

func (b *Board) restore(snap state.Snapshot, ok bool) {
	if !ok {
		return
	}
	b.gesture = gesture{}
	b.store.Restore(snap)
	b.selected = ""
}

// OnImportImage places a picture on top of the board and commits. The
// placement is shrunk proportionally if it is larger than the canvas and then
// moved fully onto it. It returns the new shape id, or false for an empty
// placement.
func (b *Board) OnImportImage(src string, at Placement) (string, bool) {
	if at.Width <= 0 || at.Height <= 0 {
		return "", false
	}
	b.mu.Lock()
	k := math.Min(1, math.Min(b.area.Width/at.Width, b.area.Height/at.Height))
	w, h := at.Width*k, at.Height*k
	s := state.Shape{
		ID:   state.NewID(state.KindImage),
		Kind: state.KindImage,
		Geom: state.Picture{
			X:      state.Clamp(at.X, b.area.Width-w),
			Y:      state.Clamp(at.Y, b.area.Height-h),
			Width:  w,
			Height: h,
			Src:    src,
		},
	}
	b.store.Append(s)
	b.commit()
	b.mu.Unlock()
	logging.Logger().Info("[BOARD] imported image", "id", s.ID, "src", src)
	b.notify()
	return s.ID, true
}

// Load replaces the board contents with shapes as one undoable step. Shapes
// with an unknown kind are skipped; missing or duplicate ids are replaced
// with fresh ones.
func (b *Board) Load(shapes []state.Shape) {
	b.mu.Lock()
	b.gesture = gesture{}
	b.selected = ""
	b.store.Clear()
	seen := make(map[string]bool, len(shapes))
	for _, s := range shapes {
		if !s.Kind.Valid() || s.Geom == nil {
			continue
		}
		if s.ID == "" || seen[s.ID] {
			s.ID = state.NewID(s.Kind)
		}
		seen[s.ID] = true
		b.store.Append(s)
	}
	b.commit()
	n := b.store.Len()
	b.mu.Unlock()
	logging.Logger().Info("[BOARD] loaded document", "shapes", n)
	b.notify()
}

// Reset empties the board and forgets all history.
func (b *Board) Reset() {
	b.mu.Lock()
	b.gesture = gesture{}
	b.selected = ""
	b.store.Clear()
	b.history.Clear()
	b.mu.Unlock()
	b.notify()
}

// Resize changes the canvas bounds used by later updates. Existing shapes
// are not re-clamped.
func (b *Board) Resize(width, height float64) {
	b.mu.Lock()
	b.area = state.Area{Width: width, Height: height}
	b.mu.Unlock()
}

// Shapes returns the current shape list in drawing order.
func (b *Board) Shapes() []state.Shape {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.store.Shapes()
}

// Selected returns the selected shape id, or "" when nothing is selected.
func (b *Board) Selected() string {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.selected
}

// Tool returns the active tool.
func (b *Board) Tool() engine.Tool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tool
}

// Area returns the current canvas bounds.
func (b *Board) Area() state.Area {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.area
}

// Drawing reports whether a gesture is in progress.
func (b *Board) Drawing() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.gesture.active
}

func (b *Board) CanUndo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanUndo()
}

func (b *Board) CanRedo() bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.CanRedo()
}

// HistoryLen returns the number of history entries, the initial empty board
// included.
func (b *Board) HistoryLen() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.history.Len()
}
