package board

import (
	"localboard/internal/engine"
	"localboard/internal/state"
)

// selectAt maps a click to a selection. Empty background and pen strokes
// both deselect.
func (b *Board) selectAt(p state.Point) {
	shapes := b.store.Shapes()
	i, ok := engine.Pick(shapes, p)
	if !ok || !shapes[i].Transformable() {
		b.selected = ""
		return
	}
	b.selected = shapes[i].ID
}

// SelectedShape returns the selected shape record.
func (b *Board) SelectedShape() (state.Shape, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if b.selected == "" {
		return state.Shape{}, false
	}
	return b.store.Get(b.selected)
}

// Deselect drops the current selection.
func (b *Board) Deselect() {
	b.mu.Lock()
	changed := b.selected != ""
	b.selected = ""
	b.mu.Unlock()
	if changed {
		b.notify()
	}
}
