package board

import (
	"testing"

	"localboard/internal/engine"
	"localboard/internal/state"
)

func TestSelectShape(t *testing.T) {
	b := New(800, 600)
	drag(b, shapeTool(state.KindRectangle), pt(10, 10), pt(110, 60))
	rect := b.Shapes()[0]

	drag(b, engine.ToolSelect, pt(50, 30))
	if b.Selected() != rect.ID {
		t.Fatalf("selected = %q, want %q", b.Selected(), rect.ID)
	}
	if b.HistoryLen() != 2 {
		t.Errorf("selecting committed: history %d", b.HistoryLen())
	}
	got, ok := b.SelectedShape()
	if !ok || got.ID != rect.ID {
		t.Errorf("SelectedShape = %v, %v", got.ID, ok)
	}

	drag(b, engine.ToolSelect, pt(700, 500))
	if b.Selected() != "" {
		t.Errorf("click on background kept selection %q", b.Selected())
	}
}

func TestPenStrokesAreNotSelectable(t *testing.T) {
	b := New(800, 600)
	drag(b, shapeTool(state.KindRectangle), pt(10, 10), pt(110, 60))
	drag(b, shapeTool(state.KindPen), pt(200, 200), pt(300, 200))

	drag(b, engine.ToolSelect, pt(50, 30))
	if b.Selected() == "" {
		t.Fatal("rectangle not selected")
	}
	drag(b, engine.ToolSelect, pt(250, 201))
	if b.Selected() != "" {
		t.Errorf("pen click kept selection %q", b.Selected())
	}
}

func TestSelectionClearedByToolChangeAndUndo(t *testing.T) {
	b := New(800, 600)
	drag(b, shapeTool(state.KindRectangle), pt(10, 10), pt(110, 60))
	drag(b, engine.ToolSelect, pt(50, 30))
	b.OnToolChange(shapeTool(state.KindCircle))
	if b.Selected() != "" {
		t.Errorf("tool change kept selection")
	}
	if b.Tool() != shapeTool(state.KindCircle) {
		t.Errorf("tool = %q", b.Tool())
	}

	drag(b, engine.ToolSelect, pt(50, 30))
	b.OnUndo()
	if b.Selected() != "" {
		t.Errorf("undo kept selection")
	}
}

func TestDeleteSelected(t *testing.T) {
	b := New(800, 600)
	drag(b, shapeTool(state.KindRectangle), pt(10, 10), pt(110, 60))
	b.OnDeleteSelected()
	if len(b.Shapes()) != 1 || b.HistoryLen() != 2 {
		t.Fatalf("delete without selection changed the board")
	}

	drag(b, engine.ToolSelect, pt(50, 30))
	b.OnDeleteSelected()
	if len(b.Shapes()) != 0 || b.Selected() != "" {
		t.Errorf("%d shapes, selected %q", len(b.Shapes()), b.Selected())
	}
	if b.HistoryLen() != 3 {
		t.Errorf("history length = %d, want 3", b.HistoryLen())
	}
}

func TestDeselect(t *testing.T) {
	b := New(800, 600)
	drag(b, shapeTool(state.KindCube), pt(100, 100), pt(140, 140))
	drag(b, engine.ToolSelect, pt(120, 120))
	if b.Selected() == "" {
		t.Fatal("cube not selected")
	}
	b.Deselect()
	if _, ok := b.SelectedShape(); ok {
		t.Error("SelectedShape after Deselect")
	}
}
