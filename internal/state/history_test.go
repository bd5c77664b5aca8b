package state

import "testing"

func snapOf(ids ...string) Snapshot {
	shapes := make([]Shape, 0, len(ids))
	for _, id := range ids {
		shapes = append(shapes, Shape{ID: id, Kind: KindCircle, Geom: Radial{Radius: 1}})
	}
	return NewSnapshot(shapes)
}

func ids(s Snapshot) []string {
	var out []string
	for _, sh := range s.Shapes() {
		out = append(out, sh.ID)
	}
	return out
}

func TestHistoryStartsEmpty(t *testing.T) {
	h := NewHistory()
	if h.Len() != 1 || h.Cursor() != 0 {
		t.Fatalf("len=%d cursor=%d, want 1 and 0", h.Len(), h.Cursor())
	}
	if h.Current().Len() != 0 {
		t.Errorf("initial snapshot has %d shapes", h.Current().Len())
	}
	if _, ok := h.Undo(); ok {
		t.Error("Undo on fresh history reported ok")
	}
	if _, ok := h.Redo(); ok {
		t.Error("Redo on fresh history reported ok")
	}
}

func TestHistoryUndoRedo(t *testing.T) {
	h := NewHistory()
	h.Commit(snapOf("a"))
	h.Commit(snapOf("a", "b"))

	snap, ok := h.Undo()
	if !ok || snap.Len() != 1 {
		t.Fatalf("Undo = %v, %v; want 1 shape", ids(snap), ok)
	}
	if !h.CanUndo() || !h.CanRedo() {
		t.Errorf("CanUndo=%v CanRedo=%v, want both true", h.CanUndo(), h.CanRedo())
	}
	snap, ok = h.Redo()
	if !ok || snap.Len() != 2 {
		t.Fatalf("Redo = %v, %v; want 2 shapes", ids(snap), ok)
	}
	if h.CanRedo() {
		t.Error("CanRedo at end of history")
	}
}

func TestHistoryCommitTruncatesFuture(t *testing.T) {
	h := NewHistory()
	h.Commit(snapOf("a"))
	h.Commit(snapOf("a", "b"))
	h.Commit(snapOf("a", "b", "c"))
	h.Undo()
	h.Undo()

	h.Commit(snapOf("a", "d"))
	if h.Len() != 3 {
		t.Fatalf("len = %d, want 3", h.Len())
	}
	if h.Cursor() != 2 {
		t.Errorf("cursor = %d, want 2", h.Cursor())
	}
	if h.CanRedo() {
		t.Error("redo future survived a commit")
	}
	got := ids(h.Current())
	if len(got) != 2 || got[1] != "d" {
		t.Errorf("current = %v, want [a d]", got)
	}
}

func TestHistoryClear(t *testing.T) {
	h := NewHistory()
	h.Commit(snapOf("a"))
	h.Clear()
	if h.Len() != 1 || h.Cursor() != 0 || h.CanUndo() {
		t.Errorf("after Clear: len=%d cursor=%d", h.Len(), h.Cursor())
	}
}
