package state

import "localboard/internal/logging"

// History is an append-only list of snapshots with a cursor. It starts as a
// single empty snapshot.
type History struct {
	entries []Snapshot
	cursor  int
}

// NewHistory returns a history holding only the empty board.
func NewHistory() *History {
	return &History{entries: []Snapshot{{}}}
}

// Commit drops any redo future and appends snap as the current entry.
func (h *History) Commit(snap Snapshot) {
	h.entries = append(h.entries[:h.cursor+1], snap)
	h.cursor = len(h.entries) - 1
	logging.Logger().Debug("[HISTORY] commit", "cursor", h.cursor, "shapes", snap.Len())
}

// Undo steps the cursor back and returns the snapshot now current. It
// reports false at the start of history.
func (h *History) Undo() (Snapshot, bool) {
	if h.cursor == 0 {
		return Snapshot{}, false
	}
	h.cursor--
	logging.Logger().Debug("[HISTORY] undo", "cursor", h.cursor)
	return h.entries[h.cursor], true
}

// Redo steps the cursor forward and returns the snapshot now current. It
// reports false at the end of history.
func (h *History) Redo() (Snapshot, bool) {
	if h.cursor >= len(h.entries)-1 {
		return Snapshot{}, false
	}
	h.cursor++
	logging.Logger().Debug("[HISTORY] redo", "cursor", h.cursor)
	return h.entries[h.cursor], true
}

// Clear resets the history to the single empty snapshot.
func (h *History) Clear() {
	h.entries = []Snapshot{{}}
	h.cursor = 0
}

// Len returns the number of entries, including the initial empty one.
func (h *History) Len() int { return len(h.entries) }

// Cursor returns the index of the current entry.
func (h *History) Cursor() int { return h.cursor }

// Current returns the snapshot at the cursor.
func (h *History) Current() Snapshot { return h.entries[h.cursor] }

func (h *History) CanUndo() bool { return h.cursor > 0 }
func (h *History) CanRedo() bool { return h.cursor < len(h.entries)-1 }
