package state

// Snapshot is an immutable copy of the store at one point in time. Shapes
// are shared between snapshots; geometry is never mutated in place.
type Snapshot struct {
	shapes []Shape
}

// NewSnapshot freezes shapes into a snapshot.
func NewSnapshot(shapes []Shape) Snapshot {
	if len(shapes) == 0 {
		return Snapshot{}
	}
	frozen := make([]Shape, len(shapes))
	for i, s := range shapes {
		frozen[i] = s.frozen()
	}
	return Snapshot{shapes: frozen}
}

// Len returns the number of shapes in the snapshot.
func (s Snapshot) Len() int { return len(s.shapes) }

// Shapes returns a copy of the snapshot's shape list.
func (s Snapshot) Shapes() []Shape {
	out := make([]Shape, len(s.shapes))
	copy(out, s.shapes)
	return out
}

// Store is the ordered shape list. Later shapes are drawn on top.
type Store struct {
	shapes []Shape
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{shapes: make([]Shape, 0)}
}

// Len returns the number of shapes.
func (st *Store) Len() int { return len(st.shapes) }

// Shapes returns a copy of the shape list in drawing order.
func (st *Store) Shapes() []Shape {
	out := make([]Shape, len(st.shapes))
	copy(out, st.shapes)
	return out
}

// At returns the shape at index i.
func (st *Store) At(i int) Shape { return st.shapes[i] }

// Append adds s on top of every other shape.
func (st *Store) Append(s Shape) {
	st.shapes = append(st.shapes, s)
}

// Last returns the top-most shape.
func (st *Store) Last() (Shape, bool) {
	if len(st.shapes) == 0 {
		return Shape{}, false
	}
	return st.shapes[len(st.shapes)-1], true
}

// SetLast replaces the top-most shape. It is a no-op on an empty store.
func (st *Store) SetLast(s Shape) {
	if len(st.shapes) == 0 {
		return
	}
	st.shapes[len(st.shapes)-1] = s
}

// Index returns the position of the shape with the given id, or -1.
func (st *Store) Index(id string) int {
	for i, s := range st.shapes {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// Get looks up a shape by id.
func (st *Store) Get(id string) (Shape, bool) {
	if i := st.Index(id); i >= 0 {
		return st.shapes[i], true
	}
	return Shape{}, false
}

// Replace swaps the shape with s.ID for s, keeping its position.
func (st *Store) Replace(s Shape) bool {
	i := st.Index(s.ID)
	if i < 0 {
		return false
	}
	st.shapes[i] = s
	return true
}

// RemoveAt deletes the shape at index i and returns it.
func (st *Store) RemoveAt(i int) Shape {
	removed := st.shapes[i]
	next := make([]Shape, 0, len(st.shapes)-1)
	next = append(next, st.shapes[:i]...)
	st.shapes = append(next, st.shapes[i+1:]...)
	return removed
}

// Remove deletes the shape with the given id.
func (st *Store) Remove(id string) bool {
	i := st.Index(id)
	if i < 0 {
		return false
	}
	st.RemoveAt(i)
	return true
}

// Clear empties the store.
func (st *Store) Clear() {
	st.shapes = make([]Shape, 0)
}

// Snapshot captures the current shape list.
func (st *Store) Snapshot() Snapshot {
	return NewSnapshot(st.shapes)
}

// Restore replaces the store contents with snap.
func (st *Store) Restore(snap Snapshot) {
	st.shapes = snap.Shapes()
}
