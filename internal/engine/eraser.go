package engine

import "localboard/internal/state"

// Erase removes the top-most shape under an eraser disk of radius size
// centred at p. At most one shape is removed per call. The removed shape is
// returned with ok set to true.
func Erase(store *state.Store, p state.Point, size float64) (removed state.Shape, ok bool) {
	i, ok := TopHit(store.Shapes(), p, size)
	if !ok {
		return state.Shape{}, false
	}
	return store.RemoveAt(i), true
}
