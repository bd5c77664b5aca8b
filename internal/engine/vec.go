package engine

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"

	"localboard/internal/state"
)

func vec(p state.Point) r2.Vec { return r2.Vec{X: p.X, Y: p.Y} }

func point(v r2.Vec) state.Point { return state.Point{X: v.X, Y: v.Y} }

func dist(a, b state.Point) float64 {
	return r2.Norm(r2.Sub(vec(a), vec(b)))
}

func midpoint(a, b state.Point) state.Point {
	return point(r2.Scale(0.5, r2.Add(vec(a), vec(b))))
}

// segmentDistance is the distance from p to the closed segment ab.
func segmentDistance(p, a, b state.Point) float64 {
	ab := r2.Sub(vec(b), vec(a))
	ap := r2.Sub(vec(p), vec(a))
	l2 := r2.Norm2(ab)
	if l2 == 0 {
		return r2.Norm(ap)
	}
	t := math.Max(0, math.Min(1, r2.Dot(ap, ab)/l2))
	proj := r2.Add(vec(a), r2.Scale(t, ab))
	return r2.Norm(r2.Sub(vec(p), proj))
}

// polylineDistance is the smallest distance from p to any segment joining
// consecutive points. A single point degenerates to a point distance.
func polylineDistance(p state.Point, pts []state.Point) float64 {
	switch len(pts) {
	case 0:
		return math.Inf(1)
	case 1:
		return dist(p, pts[0])
	}
	best := math.Inf(1)
	for i := 1; i < len(pts); i++ {
		best = math.Min(best, segmentDistance(p, pts[i-1], pts[i]))
	}
	return best
}

func triangleArea(a, b, c state.Point) float64 {
	return math.Abs(r2.Cross(r2.Sub(vec(b), vec(a)), r2.Sub(vec(c), vec(a)))) / 2
}

// rotateAbout rotates p by deg degrees around pivot.
func rotateAbout(p, pivot state.Point, deg float64) state.Point {
	if deg == 0 {
		return p
	}
	return point(r2.Rotate(vec(p), deg*math.Pi/180, vec(pivot)))
}
