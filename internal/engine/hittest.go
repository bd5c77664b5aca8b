package engine

import (
	"math"

	"localboard/internal/state"
)

const (
	// BoxTolerance widens the hit box of squares, cylinders and cubes.
	BoxTolerance = 10
	// SelectRadius is the minimum pick radius for selection clicks.
	SelectRadius = 4
	// areaEpsilon is the relative slack allowed when comparing the three
	// sub-triangle areas against the whole triangle.
	areaEpsilon = 1e-6
)

// Hit reports whether a disk of the given radius centred at p touches s.
// The point is first brought into the shape's unrotated frame.
//
// Polygon kinds use a circle of their circumradius rather than the true
// polygon boundary, so corners and edges are slightly over-erased.
func Hit(s state.Shape, p state.Point, radius float64) bool {
	p = rotateAbout(p, s.Origin(), -s.Rotation)

	switch g := s.Geom.(type) {
	case state.Freehand:
		return polylineDistance(p, g.Points) <= radius

	case state.Box:
		r := state.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}
		if s.Kind == state.KindRectangle {
			return r.Contains(p)
		}
		return r.Expand(BoxTolerance).Contains(p)

	case state.Radial:
		d := dist(p, state.Point{X: g.X, Y: g.Y})
		if s.Kind == state.KindCircle {
			return d <= g.Radius
		}
		return d <= g.Radius+radius

	case state.Oval:
		return inEllipse(p, state.Point{X: g.X, Y: g.Y}, g.RadiusX, g.RadiusY)

	case state.Apex:
		apex, left, right := apexTriangle(g)
		if inTriangle(p, apex, left, right) {
			return true
		}
		if s.Kind == state.KindCone {
			base := state.Point{X: g.X, Y: g.Y + g.Height}
			return inEllipse(p, base, g.Width/2, coneBaseRadiusY(g.Width))
		}
		return false

	case state.Segment:
		return segmentDistance(p, g.A, g.B) <= radius

	case state.Cube:
		return Bounds(s).Expand(BoxTolerance).Contains(p)

	case state.Picture:
		return Bounds(s).Contains(p)
	}
	return false
}

// inTriangle compares the sum of the areas spanned by p with each edge
// against the triangle's own area.
func inTriangle(p, a, b, c state.Point) bool {
	total := triangleArea(a, b, c)
	sum := triangleArea(p, a, b) + triangleArea(p, b, c) + triangleArea(p, c, a)
	return math.Abs(sum-total) <= areaEpsilon*math.Max(total, 1)
}

func inEllipse(p, c state.Point, rx, ry float64) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	nx, ny := (p.X-c.X)/rx, (p.Y-c.Y)/ry
	return nx*nx+ny*ny <= 1
}

// TopHit returns the index of the top-most shape touched by the disk at p,
// scanning from the most recently inserted shape backwards.
func TopHit(shapes []state.Shape, p state.Point, radius float64) (int, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		if Hit(shapes[i], p, radius) {
			return i, true
		}
	}
	return -1, false
}

// Pick returns the index of the top-most shape under a selection click.
func Pick(shapes []state.Shape, p state.Point) (int, bool) {
	for i := len(shapes) - 1; i >= 0; i-- {
		s := shapes[i]
		if Hit(s, p, math.Max(s.StrokeWidth/2, SelectRadius)) {
			return i, true
		}
	}
	return -1, false
}
