package engine

import (
	"math"

	"localboard/internal/state"
)

// MinSize is the smallest length a transform may shrink a shape to.
const MinSize = 2

// TransformDelta is what a renderer reports when the user finishes moving,
// scaling or rotating a shape. X and Y are the new origin; the scale
// factors are relative to the current canonical parameters.
type TransformDelta struct {
	X, Y           float64
	ScaleX, ScaleY float64
	Rotation       float64
}

// Identity returns the delta that leaves s untouched.
func Identity(s state.Shape) TransformDelta {
	o := s.Origin()
	return TransformDelta{X: o.X, Y: o.Y, ScaleX: 1, ScaleY: 1, Rotation: s.Rotation}
}

// Normalize folds a transform into s's canonical parameters and returns the
// result. The scale is absorbed completely, so a renderer resets its node
// scale to 1 and repeated transforms never compound. Freehand shapes are
// returned unchanged.
func Normalize(s state.Shape, d TransformDelta) state.Shape {
	if !s.Transformable() {
		return s
	}
	uniform := math.Max(math.Abs(d.ScaleX), math.Abs(d.ScaleY))
	ax, ay := math.Abs(d.ScaleX), math.Abs(d.ScaleY)

	switch g := s.Geom.(type) {
	case state.Box:
		g.X, g.Y = d.X, d.Y
		if s.Kind == state.KindSquare {
			g.Width = scaleLength(g.Width, uniform)
			g.Height = scaleLength(g.Height, uniform)
		} else {
			g.Width = scaleLength(g.Width, d.ScaleX)
			g.Height = scaleLength(g.Height, d.ScaleY)
		}
		s.Geom = g
	case state.Radial:
		g.X, g.Y = d.X, d.Y
		g.Radius = scaleLength(g.Radius, uniform)
		s.Geom = g
	case state.Oval:
		g.X, g.Y = d.X, d.Y
		g.RadiusX = scaleLength(g.RadiusX, ax)
		g.RadiusY = scaleLength(g.RadiusY, ay)
		s.Geom = g
	case state.Apex:
		g.X, g.Y = d.X, d.Y
		g.Width = scaleLength(g.Width, ax)
		g.Height = scaleLength(g.Height, ay)
		s.Geom = g
	case state.Segment:
		s.Geom = scaleSegment(g, d)
	case state.Cube:
		g.X, g.Y = d.X, d.Y
		g.Size = scaleLength(g.Size, uniform)
		s.Geom = g
	case state.Picture:
		g.X, g.Y = d.X, d.Y
		g.Width = scaleLength(g.Width, ax)
		g.Height = scaleLength(g.Height, ay)
		s.Geom = g
	}
	s.Rotation = d.Rotation
	return s
}

// scaleLength multiplies v by f, keeping the magnitude at or above MinSize.
// A factor of exactly 1 leaves v alone, even when v is already below the
// floor.
func scaleLength(v, f float64) float64 {
	if f == 1 {
		return v
	}
	r := v * f
	if math.Abs(r) >= MinSize {
		return r
	}
	if v != 0 && (v < 0) != (f < 0) {
		return -MinSize
	}
	return MinSize
}

// scaleSegment moves A to the delta position and scales the A→B vector per
// axis. Written as B + t + (B-A)(s-1) so the identity is exact.
func scaleSegment(g state.Segment, d TransformDelta) state.Segment {
	tx, ty := d.X-g.A.X, d.Y-g.A.Y
	vx, vy := g.B.X-g.A.X, g.B.Y-g.A.Y
	b := state.Point{
		X: g.B.X + tx + vx*(d.ScaleX-1),
		Y: g.B.Y + ty + vy*(d.ScaleY-1),
	}
	a := state.Point{X: d.X, Y: d.Y}
	before := math.Hypot(vx, vy)
	if after := dist(a, b); before >= MinSize && after < MinSize {
		// Keep the original direction at the floor length.
		b = state.Point{X: a.X + vx/before*MinSize, Y: a.Y + vy/before*MinSize}
	}
	return state.Segment{A: a, B: b}
}
