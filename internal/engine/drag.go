package engine

import (
	"math"

	"localboard/internal/state"
)

// Drag recomputes the geometry of the in-progress shape s for a gesture that
// started at anchor and whose pointer is now at pointer. The pointer is
// clamped onto the area first, and every size is further capped so the
// shape's extent stays on the canvas.
//
// Freehand points are appended in place; the caller owns the in-progress
// shape exclusively until the gesture ends.
func Drag(s state.Shape, anchor, pointer state.Point, area state.Area) state.Shape {
	p := area.ClampPoint(pointer)
	dx, dy := p.X-anchor.X, p.Y-anchor.Y

	switch g := s.Geom.(type) {
	case state.Freehand:
		g.Points = append(g.Points, p)
		s.Geom = g

	case state.Box:
		if s.Kind == state.KindSquare {
			side := math.Max(math.Abs(dx), math.Abs(dy))
			side = math.Min(side, 2*area.EdgeDistance(anchor))
			g.X, g.Y = anchor.X-side/2, anchor.Y-side/2
			g.Width, g.Height = side, side
		} else {
			g.X, g.Y = anchor.X, anchor.Y
			g.Width, g.Height = dx, dy
		}
		s.Geom = g

	case state.Radial:
		var center state.Point
		var r float64
		switch s.Kind {
		case state.KindCircle, state.KindSphere, state.KindHemisphere:
			center = anchor
			r = dist(anchor, p)
		default:
			center = midpoint(anchor, p)
			r = dist(anchor, p) / 2
		}
		g.X, g.Y = center.X, center.Y
		g.Radius = floor0(math.Min(r, area.EdgeDistance(center)))
		s.Geom = g

	case state.Oval:
		g.X, g.Y = anchor.X, anchor.Y
		g.RadiusX = floor0(math.Min(math.Abs(dx), area.XEdgeDistance(anchor.X)))
		g.RadiusY = floor0(math.Min(math.Abs(dy), area.YEdgeDistance(anchor.Y)))
		s.Geom = g

	case state.Apex:
		half := floor0(math.Min(math.Abs(dx), area.XEdgeDistance(anchor.X)))
		h := floor0(dy)
		if s.Kind == state.KindCone {
			// The base ellipse hangs width/8 below the base line.
			room := floor0(area.Height - anchor.Y)
			half = math.Min(half, 4*room)
			h = floor0(math.Min(h, room-coneBaseRadiusY(2*half)))
		}
		g.X, g.Y = anchor.X, anchor.Y
		g.Width, g.Height = 2*half, h
		s.Geom = g

	case state.Segment:
		g.A, g.B = anchor, p
		s.Geom = g

	case state.Cube:
		center := midpoint(anchor, p)
		size := math.Max(math.Abs(dx), math.Abs(dy))
		size = math.Min(size, area.EdgeDistance(center)/cubeExtent)
		g.X, g.Y = center.X, center.Y
		g.Size = floor0(size)
		s.Geom = g

	case state.Picture:
		// Pictures are placed by import, never dragged out.
	}
	return s
}

func floor0(v float64) float64 { return math.Max(0, v) }
