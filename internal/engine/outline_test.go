package engine

import (
	"math"
	"testing"

	"localboard/internal/state"
)

func TestOutlinePolylineCounts(t *testing.T) {
	tests := []struct {
		kind state.Kind
		geom state.Geometry
		want int
	}{
		{state.KindRectangle, state.Box{Width: 10, Height: 10}, 1},
		{state.KindCylinder, state.Box{Width: 40, Height: 60}, 4},
		{state.KindSphere, state.Radial{Radius: 10}, 2},
		{state.KindHemisphere, state.Radial{Radius: 10}, 2},
		{state.KindStar, state.Radial{Radius: 10, NumPoints: 5}, 1},
		{state.KindPyramid, state.Apex{Width: 10, Height: 10}, 3},
		{state.KindCone, state.Apex{Width: 10, Height: 10}, 2},
		{state.KindArrow, state.Segment{B: state.Point{X: 50}}, 2},
		{state.KindDashed, state.Segment{B: state.Point{X: 100}}, 7},
		{state.KindCube, state.Cube{Size: 10}, 6},
	}
	for _, tt := range tests {
		got := Outline(state.Shape{Kind: tt.kind, StrokeWidth: 2, Geom: tt.geom})
		if len(got) != tt.want {
			t.Errorf("%s: %d polylines, want %d", tt.kind, len(got), tt.want)
		}
	}
}

func TestOutlinePolygonVertices(t *testing.T) {
	tests := []struct {
		kind state.Kind
		want int
	}{
		{state.KindPentagon, 5},
		{state.KindHexagon, 6},
		{state.KindRhombus, 4},
		{state.KindTrapezium, 4},
		{state.KindStar, 10},
	}
	for _, tt := range tests {
		lines := Outline(state.Shape{Kind: tt.kind, Geom: state.Radial{X: 50, Y: 50, Radius: 20, NumPoints: 5}})
		if len(lines) != 1 || !lines[0].Closed || len(lines[0].Points) != tt.want {
			t.Errorf("%s: got %+v", tt.kind, lines)
		}
	}
}

func TestOutlineWithinBounds(t *testing.T) {
	for _, s := range sampleShapes() {
		if s.Kind == state.KindArrow {
			continue
		}
		s.Rotation = 0
		b := Bounds(s).Expand(1e-9)
		for _, l := range Outline(s) {
			for _, p := range l.Points {
				if !b.Contains(p) {
					t.Errorf("%s: outline point %v outside bounds %+v", s.ID, p, b)
				}
			}
		}
	}
}

func TestOutlineRotatesAboutOrigin(t *testing.T) {
	s := state.Shape{Kind: state.KindLine, Rotation: 90, Geom: state.Segment{A: state.Point{X: 10, Y: 10}, B: state.Point{X: 20, Y: 10}}}
	l := Outline(s)[0]
	if l.Points[0] != (state.Point{X: 10, Y: 10}) {
		t.Errorf("pivot moved to %v", l.Points[0])
	}
	end := l.Points[1]
	if math.Abs(end.X-10) > 1e-9 || math.Abs(end.Y-20) > 1e-9 {
		t.Errorf("rotated end = %v, want (10,20)", end)
	}
}

func TestOutlineDoesNotAliasStroke(t *testing.T) {
	pts := []state.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}
	s := state.Shape{Kind: state.KindPen, Rotation: 45, Geom: state.Freehand{Points: pts}}
	Outline(s)
	if pts[1] != (state.Point{X: 2, Y: 2}) {
		t.Errorf("stroke points mutated: %v", pts)
	}
}
