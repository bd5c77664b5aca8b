package engine

import (
	"math"

	"localboard/internal/state"
)

// Render-derived proportions. None of these are stored on a shape.
const (
	// cubeExtent is how far, in multiples of size, the projected cube
	// reaches from its center: a face of side size offset by size/2.
	cubeExtent = 0.75
	// curveSegments approximates circles and ellipses. A multiple of four
	// keeps the axis extremes exact.
	curveSegments = 48
	dashLength    = 10
	dashGap       = 5
)

func coneBaseRadiusY(width float64) float64 { return width / 8 }

func starInnerRadius(r float64) float64 { return r / 2 }

func arrowHeadLength(strokeWidth float64) float64 { return math.Max(10, 3*strokeWidth) }

// Polyline is one connected run of an outline.
type Polyline struct {
	Points []state.Point
	Closed bool
}

// Bounds returns the unrotated bounding box of the shape's geometry. Stroke
// width and arrow heads are not included.
func Bounds(s state.Shape) state.Rect {
	switch g := s.Geom.(type) {
	case state.Freehand:
		return state.BoundsOf(g.Points...)
	case state.Box:
		return state.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}.Normalize()
	case state.Radial:
		return state.Rect{X: g.X - g.Radius, Y: g.Y - g.Radius, Width: 2 * g.Radius, Height: 2 * g.Radius}
	case state.Oval:
		return state.Rect{X: g.X - g.RadiusX, Y: g.Y - g.RadiusY, Width: 2 * g.RadiusX, Height: 2 * g.RadiusY}
	case state.Apex:
		r := state.Rect{X: g.X - g.Width/2, Y: g.Y, Width: g.Width, Height: g.Height}
		if s.Kind == state.KindCone {
			r.Height += coneBaseRadiusY(g.Width)
		}
		return r.Normalize()
	case state.Segment:
		return state.BoundsOf(g.A, g.B)
	case state.Cube:
		e := cubeExtent * g.Size
		return state.Rect{X: g.X - e, Y: g.Y - e, Width: 2 * e, Height: 2 * e}
	case state.Picture:
		return state.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}.Normalize()
	}
	return state.Rect{}
}

// Outline returns the polylines a renderer strokes to draw s, rotated about
// the shape origin.
func Outline(s state.Shape) []Polyline {
	lines := outline(s)
	if s.Rotation != 0 {
		pivot := s.Origin()
		for _, l := range lines {
			for i, p := range l.Points {
				l.Points[i] = rotateAbout(p, pivot, s.Rotation)
			}
		}
	}
	return lines
}

func outline(s state.Shape) []Polyline {
	switch g := s.Geom.(type) {
	case state.Freehand:
		pts := make([]state.Point, len(g.Points))
		copy(pts, g.Points)
		return []Polyline{{Points: pts}}

	case state.Box:
		r := state.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}.Normalize()
		if s.Kind == state.KindCylinder {
			return cylinder(r)
		}
		return []Polyline{rectLine(r)}

	case state.Radial:
		c := state.Point{X: g.X, Y: g.Y}
		switch s.Kind {
		case state.KindSphere:
			return []Polyline{
				ellipseLine(c, g.Radius, g.Radius),
				ellipseLine(c, g.Radius, g.Radius/4),
			}
		case state.KindHemisphere:
			return []Polyline{
				arc(c, g.Radius, g.Radius, math.Pi, 2*math.Pi),
				ellipseLine(c, g.Radius, g.Radius/4),
			}
		case state.KindPentagon:
			return []Polyline{regularPolygon(c, g.Radius, 5)}
		case state.KindHexagon:
			return []Polyline{regularPolygon(c, g.Radius, 6)}
		case state.KindRhombus:
			return []Polyline{regularPolygon(c, g.Radius, 4)}
		case state.KindStar:
			return []Polyline{star(c, g.Radius, g.NumPoints)}
		case state.KindTrapezium:
			r := g.Radius
			return []Polyline{{Closed: true, Points: []state.Point{
				{X: c.X - r/2, Y: c.Y - r/2},
				{X: c.X + r/2, Y: c.Y - r/2},
				{X: c.X + r, Y: c.Y + r/2},
				{X: c.X - r, Y: c.Y + r/2},
			}}}
		}
		return []Polyline{ellipseLine(c, g.Radius, g.Radius)}

	case state.Oval:
		return []Polyline{ellipseLine(state.Point{X: g.X, Y: g.Y}, g.RadiusX, g.RadiusY)}

	case state.Apex:
		apex, left, right := apexTriangle(g)
		switch s.Kind {
		case state.KindPyramid:
			back := state.Point{X: g.X + g.Width/4, Y: g.Y + 0.8*g.Height}
			return []Polyline{
				{Closed: true, Points: []state.Point{apex, right, left}},
				{Points: []state.Point{left, back, right}},
				{Points: []state.Point{apex, back}},
			}
		case state.KindCone:
			return []Polyline{
				{Points: []state.Point{left, apex, right}},
				ellipseLine(state.Point{X: g.X, Y: g.Y + g.Height}, g.Width/2, coneBaseRadiusY(g.Width)),
			}
		}
		return []Polyline{{Closed: true, Points: []state.Point{apex, right, left}}}

	case state.Segment:
		switch s.Kind {
		case state.KindArrow:
			return arrow(g.A, g.B, arrowHeadLength(s.StrokeWidth))
		case state.KindDashed:
			return dashes(g.A, g.B)
		}
		return []Polyline{{Points: []state.Point{g.A, g.B}}}

	case state.Cube:
		return cube(g)

	case state.Picture:
		return []Polyline{rectLine(state.Rect{X: g.X, Y: g.Y, Width: g.Width, Height: g.Height}.Normalize())}
	}
	return nil
}

func rectLine(r state.Rect) Polyline {
	return Polyline{Closed: true, Points: []state.Point{
		{X: r.X, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y},
		{X: r.X + r.Width, Y: r.Y + r.Height},
		{X: r.X, Y: r.Y + r.Height},
	}}
}

func arc(c state.Point, rx, ry, from, to float64) Polyline {
	n := int(math.Ceil(curveSegments * (to - from) / (2 * math.Pi)))
	pts := make([]state.Point, 0, n+1)
	for i := 0; i <= n; i++ {
		a := from + (to-from)*float64(i)/float64(n)
		pts = append(pts, state.Point{X: c.X + rx*math.Cos(a), Y: c.Y + ry*math.Sin(a)})
	}
	return Polyline{Points: pts}
}

func ellipseLine(c state.Point, rx, ry float64) Polyline {
	l := arc(c, rx, ry, 0, 2*math.Pi)
	l.Points = l.Points[:len(l.Points)-1]
	l.Closed = true
	return l
}

// regularPolygon has its first vertex straight above c.
func regularPolygon(c state.Point, r float64, sides int) Polyline {
	pts := make([]state.Point, sides)
	for i := range pts {
		a := -math.Pi/2 + 2*math.Pi*float64(i)/float64(sides)
		pts[i] = state.Point{X: c.X + r*math.Cos(a), Y: c.Y + r*math.Sin(a)}
	}
	return Polyline{Points: pts, Closed: true}
}

func star(c state.Point, r float64, spikes int) Polyline {
	if spikes < 2 {
		spikes = state.DefaultStarPoints
	}
	inner := starInnerRadius(r)
	pts := make([]state.Point, 2*spikes)
	for i := range pts {
		rr := r
		if i%2 == 1 {
			rr = inner
		}
		a := -math.Pi/2 + math.Pi*float64(i)/float64(spikes)
		pts[i] = state.Point{X: c.X + rr*math.Cos(a), Y: c.Y + rr*math.Sin(a)}
	}
	return Polyline{Points: pts, Closed: true}
}

func apexTriangle(g state.Apex) (apex, left, right state.Point) {
	apex = state.Point{X: g.X, Y: g.Y}
	left = state.Point{X: g.X - g.Width/2, Y: g.Y + g.Height}
	right = state.Point{X: g.X + g.Width/2, Y: g.Y + g.Height}
	return apex, left, right
}

func cylinder(r state.Rect) []Polyline {
	ry := math.Min(r.Width/8, r.Height/2)
	cx := r.X + r.Width/2
	top := state.Point{X: cx, Y: r.Y + ry}
	bottom := state.Point{X: cx, Y: r.Y + r.Height - ry}
	return []Polyline{
		ellipseLine(top, r.Width/2, ry),
		arc(bottom, r.Width/2, ry, 0, math.Pi),
		{Points: []state.Point{{X: r.X, Y: top.Y}, {X: r.X, Y: bottom.Y}}},
		{Points: []state.Point{{X: r.X + r.Width, Y: top.Y}, {X: r.X + r.Width, Y: bottom.Y}}},
	}
}

// cubeFaces returns the front and back faces of the isometric projection.
func cubeFaces(g state.Cube) (front, back state.Rect) {
	s, o := g.Size, g.Size/2
	front = state.Rect{X: g.X - o/2 - s/2, Y: g.Y + o/2 - s/2, Width: s, Height: s}
	back = state.Rect{X: g.X + o/2 - s/2, Y: g.Y - o/2 - s/2, Width: s, Height: s}
	return front, back
}

func cube(g state.Cube) []Polyline {
	front, back := cubeFaces(g)
	f, b := rectLine(front), rectLine(back)
	lines := []Polyline{b, f}
	for i := range f.Points {
		lines = append(lines, Polyline{Points: []state.Point{f.Points[i], b.Points[i]}})
	}
	return lines
}

func arrow(a, b state.Point, head float64) []Polyline {
	lines := []Polyline{{Points: []state.Point{a, b}}}
	if a == b {
		return lines
	}
	angle := math.Atan2(b.Y-a.Y, b.X-a.X)
	wing := func(delta float64) state.Point {
		return state.Point{
			X: b.X - head*math.Cos(angle+delta),
			Y: b.Y - head*math.Sin(angle+delta),
		}
	}
	return append(lines, Polyline{Points: []state.Point{wing(math.Pi / 6), b, wing(-math.Pi / 6)}})
}

func dashes(a, b state.Point) []Polyline {
	length := dist(a, b)
	if length == 0 {
		return []Polyline{{Points: []state.Point{a, b}}}
	}
	ux, uy := (b.X-a.X)/length, (b.Y-a.Y)/length
	at := func(t float64) state.Point { return state.Point{X: a.X + ux*t, Y: a.Y + uy*t} }
	var lines []Polyline
	for t := 0.0; t < length; t += dashLength + dashGap {
		lines = append(lines, Polyline{Points: []state.Point{at(t), at(math.Min(t+dashLength, length))}})
	}
	return lines
}
