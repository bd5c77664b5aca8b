package state

import "math"

// Area is the drawable canvas, spanning [0,Width]x[0,Height].
type Area struct {
	Width  float64
	Height float64
}

// Rect is a rectangle on the canvas. Width and Height may be negative until
// Normalize is called.
type Rect struct {
	X      float64
	Y      float64
	Width  float64
	Height float64
}

// Clamp limits v to [0, bound].
func Clamp(v, bound float64) float64 {
	return math.Max(0, math.Min(v, bound))
}

// ClampPoint moves p onto the canvas.
func (a Area) ClampPoint(p Point) Point {
	return Point{X: Clamp(p.X, a.Width), Y: Clamp(p.Y, a.Height)}
}

// EdgeDistance is the distance from p to the nearest of the four canvas
// edges, or 0 when p is outside the canvas.
func (a Area) EdgeDistance(p Point) float64 {
	return math.Max(0, math.Min(a.XEdgeDistance(p.X), a.YEdgeDistance(p.Y)))
}

// XEdgeDistance is the distance from x to the nearer vertical edge.
func (a Area) XEdgeDistance(x float64) float64 {
	return math.Max(0, math.Min(x, a.Width-x))
}

// YEdgeDistance is the distance from y to the nearer horizontal edge.
func (a Area) YEdgeDistance(y float64) float64 {
	return math.Max(0, math.Min(y, a.Height-y))
}

// Contains reports whether r lies entirely on the canvas. A small epsilon
// absorbs floating point noise from derived extents.
func (a Area) Contains(r Rect) bool {
	const eps = 1e-9
	r = r.Normalize()
	return r.X >= -eps && r.Y >= -eps &&
		r.X+r.Width <= a.Width+eps && r.Y+r.Height <= a.Height+eps
}

// Normalize returns r with non-negative width and height.
func (r Rect) Normalize() Rect {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
	return r
}

// Contains reports whether p lies inside the normalized rectangle,
// boundary included.
func (r Rect) Contains(p Point) bool {
	r = r.Normalize()
	return p.X >= r.X && p.X <= r.X+r.Width &&
		p.Y >= r.Y && p.Y <= r.Y+r.Height
}

// Expand grows the normalized rectangle by d on every side.
func (r Rect) Expand(d float64) Rect {
	r = r.Normalize()
	return Rect{X: r.X - d, Y: r.Y - d, Width: r.Width + 2*d, Height: r.Height + 2*d}
}

// Union returns the smallest rectangle covering both r and o.
func (r Rect) Union(o Rect) Rect {
	r, o = r.Normalize(), o.Normalize()
	minX := math.Min(r.X, o.X)
	minY := math.Min(r.Y, o.Y)
	maxX := math.Max(r.X+r.Width, o.X+o.Width)
	maxY := math.Max(r.Y+r.Height, o.Y+o.Height)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// Overlaps reports whether the two rectangles share any point.
func (r Rect) Overlaps(o Rect) bool {
	r, o = r.Normalize(), o.Normalize()
	return !(r.X+r.Width < o.X || o.X+o.Width < r.X ||
		r.Y+r.Height < o.Y || o.Y+o.Height < r.Y)
}

// BoundsOf returns the bounding rectangle of pts.
func BoundsOf(pts ...Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}
