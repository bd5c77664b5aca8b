package state

// Point is a position on the board in canvas pixels.
type Point struct{ X, Y float64 }

// Kind names a drawable shape type.
type Kind string

const (
	KindPen        Kind = "pen"
	KindRectangle  Kind = "rectangle"
	KindSquare     Kind = "square"
	KindCylinder   Kind = "cylinder"
	KindCircle     Kind = "circle"
	KindSphere     Kind = "sphere"
	KindHemisphere Kind = "hemisphere"
	KindPentagon   Kind = "pentagon"
	KindHexagon    Kind = "hexagon"
	KindStar       Kind = "star"
	KindRhombus    Kind = "rhombus"
	KindTrapezium  Kind = "trapezium"
	KindEllipse    Kind = "ellipse"
	KindTriangle   Kind = "triangle"
	KindPyramid    Kind = "pyramid"
	KindCone       Kind = "cone"
	KindLine       Kind = "line"
	KindArrow      Kind = "arrow"
	KindDashed     Kind = "dashed"
	KindCube       Kind = "cube"
	KindImage      Kind = "image"
)

// Kinds lists every shape kind in toolbar order.
var Kinds = []Kind{
	KindPen,
	KindRectangle, KindSquare, KindCylinder,
	KindCircle, KindSphere, KindHemisphere,
	KindPentagon, KindHexagon, KindStar, KindRhombus, KindTrapezium,
	KindEllipse,
	KindTriangle, KindPyramid, KindCone,
	KindLine, KindArrow, KindDashed,
	KindCube,
	KindImage,
}

// DefaultStarPoints is the number of spikes given to a new star.
const DefaultStarPoints = 5

// Geometry is the kind-specific part of a shape. The set of implementations
// is closed: Freehand, Box, Radial, Oval, Apex, Segment, Cube and Picture.
type Geometry interface {
	geometry()
}

// Freehand is an append-only pen stroke.
type Freehand struct {
	Points []Point
}

// Box is anchored at its top-left corner. Width and Height may be negative
// while a rectangle is dragged up or left of its anchor.
type Box struct {
	X, Y          float64
	Width, Height float64
}

// Radial is centred at (X, Y). NumPoints is only meaningful for stars.
type Radial struct {
	X, Y      float64
	Radius    float64
	NumPoints int
}

// Oval is an axis-aligned ellipse centred at (X, Y).
type Oval struct {
	X, Y             float64
	RadiusX, RadiusY float64
}

// Apex describes a shape hanging from its apex at (X, Y), symmetric about
// X, with its base Height pixels below.
type Apex struct {
	X, Y          float64
	Width, Height float64
}

// Segment has exactly two endpoints. A is fixed at the gesture anchor.
type Segment struct {
	A, B Point
}

// Cube is centred at (X, Y). Its projected faces are derived from Size.
type Cube struct {
	X, Y float64
	Size float64
}

// Picture is an imported raster image. Src is opaque to the core.
type Picture struct {
	X, Y          float64
	Width, Height float64
	Src           string
}

func (Freehand) geometry() {}
func (Box) geometry()      {}
func (Radial) geometry()   {}
func (Oval) geometry()     {}
func (Apex) geometry()     {}
func (Segment) geometry()  {}
func (Cube) geometry()     {}
func (Picture) geometry()  {}

// Shape is one drawable record on the board.
type Shape struct {
	ID          string
	Kind        Kind
	Stroke      string
	StrokeWidth float64
	// Rotation in degrees about Origin, as reported by the last transform.
	Rotation float64
	Geom     Geometry
}

// NewGeometry returns the zero-sized geometry used by kind, or false for an
// unknown kind.
func NewGeometry(kind Kind, at Point) (Geometry, bool) {
	switch kind {
	case KindPen:
		return Freehand{Points: []Point{at}}, true
	case KindRectangle, KindSquare, KindCylinder:
		return Box{X: at.X, Y: at.Y}, true
	case KindStar:
		return Radial{X: at.X, Y: at.Y, NumPoints: DefaultStarPoints}, true
	case KindCircle, KindSphere, KindHemisphere,
		KindPentagon, KindHexagon, KindRhombus, KindTrapezium:
		return Radial{X: at.X, Y: at.Y}, true
	case KindEllipse:
		return Oval{X: at.X, Y: at.Y}, true
	case KindTriangle, KindPyramid, KindCone:
		return Apex{X: at.X, Y: at.Y}, true
	case KindLine, KindArrow, KindDashed:
		return Segment{A: at, B: at}, true
	case KindCube:
		return Cube{X: at.X, Y: at.Y}, true
	case KindImage:
		return Picture{X: at.X, Y: at.Y}, true
	}
	return nil, false
}

// Valid reports whether k is a known shape kind.
func (k Kind) Valid() bool {
	_, ok := NewGeometry(k, Point{})
	return ok
}

// Origin is the pivot for rotation and the position reported by transforms.
func (s Shape) Origin() Point {
	switch g := s.Geom.(type) {
	case Freehand:
		if len(g.Points) > 0 {
			return g.Points[0]
		}
	case Box:
		return Point{g.X, g.Y}
	case Radial:
		return Point{g.X, g.Y}
	case Oval:
		return Point{g.X, g.Y}
	case Apex:
		return Point{g.X, g.Y}
	case Segment:
		return g.A
	case Cube:
		return Point{g.X, g.Y}
	case Picture:
		return Point{g.X, g.Y}
	}
	return Point{}
}

// Transformable reports whether the shape can be selected and transformed.
// Pen strokes never can.
func (s Shape) Transformable() bool {
	_, freehand := s.Geom.(Freehand)
	return !freehand
}

// frozen returns s with any slice-backed geometry clipped to its length, so
// later appends on a live copy can never write into the returned value.
func (s Shape) frozen() Shape {
	if g, ok := s.Geom.(Freehand); ok {
		g.Points = g.Points[:len(g.Points):len(g.Points)]
		s.Geom = g
	}
	return s
}
