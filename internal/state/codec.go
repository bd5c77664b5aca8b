package state

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when decoding a record with an unrecognised kind.
var ErrUnknownKind = errors.New("unknown shape kind")

// shapeJSON is the persisted layout: one flat object per shape, tagged by
// kind. Geometry fields are pointers so that zero coordinates still appear
// in the output while fields of other kinds are left out.
type shapeJSON struct {
	ID          string    `json:"id"`
	Kind        Kind      `json:"kind"`
	Stroke      string    `json:"stroke,omitempty"`
	StrokeWidth float64   `json:"strokeWidth,omitempty"`
	Rotation    float64   `json:"rotation,omitempty"`
	Points      []float64 `json:"points,omitempty"`
	X           *float64  `json:"x,omitempty"`
	Y           *float64  `json:"y,omitempty"`
	Width       *float64  `json:"width,omitempty"`
	Height      *float64  `json:"height,omitempty"`
	Radius      *float64  `json:"radius,omitempty"`
	RadiusX     *float64  `json:"radiusX,omitempty"`
	RadiusY     *float64  `json:"radiusY,omitempty"`
	Size        *float64  `json:"size,omitempty"`
	NumPoints   int       `json:"numPoints,omitempty"`
	Src         string    `json:"src,omitempty"`
}

func ptr(v float64) *float64 { return &v }

func val(p *float64) float64 {
	if p == nil {
		return 0
	}
	return *p
}

// MarshalJSON implements json.Marshaler.
func (s Shape) MarshalJSON() ([]byte, error) {
	w := shapeJSON{
		ID:          s.ID,
		Kind:        s.Kind,
		Stroke:      s.Stroke,
		StrokeWidth: s.StrokeWidth,
		Rotation:    s.Rotation,
	}
	switch g := s.Geom.(type) {
	case Freehand:
		w.Points = make([]float64, 0, 2*len(g.Points))
		for _, p := range g.Points {
			w.Points = append(w.Points, p.X, p.Y)
		}
	case Box:
		w.X, w.Y, w.Width, w.Height = ptr(g.X), ptr(g.Y), ptr(g.Width), ptr(g.Height)
	case Radial:
		w.X, w.Y, w.Radius = ptr(g.X), ptr(g.Y), ptr(g.Radius)
		w.NumPoints = g.NumPoints
	case Oval:
		w.X, w.Y, w.RadiusX, w.RadiusY = ptr(g.X), ptr(g.Y), ptr(g.RadiusX), ptr(g.RadiusY)
	case Apex:
		w.X, w.Y, w.Width, w.Height = ptr(g.X), ptr(g.Y), ptr(g.Width), ptr(g.Height)
	case Segment:
		w.Points = []float64{g.A.X, g.A.Y, g.B.X, g.B.Y}
	case Cube:
		w.X, w.Y, w.Size = ptr(g.X), ptr(g.Y), ptr(g.Size)
	case Picture:
		w.X, w.Y, w.Width, w.Height = ptr(g.X), ptr(g.Y), ptr(g.Width), ptr(g.Height)
		w.Src = g.Src
	default:
		return nil, fmt.Errorf("shape %s: no geometry", s.ID)
	}
	return json.Marshal(w)
}

// UnmarshalJSON implements json.Unmarshaler.
func (s *Shape) UnmarshalJSON(data []byte) error {
	var w shapeJSON
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	geom, ok := NewGeometry(w.Kind, Point{})
	if !ok {
		return fmt.Errorf("shape %s: %w: %q", w.ID, ErrUnknownKind, w.Kind)
	}
	switch geom.(type) {
	case Freehand:
		if len(w.Points)%2 != 0 {
			return fmt.Errorf("shape %s: odd number of point coordinates (%d)", w.ID, len(w.Points))
		}
		pts := make([]Point, 0, len(w.Points)/2)
		for i := 0; i < len(w.Points); i += 2 {
			pts = append(pts, Point{w.Points[i], w.Points[i+1]})
		}
		geom = Freehand{Points: pts}
	case Box:
		geom = Box{X: val(w.X), Y: val(w.Y), Width: val(w.Width), Height: val(w.Height)}
	case Radial:
		geom = Radial{X: val(w.X), Y: val(w.Y), Radius: val(w.Radius), NumPoints: w.NumPoints}
	case Oval:
		geom = Oval{X: val(w.X), Y: val(w.Y), RadiusX: val(w.RadiusX), RadiusY: val(w.RadiusY)}
	case Apex:
		geom = Apex{X: val(w.X), Y: val(w.Y), Width: val(w.Width), Height: val(w.Height)}
	case Segment:
		if len(w.Points) != 4 {
			return fmt.Errorf("shape %s: %s needs 4 point coordinates, got %d", w.ID, w.Kind, len(w.Points))
		}
		geom = Segment{A: Point{w.Points[0], w.Points[1]}, B: Point{w.Points[2], w.Points[3]}}
	case Cube:
		geom = Cube{X: val(w.X), Y: val(w.Y), Size: val(w.Size)}
	case Picture:
		geom = Picture{X: val(w.X), Y: val(w.Y), Width: val(w.Width), Height: val(w.Height), Src: w.Src}
	}
	*s = Shape{
		ID:          w.ID,
		Kind:        w.Kind,
		Stroke:      w.Stroke,
		StrokeWidth: w.StrokeWidth,
		Rotation:    w.Rotation,
		Geom:        geom,
	}
	return nil
}

// MarshalShapes encodes shapes as an indented JSON array.
func MarshalShapes(shapes []Shape) ([]byte, error) {
	if shapes == nil {
		shapes = []Shape{}
	}
	return json.MarshalIndent(shapes, "", "  ")
}

// UnmarshalShapes decodes a JSON array of shape records.
func UnmarshalShapes(data []byte) ([]Shape, error) {
	var shapes []Shape
	if err := json.Unmarshal(data, &shapes); err != nil {
		return nil, fmt.Errorf("decode shapes: %w", err)
	}
	return shapes, nil
}
