package state

import (
	"errors"
	"reflect"
	"strings"
	"testing"
)

func sampleDocument() []Shape {
	return []Shape{
		{ID: "p1", Kind: KindPen, Stroke: "#ff0000", StrokeWidth: 3, Geom: Freehand{Points: []Point{{1, 2}, {3, 4}}}},
		{ID: "r1", Kind: KindRectangle, Stroke: "#000000", StrokeWidth: 2, Rotation: 30, Geom: Box{X: 10, Y: 20, Width: -30, Height: 40}},
		{ID: "s1", Kind: KindStar, StrokeWidth: 1, Geom: Radial{X: 50, Y: 50, Radius: 20, NumPoints: 5}},
		{ID: "e1", Kind: KindEllipse, Geom: Oval{X: 5, Y: 6, RadiusX: 7, RadiusY: 8}},
		{ID: "t1", Kind: KindCone, Geom: Apex{X: 100, Y: 10, Width: 60, Height: 80}},
		{ID: "l1", Kind: KindArrow, Geom: Segment{A: Point{0, 0}, B: Point{40, 30}}},
		{ID: "c1", Kind: KindCube, Geom: Cube{X: 200, Y: 200, Size: 50}},
		{ID: "i1", Kind: KindImage, Geom: Picture{X: 1, Y: 1, Width: 64, Height: 48, Src: "cat.png"}},
	}
}

func TestShapesRoundTrip(t *testing.T) {
	want := sampleDocument()
	data, err := MarshalShapes(want)
	if err != nil {
		t.Fatalf("MarshalShapes: %v", err)
	}
	got, err := UnmarshalShapes(data)
	if err != nil {
		t.Fatalf("UnmarshalShapes: %v", err)
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("round trip mismatch\n got: %+v\nwant: %+v", got, want)
	}
}

func TestMarshalKeepsZeroCoordinates(t *testing.T) {
	data, err := Shape{ID: "b", Kind: KindSquare, Geom: Box{}}.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	s := string(data)
	for _, field := range []string{`"x":0`, `"y":0`, `"width":0`, `"height":0`} {
		if !strings.Contains(s, field) {
			t.Errorf("%s missing from %s", field, s)
		}
	}
	if strings.Contains(s, "radius") {
		t.Errorf("unexpected radius in %s", s)
	}
}

func TestMarshalEmptyDocument(t *testing.T) {
	data, err := MarshalShapes(nil)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "[]" {
		t.Errorf("got %s, want []", data)
	}
}

func TestUnmarshalRejectsBadRecords(t *testing.T) {
	tests := []struct {
		name    string
		data    string
		unknown bool
	}{
		{"unknown kind", `[{"id":"x","kind":"blob"}]`, true},
		{"odd pen points", `[{"id":"x","kind":"pen","points":[1,2,3]}]`, false},
		{"short segment", `[{"id":"x","kind":"line","points":[1,2]}]`, false},
		{"not an array", `{"id":"x"}`, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := UnmarshalShapes([]byte(tt.data))
			if err == nil {
				t.Fatal("expected error")
			}
			if got := errors.Is(err, ErrUnknownKind); got != tt.unknown {
				t.Errorf("errors.Is(ErrUnknownKind) = %v, want %v (%v)", got, tt.unknown, err)
			}
		})
	}
}
