package engine

import (
	"testing"

	"localboard/internal/state"
)

var testArea = state.Area{Width: 200, Height: 100}

func TestNewShapeForEveryTool(t *testing.T) {
	dc := DrawingContext{StrokeColor: "#112233", StrokeWidth: 4, EraserSize: 12, Background: "#ffffff"}
	for _, tool := range Tools() {
		dc.Tool = tool
		s, ok := NewShape(dc, state.Point{X: 50, Y: 40}, testArea)
		switch tool {
		case ToolSelect, ToolEraser:
			if ok {
				t.Errorf("%s built a shape", tool)
			}
			continue
		case ToolPaintEraser:
			if !ok || s.Kind != state.KindPen || s.Stroke != "#ffffff" || s.StrokeWidth != 12 {
				t.Errorf("paint eraser = %+v, %v", s, ok)
			}
			continue
		}
		if !ok {
			t.Errorf("%s: no shape", tool)
			continue
		}
		if string(s.Kind) != string(tool) || s.Stroke != "#112233" || s.StrokeWidth != 4 {
			t.Errorf("%s: got %+v", tool, s)
		}
		if s.ID == "" {
			t.Errorf("%s: empty id", tool)
		}
		if got := s.Origin(); got != (state.Point{X: 50, Y: 40}) {
			t.Errorf("%s: origin %v", tool, got)
		}
	}
}

func TestNewShapeRejectsUnknownTools(t *testing.T) {
	for _, tool := range []Tool{"", "blob", Tool(state.KindImage)} {
		if _, ok := NewShape(DrawingContext{Tool: tool}, state.Point{}, testArea); ok {
			t.Errorf("tool %q built a shape", tool)
		}
	}
}

func TestNewShapeClampsAnchor(t *testing.T) {
	s, ok := NewShape(DrawingContext{Tool: ShapeTool(state.KindCircle)}, state.Point{X: -20, Y: 500}, testArea)
	if !ok {
		t.Fatal("no shape")
	}
	if got := s.Origin(); got != (state.Point{X: 0, Y: 100}) {
		t.Errorf("origin = %v, want {0 100}", got)
	}
}
