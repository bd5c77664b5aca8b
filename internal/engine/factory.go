// Package engine holds the per-kind geometry of the board: shape creation,
// drag growth, eraser hit-testing, transform normalisation and the outline
// polylines renderers draw from. Every function here is pure.
package engine

import "localboard/internal/state"

// Tool is the active toolbar tool. Every drawable shape kind except image is
// also a tool.
type Tool string

const (
	ToolSelect      Tool = "select"
	ToolEraser      Tool = "eraser"
	ToolPaintEraser Tool = "paint-eraser"
)

// ShapeTool returns the drawing tool for kind.
func ShapeTool(kind state.Kind) Tool { return Tool(kind) }

// Kind returns the shape kind drawn by t, if any.
func (t Tool) Kind() (state.Kind, bool) {
	k := state.Kind(t)
	if k == state.KindImage || !k.Valid() {
		return "", false
	}
	return k, true
}

// Tools lists the tools offered by the toolbar.
func Tools() []Tool {
	tools := []Tool{ToolSelect, ToolEraser, ToolPaintEraser}
	for _, k := range state.Kinds {
		if k != state.KindImage {
			tools = append(tools, ShapeTool(k))
		}
	}
	return tools
}

// DrawingContext carries the toolbar settings for one gesture.
type DrawingContext struct {
	Tool        Tool
	StrokeColor string
	StrokeWidth float64
	EraserSize  float64
	// Background is only used as the paint colour of the paint eraser.
	Background string
}

// NewShape builds the degenerate initial record for a gesture starting at
// anchor. It reports false for tools that do not draw (select, eraser and
// unknown names).
func NewShape(dc DrawingContext, anchor state.Point, area state.Area) (state.Shape, bool) {
	anchor = area.ClampPoint(anchor)
	if dc.Tool == ToolPaintEraser {
		return state.Shape{
			ID:          state.NewID(state.KindPen),
			Kind:        state.KindPen,
			Stroke:      dc.Background,
			StrokeWidth: dc.EraserSize,
			Geom:        state.Freehand{Points: []state.Point{anchor}},
		}, true
	}
	kind, ok := dc.Tool.Kind()
	if !ok {
		return state.Shape{}, false
	}
	geom, _ := state.NewGeometry(kind, anchor)
	return state.Shape{
		ID:          state.NewID(kind),
		Kind:        kind,
		Stroke:      dc.StrokeColor,
		StrokeWidth: dc.StrokeWidth,
		Geom:        geom,
	}, true
}
