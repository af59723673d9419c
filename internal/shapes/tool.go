// Package shapes holds the drawing tools and the geometry each one renders
// from a drag gesture.
package shapes

import (
	"fmt"
	"image/color"
	"strings"
)

type Tool int

const (
	ToolBrush Tool = iota
	ToolPencil
	ToolEraser
	ToolLine
	ToolArrow
	ToolRectangle
	ToolSquare
	ToolCircle
	ToolTriangle
	ToolPentagon
	ToolHexagon
)

var toolNames = []string{
	ToolBrush:     "brush",
	ToolPencil:    "pencil",
	ToolEraser:    "eraser",
	ToolLine:      "line",
	ToolArrow:     "arrow",
	ToolRectangle: "rectangle",
	ToolSquare:    "square",
	ToolCircle:    "circle",
	ToolTriangle:  "triangle",
	ToolPentagon:  "pentagon",
	ToolHexagon:   "hexagon",
}

// Tools lists every known tool in toolbar order.
func Tools() []Tool {
	out := make([]Tool, len(toolNames))
	for i := range toolNames {
		out[i] = Tool(i)
	}
	return out
}

func (t Tool) String() string {
	if t < 0 || int(t) >= len(toolNames) {
		return fmt.Sprintf("Tool(%d)", int(t))
	}
	return toolNames[t]
}

// Valid reports whether t names a known tool.
func (t Tool) Valid() bool { return t >= 0 && int(t) < len(toolNames) }

// Freehand reports whether t draws along the pointer path.
func (t Tool) Freehand() bool {
	return t == ToolBrush || t == ToolPencil || t == ToolEraser
}

// Fillable reports whether fill mode changes how t is painted.
func (t Tool) Fillable() bool {
	switch t {
	case ToolRectangle, ToolSquare, ToolCircle, ToolTriangle, ToolPentagon, ToolHexagon:
		return true
	}
	return false
}

// ParseTool resolves a tool by name. The lookup is case-insensitive and also
// accepts "rect".
func ParseTool(name string) (Tool, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "rect" {
		return ToolRectangle, nil
	}
	for i, tn := range toolNames {
		if tn == n {
			return Tool(i), nil
		}
	}
	return 0, fmt.Errorf("unknown tool %q", name)
}

// Style is the tool and paint selection a gesture is drawn with. It is copied
// on every read so a gesture never observes a half-applied change.
type Style struct {
	Tool  Tool
	Color color.RGBA
	Width float64
	Fill  bool
}

// DefaultWidth is the stroke width a fresh drawing starts with.
const DefaultWidth float64 = 5

// DefaultStyle is a black 5px brush with fill mode off.
func DefaultStyle() Style {
	return Style{Tool: ToolBrush, Color: color.RGBA{0, 0, 0, 255}, Width: DefaultWidth}
}
