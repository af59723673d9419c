package shapes

import (
	"math"

	"github.com/example/sketchpad/internal/canvas"
)

// DrawFunc renders one tool's shape for a gesture anchored at anchor with the
// pointer now at current.
type DrawFunc func(s canvas.Surface, anchor, current canvas.Point, st Style)

// ArrowHeadLength is the length of each side of an arrow head in pixels.
const ArrowHeadLength = 10

var drawFuncs = map[Tool]DrawFunc{
	ToolBrush:     Freehand,
	ToolPencil:    Freehand,
	ToolEraser:    Freehand,
	ToolLine:      Line,
	ToolArrow:     Arrow,
	ToolRectangle: Rectangle,
	ToolSquare:    Square,
	ToolCircle:    Circle,
	ToolTriangle:  Triangle,
	ToolPentagon:  Pentagon,
	ToolHexagon:   Hexagon,
}

// Draw renders the shape for tool. Unknown tools draw nothing.
func Draw(s canvas.Surface, tool Tool, anchor, current canvas.Point, st Style) {
	fn, ok := drawFuncs[tool]
	if !ok {
		return
	}
	fn(s, anchor, current, st)
}

func paint(s canvas.Surface, st Style) {
	if st.Fill {
		s.Fill()
		return
	}
	s.Stroke()
}

// Freehand extends the gesture path to current and strokes all of it. The
// eraser paints with the surface background.
func Freehand(s canvas.Surface, _, current canvas.Point, st Style) {
	col := st.Color
	if st.Tool == ToolEraser {
		col = s.Background()
	}
	s.SetStrokeColor(col)
	s.LineTo(current)
	s.Stroke()
}

func Line(s canvas.Surface, anchor, current canvas.Point, _ Style) {
	s.BeginPath()
	s.MoveTo(anchor)
	s.LineTo(current)
	s.Stroke()
}

// ArrowHead returns the two back corners of the head at tip for a shaft
// starting at tail.
func ArrowHead(tail, tip canvas.Point) (canvas.Point, canvas.Point) {
	angle := math.Atan2(tip.Y-tail.Y, tip.X-tail.X)
	left := canvas.Pt(
		tip.X-ArrowHeadLength*math.Cos(angle-math.Pi/6),
		tip.Y-ArrowHeadLength*math.Sin(angle-math.Pi/6),
	)
	right := canvas.Pt(
		tip.X-ArrowHeadLength*math.Cos(angle+math.Pi/6),
		tip.Y-ArrowHeadLength*math.Sin(angle+math.Pi/6),
	)
	return left, right
}

// Arrow strokes the shaft and always fills the head.
func Arrow(s canvas.Surface, anchor, current canvas.Point, st Style) {
	Line(s, anchor, current, st)
	left, right := ArrowHead(anchor, current)
	s.BeginPath()
	s.MoveTo(left)
	s.LineTo(current)
	s.LineTo(right)
	s.ClosePath()
	s.Fill()
}

// Rectangle is anchored at current and spans anchor-current, so the far
// corner lands back on anchor.
func Rectangle(s canvas.Surface, anchor, current canvas.Point, st Style) {
	w := anchor.X - current.X
	h := anchor.Y - current.Y
	if st.Fill {
		s.FillRect(current.X, current.Y, w, h)
		return
	}
	s.StrokeRect(current.X, current.Y, w, h)
}

// Square takes its side from the horizontal drag distance and grows right and
// down from current.
func Square(s canvas.Surface, anchor, current canvas.Point, st Style) {
	side := math.Abs(anchor.X - current.X)
	s.BeginPath()
	s.Rect(current.X, current.Y, side, side)
	paint(s, st)
}

// Circle is centred on anchor and passes through current.
func Circle(s canvas.Surface, anchor, current canvas.Point, st Style) {
	r := math.Hypot(anchor.X-current.X, anchor.Y-current.Y)
	s.BeginPath()
	s.Arc(anchor, r, 0, 2*math.Pi)
	paint(s, st)
}

// Triangle has its apex at anchor and a horizontal base through current,
// mirrored about the vertical line through anchor.
func Triangle(s canvas.Surface, anchor, current canvas.Point, st Style) {
	s.BeginPath()
	s.MoveTo(anchor)
	s.LineTo(current)
	s.LineTo(canvas.Pt(2*anchor.X-current.X, current.Y))
	s.ClosePath()
	paint(s, st)
}

// PolygonVertices returns n vertices evenly spaced on a circle of radius r
// about center, starting at angle offset.
func PolygonVertices(center canvas.Point, r float64, n int, offset float64) []canvas.Point {
	pts := make([]canvas.Point, 0, n)
	for i := 0; i < n; i++ {
		angle := 2*math.Pi/float64(n)*float64(i) + offset
		pts = append(pts, canvas.Pt(center.X+r*math.Cos(angle), center.Y+r*math.Sin(angle)))
	}
	return pts
}

func polygon(s canvas.Surface, pts []canvas.Point, st Style) {
	s.BeginPath()
	for _, p := range pts {
		s.LineTo(p)
	}
	s.ClosePath()
	paint(s, st)
}

// Pentagon is centred on current with one vertex pointing up.
func Pentagon(s canvas.Surface, anchor, current canvas.Point, st Style) {
	r := math.Abs(anchor.X - current.X)
	polygon(s, PolygonVertices(current, r, 5, -math.Pi/2), st)
}

// Hexagon is centred on current with a vertex on the positive x axis.
func Hexagon(s canvas.Surface, anchor, current canvas.Point, st Style) {
	r := math.Abs(anchor.X - current.X)
	polygon(s, PolygonVertices(current, r, 6, 0), st)
}
