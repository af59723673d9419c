package shapes

import (
	"image/color"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sketchpad/internal/canvas"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	red   = color.RGBA{255, 0, 0, 255}
)

const eps = 1e-9

func newRecorder() *canvas.Recorder { return canvas.NewRecorder(200, 200, white) }

func style(tool Tool, fill bool) Style {
	return Style{Tool: tool, Color: red, Width: 3, Fill: fill}
}

func TestLineIsSegmentFromAnchorToCurrent(t *testing.T) {
	rec := newRecorder()
	anchor, current := canvas.Pt(12, 7), canvas.Pt(90, 33)
	Draw(rec, ToolLine, anchor, current, style(ToolLine, true))

	painted := rec.Painted()
	require.Len(t, painted, 1)
	assert.Equal(t, canvas.OpStroke, painted[0].Op, "line ignores fill mode")
	assert.Equal(t, []canvas.Point{anchor, current}, painted[0].Points)
}

func TestCircleRadiusAndCentre(t *testing.T) {
	cases := []struct{ anchor, current canvas.Point }{
		{canvas.Pt(0, 0), canvas.Pt(3, 4)},
		{canvas.Pt(50, 50), canvas.Pt(50, 50)},
		{canvas.Pt(-10, 20), canvas.Pt(7, -3)},
	}
	for _, tc := range cases {
		rec := newRecorder()
		Draw(rec, ToolCircle, tc.anchor, tc.current, style(ToolCircle, false))
		var arc *canvas.Command
		for i := range rec.Commands {
			if rec.Commands[i].Op == canvas.OpArc {
				arc = &rec.Commands[i]
			}
		}
		require.NotNil(t, arc)
		want := math.Sqrt(math.Pow(tc.anchor.X-tc.current.X, 2) + math.Pow(tc.anchor.Y-tc.current.Y, 2))
		assert.Equal(t, tc.anchor, arc.Points[0])
		assert.InDelta(t, want, arc.Values[0], eps)
		assert.Equal(t, 0.0, arc.Values[1])
		assert.InDelta(t, 2*math.Pi, arc.Values[2], eps)
	}
}

func TestCircleFillMode(t *testing.T) {
	rec := newRecorder()
	Draw(rec, ToolCircle, canvas.Pt(10, 10), canvas.Pt(20, 10), style(ToolCircle, true))
	painted := rec.Painted()
	require.Len(t, painted, 1)
	assert.Equal(t, canvas.OpFill, painted[0].Op)
}

func squareRect(t *testing.T, anchor, current canvas.Point) []float64 {
	t.Helper()
	rec := newRecorder()
	Draw(rec, ToolSquare, anchor, current, style(ToolSquare, false))
	for _, c := range rec.Commands {
		if c.Op == canvas.OpRect {
			return c.Values
		}
	}
	t.Fatalf("no rect recorded")
	return nil
}

func TestSquareSideIsHorizontalDistance(t *testing.T) {
	anchor, current := canvas.Pt(40, 10), canvas.Pt(15, 80)
	r := squareRect(t, anchor, current)
	assert.Equal(t, []float64{15, 80, 25, 25}, r)
}

func TestSquareSideIsTranslationInvariant(t *testing.T) {
	anchor, current := canvas.Pt(40, 10), canvas.Pt(15, 80)
	shift := canvas.Pt(-33.5, 121)
	a := squareRect(t, anchor, current)
	b := squareRect(t, anchor.Add(shift), current.Add(shift))
	assert.InDelta(t, a[2], b[2], eps)
	assert.InDelta(t, a[3], b[3], eps)
}

func TestRectangleScenario(t *testing.T) {
	rec := newRecorder()
	Draw(rec, ToolRectangle, canvas.Pt(10, 10), canvas.Pt(50, 40), style(ToolRectangle, false))
	painted := rec.Painted()
	require.Len(t, painted, 1)
	c := painted[0]
	assert.Equal(t, canvas.OpStrokeRect, c.Op)
	// anchored at current with signed size anchor-current
	assert.Equal(t, []float64{50, 40, -40, -30}, c.Values)
	x0, y0 := c.Values[0], c.Values[1]
	x1, y1 := x0+c.Values[2], y0+c.Values[3]
	assert.Equal(t, [4]float64{10, 10, 50, 40}, [4]float64{math.Min(x0, x1), math.Min(y0, y1), math.Max(x0, x1), math.Max(y0, y1)})
}

func TestRectangleFillDoesNotTouchPath(t *testing.T) {
	rec := newRecorder()
	Draw(rec, ToolRectangle, canvas.Pt(0, 0), canvas.Pt(5, 5), style(ToolRectangle, true))
	assert.Equal(t, []canvas.Op{canvas.OpFillRect}, rec.Ops())
}

func TestTriangleVertices(t *testing.T) {
	rec := newRecorder()
	anchor, current := canvas.Pt(100, 20), canvas.Pt(130, 90)
	Draw(rec, ToolTriangle, anchor, current, style(ToolTriangle, false))
	painted := rec.Painted()
	require.Len(t, painted, 1)
	assert.Equal(t, []canvas.Point{anchor, current, canvas.Pt(70, 90)}, painted[0].Points)
}

func TestPolygons(t *testing.T) {
	for _, tc := range []struct {
		tool   Tool
		n      int
		offset float64
	}{
		{ToolPentagon, 5, -math.Pi / 2},
		{ToolHexagon, 6, 0},
	} {
		t.Run(tc.tool.String(), func(t *testing.T) {
			rec := newRecorder()
			anchor, current := canvas.Pt(60, 10), canvas.Pt(100, 100)
			Draw(rec, tc.tool, anchor, current, style(tc.tool, true))
			painted := rec.Painted()
			require.Len(t, painted, 1)
			assert.Equal(t, canvas.OpFill, painted[0].Op)
			pts := painted[0].Points
			require.Len(t, pts, tc.n)
			for i, p := range pts {
				assert.InDelta(t, 40, math.Hypot(p.X-current.X, p.Y-current.Y), 1e-6)
				angle := 2*math.Pi/float64(tc.n)*float64(i) + tc.offset
				assert.InDelta(t, current.X+40*math.Cos(angle), p.X, 1e-6)
				assert.InDelta(t, current.Y+40*math.Sin(angle), p.Y, 1e-6)
			}
		})
	}
}

func TestPentagonPointsUp(t *testing.T) {
	pts := PolygonVertices(canvas.Pt(0, 0), 10, 5, -math.Pi/2)
	assert.InDelta(t, 0, pts[0].X, 1e-9)
	assert.InDelta(t, -10, pts[0].Y, 1e-9)
}

func TestDegeneratePentagonDoesNotPanic(t *testing.T) {
	rec := newRecorder()
	assert.NotPanics(t, func() {
		Draw(rec, ToolPentagon, canvas.Pt(100, 100), canvas.Pt(100, 150), style(ToolPentagon, false))
	})
	painted := rec.Painted()
	require.Len(t, painted, 1)
	for _, p := range painted[0].Points {
		assert.InDelta(t, 100, p.X, eps)
		assert.InDelta(t, 150, p.Y, eps)
	}

	r := canvas.NewRaster(200, 200, white)
	assert.NotPanics(t, func() {
		Draw(r, ToolPentagon, canvas.Pt(100, 100), canvas.Pt(100, 150), style(ToolPentagon, false))
	})
}

func TestArrowHeadGeometry(t *testing.T) {
	tail, tip := canvas.Pt(0, 0), canvas.Pt(100, 0)
	left, right := ArrowHead(tail, tip)
	dx := ArrowHeadLength * math.Cos(math.Pi/6)
	dy := ArrowHeadLength * math.Sin(math.Pi/6)
	assert.InDelta(t, 100-dx, left.X, eps)
	assert.InDelta(t, dy, left.Y, eps)
	assert.InDelta(t, 100-dx, right.X, eps)
	assert.InDelta(t, -dy, right.Y, eps)
}

func TestArrowHeadIsAlwaysFilled(t *testing.T) {
	rec := newRecorder()
	Draw(rec, ToolArrow, canvas.Pt(0, 0), canvas.Pt(0, 50), style(ToolArrow, false))
	painted := rec.Painted()
	require.Len(t, painted, 2)
	assert.Equal(t, canvas.OpStroke, painted[0].Op)
	assert.Equal(t, canvas.OpFill, painted[1].Op)
	assert.Equal(t, canvas.Pt(0, 50), painted[1].Points[1])
}

func TestEraserUsesBackground(t *testing.T) {
	bg := color.RGBA{250, 240, 230, 255}
	rec := canvas.NewRecorder(50, 50, bg)
	for _, c := range []color.RGBA{red, {0, 0, 255, 255}, bg} {
		rec.Reset()
		Freehand(rec, canvas.Pt(0, 0), canvas.Pt(10, 10), Style{Tool: ToolEraser, Color: c, Width: 9})
		painted := rec.Painted()
		require.Len(t, painted, 1)
		assert.Equal(t, bg, painted[0].Color)
	}
}

func TestBrushUsesStyleColour(t *testing.T) {
	rec := newRecorder()
	rec.BeginPath()
	Freehand(rec, canvas.Pt(0, 0), canvas.Pt(4, 4), style(ToolBrush, true))
	Freehand(rec, canvas.Pt(0, 0), canvas.Pt(8, 9), style(ToolBrush, true))
	painted := rec.Painted()
	require.Len(t, painted, 2)
	assert.Equal(t, red, painted[1].Color)
	assert.Equal(t, canvas.OpStroke, painted[1].Op, "freehand ignores fill mode")
	assert.Equal(t, []canvas.Point{canvas.Pt(4, 4), canvas.Pt(8, 9)}, painted[1].Points)
}

func TestUnknownToolDrawsNothing(t *testing.T) {
	rec := newRecorder()
	Draw(rec, Tool(99), canvas.Pt(1, 1), canvas.Pt(2, 2), DefaultStyle())
	assert.Empty(t, rec.Commands)
}

func TestParseTool(t *testing.T) {
	for _, tool := range Tools() {
		got, err := ParseTool(tool.String())
		require.NoError(t, err)
		assert.Equal(t, tool, got)
	}
	got, err := ParseTool(" RECT ")
	require.NoError(t, err)
	assert.Equal(t, ToolRectangle, got)
	_, err = ParseTool("spray")
	assert.Error(t, err)
	assert.False(t, Tool(-1).Valid())
	assert.Equal(t, "Tool(42)", Tool(42).String())
}
