package appstate

import (
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/mobile/event/key"
	"golang.org/x/mobile/event/mouse"

	"github.com/example/sketchpad/internal/canvas"
	"github.com/example/sketchpad/internal/export"
	"github.com/example/sketchpad/internal/shapes"
)

var white = color.RGBA{255, 255, 255, 255}

func TestNewDefaults(t *testing.T) {
	a := New(WithSurface(canvas.NewRecorder(10, 10, white)))
	st := a.Style()
	assert.Equal(t, shapes.ToolBrush, st.Tool)
	assert.Equal(t, color.RGBA{0, 0, 0, 255}, st.Color)
	assert.Equal(t, 5.0, st.Width)
	assert.False(t, st.Fill)
	assert.Equal(t, float64(widthAt(DefaultWidthIndex())), st.Width)
	assert.Equal(t, paletteColorAt(DefaultColorIndex()), st.Color)
}

func TestInvalidOptionsFallBack(t *testing.T) {
	a := New(WithSurface(canvas.NewRecorder(10, 10, white)), WithTool(shapes.Tool(99)), WithWidth(-3))
	st := a.Style()
	assert.Equal(t, shapes.ToolBrush, st.Tool)
	assert.Equal(t, shapes.DefaultWidth, st.Width)
}

func TestSettersNotifyListener(t *testing.T) {
	var seen []shapes.Style
	a := New(WithSurface(canvas.NewRecorder(10, 10, white)), WithSettingsListener(func(st shapes.Style) {
		seen = append(seen, st)
	}))
	a.SetTool(shapes.ToolHexagon)
	a.SetColor(color.RGBA{1, 2, 3, 255})
	a.SetWidth(12)
	a.SetWidth(0)
	a.SetTool(shapes.Tool(-1))
	a.ToggleFill()

	require.Len(t, seen, 4)
	want := shapes.Style{Tool: shapes.ToolHexagon, Color: color.RGBA{1, 2, 3, 255}, Width: 12, Fill: true}
	assert.Equal(t, want, seen[3])
	assert.Equal(t, want, a.Style())
}

func TestStyleIsReadByGestures(t *testing.T) {
	rec := canvas.NewRecorder(100, 100, white)
	a := New(WithSurface(rec), WithTool(shapes.ToolLine))
	m := a.Gesture()
	m.PointerDown(canvas.Pt(1, 1))
	a.SetTool(shapes.ToolCircle)
	m.PointerMove(canvas.Pt(20, 1))
	m.PointerUp()
	assert.Contains(t, rec.Ops(), canvas.OpArc)
}

func TestSaveUsesClockAndCallback(t *testing.T) {
	dir := t.TempDir()
	var saved string
	a := New(
		WithSize(20, 10),
		WithSaveDir(dir),
		WithExport(export.Options{Format: export.FormatPNG}),
		WithClock(func() time.Time { return time.UnixMilli(1234) }),
		WithOnSave(func(p string) { saved = p }),
	)
	path, err := a.Save()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "1234.png"), path)
	assert.Equal(t, path, saved)
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestClearWipesSurface(t *testing.T) {
	a := New(WithSize(8, 8))
	a.Surface.SetFillColor(color.RGBA{255, 0, 0, 255})
	a.Surface.FillRect(0, 0, 8, 8)
	a.Clear()
	assert.Equal(t, white, a.Surface.Image().RGBAAt(4, 4))
}

func TestParseColor(t *testing.T) {
	cases := map[string]color.RGBA{
		"Red":       {255, 0, 0, 255},
		"navy":      {0, 0, 128, 255},
		"orange":    {255, 165, 0, 255},
		"#0a0B0c":   {10, 11, 12, 255},
		"#abc":      {0xaa, 0xbb, 0xcc, 255},
		"#01020304": {1, 2, 3, 4},
	}
	for in, want := range cases {
		got, err := ParseColor(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	for _, bad := range []string{"", "#12", "notacolour"} {
		_, err := ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestEnsureWidthKeepsOptionsSorted(t *testing.T) {
	idx := EnsureWidth(7)
	opts := WidthOptions()
	assert.Equal(t, 7, opts[idx])
	assert.IsIncreasing(t, opts)
	assert.Equal(t, idx, EnsureWidth(7))
}

func TestLayoutHit(t *testing.T) {
	l := newLayout(400, 600, 80, 11, 16, 6)
	reg, idx := l.hit(l.tools[3].Min)
	assert.Equal(t, regionTool, reg)
	assert.Equal(t, 3, idx)
	reg, idx = l.hit(l.swatches[5].Min.Add(image.Pt(1, 1)))
	assert.Equal(t, regionSwatch, reg)
	assert.Equal(t, 5, idx)
	reg, idx = l.hit(l.widths[2].Min)
	assert.Equal(t, regionWidth, reg)
	assert.Equal(t, 2, idx)
	reg, _ = l.hit(l.fill.Min)
	assert.Equal(t, regionFill, reg)
	reg, _ = l.hit(image.Pt(200, 100))
	assert.Equal(t, regionCanvas, reg)
	reg, _ = l.hit(image.Pt(200, 590))
	assert.Equal(t, regionShortcut, reg)
	w, h := l.canvasSize()
	assert.Equal(t, 320, w)
	assert.Equal(t, 576, h)
}

func newTestHost(t *testing.T, surface canvas.Surface) (*AppState, *host) {
	t.Helper()
	a := New(WithSurface(surface))
	return a, newHost(a, 80, 400, 600)
}

func TestHostMapsMouseToGesture(t *testing.T) {
	rec := canvas.NewRecorder(320, 576, white)
	a, h := newTestHost(t, rec)
	a.SetTool(shapes.ToolLine)

	h.mouse(mouse.Event{X: 100, Y: 50, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	anchor, ok := a.Gesture().Anchor()
	require.True(t, ok)
	assert.Equal(t, canvas.Pt(20, 50), anchor)

	h.mouse(mouse.Event{X: 180, Y: 90, Direction: mouse.DirNone})
	h.mouse(mouse.Event{X: 180, Y: 90, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	assert.False(t, a.Gesture().Active())

	painted := rec.Painted()
	require.Len(t, painted, 1)
	assert.Equal(t, []canvas.Point{canvas.Pt(20, 50), canvas.Pt(100, 90)}, painted[0].Points)
}

func TestHostIgnoresHoverWithoutPress(t *testing.T) {
	rec := canvas.NewRecorder(320, 576, white)
	a, h := newTestHost(t, rec)
	a.SetTool(shapes.ToolLine)

	h.mouse(mouse.Event{X: 120, Y: 60, Direction: mouse.DirNone})
	h.mouse(mouse.Event{X: 100, Y: 50, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	h.mouse(mouse.Event{X: 140, Y: 70, Direction: mouse.DirNone})
	h.mouse(mouse.Event{X: 140, Y: 70, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	h.mouse(mouse.Event{X: 200, Y: 200, Direction: mouse.DirNone})

	assert.False(t, a.Gesture().Active())
	painted := rec.Painted()
	require.Len(t, painted, 1, "only the move between press and release draws")
	assert.Equal(t, []canvas.Point{canvas.Pt(20, 50), canvas.Pt(60, 70)}, painted[0].Points)
}

func TestHostToolbarClicksChangeStyle(t *testing.T) {
	a, h := newTestHost(t, canvas.NewRecorder(320, 576, white))
	click := func(p image.Point) {
		h.mouse(mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: mouse.ButtonLeft, Direction: mouse.DirPress})
		h.mouse(mouse.Event{X: float32(p.X), Y: float32(p.Y), Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	}
	click(h.layout.tools[int(shapes.ToolTriangle)].Min.Add(image.Pt(2, 2)))
	click(h.layout.swatches[2].Min.Add(image.Pt(2, 2)))
	click(h.layout.widths[4].Min.Add(image.Pt(2, 2)))
	click(h.layout.fill.Min.Add(image.Pt(2, 2)))

	st := a.Style()
	assert.Equal(t, shapes.ToolTriangle, st.Tool)
	assert.Equal(t, paletteColorAt(2), st.Color)
	assert.Equal(t, float64(widthAt(4)), st.Width)
	assert.True(t, st.Fill)
	assert.False(t, a.Gesture().Active())
}

func TestHostKeyboardShortcuts(t *testing.T) {
	rec := canvas.NewRecorder(320, 576, white)
	a, h := newTestHost(t, rec)
	press := func(r rune, code key.Code, mods key.Modifiers) bool {
		return h.key(key.Event{Rune: r, Code: code, Modifiers: mods, Direction: key.DirPress})
	}
	press('C', key.CodeC, 0)
	assert.Equal(t, shapes.ToolCircle, a.Style().Tool)
	press('5', key.Code5, 0)
	assert.Equal(t, shapes.ToolPentagon, a.Style().Tool)
	press('f', key.CodeF, 0)
	assert.True(t, a.Style().Fill)
	press(-1, key.CodeDeleteForward, 0)
	assert.Equal(t, canvas.OpClear, rec.Commands[len(rec.Commands)-1].Op)
	assert.True(t, press('q', key.CodeQ, 0))
}

func TestHostResizeStopsAfterFirstStroke(t *testing.T) {
	r := canvas.NewRaster(10, 10, white)
	_, h := newTestHost(t, r)
	h.resize(300, 200)
	w, ht := r.Size()
	assert.Equal(t, 220, w)
	assert.Equal(t, 176, ht)

	h.mouse(mouse.Event{X: 100, Y: 50, Button: mouse.ButtonLeft, Direction: mouse.DirPress})
	h.mouse(mouse.Event{X: 100, Y: 50, Button: mouse.ButtonLeft, Direction: mouse.DirRelease})
	h.resize(500, 500)
	w, ht = r.Size()
	assert.Equal(t, 220, w)
	assert.Equal(t, 176, ht)
}

func TestHostRenderShowsSurface(t *testing.T) {
	r := canvas.NewRaster(320, 576, white)
	r.SetFillColor(color.RGBA{0, 0, 255, 255})
	r.FillRect(0, 0, 10, 10)
	_, h := newTestHost(t, r)
	dst := image.NewRGBA(image.Rect(0, 0, 400, 600))
	h.render(dst)
	assert.Equal(t, color.RGBA{0, 0, 255, 255}, dst.RGBAAt(85, 5))
	assert.Equal(t, white, dst.RGBAAt(200, 100))
}
