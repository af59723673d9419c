package canvas

import (
	"image"
	"image/color"
	"image/draw"
)

// Op names a recorded Surface call.
type Op string

const (
	OpClear          Op = "clear"
	OpFillBackground Op = "fillBackground"
	OpStrokeColor    Op = "strokeColor"
	OpFillColor      Op = "fillColor"
	OpLineWidth      Op = "lineWidth"
	OpBeginPath      Op = "beginPath"
	OpMoveTo         Op = "moveTo"
	OpLineTo         Op = "lineTo"
	OpArc            Op = "arc"
	OpRect           Op = "rect"
	OpClosePath      Op = "closePath"
	OpStroke         Op = "stroke"
	OpFill           Op = "fill"
	OpStrokeRect     Op = "strokeRect"
	OpFillRect       Op = "fillRect"
	OpSnapshot       Op = "snapshot"
	OpRestore        Op = "restore"
)

// Command is one recorded Surface call. Stroke and fill commands carry the
// colour and width in effect plus the points of the path they painted.
type Command struct {
	Op     Op
	Points []Point
	Values []float64
	Color  color.RGBA
	Width  float64
}

// Recorder is a Surface that draws nothing and logs every call. It is used to
// inspect tool geometry and by dry-run commands.
type Recorder struct {
	Commands []Command

	w, h   int
	bg     color.RGBA
	stroke color.RGBA
	fill   color.RGBA
	width  float64
	path   pathBuilder
	seq    int
}

var _ Surface = (*Recorder)(nil)

type recordedSnapshot struct {
	w, h int
	seq  int
}

func (s recordedSnapshot) Size() (int, int) { return s.w, s.h }

// NewRecorder creates a recording surface of the given size.
func NewRecorder(w, h int, bg color.RGBA) *Recorder {
	return &Recorder{w: w, h: h, bg: bg, stroke: color.RGBA{0, 0, 0, 255}, fill: color.RGBA{0, 0, 0, 255}, width: 1}
}

func (r *Recorder) add(c Command) { r.Commands = append(r.Commands, c) }

// Reset drops the recorded commands but keeps the drawing state.
func (r *Recorder) Reset() { r.Commands = nil }

// Ops lists the recorded operation names in order.
func (r *Recorder) Ops() []Op {
	out := make([]Op, len(r.Commands))
	for i, c := range r.Commands {
		out[i] = c.Op
	}
	return out
}

// Painted returns the stroke, fill, strokeRect and fillRect commands.
func (r *Recorder) Painted() []Command {
	var out []Command
	for _, c := range r.Commands {
		switch c.Op {
		case OpStroke, OpFill, OpStrokeRect, OpFillRect:
			out = append(out, c)
		}
	}
	return out
}

func (r *Recorder) Size() (int, int) { return r.w, r.h }

func (r *Recorder) Background() color.RGBA { return r.bg }

func (r *Recorder) Clear() { r.add(Command{Op: OpClear, Color: r.bg}) }

func (r *Recorder) FillBackground(c color.RGBA) {
	r.bg = c
	r.add(Command{Op: OpFillBackground, Color: c})
}

func (r *Recorder) SetStrokeColor(c color.RGBA) {
	r.stroke = c
	r.add(Command{Op: OpStrokeColor, Color: c})
}

func (r *Recorder) SetFillColor(c color.RGBA) {
	r.fill = c
	r.add(Command{Op: OpFillColor, Color: c})
}

func (r *Recorder) SetLineWidth(w float64) {
	if w > 0 {
		r.width = w
	}
	r.add(Command{Op: OpLineWidth, Values: []float64{w}})
}

func (r *Recorder) BeginPath() {
	r.path.reset()
	r.add(Command{Op: OpBeginPath})
}

func (r *Recorder) MoveTo(p Point) {
	r.path.moveTo(p)
	r.add(Command{Op: OpMoveTo, Points: []Point{p}})
}

func (r *Recorder) LineTo(p Point) {
	r.path.lineTo(p)
	r.add(Command{Op: OpLineTo, Points: []Point{p}})
}

func (r *Recorder) Arc(c Point, radius, a0, a1 float64) {
	r.path.arc(c, radius, a0, a1)
	r.add(Command{Op: OpArc, Points: []Point{c}, Values: []float64{radius, a0, a1}})
}

func (r *Recorder) Rect(x, y, w, h float64) {
	r.path.rect(x, y, w, h)
	r.add(Command{Op: OpRect, Values: []float64{x, y, w, h}})
}

func (r *Recorder) ClosePath() {
	r.path.closePath()
	r.add(Command{Op: OpClosePath})
}

func (r *Recorder) pathPoints() []Point {
	var pts []Point
	for _, s := range r.path.segs {
		if s.kind == segClose {
			continue
		}
		pts = append(pts, s.p)
	}
	return pts
}

func (r *Recorder) Stroke() {
	r.add(Command{Op: OpStroke, Points: r.pathPoints(), Color: r.stroke, Width: r.width})
}

func (r *Recorder) Fill() {
	r.add(Command{Op: OpFill, Points: r.pathPoints(), Color: r.fill, Width: r.width})
}

func (r *Recorder) StrokeRect(x, y, w, h float64) {
	r.add(Command{Op: OpStrokeRect, Values: []float64{x, y, w, h}, Color: r.stroke, Width: r.width})
}

func (r *Recorder) FillRect(x, y, w, h float64) {
	r.add(Command{Op: OpFillRect, Values: []float64{x, y, w, h}, Color: r.fill, Width: r.width})
}

func (r *Recorder) Snapshot() Snapshot {
	r.seq++
	r.add(Command{Op: OpSnapshot, Values: []float64{float64(r.seq)}})
	return recordedSnapshot{w: r.w, h: r.h, seq: r.seq}
}

func (r *Recorder) Restore(s Snapshot) {
	rs, ok := s.(recordedSnapshot)
	if !ok {
		return
	}
	r.add(Command{Op: OpRestore, Values: []float64{float64(rs.seq)}})
}

// Image returns a blank image in the background colour.
func (r *Recorder) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, r.w, r.h))
	draw.Draw(img, img.Bounds(), &image.Uniform{r.bg}, image.Point{}, draw.Src)
	return img
}
