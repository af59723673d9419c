// Package canvas provides the raster drawing surface the sketch tools render
// onto. Surface mirrors the small subset of a 2D canvas context the tools
// need: a current path, stroke and fill primitives, and whole-surface pixel
// snapshots used to redraw a live preview.
package canvas

import (
	"image"
	"image/color"
)

// Point is a position in surface-local pixel coordinates.
type Point struct {
	X, Y float64
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point { return Point{X: x, Y: y} }

// Add returns p translated by q.
func (p Point) Add(q Point) Point { return Point{p.X + q.X, p.Y + q.Y} }

// Snapshot is an opaque copy of every pixel of a surface. A snapshot can only
// be restored onto the surface that produced it.
type Snapshot interface {
	Size() (w, h int)
}

// Surface is the drawing context a gesture renders into.
type Surface interface {
	Size() (w, h int)
	// Background reports the colour used by Clear and by the eraser.
	Background() color.RGBA
	// Clear wipes the whole surface to the background colour.
	Clear()
	// FillBackground records c as the background colour and paints it.
	FillBackground(c color.RGBA)

	SetStrokeColor(c color.RGBA)
	SetFillColor(c color.RGBA)
	SetLineWidth(w float64)

	// BeginPath discards the current path.
	BeginPath()
	MoveTo(p Point)
	// LineTo behaves as MoveTo when the path has no current point.
	LineTo(p Point)
	// Arc appends a circular arc from angle a0 to a1 (radians), joined to the
	// current point by a straight segment when one exists.
	Arc(center Point, r, a0, a1 float64)
	// Rect appends a closed rectangle subpath. Negative sizes are allowed.
	Rect(x, y, w, h float64)
	ClosePath()
	// Stroke and Fill paint the current path without clearing it.
	Stroke()
	Fill()
	// StrokeRect and FillRect paint a rectangle without touching the path.
	StrokeRect(x, y, w, h float64)
	FillRect(x, y, w, h float64)

	Snapshot() Snapshot
	Restore(s Snapshot)
	// Image returns a copy of the current pixels.
	Image() *image.RGBA
}

// DefaultBackground is the colour a fresh surface is painted with.
var DefaultBackground = color.RGBA{255, 255, 255, 255}
