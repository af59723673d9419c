package canvas

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"log"
	"math"

	"github.com/gogpu/gg"
)

// Raster is a Surface backed by a gogpu/gg software context. The pixel buffer
// is owned by the Raster so snapshots are plain slice copies.
type Raster struct {
	ctx *gg.Context
	pm  *gg.Pixmap

	bg     color.RGBA
	stroke color.RGBA
	fill   color.RGBA
	width  float64

	path pathBuilder
}

var _ Surface = (*Raster)(nil)

type pixelSnapshot struct {
	w, h int
	pix  []uint8
}

func (s *pixelSnapshot) Size() (int, int) { return s.w, s.h }

// NewRaster creates a w×h surface painted with bg.
func NewRaster(w, h int, bg color.RGBA) *Raster {
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	r := &Raster{
		bg:     bg,
		stroke: color.RGBA{0, 0, 0, 255},
		fill:   color.RGBA{0, 0, 0, 255},
		width:  1,
	}
	r.alloc(w, h)
	r.Clear()
	return r
}

func (r *Raster) alloc(w, h int) {
	if r.ctx != nil {
		_ = r.ctx.Close()
	}
	r.pm = gg.NewPixmap(w, h)
	r.ctx = gg.NewContext(w, h, gg.WithPixmap(r.pm))
	r.ctx.SetLineWidth(r.width)
	r.path.reset()
}

// Resize reallocates the surface and repaints the background. Existing
// pixels are discarded, matching a canvas whose width or height is assigned.
func (r *Raster) Resize(w, h int) error {
	if w < 1 || h < 1 {
		return fmt.Errorf("invalid surface size %dx%d", w, h)
	}
	if cw, ch := r.Size(); cw == w && ch == h {
		return nil
	}
	r.alloc(w, h)
	r.Clear()
	return nil
}

func (r *Raster) Size() (int, int) { return r.pm.Width(), r.pm.Height() }

func (r *Raster) Background() color.RGBA { return r.bg }

func (r *Raster) Clear() {
	r.pm.Clear(gg.FromColor(r.bg))
}

func (r *Raster) FillBackground(c color.RGBA) {
	r.bg = c
	r.Clear()
}

func (r *Raster) SetStrokeColor(c color.RGBA) { r.stroke = c }

func (r *Raster) SetFillColor(c color.RGBA) { r.fill = c }

func (r *Raster) SetLineWidth(w float64) {
	if w <= 0 {
		return
	}
	r.width = w
	r.ctx.SetLineWidth(w)
}

func (r *Raster) BeginPath() { r.path.reset() }

func (r *Raster) MoveTo(p Point) { r.path.moveTo(p) }

func (r *Raster) LineTo(p Point) { r.path.lineTo(p) }

func (r *Raster) Arc(c Point, radius, a0, a1 float64) { r.path.arc(c, radius, a0, a1) }

func (r *Raster) Rect(x, y, w, h float64) { r.path.rect(x, y, w, h) }

func (r *Raster) ClosePath() { r.path.closePath() }

func (r *Raster) Stroke() {
	if r.path.degenerate() {
		return
	}
	r.replay(&r.path)
	r.ctx.SetColor(r.stroke)
	if err := r.ctx.Stroke(); err != nil {
		log.Printf("stroke: %v", err)
	}
}

func (r *Raster) Fill() {
	if r.path.degenerate() {
		return
	}
	r.replay(&r.path)
	r.ctx.SetColor(r.fill)
	if err := r.ctx.Fill(); err != nil {
		log.Printf("fill: %v", err)
	}
}

func (r *Raster) StrokeRect(x, y, w, h float64) {
	var b pathBuilder
	b.rect(x, y, w, h)
	if b.degenerate() {
		return
	}
	r.replay(&b)
	r.ctx.SetColor(r.stroke)
	if err := r.ctx.Stroke(); err != nil {
		log.Printf("stroke rect: %v", err)
	}
}

func (r *Raster) FillRect(x, y, w, h float64) {
	if w == 0 || h == 0 {
		return
	}
	var b pathBuilder
	b.rect(x, y, w, h)
	r.replay(&b)
	r.ctx.SetColor(r.fill)
	if err := r.ctx.Fill(); err != nil {
		log.Printf("fill rect: %v", err)
	}
}

// replay loads b into the gg context, replacing whatever path it held.
func (r *Raster) replay(b *pathBuilder) {
	r.ctx.ClearPath()
	started := false
	for _, s := range b.segs {
		switch s.kind {
		case segMove:
			r.ctx.MoveTo(s.p.X, s.p.Y)
			started = true
		case segLine:
			r.ctx.LineTo(s.p.X, s.p.Y)
		case segArc:
			if started {
				r.ctx.LineTo(s.p.X+s.r*math.Cos(s.a0), s.p.Y+s.r*math.Sin(s.a0))
			}
			r.ctx.DrawArc(s.p.X, s.p.Y, s.r, s.a0, s.a1)
			started = true
		case segClose:
			r.ctx.ClosePath()
		}
	}
}

func (r *Raster) Snapshot() Snapshot {
	w, h := r.Size()
	s := &pixelSnapshot{w: w, h: h, pix: make([]uint8, len(r.pm.Data()))}
	copy(s.pix, r.pm.Data())
	return s
}

// Restore copies s back over the surface. Snapshots taken before a resize, or
// by another implementation, are ignored.
func (r *Raster) Restore(s Snapshot) {
	ps, ok := s.(*pixelSnapshot)
	if !ok || ps == nil {
		return
	}
	w, h := r.Size()
	if ps.w != w || ps.h != h {
		return
	}
	copy(r.pm.Data(), ps.pix)
}

func (r *Raster) Image() *image.RGBA { return r.pm.ToImage() }

// EncodeJPEG writes the current pixels as JPEG at the given quality.
func (r *Raster) EncodeJPEG(w io.Writer, quality int) error {
	return r.ctx.EncodeJPEG(w, quality)
}

// EncodePNG writes the current pixels as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	return r.ctx.EncodePNG(w)
}

// Close releases the gg context.
func (r *Raster) Close() error {
	return r.ctx.Close()
}
