// Package export encodes the pixels of a drawing surface into a downloadable
// image file.
package export

import (
	"bytes"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jung-kurt/gofpdf"

	"github.com/example/sketchpad/internal/canvas"
)

type Format string

const (
	FormatJPEG Format = "jpg"
	FormatPNG  Format = "png"
	FormatPDF  Format = "pdf"
)

// DefaultQuality matches the JPEG quality browsers use for canvas exports.
const DefaultQuality = 92

// ParseFormat accepts a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".") {
	case "", "jpg", "jpeg":
		return FormatJPEG, nil
	case "png":
		return FormatPNG, nil
	case "pdf":
		return FormatPDF, nil
	}
	return "", fmt.Errorf("unsupported export format %q", s)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string { return "." + string(f) }

// Filename names an export after the time it was taken, in Unix milliseconds.
func Filename(now time.Time, f Format) string {
	return fmt.Sprintf("%d%s", now.UnixMilli(), f.Ext())
}

// Options controls how a surface is exported.
type Options struct {
	Format  Format
	Quality int
}

func (o Options) quality() int {
	if o.Quality < 1 || o.Quality > 100 {
		return DefaultQuality
	}
	return o.Quality
}

type jpegEncoder interface {
	EncodeJPEG(w io.Writer, quality int) error
}

type pngEncoder interface {
	EncodePNG(w io.Writer) error
}

// Encode writes the current pixels of s to w.
func Encode(w io.Writer, s canvas.Surface, opts Options) error {
	switch opts.Format {
	case "", FormatJPEG:
		return encodeJPEG(w, s, opts.quality())
	case FormatPNG:
		if e, ok := s.(pngEncoder); ok {
			return e.EncodePNG(w)
		}
		return png.Encode(w, s.Image())
	case FormatPDF:
		return encodePDF(w, s, opts.quality())
	}
	return fmt.Errorf("unsupported export format %q", opts.Format)
}

func encodeJPEG(w io.Writer, s canvas.Surface, quality int) error {
	if e, ok := s.(jpegEncoder); ok {
		return e.EncodeJPEG(w, quality)
	}
	return jpeg.Encode(w, s.Image(), &jpeg.Options{Quality: quality})
}

// encodePDF places the JPEG raster on a single page of the same size, one
// point per pixel.
func encodePDF(w io.Writer, s canvas.Surface, quality int) error {
	var buf bytes.Buffer
	if err := encodeJPEG(&buf, s, quality); err != nil {
		return err
	}
	width, height := s.Size()
	// gofpdf swaps the dimensions for "L", so the size is given as is with "P".
	size := gofpdf.SizeType{Wd: float64(width), Ht: float64(height)}
	pdf := gofpdf.NewCustom(&gofpdf.InitType{OrientationStr: "P", UnitStr: "pt", Size: size})
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPageFormat("P", size)
	opts := gofpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader("surface", opts, &buf)
	pdf.ImageOptions("surface", 0, 0, float64(width), float64(height), false, opts, 0, "")
	if pdf.Err() {
		return fmt.Errorf("build pdf: %w", pdf.Error())
	}
	return pdf.Output(w)
}

// Save writes s into dir under a timestamped name and returns the path.
func Save(dir string, s canvas.Surface, opts Options, now time.Time) (string, error) {
	if opts.Format == "" {
		opts.Format = FormatJPEG
	}
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export directory: %w", err)
	}
	path := filepath.Join(dir, Filename(now, opts.Format))
	if err := WriteFile(path, s, opts); err != nil {
		return "", err
	}
	return path, nil
}

// WriteFile encodes s into the file at path.
func WriteFile(path string, s canvas.Surface, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Encode(f, s, opts); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return fmt.Errorf("encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
