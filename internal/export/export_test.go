package export

import (
	"bytes"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/example/sketchpad/internal/canvas"
)

var white = color.RGBA{255, 255, 255, 255}

func TestFilenameUsesUnixMillis(t *testing.T) {
	now := time.UnixMilli(1700000000123)
	assert.Equal(t, "1700000000123.jpg", Filename(now, FormatJPEG))
	assert.Equal(t, "1700000000123.pdf", Filename(now, FormatPDF))
}

func TestParseFormat(t *testing.T) {
	for in, want := range map[string]Format{
		"":      FormatJPEG,
		"JPEG":  FormatJPEG,
		".jpg":  FormatJPEG,
		"png":   FormatPNG,
		" pdf ": FormatPDF,
	} {
		got, err := ParseFormat(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseFormat("gif")
	assert.Error(t, err)
}

func TestBlankExportIsBackground(t *testing.T) {
	bg := color.RGBA{30, 60, 90, 255}
	r := canvas.NewRaster(24, 16, bg)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, r, Options{Format: FormatPNG}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	b := img.Bounds()
	assert.Equal(t, 24, b.Dx())
	assert.Equal(t, 16, b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if got != bg {
				t.Fatalf("pixel %d,%d = %v, want %v", x, y, got, bg)
			}
		}
	}
}

func TestRecorderFallsBackToStandardEncoders(t *testing.T) {
	rec := canvas.NewRecorder(5, 5, white)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, rec, Options{Format: FormatPNG}))
	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, white, color.RGBAModel.Convert(img.At(2, 2)))
}

func TestEncodePDF(t *testing.T) {
	r := canvas.NewRaster(40, 20, white)
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, r, Options{Format: FormatPDF, Quality: 80}))
	assert.True(t, strings.HasPrefix(buf.String(), "%PDF-"))
}

func TestPDFPageMatchesSurface(t *testing.T) {
	for _, tc := range []struct {
		w, h int
		box  string
	}{
		{200, 100, "/MediaBox [0 0 200.00 100.00]"},
		{100, 200, "/MediaBox [0 0 100.00 200.00]"},
		{64, 64, "/MediaBox [0 0 64.00 64.00]"},
	} {
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, canvas.NewRaster(tc.w, tc.h, white), Options{Format: FormatPDF}))
		assert.Contains(t, buf.String(), tc.box, "%dx%d", tc.w, tc.h)
	}
}

func TestEncodeRejectsUnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Encode(&buf, canvas.NewRecorder(1, 1, white), Options{Format: "gif"})
	assert.Error(t, err)
}

func TestSaveWritesTimestampedFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	now := time.UnixMilli(42)
	path, err := Save(dir, canvas.NewRaster(8, 8, white), Options{}, now)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "42.jpg"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
}
