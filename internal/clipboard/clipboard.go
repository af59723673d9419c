// Package clipboard places finished drawings on the system clipboard as PNG.
package clipboard

import (
	"bytes"
	"errors"
	"image"
	"image/png"
)

// ErrUnsupported is returned on platforms without clipboard image support.
var ErrUnsupported = errors.New("clipboard image operations are not supported on this platform")

var errEmpty = errors.New("nothing to copy: the drawing is empty")

// encodePNG is the payload every backend publishes.
func encodePNG(img image.Image) ([]byte, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, errEmpty
	}
	var buf bytes.Buffer
	enc := png.Encoder{CompressionLevel: png.BestSpeed}
	if err := enc.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
