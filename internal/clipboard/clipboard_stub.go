//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import (
	"fmt"
	"image"
	"runtime"
)

// WriteImage reports ErrUnsupported after checking the drawing can be encoded.
func WriteImage(img image.Image) error {
	if _, err := encodePNG(img); err != nil {
		return err
	}
	return fmt.Errorf("%w (%s)", ErrUnsupported, runtime.GOOS)
}
