package image

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidImage is returned for images that cannot be framed: empty, or
// too large for the 16 bit header fields.
var ErrInvalidImage = errors.New("invalid image")

// MaxField is the largest value of a raster header field.
const MaxField = 0xFFFF

// Raster is a packed bitmap ready for GS v 0: rows top to bottom,
// BytesPerLine bytes each, leftmost dot in the most significant bit.
type Raster struct {
	Width, Height int
	BytesPerLine  int
	Data          []byte
}

// Row returns the packed bytes of row y.
func (r *Raster) Row(y int) []byte {
	return r.Data[y*r.BytesPerLine : (y+1)*r.BytesPerLine]
}

func (r *Raster) String() string {
	return fmt.Sprintf("Raster(%dx%d, %d bytes/line)", r.Width, r.Height, r.BytesPerLine)
}

// Pack packs src eight dots per byte, MSB first. Padding bits at the end of
// a row are zero. Every byte is then multiplied by darkness and clamped to
// a byte; darkness 1 leaves the data untouched.
func Pack(src Source, darkness float64) (*Raster, error) {
	width, height := src.Width(), src.Height()
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImage, width, height)
	}

	bytesPerLine := (width + 7) / 8
	if bytesPerLine > MaxField || height > MaxField {
		return nil, fmt.Errorf("%w: %dx%d exceeds the raster header", ErrInvalidImage, width, height)
	}

	data := make([]byte, bytesPerLine*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			if src.Ink(x, y) {
				// line_start + x / 8, 8 bits per byte
				data[y*bytesPerLine+x/8] |= 0x80 >> uint(x%8)
			}
		}
	}

	if darkness != 1 {
		for i, b := range data {
			data[i] = darken(b, darkness)
		}
	}

	return &Raster{Width: width, Height: height, BytesPerLine: bytesPerLine, Data: data}, nil
}

func darken(b byte, factor float64) byte {
	v := float64(b) * factor
	switch {
	case math.IsNaN(v) || v <= 0:
		return 0
	case v >= 0xFF:
		return 0xFF
	}
	return byte(v)
}
