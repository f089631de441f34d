package image

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/nfnt/resize"
	"golang.org/x/image/draw"
)

// Bitmap is a one bit per pixel image.
type Bitmap struct {
	width, height int
	ink           []bool
}

// NewBitmap returns a blank (all white) bitmap.
func NewBitmap(width, height int) *Bitmap {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	return &Bitmap{width: width, height: height, ink: make([]bool, width*height)}
}

func (b *Bitmap) Width() int  { return b.width }
func (b *Bitmap) Height() int { return b.height }

func (b *Bitmap) Ink(x, y int) bool {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return false
	}
	return b.ink[y*b.width+x]
}

func (b *Bitmap) Set(x, y int, ink bool) {
	if x < 0 || y < 0 || x >= b.width || y >= b.height {
		return
	}
	b.ink[y*b.width+x] = ink
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%d,%d)", b.width, b.height)
}

// Crop keeps the leftmost width columns.
func (b *Bitmap) Crop(width int) *Bitmap {
	if width >= b.width {
		return b
	}
	out := NewBitmap(width, b.height)
	for y := 0; y < b.height; y++ {
		copy(out.ink[y*width:(y+1)*width], b.ink[y*b.width:y*b.width+width])
	}
	return out
}

// Gray renders the bitmap as black on white.
func (b *Bitmap) Gray() *image.Gray {
	g := image.NewGray(image.Rect(0, 0, b.width, b.height))
	for i, ink := range b.ink {
		if !ink {
			g.Pix[i] = 0xFF
		}
	}
	return g
}

// Binarize maps img to a bitmap without dithering: only opaque pure black
// becomes ink.
func Binarize(img image.Image) *Bitmap {
	r := img.Bounds()
	b := NewBitmap(r.Dx(), r.Dy())
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			b.ink[y*b.width+x] = isBlack(img.At(r.Min.X+x, r.Min.Y+y))
		}
	}
	return b
}

func isBlack(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r == 0 && g == 0 && b == 0 && a == 0xFFFF
}

// threshold turns a scaled grey rendering back into a bitmap, cutting at
// mid grey so edges stay crisp.
func threshold(img image.Image) *Bitmap {
	r := img.Bounds()
	b := NewBitmap(r.Dx(), r.Dy())
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			g := color.GrayModel.Convert(img.At(r.Min.X+x, r.Min.Y+y)).(color.Gray)
			b.ink[y*b.width+x] = g.Y < 0x80
		}
	}
	return b
}

// Scale resizes b by factor in both axes, truncating the new size. Smooth
// scaling interpolates bilinearly and re-thresholds; otherwise nearest
// neighbour is used.
func Scale(b *Bitmap, factor float64, smooth bool) (*Bitmap, error) {
	if factor <= 0 || math.IsNaN(factor) || math.IsInf(factor, 0) {
		return nil, fmt.Errorf("%w: scale factor %v", ErrInvalidImage, factor)
	}
	fw := math.Floor(float64(b.width) * factor)
	fh := math.Floor(float64(b.height) * factor)
	if fw < 1 || fh < 1 {
		return nil, fmt.Errorf("%w: %s scaled by %v is empty", ErrInvalidImage, b, factor)
	}
	// checked before allocating anything at the new size
	if math.Ceil(fw/8) > MaxField || fh > MaxField {
		return nil, fmt.Errorf("%w: %s scaled by %v exceeds the raster header", ErrInvalidImage, b, factor)
	}
	w, h := int(fw), int(fh)
	if w == b.width && h == b.height {
		return b, nil
	}

	src := b.Gray()
	if smooth {
		return threshold(resize.Resize(uint(w), uint(h), src, resize.Bilinear)), nil
	}
	dst := image.NewGray(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return threshold(dst), nil
}
