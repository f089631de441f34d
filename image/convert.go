package image

import (
	"fmt"
	"image"

	logInternal "github.com/AlexStarov/graphprint-GoLang-lib/log"
)

// Defaults used when the matching Converter field is zero.
const (
	DefaultScaleFactor = 2.0
	DefaultDarkness    = 1.0
)

type Converter struct {
	// Output size is source size times ScaleFactor. Zero means
	// DefaultScaleFactor.
	ScaleFactor float64

	// Multiplier applied to every packed byte. Zero means DefaultDarkness.
	Darkness float64

	// Interpolate while scaling instead of picking the nearest dot.
	Smooth bool

	// The maximum line width of the printer, in dots. Wider rasters are
	// cropped on the right; zero disables the limit.
	MaxWidth int
}

// NewConverter returns a converter with the default scale and darkness and
// smooth scaling.
func NewConverter() *Converter {
	return &Converter{ScaleFactor: DefaultScaleFactor, Darkness: DefaultDarkness, Smooth: true}
}

func (c *Converter) scale() float64 {
	if c.ScaleFactor == 0 {
		return DefaultScaleFactor
	}
	return c.ScaleFactor
}

func (c *Converter) darkness() float64 {
	if c.Darkness == 0 {
		return DefaultDarkness
	}
	return c.Darkness
}

// ToRaster binarizes, scales and packs img.
func (c *Converter) ToRaster(img image.Image) (*Raster, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: no image", ErrInvalidImage)
	}
	sz := img.Bounds().Size()
	if sz.X <= 0 || sz.Y <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidImage, sz.X, sz.Y)
	}

	scaled, err := Scale(Binarize(img), c.scale(), c.Smooth)
	if err != nil {
		return nil, err
	}
	if c.MaxWidth > 0 && scaled.Width() > c.MaxWidth {
		// truncate if image is too large
		scaled = scaled.Crop(c.MaxWidth)
	}

	r, err := Pack(scaled, c.darkness())
	if err != nil {
		return nil, err
	}
	logInternal.Stdlog.Debug().
		Int("src_width", sz.X).
		Int("src_height", sz.Y).
		Stringer("raster", r).
		Msg("image rasterized")
	return r, nil
}

// Print rasterizes img and hands the result to target.
func (c *Converter) Print(img image.Image, target Target) error {
	r, err := c.ToRaster(img)
	if err != nil {
		return err
	}
	return target.WriteRaster(r)
}
