package printer

import (
	"fmt"
	"image"

	"github.com/AlexStarov/graphprint-GoLang-lib/command"
	imgInternal "github.com/AlexStarov/graphprint-GoLang-lib/image"
	logInternal "github.com/AlexStarov/graphprint-GoLang-lib/log"
)

// PrintImage rasterizes img with the printer's converter and prints it,
// followed by a line feed. A printer that is not ready returns ErrNotReady
// and an image that cannot be framed ErrInvalidImage; in both cases
// nothing is written.
func (p *Printer) PrintImage(img image.Image) error {
	p.Lock()
	defer p.Unlock()

	if !p.ready() {
		logInternal.Stdlog.Warn().Msg("printer is not ready, image skipped")
		return ErrNotReady
	}
	r, err := p.conv.ToRaster(img)
	if err != nil {
		return err
	}
	return p.writeRaster(r)
}

// WriteRaster prints an already packed raster.
func (p *Printer) WriteRaster(r *imgInternal.Raster) error {
	p.Lock()
	defer p.Unlock()

	if !p.ready() {
		return ErrNotReady
	}
	return p.writeRaster(r)
}

func (p *Printer) writeRaster(r *imgInternal.Raster) error {
	if r == nil || r.Width <= 0 || r.Height <= 0 || len(r.Data) != r.BytesPerLine*r.Height {
		return fmt.Errorf("%w: malformed raster %v", ErrInvalidImage, r)
	}
	d := command.PrintImage{BytesPerLine: r.BytesPerLine, Height: r.Height, Data: r.Data}
	if _, err := d.Header(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidImage, err)
	}

	logInternal.Stdlog.Debug().Stringer("raster", r).Msg("printing image")
	return p.apply(d)
}
