package command

import (
	"github.com/AlexStarov/graphprint-GoLang-lib/util"
)

// Device limits applied before encoding.
const (
	MaxLeftBlank     = 47
	MinBarcodeHeight = 1
	MinBarcodeWidth  = 2
	MaxBarcodeWidth  = 3
)

// Reset (ESC @) clears the printer state. The firmware needs SettleDelay
// before it accepts the next command.
type Reset struct{}

func (Reset) Encode() Sequence { return Sequence{write(Esc, '@'), pause(SettleDelay)} }
func (Reset) Name() string     { return "reset" }

// SetStatus (ESC = n) puts the printer online or offline.
type SetStatus struct{ Online bool }

func (d SetStatus) Encode() Sequence { return Sequence{write(Esc, '=', util.Bool(d.Online))} }
func (SetStatus) Name() string       { return "status" }

// SetControlParameter (ESC 7 n1 n2 n3) sets the heating parameters: max
// heating dots in units of 8 dots, heating time and heating interval in
// units of 10µs.
type SetControlParameter struct {
	HeatingDots     byte
	HeatingTime     byte
	HeatingInterval byte
}

func (d SetControlParameter) Encode() Sequence {
	return Sequence{write(Esc, '7', d.HeatingDots, d.HeatingTime, d.HeatingInterval)}
}
func (SetControlParameter) Name() string { return "control-parameter" }

// SetSleepTime (ESC 8 n) sets how many idle seconds pass before the printer
// sleeps. The trailing 0xFF has to wait for SettleDelay.
type SetSleepTime struct{ Seconds byte }

func (d SetSleepTime) Encode() Sequence {
	return Sequence{write(Esc, '8', d.Seconds), pause(SettleDelay), write(0xFF)}
}
func (SetSleepTime) Name() string { return "sleep-time" }

// SetDoubleWidth switches double width printing with ESC SO / ESC DC4.
type SetDoubleWidth struct{ On bool }

func (d SetDoubleWidth) Encode() Sequence {
	if d.On {
		return Sequence{write(Esc, 14)}
	}
	return Sequence{write(Esc, 20)}
}
func (SetDoubleWidth) Name() string { return "double-width" }

// SetPrintDensity (DC2 # n): density in the low five bits, break time in
// the high three. Out of range values are sent as given.
type SetPrintDensity struct {
	Density   byte
	BreakTime byte
}

func (d SetPrintDensity) Encode() Sequence {
	return Sequence{write(DC2, '#', d.BreakTime<<5|d.Density)}
}
func (SetPrintDensity) Name() string { return "print-density" }

// SetCharacterSet (ESC R n).
type SetCharacterSet struct{ Set CharacterSet }

func (d SetCharacterSet) Encode() Sequence { return Sequence{write(Esc, 'R', byte(d.Set))} }
func (SetCharacterSet) Name() string       { return "character-set" }

// SetCodeTable (ESC t n).
type SetCodeTable struct{ Table CodeTable }

func (d SetCodeTable) Encode() Sequence { return Sequence{write(Esc, 't', byte(d.Table))} }
func (SetCodeTable) Name() string       { return "code-table" }

// Feed prints the buffer and advances one line (LF).
type Feed struct{}

func (Feed) Encode() Sequence { return Sequence{write(LF)} }
func (Feed) Name() string     { return "feed" }

// FeedLines (ESC J n) advances the paper by n lines.
type FeedLines struct{ Lines byte }

func (d FeedLines) Encode() Sequence { return Sequence{write(Esc, 'J', d.Lines)} }
func (FeedLines) Name() string       { return "feed-lines" }

// SetLineSpacing (ESC 3 n) sets the line spacing in dots.
type SetLineSpacing struct{ Spacing byte }

func (d SetLineSpacing) Encode() Sequence { return Sequence{write(Esc, '3', d.Spacing)} }
func (SetLineSpacing) Name() string       { return "line-spacing" }

// SetAlign (ESC a n).
type SetAlign struct{ Mode Align }

func (d SetAlign) Encode() Sequence { return Sequence{write(Esc, 'a', byte(d.Mode))} }
func (SetAlign) Name() string       { return "align" }

// SetLeftBlank (ESC B n) keeps n blank characters on the left, at most 47.
type SetLeftBlank struct{ Count byte }

// Clamped returns the count actually sent to the printer.
func (d SetLeftBlank) Clamped() byte {
	if d.Count >= MaxLeftBlank {
		return MaxLeftBlank
	}
	return d.Count
}

func (d SetLeftBlank) Encode() Sequence { return Sequence{write(Esc, 'B', d.Clamped())} }
func (SetLeftBlank) Name() string       { return "left-blank" }

// SetBold sends both ESC SP n and ESC E n.
type SetBold struct{ On bool }

func (d SetBold) Encode() Sequence {
	v := util.Bool(d.On)
	return Sequence{write(Esc, ' ', v, Esc, 'E', v)}
}
func (SetBold) Name() string { return "bold" }

// SetReverse (GS B n) prints white on black.
type SetReverse struct{ On bool }

func (d SetReverse) Encode() Sequence { return Sequence{write(GS, 'B', util.Bool(d.On))} }
func (SetReverse) Name() string       { return "reverse" }

// SetUpDown (ESC { n) prints upside down.
type SetUpDown struct{ On bool }

func (d SetUpDown) Encode() Sequence { return Sequence{write(Esc, '{', util.Bool(d.On))} }
func (SetUpDown) Name() string       { return "up-down" }

// SetUnderline (ESC - n).
type SetUnderline struct{ On bool }

func (d SetUnderline) Encode() Sequence { return Sequence{write(Esc, '-', util.Bool(d.On))} }
func (SetUnderline) Name() string       { return "underline" }

// SetKeyPanel (ESC c 5 n) enables or disables the front panel key.
type SetKeyPanel struct{ On bool }

func (d SetKeyPanel) Encode() Sequence { return Sequence{write(Esc, 'c', '5', util.Bool(d.On))} }
func (SetKeyPanel) Name() string       { return "key-panel" }

// SetBarcodeReadablePosition (GS H n).
type SetBarcodeReadablePosition struct{ Position ReadablePosition }

func (d SetBarcodeReadablePosition) Encode() Sequence {
	return Sequence{write(GS, 'H', byte(d.Position))}
}
func (SetBarcodeReadablePosition) Name() string { return "barcode-readable" }

// SetBarcodeHeight (GS h n) sets the barcode height in dots, at least 1.
type SetBarcodeHeight struct{ Height byte }

// Clamped returns the height actually sent to the printer.
func (d SetBarcodeHeight) Clamped() byte {
	if d.Height <= MinBarcodeHeight {
		return MinBarcodeHeight
	}
	return d.Height
}

func (d SetBarcodeHeight) Encode() Sequence { return Sequence{write(GS, 'h', d.Clamped())} }
func (SetBarcodeHeight) Name() string       { return "barcode-height" }

// SetBarcodeWidth (GS w n). The firmware only knows widths 2 and 3.
type SetBarcodeWidth struct{ Width byte }

// Clamped returns the width actually sent to the printer.
func (d SetBarcodeWidth) Clamped() byte {
	if d.Width <= MinBarcodeWidth {
		return MinBarcodeWidth
	}
	return MaxBarcodeWidth
}

func (d SetBarcodeWidth) Encode() Sequence { return Sequence{write(GS, 'w', d.Clamped())} }
func (SetBarcodeWidth) Name() string       { return "barcode-width" }

// PrintBarcode (GS k m d1...dk NUL).
type PrintBarcode struct {
	Type BarcodeType
	Data []byte
}

func (d PrintBarcode) Encode() Sequence {
	b := make([]byte, 0, len(d.Data)+4)
	b = append(b, GS, 'k', byte(d.Type))
	b = append(b, d.Data...)
	b = append(b, 0)
	return Sequence{write(b...)}
}
func (PrintBarcode) Name() string { return "barcode" }

// PrintImage frames a packed raster with GS v 0 (mode 0, width in bytes and
// height in dots, both 16 bit little endian) and advances the paper with a
// trailing LF.
type PrintImage struct {
	BytesPerLine int
	Height       int
	Data         []byte
}

// Header returns the 8 byte GS v 0 header.
func (d PrintImage) Header() ([]byte, error) {
	xy := make([]byte, 0, 4)
	for _, v := range []int{d.BytesPerLine, d.Height} {
		f, err := util.IntLowHigh(v, 2)
		if err != nil {
			return nil, err
		}
		xy = append(xy, f...)
	}
	return append([]byte{GS, 'v', '0', 0x00}, xy...), nil
}

// Encode panics if the dimensions do not fit in the header; callers build
// PrintImage from a validated raster.
func (d PrintImage) Encode() Sequence {
	header, err := d.Header()
	if err != nil {
		panic("command: " + err.Error())
	}
	return Sequence{write(header...), write(d.Data...), write(LF)}
}
func (PrintImage) Name() string { return "image" }

// Text sends raw, already encoded text.
type Text struct{ Data []byte }

func (d Text) Encode() Sequence { return Sequence{write(d.Data...)} }
func (Text) Name() string       { return "text" }

func (Reset) directive()                      {}
func (SetStatus) directive()                  {}
func (SetControlParameter) directive()        {}
func (SetSleepTime) directive()               {}
func (SetDoubleWidth) directive()             {}
func (SetPrintDensity) directive()            {}
func (SetCharacterSet) directive()            {}
func (SetCodeTable) directive()               {}
func (Feed) directive()                       {}
func (FeedLines) directive()                  {}
func (SetLineSpacing) directive()             {}
func (SetAlign) directive()                   {}
func (SetLeftBlank) directive()               {}
func (SetBold) directive()                    {}
func (SetReverse) directive()                 {}
func (SetUpDown) directive()                  {}
func (SetUnderline) directive()               {}
func (SetKeyPanel) directive()                {}
func (SetBarcodeReadablePosition) directive() {}
func (SetBarcodeHeight) directive()           {}
func (SetBarcodeWidth) directive()            {}
func (PrintBarcode) directive()               {}
func (PrintImage) directive()                 {}
func (Text) directive()                       {}
