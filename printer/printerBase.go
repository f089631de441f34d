package printer

import (
	"github.com/AlexStarov/graphprint-GoLang-lib/command"
)

// Reset resets the printer; its state goes back to the defaults.
func (p *Printer) Reset() error {
	return p.Apply(command.Reset{})
}

// SetStatus puts the printer online or offline.
func (p *Printer) SetStatus(online bool) error {
	return p.Apply(command.SetStatus{Online: online})
}

// SetControlParameter sets heating dots, heating time and heating interval.
func (p *Printer) SetControlParameter(heatingDots, heatingTime, heatingInterval byte) error {
	return p.Apply(command.SetControlParameter{
		HeatingDots:     heatingDots,
		HeatingTime:     heatingTime,
		HeatingInterval: heatingInterval,
	})
}

// SetSleepTime sets the idle seconds before the printer sleeps.
func (p *Printer) SetSleepTime(seconds byte) error {
	return p.Apply(command.SetSleepTime{Seconds: seconds})
}

func (p *Printer) SetDoubleWidth(on bool) error {
	return p.Apply(command.SetDoubleWidth{On: on})
}

// SetPrintDensity sets the print density and the break time.
func (p *Printer) SetPrintDensity(density, breakTime byte) error {
	return p.Apply(command.SetPrintDensity{Density: density, BreakTime: breakTime})
}

func (p *Printer) SetCharacterSet(set command.CharacterSet) error {
	return p.Apply(command.SetCharacterSet{Set: set})
}

// SetCodeTable selects the code page; PrintText encodes with it afterwards.
func (p *Printer) SetCodeTable(table command.CodeTable) error {
	return p.Apply(command.SetCodeTable{Table: table})
}

// Feed advances a single line.
func (p *Printer) Feed() error {
	return p.Apply(command.Feed{})
}

// FeedLines advances n lines.
func (p *Printer) FeedLines(n byte) error {
	return p.Apply(command.FeedLines{Lines: n})
}

func (p *Printer) SetLineSpacing(dots byte) error {
	return p.Apply(command.SetLineSpacing{Spacing: dots})
}

func (p *Printer) SetAlign(mode command.Align) error {
	return p.Apply(command.SetAlign{Mode: mode})
}

// SetLeftBlank keeps n blank characters on the left, at most 47.
func (p *Printer) SetLeftBlank(n byte) error {
	return p.Apply(command.SetLeftBlank{Count: n})
}

func (p *Printer) SetBold(on bool) error {
	return p.Apply(command.SetBold{On: on})
}

func (p *Printer) SetReverse(on bool) error {
	return p.Apply(command.SetReverse{On: on})
}

func (p *Printer) SetUpDown(on bool) error {
	return p.Apply(command.SetUpDown{On: on})
}

func (p *Printer) SetUnderline(on bool) error {
	return p.Apply(command.SetUnderline{On: on})
}

// SetKeyPanel enables or disables the front panel key.
func (p *Printer) SetKeyPanel(on bool) error {
	return p.Apply(command.SetKeyPanel{On: on})
}

func (p *Printer) SetBarcodeReadablePosition(pos command.ReadablePosition) error {
	return p.Apply(command.SetBarcodeReadablePosition{Position: pos})
}

// SetBarcodeHeight sets the barcode height in dots, at least 1.
func (p *Printer) SetBarcodeHeight(dots byte) error {
	return p.Apply(command.SetBarcodeHeight{Height: dots})
}

// SetBarcodeWidth sets the bar width; only 2 and 3 exist.
func (p *Printer) SetBarcodeWidth(width byte) error {
	return p.Apply(command.SetBarcodeWidth{Width: width})
}

// PrintBarcode prints data as a barcode of type kind.
func (p *Printer) PrintBarcode(data string, kind command.BarcodeType) error {
	return p.Apply(command.PrintBarcode{Type: kind, Data: []byte(data)})
}
