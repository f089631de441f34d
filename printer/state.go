package printer

import (
	"github.com/AlexStarov/graphprint-GoLang-lib/command"
)

// State is the configuration the printer is believed to hold. It is
// updated after every directive that was written successfully.
type State struct {
	Online bool `json:"online"`

	// heating, see command.SetControlParameter
	HeatingDots     byte `json:"heatingDots"`
	HeatingTime     byte `json:"heatingTime"`
	HeatingInterval byte `json:"heatingInterval"`

	SleepSeconds byte `json:"sleepSeconds"`
	PrintDensity byte `json:"printDensity"`
	BreakTime    byte `json:"breakTime"`

	CharacterSet command.CharacterSet `json:"characterSet"`
	CodeTable    command.CodeTable    `json:"codeTable"`

	Align       command.Align `json:"align"`
	LeftBlank   byte          `json:"leftBlank"`
	LineSpacing byte          `json:"lineSpacing"`
	DoubleWidth bool          `json:"doubleWidth"`
	Bold        bool          `json:"bold"`
	Reverse     bool          `json:"reverse"`
	UpDown      bool          `json:"upDown"`
	Underline   bool          `json:"underline"`
	KeyPanel    bool          `json:"keyPanel"`

	ReadablePosition command.ReadablePosition `json:"readablePosition"`
	BarcodeHeight    byte                     `json:"barcodeHeight"`
	BarcodeWidth     byte                     `json:"barcodeWidth"`
}

// DefaultState returns the values Init pushes to the printer.
func DefaultState() State {
	return State{
		Online:           true,
		HeatingDots:      7,
		HeatingTime:      80,
		HeatingInterval:  2,
		SleepSeconds:     0,
		PrintDensity:     14,
		BreakTime:        4,
		CharacterSet:     command.USA,
		CodeTable:        command.PC437,
		Align:            command.Left,
		LineSpacing:      32,
		KeyPanel:         true,
		ReadablePosition: command.ReadableBelow,
		BarcodeHeight:    50,
		BarcodeWidth:     3,
	}
}

// InitDirectives returns the initialization sequence for s. The order is
// fixed: the firmware drops its state on reset and wants status and heating
// parameters before anything else.
func (s State) InitDirectives() []command.Directive {
	return []command.Directive{
		command.Reset{},
		command.SetStatus{Online: true},
		command.SetControlParameter{
			HeatingDots:     s.HeatingDots,
			HeatingTime:     s.HeatingTime,
			HeatingInterval: s.HeatingInterval,
		},
		command.SetPrintDensity{Density: s.PrintDensity, BreakTime: s.BreakTime},
		command.SetSleepTime{Seconds: s.SleepSeconds},
		command.SetCodeTable{Table: s.CodeTable},
		command.SetCharacterSet{Set: s.CharacterSet},
		command.SetBarcodeReadablePosition{Position: s.ReadablePosition},
	}
}

// apply records the effect of d. Reset returns to defaults.
func (s *State) apply(d command.Directive, defaults State) {
	switch d := d.(type) {
	case command.Reset:
		*s = defaults
	case command.SetStatus:
		s.Online = d.Online
	case command.SetControlParameter:
		s.HeatingDots, s.HeatingTime, s.HeatingInterval = d.HeatingDots, d.HeatingTime, d.HeatingInterval
	case command.SetSleepTime:
		s.SleepSeconds = d.Seconds
	case command.SetDoubleWidth:
		s.DoubleWidth = d.On
	case command.SetPrintDensity:
		s.PrintDensity, s.BreakTime = d.Density, d.BreakTime
	case command.SetCharacterSet:
		s.CharacterSet = d.Set
	case command.SetCodeTable:
		s.CodeTable = d.Table
	case command.SetLineSpacing:
		s.LineSpacing = d.Spacing
	case command.SetAlign:
		s.Align = d.Mode
	case command.SetLeftBlank:
		s.LeftBlank = d.Clamped()
	case command.SetBold:
		s.Bold = d.On
	case command.SetReverse:
		s.Reverse = d.On
	case command.SetUpDown:
		s.UpDown = d.On
	case command.SetUnderline:
		s.Underline = d.On
	case command.SetKeyPanel:
		s.KeyPanel = d.On
	case command.SetBarcodeReadablePosition:
		s.ReadablePosition = d.Position
	case command.SetBarcodeHeight:
		s.BarcodeHeight = d.Clamped()
	case command.SetBarcodeWidth:
		s.BarcodeWidth = d.Clamped()
	}
}
