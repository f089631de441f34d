package command

import (
	"fmt"
	"strconv"
	"strings"
)

// CharacterSet selects the international character set (ESC R n).
type CharacterSet byte

const (
	USA CharacterSet = iota
	France
	Germany
	UK
	Denmark1
	Sweden
	Italy
	Spain1
	Japan
	Norway
	Denmark2
	Spain2
	LatinAmerica
	Korea
)

var characterSetNames = [...]string{
	"USA", "France", "Germany", "UK", "Denmark1", "Sweden", "Italy",
	"Spain1", "Japan", "Norway", "Denmark2", "Spain2", "LatinAmerica", "Korea",
}

func (c CharacterSet) String() string {
	if int(c) < len(characterSetNames) {
		return characterSetNames[c]
	}
	return "CharacterSet(" + strconv.Itoa(int(c)) + ")"
}

// CodeTable selects the code page used for bytes 0x80-0xFF (ESC t n). The
// values are the firmware's own numbering and are not contiguous.
type CodeTable byte

const (
	PC437      CodeTable = 0
	Katakana   CodeTable = 1
	PC850      CodeTable = 2
	PC860      CodeTable = 3
	PC863      CodeTable = 4
	PC865      CodeTable = 5
	WPC1251    CodeTable = 6
	PC866      CodeTable = 7
	MIK        CodeTable = 8
	PC755      CodeTable = 9
	Iran       CodeTable = 10
	PC862      CodeTable = 15
	WPC1252    CodeTable = 16
	WPC1253    CodeTable = 17
	PC852      CodeTable = 18
	PC858      CodeTable = 19
	IranII     CodeTable = 20
	Latvian    CodeTable = 21
	PC864      CodeTable = 22
	ISO8859_1  CodeTable = 23
	PC737      CodeTable = 24
	WPC1257    CodeTable = 25
	Thai       CodeTable = 26
	PC720      CodeTable = 27
	PC855      CodeTable = 28
	PC857      CodeTable = 29
	WPC1250    CodeTable = 30
	PC775      CodeTable = 31
	WPC1254    CodeTable = 32
	WPC1255    CodeTable = 33
	WPC1256    CodeTable = 34
	WPC1258    CodeTable = 35
	ISO8859_2  CodeTable = 36
	ISO8859_3  CodeTable = 37
	ISO8859_4  CodeTable = 38
	ISO8859_5  CodeTable = 39
	ISO8859_6  CodeTable = 40
	ISO8859_7  CodeTable = 41
	ISO8859_8  CodeTable = 42
	ISO8859_9  CodeTable = 43
	ISO8859_15 CodeTable = 44
	Thai2      CodeTable = 45
	PC856      CodeTable = 46
	PC874      CodeTable = 47
)

func (t CodeTable) String() string {
	return "CodeTable(" + strconv.Itoa(int(t)) + ")"
}

// Align is the justification mode (ESC a n).
type Align byte

const (
	Left Align = iota
	Center
	Right
)

func (a Align) String() string {
	switch a {
	case Left:
		return "left"
	case Center:
		return "center"
	case Right:
		return "right"
	}
	return "Align(" + strconv.Itoa(int(a)) + ")"
}

// ParseAlign accepts left, center/middle/centre and right.
func ParseAlign(s string) (Align, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left", "0":
		return Left, nil
	case "center", "centre", "middle", "1":
		return Center, nil
	case "right", "2":
		return Right, nil
	}
	return Left, fmt.Errorf("invalid alignment %q", s)
}

// ReadablePosition places the human readable text of a barcode (GS H n).
type ReadablePosition byte

const (
	ReadableNone ReadablePosition = iota
	ReadableAbove
	ReadableBelow
	ReadableBoth
)

func (r ReadablePosition) String() string {
	switch r {
	case ReadableNone:
		return "none"
	case ReadableAbove:
		return "above"
	case ReadableBelow:
		return "below"
	case ReadableBoth:
		return "both"
	}
	return "ReadablePosition(" + strconv.Itoa(int(r)) + ")"
}

// ParseReadablePosition accepts none/no, above, below and both.
func ParseReadablePosition(s string) (ReadablePosition, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "none", "no", "off", "0":
		return ReadableNone, nil
	case "above", "1":
		return ReadableAbove, nil
	case "below", "2":
		return ReadableBelow, nil
	case "both", "3":
		return ReadableBoth, nil
	}
	return ReadableNone, fmt.Errorf("invalid readable position %q", s)
}

// BarcodeType is the symbology passed to GS k.
type BarcodeType byte

const (
	UPCA BarcodeType = iota
	UPCE
	EAN13
	EAN8
	Code39
	I25
	Codabar
	Code93
	Code128
	Code11
	MSI
)

var barcodeNames = [...]string{
	"UPC-A", "UPC-E", "EAN13", "EAN8", "CODE39", "I25",
	"CODABAR", "CODE93", "CODE128", "CODE11", "MSI",
}

func (b BarcodeType) String() string {
	if int(b) < len(barcodeNames) {
		return barcodeNames[b]
	}
	return "BarcodeType(" + strconv.Itoa(int(b)) + ")"
}

// ParseBarcodeType accepts the names printed by String, case-insensitively,
// with or without the dash, or the numeric value.
func ParseBarcodeType(s string) (BarcodeType, error) {
	norm := strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "")
	for i, name := range barcodeNames {
		if strings.ReplaceAll(name, "-", "") == norm {
			return BarcodeType(i), nil
		}
	}
	if n, err := strconv.Atoi(norm); err == nil && n >= 0 && n < len(barcodeNames) {
		return BarcodeType(n), nil
	}
	return UPCA, fmt.Errorf("invalid barcode type %q", s)
}

// ParseSwitch reads on/off style words.
func ParseSwitch(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "on", "1", "true", "yes":
		return true, nil
	case "off", "0", "false", "no":
		return false, nil
	}
	return false, fmt.Errorf("invalid switch value %q", s)
}
