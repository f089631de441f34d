package printer

import (
	"fmt"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/AlexStarov/graphprint-GoLang-lib/command"
)

// codePages maps the printer's code tables to charmaps. Tables missing
// here get the text as UTF-8.
var codePages = map[command.CodeTable]*charmap.Charmap{
	command.PC437:      charmap.CodePage437,
	command.PC850:      charmap.CodePage850,
	command.PC860:      charmap.CodePage860,
	command.PC863:      charmap.CodePage863,
	command.PC865:      charmap.CodePage865,
	command.WPC1251:    charmap.Windows1251,
	command.PC866:      charmap.CodePage866,
	command.PC862:      charmap.CodePage862,
	command.WPC1252:    charmap.Windows1252,
	command.WPC1253:    charmap.Windows1253,
	command.PC852:      charmap.CodePage852,
	command.PC858:      charmap.CodePage858,
	command.ISO8859_1:  charmap.ISO8859_1,
	command.WPC1257:    charmap.Windows1257,
	command.PC855:      charmap.CodePage855,
	command.WPC1250:    charmap.Windows1250,
	command.WPC1254:    charmap.Windows1254,
	command.WPC1255:    charmap.Windows1255,
	command.WPC1256:    charmap.Windows1256,
	command.WPC1258:    charmap.Windows1258,
	command.ISO8859_2:  charmap.ISO8859_2,
	command.ISO8859_3:  charmap.ISO8859_3,
	command.ISO8859_4:  charmap.ISO8859_4,
	command.ISO8859_5:  charmap.ISO8859_5,
	command.ISO8859_6:  charmap.ISO8859_6,
	command.ISO8859_7:  charmap.ISO8859_7,
	command.ISO8859_8:  charmap.ISO8859_8,
	command.ISO8859_9:  charmap.ISO8859_9,
	command.ISO8859_15: charmap.ISO8859_15,
	command.PC874:      charmap.Windows874,
}

// EncodeText converts s to the bytes of code table t. Characters the table
// lacks are replaced.
func EncodeText(s string, t command.CodeTable) ([]byte, error) {
	cm, ok := codePages[t]
	if !ok {
		return []byte(s), nil
	}
	b, err := encoding.ReplaceUnsupported(cm.NewEncoder()).Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("encode text for %v: %w", t, err)
	}
	return b, nil
}

// PrintText writes s encoded for the current code table. The printer
// prints it once a line feed arrives.
func (p *Printer) PrintText(s string) error {
	p.Lock()
	defer p.Unlock()

	b, err := EncodeText(s, p.state.CodeTable)
	if err != nil {
		return err
	}
	return p.apply(command.Text{Data: b})
}

// Println writes s followed by a line feed.
func (p *Printer) Println(s string) error {
	if err := p.PrintText(s); err != nil {
		return err
	}
	return p.Feed()
}
