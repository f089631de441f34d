package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/AlexStarov/graphprint-GoLang-lib/command"
	"github.com/AlexStarov/graphprint-GoLang-lib/printer"
)

type session struct {
	p   *printer.Printer
	out io.Writer
}

type cliCommand struct {
	Name        string
	Usage       string
	MinArgs     int
	MaxArgs     int
	Handler     func(s *session, args []string) error
	Description string
}

func parseByte(s string) (byte, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 8)
	if err != nil {
		return 0, fmt.Errorf("invalid byte value %q", s)
	}
	return byte(v), nil
}

func parseBytes(args []string) ([]byte, error) {
	out := make([]byte, len(args))
	for i, a := range args {
		b, err := parseByte(a)
		if err != nil {
			return nil, err
		}
		out[i] = b
	}
	return out, nil
}

func byteCommand(name, usage, desc string, set func(p *printer.Printer, v byte) error) cliCommand {
	return cliCommand{
		Name: name, Usage: usage, MinArgs: 1, MaxArgs: 1,
		Handler: func(s *session, args []string) error {
			v, err := parseByte(args[0])
			if err != nil {
				return err
			}
			return set(s.p, v)
		},
		Description: desc,
	}
}

func switchCommand(name, desc string, set func(p *printer.Printer, on bool) error) cliCommand {
	return cliCommand{
		Name: name, Usage: name + " <on|off>", MinArgs: 1, MaxArgs: 1,
		Handler: func(s *session, args []string) error {
			on, err := command.ParseSwitch(args[0])
			if err != nil {
				return err
			}
			return set(s.p, on)
		},
		Description: desc,
	}
}

var cliCommands = map[string]cliCommand{}

func register(cmds ...cliCommand) {
	for _, c := range cmds {
		cliCommands[c.Name] = c
	}
}

func init() {
	register(
		cliCommand{
			Name: "init", Usage: "init", Handler: func(s *session, _ []string) error { return s.p.Init() },
			Description: "Reset the printer and push the configured defaults",
		},
		cliCommand{
			Name: "reset", Usage: "reset", Handler: func(s *session, _ []string) error { return s.p.Reset() },
			Description: "Reset the printer",
		},
		switchCommand("online", "Put the printer online or offline", (*printer.Printer).SetStatus),
		cliCommand{
			Name: "heat", Usage: "heat <dots> <time> <interval>", MinArgs: 3, MaxArgs: 3,
			Handler: func(s *session, args []string) error {
				v, err := parseBytes(args)
				if err != nil {
					return err
				}
				return s.p.SetControlParameter(v[0], v[1], v[2])
			},
			Description: "Set heating dots, time and interval",
		},
		byteCommand("sleep", "sleep <seconds>", "Set the idle time before sleeping", (*printer.Printer).SetSleepTime),
		switchCommand("double", "Double width on/off", (*printer.Printer).SetDoubleWidth),
		cliCommand{
			Name: "density", Usage: "density <density> <breaktime>", MinArgs: 2, MaxArgs: 2,
			Handler: func(s *session, args []string) error {
				v, err := parseBytes(args)
				if err != nil {
					return err
				}
				return s.p.SetPrintDensity(v[0], v[1])
			},
			Description: "Set print density and break time",
		},
		byteCommand("charset", "charset <n>", "Select the international character set",
			func(p *printer.Printer, v byte) error { return p.SetCharacterSet(command.CharacterSet(v)) }),
		byteCommand("codetable", "codetable <n>", "Select the code table",
			func(p *printer.Printer, v byte) error { return p.SetCodeTable(command.CodeTable(v)) }),
		cliCommand{
			Name: "feed", Usage: "feed [lines]", MaxArgs: 1,
			Handler: func(s *session, args []string) error {
				if len(args) == 0 {
					return s.p.Feed()
				}
				n, err := parseByte(args[0])
				if err != nil {
					return err
				}
				return s.p.FeedLines(n)
			},
			Description: "Feed one or more lines",
		},
		byteCommand("spacing", "spacing <dots>", "Set the line spacing", (*printer.Printer).SetLineSpacing),
		cliCommand{
			Name: "align", Usage: "align <left|center|right>", MinArgs: 1, MaxArgs: 1,
			Handler: func(s *session, args []string) error {
				a, err := command.ParseAlign(args[0])
				if err != nil {
					return err
				}
				return s.p.SetAlign(a)
			},
			Description: "Set the justification",
		},
		byteCommand("blank", "blank <n>", "Set the left blank, at most 47", (*printer.Printer).SetLeftBlank),
		switchCommand("bold", "Bold on/off", (*printer.Printer).SetBold),
		switchCommand("reverse", "White on black on/off", (*printer.Printer).SetReverse),
		switchCommand("updown", "Upside down on/off", (*printer.Printer).SetUpDown),
		switchCommand("underline", "Underline on/off", (*printer.Printer).SetUnderline),
		switchCommand("keypanel", "Enable or disable the panel key", (*printer.Printer).SetKeyPanel),
		cliCommand{
			Name: "readable", Usage: "readable <none|above|below|both>", MinArgs: 1, MaxArgs: 1,
			Handler: func(s *session, args []string) error {
				pos, err := command.ParseReadablePosition(args[0])
				if err != nil {
					return err
				}
				return s.p.SetBarcodeReadablePosition(pos)
			},
			Description: "Where the barcode text goes",
		},
		byteCommand("bcheight", "bcheight <dots>", "Set the barcode height", (*printer.Printer).SetBarcodeHeight),
		byteCommand("bcwidth", "bcwidth <2|3>", "Set the barcode bar width", (*printer.Printer).SetBarcodeWidth),
		cliCommand{
			Name: "barcode", Usage: "barcode <type> <data>", MinArgs: 2, MaxArgs: 2,
			Handler: func(s *session, args []string) error {
				kind, err := command.ParseBarcodeType(args[0])
				if err != nil {
					return err
				}
				return s.p.PrintBarcode(args[1], kind)
			},
			Description: "Print a barcode",
		},
		cliCommand{
			Name: "text", Usage: "text <words...>", MinArgs: 1, MaxArgs: -1,
			Handler:     func(s *session, args []string) error { return s.p.Println(strings.Join(args, " ")) },
			Description: "Print a line of text",
		},
		cliCommand{
			Name: "image", Usage: "image <file>", MinArgs: 1, MaxArgs: 1,
			Handler: func(s *session, args []string) error {
				img, err := loadImage(args[0])
				if err != nil {
					return err
				}
				return s.p.PrintImage(img)
			},
			Description: "Print a PNG, JPEG, GIF or BMP file",
		},
		cliCommand{
			Name: "raw", Usage: "raw <hex>", MinArgs: 1, MaxArgs: -1,
			Handler: func(s *session, args []string) error {
				b, err := hex.DecodeString(strings.Join(args, ""))
				if err != nil {
					return fmt.Errorf("invalid hex: %w", err)
				}
				_, err = s.p.Write(b)
				return err
			},
			Description: "Send raw bytes",
		},
		cliCommand{
			Name: "state", Usage: "state",
			Handler: func(s *session, _ []string) error {
				fmt.Fprintf(s.out, "%+v\n", s.p.State())
				return nil
			},
			Description: "Show the tracked printer state",
		},
	)
}

func commandNames() []string {
	names := make([]string, 0, len(cliCommands))
	for name := range cliCommands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func printHelp(w io.Writer) {
	for _, name := range commandNames() {
		c := cliCommands[name]
		fmt.Fprintf(w, "  %-34s %s\n", c.Usage, c.Description)
	}
}

// runCommand looks name up and runs it; MaxArgs -1 takes any number of
// arguments.
func runCommand(s *session, name string, args []string) error {
	cmd, ok := cliCommands[strings.ToLower(name)]
	if !ok {
		return fmt.Errorf("unknown command %q", name)
	}
	if len(args) < cmd.MinArgs || (cmd.MaxArgs >= 0 && len(args) > cmd.MaxArgs) {
		return fmt.Errorf("usage: %s", cmd.Usage)
	}
	return cmd.Handler(s, args)
}
