package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	_ "golang.org/x/image/bmp"

	"github.com/AlexStarov/graphprint-GoLang-lib/command"
	"github.com/AlexStarov/graphprint-GoLang-lib/config"
	logInternal "github.com/AlexStarov/graphprint-GoLang-lib/log"
	"github.com/AlexStarov/graphprint-GoLang-lib/printer"
)

const historyFile = ".graphprint_history"

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	logInternal.Stdlog.Debug().Str("file", path).Str("format", format).Msg("image loaded")
	return img, nil
}

func main() {
	os.Exit(execute(os.Args[1:], os.Stdout, os.Stderr))
}

// execute runs the command line and returns the process exit code. The
// printer is closed before it returns.
func execute(args []string, stdout, stderr io.Writer) (code int) {
	flags := flag.NewFlagSet("graphprint", flag.ContinueOnError)
	flags.SetOutput(stderr)
	cfgFile := flags.String("config", "graphprint.json", "Path to JSON config")
	device := flags.String("device", "", "Printer identifier, overrides the config (e.g. /dev/ttyS0, usb:0416:5011, tcp://host:9100)")
	logLevel := flags.String("log-level", "", "Log level, overrides the config")
	doInit := flags.Bool("init", false, "Reset the printer and push the configured defaults first")
	imagePath := flags.String("image", "", "Image file to print")
	text := flags.String("text", "", "Line of text to print")
	barcode := flags.String("barcode", "", "Barcode to print as TYPE:DATA (e.g. EAN13:400638133393)")
	shell := flags.Bool("shell", false, "Start the interactive shell")
	if err := flags.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}
	if *device != "" {
		cfg.Device = *device
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if err := logInternal.SetLevel(cfg.LogLevel); err != nil {
		fmt.Fprintf(stderr, "config error: %v\n", err)
		return 1
	}
	if cfg.LogDir != "" {
		if err := logInternal.EnableFileLog(cfg.LogDir); err != nil {
			fmt.Fprintf(stderr, "log error: %v\n", err)
			return 1
		}
		defer logInternal.DisableFileLog()
	}

	p := printer.NewSession(cfg.Dialer(), cfg.Options()...)
	if err := p.Open(cfg.Device); err != nil {
		logInternal.Errlog.Error().Err(err).Msg("cannot open printer")
		return 1
	}
	defer func() {
		err := p.Close()
		logInternal.PrintIfErr("failed to close printer", &err)
		if err != nil && code == 0 {
			code = 1
		}
	}()

	s := &session{p: p, out: stdout}
	if err := run(s, *doInit, *imagePath, *text, *barcode); err != nil {
		logInternal.Errlog.Error().Err(err).Msg("print failed")
		return 1
	}

	if flags.NArg() > 0 {
		if err := runCommand(s, flags.Arg(0), flags.Args()[1:]); err != nil {
			logInternal.Errlog.Error().Err(err).Msg("command failed")
			return 1
		}
		return 0
	}
	if *shell {
		runShell(s)
	}
	return 0
}

// run executes the one-shot flags in a fixed order: init, image, text,
// barcode.
func run(s *session, doInit bool, imagePath, text, barcode string) error {
	if doInit {
		if err := s.p.Init(); err != nil {
			return err
		}
	}
	if imagePath != "" {
		img, err := loadImage(imagePath)
		if err != nil {
			return err
		}
		if err := s.p.PrintImage(img); err != nil {
			return err
		}
	}
	if text != "" {
		if err := s.p.Println(text); err != nil {
			return err
		}
	}
	if barcode != "" {
		kind, data, ok := strings.Cut(barcode, ":")
		if !ok || data == "" {
			return fmt.Errorf("barcode %q: want TYPE:DATA", barcode)
		}
		t, err := command.ParseBarcodeType(kind)
		if err != nil {
			return err
		}
		if err := s.p.PrintBarcode(data, t); err != nil {
			return err
		}
	}
	return nil
}

func runShell(s *session) {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(input string) (c []string) {
		for _, name := range commandNames() {
			if strings.HasPrefix(name, strings.ToLower(input)) {
				c = append(c, name)
			}
		}
		return
	})

	if f, err := os.Open(historyFile); err == nil {
		line.ReadHistory(f)
		f.Close()
	}

	fmt.Fprintln(s.out, `Interactive mode, type "help" for commands, Ctrl-D to quit.`)
	for {
		input, err := line.Prompt("> ")
		if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
			fmt.Fprintln(s.out)
			break
		}
		if err != nil {
			logInternal.Errlog.Error().Err(err).Msg("prompt failed")
			break
		}
		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}
		line.AppendHistory(input)

		if input == "help" {
			printHelp(s.out)
			continue
		}
		if input == "quit" || input == "exit" {
			logInternal.LogMessage(logInternal.DEBUG, "shell closed")
			break
		}

		tokens := strings.Fields(input)
		if err := runCommand(s, tokens[0], tokens[1:]); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
		}
	}

	if f, err := os.Create(historyFile); err == nil {
		line.WriteHistory(f)
		f.Close()
	}
}
