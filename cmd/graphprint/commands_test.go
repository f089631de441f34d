package main

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	imgInternal "github.com/AlexStarov/graphprint-GoLang-lib/image"
	"github.com/AlexStarov/graphprint-GoLang-lib/printer"
)

func newTestSession() (*session, *bytes.Buffer, *bytes.Buffer) {
	var wire, out bytes.Buffer
	p := printer.NewPrinter(&wire,
		printer.WithDelay(func(time.Duration) {}),
		printer.WithConverter(&imgInternal.Converter{ScaleFactor: 1}),
	)
	return &session{p: p, out: &out}, &wire, &out
}

func TestRunCommand(t *testing.T) {
	tests := []struct {
		line string
		want []byte
	}{
		{"reset", []byte{27, 64}},
		{"online off", []byte{27, 61, 0}},
		{"heat 7 80 2", []byte{27, 55, 7, 80, 2}},
		{"sleep 0x10", []byte{27, 56, 16, 0xFF}},
		{"density 14 4", []byte{18, 35, 142}},
		{"codetable 7", []byte{27, 116, 7}},
		{"feed", []byte{10}},
		{"feed 3", []byte{27, 74, 3}},
		{"ALIGN center", []byte{27, 97, 1}},
		{"blank 99", []byte{27, 66, 47}},
		{"bold on", []byte{27, 32, 1, 27, 69, 1}},
		{"underline off", []byte{27, 45, 0}},
		{"readable both", []byte{29, 72, 3}},
		{"bcwidth 1", []byte{29, 119, 2}},
		{"barcode code39 ABC", []byte{29, 107, 4, 'A', 'B', 'C', 0}},
		{"text hello  world", []byte("hello world\n")},
		{"raw 1b 40 0a", []byte{27, 64, 10}},
	}
	for _, tt := range tests {
		s, wire, _ := newTestSession()
		tokens := strings.Fields(tt.line)
		if err := runCommand(s, tokens[0], tokens[1:]); err != nil {
			t.Errorf("%q: %v", tt.line, err)
			continue
		}
		if !bytes.Equal(wire.Bytes(), tt.want) {
			t.Errorf("%q wrote % x, want % x", tt.line, wire.Bytes(), tt.want)
		}
	}
}

func TestRunCommandErrors(t *testing.T) {
	for _, line := range []string{
		"frobnicate",
		"bold",
		"bold maybe",
		"heat 1 2",
		"sleep 300",
		"align up",
		"barcode qr data",
		"raw zz",
		"reset now",
	} {
		s, wire, _ := newTestSession()
		tokens := strings.Fields(line)
		if err := runCommand(s, tokens[0], tokens[1:]); err == nil {
			t.Errorf("%q should fail", line)
		}
		if wire.Len() != 0 {
			t.Errorf("%q wrote % x", line, wire.Bytes())
		}
	}
}

func TestStateAndHelp(t *testing.T) {
	s, _, out := newTestSession()
	if err := runCommand(s, "state", nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "HeatingTime:80") {
		t.Errorf("state output %q", out.String())
	}

	out.Reset()
	printHelp(out)
	for _, name := range []string{"barcode", "image", "init"} {
		if !strings.Contains(out.String(), name) {
			t.Errorf("help lacks %s", name)
		}
	}
}

func TestRunFlags(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 8, 1))
	for x := 1; x < 8; x += 2 {
		img.Set(x, 0, color.White)
	}
	path := filepath.Join(t.TempDir(), "dots.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
	f.Close()

	s, wire, _ := newTestSession()
	if err := run(s, false, path, "hi", "EAN8:1234567"); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x1D, 0x76, 0x30, 0x00, 1, 0, 1, 0, 0xAA, 0x0A}
	want = append(want, 'h', 'i', 0x0A)
	want = append(want, 29, 107, 3)
	want = append(want, "1234567"...)
	want = append(want, 0)
	if !bytes.Equal(wire.Bytes(), want) {
		t.Errorf("got % x\nwant % x", wire.Bytes(), want)
	}

	if err := run(s, false, "", "", "EAN8"); err == nil {
		t.Error("barcode without data should fail")
	}
	if err := run(s, false, filepath.Join(t.TempDir(), "missing.png"), "", ""); err == nil {
		t.Error("missing image should fail")
	}
}
