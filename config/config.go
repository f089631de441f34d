package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	imgInternal "github.com/AlexStarov/graphprint-GoLang-lib/image"
	"github.com/AlexStarov/graphprint-GoLang-lib/printer"
)

// DefaultDevice is the serial port used when no device is configured.
const DefaultDevice = "/dev/ttyS0"

// ImageConfig mirrors image.Converter. A zero scaleFactor or darkness
// selects the converter default (2.0 and 1.0); there is no way to ask for
// a darkness of 0.
type ImageConfig struct {
	ScaleFactor float64 `json:"scaleFactor"`
	Darkness    float64 `json:"darkness"`
	Smooth      bool    `json:"smooth"`
	MaxWidth    int     `json:"maxWidth,omitempty"`
}

type Config struct {
	Device   string `json:"device"`
	BaudRate int    `json:"baudRate"`
	LPDQueue string `json:"lpdQueue,omitempty"`

	LogLevel string `json:"logLevel"`
	LogDir   string `json:"logDir,omitempty"`

	Image    ImageConfig   `json:"image"`
	Defaults printer.State `json:"defaults"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		Device:   DefaultDevice,
		BaudRate: printer.DefaultBaudRate,
		LPDQueue: printer.DefaultLPDQueue,
		LogLevel: "info",
		Image: ImageConfig{
			ScaleFactor: imgInternal.DefaultScaleFactor,
			Darkness:    imgInternal.DefaultDarkness,
			Smooth:      true,
		},
		Defaults: printer.DefaultState(),
	}
}

// Load reads path over the defaults; keys missing from the file keep their
// default value. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as indented JSON, creating the directory if needed.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write config %s: %w", path, err)
	}
	return nil
}

func (c Config) Dialer() *printer.Dialer {
	return &printer.Dialer{BaudRate: c.BaudRate, LPDQueue: c.LPDQueue}
}

func (c Config) Converter() *imgInternal.Converter {
	return &imgInternal.Converter{
		ScaleFactor: c.Image.ScaleFactor,
		Darkness:    c.Image.Darkness,
		Smooth:      c.Image.Smooth,
		MaxWidth:    c.Image.MaxWidth,
	}
}

// Options returns the printer options the configuration implies.
func (c Config) Options() []printer.Option {
	return []printer.Option{
		printer.WithConverter(c.Converter()),
		printer.WithDefaults(c.Defaults),
	}
}
