// Package config loads the board settings from a TOML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const fileName = "config.toml"

// Config holds the canvas size and the toolbar defaults.
type Config struct {
	Canvas  Canvas  `toml:"canvas"`
	Drawing Drawing `toml:"drawing"`
}

// Canvas is the drawable area in pixels.
type Canvas struct {
	Width  float64 `toml:"width"`
	Height float64 `toml:"height"`
}

// Drawing holds the initial toolbar state.
type Drawing struct {
	Tool        string  `toml:"tool"`
	StrokeColor string  `toml:"stroke_color"`
	StrokeWidth float64 `toml:"stroke_width"`
	EraserSize  float64 `toml:"eraser_size"`
	Background  string  `toml:"background"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Canvas: Canvas{Width: 1280, Height: 800},
		Drawing: Drawing{
			Tool:        "pen",
			StrokeColor: "#000000",
			StrokeWidth: 3,
			EraserSize:  20,
			Background:  "#ffffff",
		},
	}
}

// Path returns the default config location under the user config dir.
func Path() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(dir, "localboard", fileName)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.Validate()
}

// Validate rejects settings the board cannot work with.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size must be positive, got %gx%g", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Drawing.StrokeWidth <= 0 {
		return fmt.Errorf("stroke_width must be positive, got %g", c.Drawing.StrokeWidth)
	}
	if c.Drawing.EraserSize <= 0 {
		return fmt.Errorf("eraser_size must be positive, got %g", c.Drawing.EraserSize)
	}
	return nil
}

// Save writes c to path, creating its directory.
func Save(path string, c Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	return nil
}
