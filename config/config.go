// Package config loads the quadcolor settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-theft-auto/quadcolor/vertexcolor"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Window holds the window and context settings.
type Window struct {
	Title     string `yaml:"title"`
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Resizable bool   `yaml:"resizable"`
	VSync     bool   `yaml:"vsync"`
}

// CenteredIn returns the top-left position that centers the window on a
// screen of the given size. The window's top-left corner stays on screen.
func (w Window) CenteredIn(screenWidth, screenHeight int) (x, y int) {
	return max((screenWidth-w.Width)/2, 0), max((screenHeight-w.Height)/2, 0)
}

// Config is the complete program configuration.
type Config struct {
	Window     Window      `yaml:"window"`
	Palette    [][]float32 `yaml:"palette"`
	ClearColor [4]float32  `yaml:"clear_color"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	cfg := Config{
		Window: Window{
			Title:     "TestSDLGL",
			Width:     1280,
			Height:    720,
			Resizable: true,
			VSync:     true,
		},
		ClearColor: [4]float32{0, 0, 0, 1},
	}
	for _, c := range vertexcolor.DefaultPalette {
		cfg.Palette = append(cfg.Palette, []float32{c[0], c[1], c[2]})
	}
	return cfg
}

// Load reads path and applies it over Default. Keys missing from the file
// keep their default value.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks sizes and color ranges.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	}
	if len(c.Palette) != vertexcolor.VertexCount {
		return fmt.Errorf("%w: palette has %d entries, want %d", ErrInvalid, len(c.Palette), vertexcolor.VertexCount)
	}
	for i, p := range c.Palette {
		if len(p) != vertexcolor.Channels {
			return fmt.Errorf("%w: palette[%d] has %d channels, want %d", ErrInvalid, i, len(p), vertexcolor.Channels)
		}
		if !vertexcolor.InRange(vertexcolor.Color{p[0], p[1], p[2]}) {
			return fmt.Errorf("%w: palette[%d] %v outside [0,1]", ErrInvalid, i, p)
		}
	}
	for _, v := range c.ClearColor {
		if !(v >= 0 && v <= 1) {
			return fmt.Errorf("%w: clear_color %v outside [0,1]", ErrInvalid, c.ClearColor)
		}
	}
	return nil
}

// Colors returns the palette as vertex colors. The config must be valid.
func (c Config) Colors() [vertexcolor.VertexCount]vertexcolor.Color {
	var out [vertexcolor.VertexCount]vertexcolor.Color
	for i, p := range c.Palette {
		out[i] = vertexcolor.Color{p[0], p[1], p[2]}
	}
	return out
}
