// Package config loads the paint app's settings from YAML.
package config

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"FingerPaint/internal/gesture"
	"FingerPaint/internal/state"

	"gopkg.in/yaml.v3"
)

// Config holds every tunable of the app. Colours are "#rrggbb" or "#rrggbbaa".
type Config struct {
	Background    string        `yaml:"background"`
	DefaultColour string        `yaml:"default_colour"`
	Pen           PenConfig     `yaml:"pen"`
	Touch         TouchConfig   `yaml:"touch"`
	Export        ExportConfig  `yaml:"export"`
	Palette       []ColourEntry `yaml:"palette"`
}

type PenConfig struct {
	Width       int     `yaml:"width"`
	ScaleFactor float32 `yaml:"scale_factor"`
	MinWidth    float32 `yaml:"min_width"`
	MaxWidth    float32 `yaml:"max_width"`
	// EraserWidth is the width selected together with the erase colour.
	EraserWidth int `yaml:"eraser_width"`
}

type TouchConfig struct {
	Tolerance    float32 `yaml:"tolerance"`
	DeadZoneTop  float32 `yaml:"dead_zone_top"`
	DeadZoneBase float32 `yaml:"dead_zone_bottom"`
}

type ExportConfig struct {
	// Dir is relative to the app's storage root unless absolute.
	Dir string `yaml:"dir"`
}

type ColourEntry struct {
	Name   string `yaml:"name"`
	Colour string `yaml:"colour"`
}

// Default returns the settings the app ships with.
func Default() *Config {
	return &Config{
		Background:    "#ffffff",
		DefaultColour: state.DefaultColorName,
		Pen: PenConfig{
			Width:       gesture.DefaultWidth,
			ScaleFactor: gesture.DefaultFactor,
			MinWidth:    gesture.MinWidth,
			MaxWidth:    gesture.MaxWidth,
			EraserWidth: 40,
		},
		Touch: TouchConfig{
			Tolerance:    state.DefaultTolerance,
			DeadZoneTop:  state.DefaultDeadZone.Top,
			DeadZoneBase: state.DefaultDeadZone.Bottom,
		},
		Export: ExportConfig{Dir: "Pictures/Paint"},
	}
}

// Load reads a YAML file over the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that values are usable.
func (c *Config) Validate() error {
	if _, err := ParseColour(c.Background); err != nil {
		return fmt.Errorf("background: %w", err)
	}
	if c.Pen.MinWidth <= 0 {
		return fmt.Errorf("pen.min_width must be > 0")
	}
	if c.Pen.MaxWidth < c.Pen.MinWidth {
		return fmt.Errorf("pen.max_width %v is below pen.min_width %v", c.Pen.MaxWidth, c.Pen.MinWidth)
	}
	if c.Pen.Width <= 0 {
		return fmt.Errorf("pen.width must be > 0")
	}
	if c.Pen.EraserWidth <= 0 {
		return fmt.Errorf("pen.eraser_width must be > 0")
	}
	if c.Touch.Tolerance < 0 || c.Touch.DeadZoneTop < 0 || c.Touch.DeadZoneBase < 0 {
		return fmt.Errorf("touch values must not be negative")
	}
	for i, e := range c.Palette {
		if e.Name == "" {
			return fmt.Errorf("palette[%d]: name is required", i)
		}
		if _, err := ParseColour(e.Colour); err != nil {
			return fmt.Errorf("palette[%d] %s: %w", i, e.Name, err)
		}
	}
	pal, _ := c.BuildPalette()
	if _, ok := pal.Lookup(c.DefaultColour); !ok {
		return fmt.Errorf("default_colour %q is not in the palette", c.DefaultColour)
	}
	return nil
}

// BackgroundColour returns the parsed background.
func (c *Config) BackgroundColour() color.NRGBA {
	bg, err := ParseColour(c.Background)
	if err != nil {
		return color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	}
	return bg
}

// BuildPalette returns the configured palette, or the built-in one when none
// is configured. The erase entry is always present and always last.
func (c *Config) BuildPalette() (state.Palette, error) {
	bg := c.BackgroundColour()
	if len(c.Palette) == 0 {
		return state.DefaultPalette(bg), nil
	}
	pal := make(state.Palette, 0, len(c.Palette)+1)
	for _, e := range c.Palette {
		if e.Name == state.EraseName {
			continue
		}
		col, err := ParseColour(e.Colour)
		if err != nil {
			return nil, fmt.Errorf("palette %s: %w", e.Name, err)
		}
		pal = append(pal, state.PaletteEntry{Name: e.Name, Color: col})
	}
	return append(pal, state.PaletteEntry{Name: state.EraseName, Color: bg}), nil
}

// DeadZone returns the configured touch dead zone.
func (c *Config) DeadZone() state.DeadZone {
	return state.DeadZone{Top: c.Touch.DeadZoneTop, Bottom: c.Touch.DeadZoneBase}
}

// ParseColour parses "#rrggbb" or "#rrggbbaa".
func ParseColour(s string) (color.NRGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.NRGBA{}, fmt.Errorf("colour %q: want #rrggbb or #rrggbbaa", s)
	}
	if len(h) == 6 {
		h += "ff"
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}
