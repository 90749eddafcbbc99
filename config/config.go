// SPDX-License-Identifier: Unlicense OR MIT

// Package config loads lattice settings: the theme used to draw
// widgets, the display scale, the log level and platform window
// settings. Files are YAML or JSON, chosen by extension.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/latticeui/lattice/internal/logging"
	"github.com/latticeui/lattice/platform"
	"github.com/latticeui/lattice/renderer"
	"github.com/latticeui/lattice/unit"
	"github.com/latticeui/lattice/widget"
)

// ErrUnsupportedFormat is returned by Load for files that are neither
// YAML nor JSON.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Config is the complete set of settings.
type Config struct {
	Theme Theme `yaml:"theme" json:"theme"`
	// Scale is the number of device pixels per dp and sp.
	Scale float32 `yaml:"scale" json:"scale"`
	// LogLevel is one of debug, info, warn or error.
	LogLevel string `yaml:"log_level" json:"log_level"`
	Window   Window `yaml:"window" json:"window"`
}

// Theme is the appearance of widgets. It never affects layout.
type Theme struct {
	TextColor  Color       `yaml:"text_color" json:"text_color"`
	Background Color       `yaml:"background" json:"background"`
	Button     ButtonTheme `yaml:"button" json:"button"`
}

// ButtonTheme is the appearance of buttons.
type ButtonTheme struct {
	Background   Color   `yaml:"background" json:"background"`
	Hovered      Color   `yaml:"hovered" json:"hovered"`
	Pressed      Color   `yaml:"pressed" json:"pressed"`
	TextColor    Color   `yaml:"text_color" json:"text_color"`
	BorderColor  Color   `yaml:"border_color" json:"border_color"`
	BorderRadius float32 `yaml:"border_radius" json:"border_radius"`
	BorderWidth  float32 `yaml:"border_width" json:"border_width"`
}

// Window holds the window identity given to the compositor. Empty
// fields leave it unset.
type Window struct {
	Instance string `yaml:"instance" json:"instance"`
	General  string `yaml:"general" json:"general"`
}

// Default returns the settings used when no file is loaded.
func Default() Config {
	b := widget.DefaultButtonStyle
	return Config{
		Theme: Theme{
			TextColor:  Color(renderer.DefaultStyle.TextColor),
			Background: Color{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
			Button: ButtonTheme{
				Background:   Color(b.Background),
				Hovered:      Color(b.Hovered),
				Pressed:      Color(b.Pressed),
				TextColor:    Color(b.TextColor),
				BorderColor:  Color(b.BorderColor),
				BorderRadius: b.BorderRadius,
				BorderWidth:  b.BorderWidth,
			},
		},
		Scale:    1,
		LogLevel: "info",
	}
}

// Load reads the file at path over the default settings. Files with a
// .json extension are JSON, .yaml and .yml files are YAML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
		}
	default:
		return Config{}, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if cfg.Scale <= 0 {
		return Config{}, fmt.Errorf("config: scale must be positive, got %g", cfg.Scale)
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// Style returns the drawing style of the theme.
func (c Config) Style() renderer.Style {
	return renderer.Style{TextColor: color.NRGBA(c.Theme.TextColor)}
}

// ButtonStyle returns the button style of the theme.
func (c Config) ButtonStyle() widget.ButtonStyle {
	b := c.Theme.Button
	return widget.ButtonStyle{
		Background:   color.NRGBA(b.Background),
		Hovered:      color.NRGBA(b.Hovered),
		Pressed:      color.NRGBA(b.Pressed),
		BorderRadius: b.BorderRadius,
		BorderWidth:  b.BorderWidth,
		BorderColor:  color.NRGBA(b.BorderColor),
		TextColor:    color.NRGBA(b.TextColor),
	}
}

// Metric returns the unit conversion of the display scale.
func (c Config) Metric() unit.Metric {
	return unit.Metric{PxPerDp: c.Scale, PxPerSp: c.Scale}
}

// Level returns the parsed log level.
func (c Config) Level() (slog.Level, error) {
	return logging.ParseLevel(c.LogLevel)
}

// Platform returns the platform window settings.
func (c Config) Platform() platform.Specific {
	if c.Window == (Window{}) {
		return platform.Specific{}
	}
	return platform.Specific{ID: &platform.WindowID{
		Instance: c.Window.Instance,
		General:  c.Window.General,
	}}
}
