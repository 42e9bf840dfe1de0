// Package config loads otsig settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/OpenTraceLab/OpenTraceSignals/pkg/signal"
)

// Config holds the engine and output settings of the CLI.
type Config struct {
	DefaultLineWidth  int      `yaml:"default_line_width"`
	UnclassifiedColor string   `yaml:"unclassified_color"`
	ShowTypes         bool     `yaml:"show_types"`
	Legend            bool     `yaml:"legend"` // print the legend after colorize
	Gradient          Gradient `yaml:"gradient"`
}

// Gradient bounds the red channel used for power nets.
type Gradient struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	opts := signal.DefaultOptions()
	return &Config{
		DefaultLineWidth:  opts.DefaultLineWidth,
		UnclassifiedColor: signal.HexColor(opts.UnclassifiedColor),
		ShowTypes:         opts.ShowTypes,
		Legend:            false,
		Gradient:          Gradient{Min: opts.GradientMin, Max: opts.GradientMax},
	}
}

// Load reads a YAML file on top of the defaults. A missing file is not an
// error and yields Default().
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	return Parse(data, cfg)
}

// Parse decodes YAML into base and validates the result.
func Parse(data []byte, base *Config) (*Config, error) {
	if base == nil {
		base = Default()
	}
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("config: failed to parse: %w", err)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.DefaultLineWidth < 1 {
		return fmt.Errorf("config: default_line_width must be positive, got %d", c.DefaultLineWidth)
	}
	if _, ok := signal.ParseHexColor(c.UnclassifiedColor); !ok {
		return fmt.Errorf("config: unclassified_color %q is not #rrggbb", c.UnclassifiedColor)
	}
	g := c.Gradient
	if g.Min < 0 || g.Max > 255 || g.Min > g.Max {
		return fmt.Errorf("config: invalid gradient range %d..%d", g.Min, g.Max)
	}
	return nil
}

// Options converts the settings into engine options.
func (c *Config) Options() *signal.Options {
	col, _ := signal.ParseHexColor(c.UnclassifiedColor)
	return &signal.Options{
		DefaultLineWidth:  c.DefaultLineWidth,
		UnclassifiedColor: col,
		ShowTypes:         c.ShowTypes,
		GradientMin:       c.Gradient.Min,
		GradientMax:       c.Gradient.Max,
	}
}
