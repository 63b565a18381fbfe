// Package config loads the document layout and style configuration.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Margins holds page margins in millimetres.
type Margins struct {
	Top    float64 `yaml:"top"`
	Right  float64 `yaml:"right"`
	Bottom float64 `yaml:"bottom"`
	Left   float64 `yaml:"left"`
}

// Config holds the adjustable layout and style settings for generated
// documents. Anything not set in the file keeps its default.
type Config struct {
	Margins        Margins   `yaml:"margins"`
	ColumnWidths   []float64 `yaml:"column_widths"`
	CurrencySymbol string    `yaml:"currency_symbol"`
	FooterText     string    `yaml:"footer_text"`
}

// Default returns the built-in layout: A4 with 12mm margins, the
// standard five-column table, and the default currency symbol.
func Default() *Config {
	return &Config{
		Margins:        Margins{Top: 12, Right: 12, Bottom: 12, Left: 12},
		ColumnWidths:   []float64{10, 70, 15, 30, 30},
		CurrencySymbol: "Rp ",
		FooterText:     "Thank you for your business!",
	}
}

// Load reads a YAML config file. A missing file is not an error and
// yields the defaults; file values override defaults field by field.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the loaded values are usable for rendering.
func (c *Config) Validate() error {
	if len(c.ColumnWidths) != 5 {
		return fmt.Errorf("column_widths must have exactly 5 entries, got %d", len(c.ColumnWidths))
	}
	for i, w := range c.ColumnWidths {
		if w <= 0 {
			return fmt.Errorf("column_widths[%d] must be positive, got %v", i, w)
		}
	}
	for name, v := range map[string]float64{
		"top":    c.Margins.Top,
		"right":  c.Margins.Right,
		"bottom": c.Margins.Bottom,
		"left":   c.Margins.Left,
	} {
		if v < 0 {
			return fmt.Errorf("margin %s cannot be negative, got %v", name, v)
		}
	}
	return nil
}
