// Package canvas implements an interactive 2D viewport: world-positioned
// items rendered over an infinitely tiling two-tier grid, with drag-to-pan
// and wheel zoom anchored at the cursor.
package canvas

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the viewport parameters. Cell sizes are in world pixels;
// BigCellSize is conventionally a multiple of CellSize so the coarse lines
// land on fine ones.
type Config struct {
	CellSize    float64 `yaml:"cellSize"`
	BigCellSize float64 `yaml:"bigCellSize"`
	MinZoom     float64 `yaml:"minZoom"`
	MaxZoom     float64 `yaml:"maxZoom"`
	InitialZoom float64 `yaml:"initialZoom"`
	ShowHUD     bool    `yaml:"showHud"`
}

// DefaultConfig returns the stock viewport parameters.
func DefaultConfig() Config {
	return Config{
		CellSize:    32,
		BigCellSize: 160,
		MinZoom:     0.25,
		MaxZoom:     3,
		InitialZoom: 1,
		ShowHUD:     true,
	}
}

// LoadConfig reads a YAML file over the defaults, so a partial file only
// overrides the fields it names.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects parameter combinations the engine cannot run with.
// A zoom floor of zero would collapse the grid pitch to nothing.
func (c Config) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("cellSize must be positive, got %v", c.CellSize)
	}
	if c.BigCellSize <= 0 {
		return fmt.Errorf("bigCellSize must be positive, got %v", c.BigCellSize)
	}
	if c.MinZoom <= 0 {
		return fmt.Errorf("minZoom must be positive, got %v", c.MinZoom)
	}
	if c.MinZoom > c.MaxZoom {
		return fmt.Errorf("minZoom %v exceeds maxZoom %v", c.MinZoom, c.MaxZoom)
	}
	return nil
}
