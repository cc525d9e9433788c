// Package config loads the tunables of a mazepath run from YAML or TOML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/mazepath/gridgraph"
)

var (
	// ErrInvalidConfig is returned by Validate for out-of-range values.
	ErrInvalidConfig = errors.New("config: invalid value")

	// ErrUnknownFormat is returned for a file that is neither YAML nor TOML.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Config holds all run settings
type Config struct {
	Costs    CostConfig     `yaml:"costs" toml:"costs"`
	Grid     GridConfig     `yaml:"grid" toml:"grid"`
	Shortcut ShortcutConfig `yaml:"shortcut" toml:"shortcut"`
	Workers  int            `yaml:"workers" toml:"workers"` // placement goroutines
}

// CostConfig holds the turn-cost maze prices
type CostConfig struct {
	Move int64 `yaml:"move" toml:"move"`
	Turn int64 `yaml:"turn" toml:"turn"`
}

// GridConfig holds the barrier-stream grid settings
type GridConfig struct {
	Width  int `yaml:"width" toml:"width"`
	Height int `yaml:"height" toml:"height"`
	Prefix int `yaml:"barrier_prefix" toml:"barrier_prefix"` // barriers applied before timing starts
}

// ShortcutConfig holds the shortcut query bounds
type ShortcutConfig struct {
	MaxLength int `yaml:"max_length" toml:"max_length"`
	MinSaving int `yaml:"min_saving" toml:"min_saving"`
}

// Default returns the settings used when no file is given.
func Default() *Config {
	return &Config{
		Costs:    CostConfig{Move: 1, Turn: 1000},
		Grid:     GridConfig{Width: 71, Height: 71, Prefix: 1024},
		Shortcut: ShortcutConfig{MaxLength: 2, MinSaving: 100},
		Workers:  runtime.NumCPU(),
	}
}

// Load reads path over the defaults, so absent keys keep their default.
// The format follows the extension: .yaml/.yml or .toml. An empty path
// returns Default. The result is validated.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, cfg)
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate reports the first out-of-range setting. Costs are capped at
// gridgraph.MaxStepCost for the configured grid.
func (c *Config) Validate() error {
	switch {
	case c.Grid.Width <= 0 || c.Grid.Height <= 0:
		return fmt.Errorf("%w: grid must be at least 1×1 (got %d×%d)", ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	case c.Costs.Move < 0 || c.Costs.Turn < 0:
		return fmt.Errorf("%w: costs must be non-negative (move %d, turn %d)", ErrInvalidConfig, c.Costs.Move, c.Costs.Turn)
	case c.Costs.Move > gridgraph.MaxStepCost(c.Grid.Width, c.Grid.Height) ||
		c.Costs.Turn > gridgraph.MaxStepCost(c.Grid.Width, c.Grid.Height):
		return fmt.Errorf("%w: costs above %d overflow a %d×%d grid (move %d, turn %d)", ErrInvalidConfig,
			gridgraph.MaxStepCost(c.Grid.Width, c.Grid.Height), c.Grid.Width, c.Grid.Height, c.Costs.Move, c.Costs.Turn)
	case c.Grid.Prefix < 0:
		return fmt.Errorf("%w: barrier_prefix %d", ErrInvalidConfig, c.Grid.Prefix)
	case c.Shortcut.MaxLength < 0:
		return fmt.Errorf("%w: max_length %d", ErrInvalidConfig, c.Shortcut.MaxLength)
	case c.Workers < 1:
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}

	return nil
}
