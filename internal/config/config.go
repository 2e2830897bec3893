// Package config provides YAML-based game configuration loading.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// SnakeConfig contains all configuration for the game.
type SnakeConfig struct {
	Grid       GridConfig       `yaml:"grid"`
	TickRate   int              `yaml:"tick_rate"`
	Colors     core.Palette     `yaml:"colors"`
	Screenshot ScreenshotConfig `yaml:"screenshot"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// ScreenshotConfig defines where and how PNG screenshots are written.
type ScreenshotConfig struct {
	Dir       string `yaml:"dir"`
	PixelSize int    `yaml:"pixel_size"`
}

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Validate checks that every dimension and rate is usable.
func (c SnakeConfig) Validate() error {
	var errs []error
	if c.Grid.Width <= 0 {
		errs = append(errs, fmt.Errorf("grid.width must be positive, got %d", c.Grid.Width))
	}
	if c.Grid.Height <= 0 {
		errs = append(errs, fmt.Errorf("grid.height must be positive, got %d", c.Grid.Height))
	}
	if c.Grid.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("grid.cell_size must be positive, got %d", c.Grid.CellSize))
	}
	if c.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.TickRate))
	}
	if c.Screenshot.PixelSize <= 0 {
		errs = append(errs, fmt.Errorf("screenshot.pixel_size must be positive, got %d", c.Screenshot.PixelSize))
	}
	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalid, errors.Join(errs...))
	}
	return nil
}

// Runtime builds the immutable runtime configuration handed to the game.
func (c SnakeConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Grid:     core.NewGrid(c.Grid.Width, c.Grid.Height),
		CellSize: c.Grid.CellSize,
		TickRate: c.TickRate,
		Seed:     seed,
		Palette:  c.Colors,
	}
}
