package config

import (
	_ "embed"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Grid: GridConfig{
			Width:    32,
			Height:   24,
			CellSize: 2,
		},
		TickRate: 20,
		Colors:   core.DefaultPalette(),
		Screenshot: ScreenshotConfig{
			PixelSize: 20,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
