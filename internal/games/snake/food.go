package snake

import (
	"math/rand"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Food is the single target the snake chases.
type Food struct {
	grid     core.Grid
	size     int
	color    core.RGB
	rng      *rand.Rand
	position core.Cell
}

// NewFood creates food at a random cell.
func NewFood(cfg core.RuntimeConfig, rng *rand.Rand) *Food {
	f := &Food{
		grid:  cfg.Grid,
		size:  cfg.CellSize,
		color: cfg.Palette.Food,
		rng:   rng,
	}
	f.Relocate()
	return f
}

// Relocate moves the food to a uniformly random cell.
// The snake body is not excluded, so food may appear under the snake.
func (f *Food) Relocate() {
	f.position = core.Cell{
		X: f.rng.Intn(f.grid.W),
		Y: f.rng.Intn(f.grid.H),
	}
}

// Position returns the current food cell.
func (f *Food) Position() core.Cell {
	return f.position
}

// Draw paints the food cell.
func (f *Food) Draw(dst core.Surface) {
	dst.FillCell(f.position, f.size, f.color)
}
