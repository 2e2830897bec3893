package snake

import "github.com/vovakirdan/wrapsnake/internal/core"

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick     uint64
	Length   int
	Best     int
	Resets   int
	Body     []core.Cell
	Heading  core.Direction
	Pending  bool
	Food     core.Cell
	TickRate int
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	_, pending := g.snake.Pending()
	return Snapshot{
		Tick:     g.tick,
		Length:   g.snake.Length(),
		Best:     g.best,
		Resets:   g.resets,
		Body:     g.snake.Body(),
		Heading:  g.snake.Heading(),
		Pending:  pending,
		Food:     g.food.Position(),
		TickRate: g.cfg.TickRate,
	}
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Tick != o.Tick || s.Length != o.Length || s.Best != o.Best ||
		s.Resets != o.Resets || s.Heading != o.Heading || s.Pending != o.Pending ||
		s.Food != o.Food || s.TickRate != o.TickRate || len(s.Body) != len(o.Body) {
		return false
	}
	for i := range s.Body {
		if s.Body[i] != o.Body[i] {
			return false
		}
	}
	return true
}
