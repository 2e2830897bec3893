package snake

import (
	"cmp"
	"math/rand"
	"slices"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// MoveResult reports what a single Advance did.
type MoveResult int

const (
	MoveOK    MoveResult = iota // Head moved one cell forward
	MoveReset                   // Head hit the body; snake was reset in place
)

// Snake is the player-controlled body moving over a wrapping grid.
type Snake struct {
	grid    core.Grid
	size    int
	palette core.Palette
	rng     *rand.Rand

	body       []core.Cell // Head at index 0
	length     int         // Target body size
	heading    core.Direction
	pending    core.Direction
	hasPending bool
	vacated    map[core.Cell]struct{} // Cells to clear on the next Draw; never holds the head
}

// NewSnake creates a one-cell snake at the grid center heading right.
func NewSnake(cfg core.RuntimeConfig, rng *rand.Rand) *Snake {
	return &Snake{
		grid:    cfg.Grid,
		size:    cfg.CellSize,
		palette: cfg.Palette,
		rng:     rng,
		body:    []core.Cell{cfg.Grid.Center()},
		length:  1,
		heading: core.DirRight,
		vacated: make(map[core.Cell]struct{}),
	}
}

// SetPendingHeading records a requested direction change.
// It is validated only when committed.
func (s *Snake) SetPendingHeading(d core.Direction) {
	s.pending = d
	s.hasPending = true
}

// CommitHeading applies the pending heading unless it would reverse the snake.
// The pending heading is discarded either way.
func (s *Snake) CommitHeading() {
	if !s.hasPending {
		return
	}
	if s.pending != s.heading.Opposite() {
		s.heading = s.pending
	}
	s.hasPending = false
}

// Advance moves the head one cell along the heading, wrapping at the edges.
func (s *Snake) Advance() MoveResult {
	newHead := s.grid.Step(s.Head(), s.heading)

	// The neck is skipped: with a one-step turn the new head can
	// legitimately land next to it.
	if len(s.body) > 2 {
		for _, c := range s.body[2:] {
			if c == newHead {
				s.Reset()
				return MoveReset
			}
		}
	}

	s.body = append(s.body, core.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = newHead
	delete(s.vacated, newHead)

	if len(s.body) > s.length {
		last := s.body[len(s.body)-1]
		s.body = s.body[:len(s.body)-1]
		if last != newHead {
			s.vacated[last] = struct{}{}
		}
	}
	return MoveOK
}

// Reset shrinks the snake back to one cell at the center with a random heading.
func (s *Snake) Reset() {
	center := s.grid.Center()
	for _, c := range s.body {
		s.vacated[c] = struct{}{}
	}
	delete(s.vacated, center)

	s.body = []core.Cell{center}
	s.length = 1
	s.heading = core.Directions[s.rng.Intn(len(core.Directions))]
	s.hasPending = false
}

// Grow raises the target length by one; the body catches up on later moves.
func (s *Snake) Grow() {
	s.length++
}

// Head returns the first body cell.
func (s *Snake) Head() core.Cell {
	return s.body[0]
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Cell {
	out := make([]core.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Length returns the target body size.
func (s *Snake) Length() int {
	return s.length
}

// Heading returns the current direction of travel.
func (s *Snake) Heading() core.Direction {
	return s.heading
}

// Pending returns the requested heading, if any.
func (s *Snake) Pending() (core.Direction, bool) {
	return s.pending, s.hasPending
}

// Vacated returns a copy of the cells left behind since the last Draw,
// ordered by row then column. Each cell appears at most once.
func (s *Snake) Vacated() []core.Cell {
	out := make([]core.Cell, 0, len(s.vacated))
	for c := range s.vacated {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b core.Cell) int {
		return cmp.Or(cmp.Compare(a.Y, b.Y), cmp.Compare(a.X, b.X))
	})
	return out
}

// Occupies reports whether any body cell equals c.
func (s *Snake) Occupies(c core.Cell) bool {
	for _, seg := range s.body {
		if seg == c {
			return true
		}
	}
	return false
}

// Draw clears vacated cells and paints the body.
func (s *Snake) Draw(dst core.Surface) {
	for c := range s.vacated {
		dst.ClearCell(c, s.size, s.palette.Background)
	}
	clear(s.vacated)

	s.drawBody(dst)
}

// drawBody paints the body without touching vacated cells.
func (s *Snake) drawBody(dst core.Surface) {
	for _, c := range s.body {
		dst.FillCell(c, s.size, s.palette.Snake)
	}
}
