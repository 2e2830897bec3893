// Package snake implements the wrap-around snake game: a snake moves on a
// toroidal grid, grows by eating food and resets in place when it runs
// into itself.
package snake

import (
	"fmt"
	"math/rand"
	"strings"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Title is the display name of the game.
const Title = "Snake"

// ResetEvent describes a self-collision, reported to the reset hook.
type ResetEvent struct {
	Tick       uint64
	Length     int       // Target length before the reset
	Hit        core.Cell // Body cell the head ran into
	NewHeading core.Direction
}

// EatEvent describes a food pickup, reported to the eat hook.
type EatEvent struct {
	Tick   uint64
	At     core.Cell
	Length int       // Target length after growing
	Food   core.Cell // Where the food was relocated to
}

// Option configures a Game.
type Option func(*Game)

// WithRand replaces the seeded RNG (useful in tests).
func WithRand(rng *rand.Rand) Option {
	return func(g *Game) {
		g.rng = rng
	}
}

// WithResetHook registers a callback fired after every self-collision reset.
func WithResetHook(fn func(ResetEvent)) Option {
	return func(g *Game) {
		g.onReset = fn
	}
}

// WithEatHook registers a callback fired after the snake eats.
func WithEatHook(fn func(EatEvent)) Option {
	return func(g *Game) {
		g.onEat = fn
	}
}

// Game owns the snake, the food and the per-tick rules binding them.
type Game struct {
	cfg   core.RuntimeConfig
	rng   *rand.Rand
	snake *Snake
	food  *Food

	tick   uint64
	best   int
	resets int

	onReset func(ResetEvent)
	onEat   func(EatEvent)
}

// New creates a game ready for its first tick.
func New(cfg core.RuntimeConfig, opts ...Option) *Game {
	g := &Game{cfg: cfg}
	for _, opt := range opts {
		opt(g)
	}
	if g.rng == nil {
		g.rng = rand.New(rand.NewSource(cfg.Seed))
	}

	g.snake = NewSnake(cfg, g.rng)
	g.food = NewFood(cfg, g.rng)
	g.best = g.snake.Length()
	return g
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++
	var result core.StepResult

	// Later keys overwrite earlier ones within the same tick.
	for _, a := range input.Actions() {
		if d, ok := a.Direction(); ok {
			g.snake.SetPendingHeading(d)
		}
	}
	g.snake.CommitHeading()

	prevLen := g.snake.Length()
	hit := g.cfg.Grid.Step(g.snake.Head(), g.snake.Heading())
	if g.snake.Advance() == MoveReset {
		g.resets++
		result.Reset = true
		if g.onReset != nil {
			g.onReset(ResetEvent{
				Tick:       g.tick,
				Length:     prevLen,
				Hit:        hit,
				NewHeading: g.snake.Heading(),
			})
		}
	}

	if g.snake.Head() == g.food.Position() {
		at := g.food.Position()
		g.snake.Grow()
		g.food.Relocate()
		g.best = core.Max(g.best, g.snake.Length())
		result.Ate = true
		if g.onEat != nil {
			g.onEat(EatEvent{
				Tick:   g.tick,
				At:     at,
				Length: g.snake.Length(),
				Food:   g.food.Position(),
			})
		}
	}

	result.State = g.State()
	return result
}

// Render draws the snake, then the food, onto dst.
// Drawing is incremental: only cells the snake left behind are cleared.
func (g *Game) Render(dst core.Surface) {
	for _, d := range []core.Drawable{g.snake, g.food} {
		d.Draw(dst)
	}
}

// RenderFull paints the whole board from scratch onto dst.
// Pending incremental work is left alone, so it can target another surface.
func (g *Game) RenderFull(dst core.Surface) {
	for y := 0; y < g.cfg.Grid.H; y++ {
		for x := 0; x < g.cfg.Grid.W; x++ {
			dst.ClearCell(core.Cell{X: x, Y: y}, g.cfg.CellSize, g.cfg.Palette.Background)
		}
	}
	g.snake.drawBody(dst)
	g.food.Draw(dst)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Length: g.snake.Length(),
		Best:   g.best,
		Resets: g.resets,
		Tick:   g.tick,
	}
}

// Snake exposes the snake for inspection.
func (g *Game) Snake() *Snake {
	return g.snake
}

// Food exposes the food for inspection.
func (g *Game) Food() *Food {
	return g.food
}

// Config returns the configuration the game was built with.
func (g *Game) Config() core.RuntimeConfig {
	return g.cfg
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Length: %d, Best: %d, Resets: %d\n", g.tick, g.snake.Length(), g.best, g.resets)
	head := g.snake.Head()
	food := g.food.Position()
	fmt.Fprintf(&b, "Head: (%d, %d), Heading: %s, Food: (%d, %d)\n", head.X, head.Y, g.snake.Heading(), food.X, food.Y)
	return b.String()
}
