package core

// RuntimeConfig contains configuration passed to the game at initialization.
// It is built once at startup and never mutated afterwards.
type RuntimeConfig struct {
	Grid     Grid    // Board size in cells
	CellSize int     // Terminal columns (or raster pixels) per cell
	TickRate int     // Simulation ticks per second (default 20)
	Seed     int64   // RNG seed for deterministic gameplay
	Palette  Palette // Board, snake and food colors
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		Grid:     NewGrid(32, 24),
		CellSize: 2,
		TickRate: 20,
		Seed:     0, // 0 means use current time in platform layer
		Palette:  DefaultPalette(),
	}
}

// GameState is the summary the game reports to the platform after each tick.
type GameState struct {
	Length int    // Current target length of the snake
	Best   int    // Longest length reached this session
	Resets int    // Self-collisions this session
	Tick   uint64 // Ticks simulated so far
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and any events that occurred.
type StepResult struct {
	State GameState
	Ate   bool // The head reached the food this tick
	Reset bool // The snake collided with itself and was reset
}
