package tui

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/wrapsnake/internal/core"
	"github.com/vovakirdan/wrapsnake/internal/games/snake"
	"github.com/vovakirdan/wrapsnake/internal/platform/raster"
)

var (
	hudStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("10"))
	statStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	boardStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240"))
)

// Options holds the collaborators of a Model. Zero values are usable.
type Options struct {
	// Logger receives game events. Defaults to a discarding logger.
	Logger *log.Logger

	// ScreenshotDir enables ctrl+s PNG screenshots when non-empty.
	ScreenshotDir string

	// PixelSize is the edge of one cell in screenshots.
	PixelSize int

	// Now is the clock used for screenshot names. Defaults to time.Now.
	Now func() time.Time
}

// Model is the Bubble Tea model running one game session.
type Model struct {
	game      *snake.Game
	screen    *core.Screen
	surface   *ScreenSurface
	config    core.RuntimeConfig
	opts      Options
	keys      KeyMap
	help      help.Model
	logger    *log.Logger
	pending   core.InputFrame
	gameState core.GameState
	width     int
	height    int
	quitting  bool
	lastShot  string
}

// NewModel creates a new Bubble Tea model for a fresh game.
func NewModel(cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	logger := opts.Logger

	game := snake.New(cfg,
		snake.WithResetHook(func(e snake.ResetEvent) {
			logger.Debug("snake reset",
				"tick", e.Tick,
				"length", e.Length,
				"hit", fmt.Sprintf("%d,%d", e.Hit.X, e.Hit.Y),
				"heading", e.NewHeading,
			)
		}),
		snake.WithEatHook(func(e snake.EatEvent) {
			logger.Debug("food eaten",
				"tick", e.Tick,
				"length", e.Length,
				"food", fmt.Sprintf("%d,%d", e.Food.X, e.Food.Y),
			)
		}),
	)

	screen := core.NewScreen(cfg.Grid.W*cfg.CellSize, cfg.Grid.H)
	surface := NewScreenSurface(screen, 0, 0)
	game.RenderFull(surface)

	return Model{
		game:      game,
		screen:    screen,
		surface:   surface,
		config:    cfg,
		opts:      opts,
		keys:      DefaultKeyMap(),
		help:      help.New(),
		logger:    logger,
		pending:   core.NewInputFrame(),
		gameState: game.State(),
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	m.logger.Info("game started",
		"grid", fmt.Sprintf("%dx%d", m.config.Grid.W, m.config.Grid.H),
		"tick_rate", m.config.TickRate,
		"seed", m.config.Seed,
	)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
// Direction keys are queued until the next tick; quit is immediate.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch action := m.keys.MapKey(msg); action {
	case core.ActionQuit:
		m.quitting = true
		m.logger.Info("quit", "length", m.gameState.Length, "best", m.gameState.Best, "ticks", m.gameState.Tick)
		m.logger.Debug("final state", "state", m.game.DebugState())
		return m, tea.Quit
	case core.ActionScreenshot:
		m.saveScreenshot()
	case core.ActionNone:
	default:
		m.pending.Set(action)
	}
	return m, nil
}

// handleTick runs one simulation step and redraws the changed cells.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.pending)
	m.gameState = result.State
	m.pending.Clear()

	m.game.Render(m.surface)

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot writes the current frame as a PNG. Best effort.
func (m *Model) saveScreenshot() {
	if m.opts.ScreenshotDir == "" {
		return
	}
	path, err := raster.Screenshot(m.game, m.config, m.opts.PixelSize, m.opts.ScreenshotDir, m.opts.Now())
	if err != nil {
		m.logger.Warn("screenshot failed", "error", err)
		return
	}
	m.lastShot = path
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	hud := hudStyle.Render(snake.Title) + "  " + statStyle.Render(fmt.Sprintf(
		"length %d  best %d  resets %d", m.gameState.Length, m.gameState.Best, m.gameState.Resets,
	))
	if m.lastShot != "" {
		hud += "  " + statStyle.Render("saved "+m.lastShot)
	}

	frame := lipgloss.JoinVertical(lipgloss.Left,
		hud,
		boardStyle.Render(RenderScreen(m.screen)),
		m.help.View(m.keys),
	)

	if m.width > 0 && m.height > 0 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, frame)
	}
	return frame
}

// GameState returns the state reported by the last tick.
func (m Model) GameState() core.GameState {
	return m.gameState
}

// Game exposes the running game.
func (m Model) Game() *snake.Game {
	return m.game
}

// Run starts the Bubble Tea program for one game.
func Run(cfg core.RuntimeConfig, opts Options) error {
	p := tea.NewProgram(
		NewModel(cfg, opts),
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
