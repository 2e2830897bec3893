// snake plays the wrap-around snake game in the terminal.
//
// Usage:
//
//	snake                    - Play with the default configuration
//	snake serve              - Host games over SSH
//
// Global flags:
//
//	--config <path>   - Game config YAML (default: search path, then embedded)
//	--seed <value>    - RNG seed for reproducible gameplay
//	--fps <rate>      - Override the configured tick rate
//	--log-file <path> - Write logs to a file
//	--debug           - Log reset and eat events
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/wrapsnake/internal/config"
	"github.com/vovakirdan/wrapsnake/internal/core"
)

var (
	// Global flags
	flagConfig  string
	flagSeed    int64
	flagFPS     int
	flagLogFile string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "snake",
	Short: "Wrap-around snake in your terminal",
	Long: `Snake on a board without walls: leaving one edge brings you back on
the opposite side. Eat food to grow; running into yourself shrinks the
snake back to a single cell in the middle of the board.

Examples:
  snake
  snake --seed 42 --fps 10
  snake --config ./my-snake.yaml
  snake serve --ssh :23235`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate override (0 = use config)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Enable debug logging")

	rootCmd.AddCommand(serveCmd)
}

// loadConfig resolves the game config and applies flag overrides.
func loadConfig(logger *log.Logger) (config.SnakeConfig, core.RuntimeConfig, error) {
	cfg, src, err := config.Load(flagConfig)
	if err != nil {
		return cfg, core.RuntimeConfig{}, fmt.Errorf("load config: %w", err)
	}
	logger.Debug("config loaded", "source", src)

	rt := cfg.Runtime(flagSeed)
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	return cfg, rt, nil
}

// newLogger builds the process logger. The returned closer releases the
// log file, if any.
func newLogger(prefix string, fallback io.Writer) (*log.Logger, func() error, error) {
	w := fallback
	closer := func() error { return nil }
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		w = f
		closer = f.Close
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
	})
	if flagDebug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, closer, nil
}
