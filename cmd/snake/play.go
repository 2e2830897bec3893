package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/wrapsnake/internal/platform/tui"
)

func runPlay(_ *cobra.Command, _ []string) error {
	// The game owns the terminal, so logs only go somewhere when a file is given.
	logger, closeLog, err := newLogger("wrapsnake", io.Discard)
	if err != nil {
		return err
	}
	defer closeLog() //nolint:errcheck // Best-effort close

	cfg, rt, err := loadConfig(logger)
	if err != nil {
		return err
	}

	// Board plus border, HUD and help lines.
	needW := rt.Grid.W*rt.CellSize + 2
	needH := rt.Grid.H + 4
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil && (w < needW || h < needH) {
		fmt.Fprintf(os.Stderr, "Warning: terminal is %dx%d, the board needs %dx%d\n", w, h, needW, needH)
	}

	return tui.Run(rt, tui.Options{
		Logger:        logger,
		ScreenshotDir: cfg.ScreenshotDir(),
		PixelSize:     cfg.Screenshot.PixelSize,
	})
}
