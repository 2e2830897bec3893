package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

func TestEmbeddedDefaultsMatchBuiltin(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("Parse(embedded) failed: %v", err)
	}

	if cfg != DefaultSnakeConfig() {
		t.Errorf("Embedded defaults %+v differ from builtin %+v", cfg, DefaultSnakeConfig())
	}
}

func TestParsePartialOverride(t *testing.T) {
	cfg, err := Parse([]byte(`
tick_rate: 10
colors:
  snake: "#ffff00"
`))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.TickRate != 10 {
		t.Errorf("TickRate = %d, expected 10", cfg.TickRate)
	}
	if cfg.Colors.Snake != (core.RGB{R: 255, G: 255, B: 0}) {
		t.Errorf("Colors.Snake = %v, expected #ffff00", cfg.Colors.Snake)
	}
	// Untouched keys keep their defaults
	if cfg.Grid.Width != 32 || cfg.Colors.Food != core.ColorRed {
		t.Errorf("Defaults lost: %+v", cfg)
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"zero width", "grid:\n  width: 0\n"},
		{"negative height", "grid:\n  height: -3\n"},
		{"zero tick rate", "tick_rate: 0\n"},
		{"zero cell size", "grid:\n  cell_size: 0\n"},
		{"bad color", "colors:\n  food: red\n"},
		{"not yaml", "grid: [\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Parse([]byte(tc.yaml)); err == nil {
				t.Errorf("Parse(%q) should fail", tc.yaml)
			}
		})
	}
}

func TestValidateWrapsErrInvalid(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.TickRate = -1

	err := cfg.Validate()
	if !errors.Is(err, ErrInvalid) {
		t.Errorf("Validate() error %v should wrap ErrInvalid", err)
	}
}

func TestLoadCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snake.yaml")
	if err := os.WriteFile(path, []byte("grid:\n  width: 40\n  height: 30\n"), 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, src, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src != SourceCustom {
		t.Errorf("Source = %q, expected custom", src)
	}
	if cfg.Grid.Width != 40 || cfg.Grid.Height != 30 {
		t.Errorf("Grid = %+v, expected 40x30", cfg.Grid)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err == nil {
		t.Error("Load should fail for a missing custom path")
	}
}

func TestLoadFallsBackToEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src != SourceEmbedded {
		t.Errorf("Source = %q, expected embedded", src)
	}
	if cfg != DefaultSnakeConfig() {
		t.Errorf("Config = %+v, expected defaults", cfg)
	}
}

func TestLoadPrefersLocalOverEmbedded(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	dir := t.TempDir()
	t.Chdir(dir)

	if err := os.MkdirAll(filepath.Join(dir, "configs"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "configs", "snake.yaml"), []byte("tick_rate: 5\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, src, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if src != SourceLocal || cfg.TickRate != 5 {
		t.Errorf("Load = (%d, %q), expected tick rate 5 from local", cfg.TickRate, src)
	}
}

func TestRuntime(t *testing.T) {
	rc := DefaultSnakeConfig().Runtime(99)

	if rc.Grid != core.NewGrid(32, 24) || rc.CellSize != 2 || rc.TickRate != 20 || rc.Seed != 99 {
		t.Errorf("Runtime() = %+v", rc)
	}
	if rc.Palette != core.DefaultPalette() {
		t.Errorf("Palette = %+v", rc.Palette)
	}
}

func TestScreenshotDir(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Screenshot.Dir = "/tmp/shots"
	if cfg.ScreenshotDir() != "/tmp/shots" {
		t.Errorf("ScreenshotDir() = %q", cfg.ScreenshotDir())
	}

	home := t.TempDir()
	t.Setenv("HOME", home)
	cfg.Screenshot.Dir = ""
	if expected := filepath.Join(home, ".wrapsnake", "screenshots"); cfg.ScreenshotDir() != expected {
		t.Errorf("ScreenshotDir() = %q, expected %q", cfg.ScreenshotDir(), expected)
	}
}
