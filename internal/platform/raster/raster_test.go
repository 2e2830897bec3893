package raster

import (
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/vovakirdan/wrapsnake/internal/core"
	"github.com/vovakirdan/wrapsnake/internal/games/snake"
)

func rgbaAt(s *Surface, x, y int) color.RGBA {
	return color.RGBAModel.Convert(s.Image().At(x, y)).(color.RGBA)
}

func TestSurfaceDimensions(t *testing.T) {
	s := NewSurface(core.NewGrid(32, 24), 2, 20)

	b := s.Bounds()
	if b.Dx() != 640 || b.Dy() != 480 {
		t.Errorf("Bounds() = %v, expected 640x480", b)
	}
}

func TestSurfaceFillCell(t *testing.T) {
	s := NewSurface(core.NewGrid(4, 4), 1, 10)
	s.FillCell(core.Cell{X: 2, Y: 1}, 1, core.ColorGreen)

	inside := rgbaAt(s, 25, 15)
	if inside.G != 255 || inside.R != 0 || inside.B != 0 {
		t.Errorf("Pixel inside filled cell = %v, expected green", inside)
	}

	outside := rgbaAt(s, 5, 5)
	if outside.G != 0 {
		t.Errorf("Pixel outside filled cell = %v, expected untouched", outside)
	}
}

func TestSurfaceClearCell(t *testing.T) {
	s := NewSurface(core.NewGrid(2, 2), 1, 8)
	s.FillCell(core.Cell{X: 0, Y: 0}, 1, core.ColorRed)
	s.ClearCell(core.Cell{X: 0, Y: 0}, 1, core.ColorWhite)

	if px := rgbaAt(s, 4, 4); px.R != 255 || px.G != 255 || px.B != 255 {
		t.Errorf("Cleared pixel = %v, expected white", px)
	}
}

func TestScreenshot(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	g := snake.New(cfg)

	dir := t.TempDir()
	path, err := Screenshot(g, cfg, 20, dir, time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC))
	if err != nil {
		t.Fatalf("Screenshot failed: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("Cannot open screenshot: %v", err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("Screenshot is not a PNG: %v", err)
	}
	if img.Bounds().Dx() != 640 || img.Bounds().Dy() != 480 {
		t.Errorf("Screenshot size = %v, expected 640x480", img.Bounds())
	}

	// The head sits at the center cell (16, 12) = pixels (320..339, 240..259).
	r, gr, b, _ := img.At(330, 250).RGBA()
	head := g.Snake().Head()
	if g.Food().Position() != head && (r != 0 || gr != 0xffff || b != 0) {
		t.Errorf("Head pixel = (%d, %d, %d), expected green", r, gr, b)
	}
}

func TestScreenshotSameInstantKeepsBoth(t *testing.T) {
	cfg := core.DefaultConfig()
	cfg.Seed = 1
	g := snake.New(cfg)

	dir := t.TempDir()
	now := time.Date(2026, 1, 2, 3, 4, 5, 250*int(time.Millisecond), time.UTC)

	first, err := Screenshot(g, cfg, 4, dir, now)
	if err != nil {
		t.Fatalf("Screenshot failed: %v", err)
	}
	second, err := Screenshot(g, cfg, 4, dir, now)
	if err != nil {
		t.Fatalf("Screenshot failed: %v", err)
	}

	if first == second {
		t.Fatalf("Both screenshots written to %s", first)
	}
	if filepath.Base(first) != "snake_20260102_030405_250.png" {
		t.Errorf("First screenshot named %s", filepath.Base(first))
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(entries) != 2 {
		t.Errorf("Found %d files, expected 2", len(entries))
	}
}
