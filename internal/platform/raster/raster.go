// Package raster draws game frames into images with fogleman/gg,
// used for PNG screenshots.
package raster

import (
	"errors"
	"fmt"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fogleman/gg"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

// Surface is a core.Surface backed by an in-memory RGBA image.
// A cell of logical size n is drawn as an (n*scale)-pixel square.
type Surface struct {
	dc    *gg.Context
	scale int
}

// NewSurface creates a canvas large enough for the grid.
// pixelSize is the target edge of one cell in pixels; cellSize is the
// logical size the game passes when drawing.
func NewSurface(grid core.Grid, cellSize, pixelSize int) *Surface {
	cellSize = core.Max(cellSize, 1)
	scale := core.Max(pixelSize/cellSize, 1)
	edge := cellSize * scale

	return &Surface{
		dc:    gg.NewContext(grid.W*edge, grid.H*edge),
		scale: scale,
	}
}

// FillCell paints the cell with a solid color.
func (s *Surface) FillCell(c core.Cell, size int, color core.RGB) {
	s.rect(c, size, color)
}

// ClearCell paints the cell with the background color.
func (s *Surface) ClearCell(c core.Cell, size int, background core.RGB) {
	s.rect(c, size, background)
}

func (s *Surface) rect(c core.Cell, size int, color core.RGB) {
	edge := float64(size * s.scale)
	s.dc.SetColor(color)
	s.dc.DrawRectangle(float64(c.X)*edge, float64(c.Y)*edge, edge, edge)
	s.dc.Fill()
}

// Image returns the rendered image.
func (s *Surface) Image() image.Image {
	return s.dc.Image()
}

// Bounds returns the canvas size in pixels.
func (s *Surface) Bounds() image.Rectangle {
	return s.dc.Image().Bounds()
}

// SavePNG writes the canvas to path, creating parent directories.
func (s *Surface) SavePNG(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("raster: cannot create directory: %w", err)
	}
	if err := s.dc.SavePNG(path); err != nil {
		return fmt.Errorf("raster: cannot save %s: %w", path, err)
	}
	return nil
}

// FullRenderer draws a complete frame from scratch.
type FullRenderer interface {
	RenderFull(dst core.Surface)
}

// Screenshot renders r and saves it as a timestamped PNG in dir.
// Existing files are never overwritten. Returns the written path.
func Screenshot(r FullRenderer, cfg core.RuntimeConfig, pixelSize int, dir string, now time.Time) (string, error) {
	s := NewSurface(cfg.Grid, cfg.CellSize, pixelSize)
	r.RenderFull(s)

	path := freePath(dir, fmt.Sprintf("snake_%s_%03d", now.Format("20060102_150405"), now.Nanosecond()/int(time.Millisecond)))
	if err := s.SavePNG(path); err != nil {
		return "", err
	}
	return path, nil
}

// freePath returns dir/base.png, or dir/base-N.png when that name is taken.
func freePath(dir, base string) string {
	path := filepath.Join(dir, base+".png")
	for n := 1; ; n++ {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			return path
		}
		path = filepath.Join(dir, fmt.Sprintf("%s-%d.png", base, n))
	}
}
