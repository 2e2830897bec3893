package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/wrapsnake/internal/core"
)

const blockRune = '█'

// ScreenSurface draws grid cells into a core.Screen.
// A cell of size n occupies n columns and one row.
type ScreenSurface struct {
	screen  *core.Screen
	offsetX int
	offsetY int
}

// NewScreenSurface wraps a screen; offsets shift the whole board.
func NewScreenSurface(s *core.Screen, offsetX, offsetY int) *ScreenSurface {
	return &ScreenSurface{screen: s, offsetX: offsetX, offsetY: offsetY}
}

// FillCell paints the cell with solid blocks.
func (s *ScreenSurface) FillCell(c core.Cell, size int, color core.RGB) {
	s.screen.DrawRect(s.rect(c, size), core.Glyph{Rune: blockRune, FG: color, BG: color, Styled: true})
}

// ClearCell paints the cell with background-colored spaces.
func (s *ScreenSurface) ClearCell(c core.Cell, size int, background core.RGB) {
	s.screen.DrawRect(s.rect(c, size), core.Glyph{Rune: ' ', FG: background, BG: background, Styled: true})
}

func (s *ScreenSurface) rect(c core.Cell, size int) core.Rect {
	return core.NewRect(s.offsetX+c.X*size, s.offsetY+c.Y, size, 1)
}

// styleKey identifies a glyph style for caching.
type styleKey struct {
	fg, bg core.RGB
	styled bool
}

// styleCache maps glyph colors to lipgloss styles.
type styleCache map[styleKey]lipgloss.Style

func (c styleCache) get(k styleKey) lipgloss.Style {
	if st, ok := c[k]; ok {
		return st
	}
	st := lipgloss.NewStyle()
	if k.styled {
		st = st.Foreground(lipgloss.Color(k.fg.Hex())).Background(lipgloss.Color(k.bg.Hex()))
	}
	c[k] = st
	return st
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			first := s.GetGlyph(x, y)
			k := styleKey{fg: first.FG, bg: first.BG, styled: first.Styled}

			var run strings.Builder
			for x < s.Width() {
				g := s.GetGlyph(x, y)
				if (styleKey{fg: g.FG, bg: g.BG, styled: g.Styled}) != k {
					break
				}
				run.WriteRune(g.Rune)
				x++
			}

			sb.WriteString(styles.get(k).Render(run.String()))
		}
	}
	return sb.String()
}
