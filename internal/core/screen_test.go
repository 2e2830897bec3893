package core

import "testing"

func TestNewScreen(t *testing.T) {
	s := NewScreen(64, 25)

	if s.Width() != 64 {
		t.Errorf("Width() = %d, expected 64", s.Width())
	}
	if s.Height() != 25 {
		t.Errorf("Height() = %d, expected 25", s.Height())
	}

	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if g := s.GetGlyph(x, y); g != blank {
				t.Fatalf("New screen should be blank, got %+v at (%d, %d)", g, x, y)
			}
		}
	}
}

func TestScreenGlyphColors(t *testing.T) {
	s := NewScreen(4, 2)
	g := Glyph{Rune: '█', FG: ColorGreen, BG: ColorBlack, Styled: true}
	s.SetGlyph(1, 1, g)

	if got := s.GetGlyph(1, 1); got != g {
		t.Errorf("GetGlyph(1, 1) = %+v, expected %+v", got, g)
	}
	if got := s.GetGlyph(0, 0); got.Styled {
		t.Error("Untouched glyph should be unstyled")
	}
}

func TestScreenOutOfBounds(t *testing.T) {
	s := NewScreen(10, 10)
	g := Glyph{Rune: 'A', Styled: true}

	// Out of bounds writes are silent
	s.SetGlyph(-1, 0, g)
	s.SetGlyph(100, 0, g)
	s.SetGlyph(0, -1, g)
	s.SetGlyph(0, 100, g)

	if s.GetGlyph(-1, 0) != blank || s.GetGlyph(100, 0) != blank {
		t.Error("Out of bounds GetGlyph should return a blank glyph")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(10, 10)
	s.Fill(Glyph{Rune: 'X', FG: ColorRed, Styled: true})

	s.Clear()

	for y := 0; y < 10; y++ {
		for x := 0; x < 10; x++ {
			if g := s.GetGlyph(x, y); g.Rune != ' ' || g.Styled {
				t.Fatalf("After Clear, expected unstyled space at (%d, %d), got %+v", x, y, g)
			}
		}
	}
}

func TestScreenDrawRect(t *testing.T) {
	s := NewScreen(10, 10)
	fill := Glyph{Rune: '#', FG: ColorRed, Styled: true}
	s.DrawRect(NewRect(2, 2, 3, 3), fill)

	for y := 2; y < 5; y++ {
		for x := 2; x < 5; x++ {
			if s.GetGlyph(x, y) != fill {
				t.Errorf("DrawRect: expected fill at (%d, %d), got %+v", x, y, s.GetGlyph(x, y))
			}
		}
	}

	if s.GetGlyph(1, 1) != blank || s.GetGlyph(5, 5) != blank {
		t.Error("DrawRect should not affect outside area")
	}
}

func TestScreenDrawRectClipped(t *testing.T) {
	s := NewScreen(4, 4)
	fill := Glyph{Rune: '#', Styled: true}
	s.DrawRect(NewRect(3, 3, 5, 5), fill)

	if s.GetGlyph(3, 3) != fill {
		t.Error("Visible part of a clipped rect should be drawn")
	}
}
