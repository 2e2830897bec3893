package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGB is a 24-bit color. Surfaces decide how to approximate it
// (truecolor/ANSI in the terminal, exact pixels in raster output).
type RGB struct {
	R, G, B uint8
}

// Predefined colors for game elements.
var (
	ColorBlack = RGB{0, 0, 0}
	ColorRed   = RGB{255, 0, 0}
	ColorGreen = RGB{0, 255, 0}
	ColorWhite = RGB{255, 255, 255}
)

// ParseRGB parses "#rrggbb" or "#rgb" (the leading # is optional).
func ParseRGB(s string) (RGB, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return RGB{}, fmt.Errorf("invalid color %q: want #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return RGB{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}, nil
}

// Hex returns the color as "#rrggbb".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

func (c RGB) String() string {
	return c.Hex()
}

// UnmarshalText lets RGB be decoded from hex strings in config files.
func (c *RGB) UnmarshalText(text []byte) error {
	parsed, err := ParseRGB(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalText encodes the color as a hex string.
func (c RGB) MarshalText() ([]byte, error) {
	return []byte(c.Hex()), nil
}

// Palette holds the colors used to draw a frame.
type Palette struct {
	Background RGB `yaml:"background"`
	Snake      RGB `yaml:"snake"`
	Food       RGB `yaml:"food"`
}

// DefaultPalette returns the classic black board, green snake, red food.
func DefaultPalette() Palette {
	return Palette{
		Background: ColorBlack,
		Snake:      ColorGreen,
		Food:       ColorRed,
	}
}
