package core

import "testing"

func TestParseRGB(t *testing.T) {
	tests := []struct {
		in       string
		expected RGB
		wantErr  bool
	}{
		{"#00ff00", RGB{0, 255, 0}, false},
		{"ff0000", RGB{255, 0, 0}, false},
		{"#FFF", RGB{255, 255, 255}, false},
		{" #102030 ", RGB{0x10, 0x20, 0x30}, false},
		{"#12345", RGB{}, true},
		{"#gg0000", RGB{}, true},
		{"", RGB{}, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			c, err := ParseRGB(tc.in)
			if tc.wantErr {
				if err == nil {
					t.Errorf("ParseRGB(%q) should fail", tc.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseRGB(%q) failed: %v", tc.in, err)
			}
			if c != tc.expected {
				t.Errorf("ParseRGB(%q) = %v, expected %v", tc.in, c, tc.expected)
			}
		})
	}
}

func TestRGBHex(t *testing.T) {
	if h := (RGB{0x0a, 0xbc, 0xff}).Hex(); h != "#0abcff" {
		t.Errorf("Hex() = %q, expected #0abcff", h)
	}
}

func TestRGBUnmarshalText(t *testing.T) {
	var c RGB
	if err := c.UnmarshalText([]byte("#ff8800")); err != nil {
		t.Fatalf("UnmarshalText failed: %v", err)
	}
	if c != (RGB{255, 136, 0}) {
		t.Errorf("UnmarshalText gave %v", c)
	}

	if err := c.UnmarshalText([]byte("orange")); err == nil {
		t.Error("UnmarshalText should reject color names")
	}
}

func TestRGBImplementsColor(t *testing.T) {
	r, g, b, a := ColorRed.RGBA()
	if r != 0xffff || g != 0 || b != 0 || a != 0xffff {
		t.Errorf("RGBA() = (%d, %d, %d, %d)", r, g, b, a)
	}
}
