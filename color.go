package ledcolor

import (
	"errors"
	"fmt"
	"image/color"
)

// ErrInvalidHex is returned by ParseHex for text that is not a hex color.
var ErrInvalidHex = errors.New("ledcolor: invalid hex color")

// Verify at compile time that the integer color types implement color.Color.
var (
	_ color.Color = RGBColor{}
	_ color.Color = RGBWColor{}
)

// RGBA implements color.Color. The color is fully opaque.
func (c RGBColor) RGBA() (r, g, b, a uint32) {
	return widen(c.R), widen(c.G), widen(c.B), 0xffff
}

// RGBA implements color.Color for previews. The white channel is added to
// each of red, green and blue, saturating at full intensity.
func (c RGBWColor) RGBA() (r, g, b, a uint32) {
	return widen(addChannel(c.R, c.W)), widen(addChannel(c.G, c.W)), widen(addChannel(c.B, c.W)), 0xffff
}

// RGBFromColor converts any color.Color, keeping the high byte of each
// 16-bit channel. Alpha is ignored.
func RGBFromColor(c color.Color) RGBColor {
	r, g, b, _ := c.RGBA()
	return RGBColor{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8)}
}

// widen replicates an 8-bit channel into 16 bits, as color.RGBA does.
func widen(v uint8) uint32 {
	x := uint32(v)
	return x<<8 | x
}

// ParseHex parses a hex color string.
// Supports formats: "RGB" and "RRGGBB", each with an optional leading '#'.
func ParseHex(hex string) (RGBColor, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint32
	var ok bool
	switch len(s) {
	case 3: // RGB
		ok = parseHex(s[0:1], &r) && parseHex(s[1:2], &g) && parseHex(s[2:3], &b)
		r, g, b = r*17, g*17, b*17
	case 6: // RRGGBB
		ok = parseHex(s[0:2], &r) && parseHex(s[2:4], &g) && parseHex(s[4:6], &b)
	}
	if !ok {
		return Black, fmt.Errorf("%w: %q", ErrInvalidHex, hex)
	}

	return RGBColor{R: uint8(r), G: uint8(g), B: uint8(b)}, nil
}

// parseHex is a helper for hex parsing. It reports false on a non-hex digit.
func parseHex(s string, val *uint32) bool {
	*val = 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		*val *= 16
		switch {
		case '0' <= c && c <= '9':
			*val += uint32(c - '0')
		case 'a' <= c && c <= 'f':
			*val += uint32(c - 'a' + 10)
		case 'A' <= c && c <= 'F':
			*val += uint32(c - 'A' + 10)
		default:
			return false
		}
	}
	return true
}

// Hex returns the color as "#rrggbb".
func (c RGBColor) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
