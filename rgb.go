package ledcolor

import "fmt"

// RGBColor is a 24-bit color with red, green and blue channels in [0, 255].
// (0,0,0) is black and (255,255,255) is white.
//
// RGBColor is a plain value; the zero value is black. Two colors are equal
// when all of their channels are equal, so == can be used directly.
type RGBColor struct {
	R, G, B uint8
}

// Common colors
var (
	Black = RGBColor{0, 0, 0}
	White = RGBColor{255, 255, 255}
)

// NewRGBColor creates a color from its three channels.
func NewRGBColor(r, g, b uint8) RGBColor {
	return RGBColor{R: r, G: g, B: b}
}

// GrayRGBColor creates a gray with all three channels set to brightness.
// 0 is black, 255 is white and 128 is a mid gray.
func GrayRGBColor(brightness uint8) RGBColor {
	return RGBColor{R: brightness, G: brightness, B: brightness}
}

// RGBFromRGBW drops the white channel of c.
func RGBFromRGBW(c RGBWColor) RGBColor {
	return RGBColor{R: c.R, G: c.G, B: c.B}
}

// CalculateBrightness returns the mean of the three channels, truncated.
func (c RGBColor) CalculateBrightness() uint8 {
	return uint8((uint16(c.R) + uint16(c.G) + uint16(c.B)) / 3)
}

// Dim returns c scaled toward black.
// A ratio of 255 returns c unchanged and 0 returns black.
// Only integer arithmetic is used.
func (c RGBColor) Dim(ratio uint8) RGBColor {
	return RGBColor{
		R: dimChannel(c.R, ratio),
		G: dimChannel(c.G, ratio),
		B: dimChannel(c.B, ratio),
	}
}

// Brighten returns c scaled toward white. It is the approximate inverse of
// Dim: a ratio of 255 returns c unchanged and 0 returns white.
func (c RGBColor) Brighten(ratio uint8) RGBColor {
	return RGBColor{
		R: brightenChannel(c.R, ratio),
		G: brightenChannel(c.G, ratio),
		B: brightenChannel(c.B, ratio),
	}
}

// Darken subtracts delta from every channel in place, stopping at 0.
func (c *RGBColor) Darken(delta uint8) {
	c.R = subChannel(c.R, delta)
	c.G = subChannel(c.G, delta)
	c.B = subChannel(c.B, delta)
}

// Lighten adds delta to every channel in place, stopping at 255.
func (c *RGBColor) Lighten(delta uint8) {
	c.R = addChannel(c.R, delta)
	c.G = addChannel(c.G, delta)
	c.B = addChannel(c.B, delta)
}

// LinearBlendRGB interpolates between left and right.
// progress 0 returns left and 1 returns right. progress is not clamped;
// values outside [0, 1] extrapolate.
func LinearBlendRGB(left, right RGBColor, progress float32) RGBColor {
	return RGBColor{
		R: lerpChannel(left.R, right.R, progress),
		G: lerpChannel(left.G, right.G, progress),
		B: lerpChannel(left.B, right.B, progress),
	}
}

// BilinearBlendRGB interpolates between four corner colors.
// c00 is the color at (0,0), c10 at (1,0), c01 at (0,1) and c11 at (1,1).
func BilinearBlendRGB(c00, c01, c10, c11 RGBColor, x, y float32) RGBColor {
	w := newBilinearWeights(x, y)
	return RGBColor{
		R: w.channel(c00.R, c01.R, c10.R, c11.R),
		G: w.channel(c00.G, c01.G, c10.G, c11.G),
		B: w.channel(c00.B, c01.B, c10.B, c11.B),
	}
}

// CalcTotalTenthMilliAmpere estimates the current drawn by a pixel showing c,
// in units of 0.1 mA.
func (c RGBColor) CalcTotalTenthMilliAmpere(settings RGBCurrentSettings) uint32 {
	var total uint32
	total += channelCurrent(c.R, settings.RedTenthMilliAmpere)
	total += channelCurrent(c.G, settings.GreenTenthMilliAmpere)
	total += channelCurrent(c.B, settings.BlueTenthMilliAmpere)
	return total
}

// String returns the color as "rgb(r, g, b)".
func (c RGBColor) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// RGBFromHSL converts an HSL color.
//
// Colors with zero saturation or zero lightness are achromatic and map to a
// gray of L*255. Channels are truncated, so HSLColor{0, 0, 0.5} yields
// RGBColor{127, 127, 127}.
func RGBFromHSL(c HSLColor) RGBColor {
	h, s, l := c.H, c.S, c.L

	var r, g, b float32
	if s == 0 || l == 0 {
		r, g, b = l, l, l
	} else {
		var q float32
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - float32(l*s)
		}
		p := 2*l - q
		r = hueToChannel(p, q, h+1.0/3.0)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3.0)
	}

	return RGBColor{
		R: unitToChannel(r),
		G: unitToChannel(g),
		B: unitToChannel(b),
	}
}

// hueToChannel evaluates one channel of the HSL model at hue position t.
func hueToChannel(p, q, t float32) float32 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	switch {
	case t < 1.0/6.0:
		return p + float32((q-p)*6*t)
	case t < 0.5:
		return q
	case t < 2.0/3.0:
		return p + float32((q-p)*(2.0/3.0-t)*6)
	default:
		return p
	}
}

// RGBFromHSB converts an HSB color using the six-sector HSV model.
// A saturation indistinguishable from zero yields a gray of B*255.
func RGBFromHSB(c HSBColor) RGBColor {
	if fuzzyEqual(c.S, 0) {
		v := unitToChannel(c.B)
		return RGBColor{R: v, G: v, B: v}
	}

	h := c.H
	if h < 0 {
		h += 1
	} else if h >= 1 {
		h -= 1
	}
	h *= 6
	i := int(h)
	f := h - float32(i)

	v := c.B
	p := v * (1 - c.S)
	q := v * (1 - float32(c.S*f))
	t := v * (1 - float32(c.S*(1-f)))

	var r, g, b float32
	switch i {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default:
		r, g, b = v, p, q
	}

	return RGBColor{
		R: unitToChannel(r),
		G: unitToChannel(g),
		B: unitToChannel(b),
	}
}
