package ledcolor

// HSLColor is a color in the hue, saturation, lightness model.
// All three values are normalized to [0, 1]; hue wraps, so 0 and 1 are both
// red. The zero value is black.
//
// Lightness above 0.5 blends toward white. Conversions back to RGBColor are
// best behaved for L <= 0.5, but the range is not enforced.
type HSLColor struct {
	H, S, L float32
}

// NewHSLColor creates a color from hue, saturation and lightness.
func NewHSLColor(h, s, l float32) HSLColor {
	return HSLColor{H: h, S: s, L: l}
}

// HSLFromRGB converts an RGBColor.
// Grays (equal channels) yield H = S = 0.
func HSLFromRGB(c RGBColor) HSLColor {
	r, g, b := normalize(c)
	hi, lo, dominant := extremes(r, g, b)

	var hsl HSLColor
	hsl.L = (hi + lo) / 2
	if hi == lo {
		return hsl
	}

	d := hi - lo
	if hsl.L > 0.5 {
		hsl.S = d / (2 - (hi + lo))
	} else {
		hsl.S = d / (hi + lo)
	}
	hsl.H = hueOf(r, g, b, d, dominant)
	return hsl
}

// LinearBlendHSL interpolates between left and right. Hue is combined by
// blend; saturation and lightness are interpolated linearly.
func LinearBlendHSL(left, right HSLColor, progress float32, blend HueBlend) HSLColor {
	return HSLColor{
		H: blend(left.H, right.H, progress),
		S: lerp(left.S, right.S, progress),
		L: lerp(left.L, right.L, progress),
	}
}

// BilinearBlendHSL interpolates between four corner colors.
// Hue is blended along x on both edges and then along y.
func BilinearBlendHSL(c00, c01, c10, c11 HSLColor, x, y float32, blend HueBlend) HSLColor {
	w := newBilinearWeights(x, y)
	return HSLColor{
		H: bilinearHue(c00.H, c01.H, c10.H, c11.H, x, y, blend),
		S: w.blend(c00.S, c01.S, c10.S, c11.S),
		L: w.blend(c00.L, c01.L, c10.L, c11.L),
	}
}

// normalize maps the channels of c into [0, 1].
func normalize(c RGBColor) (r, g, b float32) {
	return float32(c.R) / 255, float32(c.G) / 255, float32(c.B) / 255
}

type channel uint8

const (
	red channel = iota
	green
	blue
)

// extremes returns the largest and smallest of r, g and b along with the
// channel holding the largest. A channel only wins when it is strictly
// greater than the later ones, checking red first, then green.
func extremes(r, g, b float32) (hi, lo float32, dominant channel) {
	switch {
	case r > g && r > b:
		hi, dominant = r, red
	case g > b:
		hi, dominant = g, green
	default:
		hi, dominant = b, blue
	}
	switch {
	case r < g && r < b:
		lo = r
	case g < b:
		lo = g
	default:
		lo = b
	}
	return hi, lo, dominant
}

// hueOf returns the hue in [0, 1) for a chromatic color whose largest
// channel is dominant and whose channel spread is d.
func hueOf(r, g, b, d float32, dominant channel) float32 {
	var h float32
	switch dominant {
	case red:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case green:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}
	return h / 6
}

func lerp(a, b, t float32) float32 {
	return a + float32((b-a)*t)
}

func bilinearHue(c00, c01, c10, c11, x, y float32, blend HueBlend) float32 {
	return blend(blend(c00, c10, x), blend(c01, c11, x), y)
}
