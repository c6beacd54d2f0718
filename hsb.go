package ledcolor

// HSBColor is a color in the hue, saturation, brightness model (also known
// as HSV). All three values are normalized to [0, 1]; hue wraps. The zero
// value is black.
type HSBColor struct {
	H, S, B float32
}

// NewHSBColor creates a color from hue, saturation and brightness.
func NewHSBColor(h, s, b float32) HSBColor {
	return HSBColor{H: h, S: s, B: b}
}

// HSBFromRGB converts an RGBColor. Brightness is the largest channel;
// grays yield H = S = 0.
func HSBFromRGB(c RGBColor) HSBColor {
	r, g, b := normalize(c)
	hi, lo, _ := extremes(r, g, b)
	d := hi - lo

	hsb := HSBColor{B: hi}
	if hi != 0 {
		hsb.S = d / hi
	}
	if d != 0 {
		var dominant channel
		switch hi {
		case r:
			dominant = red
		case g:
			dominant = green
		default:
			dominant = blue
		}
		hsb.H = hueOf(r, g, b, d, dominant)
	}
	return hsb
}

// LinearBlendHSB interpolates between left and right. Hue is combined by
// blend; saturation and brightness are interpolated linearly.
func LinearBlendHSB(left, right HSBColor, progress float32, blend HueBlend) HSBColor {
	return HSBColor{
		H: blend(left.H, right.H, progress),
		S: lerp(left.S, right.S, progress),
		B: lerp(left.B, right.B, progress),
	}
}

// BilinearBlendHSB interpolates between four corner colors.
// Hue is blended along x on both edges and then along y.
func BilinearBlendHSB(c00, c01, c10, c11 HSBColor, x, y float32, blend HueBlend) HSBColor {
	w := newBilinearWeights(x, y)
	return HSBColor{
		H: bilinearHue(c00.H, c01.H, c10.H, c11.H, x, y, blend),
		S: w.blend(c00.S, c01.S, c10.S, c11.S),
		B: w.blend(c00.B, c01.B, c10.B, c11.B),
	}
}
