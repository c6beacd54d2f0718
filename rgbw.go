package ledcolor

import "fmt"

// RGBWColor is a 32-bit color with red, green, blue and white channels in
// [0, 255].
//
// White can be produced by the RGB channels, by the W channel, or by a mix
// of both. A color whose R, G and B are all zero is colorless: whatever it
// shows comes from W alone.
type RGBWColor struct {
	R, G, B, W uint8
}

// NewRGBWColor creates a color from its four channels.
func NewRGBWColor(r, g, b, w uint8) RGBWColor {
	return RGBWColor{R: r, G: g, B: b, W: w}
}

// WhiteRGBWColor creates a colorless color carrying brightness on W only.
func WhiteRGBWColor(brightness uint8) RGBWColor {
	return RGBWColor{W: brightness}
}

// RGBWFromRGB copies the RGB channels of c and leaves W at 0.
func RGBWFromRGB(c RGBColor) RGBWColor {
	return RGBWColor{R: c.R, G: c.G, B: c.B}
}

// RGBWFromHSL converts through RGBColor; W is 0.
func RGBWFromHSL(c HSLColor) RGBWColor {
	return RGBWFromRGB(RGBFromHSL(c))
}

// RGBWFromHSB converts through RGBColor; W is 0.
func RGBWFromHSB(c HSBColor) RGBWColor {
	return RGBWFromRGB(RGBFromHSB(c))
}

// IsMonotone reports whether R, G and B are equal. W is ignored.
func (c RGBWColor) IsMonotone() bool {
	return c.R == c.G && c.R == c.B
}

// IsColorLess reports whether R, G and B are all zero. W is ignored.
func (c RGBWColor) IsColorLess() bool {
	return c.R == 0 && c.G == 0 && c.B == 0
}

// CalculateBrightness returns the larger of W and the truncated mean of the
// RGB channels.
func (c RGBWColor) CalculateBrightness() uint8 {
	colorB := RGBFromRGBW(c).CalculateBrightness()
	if c.W > colorB {
		return c.W
	}
	return colorB
}

// Dim returns c scaled toward black on all four channels.
// A ratio of 255 returns c unchanged and 0 returns (0,0,0,0).
func (c RGBWColor) Dim(ratio uint8) RGBWColor {
	return RGBWColor{
		R: dimChannel(c.R, ratio),
		G: dimChannel(c.G, ratio),
		B: dimChannel(c.B, ratio),
		W: dimChannel(c.W, ratio),
	}
}

// Brighten returns c scaled toward full intensity on all four channels.
// A ratio of 255 returns c unchanged and 0 returns (255,255,255,255).
func (c RGBWColor) Brighten(ratio uint8) RGBWColor {
	return RGBWColor{
		R: brightenChannel(c.R, ratio),
		G: brightenChannel(c.G, ratio),
		B: brightenChannel(c.B, ratio),
		W: brightenChannel(c.W, ratio),
	}
}

// Darken subtracts delta from every channel in place, stopping at 0.
func (c *RGBWColor) Darken(delta uint8) {
	c.R = subChannel(c.R, delta)
	c.G = subChannel(c.G, delta)
	c.B = subChannel(c.B, delta)
	c.W = subChannel(c.W, delta)
}

// Lighten adds delta in place to whichever channels carry the color.
// A colorless color raises W only; any other color raises R, G and B and
// leaves W alone. Channels stop at 255.
func (c *RGBWColor) Lighten(delta uint8) {
	if c.IsColorLess() {
		c.W = addChannel(c.W, delta)
		return
	}
	c.R = addChannel(c.R, delta)
	c.G = addChannel(c.G, delta)
	c.B = addChannel(c.B, delta)
}

// LinearBlendRGBW interpolates all four channels between left and right.
// progress is not clamped.
func LinearBlendRGBW(left, right RGBWColor, progress float32) RGBWColor {
	return RGBWColor{
		R: lerpChannel(left.R, right.R, progress),
		G: lerpChannel(left.G, right.G, progress),
		B: lerpChannel(left.B, right.B, progress),
		W: lerpChannel(left.W, right.W, progress),
	}
}

// BilinearBlendRGBW interpolates between four corner colors.
// c00 is the color at (0,0), c10 at (1,0), c01 at (0,1) and c11 at (1,1).
func BilinearBlendRGBW(c00, c01, c10, c11 RGBWColor, x, y float32) RGBWColor {
	w := newBilinearWeights(x, y)
	return RGBWColor{
		R: w.channel(c00.R, c01.R, c10.R, c11.R),
		G: w.channel(c00.G, c01.G, c10.G, c11.G),
		B: w.channel(c00.B, c01.B, c10.B, c11.B),
		W: w.channel(c00.W, c01.W, c10.W, c11.W),
	}
}

// CalcTotalTenthMilliAmpere estimates the current drawn by a pixel showing c,
// in units of 0.1 mA.
func (c RGBWColor) CalcTotalTenthMilliAmpere(settings RGBWCurrentSettings) uint32 {
	total := RGBFromRGBW(c).CalcTotalTenthMilliAmpere(settings.RGBCurrentSettings)
	total += channelCurrent(c.W, settings.WhiteCurrent)
	return total
}

// String returns the color as "rgbw(r, g, b, w)".
func (c RGBWColor) String() string {
	return fmt.Sprintf("rgbw(%d, %d, %d, %d)", c.R, c.G, c.B, c.W)
}
