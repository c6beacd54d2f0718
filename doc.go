// Package ledcolor provides color value types for addressable LEDs.
//
// # Overview
//
// Four small value types describe the color of a single pixel:
//
//   - [RGBColor]: 8-bit red, green and blue
//   - [RGBWColor]: 8-bit red, green, blue and a dedicated white channel
//   - [HSLColor]: hue, saturation and lightness in [0, 1]
//   - [HSBColor]: hue, saturation and brightness in [0, 1]
//
// RGBColor is the hub: every conversion goes through it, for example
// HSL → RGB → RGBW.
//
//	c := ledcolor.RGBFromHSL(ledcolor.NewHSLColor(0.66, 1, 0.5))
//	w := ledcolor.RGBWFromRGB(c)
//
// # Brightness
//
// Dim and Brighten scale a color by a ratio in [0, 255] using integer
// arithmetic only, so they are cheap enough to run for every pixel of every
// frame. Darken and Lighten step every channel by a fixed amount and modify
// the color in place.
//
//	c = c.Dim(128)  // roughly half brightness
//	c.Darken(10)
//
// # Blending
//
// LinearBlendRGB, BilinearBlendRGB and their RGBW counterparts interpolate
// each channel. The HSL and HSB variants take a [HueBlend] that decides which
// way around the hue circle to travel:
//
//	mid := ledcolor.LinearBlendHSL(from, to, 0.5, ledcolor.HueBlendShortest)
//
// # Power
//
// CalcTotalTenthMilliAmpere estimates the current a pixel draws from the
// per-channel ratings in [RGBCurrentSettings] or [RGBWCurrentSettings]. The
// budget sub-package sums these over a strip and finds a Dim ratio that keeps
// the total under a limit.
//
// # Precision
//
// Float channels are float32. Conversions to 8-bit channels truncate toward
// zero, so an RGB → HSL → RGB round trip may lose one step per channel.
package ledcolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
