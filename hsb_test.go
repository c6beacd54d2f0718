package ledcolor

import (
	"math"
	"testing"

	colorful "github.com/lucasb-eyer/go-colorful"
)

func TestHSBFromRGB(t *testing.T) {
	tests := []struct {
		name string
		c    RGBColor
		want HSBColor
	}{
		{"black", Black, HSBColor{}},
		{"white", White, HSBColor{0, 0, 1}},
		{"gray", GrayRGBColor(51), HSBColor{0, 0, 0.2}},
		{"red", RGBColor{255, 0, 0}, HSBColor{0, 1, 1}},
		{"dark green", RGBColor{0, 51, 0}, HSBColor{1.0 / 3.0, 1, 0.2}},
		{"blue", RGBColor{0, 0, 255}, HSBColor{2.0 / 3.0, 1, 1}},
		{"yellow", RGBColor{255, 255, 0}, HSBColor{1.0 / 6.0, 1, 1}},
		{"magenta", RGBColor{255, 0, 255}, HSBColor{5.0 / 6.0, 1, 1}},
	}

	const eps = 1e-6
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := HSBFromRGB(tt.c)
			if abs(got.H-tt.want.H) > eps || abs(got.S-tt.want.S) > eps || abs(got.B-tt.want.B) > eps {
				t.Errorf("HSBFromRGB(%v) = %+v, want %+v", tt.c, got, tt.want)
			}
		})
	}
}

func TestHSBFromRGBMatchesColorful(t *testing.T) {
	sampleRGB(func(c RGBColor) {
		h, s, v := colorful.Color{
			R: float64(c.R) / 255,
			G: float64(c.G) / 255,
			B: float64(c.B) / 255,
		}.Hsv()

		got := HSBFromRGB(c)
		if hueDistance(float64(got.H), h/360) > 1e-4 ||
			math.Abs(float64(got.S)-s) > 1e-5 ||
			math.Abs(float64(got.B)-v) > 1e-6 {
			t.Errorf("HSBFromRGB(%v) = %+v, want {H:%v S:%v B:%v}", c, got, h/360, s, v)
		}
	})
}

func TestRGBFromHSBMatchesColorful(t *testing.T) {
	for h := float32(0); h < 1; h += 1.0 / 24 {
		for _, s := range []float32{0.25, 0.5, 1} {
			for _, v := range []float32{0.1, 0.5, 1} {
				want := truncated(colorful.Hsv(float64(h)*360, float64(s), float64(v)).Clamped())
				got := RGBFromHSB(HSBColor{h, s, v})
				if channelDistance(got, want) > 1 {
					t.Errorf("RGBFromHSB(%v, %v, %v) = %v, want %v ±1", h, s, v, got, want)
				}
			}
		}
	}
}

func TestHSBRoundTrip(t *testing.T) {
	sampleRGB(func(c RGBColor) {
		got := RGBFromHSB(HSBFromRGB(c))
		if channelDistance(got, c) > 1 {
			t.Errorf("RGBFromHSB(HSBFromRGB(%v)) = %v, want within 1", c, got)
		}
	})
}

func TestLinearBlendHSB(t *testing.T) {
	left := HSBColor{0.8, 0, 1}
	right := HSBColor{0.2, 1, 0}

	tests := []struct {
		name  string
		blend HueBlend
		wantH float32
	}{
		{"shortest wraps through red", HueBlendShortest, 0},
		{"clockwise wraps through red", HueBlendClockwise, 0},
		{"counterclockwise passes cyan", HueBlendCounterClockwise, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := LinearBlendHSB(left, right, 0.5, tt.blend)
			if hueDistance(float64(got.H), float64(tt.wantH)) > 1e-6 {
				t.Errorf("H = %v, want %v", got.H, tt.wantH)
			}
			if abs(got.S-0.5) > 1e-6 || abs(got.B-0.5) > 1e-6 {
				t.Errorf("S, B = %v, %v, want 0.5, 0.5", got.S, got.B)
			}
		})
	}

	if got := LinearBlendHSB(left, right, 0, HueBlendShortest); got != left {
		t.Errorf("LinearBlendHSB(0) = %+v, want %+v", got, left)
	}
}

func TestBilinearBlendHSB(t *testing.T) {
	c00 := HSBColor{0.1, 0.0, 0.0}
	c10 := HSBColor{0.2, 1.0, 0.0}
	c01 := HSBColor{0.3, 0.0, 0.4}
	c11 := HSBColor{0.4, 1.0, 0.4}

	for _, tt := range []struct {
		x, y float32
		want HSBColor
	}{
		{0, 0, c00},
		{1, 0, c10},
		{0, 1, c01},
		{1, 1, c11},
		{0.5, 0.5, HSBColor{0.25, 0.5, 0.2}},
	} {
		got := BilinearBlendHSB(c00, c01, c10, c11, tt.x, tt.y, HueBlendShortest)
		if abs(got.H-tt.want.H) > 1e-6 || abs(got.S-tt.want.S) > 1e-6 || abs(got.B-tt.want.B) > 1e-6 {
			t.Errorf("BilinearBlendHSB(%v, %v) = %+v, want %+v", tt.x, tt.y, got, tt.want)
		}
	}
}
