// Package budget estimates the current drawn by a run of LED colors and
// dims them to stay within a supply limit.
//
// All currents are in tenths of a milliampere, the unit used by
// [ledcolor.RGBCurrentSettings] and [ledcolor.RGBWCurrentSettings].
package budget

import (
	"slices"

	"github.com/gogpu/ledcolor"
)

// Pixel is a color that can estimate its own current draw with settings S
// and dim itself to a color of type P.
//
// ledcolor.RGBColor satisfies Pixel[ledcolor.RGBCurrentSettings, ledcolor.RGBColor]
// and ledcolor.RGBWColor satisfies
// Pixel[ledcolor.RGBWCurrentSettings, ledcolor.RGBWColor].
type Pixel[S, P any] interface {
	CalcTotalTenthMilliAmpere(settings S) uint32
	Dim(ratio uint8) P
}

// Total returns the summed current estimate of pixels.
func Total[P Pixel[S, P], S any](pixels []P, settings S) uint32 {
	var total uint32
	for _, p := range pixels {
		total += p.CalcTotalTenthMilliAmpere(settings)
	}
	return total
}

// FitRatio returns the largest Dim ratio r for which total*(r+1)/256 does not
// exceed limit. It returns 255 when total already fits.
func FitRatio(total, limit uint32) uint8 {
	if total <= limit {
		return 255
	}
	steps := ((uint64(limit)+1)*256 - 1) / uint64(total)
	if steps == 0 {
		return 0
	}
	return uint8(steps - 1)
}

// Limit returns a copy of pixels dimmed so that their total current does not
// exceed limit, together with the Dim ratio applied. Pixels that already fit
// are copied unchanged with a ratio of 255.
//
// FitRatio gives the starting ratio; because each pixel truncates on its own,
// the dimmed total is re-measured and the ratio lowered until it fits.
func Limit[P Pixel[S, P], S any](pixels []P, settings S, limit uint32) (uint8, []P) {
	total := Total(pixels, settings)
	if total <= limit {
		return 255, slices.Clone(pixels)
	}

	ratio := FitRatio(total, limit)
	dimmed := make([]P, len(pixels))
	for {
		for i, p := range pixels {
			dimmed[i] = p.Dim(ratio)
		}
		after := Total(dimmed, settings)
		if after <= limit || ratio == 0 {
			ledcolor.Logger().Debug("power budget applied",
				"pixels", len(pixels),
				"total", total,
				"limit", limit,
				"ratio", ratio,
				"dimmed", after)
			return ratio, dimmed
		}
		ratio--
	}
}
