package ledcolor

// HueBlend combines two hues, each in [0, 1], at progress in [0, 1].
//
// Hue is circular, so there are two ways to travel from one hue to another.
// A HueBlend decides which way to go and wraps the result back into range.
// It is passed to the HSL and HSB blend functions.
type HueBlend func(h0, h1, progress float32) float32

// The provided hue blend strategies.
var (
	_ HueBlend = HueBlendShortest
	_ HueBlend = HueBlendLongest
	_ HueBlend = HueBlendClockwise
	_ HueBlend = HueBlendCounterClockwise
)

// HueBlendShortest travels the shorter way around the hue circle.
func HueBlendShortest(h0, h1, progress float32) float32 {
	delta := h1 - h0
	base := h0
	if delta > 0.5 {
		base = h1
		delta = 1 - delta
		progress = 1 - progress
	} else if delta < -0.5 {
		delta = 1 + delta
	}
	return wrapHue(base + float32(delta*progress))
}

// HueBlendLongest travels the longer way around the hue circle.
func HueBlendLongest(h0, h1, progress float32) float32 {
	delta := h1 - h0
	base := h0
	if delta < 0.5 && delta >= 0 {
		base = h1
		delta = 1 - delta
		progress = 1 - progress
	} else if delta > -0.5 && delta < 0 {
		delta = 1 + delta
	}
	return wrapHue(base + float32(delta*progress))
}

// HueBlendClockwise always moves toward increasing hue.
func HueBlendClockwise(h0, h1, progress float32) float32 {
	delta := h1 - h0
	if delta < 0 {
		delta += 1
	}
	return wrapHue(h0 + float32(delta*progress))
}

// HueBlendCounterClockwise always moves toward decreasing hue.
func HueBlendCounterClockwise(h0, h1, progress float32) float32 {
	delta := h1 - h0
	if delta > 0 {
		delta -= 1
	}
	return wrapHue(h0 + float32(delta*progress))
}

// wrapHue brings a hue that overshot [0, 1] by less than a full turn back
// into range.
func wrapHue(h float32) float32 {
	if h < 0 {
		return h + 1
	}
	if h > 1 {
		return h - 1
	}
	return h
}
