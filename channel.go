package ledcolor

// Per-channel arithmetic shared by RGBColor and RGBWColor.

// dimChannel computes value*(ratio+1)/256 without floating point.
func dimChannel(value, ratio uint8) uint8 {
	return uint8((uint16(value) * (uint16(ratio) + 1)) >> 8)
}

// brightenChannel computes ((value+1)<<8)/(ratio+1), clamped to 255.
// Results that are not clamped are reduced by one so that
// brightenChannel(dimChannel(v, r), r) lands close to v.
func brightenChannel(value, ratio uint8) uint8 {
	e := ((uint32(value) + 1) << 8) / (uint32(ratio) + 1)
	if e > 255 {
		return 255
	}
	return uint8(e - 1)
}

func subChannel(value, delta uint8) uint8 {
	if value > delta {
		return value - delta
	}
	return 0
}

func addChannel(value, delta uint8) uint8 {
	if value < 255-delta {
		return value + delta
	}
	return 255
}

// lerpChannel interpolates a channel. The product is converted explicitly so
// it rounds before the add; otherwise the compiler may emit a fused
// multiply-add on some architectures and truncation can differ by one.
func lerpChannel(left, right uint8, progress float32) uint8 {
	return toChannel(float32(left) + float32(float32(int(right)-int(left))*progress))
}

// channelCurrent returns the share of rating drawn by a channel at value.
func channelCurrent(value uint8, rating uint16) uint32 {
	return uint32(value) * uint32(rating) / 255
}

// unitToChannel maps a [0, 1] intensity to [0, 255], truncating.
func unitToChannel(v float32) uint8 {
	return toChannel(v * 255)
}

// toChannel truncates toward zero. Values outside [0, 255] wrap the way an
// integer narrowing does instead of saturating.
func toChannel(v float32) uint8 {
	return uint8(int32(v))
}

// bilinearWeights holds the corner weights for a point (x, y) in the unit
// square.
type bilinearWeights struct {
	v00, v01, v10, v11 float32
}

func newBilinearWeights(x, y float32) bilinearWeights {
	return bilinearWeights{
		v00: (1 - x) * (1 - y),
		v10: x * (1 - y),
		v01: (1 - x) * y,
		v11: x * y,
	}
}

// blend returns the weighted sum of four corner values.
func (w bilinearWeights) blend(c00, c01, c10, c11 float32) float32 {
	return float32(c00*w.v00) + float32(c10*w.v10) + float32(c01*w.v01) + float32(c11*w.v11)
}

func (w bilinearWeights) channel(c00, c01, c10, c11 uint8) uint8 {
	return toChannel(w.blend(float32(c00), float32(c01), float32(c10), float32(c11)))
}
