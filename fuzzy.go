package ledcolor

// fuzzyEqual reports whether p1 and p2 are equal up to a relative tolerance
// that depends on the precision of F: 1e-12 for float64 and 1e-5 for
// float32.
//
// The test is |p1-p2| * K <= min(|p1|, |p2|), so a comparison against an
// exact zero only succeeds when the other value is zero too.
func fuzzyEqual[F float32 | float64](p1, p2 F) bool {
	return abs(p1-p2)*fuzzyFactor[F]() <= min(abs(p1), abs(p2))
}

func fuzzyFactor[F float32 | float64]() F {
	var zero F
	if _, single := any(zero).(float32); single {
		return 1e5
	}
	return 1e12
}

func abs[F float32 | float64](v F) F {
	if v < 0 {
		return -v
	}
	return v
}
