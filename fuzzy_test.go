package ledcolor

import "testing"

func TestFuzzyEqualFloat32(t *testing.T) {
	tests := []struct {
		a, b float32
		want bool
	}{
		{0, 0, true},
		{1e-30, 0, false}, // nothing but zero equals zero
		{1, 1, true},
		{1, 1 + 5e-6, true},
		{1, 1 + 5e-5, false},
		{-2, -2 - 1e-5, true},
		{-2, 2, false},
	}

	for _, tt := range tests {
		if got := fuzzyEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("fuzzyEqual(float32 %v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFuzzyEqualFloat64(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{0, 0, true},
		{1e-300, 0, false},
		{1, 1 + 1e-13, true},
		{1, 1 + 1e-11, false},
		// Far inside the float32 tolerance, far outside the float64 one.
		{1, 1 + 5e-6, false},
	}

	for _, tt := range tests {
		if got := fuzzyEqual(tt.a, tt.b); got != tt.want {
			t.Errorf("fuzzyEqual(float64 %v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestFuzzyFactor(t *testing.T) {
	if got := fuzzyFactor[float32](); got != 1e5 {
		t.Errorf("fuzzyFactor[float32]() = %v, want 1e5", got)
	}
	if got := fuzzyFactor[float64](); got != 1e12 {
		t.Errorf("fuzzyFactor[float64]() = %v, want 1e12", got)
	}
}
