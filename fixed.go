package ggmath

import (
	"math"

	"golang.org/x/image/math/fixed"
)

// Fractional bits of the fixed-point formats in golang.org/x/image/math/fixed.
const (
	bits26_6  = 6
	bits52_12 = 12
)

// ToInt26_6 converts x to 26.6 fixed point, rounding half up to the
// nearest 1/64 with RoundToBit. Values outside the representable range
// saturate; NaN converts to 0.
func ToInt26_6(x float32) fixed.Int26_6 {
	scaled := float64(RoundToBit(x, bits26_6)) * (1 << bits26_6)
	switch {
	case scaled != scaled:
		return 0
	case scaled >= math.MaxInt32:
		return fixed.Int26_6(math.MaxInt32)
	case scaled <= math.MinInt32:
		return fixed.Int26_6(math.MinInt32)
	}
	return fixed.Int26_6(scaled)
}

// ToInt52_12 converts x to 52.12 fixed point, rounding half up to the
// nearest 1/4096 with RoundToBit. Values outside the representable range
// saturate; NaN converts to 0.
func ToInt52_12(x float32) fixed.Int52_12 {
	scaled := float64(RoundToBit(x, bits52_12)) * (1 << bits52_12)
	switch {
	case scaled != scaled:
		return 0
	case scaled >= math.MaxInt64:
		return fixed.Int52_12(math.MaxInt64)
	case scaled <= math.MinInt64:
		return fixed.Int52_12(math.MinInt64)
	}
	return fixed.Int52_12(scaled)
}

// PointToFixed converts a float32 point to a 26.6 fixed-point point.
func PointToFixed(x, y float32) fixed.Point26_6 {
	return fixed.Point26_6{X: ToInt26_6(x), Y: ToInt26_6(y)}
}

// FromInt26_6 converts a 26.6 fixed-point value back to float32.
// The conversion is exact for magnitudes below 2^18.
func FromInt26_6(v fixed.Int26_6) float32 {
	return float32(v) / (1 << bits26_6)
}
