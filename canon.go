package ggmath

import "math"

// CanonNaNBits is the bit pattern every NaN canonicalizes to.
// It is the standard IEEE-754 single-precision quiet NaN.
const CanonNaNBits uint32 = 0x7FC00000

// CanonBits returns the canonical bit encoding of x.
//
// The raw encoding from math.Float32bits distinguishes values that must be
// treated as identical when float data is hashed or deduplicated. CanonBits
// collapses them:
//   - every NaN, whatever its sign or payload, maps to CanonNaNBits
//   - -0 and +0 both map to the encoding of +0
//   - every other value, including ±Inf, maps to its raw encoding
//
// CanonBits is total and idempotent:
// CanonBits(math.Float32frombits(CanonBits(x))) == CanonBits(x).
func CanonBits(x float32) uint32 {
	if x != x {
		return CanonNaNBits
	}

	if x == 0 {
		return 0
	}

	return math.Float32bits(x)
}

// Canon returns the canonical representative of x: the float32 whose raw
// encoding is CanonBits(x).
func Canon(x float32) float32 {
	return math.Float32frombits(CanonBits(x))
}

// CanonEqual reports whether a and b have the same canonical encoding.
// Unlike ==, it treats any two NaNs as equal. Like ==, it treats -0 and +0
// as equal.
func CanonEqual(a, b float32) bool {
	return CanonBits(a) == CanonBits(b)
}
