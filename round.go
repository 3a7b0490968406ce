package ggmath

import (
	"errors"
	"fmt"
	"math"
)

// MaxRoundBits is the largest precision for which the scale factor 2^bits
// is a finite float32.
const MaxRoundBits = 127

// ErrPrecisionRange is returned by NewPrecision when the requested number
// of fractional bits exceeds MaxRoundBits.
var ErrPrecisionRange = errors.New("ggmath: precision bits out of range")

// RoundToBit rounds x to the nearest multiple of 2^-bits, with ties going
// toward positive infinity:
//
//	floor(x·2^bits + 0.5) · 2^-bits
//
// The multiply-add is fused, so x·2^bits + 0.5 is rounded to float32 only
// once. The result therefore has at most bits fractional bits.
//
// Two edge cases are part of the contract:
//   - When 2^-bits is finer than the ulp of x, adding 0.5 cannot change
//     the scaled value and RoundToBit returns x unchanged. Callers asking
//     for more precision than x carries silently get no rounding.
//   - Values far below 2^-bits keep their significance instead of snapping
//     to a power of two: RoundToBit(1.23456e-16, 64) lies strictly between
//     1.234e-16 and 1.23456e-16.
//
// For negative inputs ties also go toward +Inf (-1.5 rounds to -1 at
// bits=0) and -0 rounds to +0. NaN and ±Inf propagate unchanged. If
// x·2^bits overflows float32 the result is ±Inf.
//
// bits is expected to be a fixed value per call site and is not checked.
// Above MaxRoundBits the scale overflows and the result is NaN or ±Inf;
// use NewPrecision to validate a precision once up front.
func RoundToBit(x float32, bits uint) float32 {
	shiftLeft := exp2f(bits)
	shiftRight := 1 / shiftLeft

	return floorf(fmaf(x, shiftLeft, 0.5)) * shiftRight
}

// Precision is a validated RoundToBit precision with its scale factors
// precomputed.
//
// The zero value rounds to whole numbers (0 fractional bits).
type Precision struct {
	bits       uint
	shiftLeft  float32
	shiftRight float32
}

// NewPrecision returns a Precision that rounds to bits fractional bits.
// It returns ErrPrecisionRange if bits exceeds MaxRoundBits.
func NewPrecision(bits uint) (Precision, error) {
	if bits > MaxRoundBits {
		return Precision{}, fmt.Errorf("%w: %d > %d", ErrPrecisionRange, bits, MaxRoundBits)
	}
	shiftLeft := exp2f(bits)
	return Precision{
		bits:       bits,
		shiftLeft:  shiftLeft,
		shiftRight: 1 / shiftLeft,
	}, nil
}

// MustPrecision is like NewPrecision but panics if bits is out of range.
// It is intended for package-level precision constants.
func MustPrecision(bits uint) Precision {
	p, err := NewPrecision(bits)
	if err != nil {
		panic(err)
	}
	return p
}

// Round rounds x to the precision's grid. It is equivalent to
// RoundToBit(x, p.Bits()).
func (p Precision) Round(x float32) float32 {
	if p.shiftLeft == 0 {
		return floorf(fmaf(x, 1, 0.5))
	}
	return floorf(fmaf(x, p.shiftLeft, 0.5)) * p.shiftRight
}

// Bits returns the number of fractional bits kept by Round.
func (p Precision) Bits() uint {
	return p.bits
}

// Step returns the grid spacing 2^-bits.
func (p Precision) Step() float32 {
	if p.shiftLeft == 0 {
		return 1
	}
	return p.shiftRight
}

// String returns a short description such as "2^-4".
func (p Precision) String() string {
	return fmt.Sprintf("2^-%d", p.bits)
}

// exp2f returns 2^n as a float32, or +Inf when it does not fit.
func exp2f(n uint) float32 {
	if n > MaxRoundBits {
		return float32(math.Inf(1))
	}
	return float32(math.Ldexp(1, int(n)))
}

// fmaf computes x*y + z with a single rounding to float32.
//
// Callers only pass a power of two for y, so x*y is exact in float64 and
// carries a 24-bit significand. A float64 sum of two 24-bit significands
// rounds to float32 without double-rounding error, so routing through
// math.FMA yields the correctly rounded float32 result.
func fmaf(x, y, z float32) float32 {
	return float32(math.FMA(float64(x), float64(y), float64(z)))
}

// floorf returns the greatest integer value less than or equal to x.
func floorf(x float32) float32 {
	return float32(math.Floor(float64(x)))
}
