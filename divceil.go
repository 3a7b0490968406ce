package ggmath

import "golang.org/x/exp/constraints"

// DivCeil returns ⌈a/b⌉, the number of b-sized partitions needed to cover a.
//
// It is computed as a/b plus one when there is a remainder, so unlike the
// (a + b - 1) / b formula it cannot wrap around near the maximum of T:
// DivCeil(uint32(math.MaxUint32), 2) == 1<<31.
//
// DivCeil panics with the runtime integer divide-by-zero error if b is 0.
// A zero divisor means a zero-sized partition, which is a caller bug.
func DivCeil[T constraints.Unsigned](a, b T) T {
	q := a / b
	if a%b != 0 {
		q++
	}
	return q
}
