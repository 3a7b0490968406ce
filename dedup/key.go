// Package dedup deduplicates float32 points by content.
//
// Points are compared through their canonical bits (ggmath.CanonBits), so
// -0 and +0 are the same coordinate and every NaN is the same coordinate.
// With a Precision, coordinates are first rounded to a fixed number of
// fractional bits, merging points that differ only below that grid.
//
// Two structures are provided:
//   - Table assigns dense ids to every distinct point it sees. It is
//     sharded and safe for concurrent use.
//   - Window remembers only the most recently seen points, like a GPU
//     post-transform vertex cache, and evicts the least recently used.
package dedup

import (
	"math"

	"github.com/gogpu/ggmath"
)

// Point is a 2D point in float32 coordinates.
type Point struct {
	X, Y float32
}

// Key is the canonical identity of a Point.
type Key [2]uint32

// PointKey returns the canonical key of (x, y).
func PointKey(x, y float32) Key {
	return Key{ggmath.CanonBits(x), ggmath.CanonBits(y)}
}

// QuantizedKey returns the canonical key of (x, y) after rounding both
// coordinates with p.
func QuantizedKey(x, y float32, p ggmath.Precision) Key {
	return PointKey(p.Round(x), p.Round(y))
}

// Point returns the canonical point the key was made from.
func (k Key) Point() Point {
	return Point{X: math.Float32frombits(k[0]), Y: math.Float32frombits(k[1])}
}

// FNV-1a 64-bit parameters.
const (
	offset64 = 14695981039346656037
	prime64  = 1099511628211
)

// Hash computes the FNV-1a hash of the key's canonical bits, taken as
// 8 little-endian bytes. It does not allocate.
func (k Key) Hash() uint64 {
	h := uint64(offset64)
	for _, v := range k {
		for shift := 0; shift < 32; shift += 8 {
			h ^= uint64(byte(v >> shift))
			h *= prime64
		}
	}
	return h
}
