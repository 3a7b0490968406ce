// Package ggmath provides the numeric primitives shared by the gogpu
// geometry and rasterization packages.
//
// # Overview
//
// The package is a leaf: it depends on nothing else in the module. Three
// independent, stateless primitives make up its core:
//
//   - [CanonBits] maps a float32 to a canonical uint32 encoding in which
//     every NaN shares one bit pattern and -0 equals +0. Use it wherever
//     float data is hashed, deduplicated or compared by content.
//   - [RoundToBit] quantizes a float32 to a grid of spacing 2^-bits using
//     round-half-up, so that tolerance-sensitive comparisons see values
//     with a bounded number of fractional bits.
//   - [DivCeil] is ceiling division for any unsigned integer type, used to
//     count fixed-size partitions (tiles, workgroups, words) covering an
//     extent.
//
// # Quick Start
//
//	import "github.com/gogpu/ggmath"
//
//	key := ggmath.CanonBits(x)               // stable hash/equality key
//	q := ggmath.RoundToBit(123.456, 4)       // 123.4375
//	tiles := ggmath.DivCeil[uint32](300, 64) // 5
//
// # Concurrency
//
// Every function in this package is pure and safe to call from any number
// of goroutines. The slice forms in the batch sub-package fan the same
// functions out over worker goroutines.
//
// # Related Packages
//
//   - batch: parallel canonicalization and rounding of float32 slices
//   - grid: partition counting for 2D extents and GPU workgroups
//   - bitset: compact bit sets for slot allocation and dirty tracking
//   - dedup: canonical-key deduplication of points
package ggmath

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
