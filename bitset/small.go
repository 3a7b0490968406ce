// Package bitset provides compact bit sets.
//
//   - Small is a fixed 256-slot set stored inline in four words. It is a
//     value type suitable for tracking small id spaces such as layer slots.
//   - Atomic is a growable set of n bits with lock-free updates, suitable
//     for marking dirty cells from many goroutines.
package bitset

import "math/bits"

// SmallCap is the number of slots in a Small set.
const SmallCap = 256

// Small is a set of uint8 values. The zero value is an empty set.
type Small struct {
	words [SmallCap / 64]uint64
}

// Insert adds v to the set and reports whether it was absent.
func (s *Small) Insert(v uint8) bool {
	w, mask := v/64, uint64(1)<<(v%64)
	absent := s.words[w]&mask == 0
	s.words[w] |= mask
	return absent
}

// Remove deletes v from the set and reports whether it was present.
func (s *Small) Remove(v uint8) bool {
	w, mask := v/64, uint64(1)<<(v%64)
	present := s.words[w]&mask != 0
	s.words[w] &^= mask
	return present
}

// Contains reports whether v is in the set.
func (s *Small) Contains(v uint8) bool {
	return s.words[v/64]&(uint64(1)<<(v%64)) != 0
}

// Clear removes every value.
func (s *Small) Clear() {
	s.words = [SmallCap / 64]uint64{}
}

// IsEmpty reports whether the set has no values.
func (s *Small) IsEmpty() bool {
	return s.words == [SmallCap / 64]uint64{}
}

// Len returns the number of values in the set.
func (s *Small) Len() int {
	n := 0
	for _, w := range s.words {
		n += bits.OnesCount64(w)
	}
	return n
}

// FirstEmptySlot returns the smallest value not in the set.
// ok is false when all 256 slots are taken.
func (s *Small) FirstEmptySlot() (v uint8, ok bool) {
	for i, w := range s.words {
		if w != ^uint64(0) {
			return uint8(i*64 + bits.TrailingZeros64(^w)), true
		}
	}
	return 0, false
}

// ForEach calls fn for each value in ascending order.
func (s *Small) ForEach(fn func(v uint8)) {
	for i, w := range s.words {
		for w != 0 {
			b := bits.TrailingZeros64(w)
			fn(uint8(i*64 + b))
			w &^= 1 << b
		}
	}
}
