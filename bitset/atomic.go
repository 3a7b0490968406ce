package bitset

import (
	"math/bits"
	"sync/atomic"

	"github.com/gogpu/ggmath"
)

// Atomic is a fixed-size set of bits indexed 0..Len()-1.
//
// The bits are packed into uint64 words (64 per word) updated with atomic
// OR and AND-NOT. All methods are safe for concurrent use without external
// synchronization. Methods that scan the whole set (Count, ForEach) see a
// word-by-word snapshot, not a consistent view of the entire set.
type Atomic struct {
	// words holds the bits. Bit i lives at words[i/64] & (1 << (i%64)).
	words []atomic.Uint64

	// n is the number of valid bits.
	n int
}

// NewAtomic creates an empty set of n bits.
// Returns nil if n is zero or negative.
func NewAtomic(n int) *Atomic {
	if n <= 0 {
		return nil
	}

	return &Atomic{
		words: make([]atomic.Uint64, ggmath.DivCeil(uint(n), 64)),
		n:     n,
	}
}

// Len returns the number of bits in the set.
func (a *Atomic) Len() int {
	return a.n
}

// Set sets bit i and reports whether it was previously clear.
// Does nothing and returns false if i is out of range.
func (a *Atomic) Set(i int) bool {
	if i < 0 || i >= a.n {
		return false
	}
	mask := uint64(1) << (i & 63)
	return a.words[i/64].Or(mask)&mask == 0
}

// Unset clears bit i and reports whether it was previously set.
// Does nothing and returns false if i is out of range.
func (a *Atomic) Unset(i int) bool {
	if i < 0 || i >= a.n {
		return false
	}
	mask := uint64(1) << (i & 63)
	return a.words[i/64].And(^mask)&mask != 0
}

// Test reports whether bit i is set. Returns false for out-of-range i.
func (a *Atomic) Test(i int) bool {
	if i < 0 || i >= a.n {
		return false
	}
	return a.words[i/64].Load()&(uint64(1)<<(i&63)) != 0
}

// SetAll sets every bit.
func (a *Atomic) SetAll() {
	full := a.n / 64
	for i := 0; i < full; i++ {
		a.words[i].Store(^uint64(0))
	}
	if rem := a.n % 64; rem > 0 {
		a.words[full].Store(uint64(1)<<rem - 1)
	}
}

// Clear clears every bit.
func (a *Atomic) Clear() {
	for i := range a.words {
		a.words[i].Store(0)
	}
}

// IsEmpty reports whether no bit is set.
func (a *Atomic) IsEmpty() bool {
	for i := range a.words {
		if a.words[i].Load() != 0 {
			return false
		}
	}
	return true
}

// Count returns the number of set bits.
func (a *Atomic) Count() int {
	count := 0
	for i := range a.words {
		count += bits.OnesCount64(a.words[i].Load())
	}
	return count
}

// ForEach calls fn for each set bit in ascending order without clearing it.
func (a *Atomic) ForEach(fn func(i int)) {
	if fn == nil {
		return
	}
	for w := range a.words {
		a.visit(w, a.words[w].Load(), fn)
	}
}

// TakeAll atomically clears the set word by word and returns the indices
// that were set, in ascending order. A bit set concurrently is either
// returned now or left for the next call, never lost.
func (a *Atomic) TakeAll() []int {
	var taken []int
	for w := range a.words {
		a.visit(w, a.words[w].Swap(0), func(i int) {
			taken = append(taken, i)
		})
	}
	return taken
}

// visit calls fn for each bit set in word, which holds bits w*64..w*64+63.
func (a *Atomic) visit(w int, word uint64, fn func(i int)) {
	for word != 0 {
		b := bits.TrailingZeros64(word)
		i := w*64 + b
		if i >= a.n {
			return
		}
		fn(i)
		word &^= 1 << b
	}
}
