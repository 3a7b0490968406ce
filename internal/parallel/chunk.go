// Package parallel splits index ranges into chunks and processes them on
// a bounded number of goroutines.
//
// A range of n elements is divided into ⌈n/size⌉ contiguous chunks. Every
// chunk but the last holds exactly size elements; the last holds the
// remainder. Chunks never overlap, so workers can write disjoint parts of a
// shared destination slice without synchronization.
package parallel

import "github.com/gogpu/ggmath"

// DefaultChunkSize is the number of elements per chunk when none is given.
// 4096 float32 values fill 16KB, which keeps a chunk in L1 cache.
const DefaultChunkSize = 4096

// Chunk is a half-open range [Start, End) of element indices.
type Chunk struct {
	// Index is the chunk number (0-based).
	Index int

	// Start is the first element index in the chunk.
	Start int

	// End is one past the last element index in the chunk.
	End int
}

// Len returns the number of elements in the chunk.
func (c Chunk) Len() int {
	return c.End - c.Start
}

// Count returns the number of chunks of the given size needed to cover n
// elements. A size of 0 or less selects DefaultChunkSize.
func Count(n, size int) int {
	if n <= 0 {
		return 0
	}
	if size <= 0 {
		size = DefaultChunkSize
	}
	return int(ggmath.DivCeil(uint(n), uint(size)))
}

// Plan divides n elements into chunks of the given size.
// A size of 0 or less selects DefaultChunkSize. Returns nil when n <= 0.
func Plan(n, size int) []Chunk {
	count := Count(n, size)
	if count == 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultChunkSize
	}

	chunks := make([]Chunk, count)
	for i := range chunks {
		start := i * size
		chunks[i] = Chunk{
			Index: i,
			Start: start,
			End:   min(start+size, n),
		}
	}
	return chunks
}
