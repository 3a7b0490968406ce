package ggmath

import (
	"encoding/binary"
	"encoding/hex"
	"sync"

	"lukechampine.com/blake3"
)

// HashSize is the size of a Hash in bytes.
const HashSize = 32

// Hash is a content hash of float32 data taken over canonical bits, so
// inputs that are CanonEqual element by element hash identically.
type Hash [HashSize]byte

// String returns the hex encoding of h.
func (h Hash) String() string {
	return hex.EncodeToString(h[:])
}

// IsZero reports whether h is the zero hash.
func (h Hash) IsZero() bool {
	return h == Hash{}
}

// hasherPool reuses unkeyed Hashers across HashFloat32s calls.
var hasherPool = sync.Pool{
	New: func() any { return NewHasher(nil) },
}

// HashFloat32s returns the unkeyed content hash of vals.
// It is safe for concurrent use.
func HashFloat32s(vals ...float32) Hash {
	h := hasherPool.Get().(*Hasher)
	h.WriteFloat32s(vals)
	sum := h.Sum()
	h.Reset()
	hasherPool.Put(h)
	return sum
}

// Hasher accumulates float32 values into a BLAKE3 content hash.
// Each value is written as the little-endian encoding of its CanonBits.
//
// A Hasher is not safe for concurrent use.
type Hasher struct {
	h   *blake3.Hasher
	buf [4]byte
}

// NewHasher returns a Hasher. A non-nil key selects keyed hashing, which
// separates hash domains (for example, vertex positions from colors).
// The key must be exactly HashSize bytes; NewHasher panics otherwise.
func NewHasher(key []byte) *Hasher {
	if key != nil && len(key) != HashSize {
		panic("ggmath: hasher key must be 32 bytes")
	}
	return &Hasher{h: blake3.New(HashSize, key)}
}

// WriteFloat32 adds x to the hash.
func (h *Hasher) WriteFloat32(x float32) {
	binary.LittleEndian.PutUint32(h.buf[:], CanonBits(x))
	_, _ = h.h.Write(h.buf[:]) // blake3 Write never returns an error
}

// WriteFloat32s adds every value in vals to the hash, in order.
func (h *Hasher) WriteFloat32s(vals []float32) {
	for _, v := range vals {
		h.WriteFloat32(v)
	}
}

// WriteUint32 adds a raw uint32 to the hash, for lengths and tags that
// frame the float data.
func (h *Hasher) WriteUint32(v uint32) {
	binary.LittleEndian.PutUint32(h.buf[:], v)
	_, _ = h.h.Write(h.buf[:])
}

// Sum returns the hash of everything written so far.
// It does not change the underlying state.
func (h *Hasher) Sum() Hash {
	var out Hash
	h.h.Sum(out[:0])
	return out
}

// Reset clears everything written so far, keeping the key.
func (h *Hasher) Reset() {
	h.h.Reset()
}
