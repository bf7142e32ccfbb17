// Package sha224 implements SHA-224 as defined in FIPS 180-4.
//
// SHA-224 runs the SHA-256 compression function from its own initial state
// and keeps the first 28 bytes of the result. Its digests are not prefixes
// of SHA-256 digests.
//
// Usage mirrors the other variant packages: Hash for data in memory, a
// Hasher fed through Update or Write for streams. The bit counter saturates
// at 2^64-1 bits.
package sha224

import (
	"hash"

	"github.com/Giulio2002/sha2/internal/engine"
)

const (
	// Size is the size of a SHA-224 digest in bytes.
	Size = 28

	// BlockSize is the SHA-224 block size in bytes.
	BlockSize = 64
)

var variant = engine.SHA224

// Hash computes the SHA-224 digest of data.
func Hash(data []byte) Digest {
	var s engine.Session[uint32]
	s.Write(variant, data)
	var d Digest
	s.Finish(variant, d[:])
	return d
}

// Hasher is a streaming SHA-224 hasher. The zero value is ready to use.
// Designed for stack allocation.
type Hasher struct {
	s engine.Session[uint32]
}

var _ hash.Hash = (*Hasher)(nil)

// New returns a fresh Hasher.
func New() *Hasher {
	h := new(Hasher)
	h.Reset()
	return h
}

// Reset discards all written data.
func (h *Hasher) Reset() {
	h.s.Reset(variant)
}

// Update absorbs p and returns h for chaining.
func (h *Hasher) Update(p []byte) *Hasher {
	h.s.Write(variant, p)
	return h
}

// Write absorbs p. It never returns an error.
func (h *Hasher) Write(p []byte) (int, error) {
	h.s.Write(variant, p)
	return len(p), nil
}

// Digest returns the SHA-224 digest of everything written so far without
// modifying the hasher.
func (h *Hasher) Digest() Digest {
	var d Digest
	h.s.Finish(variant, d[:])
	return d
}

// Sum appends the current digest to b. Does not modify the hasher state.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Digest()
	return append(b, d[:]...)
}

// Len returns the number of bytes written since the last Reset.
func (h *Hasher) Len() uint64 { return h.s.Len() }

func (h *Hasher) Size() int { return Size }

func (h *Hasher) BlockSize() int { return BlockSize }
