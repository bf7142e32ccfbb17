// Package sha384 implements SHA-384 as defined in FIPS 180-4: the SHA-512
// compression function started from a distinct initial state, truncated to
// the first 48 bytes.
//
// The message bit counter is 128 bits wide and saturates at 2^128-1.
package sha384

import (
	"hash"

	"github.com/Giulio2002/sha2/internal/engine"
)

const (
	// Size is the size of a SHA-384 digest in bytes.
	Size = 48

	// BlockSize is the SHA-384 block size in bytes.
	BlockSize = 128
)

var variant = engine.SHA384

// Hash computes the SHA-384 digest of data.
func Hash(data []byte) Digest {
	var s engine.Session[uint64]
	s.Write(variant, data)
	var d Digest
	s.Finish(variant, d[:])
	return d
}

// Hasher is a streaming SHA-384 hasher. The zero value is ready to use.
type Hasher struct {
	s engine.Session[uint64]
}

var _ hash.Hash = (*Hasher)(nil)

// New returns a fresh Hasher.
func New() *Hasher {
	h := new(Hasher)
	h.Reset()
	return h
}

func (h *Hasher) Reset() {
	h.s.Reset(variant)
}

// Update absorbs p and returns h for chaining.
func (h *Hasher) Update(p []byte) *Hasher {
	h.s.Write(variant, p)
	return h
}

func (h *Hasher) Write(p []byte) (int, error) {
	h.s.Write(variant, p)
	return len(p), nil
}

// Digest returns the digest of everything written so far.
// Does not modify the hasher state.
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
