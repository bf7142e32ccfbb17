// Package sha512 implements SHA-512 as defined in FIPS 180-4.
//
//	d := sha512.Hash(data)
//
//	h := sha512.New()
//	for chunk := range chunks {
//		h.Update(chunk)
//	}
//	d = h.Digest()
//
// Digest is a read: the Hasher keeps accepting input afterwards. The message
// bit counter is 128 bits wide and saturates at 2^128-1.
package sha512

import (
	"hash"

	"github.com/Giulio2002/sha2/internal/engine"
)

const (
	// Size is the size of a SHA-512 digest in bytes.
	Size = 64

	// BlockSize is the SHA-512 block size in bytes.
	BlockSize = 128
)

var variant = engine.SHA512

// Hash computes the SHA-512 digest of data.
func Hash(data []byte) Digest {
	var s engine.Session[uint64]
	s.Write(variant, data)
	var d Digest
	s.Finish(variant, d[:])
	return d
}

// Hasher is a streaming SHA-512 hasher. The zero value is ready to use.
// Designed for stack allocation.
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
