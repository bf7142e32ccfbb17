// Package sha256 implements SHA-256 as defined in FIPS 180-4.
//
// Hash computes the digest of data already in memory. For data that
// arrives in pieces, feed a Hasher with Update (or Write) and read the
// result with Digest:
//
//	var h sha256.Hasher
//	h.Update(header).Update(body)
//	fmt.Println(h.Digest())
//
// Digest does not finalize the Hasher: more data may be written afterwards
// and Digest called again. Any split of a message across Update calls gives
// the same digest as hashing it in one piece.
//
// The message bit counter saturates at 2^64-1 bits; digests of longer
// messages are not standard-conformant.
package sha256

import (
	"hash"

	"github.com/Giulio2002/sha2/internal/engine"
)

const (
	// Size is the size of a SHA-256 digest in bytes.
	Size = 32

	// BlockSize is the SHA-256 block size in bytes.
	BlockSize = 64
)

var variant = engine.SHA256

// Hash computes the SHA-256 digest of data.
func Hash(data []byte) Digest {
	var s engine.Session[uint32]
	s.Write(variant, data)
	var d Digest
	s.Finish(variant, d[:])
	return d
}

// Hasher is a streaming SHA-256 hasher. The zero value is ready to use.
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
