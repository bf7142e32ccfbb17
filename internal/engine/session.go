package engine

// Session is the streaming state of one SHA-2 computation: running state,
// partial block and bit count. It is a plain value with no pointers, so
// copying it snapshots the whole computation.
//
// The zero Session is Fresh: it loads the variant's IV on first use. Every
// method takes the Variant explicitly so the zero value needs no
// constructor; a Session must always be used with the same Variant.
//
// A Session is not safe for concurrent use.
type Session[W Word] struct {
	h      [8]W
	buf    [MaxBlockSize]byte
	n      int // bytes buffered in buf, always < BlockSize between calls
	length bitLength
	ready  bool
}

// Reset returns s to the Fresh state of v.
func (s *Session[W]) Reset(v *Variant[W]) {
	s.h = v.IV
	s.n = 0
	s.length = bitLength{}
	s.ready = true
}

// Write absorbs p. Chunking is irrelevant to the result: any split of a
// message across Write calls yields the same digest. An empty p is a no-op.
//
// The bit count saturates rather than wrapping once it exceeds the
// variant's length field (2^64-1 bits for SHA-224/256, 2^128-1 for
// SHA-384/512); digests of such messages are not standard-conformant.
func (s *Session[W]) Write(v *Variant[W], p []byte) {
	if !s.ready {
		s.Reset(v)
	}
	if len(p) == 0 {
		return
	}
	s.length.add(uint64(len(p)), v.LengthSize == 16)

	bs := v.BlockSize
	if s.n > 0 {
		c := copy(s.buf[s.n:bs], p)
		s.n += c
		p = p[c:]
		if s.n == bs {
			compress(&s.h, s.buf[:bs])
			s.n = 0
		}
	}

	if len(p) >= bs {
		full := len(p) - len(p)%bs
		compress(&s.h, p[:full])
		p = p[full:]
	}

	if len(p) > 0 {
		s.n = copy(s.buf[:], p)
	}
}

// Len returns the number of message bytes written since the last Reset.
func (s *Session[W]) Len() uint64 {
	return s.length.bytes()
}

// Finish writes the digest of everything written so far into dst, which
// must hold at least v.Size bytes, and returns v.Size. s is not modified.
func (s *Session[W]) Finish(v *Variant[W], dst []byte) int {
	// Pad and compress a copy so the caller can keep writing.
	d := *s
	if !d.ready {
		d.Reset(v)
	}

	var tail [2 * MaxBlockSize]byte
	n := frame(&tail, d.buf[:d.n], d.length, v.BlockSize, v.LengthSize)
	compress(&d.h, tail[:n])

	var out [8 * 8]byte
	putWords(out[:], &d.h, v.WordSize)
	return copy(dst[:v.Size], out[:v.Size])
}

// compress folds the full blocks of p into h with the compressor matching
// the word width.
func compress[W Word](h *[8]W, p []byte) {
	switch h := any(h).(type) {
	case *[8]uint32:
		block256(h, p)
	case *[8]uint64:
		block512(h, p)
	}
}

// putWords serializes h big-endian, wordSize bytes per word.
func putWords[W Word](dst []byte, h *[8]W, wordSize int) {
	for i, w := range h {
		x := uint64(w)
		for j := wordSize - 1; j >= 0; j-- {
			dst[i*wordSize+j] = byte(x)
			x >>= 8
		}
	}
}
