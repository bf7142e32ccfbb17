package engine

import (
	"encoding/binary"
	"math"
	"math/bits"
)

// bitLength counts message bits as a 128-bit integer. The counter
// saturates instead of wrapping: at 2^64-1 for the 32-bit family, whose
// length field is 8 bytes, and at 2^128-1 for the 64-bit family. Messages
// that long produce a pinned, degenerate length field.
type bitLength struct {
	hi, lo uint64
}

// add counts n more bytes. wide selects the 128-bit limit.
func (l *bitLength) add(n uint64, wide bool) {
	lo, carry := bits.Add64(l.lo, n<<3, 0)
	hi, overflow := bits.Add64(l.hi, n>>61, carry)
	switch {
	case !wide && (hi != 0 || overflow != 0):
		l.hi, l.lo = 0, math.MaxUint64
	case overflow != 0:
		l.hi, l.lo = math.MaxUint64, math.MaxUint64
	default:
		l.hi, l.lo = hi, lo
	}
}

// bytes returns the number of whole bytes counted, saturating at
// math.MaxUint64.
func (l bitLength) bytes() uint64 {
	if l.hi>>3 != 0 {
		return math.MaxUint64
	}
	return l.hi<<61 | l.lo>>3
}

// put writes the counter big-endian into dst, which is 8 or 16 bytes.
func (l bitLength) put(dst []byte) {
	switch len(dst) {
	case 8:
		binary.BigEndian.PutUint64(dst, l.lo)
	case 16:
		binary.BigEndian.PutUint64(dst, l.hi)
		binary.BigEndian.PutUint64(dst[8:], l.lo)
	default:
		panic("engine: length field must be 8 or 16 bytes")
	}
}
