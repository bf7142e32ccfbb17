package engine

import (
	"bytes"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

func finish32(v *Variant[uint32], s *Session[uint32]) []byte {
	out := make([]byte, v.Size)
	s.Finish(v, out)
	return out
}

func finish64(v *Variant[uint64], s *Session[uint64]) []byte {
	out := make([]byte, v.Size)
	s.Finish(v, out)
	return out
}

// reference returns the standard library's digest for the named variant.
func reference(name string, data []byte) []byte {
	switch name {
	case "SHA-224":
		d := sha256.Sum224(data)
		return d[:]
	case "SHA-256":
		d := sha256.Sum256(data)
		return d[:]
	case "SHA-384":
		d := sha512.Sum384(data)
		return d[:]
	case "SHA-512":
		d := sha512.Sum512(data)
		return d[:]
	}
	panic("unknown variant " + name)
}

func patterned(n int) []byte {
	data := make([]byte, n)
	for i := range data {
		data[i] = byte(i * 7)
	}
	return data
}

func TestVariantTables(t *testing.T) {
	for _, v := range []*Variant[uint32]{SHA224, SHA256} {
		if v.BlockSize != 64 || v.WordSize != 4 || v.LengthSize != 8 || v.Rounds != 64 {
			t.Errorf("%s: unexpected parameters %+v", v.Name, *v)
		}
	}
	for _, v := range []*Variant[uint64]{SHA384, SHA512} {
		if v.BlockSize != 128 || v.WordSize != 8 || v.LengthSize != 16 || v.Rounds != 80 {
			t.Errorf("%s: unexpected parameters %+v", v.Name, *v)
		}
	}
	if SHA224.IV == SHA256.IV {
		t.Error("SHA-224 shares the SHA-256 IV")
	}
	if SHA384.IV == SHA512.IV {
		t.Error("SHA-384 shares the SHA-512 IV")
	}
	// The 64-bit constants extend the 32-bit ones.
	for i, k := range _K256 {
		if uint32(_K512[i]>>32) != k {
			t.Fatalf("_K512[%d] high half %08x != _K256[%d] %08x", i, _K512[i]>>32, i, k)
		}
	}
}

func TestFrameSingleBlock(t *testing.T) {
	var dst [2 * MaxBlockSize]byte
	tail := bytes.Repeat([]byte{0xaa}, 64-8-1)
	var l bitLength
	l.add(uint64(len(tail)), false)

	n := frame(&dst, tail, l, 64, 8)
	if n != 64 {
		t.Fatalf("frame(55 bytes) = %d bytes, want 64", n)
	}
	if dst[55] != 0x80 {
		t.Errorf("marker byte = %#x, want 0x80", dst[55])
	}
	if got := binary.BigEndian.Uint64(dst[56:64]); got != 55*8 {
		t.Errorf("length field = %d, want %d", got, 55*8)
	}
}

func TestFrameSpillsIntoSecondBlock(t *testing.T) {
	var dst [2 * MaxBlockSize]byte
	// Stale bytes must be cleared by frame.
	for i := range dst {
		dst[i] = 0xff
	}
	tail := bytes.Repeat([]byte{0x01}, 64-8)
	var l bitLength
	l.add(uint64(len(tail)), false)

	n := frame(&dst, tail, l, 64, 8)
	if n != 128 {
		t.Fatalf("frame(56 bytes) = %d bytes, want 128", n)
	}
	if dst[56] != 0x80 {
		t.Errorf("marker byte = %#x, want 0x80", dst[56])
	}
	for i := 57; i < 120; i++ {
		if dst[i] != 0 {
			t.Fatalf("fill byte %d = %#x, want 0", i, dst[i])
		}
	}
	if got := binary.BigEndian.Uint64(dst[120:128]); got != 56*8 {
		t.Errorf("length field = %d, want %d", got, 56*8)
	}
}

func TestFrameEmptyMessage(t *testing.T) {
	var dst [2 * MaxBlockSize]byte
	n := frame(&dst, nil, bitLength{}, 128, 16)
	if n != 128 {
		t.Fatalf("frame(empty) = %d bytes, want 128", n)
	}
	want := make([]byte, 128)
	want[0] = 0x80
	if !bytes.Equal(dst[:n], want) {
		t.Fatalf("frame(empty) = %x, want %x", dst[:n], want)
	}
}

func TestFrameWideLengthField(t *testing.T) {
	var dst [2 * MaxBlockSize]byte
	l := bitLength{hi: 0x0102030405060708, lo: 0x1112131415161718}
	n := frame(&dst, []byte{1, 2, 3}, l, 128, 16)
	if n != 128 {
		t.Fatalf("frame = %d bytes, want 128", n)
	}
	if got := binary.BigEndian.Uint64(dst[112:120]); got != l.hi {
		t.Errorf("high length word = %#x, want %#x", got, l.hi)
	}
	if got := binary.BigEndian.Uint64(dst[120:128]); got != l.lo {
		t.Errorf("low length word = %#x, want %#x", got, l.lo)
	}
}

func TestBitLengthCarry(t *testing.T) {
	var l bitLength
	l.add(math.MaxUint64>>3, true)
	l.add(1, true)
	// (2^61-1)*8 + 8 = 2^64: exactly one carry into hi.
	if l.hi != 1 || l.lo != 0 {
		t.Fatalf("after 2^61 bytes: hi=%d lo=%d, want hi=1 lo=0", l.hi, l.lo)
	}
	if got := l.bytes(); got != 1<<61 {
		t.Errorf("bytes() = %d, want %d", got, uint64(1)<<61)
	}
}

func TestBitLengthSaturatesNarrow(t *testing.T) {
	var l bitLength
	l.add(math.MaxUint64>>3, false)
	if l.lo != math.MaxUint64-7 {
		t.Fatalf("lo = %d, want %d", l.lo, uint64(math.MaxUint64-7))
	}
	l.add(1, false)
	if l.hi != 0 || l.lo != math.MaxUint64 {
		t.Fatalf("narrow counter wrapped: hi=%d lo=%d", l.hi, l.lo)
	}
	l.add(1<<40, false)
	if l.hi != 0 || l.lo != math.MaxUint64 {
		t.Fatalf("saturated narrow counter moved: hi=%d lo=%d", l.hi, l.lo)
	}
}

func TestBitLengthSaturatesWide(t *testing.T) {
	l := bitLength{hi: math.MaxUint64, lo: math.MaxUint64 - 15}
	l.add(4, true)
	if l.hi != math.MaxUint64 || l.lo != math.MaxUint64 {
		t.Fatalf("wide counter wrapped: hi=%d lo=%d", l.hi, l.lo)
	}
	if got := l.bytes(); got != math.MaxUint64 {
		t.Errorf("bytes() = %d, want saturation", got)
	}
}

// TestPaddingBoundaries covers the lengths on either side of the one-block /
// two-block split, and whole blocks, for every variant.
func TestPaddingBoundaries(t *testing.T) {
	check32 := func(v *Variant[uint32]) {
		for _, n := range []int{0, 1, 54, 55, 56, 57, 63, 64, 65, 119, 120, 127, 128} {
			data := patterned(n)
			var s Session[uint32]
			s.Write(v, data)
			if got, want := finish32(v, &s), reference(v.Name, data); !bytes.Equal(got, want) {
				t.Errorf("%s len=%d: got %x, want %x", v.Name, n, got, want)
			}
		}
	}
	check64 := func(v *Variant[uint64]) {
		for _, n := range []int{0, 1, 110, 111, 112, 113, 127, 128, 129, 239, 240, 255, 256} {
			data := patterned(n)
			var s Session[uint64]
			s.Write(v, data)
			if got, want := finish64(v, &s), reference(v.Name, data); !bytes.Equal(got, want) {
				t.Errorf("%s len=%d: got %x, want %x", v.Name, n, got, want)
			}
		}
	}
	check32(SHA224)
	check32(SHA256)
	check64(SHA384)
	check64(SHA512)
}

func TestSessionChunkInvariance(t *testing.T) {
	data := patterned(3*128 + 77)
	for _, chunk := range []int{1, 3, 37, 63, 64, 65, 127, 128, 129, len(data)} {
		var s32 Session[uint32]
		var s64 Session[uint64]
		for i := 0; i < len(data); i += chunk {
			end := min(i+chunk, len(data))
			s32.Write(SHA256, data[i:end])
			s32.Write(SHA256, nil)
			s64.Write(SHA512, data[i:end])
		}
		if got, want := finish32(SHA256, &s32), reference("SHA-256", data); !bytes.Equal(got, want) {
			t.Errorf("SHA-256 chunk=%d: got %x, want %x", chunk, got, want)
		}
		if got, want := finish64(SHA512, &s64), reference("SHA-512", data); !bytes.Equal(got, want) {
			t.Errorf("SHA-512 chunk=%d: got %x, want %x", chunk, got, want)
		}
		if s32.Len() != uint64(len(data)) || s64.Len() != uint64(len(data)) {
			t.Errorf("chunk=%d: Len() = %d/%d, want %d", chunk, s32.Len(), s64.Len(), len(data))
		}
	}
}

func TestFinishLeavesSessionUntouched(t *testing.T) {
	var s Session[uint64]
	s.Write(SHA384, []byte("partial "))
	before := s
	first := finish64(SHA384, &s)
	if s != before {
		t.Fatal("Finish modified the session")
	}
	if second := finish64(SHA384, &s); !bytes.Equal(first, second) {
		t.Fatalf("repeated Finish differs: %x vs %x", first, second)
	}
	s.Write(SHA384, []byte("message"))
	if got, want := finish64(SHA384, &s), reference("SHA-384", []byte("partial message")); !bytes.Equal(got, want) {
		t.Fatalf("write after Finish: got %x, want %x", got, want)
	}
}

func TestZeroSessionIsFresh(t *testing.T) {
	var zero, reset Session[uint32]
	reset.Reset(SHA224)
	if got, want := finish32(SHA224, &zero), finish32(SHA224, &reset); !bytes.Equal(got, want) {
		t.Fatalf("zero session digest %x != reset session digest %x", got, want)
	}
	if got, want := finish32(SHA224, &zero), reference("SHA-224", nil); !bytes.Equal(got, want) {
		t.Fatalf("zero session digest %x, want %x", got, want)
	}
}

func TestHexRoundTrip(t *testing.T) {
	digest := reference("SHA-256", []byte("abc"))
	lower := Hex(digest)
	upper := HexUpper(digest)
	if len(lower) != 64 || len(upper) != 64 {
		t.Fatalf("hex lengths %d/%d, want 64", len(lower), len(upper))
	}
	var a, b [32]byte
	if err := ParseHex("SHA-256", lower, a[:]); err != nil {
		t.Fatalf("ParseHex(lower): %v", err)
	}
	if err := ParseHex("SHA-256", upper, b[:]); err != nil {
		t.Fatalf("ParseHex(upper): %v", err)
	}
	if !bytes.Equal(a[:], digest) || a != b {
		t.Fatalf("round trip mismatch: %x / %x, want %x", a, b, digest)
	}
}

func TestParseHexErrors(t *testing.T) {
	var dst [32]byte
	if err := ParseHex("SHA-256", "abcd", dst[:]); !errors.Is(err, ErrDigestLength) {
		t.Errorf("short input: got %v, want ErrDigestLength", err)
	}
	// 66 characters: one byte too long.
	long := Hex(make([]byte, 33))
	if err := ParseHex("SHA-256", long, dst[:]); !errors.Is(err, ErrDigestLength) {
		t.Errorf("66-character input: got %v, want ErrDigestLength", err)
	}
	bad := "zz" + Hex(make([]byte, 31))
	if err := ParseHex("SHA-256", bad, dst[:]); !errors.Is(err, ErrDigestEncoding) {
		t.Errorf("non-hex input: got %v, want ErrDigestEncoding", err)
	}
}

func BenchmarkBlock256(b *testing.B) {
	data := patterned(64 * 64)
	h := SHA256.IV
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		block256(&h, data)
	}
}

func BenchmarkBlock512(b *testing.B) {
	data := patterned(128 * 32)
	h := SHA512.IV
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		block512(&h, data)
	}
}
