package sha224

import (
	"bytes"
	stdsha256 "crypto/sha256"
	"errors"
	"regexp"
	"strings"
	"testing"

	"github.com/Giulio2002/sha2/internal/engine"
	"github.com/Giulio2002/sha2/sha256"
)

func TestHashKnownAnswers(t *testing.T) {
	vectors := []struct {
		in, want string
	}{
		{"", "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f"},
		{"abc", "23097d223405d8228642a477bda255b32aadbce4bda0b3f7e36c9da7"},
		{"abcdbcdecdefdefgefghfghighijhijkijkljklmklmnlmnomnopnopq", "75388b16512776cc5dba5da1fd890150b0c6455cb4f58b1952522525"},
		{"example data", "90382cbfda2656313ad61fd74b32ddfa4bcc118f660bd4fba9228ced"},
	}
	for _, v := range vectors {
		if got := Hash([]byte(v.in)); got.Hex() != v.want {
			t.Errorf("Hash(%q) = %s, want %s", v.in, got, v.want)
		}
	}
}

func TestHashMillionA(t *testing.T) {
	data := bytes.Repeat([]byte{'a'}, 1_000_000)
	want := stdsha256.Sum224(data)
	h := New()
	for i := 0; i < len(data); i += 4096 {
		h.Update(data[i:min(i+4096, len(data))])
	}
	if got := h.Digest(); got != Digest(want) {
		t.Fatalf("one million 'a' = %s, want %x", got, want)
	}
}

func TestHashBoundaryLengths(t *testing.T) {
	for _, n := range []int{BlockSize - 8 - 1, BlockSize - 8, BlockSize} {
		data := bytes.Repeat([]byte{0x5c}, n)
		if got, want := Hash(data), stdsha256.Sum224(data); got != Digest(want) {
			t.Errorf("Hash(%d bytes) = %x, want %x", n, got, want)
		}
	}
}

// SHA-224 starts from its own IV, so it is not a truncated SHA-256.
func TestNotTruncatedSHA256(t *testing.T) {
	for _, in := range []string{"", "abc", strings.Repeat("prefix", 40)} {
		short := Hash([]byte(in))
		long := sha256.Hash([]byte(in))
		if bytes.Equal(short[:], long[:Size]) {
			t.Errorf("Hash(%q) equals the SHA-256 prefix %x", in, long[:Size])
		}
	}
}

func TestHasherChunked(t *testing.T) {
	data := make([]byte, BlockSize*5+13)
	for i := range data {
		data[i] = byte(i*31 + 1)
	}
	want := Hash(data)
	for _, chunk := range []int{1, 7, 37, BlockSize - 1, BlockSize, BlockSize + 1} {
		var h Hasher
		for i := 0; i < len(data); i += chunk {
			h.Update(data[i:min(i+chunk, len(data))])
		}
		if got := h.Digest(); got != want {
			t.Errorf("chunk=%d: %s vs %s", chunk, got, want)
		}
	}
}

func TestDigestThenUpdate(t *testing.T) {
	h := New().Update([]byte("ab"))
	if h.Digest() != h.Digest() {
		t.Fatal("Digest is not idempotent")
	}
	h.Update([]byte("c"))
	if got := h.Digest(); got != Hash([]byte("abc")) {
		t.Fatalf("Update after Digest = %s, want %s", got, Hash([]byte("abc")))
	}
}

func TestSizeMatchesVariant(t *testing.T) {
	if Size != variant.Size || BlockSize != variant.BlockSize {
		t.Fatalf("Size/BlockSize = %d/%d, engine has %d/%d", Size, BlockSize, variant.Size, variant.BlockSize)
	}
}

func TestDigestFormatting(t *testing.T) {
	d := Hash([]byte("abc"))
	if !regexp.MustCompile(`^[0-9a-f]{56}$`).MatchString(d.Hex()) {
		t.Errorf("Hex() = %q", d.Hex())
	}
	if d.HexUpper() != "23097D223405D8228642A477BDA255B32AADBCE4BDA0B3F7E36C9DA7" {
		t.Errorf("HexUpper() = %q", d.HexUpper())
	}
	parsed, err := ParseDigest(d.HexUpper())
	if err != nil || parsed != d {
		t.Fatalf("ParseDigest(%q) = %s, %v", d.HexUpper(), parsed, err)
	}
	// A SHA-256 digest has the wrong length.
	if _, err := ParseDigest(sha256.Hash(nil).Hex()); !errors.Is(err, engine.ErrDigestLength) {
		t.Fatalf("ParseDigest(sha256 digest): got %v, want ErrDigestLength", err)
	}
}

func FuzzHash(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("abc"))
	f.Add(make([]byte, BlockSize-8))
	f.Add(make([]byte, BlockSize*2+1))

	f.Fuzz(func(t *testing.T, data []byte) {
		want := Digest(stdsha256.Sum224(data))
		if got := Hash(data); got != want {
			t.Fatalf("Hash mismatch for len=%d\ngot:  %s\nwant: %s", len(data), got, want)
		}
		var h Hasher
		half := len(data) / 2
		h.Update(data[:half]).Update(data[half:])
		if got := h.Digest(); got != want {
			t.Fatalf("split Hasher mismatch for len=%d\ngot:  %s\nwant: %s", len(data), got, want)
		}
	})
}

func BenchmarkHash4K(b *testing.B) {
	data := make([]byte, 4096)
	b.SetBytes(int64(len(data)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		Hash(data)
	}
}
