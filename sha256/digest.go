package sha256

import "github.com/Giulio2002/sha2/internal/engine"

// Digest is a SHA-256 digest. Digests compare byte-exactly with ==.
type Digest [Size]byte

// ParseDigest parses a 64-character hex digest of either case.
func ParseDigest(s string) (Digest, error) {
	var d Digest
	if err := engine.ParseHex(variant.Name, s, d[:]); err != nil {
		return Digest{}, err
	}
	return d, nil
}

// Bytes returns a copy of the digest bytes.
func (d Digest) Bytes() []byte {
	b := d
	return b[:]
}

// Hex returns the digest as 64 lowercase hex characters.
func (d Digest) Hex() string {
	return engine.Hex(d[:])
}

// HexUpper returns the digest as 64 uppercase hex characters.
func (d Digest) HexUpper() string {
	return engine.HexUpper(d[:])
}

func (d Digest) String() string {
	return d.Hex()
}

// MarshalText implements encoding.TextMarshaler using lowercase hex.
func (d Digest) MarshalText() ([]byte, error) {
	return []byte(d.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Digest) UnmarshalText(text []byte) error {
	parsed, err := ParseDigest(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
