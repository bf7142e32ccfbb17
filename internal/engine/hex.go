package engine

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrDigestLength reports a hex digest that decodes to the wrong number
	// of bytes for its variant.
	ErrDigestLength = errors.New("wrong digest length")

	// ErrDigestEncoding reports a digest string that is not valid hex.
	ErrDigestEncoding = errors.New("invalid digest encoding")
)

// Hex renders digest as 2*len(digest) lowercase hex characters.
func Hex(digest []byte) string {
	return hex.EncodeToString(digest)
}

// HexUpper renders digest as 2*len(digest) uppercase hex characters.
func HexUpper(digest []byte) string {
	return strings.ToUpper(hex.EncodeToString(digest))
}

// ParseHex decodes a hex digest of either case into dst. The string must
// encode exactly len(dst) bytes. name identifies the variant in errors.
func ParseHex(name string, s string, dst []byte) error {
	if len(s) != 2*len(dst) {
		return fmt.Errorf("parsing %s digest: %d hex characters, want %d: %w", name, len(s), 2*len(dst), ErrDigestLength)
	}
	if _, err := hex.Decode(dst, []byte(s)); err != nil {
		return fmt.Errorf("parsing %s digest: %w: %w", name, ErrDigestEncoding, err)
	}
	return nil
}
