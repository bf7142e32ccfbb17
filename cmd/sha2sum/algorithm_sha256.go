//go:build !no_sha256

package main

import (
	"io"

	"github.com/Giulio2002/sha2/sha256"
)

func init() {
	register(algorithm{
		tag:  "SHA256",
		bits: 256,
		size: sha256.Size,
		sum: func(r io.Reader, buf []byte) (digest, int64, error) {
			var h sha256.Hasher
			n, err := feed(&h, r, buf)
			return h.Digest(), n, err
		},
		parse: func(s string) (digest, error) {
			d, err := sha256.ParseDigest(s)
			return d, err
		},
	})
}
