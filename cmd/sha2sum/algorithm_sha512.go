//go:build !no_sha512

package main

import (
	"io"

	"github.com/Giulio2002/sha2/sha512"
)

func init() {
	register(algorithm{
		tag:  "SHA512",
		bits: 512,
		size: sha512.Size,
		sum: func(r io.Reader, buf []byte) (digest, int64, error) {
			var h sha512.Hasher
			n, err := feed(&h, r, buf)
			return h.Digest(), n, err
		},
		parse: func(s string) (digest, error) {
			d, err := sha512.ParseDigest(s)
			return d, err
		},
	})
}
