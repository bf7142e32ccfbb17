//go:build !no_sha224

package main

import (
	"io"

	"github.com/Giulio2002/sha2/sha224"
)

func init() {
	register(algorithm{
		tag:  "SHA224",
		bits: 224,
		size: sha224.Size,
		sum: func(r io.Reader, buf []byte) (digest, int64, error) {
			var h sha224.Hasher
			n, err := feed(&h, r, buf)
			return h.Digest(), n, err
		},
		parse: func(s string) (digest, error) {
			d, err := sha224.ParseDigest(s)
			return d, err
		},
	})
}
