//go:build !no_sha384

package main

import (
	"io"

	"github.com/Giulio2002/sha2/sha384"
)

func init() {
	register(algorithm{
		tag:  "SHA384",
		bits: 384,
		size: sha384.Size,
		sum: func(r io.Reader, buf []byte) (digest, int64, error) {
			var h sha384.Hasher
			n, err := feed(&h, r, buf)
			return h.Digest(), n, err
		},
		parse: func(s string) (digest, error) {
			d, err := sha384.ParseDigest(s)
			return d, err
		},
	})
}
