package main

import (
	"fmt"
	"hash"
	"io"
	"slices"
	"strconv"
	"strings"
)

// digest is satisfied by the Digest type of every variant package.
type digest interface {
	Hex() string
	HexUpper() string
}

// algorithm binds one variant package to the command. Each variant
// registers itself from its own build-tagged file.
type algorithm struct {
	tag  string // name in BSD-style lines, e.g. "SHA256"
	bits int
	size int // digest length in bytes

	// sum streams r through a fresh hasher using buf for reads and returns
	// the digest and the number of bytes read.
	sum func(r io.Reader, buf []byte) (digest, int64, error)

	// parse decodes a hex digest of this variant.
	parse func(s string) (digest, error)
}

var algorithms = map[int]algorithm{}

func register(a algorithm) {
	if _, dup := algorithms[a.bits]; dup {
		panic(fmt.Sprintf("sha2sum: algorithm %d registered twice", a.bits))
	}
	algorithms[a.bits] = a
}

func algorithmByTag(tag string) (algorithm, bool) {
	for _, a := range algorithms {
		if a.tag == tag {
			return a, true
		}
	}
	return algorithm{}, false
}

// algorithmBySize finds the variant whose hex digests are hexLen long.
func algorithmBySize(hexLen int) (algorithm, bool) {
	for _, a := range algorithms {
		if 2*a.size == hexLen {
			return a, true
		}
	}
	return algorithm{}, false
}

func availableAlgorithms() string {
	bits := make([]int, 0, len(algorithms))
	for b := range algorithms {
		bits = append(bits, b)
	}
	slices.Sort(bits)
	names := make([]string, len(bits))
	for i, b := range bits {
		names[i] = strconv.Itoa(b)
	}
	if len(names) == 0 {
		return "none"
	}
	return strings.Join(names, ", ")
}

// feed writes everything from r into h, one buffer-sized chunk at a time.
// A hash.Hash never returns an error from Write.
func feed(h hash.Hash, r io.Reader, buf []byte) (int64, error) {
	var total int64
	for {
		n, err := r.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
			total += int64(n)
		}
		if err == io.EOF {
			return total, nil
		}
		if err != nil {
			return total, err
		}
	}
}
