package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"
)

// openInput opens name for reading; "-" is stdin, which is never closed.
func openInput(name string, stdin io.Reader) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(stdin), nil
	}
	file, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", name, err)
	}
	return file, nil
}

// hashInput streams one named input through algo.
func hashInput(algo algorithm, name string, stdin io.Reader, buf []byte, logger *slog.Logger) (digest, error) {
	input, err := openInput(name, stdin)
	if err != nil {
		return nil, err
	}
	defer input.Close()

	start := time.Now()
	d, n, err := algo.sum(input, buf)
	if err != nil {
		return nil, fmt.Errorf("hashing %s: %w", name, err)
	}
	logger.Debug("hashed input",
		"path", name,
		"algorithm", algo.tag,
		"bytes", n,
		"duration", time.Since(start),
	)
	return d, nil
}

func formatHex(d digest, upper bool) string {
	if upper {
		return d.HexUpper()
	}
	return d.Hex()
}

// runSum prints one checksum line per input. Unreadable inputs are logged
// and skipped; they make the command exit with status 1.
func runSum(opts options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	buf := make([]byte, opts.bufferSize)
	failed := 0
	for _, name := range opts.files {
		d, err := hashInput(opts.algorithm, name, stdin, buf, logger)
		if err != nil {
			logger.Error("cannot hash input", "path", name, "error", err)
			failed++
			continue
		}
		hex := formatHex(d, opts.upper)
		if opts.tag {
			fmt.Fprintf(stdout, "%s (%s) = %s\n", opts.algorithm.tag, name, hex)
		} else {
			fmt.Fprintf(stdout, "%s  %s\n", hex, name)
		}
	}
	if failed > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}
