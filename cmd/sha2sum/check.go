package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"regexp"
	"strings"
)

var (
	bsdLine   = regexp.MustCompile(`^(SHA[0-9]+) \((.*)\) = ([0-9A-Fa-f]+)$`)
	plainLine = regexp.MustCompile(`^([0-9A-Fa-f]+) [ *](.+)$`)

	errMalformedLine = errors.New("improperly formatted checksum line")
)

// checksumLine is one parsed entry of a checksum list.
type checksumLine struct {
	algorithm algorithm
	expected  digest
	path      string
}

// parseChecksumLine accepts the two formats runSum prints. Plain lines use
// opts.algorithm, or the variant matching the digest length when no
// algorithm was requested.
func parseChecksumLine(line string, opts options) (checksumLine, error) {
	if m := bsdLine.FindStringSubmatch(line); m != nil {
		algo, ok := algorithmByTag(m[1])
		if !ok {
			return checksumLine{}, fmt.Errorf("%w: algorithm %s is not available", errMalformedLine, m[1])
		}
		expected, err := algo.parse(m[3])
		if err != nil {
			return checksumLine{}, fmt.Errorf("%w: %w", errMalformedLine, err)
		}
		return checksumLine{algorithm: algo, expected: expected, path: m[2]}, nil
	}

	if m := plainLine.FindStringSubmatch(line); m != nil {
		algo := opts.algorithm
		if opts.inferAlgo {
			inferred, ok := algorithmBySize(len(m[1]))
			if !ok {
				return checksumLine{}, fmt.Errorf("%w: no algorithm produces %d-character digests", errMalformedLine, len(m[1]))
			}
			algo = inferred
		}
		expected, err := algo.parse(m[1])
		if err != nil {
			return checksumLine{}, fmt.Errorf("%w: %w", errMalformedLine, err)
		}
		return checksumLine{algorithm: algo, expected: expected, path: m[2]}, nil
	}

	return checksumLine{}, errMalformedLine
}

// checkStats counts the outcomes of verifying checksum lists.
type checkStats struct {
	verified   int
	mismatched int
	unreadable int
	malformed  int
}

func (s *checkStats) add(other checkStats) {
	s.verified += other.verified
	s.mismatched += other.mismatched
	s.unreadable += other.unreadable
	s.malformed += other.malformed
}

// runCheck verifies every line of every checksum list in opts.files.
func runCheck(opts options, stdin io.Reader, stdout io.Writer, logger *slog.Logger) error {
	buf := make([]byte, opts.bufferSize)
	var total checkStats
	failed := false

	for _, listName := range opts.files {
		stats, err := checkList(listName, opts, stdin, stdout, buf, logger)
		total.add(stats)
		if err != nil {
			logger.Error("cannot read checksum list", "path", listName, "error", err)
			failed = true
			continue
		}
		if stats.verified+stats.mismatched+stats.unreadable == 0 {
			logger.Error("no properly formatted checksum lines found", "path", listName)
			failed = true
		}
	}

	// --status reports through the exit code alone.
	if !opts.status {
		if total.malformed > 0 {
			logger.Warn("lines are improperly formatted", "count", total.malformed)
		}
		if total.unreadable > 0 {
			logger.Warn("listed files could not be read", "count", total.unreadable)
		}
		if total.mismatched > 0 {
			logger.Warn("computed checksums did not match", "count", total.mismatched)
		}
	}

	if failed || total.mismatched > 0 || total.unreadable > 0 {
		return &ExitError{Code: 1}
	}
	return nil
}

// checkList verifies one checksum list. The returned error is only for
// failing to read the list itself.
func checkList(listName string, opts options, stdin io.Reader, stdout io.Writer, buf []byte, logger *slog.Logger) (checkStats, error) {
	var stats checkStats

	list, err := openInput(listName, stdin)
	if err != nil {
		return stats, err
	}
	defer list.Close()

	report := func(path, result string) {
		if !opts.status {
			fmt.Fprintf(stdout, "%s: %s\n", path, result)
		}
	}

	scanner := bufio.NewScanner(list)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		entry, err := parseChecksumLine(line, opts)
		if err != nil {
			logger.Debug("skipping checksum line", "path", listName, "line", lineNumber, "error", err)
			stats.malformed++
			continue
		}

		actual, err := hashInput(entry.algorithm, entry.path, stdin, buf, logger)
		switch {
		case err != nil:
			if opts.status {
				logger.Debug("cannot hash listed file", "path", entry.path, "error", err)
			} else {
				logger.Error("cannot hash listed file", "path", entry.path, "error", err)
			}
			report(entry.path, "FAILED open or read")
			stats.unreadable++
		case actual != entry.expected:
			report(entry.path, "FAILED")
			stats.mismatched++
		default:
			if !opts.quiet {
				report(entry.path, "OK")
			}
			stats.verified++
		}
	}
	if err := scanner.Err(); err != nil {
		return stats, fmt.Errorf("reading %s: %w", listName, err)
	}
	return stats, nil
}
