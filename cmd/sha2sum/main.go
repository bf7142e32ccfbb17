// sha2sum prints or checks SHA-2 checksums, in the format of the coreutils
// sha*sum tools.
//
// With no file, or when a file is "-", standard input is read. Files are
// streamed through the hasher in --buffer-size chunks, so memory use does
// not depend on file size.
//
// Check mode (--check) reads checksum lines in either of the two formats
// sha2sum prints:
//
//	<hex digest>  <file>
//	SHA256 (<file>) = <hex digest>
//
// and verifies each listed file. BSD-style lines name their algorithm.
// For plain lines the algorithm is --algorithm when given, otherwise it is
// inferred from the digest length.
//
// Variants can be left out of the binary with the build tags no_sha224,
// no_sha256, no_sha384 and no_sha512.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/pflag"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if coder, ok := err.(interface{ ExitCode() int }); ok {
			os.Exit(coder.ExitCode())
		}
		fmt.Fprintf(os.Stderr, "sha2sum: %v\n", err)
		os.Exit(1)
	}
}

// options holds the parsed command line.
type options struct {
	algorithm  algorithm
	inferAlgo  bool // --algorithm not given: check mode infers it per line
	check      bool
	upper      bool
	tag        bool
	quiet      bool
	status     bool
	bufferSize int
	files      []string
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	var bits int
	var verbose bool
	var opts options

	flagSet := pflag.NewFlagSet("sha2sum", pflag.ContinueOnError)
	flagSet.SetOutput(io.Discard)
	flagSet.IntVarP(&bits, "algorithm", "a", 256, "digest width: 224, 256, 384 or 512")
	flagSet.BoolVarP(&opts.check, "check", "c", false, "read checksums from the files and verify them")
	flagSet.BoolVarP(&opts.upper, "upper", "u", false, "print digests in uppercase hex")
	flagSet.BoolVar(&opts.tag, "tag", false, "print BSD-style checksum lines")
	flagSet.IntVarP(&opts.bufferSize, "buffer-size", "b", 32*1024, "read chunk size in bytes")
	flagSet.BoolVarP(&opts.quiet, "quiet", "q", false, "check mode: don't print OK for verified files")
	flagSet.BoolVar(&opts.status, "status", false, "check mode: print nothing, report through the exit status")
	flagSet.BoolVarP(&verbose, "verbose", "v", false, "log per-file details")
	flagSet.BoolP("help", "h", false, "show help")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			printHelp(stdout, flagSet)
			return nil
		}
		return err
	}
	if help, _ := flagSet.GetBool("help"); help {
		printHelp(stdout, flagSet)
		return nil
	}

	algo, ok := algorithms[bits]
	if !ok {
		return fmt.Errorf("unsupported algorithm %d (built with: %s)", bits, availableAlgorithms())
	}
	opts.algorithm = algo
	opts.inferAlgo = !flagSet.Changed("algorithm")

	if opts.bufferSize <= 0 {
		return fmt.Errorf("--buffer-size must be positive, got %d", opts.bufferSize)
	}
	if !opts.check && (opts.quiet || opts.status) {
		return fmt.Errorf("--quiet and --status are only meaningful with --check")
	}
	if opts.check && opts.tag {
		return fmt.Errorf("--tag cannot be combined with --check")
	}

	opts.files = flagSet.Args()
	if len(opts.files) == 0 {
		opts.files = []string{"-"}
	}

	logger := newLogger(stderr, verbose)
	if readsTerminal(opts.files, stdin) {
		logger.Info("reading from terminal, end input with Ctrl-D")
	}

	if opts.check {
		return runCheck(opts, stdin, stdout, logger)
	}
	return runSum(opts, stdin, stdout, logger)
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `sha2sum: print or check SHA-2 checksums.

Usage:
  sha2sum [flags] [file...]
  sha2sum --check [flags] [checksum-file...]

Algorithms compiled in: %s

Flags:
%s`, availableAlgorithms(), flagSet.FlagUsages())
}

// ExitError signals a non-zero exit status whose cause has already been
// reported, such as a checksum mismatch.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("exit code %d", e.Code)
}

// ExitCode returns the exit status for main.
func (e *ExitError) ExitCode() int {
	return e.Code
}
