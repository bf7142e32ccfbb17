package main

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"
)

// newLogger writes human-readable records when w is a terminal and JSON
// records otherwise (pipes, CI, tests). verbose enables Debug records.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	options := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		options.Level = slog.LevelDebug
	}
	var handler slog.Handler
	if isTerminal(w) {
		handler = slog.NewTextHandler(w, options)
	} else {
		handler = slog.NewJSONHandler(w, options)
	}
	return slog.New(handler).With("command", "sha2sum")
}

func isTerminal(v any) bool {
	file, ok := v.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// readsTerminal reports whether any input is "-" and stdin is interactive.
func readsTerminal(files []string, stdin io.Reader) bool {
	for _, name := range files {
		if name == "-" {
			return isTerminal(stdin)
		}
	}
	return false
}
