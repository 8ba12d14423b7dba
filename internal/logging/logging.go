package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a slog.Logger writing diagnostics to stderr, keeping stdout
// free for the generated document. Verbose switches on debug-level output.
func New(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Discard returns a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
