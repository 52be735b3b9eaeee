package observe

import (
	"io"
	"log/slog"
)

// NewLogger returns a text logger writing to w. Standard output is reserved
// for the stdio transport, so callers normally pass os.Stderr.
func NewLogger(w io.Writer, debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
