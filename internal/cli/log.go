// Package cli implements the happycube command-line interface.
//
// The CLI is a thin shell over the piece and render packages: it parses an
// edge code given as a 16-digit string, derives the requested view and
// prints it. It is built with cobra and logs through charmbracelet/log.
//
// # Commands
//
//   - render: draw a piece, optionally rotated, mirrored and boxed
//   - edges: list the four edges and four corners of a piece
//   - orientations: draw all eight orientations side by side
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// carried in context.Context and written to stderr.
//
// # Configuration
//
// --config points at an optional TOML file overriding the glyphs and the
// box default; see Config.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
		Prefix:          "happycube",
	})
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx == nil {
		return log.Default()
	}
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
