// Package cli implements the blockforge command-line interface.
//
// This package provides commands for creating, inspecting, laying out,
// and rendering block diagram model files, browsing a model in a
// terminal UI, serving a model over HTTP, and managing named snapshots
// in a snapshot store. The CLI is built using cobra and supports
// verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - new: Create a starter model file
//   - inspect: Show the containment tree and statistics of a model file
//   - layout: Run auto-layout on a model file
//   - render: Generate SVG, DOT, or PNG output
//   - hit: Resolve what lies under a canvas point
//   - browse: Explore a model file interactively
//   - serve: Expose a model file over an HTTP API
//   - snapshot: Push, pull, list, and delete stored snapshots
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. Loggers
// are passed through context.Context so every command sees the logger
// configured by the root command.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at the given level, with
// "HH:MM:SS.ms" timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion
// with the elapsed duration. Sequential use by a single goroutine only.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time since the tracker was created,
// rounded to the nearest millisecond.
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

// ctxKey is a distinct context key type to avoid collisions.
type ctxKey int

const loggerKey ctxKey = 0

// withLogger attaches a logger to ctx for retrieval with
// loggerFromContext.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, falling back to
// log.Default so commands always have a valid logger.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
