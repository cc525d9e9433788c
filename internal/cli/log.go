// Package cli implements the mazepath command-line interface.
//
// # Commands
//
//   - cost:       cheapest turn-cost route through a maze
//   - tiles:      cells lying on any cheapest turn-cost route
//   - replan:     route length after a barrier prefix, then the first cutting barrier
//   - shortcuts:  shortcuts along the maze route that save enough steps
//   - placements: single-cell blocks that cut or lengthen the route
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// travels through context.Context; after every command the metrics
// snapshot is written at debug level.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger writing to w at level, with "HH:MM:SS.ms"
// timestamps.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress logs an operation's completion with its elapsed time.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg with the elapsed time rounded to the millisecond,
// e.g. "searched maze (12ms)".
func (p *progress) done(msg string, keyvals ...interface{}) {
	keyvals = append(keyvals, "elapsed", time.Since(p.start).Round(time.Millisecond))
	p.logger.Debug(msg, keyvals...)
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the attached logger, or log.Default().
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}
