package replan

import (
	"errors"
	"io"

	"github.com/charmbracelet/log"
)

// Sentinel errors for incremental replanning.
var (
	// ErrGoalUnreachable marks the terminal state: no route from start to
	// goal survives the current barriers.
	ErrGoalUnreachable = errors.New("replan: goal unreachable")

	// ErrNeverCut is returned by FirstCut when every event was applied and
	// a route still exists.
	ErrNeverCut = errors.New("replan: no event cuts the route")
)

// Options configure a Replanner.
//
// Logger   – receives one debug record per insertion that hits the route.
// OnReplan – called after every insertion; hit reports whether the route
// had to be repaired.
type Options struct {
	Logger   *log.Logger
	OnReplan func(hit bool)
}

// Option represents a functional option for New.
type Option func(*Options)

// DefaultOptions returns a discarding logger and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Logger:   log.New(io.Discard),
		OnReplan: func(bool) {},
	}
}

// WithLogger routes replan records to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnReplan registers a hook called after each InsertBarrier.
func WithOnReplan(fn func(hit bool)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnReplan = fn
		}
	}
}
