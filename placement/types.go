package placement

import (
	"errors"
	"fmt"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for placement evaluation.
var (
	// ErrNilBuild is returned when no state-space constructor is given.
	ErrNilBuild = errors.New("placement: build function is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("placement: invalid option supplied")
)

// Verdict is the outcome of blocking one candidate cell.
// Cost is astar.Unbounded when Reachable is false.
type Verdict struct {
	Cell      gridgraph.Cell
	Cost      int64
	Reachable bool
}

// Options configure Evaluate.
//
// Workers   – maximum concurrent searches (default runtime.NumCPU()).
// OnVerdict – called from worker goroutines; must be safe for concurrent use.
// Search    – extra options forwarded to every astar.Search call; the mode
// is always forced to single-best.
// Logger    – receives a summary record when evaluation finishes.
type Options struct {
	Workers   int
	OnVerdict func(Verdict)
	Search    []astar.Option
	Logger    *log.Logger

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for Evaluate.
type Option func(*Options)

// DefaultOptions returns one worker per CPU, no hooks and a discarding logger.
func DefaultOptions() Options {
	return Options{
		Workers:   runtime.NumCPU(),
		OnVerdict: func(Verdict) {},
		Logger:    log.New(io.Discard),
	}
}

// WithWorkers bounds concurrency; n < 1 is an ErrOptionViolation.
func WithWorkers(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w: workers must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithOnVerdict registers a hook for every finished candidate.
func WithOnVerdict(fn func(Verdict)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVerdict = fn
		}
	}
}

// WithSearchOptions forwards opts to each per-candidate search, e.g.
// astar.WithOnDone for metrics.
func WithSearchOptions(opts ...astar.Option) Option {
	return func(o *Options) {
		o.Search = append(o.Search, opts...)
	}
}

// WithLogger routes the summary record to l. A nil logger is ignored.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
