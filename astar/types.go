// Package astar defines the state-space contract, options, results and
// sentinel errors for informed shortest-path search.
package astar

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by Search and the reconstruction helpers.
var (
	// ErrNilSpace indicates that a nil StateSpace was passed to Search.
	ErrNilSpace = errors.New("astar: state space is nil")

	// ErrNoPath indicates that the frontier emptied before a goal node was
	// popped. It is an ordinary outcome, not a failure of the search.
	ErrNoPath = errors.New("astar: no path to goal")

	// ErrNegativeCost indicates that a state space produced a negative step cost.
	ErrNegativeCost = errors.New("astar: negative step cost")

	// ErrNotAdjacent indicates that two consecutive path nodes are not
	// connected by any step of the state space.
	ErrNotAdjacent = errors.New("astar: consecutive path nodes are not adjacent")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// Step is one outgoing transition of a state space: the node it leads to
// and the non-negative cost of taking it.
type Step[N comparable] struct {
	Node N
	Cost int64
}

// StateSpace is the contract a search runs against.
//
// Neighbors lists the transitions out of n in a fixed order; the order is
// part of the deterministic tie-break. Heuristic estimates the remaining
// cost from n to the nearest goal and must never overestimate it. For the
// tie-preserving mode it must also be consistent: h(u) ≤ cost(u,v) + h(v).
// IsGoal reports whether n terminates a route.
type StateSpace[N comparable] interface {
	Neighbors(n N) []Step[N]
	Heuristic(n N) int64
	IsGoal(n N) bool
}

// Mode selects how predecessors are recorded.
type Mode int

const (
	// ModeSingle keeps exactly one predecessor per node (strict improvement)
	// and stops at the first goal pop.
	ModeSingle Mode = iota

	// ModeTies keeps every predecessor that achieves a node's best cost
	// (improves-or-ties) and drains the frontier up to the optimal total.
	ModeTies
)

// String returns the metric/log label of the mode.
func (m Mode) String() string {
	switch m {
	case ModeSingle:
		return "single"
	case ModeTies:
		return "ties"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Unbounded is the CostBudget value meaning "no budget".
const Unbounded int64 = math.MaxInt64

// Stats summarises one search run. It is handed to the OnDone hook.
type Stats struct {
	Mode     Mode
	Found    bool
	Cost     int64
	Expanded int // nodes popped and relaxed
	Pushed   int // entries pushed onto the frontier, stale ones included
}

// Options configures Search.
//
// Mode       – ModeSingle (default) or ModeTies.
// CostBudget – candidates whose g+h exceeds the budget are never pushed.
//
//	In ModeTies an Unbounded budget is replaced by the cost found
//	in a preliminary single-best pass.
//
// OnDone     – called once per pass with that pass's Stats.
type Options struct {
	Mode       Mode
	CostBudget int64
	OnDone     func(Stats)

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Search.
type Option func(*Options)

// DefaultOptions returns single-best mode, no budget and a no-op hook.
func DefaultOptions() Options {
	return Options{
		Mode:       ModeSingle,
		CostBudget: Unbounded,
		OnDone:     func(Stats) {},
	}
}

// WithMode selects single-best or tie-preserving search.
func WithMode(m Mode) Option {
	return func(o *Options) {
		if m != ModeSingle && m != ModeTies {
			o.err = fmt.Errorf("%w: unknown mode %d", ErrOptionViolation, int(m))
			return
		}
		o.Mode = m
	}
}

// WithCostBudget prunes every candidate whose f = g + h exceeds budget.
// A negative budget is recorded as ErrOptionViolation.
func WithCostBudget(budget int64) Option {
	return func(o *Options) {
		if budget < 0 {
			o.err = fmt.Errorf("%w: cost budget cannot be negative (%d)", ErrOptionViolation, budget)
			return
		}
		o.CostBudget = budget
	}
}

// WithOnDone registers a hook that receives the Stats of every pass.
func WithOnDone(fn func(Stats)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDone = fn
		}
	}
}

// Result holds the outcome of one search.
//
//   - Start:    the node the search began from.
//   - Goals:    goal nodes reached at the optimal cost; exactly one in
//     ModeSingle, one or more in ModeTies, none when no path exists.
//   - Cost:     optimal cost to the goal (Unbounded if none was reached).
//   - Expanded: nodes popped and relaxed, summed over all passes.
//   - Pushed:   frontier pushes, summed over all passes.
type Result[N comparable] struct {
	Start    N
	Goals    []N
	Cost     int64
	Mode     Mode
	Expanded int
	Pushed   int

	// best is the best known g per visited node.
	best map[N]int64
	// prev holds predecessors achieving best; multi-valued only in ModeTies.
	prev map[N][]N
}

// Found reports whether a goal was reached.
func (r *Result[N]) Found() bool { return len(r.Goals) > 0 }

// CostTo returns the best known cost to n and whether n was visited.
func (r *Result[N]) CostTo(n N) (int64, bool) {
	c, ok := r.best[n]
	return c, ok
}

// Predecessors returns a copy of the recorded predecessors of n.
func (r *Result[N]) Predecessors(n N) []N {
	p := r.prev[n]
	out := make([]N, len(p))
	copy(out, p)

	return out
}
