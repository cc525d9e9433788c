package replan

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Replanner owns an accepted route and the barrier set it avoids.
type Replanner struct {
	grid     *gridgraph.GridGraph
	barriers *gridgraph.BarrierSet
	start    gridgraph.Cell
	goal     gridgraph.Cell

	path    []gridgraph.Cell
	index   map[gridgraph.Cell]int // first position of each route cell
	replans int
	cut     *gridgraph.Cell // set once the goal became unreachable

	opts Options
}

// New validates the endpoints, copies barriers (nil means none) and
// searches an initial route.
//
// Returns gridgraph.ErrOutOfBounds or gridgraph.ErrBlockedEndpoint for an
// unusable endpoint and ErrGoalUnreachable when no route exists at all.
func New(grid *gridgraph.GridGraph, barriers *gridgraph.BarrierSet, start, goal gridgraph.Cell, opts ...Option) (*Replanner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	for _, c := range []gridgraph.Cell{start, goal} {
		if err := grid.CheckEndpoint(c, barriers); err != nil {
			return nil, fmt.Errorf("replan: endpoint %v: %w", c, err)
		}
	}

	rp := &Replanner{
		grid:     grid,
		barriers: barriers.Clone(),
		start:    start,
		goal:     goal,
		opts:     cfg,
	}
	suffix, err := rp.search(start)
	if err != nil {
		return nil, err
	}
	rp.accept(suffix)

	return rp, nil
}

// InsertBarrier blocks c and returns the route that avoids it.
//
// A cell off the route (or already blocked) leaves the route untouched. A
// cell on the route truncates it strictly before c and the suffix is
// searched again from the last surviving cell. When that search fails, or
// when c is the start itself, the error wraps ErrGoalUnreachable and the
// Replanner becomes terminal.
func (rp *Replanner) InsertBarrier(c gridgraph.Cell) ([]gridgraph.Cell, error) {
	if rp.cut != nil {
		return nil, fmt.Errorf("%w: already cut at %v", ErrGoalUnreachable, *rp.cut)
	}
	if !rp.grid.InBounds(c) {
		return nil, fmt.Errorf("replan: barrier %v: %w", c, gridgraph.ErrOutOfBounds)
	}

	at, onRoute := rp.index[c]
	rp.barriers.Add(c)
	rp.opts.OnReplan(onRoute)
	if !onRoute {
		return rp.Path(), nil
	}

	if at == 0 {
		return nil, rp.terminate(c)
	}
	prefix := rp.path[:at]
	from := prefix[len(prefix)-1]
	suffix, err := rp.search(from)
	if err != nil {
		if errors.Is(err, ErrGoalUnreachable) {
			return nil, rp.terminate(c)
		}
		return nil, err
	}

	// suffix starts at from, which already ends the prefix.
	next := make([]gridgraph.Cell, 0, len(prefix)-1+len(suffix))
	next = append(next, prefix[:len(prefix)-1]...)
	next = append(next, suffix...)
	rp.accept(next)
	rp.replans++
	rp.opts.Logger.Debug("route repaired",
		"barrier", c,
		"kept", at,
		"steps", rp.Steps(),
		"replans", rp.replans,
	)

	return rp.Path(), nil
}

// FirstCut applies events in order and returns the first barrier that
// disconnects start from goal together with its index in events.
// Returns ErrNeverCut if a route survives every event.
func (rp *Replanner) FirstCut(events []gridgraph.Cell) (gridgraph.Cell, int, error) {
	for i, c := range events {
		if _, err := rp.InsertBarrier(c); err != nil {
			if errors.Is(err, ErrGoalUnreachable) {
				return c, i, nil
			}
			return gridgraph.Cell{}, i, err
		}
	}

	return gridgraph.Cell{}, -1, ErrNeverCut
}

// Path returns a copy of the accepted route, start first. It is nil once
// the goal became unreachable.
func (rp *Replanner) Path() []gridgraph.Cell {
	if rp.path == nil {
		return nil
	}
	out := make([]gridgraph.Cell, len(rp.path))
	copy(out, rp.path)

	return out
}

// Steps is the number of moves along the accepted route, or -1 once the
// goal became unreachable.
func (rp *Replanner) Steps() int { return len(rp.path) - 1 }

// Barriers returns a copy of every barrier inserted so far, including the
// initial set.
func (rp *Replanner) Barriers() *gridgraph.BarrierSet { return rp.barriers.Clone() }

// Replans counts the suffix searches performed after New.
func (rp *Replanner) Replans() int { return rp.replans }

// search runs a single-best cell search from 'from' under the current
// barriers and returns the route to the goal.
func (rp *Replanner) search(from gridgraph.Cell) ([]gridgraph.Cell, error) {
	space := gridgraph.NewCellSpace(rp.grid, rp.barriers, rp.goal)
	res, err := astar.Search[gridgraph.Cell](space, from)
	if errors.Is(err, astar.ErrNoPath) {
		return nil, fmt.Errorf("%w: from %v", ErrGoalUnreachable, from)
	}
	if err != nil {
		return nil, err
	}

	return res.Path()
}

// accept installs path as the current route and rebuilds its index.
func (rp *Replanner) accept(path []gridgraph.Cell) {
	rp.path = path
	rp.index = make(map[gridgraph.Cell]int, len(path))
	for i, c := range path {
		if _, seen := rp.index[c]; !seen {
			rp.index[c] = i
		}
	}
}

// terminate records c as the cutting barrier and drops the route.
func (rp *Replanner) terminate(c gridgraph.Cell) error {
	rp.cut = &c
	rp.path = nil
	rp.index = nil
	rp.opts.Logger.Debug("route cut", "barrier", c, "replans", rp.replans)

	return fmt.Errorf("%w: barrier %v", ErrGoalUnreachable, c)
}
