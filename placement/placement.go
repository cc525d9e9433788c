package placement

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// Evaluate blocks each candidate in turn on top of base and reports the
// resulting best cost from start.
//
// build must return a fresh state space reading the given barrier set; it
// is called once per candidate, possibly concurrently. An unreachable goal
// is a Verdict, not an error; any other search error aborts the batch.
//
// Candidates should not contain the start cell itself; see Candidates.
func Evaluate[N comparable](
	ctx context.Context,
	base *gridgraph.BarrierSet,
	candidates []gridgraph.Cell,
	build func(*gridgraph.BarrierSet) astar.StateSpace[N],
	start N,
	opts ...Option,
) ([]Verdict, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if build == nil {
		return nil, ErrNilBuild
	}
	searchOpts := append(append([]astar.Option(nil), cfg.Search...), astar.WithMode(astar.ModeSingle))

	out := make([]Verdict, len(candidates))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, c := range candidates {
		i, c := i, c
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			bs := base.Clone()
			bs.Add(c)
			v, err := judge(build(bs), start, c, searchOpts)
			if err != nil {
				return err
			}
			out[i] = v
			cfg.OnVerdict(v)

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	cfg.Logger.Debug("placements evaluated",
		"candidates", len(candidates),
		"cutting", len(Cutting(out)),
		"workers", cfg.Workers,
	)

	return out, nil
}

func judge[N comparable](space astar.StateSpace[N], start N, c gridgraph.Cell, opts []astar.Option) (Verdict, error) {
	res, err := astar.Search(space, start, opts...)
	switch {
	case errors.Is(err, astar.ErrNoPath):
		return Verdict{Cell: c, Cost: astar.Unbounded}, nil
	case err != nil:
		return Verdict{}, fmt.Errorf("placement: candidate %v: %w", c, err)
	}

	return Verdict{Cell: c, Cost: res.Cost, Reachable: true}, nil
}

// Candidates returns the open cells reachable from start, start excluded.
// A barrier anywhere else cannot change the route.
func Candidates(grid *gridgraph.GridGraph, barriers *gridgraph.BarrierSet, start gridgraph.Cell) []gridgraph.Cell {
	region := grid.Region(start, barriers)
	out := make([]gridgraph.Cell, 0, len(region))
	for _, c := range region {
		if c != start {
			out = append(out, c)
		}
	}

	return out
}

// Cutting returns the cells whose verdict left the goal unreachable.
func Cutting(verdicts []Verdict) []gridgraph.Cell {
	var out []gridgraph.Cell
	for _, v := range verdicts {
		if !v.Reachable {
			out = append(out, v.Cell)
		}
	}

	return out
}

// Detours returns the reachable verdicts that cost more than baseline.
func Detours(verdicts []Verdict, baseline int64) []Verdict {
	var out []Verdict
	for _, v := range verdicts {
		if v.Reachable && v.Cost > baseline {
			out = append(out, v)
		}
	}

	return out
}
