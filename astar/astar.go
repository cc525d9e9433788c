// Package astar implements A* search over an arbitrary StateSpace.
//
// The search keeps a min-heap frontier ordered by f = g + h and pops the
// cheapest entry until a goal is popped (ModeSingle) or until every entry
// with f at most the optimal total has been expanded (ModeTies).
//
// Notes on implementation choices:
//
//   - "Lazy" decrease-key: an improved node is pushed again and the stale
//     entry is skipped when its g exceeds the best known g at pop time.
//   - Entries with equal f pop in insertion order, so results are
//     reproducible for a fixed Neighbors order.
//   - Nodes are re-opened when a cheaper g is found later, so an admissible
//     but inconsistent heuristic still yields the optimal cost in ModeSingle.
package astar

import (
	"container/heap"
	"fmt"
)

// Search runs A* from start over space and returns the optimal cost and
// predecessor relation.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. space must be non-nil (ErrNilSpace).
//
// When no goal is reachable (or none within the cost budget) the partially
// filled Result is returned together with ErrNoPath.
//
// Complexity:
//
//   - Time:  O(E log E) heap operations, E = transitions relaxed.
//   - Space: O(V + E) for best/prev maps and duplicate frontier entries.
func Search[N comparable](space StateSpace[N], start N, opts ...Option) (*Result[N], error) {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if space == nil {
		return nil, ErrNilSpace
	}

	res := &Result[N]{Start: start, Cost: Unbounded, Mode: cfg.Mode}
	budget := cfg.CostBudget

	// Tie-preserving expansion needs the optimal total up front: it is the
	// budget that bounds re-expansion of tied nodes.
	if cfg.Mode == ModeTies && budget == Unbounded {
		probe := newRunner(space, start, ModeSingle, Unbounded)
		err := probe.run()
		cfg.OnDone(probe.stats())
		res.Expanded += probe.expanded
		res.Pushed += probe.pushed
		if err != nil {
			res.best, res.prev = probe.best, probe.prev
			return res, err
		}
		budget = probe.cost
	}

	r := newRunner(space, start, cfg.Mode, budget)
	err := r.run()
	cfg.OnDone(r.stats())
	res.Expanded += r.expanded
	res.Pushed += r.pushed
	res.best, res.prev = r.best, r.prev
	if err != nil {
		return res, err
	}
	res.Goals = r.goals
	res.Cost = r.cost

	return res, nil
}

// runner holds the mutable state for a single search pass.
type runner[N comparable] struct {
	space  StateSpace[N]
	start  N
	mode   Mode
	budget int64

	best map[N]int64 // best known g per node
	prev map[N][]N   // predecessors achieving best
	pq   frontier[N] // min-heap on (f, seq)
	seq  uint64      // insertion counter for the tie-break

	goals []N
	cost  int64

	expanded int
	pushed   int
}

func newRunner[N comparable](space StateSpace[N], start N, mode Mode, budget int64) *runner[N] {
	return &runner[N]{
		space:  space,
		start:  start,
		mode:   mode,
		budget: budget,
		best:   make(map[N]int64),
		prev:   make(map[N][]N),
		cost:   Unbounded,
	}
}

// run drives the main loop and returns ErrNoPath if no goal was popped.
func (r *runner[N]) run() error {
	heap.Init(&r.pq)
	r.best[r.start] = 0
	if h := r.space.Heuristic(r.start); r.within(h) {
		r.push(r.start, 0, h)
	}

	for r.pq.Len() > 0 {
		it := heap.Pop(&r.pq).(*item[N])

		// Stale duplicate left behind by a later improvement.
		if it.g > r.best[it.node] {
			continue
		}
		// Once the optimum is known, nothing costlier can lie on a best route.
		if len(r.goals) > 0 && it.f > r.cost {
			break
		}

		if r.space.IsGoal(it.node) {
			if len(r.goals) == 0 {
				r.cost = it.g
			}
			if it.g == r.cost {
				r.goals = append(r.goals, it.node)
			}
			if r.mode == ModeSingle {
				return nil
			}
			// Routes end at the goal; do not expand past it.
			continue
		}

		r.expanded++
		if err := r.relax(it.node, it.g); err != nil {
			return err
		}
	}

	if len(r.goals) == 0 {
		return ErrNoPath
	}

	return nil
}

// relax examines every step out of u (finalised at cost g) and records
// improvements, or ties in ModeTies.
func (r *runner[N]) relax(u N, g int64) error {
	var st Step[N]
	for _, st = range r.space.Neighbors(u) {
		if st.Cost < 0 {
			return fmt.Errorf("%w: %v→%v cost=%d", ErrNegativeCost, u, st.Node, st.Cost)
		}
		v := st.Node
		t := g + st.Cost
		old, seen := r.best[v]

		switch {
		case !seen || t < old:
			h := r.space.Heuristic(v)
			if !r.within(t + h) {
				continue
			}
			r.best[v] = t
			r.prev[v] = append(r.prev[v][:0], u)
			r.push(v, t, t+h)
		case t == old && r.mode == ModeTies:
			if !containsNode(r.prev[v], u) {
				r.prev[v] = append(r.prev[v], u)
			}
		}
	}

	return nil
}

// within reports whether an f-score respects the cost budget.
func (r *runner[N]) within(f int64) bool {
	return r.budget == Unbounded || f <= r.budget
}

func (r *runner[N]) push(n N, g, f int64) {
	heap.Push(&r.pq, &item[N]{node: n, g: g, f: f, seq: r.seq})
	r.seq++
	r.pushed++
}

func (r *runner[N]) stats() Stats {
	return Stats{
		Mode:     r.mode,
		Found:    len(r.goals) > 0,
		Cost:     r.cost,
		Expanded: r.expanded,
		Pushed:   r.pushed,
	}
}

func containsNode[N comparable](ns []N, n N) bool {
	for _, x := range ns {
		if x == n {
			return true
		}
	}

	return false
}

// item is one frontier entry.
type item[N comparable] struct {
	node N
	g    int64  // cost from start when pushed
	f    int64  // g + heuristic
	seq  uint64 // insertion order
}

// frontier is a min-heap of *item ordered by f, then by insertion order.
type frontier[N comparable] []*item[N]

func (pq frontier[N]) Len() int { return len(pq) }

func (pq frontier[N]) Less(i, j int) bool {
	if pq[i].f != pq[j].f {
		return pq[i].f < pq[j].f
	}

	return pq[i].seq < pq[j].seq
}

func (pq frontier[N]) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *frontier[N]) Push(x any) { *pq = append(*pq, x.(*item[N])) }

func (pq *frontier[N]) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return it
}
