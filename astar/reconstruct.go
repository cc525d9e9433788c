package astar

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"
)

// Path rebuilds one optimal route from Start to the first goal by following
// the first recorded predecessor of every node, then reversing.
// Returns ErrNoPath if the result holds no goal.
func (r *Result[N]) Path() ([]N, error) {
	if !r.Found() {
		return nil, ErrNoPath
	}

	path := []N{}
	cur := r.Goals[0]
	// A predecessor chain never revisits a node, so len(best) bounds the walk.
	for steps := 0; steps <= len(r.best); steps++ {
		path = append(path, cur)
		if cur == r.Start {
			for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
				path[i], path[j] = path[j], path[i]
			}
			return path, nil
		}
		p := r.prev[cur]
		if len(p) == 0 {
			break
		}
		cur = p[0]
	}

	return nil, fmt.Errorf("%w: broken predecessor chain at %v", ErrNoPath, cur)
}

// Covered returns every node that lies on at least one recorded optimal
// route, found by a depth-first walk backward from each goal through the
// full predecessor relation. Recursion stops at Start and each node is
// visited once, so no individual route is ever materialised.
//
// In ModeSingle the walk degenerates to the nodes of Path.
func (r *Result[N]) Covered() []N {
	if !r.Found() {
		return nil
	}

	seen := mapset.New[N]()
	var out []N
	stack := make([]N, 0, len(r.Goals))
	for i := len(r.Goals) - 1; i >= 0; i-- {
		stack = append(stack, r.Goals[i])
	}

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen.Has(n) {
			continue
		}
		seen.Put(n)
		out = append(out, n)
		if n == r.Start {
			continue
		}
		preds := r.prev[n]
		for i := len(preds) - 1; i >= 0; i-- {
			if !seen.Has(preds[i]) {
				stack = append(stack, preds[i])
			}
		}
	}

	return out
}

// CoveredKeys projects Covered through key and drops duplicates, keeping
// discovery order. Use it to flatten directional nodes to their cells.
func CoveredKeys[N comparable, K comparable](r *Result[N], key func(N) K) []K {
	seen := mapset.New[K]()
	var out []K
	for _, n := range r.Covered() {
		k := key(n)
		if seen.Has(k) {
			continue
		}
		seen.Put(k)
		out = append(out, k)
	}

	return out
}

// PathCost re-evaluates a path against the step costs of space.
// An empty or single-node path costs 0. Returns ErrNotAdjacent if two
// consecutive nodes are not joined by a step; when several steps join them
// the cheapest is used.
func PathCost[N comparable](space StateSpace[N], path []N) (int64, error) {
	if space == nil {
		return 0, ErrNilSpace
	}

	var total int64
	for i := 1; i < len(path); i++ {
		cost, ok := int64(0), false
		for _, st := range space.Neighbors(path[i-1]) {
			if st.Node == path[i] && (!ok || st.Cost < cost) {
				cost, ok = st.Cost, true
			}
		}
		if !ok {
			return 0, fmt.Errorf("%w: %v→%v at index %d", ErrNotAdjacent, path[i-1], path[i], i)
		}
		total += cost
	}

	return total, nil
}
