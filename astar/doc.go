// Package astar provides a generic A* shortest-path search over any state
// space whose transitions carry non-negative integer costs.
//
// Overview:
//
//   - A StateSpace[N] supplies Neighbors, an admissible Heuristic and a goal
//     test. Plain grid cells and cell-plus-heading nodes are both just
//     different StateSpace implementations; the search loop is shared.
//   - Search returns a Result holding the optimal cost and a predecessor
//     relation from each visited node to the node(s) achieving its best cost.
//
// Modes:
//
//   - ModeSingle: strict-improvement predecessors, stop at the first goal
//     pop. Result.Path yields one optimal route.
//   - ModeTies: improves-or-ties predecessors. A single-best pass first finds
//     the optimal total C*, then a second pass bounded by C* records every
//     predecessor tied for a node's best cost. Result.Covered yields every
//     node on any optimal route.
//
// Key features:
//
//   - Lazy decrease-key frontier built on container/heap; stale entries are
//     skipped by comparing against the best known g at pop time.
//   - Deterministic tie-break: equal f-scores pop in insertion order.
//   - WithCostBudget prunes candidates whose f exceeds a fixed total.
//   - WithOnDone exposes per-pass Stats for metrics.
//
// Complexity:
//
//   - Time:  O(E log E), E = transitions relaxed.
//   - Space: O(V + E).
//
// Errors (sentinel):
//
//   - ErrNilSpace          if the state space is nil.
//   - ErrNoPath            if the frontier empties before a goal pops.
//     This is a normal outcome; callers decide what it means.
//   - ErrNegativeCost      if a step with negative cost is produced.
//   - ErrNotAdjacent       from PathCost when a path is broken.
//   - ErrOptionViolation   for invalid options (negative budget, bad mode).
//
// The tie-preserving walk has only been exercised on grid mazes. On state
// spaces whose heuristic is admissible but not consistent, ModeTies may miss
// predecessors of nodes that are re-opened; ModeSingle is unaffected.
//
// Example usage:
//
//	res, err := astar.Search[gridgraph.Cell](space, start)
//	if errors.Is(err, astar.ErrNoPath) {
//	    // unreachable
//	}
//	path, _ := res.Path()
package astar
