// Package replan keeps one accepted route through a grid maze and repairs
// it as barriers appear one at a time.
//
// What:
//
//   - New runs a single-best search from start to goal and accepts the route.
//   - InsertBarrier blocks one more cell. A cell off the route is simply
//     recorded; a cell on the route cuts it, and only the suffix from the
//     last surviving cell onward is searched again.
//   - FirstCut feeds an ordered event list and reports the barrier that
//     first disconnects start from goal.
//
// A repaired route is shortest from the cut point onward; the kept prefix
// is not revisited, so the whole route need not be globally shortest.
//
// Lifecycle:
//
//	New ──► InsertBarrier* ──► (ErrGoalUnreachable) terminal
//
// Once the goal is unreachable every later InsertBarrier returns
// ErrGoalUnreachable without further work; barriers are never removed, so
// the goal cannot become reachable again.
//
// A Replanner is sequential: each call depends on the previous one, so it
// is not safe for concurrent use.
//
// Complexity:
//
//   - Off-route insertion: O(1).
//   - On-route insertion:  one A* search from the cut point, O(E log E).
//   - Memory:              O(path length) for the route and its index.
//
// Errors:
//
//   - ErrGoalUnreachable: no route remains; wraps the barrier that caused it.
//   - ErrNeverCut:        FirstCut exhausted its events with a route intact.
//   - gridgraph.ErrOutOfBounds, gridgraph.ErrBlockedEndpoint: from New or
//     InsertBarrier when a cell cannot be used.
package replan
