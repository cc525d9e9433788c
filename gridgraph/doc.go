// Package gridgraph treats a rectangular maze as a graph for informed
// search.
//
// What:
//
//   - GridGraph is an immutable snapshot of wall cells with Width×Height bounds.
//   - BarrierSet holds extra blocked cells for one query; it may grow between
//     queries but is never modified during one.
//   - CellSpace and HeadingSpace implement astar.StateSpace for plain-cell
//     mazes and for mazes where turning costs differ from moving.
//   - Region / Connected / OpenCells give reachability over open cells.
//
// Why:
//
//   - Keeping walls and barriers apart lets many searches share one grid,
//     each with a private barrier extension.
//   - Encoding direction in the node (HeadingSpace) makes turn penalties
//     ordinary edge costs, so one search loop serves both maze kinds.
//
// Complexity:
//
//   - IsBlocked, InBounds:  O(1).
//   - Adjacent, Neighbors:  O(1), at most 4 (cells) or 3 (headings) results.
//   - Region, OpenCells:    O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid:       a dimension is not positive.
//   - ErrNonRectangular:  rows have differing lengths.
//   - ErrOutOfBounds:     a wall or endpoint lies outside the grid.
//   - ErrBlockedEndpoint: a start or goal is a wall or barrier.
//   - ErrBadCost:         a negative move or turn cost, or one above MaxStepCost.
package gridgraph
