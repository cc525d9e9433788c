// Package gridgraph models a rectangular maze as an immutable snapshot of
// wall cells, plus the state spaces searched over it.
//
// Per-query obstacles live in a separate BarrierSet so the same grid can
// back many searches that each add their own barriers.
package gridgraph

// GridGraph is an immutable width×height grid of open and wall cells.
type GridGraph struct {
	Width  int
	Height int
	walls  *BarrierSet
}

// NewGridGraph constructs a GridGraph with the given walls.
// Returns ErrEmptyGrid if either dimension is not positive and
// ErrOutOfBounds if a wall lies outside the grid. The walls are copied.
// Complexity: O(len(walls)).
func NewGridGraph(width, height int, walls ...Cell) (*GridGraph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	gg := &GridGraph{Width: width, Height: height, walls: NewBarrierSet()}
	for _, c := range walls {
		if !gg.InBounds(c) {
			return nil, ErrOutOfBounds
		}
		gg.walls.Add(c)
	}

	return gg, nil
}

// From2D constructs a GridGraph from a non-empty rectangular matrix in
// which true marks a wall. Row index is Y, column index is X.
// Returns ErrEmptyGrid or ErrNonRectangular on malformed input.
func From2D(rows [][]bool) (*GridGraph, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(rows), len(rows[0])
	var walls []Cell
	for y, row := range rows {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for x, wall := range row {
			if wall {
				walls = append(walls, Cell{X: x, Y: y})
			}
		}
	}

	return NewGridGraph(w, h, walls...)
}

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(c Cell) bool {
	return c.X >= 0 && c.X < gg.Width && c.Y >= 0 && c.Y < gg.Height
}

// IsWall reports whether c is a wall of the grid itself.
func (gg *GridGraph) IsWall(c Cell) bool { return gg.walls.Has(c) }

// Walls returns the wall cells, row-major.
func (gg *GridGraph) Walls() []Cell { return gg.walls.Cells() }

// IsBlocked reports whether c is out of bounds, a wall, or in barriers.
// barriers may be nil.
func (gg *GridGraph) IsBlocked(c Cell, barriers *BarrierSet) bool {
	return !gg.InBounds(c) || gg.walls.Has(c) || barriers.Has(c)
}

// Adjacent returns the unblocked orthogonal neighbours of c in N, E, S, W
// order. Out-of-bounds cells are never returned.
func (gg *GridGraph) Adjacent(c Cell, barriers *BarrierSet) []Cell {
	out := make([]Cell, 0, 4)
	for _, d := range Directions {
		dx, dy := d.Delta()
		n := c.Add(dx, dy)
		if !gg.IsBlocked(n, barriers) {
			out = append(out, n)
		}
	}

	return out
}

// CheckEndpoint returns ErrOutOfBounds or ErrBlockedEndpoint if c cannot
// serve as a start or goal, nil otherwise.
func (gg *GridGraph) CheckEndpoint(c Cell, barriers *BarrierSet) error {
	if !gg.InBounds(c) {
		return ErrOutOfBounds
	}
	if gg.IsBlocked(c, barriers) {
		return ErrBlockedEndpoint
	}

	return nil
}

// index maps c to a row-major index: y*Width + x.
func (gg *GridGraph) index(c Cell) int {
	return c.Y*gg.Width + c.X
}

// Coordinate converts a row-major index back to a cell.
func (gg *GridGraph) Coordinate(idx int) Cell {
	return Cell{X: idx % gg.Width, Y: idx / gg.Width}
}
