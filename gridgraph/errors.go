package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates a grid with no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrOutOfBounds indicates a cell outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: cell out of bounds")
	// ErrBlockedEndpoint indicates a start or goal cell that is a wall or barrier.
	ErrBlockedEndpoint = errors.New("gridgraph: endpoint is blocked")
	// ErrBadCost indicates a negative move or turn cost, or one so large
	// that route costs could overflow int64.
	ErrBadCost = errors.New("gridgraph: move and turn costs must be non-negative and bounded")
)
