package gridgraph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/mazepath/astar"
)

// CellSpace searches bare cells: each orthogonal move costs 1 and the
// heuristic is the Manhattan distance to Goal.
type CellSpace struct {
	Grid     *GridGraph
	Barriers *BarrierSet // may be nil; read-only during a search
	Goal     Cell
}

// NewCellSpace returns a CellSpace over grid and barriers toward goal.
func NewCellSpace(grid *GridGraph, barriers *BarrierSet, goal Cell) *CellSpace {
	return &CellSpace{Grid: grid, Barriers: barriers, Goal: goal}
}

// Neighbors implements astar.StateSpace.
func (s *CellSpace) Neighbors(c Cell) []astar.Step[Cell] {
	adj := s.Grid.Adjacent(c, s.Barriers)
	out := make([]astar.Step[Cell], len(adj))
	for i, n := range adj {
		out[i] = astar.Step[Cell]{Node: n, Cost: 1}
	}

	return out
}

// Heuristic implements astar.StateSpace.
func (s *CellSpace) Heuristic(c Cell) int64 { return int64(c.Manhattan(s.Goal)) }

// IsGoal implements astar.StateSpace.
func (s *CellSpace) IsGoal(c Cell) bool { return c == s.Goal }

// HeadingSpace searches (cell, direction) nodes. Advancing one cell in the
// faced direction costs MoveCost; rotating 90° in place costs TurnCost.
// The goal test ignores direction.
type HeadingSpace struct {
	Grid     *GridGraph
	Barriers *BarrierSet
	Goal     Cell
	MoveCost int64
	TurnCost int64
}

// MaxStepCost is the largest move or turn cost a width×height HeadingSpace
// accepts. Below it, any g + h + step over the 4·W·H heading nodes stays
// within int64: a simple route spans fewer than 4·W·H steps and the
// heuristic is at most (W+H+2) steps.
func MaxStepCost(width, height int) int64 {
	if width <= 0 || height <= 0 {
		return 0
	}

	return math.MaxInt64 / (8 * int64(width) * int64(height))
}

// NewHeadingSpace returns a HeadingSpace, or ErrBadCost if either cost is
// negative or above MaxStepCost for the grid.
func NewHeadingSpace(grid *GridGraph, barriers *BarrierSet, goal Cell, moveCost, turnCost int64) (*HeadingSpace, error) {
	if moveCost < 0 || turnCost < 0 {
		return nil, ErrBadCost
	}
	if limit := MaxStepCost(grid.Width, grid.Height); moveCost > limit || turnCost > limit {
		return nil, fmt.Errorf("%w: move %d, turn %d exceed %d for a %d×%d grid",
			ErrBadCost, moveCost, turnCost, limit, grid.Width, grid.Height)
	}

	return &HeadingSpace{
		Grid:     grid,
		Barriers: barriers,
		Goal:     goal,
		MoveCost: moveCost,
		TurnCost: turnCost,
	}, nil
}

// Neighbors implements astar.StateSpace: forward move first, then the two
// 90° turns.
func (s *HeadingSpace) Neighbors(h Heading) []astar.Step[Heading] {
	out := make([]astar.Step[Heading], 0, 3)
	dx, dy := h.Dir.Delta()
	if next := h.Cell.Add(dx, dy); !s.Grid.IsBlocked(next, s.Barriers) {
		out = append(out, astar.Step[Heading]{Node: Heading{Cell: next, Dir: h.Dir}, Cost: s.MoveCost})
	}
	for _, d := range h.Dir.Turns() {
		out = append(out, astar.Step[Heading]{Node: Heading{Cell: h.Cell, Dir: d}, Cost: s.TurnCost})
	}

	return out
}

// Heuristic implements astar.StateSpace as
// Manhattan·MoveCost + MinTurns·TurnCost, which is admissible and
// consistent: a move lowers it by at most MoveCost, a turn by at most
// TurnCost.
func (s *HeadingSpace) Heuristic(h Heading) int64 {
	return int64(h.Cell.Manhattan(s.Goal))*s.MoveCost + int64(MinTurns(h, s.Goal))*s.TurnCost
}

// IsGoal implements astar.StateSpace.
func (s *HeadingSpace) IsGoal(h Heading) bool { return h.Cell == s.Goal }

// MinTurns is a lower bound on the 90° turns a route from h to goal needs,
// ignoring walls:
//
//   - 0 at the goal, or when facing the only axis still to cover;
//   - 1 when facing one of two axes to cover, or perpendicular to the only one;
//   - 2 when facing away from an axis still to cover.
func MinTurns(h Heading, goal Cell) int {
	var need [4]bool
	count := 0
	mark := func(d Direction) {
		need[d] = true
		count++
	}
	switch {
	case goal.X > h.Cell.X:
		mark(East)
	case goal.X < h.Cell.X:
		mark(West)
	}
	switch {
	case goal.Y > h.Cell.Y:
		mark(South)
	case goal.Y < h.Cell.Y:
		mark(North)
	}

	switch {
	case count == 0:
		return 0
	case need[h.Dir]:
		return count - 1
	case need[h.Dir.Opposite()]:
		return 2
	default:
		return 1
	}
}
