// Package astar_test validates Search and the reconstruction helpers on
// fixed scenarios, on seeded random mazes against an exhaustive oracle, and
// on invalid inputs.
package astar_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// ------------------------------------------------------------------------
// 1. Validation
// ------------------------------------------------------------------------

func TestSearch_NilSpace(t *testing.T) {
	_, err := astar.Search[gridgraph.Cell](nil, gridgraph.Cell{})
	assert.ErrorIs(t, err, astar.ErrNilSpace)
}

func TestSearch_OptionViolation(t *testing.T) {
	gg := mustGrid(t, "...")
	space := gridgraph.NewCellSpace(gg, nil, gridgraph.Cell{X: 2})

	_, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{}, astar.WithCostBudget(-1))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = astar.Search[gridgraph.Cell](space, gridgraph.Cell{}, astar.WithMode(astar.Mode(7)))
	assert.ErrorIs(t, err, astar.ErrOptionViolation)
}

// negativeSpace is a two-node space whose only step has a negative cost.
type negativeSpace struct{}

func (negativeSpace) Neighbors(n int) []astar.Step[int] {
	if n == 0 {
		return []astar.Step[int]{{Node: 1, Cost: -3}}
	}
	return nil
}
func (negativeSpace) Heuristic(int) int64 { return 0 }
func (negativeSpace) IsGoal(n int) bool   { return n == 1 }

func TestSearch_NegativeCost(t *testing.T) {
	_, err := astar.Search[int](negativeSpace{}, 0)
	assert.ErrorIs(t, err, astar.ErrNegativeCost)
}

// ------------------------------------------------------------------------
// 2. Basic behaviour
// ------------------------------------------------------------------------

func TestSearch_StartIsGoal(t *testing.T) {
	gg := mustGrid(t, "..")
	space := gridgraph.NewCellSpace(gg, nil, gridgraph.Cell{})

	res, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{})
	require.NoError(t, err)
	assert.Zero(t, res.Cost)
	path, err := res.Path()
	require.NoError(t, err)
	assert.Equal(t, []gridgraph.Cell{{}}, path)
}

func TestSearch_NoPathIsOrdinaryOutcome(t *testing.T) {
	gg := mustGrid(t,
		"..#.",
		"..#.",
	)
	space := gridgraph.NewCellSpace(gg, nil, gridgraph.Cell{X: 3, Y: 1})

	res, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{})
	require.ErrorIs(t, err, astar.ErrNoPath)
	require.NotNil(t, res, "partial result is still returned")
	assert.False(t, res.Found())
	assert.Equal(t, 4, res.Expanded, "the whole left region is explored")

	_, err = res.Path()
	assert.ErrorIs(t, err, astar.ErrNoPath)
	assert.Nil(t, res.Covered())

	_, err = astar.Search[gridgraph.Cell](space, gridgraph.Cell{}, astar.WithMode(astar.ModeTies))
	assert.ErrorIs(t, err, astar.ErrNoPath)
}

func TestSearch_BudgetBelowOptimum(t *testing.T) {
	gg := mustGrid(t, ".....")
	space := gridgraph.NewCellSpace(gg, nil, gridgraph.Cell{X: 4})

	_, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{}, astar.WithCostBudget(3))
	assert.ErrorIs(t, err, astar.ErrNoPath)

	res, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{}, astar.WithCostBudget(4))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
}

func TestSearch_Deterministic(t *testing.T) {
	gg := mustGrid(t, "....", "....", "....", "....")
	space := gridgraph.NewCellSpace(gg, nil, gridgraph.Cell{X: 3, Y: 3})

	first, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{})
	require.NoError(t, err)
	want, _ := first.Path()
	for i := 0; i < 10; i++ {
		res, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{})
		require.NoError(t, err)
		got, _ := res.Path()
		require.Equal(t, want, got, "run %d", i)
	}
}

func TestSearch_OnDonePerPass(t *testing.T) {
	gg := mustGrid(t, "...", "...", "...")
	space := gridgraph.NewCellSpace(gg, nil, gridgraph.Cell{X: 2, Y: 2})

	var got []astar.Stats
	hook := astar.WithOnDone(func(s astar.Stats) { got = append(got, s) })

	_, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{}, hook)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, astar.ModeSingle, got[0].Mode)
	assert.True(t, got[0].Found)

	got = nil
	_, err = astar.Search[gridgraph.Cell](space, gridgraph.Cell{}, hook, astar.WithMode(astar.ModeTies))
	require.NoError(t, err)
	require.Len(t, got, 2, "single-best probe plus tie-preserving pass")
	assert.Equal(t, astar.ModeSingle, got[0].Mode)
	assert.Equal(t, astar.ModeTies, got[1].Mode)
	assert.Equal(t, got[0].Cost, got[1].Cost)
}

// ------------------------------------------------------------------------
// 3. Tie-preserving mode
// ------------------------------------------------------------------------

func TestTies_OpenSquareCoversEverything(t *testing.T) {
	gg := mustGrid(t, "...", "...", "...")
	goal := gridgraph.Cell{X: 2, Y: 2}
	space := gridgraph.NewCellSpace(gg, nil, goal)

	res, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{}, astar.WithMode(astar.ModeTies))
	require.NoError(t, err)
	assert.Equal(t, int64(4), res.Cost)
	assert.ElementsMatch(t,
		[]gridgraph.Cell{{X: 2, Y: 1}, {X: 1, Y: 2}},
		res.Predecessors(goal))
	assert.Len(t, res.Covered(), 9)

	single, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{})
	require.NoError(t, err)
	assert.Len(t, single.Predecessors(goal), 1)
	assert.Len(t, single.Covered(), 5, "single mode covers exactly one route")
}

// TestTies_ExplicitBudgetAboveOptimum skips the probe pass: the loop must
// stop on its own once the frontier passes the optimum.
func TestTies_ExplicitBudgetAboveOptimum(t *testing.T) {
	gg := mustGrid(t, "...", "...", "...")
	goal := gridgraph.Cell{X: 2, Y: 2}
	space := gridgraph.NewCellSpace(gg, nil, goal)

	var passes int
	res, err := astar.Search[gridgraph.Cell](space, gridgraph.Cell{},
		astar.WithMode(astar.ModeTies),
		astar.WithCostBudget(10),
		astar.WithOnDone(func(astar.Stats) { passes++ }),
	)
	require.NoError(t, err)
	assert.Equal(t, 1, passes, "a finite budget needs no probe")
	assert.Equal(t, int64(4), res.Cost)
	assert.Equal(t, []gridgraph.Cell{goal}, res.Goals)
	assert.Len(t, res.Covered(), 9)
	assert.ElementsMatch(t,
		[]gridgraph.Cell{{X: 2, Y: 1}, {X: 1, Y: 2}},
		res.Predecessors(goal))
}

func TestTies_CoveredKeysDropsDirection(t *testing.T) {
	// Around a pillar: east-first needs one turn, south-first needs two.
	gg := mustGrid(t,
		"...",
		".#.",
		"...",
	)
	goal := gridgraph.Cell{X: 2, Y: 2}
	space, err := gridgraph.NewHeadingSpace(gg, nil, goal, 1, 1000)
	require.NoError(t, err)

	start := gridgraph.Heading{Cell: gridgraph.Cell{}, Dir: gridgraph.East}
	res, err := astar.Search[gridgraph.Heading](space, start, astar.WithMode(astar.ModeTies))
	require.NoError(t, err)
	assert.Equal(t, int64(1004), res.Cost)

	cells := astar.CoveredKeys(res, gridgraph.Heading.Position)
	assert.ElementsMatch(t, []gridgraph.Cell{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 2, Y: 2},
	}, cells)
}

// ------------------------------------------------------------------------
// 4. Scenario A: turn-cost corridor
// ------------------------------------------------------------------------

type ScenarioSuite struct {
	suite.Suite
	grid  *gridgraph.GridGraph
	space *gridgraph.HeadingSpace
	start gridgraph.Heading
}

func (s *ScenarioSuite) SetupTest() {
	// Corridor (0,0)→(2,0)→(2,4)→(4,4): 8 moves, 2 turns.
	s.grid = mustGrid(s.T(),
		"...##",
		"##.##",
		"##.##",
		"##.##",
		"##...",
	)
	var err error
	s.space, err = gridgraph.NewHeadingSpace(s.grid, nil, gridgraph.Cell{X: 4, Y: 4}, 1, 1000)
	s.Require().NoError(err)
	s.start = gridgraph.Heading{Cell: gridgraph.Cell{}, Dir: gridgraph.East}
}

func (s *ScenarioSuite) TestCost() {
	res, err := astar.Search[gridgraph.Heading](s.space, s.start)
	s.Require().NoError(err)
	s.Equal(int64(2008), res.Cost)
}

func (s *ScenarioSuite) TestPathRoundTrip() {
	res, err := astar.Search[gridgraph.Heading](s.space, s.start)
	s.Require().NoError(err)
	path, err := res.Path()
	s.Require().NoError(err)
	s.Equal(s.start, path[0])
	s.Equal(gridgraph.Cell{X: 4, Y: 4}, path[len(path)-1].Cell)
	s.Len(path, 11, "9 cells plus 2 in-place turns")

	cost, err := astar.PathCost[gridgraph.Heading](s.space, path)
	s.Require().NoError(err)
	s.Equal(res.Cost, cost)
}

func (s *ScenarioSuite) TestTiesMatchSinglePath() {
	res, err := astar.Search[gridgraph.Heading](s.space, s.start, astar.WithMode(astar.ModeTies))
	s.Require().NoError(err)
	s.Len(astar.CoveredKeys(res, gridgraph.Heading.Position), 9)
}

func (s *ScenarioSuite) TestFacingWestNeedsTwoMoreTurns() {
	west := gridgraph.Heading{Cell: gridgraph.Cell{}, Dir: gridgraph.West}
	res, err := astar.Search[gridgraph.Heading](s.space, west)
	s.Require().NoError(err)
	s.Equal(int64(4008), res.Cost)
}

func TestScenarioSuite(t *testing.T) {
	suite.Run(t, new(ScenarioSuite))
}

// ------------------------------------------------------------------------
// 5. PathCost
// ------------------------------------------------------------------------

func TestPathCost_Broken(t *testing.T) {
	gg := mustGrid(t, "...")
	space := gridgraph.NewCellSpace(gg, nil, gridgraph.Cell{X: 2})

	_, err := astar.PathCost[gridgraph.Cell](space, []gridgraph.Cell{{X: 0}, {X: 2}})
	assert.ErrorIs(t, err, astar.ErrNotAdjacent)

	c, err := astar.PathCost[gridgraph.Cell](space, nil)
	require.NoError(t, err)
	assert.Zero(t, c)
}

// ------------------------------------------------------------------------
// 6. Randomised cross-check against exhaustive search
// ------------------------------------------------------------------------

func TestRandomMazes_CellSpace(t *testing.T) {
	start, goal := gridgraph.Cell{}, gridgraph.Cell{X: 7, Y: 7}
	for seed := int64(1); seed <= 60; seed++ {
		gg := randomMaze(t, seed, 8, 0.2)
		space := gridgraph.NewCellSpace(gg, nil, goal)
		on, best, reachable := optimalNodes[gridgraph.Cell](space, start, gg.OpenCells(nil))

		res, err := astar.Search[gridgraph.Cell](space, start)
		if !reachable {
			require.ErrorIs(t, err, astar.ErrNoPath, "seed %d", seed)
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, best, res.Cost, "seed %d", seed)

		path, err := res.Path()
		require.NoError(t, err)
		cost, err := astar.PathCost[gridgraph.Cell](space, path)
		require.NoError(t, err)
		require.Equal(t, res.Cost, cost, "seed %d round trip", seed)

		ties, err := astar.Search[gridgraph.Cell](space, start, astar.WithMode(astar.ModeTies))
		require.NoError(t, err)
		covered := ties.Covered()
		require.GreaterOrEqual(t, len(covered), len(path), "seed %d", seed)
		require.Len(t, covered, len(on), "seed %d", seed)
		for _, c := range covered {
			require.True(t, on[c], "seed %d: %v is not on any optimal route", seed, c)
		}
	}
}

func TestRandomMazes_HeadingSpace(t *testing.T) {
	goal := gridgraph.Cell{X: 7, Y: 7}
	start := gridgraph.Heading{Cell: gridgraph.Cell{}, Dir: gridgraph.East}
	for seed := int64(100); seed < 140; seed++ {
		gg := randomMaze(t, seed, 8, 0.2)
		space, err := gridgraph.NewHeadingSpace(gg, nil, goal, 1, 1000)
		require.NoError(t, err)
		on, best, reachable := optimalNodes[gridgraph.Heading](space, start, headings(gg))

		res, err := astar.Search[gridgraph.Heading](space, start, astar.WithMode(astar.ModeTies))
		if !reachable {
			require.True(t, errors.Is(err, astar.ErrNoPath), "seed %d: %v", seed, err)
			continue
		}
		require.NoError(t, err, "seed %d", seed)
		require.Equal(t, best, res.Cost, "seed %d", seed)

		path, err := res.Path()
		require.NoError(t, err)
		cost, err := astar.PathCost[gridgraph.Heading](space, path)
		require.NoError(t, err)
		require.Equal(t, res.Cost, cost, "seed %d round trip", seed)

		covered := res.Covered()
		require.Len(t, covered, len(on), "seed %d", seed)
		for _, n := range covered {
			require.True(t, on[n], "seed %d: %v is not on any optimal route", seed, n)
		}
	}
}
