package astar_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazepath/astar"
	"github.com/katalvlaran/mazepath/gridgraph"
)

// mustGrid builds a grid from rows where '#' marks a wall.
func mustGrid(t testing.TB, rows ...string) *gridgraph.GridGraph {
	t.Helper()
	m := make([][]bool, len(rows))
	for y, row := range rows {
		m[y] = make([]bool, len(row))
		for x, r := range row {
			m[y][x] = r == '#'
		}
	}
	gg, err := gridgraph.From2D(m)
	if err != nil {
		t.Fatalf("From2D error: %v", err)
	}

	return gg
}

// randomMaze returns an n×n grid with roughly density walls; the two
// corner cells stay open. Seeded for reproducibility.
func randomMaze(t testing.TB, seed int64, n int, density float64) *gridgraph.GridGraph {
	t.Helper()
	rng := rand.New(rand.NewSource(seed))
	var walls []gridgraph.Cell
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			if (x == 0 && y == 0) || (x == n-1 && y == n-1) {
				continue
			}
			if rng.Float64() < density {
				walls = append(walls, gridgraph.Cell{X: x, Y: y})
			}
		}
	}
	gg, err := gridgraph.NewGridGraph(n, n, walls...)
	if err != nil {
		t.Fatalf("NewGridGraph error: %v", err)
	}

	return gg
}

// headings enumerates every (open cell, direction) node of gg.
func headings(gg *gridgraph.GridGraph) []gridgraph.Heading {
	var out []gridgraph.Heading
	for _, c := range gg.OpenCells(nil) {
		for _, d := range gridgraph.Directions {
			out = append(out, gridgraph.Heading{Cell: c, Dir: d})
		}
	}

	return out
}

// bruteFrom computes exact costs from start by exhaustive Bellman-Ford
// relaxation. Goal nodes are absorbing, as in the search under test.
func bruteFrom[N comparable](space astar.StateSpace[N], start N) map[N]int64 {
	dist := map[N]int64{start: 0}
	for changed := true; changed; {
		changed = false
		keys := make([]N, 0, len(dist))
		for k := range dist {
			keys = append(keys, k)
		}
		for _, u := range keys {
			if space.IsGoal(u) {
				continue
			}
			for _, st := range space.Neighbors(u) {
				c := dist[u] + st.Cost
				if old, ok := dist[st.Node]; !ok || c < old {
					dist[st.Node] = c
					changed = true
				}
			}
		}
	}

	return dist
}

// bruteTo computes, for every node in nodes, the exact cost to reach any
// goal node.
func bruteTo[N comparable](space astar.StateSpace[N], nodes []N) map[N]int64 {
	dist := make(map[N]int64)
	for _, n := range nodes {
		if space.IsGoal(n) {
			dist[n] = 0
		}
	}
	for changed := true; changed; {
		changed = false
		for _, u := range nodes {
			if space.IsGoal(u) {
				continue
			}
			for _, st := range space.Neighbors(u) {
				rest, ok := dist[st.Node]
				if !ok {
					continue
				}
				if old, seen := dist[u]; !seen || st.Cost+rest < old {
					dist[u] = st.Cost + rest
					changed = true
				}
			}
		}
	}

	return dist
}

// optimalNodes returns the nodes lying on some optimal route and the
// optimal cost (ok=false when the goal is unreachable).
func optimalNodes[N comparable](space astar.StateSpace[N], start N, nodes []N) (map[N]bool, int64, bool) {
	from := bruteFrom(space, start)
	to := bruteTo(space, nodes)
	best, ok := to[start]
	if !ok {
		return nil, 0, false
	}
	on := make(map[N]bool)
	for _, n := range nodes {
		f, okF := from[n]
		r, okT := to[n]
		if okF && okT && f+r == best {
			on[n] = true
		}
	}

	return on, best, true
}
