package gridgraph

// Region returns every open cell reachable from start through orthogonal
// moves, start included, in BFS order. A blocked start yields nil.
//
// Time:   O(W·H), Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) Region(start Cell, barriers *BarrierSet) []Cell {
	if gg.IsBlocked(start, barriers) {
		return nil
	}
	seen := make([]bool, gg.Width*gg.Height)
	seen[gg.index(start)] = true
	queue := []Cell{start}

	for qi := 0; qi < len(queue); qi++ {
		for _, n := range gg.Adjacent(queue[qi], barriers) {
			i := gg.index(n)
			if !seen[i] {
				seen[i] = true
				queue = append(queue, n)
			}
		}
	}

	return queue
}

// Connected reports whether goal is reachable from start.
func (gg *GridGraph) Connected(start, goal Cell, barriers *BarrierSet) bool {
	for _, c := range gg.Region(start, barriers) {
		if c == goal {
			return true
		}
	}

	return false
}

// OpenCells lists every in-bounds cell that is neither a wall nor a
// barrier, row-major.
func (gg *GridGraph) OpenCells(barriers *BarrierSet) []Cell {
	var out []Cell
	for y := 0; y < gg.Height; y++ {
		for x := 0; x < gg.Width; x++ {
			c := Cell{X: x, Y: y}
			if !gg.IsBlocked(c, barriers) {
				out = append(out, c)
			}
		}
	}

	return out
}
