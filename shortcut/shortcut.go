package shortcut

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for shortcut analysis.
var (
	ErrEmptyPath    = errors.New("shortcut: path is empty")
	ErrRepeatedCell = errors.New("shortcut: path visits a cell twice")
	ErrBadMaxLength = errors.New("shortcut: max length cannot be negative")
)

// Analyzer indexes one route by cell and memoizes saving histograms per
// jump length. It is not safe for concurrent use.
type Analyzer struct {
	path  []gridgraph.Cell
	index map[gridgraph.Cell]int
	hist  map[int]map[int]int // maxLen → saving → count
}

// NewAnalyzer copies path and indexes it.
// Returns ErrEmptyPath or ErrRepeatedCell (wrapped with the cell).
func NewAnalyzer(path []gridgraph.Cell) (*Analyzer, error) {
	if len(path) == 0 {
		return nil, ErrEmptyPath
	}
	a := &Analyzer{
		path:  append([]gridgraph.Cell(nil), path...),
		index: make(map[gridgraph.Cell]int, len(path)),
		hist:  make(map[int]map[int]int),
	}
	for i, c := range a.path {
		if j, dup := a.index[c]; dup {
			return nil, fmt.Errorf("%w: %v at %d and %d", ErrRepeatedCell, c, j, i)
		}
		a.index[c] = i
	}

	return a, nil
}

// Len returns the number of cells on the route.
func (a *Analyzer) Len() int { return len(a.path) }

// Savings returns how many shortcuts of length ≤ maxLen save each positive
// number of steps. The map is a copy.
func (a *Analyzer) Savings(maxLen int) (map[int]int, error) {
	h, err := a.histogram(maxLen)
	if err != nil {
		return nil, err
	}
	out := make(map[int]int, len(h))
	for s, n := range h {
		out[s] = n
	}

	return out, nil
}

// Count returns the number of shortcuts of length ≤ maxLen that save at
// least threshold steps. It never grows as threshold grows.
func (a *Analyzer) Count(maxLen, threshold int) (int, error) {
	h, err := a.histogram(maxLen)
	if err != nil {
		return 0, err
	}
	total := 0
	for s, n := range h {
		if s >= threshold {
			total += n
		}
	}

	return total, nil
}

// Count is a one-shot helper around NewAnalyzer and Analyzer.Count.
func Count(path []gridgraph.Cell, maxLen, threshold int) (int, error) {
	a, err := NewAnalyzer(path)
	if err != nil {
		return 0, err
	}

	return a.Count(maxLen, threshold)
}

func (a *Analyzer) histogram(maxLen int) (map[int]int, error) {
	if maxLen < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadMaxLength, maxLen)
	}
	if h, ok := a.hist[maxLen]; ok {
		return h, nil
	}

	h := make(map[int]int)
	jumps := offsets(maxLen)
	for i, c := range a.path {
		for _, off := range jumps {
			j, ok := a.index[c.Add(off.dx, off.dy)]
			if !ok || j <= i {
				continue
			}
			if s := j - i - off.d; s > 0 {
				h[s]++
			}
		}
	}
	a.hist[maxLen] = h

	return h, nil
}

type offset struct{ dx, dy, d int }

// offsets lists every displacement with 1 ≤ |dx|+|dy| ≤ maxLen.
func offsets(maxLen int) []offset {
	var out []offset
	for dy := -maxLen; dy <= maxLen; dy++ {
		rest := maxLen - abs(dy)
		for dx := -rest; dx <= rest; dx++ {
			if d := abs(dx) + abs(dy); d > 0 {
				out = append(out, offset{dx: dx, dy: dy, d: d})
			}
		}
	}

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
