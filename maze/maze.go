// Package maze reads the text formats a search is driven from: a grid of
// '#' walls, '.' floor, one 'S' start and one 'E' goal, and a list of
// "x,y" barrier events, one per line.
//
// Both parsers fail closed: any malformed input is an error, never a
// default start or a skipped line.
package maze

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/mazepath/gridgraph"
)

// Sentinel errors for malformed input.
var (
	ErrMissingStart    = errors.New("maze: no start marker 'S'")
	ErrMissingGoal     = errors.New("maze: no goal marker 'E'")
	ErrDuplicateMarker = errors.New("maze: marker appears more than once")
	ErrBadRune         = errors.New("maze: unexpected character")
	ErrBadBarrier      = errors.New("maze: malformed barrier line")
)

// Maze is a parsed grid with its two markers. Marker cells are open.
type Maze struct {
	Grid  *gridgraph.GridGraph
	Start gridgraph.Cell
	Goal  gridgraph.Cell
}

// StartHeading is the initial state for turn-cost searches: the start
// cell facing East.
func (m *Maze) StartHeading() gridgraph.Heading {
	return gridgraph.Heading{Cell: m.Start, Dir: gridgraph.East}
}

// Parse reads a maze from r. Blank lines are skipped.
func Parse(r io.Reader) (*Maze, error) {
	var (
		rows         [][]bool
		start, goal  gridgraph.Cell
		seenS, seenE bool
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		y := len(rows)
		if y > 0 && len(line) != len(rows[0]) {
			return nil, fmt.Errorf("maze: row %d has %d cells, want %d: %w",
				y, len(line), len(rows[0]), gridgraph.ErrNonRectangular)
		}
		row := make([]bool, len(line))
		for x := 0; x < len(line); x++ {
			switch ch := line[x]; ch {
			case '#':
				row[x] = true
			case '.':
			case 'S':
				if seenS {
					return nil, fmt.Errorf("%w: 'S' again at %d,%d", ErrDuplicateMarker, x, y)
				}
				start, seenS = gridgraph.Cell{X: x, Y: y}, true
			case 'E':
				if seenE {
					return nil, fmt.Errorf("%w: 'E' again at %d,%d", ErrDuplicateMarker, x, y)
				}
				goal, seenE = gridgraph.Cell{X: x, Y: y}, true
			default:
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrBadRune, ch, y, x)
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	grid, err := gridgraph.From2D(rows)
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	if !seenS {
		return nil, ErrMissingStart
	}
	if !seenE {
		return nil, ErrMissingGoal
	}

	return &Maze{Grid: grid, Start: start, Goal: goal}, nil
}

// ParseBarriers reads "x,y" lines from r in order. Blank lines are
// skipped; anything else that is not two non-negative integers is
// ErrBadBarrier with its 1-based line number.
func ParseBarriers(r io.Reader) ([]gridgraph.Cell, error) {
	var out []gridgraph.Cell
	sc := bufio.NewScanner(r)
	for n := 1; sc.Scan(); n++ {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		c, err := parseCell(line)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d %q: %v", ErrBadBarrier, n, line, err)
		}
		out = append(out, c)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}

	return out, nil
}

func parseCell(s string) (gridgraph.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return gridgraph.Cell{}, errors.New("missing comma")
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return gridgraph.Cell{}, err
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return gridgraph.Cell{}, err
	}
	if x < 0 || y < 0 {
		return gridgraph.Cell{}, errors.New("negative coordinate")
	}

	return gridgraph.Cell{X: x, Y: y}, nil
}
