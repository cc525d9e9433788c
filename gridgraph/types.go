// Package gridgraph defines the cell, direction and barrier types shared by
// every search over a grid maze.
package gridgraph

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/zyedidia/generic/mapset"
)

// Cell is an integer grid coordinate. X grows east, Y grows south.
type Cell struct {
	X, Y int
}

// Add returns c shifted by (dx, dy).
func (c Cell) Add(dx, dy int) Cell { return Cell{X: c.X + dx, Y: c.Y + dy} }

// Manhattan returns |c.X-o.X| + |c.Y-o.Y|.
func (c Cell) Manhattan(o Cell) int {
	return abs(c.X-o.X) + abs(c.Y-o.Y)
}

// String formats the cell as "x,y", the same form barrier lists use.
func (c Cell) String() string { return fmt.Sprintf("%d,%d", c.X, c.Y) }

// Direction is one of the four facing values.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

// Directions lists the four directions in neighbour order.
var Directions = [4]Direction{North, East, South, West}

var deltas = [4][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

// Delta returns the (dx, dy) of one step in direction d.
func (d Direction) Delta() (dx, dy int) {
	return deltas[d][0], deltas[d][1]
}

// Opposite returns the direction rotated by 180°.
func (d Direction) Opposite() Direction { return (d + 2) % 4 }

// Turns returns the two directions reachable by a single 90° turn,
// clockwise first.
func (d Direction) Turns() [2]Direction { return [2]Direction{(d + 1) % 4, (d + 3) % 4} }

func (d Direction) String() string {
	switch d {
	case North:
		return "N"
	case East:
		return "E"
	case South:
		return "S"
	case West:
		return "W"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// Heading is a search node that pairs a cell with the direction faced.
type Heading struct {
	Cell Cell
	Dir  Direction
}

// Position returns the cell component; used to flatten heading routes.
func (h Heading) Position() Cell { return h.Cell }

func (h Heading) String() string { return fmt.Sprintf("%v/%v", h.Cell, h.Dir) }

// BarrierSet is a set of blocked cells. A nil *BarrierSet is an empty set
// for every read operation.
type BarrierSet struct {
	cells mapset.Set[Cell]
}

// NewBarrierSet returns a set holding cells.
func NewBarrierSet(cells ...Cell) *BarrierSet {
	b := &BarrierSet{cells: mapset.New[Cell]()}
	for _, c := range cells {
		b.cells.Put(c)
	}

	return b
}

// Has reports whether c is blocked by the set.
func (b *BarrierSet) Has(c Cell) bool {
	if b == nil || b.cells.Size() == 0 {
		return false
	}

	return b.cells.Has(c)
}

// Add inserts c. It reports whether c was newly added; a nil set cannot
// grow and always reports false.
func (b *BarrierSet) Add(c Cell) bool {
	if b == nil || b.Has(c) {
		return false
	}
	if b.cells.Size() == 0 {
		b.cells = mapset.New[Cell]()
	}
	b.cells.Put(c)

	return true
}

// Len returns the number of cells in the set.
func (b *BarrierSet) Len() int {
	if b == nil {
		return 0
	}

	return b.cells.Size()
}

// Clone returns an independent copy; adding to the copy never affects b.
func (b *BarrierSet) Clone() *BarrierSet {
	out := NewBarrierSet()
	if b == nil {
		return out
	}
	b.cells.Each(func(c Cell) { out.cells.Put(c) })

	return out
}

// Cells returns the members sorted row-major (by Y, then X).
func (b *BarrierSet) Cells() []Cell {
	if b == nil {
		return nil
	}
	out := make([]Cell, 0, b.cells.Size())
	b.cells.Each(func(c Cell) { out = append(out, c) })
	slices.SortFunc(out, func(p, q Cell) int {
		if p.Y != q.Y {
			return cmp.Compare(p.Y, q.Y)
		}
		return cmp.Compare(p.X, q.X)
	})

	return out
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
