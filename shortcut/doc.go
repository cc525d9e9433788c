// Package shortcut measures how many steps a bounded jump through walls
// can save along one fixed route.
//
// Given a simple route p[0..N-1] and a jump length L, a shortcut is an
// ordered pair i < j with manhattan(p[i], p[j]) = d ≤ L; it saves
// (j - i) - d steps over walking the route. Only positive savings count.
//
// Rather than testing all N² pairs, Analyzer looks up the O(L²) cells
// within distance L of every route cell in a position index, so a full
// histogram costs O(N·L²) time and O(N) memory.
//
// Errors:
//
//   - ErrEmptyPath:     the route has no cells.
//   - ErrRepeatedCell:  a cell occurs twice; the route must be simple.
//   - ErrBadMaxLength:  L is negative.
package shortcut
