package solver

import "github.com/puzzle-framework/gridlock/pkg/sudoku"

// updateDomains removes from every unfixed cell's domain the values fixed
// among its row, column and block peers, and clears the domain of every
// fixed cell. It runs over the whole grid on each call: peer values change
// between calls through forced assignments and backtracking restores.
//
// Removal is subtractive, never a rebuild from the full range. A value
// excluded from a branch point's domain after a failed guess must stay
// excluded, or the search would retry it forever.
func updateDomains(g *sudoku.Grid) {
	for i := 0; i < g.Len(); i++ {
		c := g.Cell(i)
		if c.Value != 0 {
			c.Domain = 0
			continue
		}
		c.Domain = c.Domain.Minus(g.PeerValues(i))
	}
}
