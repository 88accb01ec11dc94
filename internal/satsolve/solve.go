// Package satsolve solves a grid in one shot by handing a CNF encoding of
// it to the gini SAT solver. It trades the incremental, inspectable search
// of internal/solver for raw speed on hard instances.
package satsolve

import (
	"context"
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"

	"github.com/puzzle-framework/gridlock/pkg/sudoku"
)

const (
	satisfiable   = 1
	unsatisfiable = -1
)

// Solve encodes g as CNF and solves it: one literal per (cell, value)
// pair, an at-least-one clause per cell, pairwise conflicts for each value
// within every row, column and block, and a unit clause per given. Counting
// makes at-most-one per cell redundant: a row of N cells can hold at most N
// trues when each value appears at most once. On success the assignment is
// written back into g; otherwise g is untouched and a sudoku.Unsolvable
// error is returned.
func Solve(_ context.Context, g *sudoku.Grid) error {
	n := g.Dimension()
	s := gini.New()

	// one variable per (cell index, candidate value v in 1..n)
	lit := func(i, v int) z.Lit {
		return z.Var(i*n + v).Pos()
	}

	// every cell holds at least one value
	for i := 0; i < g.Len(); i++ {
		for v := 1; v <= n; v++ {
			s.Add(lit(i, v))
		}
		s.Add(0)
	}

	// every row, column and block holds each value at most once
	for u := 0; u < n; u++ {
		addUnitConflicts(s, g, lit, columnIndices(g, u))
		addUnitConflicts(s, g, lit, rowIndices(g, u))
		addUnitConflicts(s, g, lit, blockIndices(g, u))
	}

	// givens
	for i := 0; i < g.Len(); i++ {
		if v := g.Cell(i).Value; v != 0 {
			s.Add(lit(i, v))
			s.Add(0)
		}
	}

	switch s.Solve() {
	case satisfiable:
	case unsatisfiable:
		return sudoku.Unsolvable(g.Conflicts())
	default:
		return fmt.Errorf("unexpected internal solver state")
	}

	for i := 0; i < g.Len(); i++ {
		for v := 1; v <= n; v++ {
			if s.Value(lit(i, v)) {
				g.Cell(i).Fix(v)
				break
			}
		}
	}
	return nil
}

func addUnitConflicts(s *gini.Gini, g *sudoku.Grid, lit func(i, v int) z.Lit, indices []int) {
	n := g.Dimension()
	for v := 1; v <= n; v++ {
		for a := 0; a < len(indices); a++ {
			for b := a + 1; b < len(indices); b++ {
				s.Add(lit(indices[a], v).Not())
				s.Add(lit(indices[b], v).Not())
				s.Add(0)
			}
		}
	}
}

func rowIndices(g *sudoku.Grid, y int) []int {
	n := g.Dimension()
	indices := make([]int, n)
	for x := 0; x < n; x++ {
		indices[x] = x + y*n
	}
	return indices
}

func columnIndices(g *sudoku.Grid, x int) []int {
	n := g.Dimension()
	indices := make([]int, n)
	for y := 0; y < n; y++ {
		indices[y] = x + y*n
	}
	return indices
}

func blockIndices(g *sudoku.Grid, b int) []int {
	n := g.Dimension()
	side := g.BlockSide()
	x0 := (b % side) * side
	y0 := (b / side) * side
	indices := make([]int, 0, n)
	for dy := 0; dy < side; dy++ {
		for dx := 0; dx < side; dx++ {
			indices = append(indices, x0+dx+(y0+dy)*n)
		}
	}
	return indices
}
