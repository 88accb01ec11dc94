// Package solver implements the backtracking search engine: it alternates
// domain propagation, validation, forced assignment, and guarded guessing
// with snapshot-based undo until the grid is solved or proven unsolvable.
package solver

import (
	"context"
	"errors"
	"fmt"

	"github.com/puzzle-framework/gridlock/pkg/sudoku"
)

// ErrIncomplete is returned when the search is stopped by context
// cancellation or the step bound before reaching a verdict. The grid is
// left in its last-modified state.
var ErrIncomplete = errors.New("search stopped before a solution could be found")

// Solver runs one puzzle to completion per call. A nil error means the
// grid now holds a solution. A sudoku.Unsolvable error means no solution
// exists; the grid keeps its best-effort partial assignment for diagnosis.
type Solver interface {
	Solve(ctx context.Context, g *sudoku.Grid) error
}

type solver struct {
	tracer   Tracer
	maxSteps int
}

func NewSolver(options ...Option) (Solver, error) {
	s := solver{}
	for _, option := range append(options, defaults...) {
		if err := option(&s); err != nil {
			return nil, err
		}
	}
	return &s, nil
}

type Option func(s *solver) error

func WithTracer(t Tracer) Option {
	return func(s *solver) error {
		s.tracer = t
		return nil
	}
}

// WithMaxSteps bounds the number of search iterations. The engine has no
// native interruption mechanism, so this is the way to cap search time.
func WithMaxSteps(n int) Option {
	return func(s *solver) error {
		if n <= 0 {
			return fmt.Errorf("max steps must be positive, got %d", n)
		}
		s.maxSteps = n
		return nil
	}
}

var defaults = []Option{
	func(s *solver) error {
		if s.tracer == nil {
			s.tracer = DefaultTracer{}
		}
		return nil
	},
}

// Solve runs the search loop on g. Each iteration propagates domains,
// validates, then either backtracks, makes a forced assignment, guesses at
// a branch point, or terminates. An invalid grid mid-search is normal
// control flow: it is the signal that the most recent guess was wrong.
func (s *solver) Solve(ctx context.Context, g *sudoku.Grid) error {
	g.ResetDomains()
	n := g.Dimension()
	var hist history
	for step := 0; ; step++ {
		if ctx.Err() != nil {
			return ErrIncomplete
		}
		if s.maxSteps > 0 && step >= s.maxSteps {
			return ErrIncomplete
		}

		updateDomains(g)

		if !g.IsValid() {
			snap, ok := hist.pop()
			if !ok {
				// No guess left to unwind: the input itself holds a
				// contradiction, or every candidate has been excluded.
				return sudoku.Unsolvable(g.Conflicts())
			}
			g.RestoreCells(snap.cells)
			cell := g.Cell(snap.index)
			cell.Domain = cell.Domain.Without(snap.value)
			s.tracer.Backtracked(position{x: snap.index % n, y: snap.index / n, value: snap.value, depth: hist.depth()})
			continue
		}

		// Forced move: a cell with exactly one candidate is logically
		// implied, so no snapshot is recorded.
		if i, ok := firstWithDomainSize(g, 1); ok {
			cell := g.Cell(i)
			cell.Fix(cell.Domain.Smallest())
			continue
		}

		// Branch point: prefer a two-candidate cell, else the first empty
		// cell in row-major order.
		i, ok := firstWithDomainSize(g, 2)
		if !ok {
			i, ok = firstEmpty(g)
		}
		if !ok {
			// No empty cell remains and the grid is valid: solved.
			return nil
		}

		cell := g.Cell(i)
		value := cell.Domain.Smallest()
		if value == 0 {
			// An empty cell with an exhausted domain fails validation, so
			// the branch selection can never see one. Reaching this means
			// a corrupted invariant, not an unsolvable puzzle.
			panic(fmt.Sprintf("branch point %d drawn from an empty domain", i))
		}
		hist.push(snapshot{cells: g.CopyCells(), index: i, value: value})
		cell.Fix(value)
		s.tracer.Branched(position{x: i % n, y: i / n, value: value, depth: hist.depth()})
	}
}

// firstWithDomainSize returns the index of the first unfixed cell with
// exactly size candidates, in row-major scan order.
func firstWithDomainSize(g *sudoku.Grid, size int) (int, bool) {
	for i := 0; i < g.Len(); i++ {
		c := g.Cell(i)
		if c.Value == 0 && c.Domain.Len() == size {
			return i, true
		}
	}
	return 0, false
}

func firstEmpty(g *sudoku.Grid) (int, bool) {
	for i := 0; i < g.Len(); i++ {
		if g.Cell(i).Value == 0 {
			return i, true
		}
	}
	return 0, false
}
