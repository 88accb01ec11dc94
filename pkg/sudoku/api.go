// Package sudoku models N×N logic-grid puzzles: the grid and its cells,
// candidate domains, positional addressing, validity checks, parsing and
// rendering. Solving lives in internal/solver and internal/satsolve; this
// package is the shared vocabulary between them and their callers.
package sudoku

import (
	"fmt"
	"strings"
)

// ConflictKind classifies a single consistency violation found in a grid.
type ConflictKind int

const (
	// DuplicateInRow reports a value appearing twice in one row.
	DuplicateInRow ConflictKind = iota
	// DuplicateInColumn reports a value appearing twice in one column.
	DuplicateInColumn
	// DuplicateInBlock reports a value appearing twice in one block.
	DuplicateInBlock
	// NoCandidates reports an empty cell whose candidate domain has been
	// exhausted, so no legal value remains for it.
	NoCandidates
	// ValueOutOfRange reports a fixed value outside 1..N.
	ValueOutOfRange
)

// Conflict pins one consistency violation to a cell. For duplicate kinds it
// names the second occurrence of the repeated value.
type Conflict struct {
	Kind  ConflictKind
	X, Y  int
	Value int
}

// String implements fmt.Stringer and returns a human-readable message
// describing the violation.
func (c Conflict) String() string {
	switch c.Kind {
	case DuplicateInRow:
		return fmt.Sprintf("value %d appears more than once in row %d", c.Value, c.Y)
	case DuplicateInColumn:
		return fmt.Sprintf("value %d appears more than once in column %d", c.Value, c.X)
	case DuplicateInBlock:
		return fmt.Sprintf("value %d appears more than once in the block containing (%d, %d)", c.Value, c.X, c.Y)
	case NoCandidates:
		return fmt.Sprintf("cell (%d, %d) has no remaining candidates", c.X, c.Y)
	case ValueOutOfRange:
		return fmt.Sprintf("cell (%d, %d) holds %d, which is out of range", c.X, c.Y, c.Value)
	}
	return fmt.Sprintf("unknown conflict at (%d, %d)", c.X, c.Y)
}

// Unsolvable is an error composed of the conflicts that make a solution
// impossible. It is returned when no backtrack point remains to unwind:
// either the input already contained a contradiction, or every guess has
// been exhausted.
type Unsolvable []Conflict

func (e Unsolvable) Error() string {
	const msg = "puzzle is not solvable"
	if len(e) == 0 {
		return msg
	}
	s := make([]string, len(e))
	for i, c := range e {
		s[i] = c.String()
	}
	return fmt.Sprintf("%s:\n%s", msg, strings.Join(s, "\n"))
}
