package solver

import (
	"fmt"
	"io"
)

// SearchPosition describes one branching decision during search.
type SearchPosition interface {
	// Cell returns the column and row of the cell branched on.
	Cell() (x, y int)
	// Value returns the candidate guessed, or retracted on backtrack.
	Value() int
	// Depth returns the height of the snapshot history after the event.
	Depth() int
}

// Tracer observes the search as it branches and backtracks.
type Tracer interface {
	Branched(p SearchPosition)
	Backtracked(p SearchPosition)
}

type DefaultTracer struct{}

func (DefaultTracer) Branched(_ SearchPosition) {
}

func (DefaultTracer) Backtracked(_ SearchPosition) {
}

type LoggingTracer struct {
	Writer io.Writer
}

func (t LoggingTracer) Branched(p SearchPosition) {
	x, y := p.Cell()
	fmt.Fprintf(t.Writer, "guess %d at (%d, %d), depth %d\n", p.Value(), x, y, p.Depth())
}

func (t LoggingTracer) Backtracked(p SearchPosition) {
	x, y := p.Cell()
	fmt.Fprintf(t.Writer, "retract %d at (%d, %d), depth %d\n", p.Value(), x, y, p.Depth())
}

type position struct {
	x, y  int
	value int
	depth int
}

func (p position) Cell() (int, int) {
	return p.x, p.y
}

func (p position) Value() int {
	return p.value
}

func (p position) Depth() int {
	return p.depth
}
