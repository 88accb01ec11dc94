package sudoku

import (
	"strconv"
	"strings"
)

// String implements fmt.Stringer. Each cell's value is followed by a
// single space, rows end in a newline, and a blank line follows the grid.
// Empty cells render as the literal digit 0, never as a blank, so the
// output of a solved or partially solved grid parses back into the same
// value sequence.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.dimension; y++ {
		for x := 0; x < g.dimension; x++ {
			b.WriteString(strconv.Itoa(g.cells[x+y*g.dimension].Value))
			b.WriteByte(' ')
		}
		b.WriteByte('\n')
	}
	b.WriteByte('\n')
	return b.String()
}
