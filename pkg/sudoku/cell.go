package sudoku

// Cell is a single grid position. Value 0 means empty; 1..N means fixed.
// Domain is meaningful only while Value is 0: a fixed cell carries no
// candidates.
type Cell struct {
	Value  int
	Domain Domain
}

// Fixed reports whether the cell holds a value.
func (c Cell) Fixed() bool {
	return c.Value != 0
}

// Fix assigns v and clears the candidate domain.
func (c *Cell) Fix(v int) {
	c.Value = v
	c.Domain = 0
}

// locallyValid reports whether the cell on its own can still be part of a
// solution: a fixed value in 1..n, or at least one remaining candidate.
// An empty cell with an exhausted domain is a contradiction, not a cell
// with nothing to do.
func (c Cell) locallyValid(n int) bool {
	if c.Value != 0 {
		return c.Value >= 1 && c.Value <= n
	}
	return !c.Domain.IsEmpty()
}
