package sudoku

import "fmt"

// DimensionError rejects input whose shape cannot form a grid with
// well-defined blocks. Cells is the number of parsed cells; Dimension is
// the derived side length, or 0 when the cell count itself is not square.
type DimensionError struct {
	Cells     int
	Dimension int
}

func (e *DimensionError) Error() string {
	if e.Dimension == 0 {
		return fmt.Sprintf("a grid of %d cells is not square", e.Cells)
	}
	return fmt.Sprintf("unsupported grid dimension %d: must be a perfect square between 4 and 64", e.Dimension)
}

// Grid is an ordered collection of N² cells in row-major order
// (index = x + y·N) plus the addressing tables for rows, columns and
// blocks. Row, column and block membership is precomputed once at
// construction so lookups in the solving loop do no arithmetic beyond
// indexing.
type Grid struct {
	dimension int
	blockSide int
	cells     []Cell
	rows      [][]int
	columns   [][]int
	blocks    [][]int
	blockOf   []int
}

// squareRoot returns the integer square root of n and whether n is a
// perfect square.
func squareRoot(n int) (int, bool) {
	if n < 0 {
		return 0, false
	}
	r := 0
	for (r+1)*(r+1) <= n {
		r++
	}
	return r, r*r == n
}

// New returns an empty grid of the given dimension with every cell's
// domain reset to the full range 1..dimension. The dimension must be a
// perfect square between 4 and 64 for block addressing to be well-defined;
// anything else is rejected with a DimensionError.
func New(dimension int) (*Grid, error) {
	side, ok := squareRoot(dimension)
	if !ok || dimension < 4 || dimension > 64 {
		return nil, &DimensionError{Cells: dimension * dimension, Dimension: dimension}
	}

	g := &Grid{
		dimension: dimension,
		blockSide: side,
		cells:     make([]Cell, dimension*dimension),
		rows:      make([][]int, dimension),
		columns:   make([][]int, dimension),
		blocks:    make([][]int, dimension),
		blockOf:   make([]int, dimension*dimension),
	}
	for u := 0; u < dimension; u++ {
		g.rows[u] = make([]int, 0, dimension)
		g.columns[u] = make([]int, 0, dimension)
		g.blocks[u] = make([]int, 0, dimension)
	}
	for i := range g.cells {
		x, y := i%dimension, i/dimension
		b := x/side + y/side*side
		g.rows[y] = append(g.rows[y], i)
		g.columns[x] = append(g.columns[x], i)
		g.blocks[b] = append(g.blocks[b], i)
		g.blockOf[i] = b
	}
	g.ResetDomains()
	return g, nil
}

// Dimension returns the side length N.
func (g *Grid) Dimension() int {
	return g.dimension
}

// BlockSide returns the side length of one block, √N.
func (g *Grid) BlockSide() int {
	return g.blockSide
}

// Len returns the number of cells, N².
func (g *Grid) Len() int {
	return len(g.cells)
}

// Cell returns the cell at row-major index i for in-place mutation.
func (g *Grid) Cell(i int) *Cell {
	return &g.cells[i]
}

// CellAt returns the cell at column x, row y.
func (g *Grid) CellAt(x, y int) *Cell {
	return &g.cells[x+y*g.dimension]
}

// Values returns a copy of the current value sequence in row-major order.
func (g *Grid) Values() []int {
	vs := make([]int, len(g.cells))
	for i, c := range g.cells {
		vs[i] = c.Value
	}
	return vs
}

// ResetDomains resets every cell's domain to the full range 1..N.
func (g *Grid) ResetDomains() {
	full := Full(g.dimension)
	for i := range g.cells {
		g.cells[i].Domain = full
	}
}

// CopyCells returns a copy of the cell sequence, suitable for a snapshot.
func (g *Grid) CopyCells() []Cell {
	out := make([]Cell, len(g.cells))
	copy(out, g.cells)
	return out
}

// RestoreCells replaces the cell sequence with a previously copied one.
func (g *Grid) RestoreCells(cells []Cell) {
	if len(cells) != len(g.cells) {
		panic(fmt.Sprintf("restoring %d cells into a grid of %d", len(cells), len(g.cells)))
	}
	copy(g.cells, cells)
}

// valuesOf collects the non-zero values among the given cell indices.
func (g *Grid) valuesOf(indices []int) Domain {
	var d Domain
	for _, i := range indices {
		if v := g.cells[i].Value; v != 0 {
			d = d.With(v)
		}
	}
	return d
}

// RowValues returns the non-zero values currently present in row y.
func (g *Grid) RowValues(y int) Domain {
	return g.valuesOf(g.rows[y])
}

// ColumnValues returns the non-zero values currently present in column x.
func (g *Grid) ColumnValues(x int) Domain {
	return g.valuesOf(g.columns[x])
}

// BlockValues returns the non-zero values currently present in the block
// containing column x, row y.
func (g *Grid) BlockValues(x, y int) Domain {
	return g.valuesOf(g.blocks[g.blockOf[x+y*g.dimension]])
}

// PeerValues returns the non-zero values among the peers of the cell at
// index i: its row, column and block.
func (g *Grid) PeerValues(i int) Domain {
	x, y := i%g.dimension, i/g.dimension
	return g.RowValues(y) | g.ColumnValues(x) | g.valuesOf(g.blocks[g.blockOf[i]])
}

// IsValid reports whether the grid is still consistent: every cell locally
// valid, and no value repeated within any row, column or block. A valid
// grid is not necessarily solved; a solved grid is always valid. IsValid
// never mutates the grid.
func (g *Grid) IsValid() bool {
	for _, c := range g.cells {
		if !c.locallyValid(g.dimension) {
			return false
		}
	}
	for u := 0; u < g.dimension; u++ {
		if g.hasDuplicate(g.rows[u]) || g.hasDuplicate(g.columns[u]) || g.hasDuplicate(g.blocks[u]) {
			return false
		}
	}
	return true
}

func (g *Grid) hasDuplicate(indices []int) bool {
	var seen Domain
	for _, i := range indices {
		v := g.cells[i].Value
		if v == 0 {
			continue
		}
		if seen.Has(v) {
			return true
		}
		seen = seen.With(v)
	}
	return false
}

// IsSolved reports whether the grid is valid and every cell holds a value.
func (g *Grid) IsSolved() bool {
	if !g.IsValid() {
		return false
	}
	for _, c := range g.cells {
		if c.Value == 0 {
			return false
		}
	}
	return true
}

// Conflicts returns every consistency violation currently present. It is
// the diagnostic counterpart of IsValid, used to explain an Unsolvable
// outcome; the empty result means the grid is valid.
func (g *Grid) Conflicts() []Conflict {
	var conflicts []Conflict
	for i, c := range g.cells {
		if c.locallyValid(g.dimension) {
			continue
		}
		x, y := i%g.dimension, i/g.dimension
		kind := NoCandidates
		if c.Value != 0 {
			kind = ValueOutOfRange
		}
		conflicts = append(conflicts, Conflict{Kind: kind, X: x, Y: y, Value: c.Value})
	}
	for u := 0; u < g.dimension; u++ {
		conflicts = g.appendDuplicates(conflicts, g.rows[u], DuplicateInRow)
		conflicts = g.appendDuplicates(conflicts, g.columns[u], DuplicateInColumn)
		conflicts = g.appendDuplicates(conflicts, g.blocks[u], DuplicateInBlock)
	}
	return conflicts
}

func (g *Grid) appendDuplicates(conflicts []Conflict, indices []int, kind ConflictKind) []Conflict {
	var seen Domain
	for _, i := range indices {
		v := g.cells[i].Value
		if v == 0 || v > 64 {
			continue
		}
		if seen.Has(v) {
			conflicts = append(conflicts, Conflict{Kind: kind, X: i % g.dimension, Y: i / g.dimension, Value: v})
			continue
		}
		seen = seen.With(v)
	}
	return conflicts
}
