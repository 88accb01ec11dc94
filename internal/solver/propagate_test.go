package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateDomains(t *testing.T) {
	g := mustParse(t, almost4x4)
	updateDomains(g)

	// fixed cells carry no candidates
	for i := 0; i < g.Len(); i++ {
		if c := g.Cell(i); c.Value != 0 {
			assert.True(t, c.Domain.IsEmpty(), "fixed cell %d", i)
		}
	}

	// the two holes at (2,0) and (3,0) see 1, 2 in their row and block,
	// and 1, 2, 4 / 1, 2, 3 in their columns respectively
	assert.Equal(t, []int{3}, g.CellAt(2, 0).Domain.Values())
	assert.Equal(t, []int{4}, g.CellAt(3, 0).Domain.Values())
}

func TestUpdateDomainsIsIdempotent(t *testing.T) {
	g := mustParse(t, puzzle9x9)
	updateDomains(g)
	after := g.CopyCells()

	// repeated passes without intervening assignments reach a fixed point
	// and never regrow a domain
	updateDomains(g)
	updateDomains(g)
	assert.Equal(t, after, g.CopyCells())
}

func TestUpdateDomainsNeverRegrowsAnExclusion(t *testing.T) {
	g := mustParse(t, puzzle9x9)
	updateDomains(g)

	i, ok := firstEmpty(g)
	require.True(t, ok)
	cell := g.Cell(i)
	excluded := cell.Domain.Smallest()
	cell.Domain = cell.Domain.Without(excluded)

	// a value pruned after a failed guess must survive any number of
	// propagation passes, or backtracking would retry it forever
	updateDomains(g)
	assert.False(t, cell.Domain.Has(excluded))
}
