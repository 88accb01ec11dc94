package sudoku

import "math/bits"

// Domain is the set of values a cell could still legally take, held as a
// fixed-width bitmask: bit v-1 set means v is a candidate. The width caps
// the supported grid dimension at 64.
type Domain uint64

// Full returns the domain containing every value in 1..n.
func Full(n int) Domain {
	if n <= 0 {
		return 0
	}
	if n >= 64 {
		return ^Domain(0)
	}
	return Domain(1)<<uint(n) - 1
}

// Has reports whether v is a candidate.
func (d Domain) Has(v int) bool {
	return v >= 1 && v <= 64 && d&(1<<uint(v-1)) != 0
}

// With returns d plus the candidate v.
func (d Domain) With(v int) Domain {
	if v < 1 || v > 64 {
		return d
	}
	return d | 1<<uint(v-1)
}

// Without returns d minus the candidate v.
func (d Domain) Without(v int) Domain {
	if v < 1 || v > 64 {
		return d
	}
	return d &^ (1 << uint(v-1))
}

// Minus returns d with every candidate of other removed.
func (d Domain) Minus(other Domain) Domain {
	return d &^ other
}

// Len returns the number of candidates.
func (d Domain) Len() int {
	return bits.OnesCount64(uint64(d))
}

// IsEmpty reports whether no candidate remains.
func (d Domain) IsEmpty() bool {
	return d == 0
}

// Smallest returns the numerically smallest candidate, or 0 if the domain
// is empty. Search draws candidates through this so that its behavior is
// reproducible.
func (d Domain) Smallest() int {
	if d == 0 {
		return 0
	}
	return bits.TrailingZeros64(uint64(d)) + 1
}

// Values returns the candidates in ascending order.
func (d Domain) Values() []int {
	vs := make([]int, 0, d.Len())
	for d != 0 {
		v := d.Smallest()
		vs = append(vs, v)
		d = d.Without(v)
	}
	return vs
}
