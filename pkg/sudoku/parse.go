package sudoku

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ParseError rejects a whitespace-delimited token that is not a usable
// cell value. Tokens are never dropped silently: a dropped token would
// shrink the cell count and corrupt the derived dimension.
type ParseError struct {
	Token string
	Pos   int
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid token %q at position %d: %v", e.Token, e.Pos, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FromString reads a puzzle from a string of whitespace-separated
// integers: 0 marks an empty cell, 1..N a fixed value. Any whitespace
// will do, so a puzzle may sit on one line or be split into rows. The
// dimension is derived from the token count, which must therefore be the
// square of a supported dimension. Every cell's domain starts at the full
// range 1..N, so validity checks are meaningful before solving.
func FromString(source string) (*Grid, error) {
	tokens := strings.Fields(source)
	values := make([]int, len(tokens))
	for i, token := range tokens {
		v, err := strconv.Atoi(token)
		if err != nil {
			return nil, &ParseError{Token: token, Pos: i, Err: err}
		}
		if v < 0 {
			return nil, &ParseError{Token: token, Pos: i, Err: errors.New("cell values must not be negative")}
		}
		values[i] = v
	}

	dimension, ok := squareRoot(len(values))
	if !ok {
		return nil, &DimensionError{Cells: len(values)}
	}
	g, err := New(dimension)
	if err != nil {
		return nil, err
	}
	for i, v := range values {
		if v > dimension {
			return nil, &ParseError{Token: tokens[i], Pos: i, Err: fmt.Errorf("value out of range for a %dx%d grid", dimension, dimension)}
		}
		g.cells[i].Value = v
	}
	return g, nil
}

// FromReader reads a puzzle from r, in the format accepted by FromString.
func FromReader(r io.Reader) (*Grid, error) {
	contents, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("error reading puzzle: %w", err)
	}
	return FromString(string(contents))
}

// FromFile reads a puzzle from the file at path, in the format accepted
// by FromString.
func FromFile(path string) (*Grid, error) {
	contents, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading puzzle file (%s): %w", path, err)
	}
	return FromString(string(contents))
}
