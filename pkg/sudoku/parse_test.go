package sudoku_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/puzzle-framework/gridlock/pkg/sudoku"
)

var _ = Describe("Parse", func() {
	It("should parse a puzzle on a single line", func() {
		g, err := sudoku.FromString(solved4x4)
		Expect(err).ToNot(HaveOccurred())
		Expect(g.Dimension()).To(Equal(4))
		Expect(g.Values()).To(Equal([]int{1, 2, 3, 4, 3, 4, 1, 2, 2, 1, 4, 3, 4, 3, 2, 1}))
	})

	It("should accept any whitespace between tokens", func() {
		g, err := sudoku.FromString("1 2 3 4\n3 4 1 2\n2 1 4 3\n4 3 2 1\n")
		Expect(err).ToNot(HaveOccurred())
		Expect(g.Values()).To(Equal([]int{1, 2, 3, 4, 3, 4, 1, 2, 2, 1, 4, 3, 4, 3, 2, 1}))
	})

	It("should leave every cell's domain at the full range", func() {
		g, err := sudoku.FromString("1 2 0 0 3 4 1 2 2 1 4 3 4 3 2 1")
		Expect(err).ToNot(HaveOccurred())
		Expect(g.CellAt(2, 0).Domain).To(Equal(sudoku.Full(4)))
		Expect(g.IsValid()).To(BeTrue())
	})

	It("should reject a malformed token instead of dropping it", func() {
		_, err := sudoku.FromString("1 2 3 4 3 4 1 2 2 1 4 x 4 3 2 1")
		var parseErr *sudoku.ParseError
		Expect(errors.As(err, &parseErr)).To(BeTrue())
		Expect(parseErr.Token).To(Equal("x"))
		Expect(parseErr.Pos).To(Equal(11))
	})

	It("should reject a negative value", func() {
		_, err := sudoku.FromString("1 2 3 4 3 4 1 2 2 1 4 -3 4 3 2 1")
		var parseErr *sudoku.ParseError
		Expect(errors.As(err, &parseErr)).To(BeTrue())
	})

	It("should reject a value beyond the grid dimension", func() {
		_, err := sudoku.FromString("1 2 3 4 3 4 1 2 2 1 4 5 4 3 2 1")
		var parseErr *sudoku.ParseError
		Expect(errors.As(err, &parseErr)).To(BeTrue())
		Expect(parseErr.Token).To(Equal("5"))
	})

	It("should reject a cell count that is not square", func() {
		_, err := sudoku.FromString("1 2 3 4 5")
		var dimensionErr *sudoku.DimensionError
		Expect(errors.As(err, &dimensionErr)).To(BeTrue())
		Expect(dimensionErr.Cells).To(Equal(5))
	})

	It("should reject a dimension without a block structure", func() {
		// 25 cells derive a 5x5 grid, and 5 is not a perfect square
		tokens := make([]string, 25)
		for i := range tokens {
			tokens[i] = "0"
		}
		_, err := sudoku.FromString(strings.Join(tokens, " "))
		var dimensionErr *sudoku.DimensionError
		Expect(errors.As(err, &dimensionErr)).To(BeTrue())
		Expect(dimensionErr.Dimension).To(Equal(5))
	})

	It("should parse from a reader", func() {
		g, err := sudoku.FromReader(strings.NewReader(solved4x4))
		Expect(err).ToNot(HaveOccurred())
		Expect(g.Dimension()).To(Equal(4))
	})

	It("should parse from a file", func() {
		path := filepath.Join(GinkgoT().TempDir(), "puzzle.txt")
		Expect(os.WriteFile(path, []byte(solved4x4), 0o600)).To(Succeed())
		g, err := sudoku.FromFile(path)
		Expect(err).ToNot(HaveOccurred())
		Expect(g.Dimension()).To(Equal(4))
	})

	It("should report a missing file", func() {
		_, err := sudoku.FromFile(filepath.Join(GinkgoT().TempDir(), "absent.txt"))
		Expect(err).To(HaveOccurred())
		Expect(errors.Is(err, os.ErrNotExist)).To(BeTrue())
	})
})

var _ = Describe("Render", func() {
	It("should print one row per line with a trailing blank line", func() {
		g, err := sudoku.FromString(solved4x4)
		Expect(err).ToNot(HaveOccurred())
		Expect(g.String()).To(Equal("1 2 3 4 \n3 4 1 2 \n2 1 4 3 \n4 3 2 1 \n\n"))
	})

	It("should render empty cells as the digit 0", func() {
		g, err := sudoku.FromString("0 2 3 4 3 4 1 2 2 1 4 3 4 3 2 1")
		Expect(err).ToNot(HaveOccurred())
		Expect(g.String()).To(HavePrefix("0 2 3 4 \n"))
	})

	It("should round-trip through parsing", func() {
		g, err := sudoku.FromString(solved4x4)
		Expect(err).ToNot(HaveOccurred())
		reparsed, err := sudoku.FromString(g.String())
		Expect(err).ToNot(HaveOccurred())
		Expect(reparsed.Values()).To(Equal(g.Values()))
	})
})
