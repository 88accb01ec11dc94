package root

import (
	"github.com/spf13/cobra"

	"github.com/puzzle-framework/gridlock/cmd/sat"

	"github.com/puzzle-framework/gridlock/cmd/solve"
)

func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gridlock",
		Short: "Gridlock solves N×N logic-grid puzzles",
		Long: `Gridlock solves N×N logic-grid puzzles (9x9 sudoku and its
perfect-square generalizations) with constraint propagation and
backtracking search, or alternatively with a SAT encoding.`,
	}

	// add sub-commands
	rootCmd.AddCommand(solve.NewSolveCommand())
	rootCmd.AddCommand(sat.NewSatCommand())

	return rootCmd
}
