package solve

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/puzzle-framework/gridlock/internal/solver"
	"github.com/puzzle-framework/gridlock/pkg/sudoku"
)

func NewSolveCommand() *cobra.Command {
	var trace bool
	var maxSteps int

	cmd := &cobra.Command{
		Use:   "solve <path>",
		Short: "Solves a puzzle with propagation and backtracking search",
		Long: `Solves a puzzle read from a file of whitespace-separated integers,
where 0 marks an empty cell. For a 4x4 puzzle the file may be one line:

1 2 3 4 3 4 1 2 2 1 4 3 4 3 2 1

... or split into rows for readability:

1 2 3 4
3 4 1 2
2 1 4 3
4 3 2 1

The number of cells must be the square of a perfect-square dimension
(a 9x9 puzzle has 81 cells, a 16x16 puzzle 256, and so on).
`,
		Args: cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], trace, maxSteps)
		},
	}
	cmd.Flags().BoolVar(&trace, "trace", false, "log every guess and backtrack to stderr")
	cmd.Flags().IntVar(&maxSteps, "max-steps", 0, "stop after this many search iterations (0 means unbounded)")
	return cmd
}

func run(path string, trace bool, maxSteps int) error {
	grid, err := sudoku.FromFile(path)
	if err != nil {
		return fmt.Errorf("error parsing puzzle file (%s): %w", path, err)
	}

	var options []solver.Option
	if trace {
		options = append(options, solver.WithTracer(solver.LoggingTracer{Writer: os.Stderr}))
	}
	if maxSteps > 0 {
		options = append(options, solver.WithMaxSteps(maxSteps))
	}
	so, err := solver.NewSolver(options...)
	if err != nil {
		return err
	}

	// on failure the grid keeps its last state, worth showing for diagnosis
	if err := so.Solve(context.Background(), grid); err != nil {
		fmt.Printf("no solution found: %s\n", err)
	}
	fmt.Print(grid)

	return nil
}
