package sat

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/puzzle-framework/gridlock/internal/satsolve"
	"github.com/puzzle-framework/gridlock/pkg/sudoku"
)

func NewSatCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "sat <path>",
		Short: "Solves a puzzle by handing a SAT encoding of it to gini",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := os.Stat(args[0]); errors.Is(err, os.ErrNotExist) {
				return fmt.Errorf("file (%s) not found", args[0])
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0])
		},
	}
}

func run(path string) error {
	grid, err := sudoku.FromFile(path)
	if err != nil {
		return fmt.Errorf("error parsing puzzle file (%s): %w", path, err)
	}

	if err := satsolve.Solve(context.Background(), grid); err != nil {
		fmt.Printf("no solution found: %s\n", err)
	}
	fmt.Print(grid)

	return nil
}
