package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kristofer84/star-battle-solver-sub000/internal/puzzlefile"
	"github.com/kristofer84/star-battle-solver-sub000/pkg/starbattle"
)

func countCmd() *cobra.Command {
	var limit int
	cmd := &cobra.Command{
		Use:   "count <puzzle.yaml>",
		Short: "Count completions by brute force",
		Long: "count enumerates full-board completions consistent with the\n" +
			"committed cells. Useful for checking that a puzzle has a unique\n" +
			"solution, or for cross-checking an engine deduction.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := puzzlefile.Load(args[0])
			if err != nil {
				return err
			}
			analysis, err := starbattle.NewAnalysis(board, analysisOptions()...)
			if err != nil {
				return err
			}
			n, exact, err := analysis.CountSolutions(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if exact {
				fmt.Printf("%d solution(s)\n", n)
			} else {
				fmt.Printf("at least %d solution(s) (search cut short)\n", n)
			}
			return nil
		},
	}
	cmd.Flags().IntVar(&limit, "limit", 0, "stop after this many solutions (0 = all)")
	return cmd
}
