package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kristofer84/star-battle-solver-sub000/internal/puzzlefile"
	"github.com/kristofer84/star-battle-solver-sub000/pkg/starbattle"
)

func solveCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "solve <puzzle.yaml>",
		Short: "Apply forced moves until none remain",
		Long: "solve repeatedly asks the schema registry for the first provable\n" +
			"deduction and applies it, the way an interactive hint driver would.\n" +
			"It stops when no schema can prove a move, which need not mean the\n" +
			"puzzle is finished.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := puzzlefile.Load(args[0])
			if err != nil {
				return err
			}
			registry := starbattle.DefaultRegistry()

			steps := 0
			for {
				analysis, err := starbattle.NewAnalysis(board, analysisOptions()...)
				if err != nil {
					return err
				}
				app, err := registry.First(cmd.Context(), analysis)
				if err != nil {
					return err
				}
				if app == nil {
					break
				}
				steps++
				if !quiet {
					fmt.Printf("step %d: ", steps)
					printApplication(board, *app)
				}
				board, err = board.Apply(app.Deductions)
				if err != nil {
					return err
				}
			}

			fmt.Printf("applied %d schema step(s)\n\n", steps)
			printBoard(board)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "only print the final board")
	return cmd
}
