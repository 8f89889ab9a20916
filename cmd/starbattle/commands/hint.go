package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kristofer84/star-battle-solver-sub000/internal/puzzlefile"
	"github.com/kristofer84/star-battle-solver-sub000/pkg/starbattle"
)

func hintCmd() *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "hint <puzzle.yaml>",
		Short: "Find a provable forced move",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := puzzlefile.Load(args[0])
			if err != nil {
				return err
			}
			analysis, err := starbattle.NewAnalysis(board, analysisOptions()...)
			if err != nil {
				return err
			}
			registry := starbattle.DefaultRegistry()

			if all {
				apps, err := registry.Run(cmd.Context(), analysis)
				if err != nil {
					return err
				}
				if len(apps) == 0 {
					fmt.Println("no provable deduction found")
					return nil
				}
				for _, app := range apps {
					printApplication(board, app)
				}
				return nil
			}

			app, err := registry.First(cmd.Context(), analysis)
			if err != nil {
				return err
			}
			if app == nil {
				fmt.Println("no provable deduction found")
				return nil
			}
			printApplication(board, *app)
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "report every applicable schema, not just the first")
	return cmd
}

func printApplication(b *starbattle.Board, app starbattle.Application) {
	name := color.New(color.Bold, color.FgHiGreen)
	name.Printf("%s", app.Schema)
	for _, d := range app.Deductions {
		fmt.Printf(" (%d,%d)=%s", b.RowOf(d.Cell), b.ColOf(d.Cell), d.Value)
	}
	fmt.Println()
	for _, step := range app.Steps {
		fmt.Printf("  %s\n", step.Note)
	}
}
