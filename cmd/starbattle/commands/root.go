// Package commands implements the starbattle CLI: loading puzzle files,
// asking the deduction engine for hints, stepping a solve loop, and
// counting completions.
package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kristofer84/star-battle-solver-sub000/pkg/starbattle"
)

var (
	nodeLimit int64
	timeLimit time.Duration
)

// Execute runs the CLI.
func Execute() error {
	root := &cobra.Command{
		Use:   "starbattle",
		Short: "Star-battle deduction engine",
		Long: "starbattle finds provable forced moves in star-battle puzzles:\n" +
			"cells that every valid completion of the current board agrees on.",
		SilenceUsage: true,
	}

	root.PersistentFlags().Int64Var(&nodeLimit, "nodes", starbattle.DefaultNodeLimit, "search node budget per analysis")
	root.PersistentFlags().DurationVar(&timeLimit, "time", 0, "wall-clock budget per analysis (0 = none)")

	root.AddCommand(hintCmd(), solveCmd(), countCmd(), renderCmd())
	return root.Execute()
}

// analysisOptions translates the persistent flags.
func analysisOptions() []starbattle.Option {
	opts := []starbattle.Option{starbattle.WithNodeLimit(nodeLimit)}
	if timeLimit > 0 {
		opts = append(opts, starbattle.WithTimeLimit(timeLimit))
	}
	return opts
}
