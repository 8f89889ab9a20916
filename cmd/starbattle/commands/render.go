package commands

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kristofer84/star-battle-solver-sub000/internal/puzzlefile"
	"github.com/kristofer84/star-battle-solver-sub000/pkg/starbattle"
)

// regionPalette cycles over region backgrounds so adjacent regions usually
// differ. Star battle boards rarely exceed a handful of regions per
// neighborhood, so collisions are tolerable.
var regionPalette = []*color.Color{
	color.New(color.FgBlack, color.BgHiBlue),
	color.New(color.FgBlack, color.BgHiGreen),
	color.New(color.FgBlack, color.BgHiYellow),
	color.New(color.FgBlack, color.BgHiMagenta),
	color.New(color.FgBlack, color.BgHiCyan),
	color.New(color.FgBlack, color.BgHiWhite),
	color.New(color.FgWhite, color.BgBlue),
	color.New(color.FgWhite, color.BgGreen),
	color.New(color.FgWhite, color.BgMagenta),
	color.New(color.FgWhite, color.BgRed),
}

// printBoard writes the board with region coloring and cell markings.
func printBoard(b *starbattle.Board) {
	for row := 0; row < b.Size(); row++ {
		for col := 0; col < b.Size(); col++ {
			cell := b.Index(row, col)
			c := regionPalette[b.RegionOf(cell)%len(regionPalette)]
			c.Print(" " + b.State(cell).String() + " ")
		}
		fmt.Println()
	}
}

func renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render <puzzle.yaml>",
		Short: "Print a puzzle with region coloring",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			board, err := puzzlefile.Load(args[0])
			if err != nil {
				return err
			}
			printBoard(board)
			return nil
		},
	}
}
