package main

import (
	"os"

	"github.com/kristofer84/star-battle-solver-sub000/cmd/starbattle/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
