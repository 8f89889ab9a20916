// Package puzzlefile reads star-battle puzzle definitions from YAML files.
//
// The format is meant to be hand-written:
//
//	size: 5
//	stars: 1
//	regions:
//	  - AABBB
//	  - AABBB
//	  - CCDDD
//	  - CCDEE
//	  - CCDEE
//	cells:
//	  - {row: 2, col: 2, state: star}
//	  - {row: 0, col: 4, state: excluded}
//
// Each regions row is one string with a letter per cell; region ids are
// assigned in order of first appearance. The optional cells list commits
// initial stars or exclusions. quotas, when present, overrides the uniform
// per-region quota per letter.
package puzzlefile

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"

	"github.com/kristofer84/star-battle-solver-sub000/pkg/starbattle"
)

// File is the YAML document shape.
type File struct {
	Size    int            `yaml:"size"`
	Stars   int            `yaml:"stars"`
	Regions []string       `yaml:"regions"`
	Quotas  map[string]int `yaml:"quotas,omitempty"`
	Cells   []Cell         `yaml:"cells,omitempty"`
}

// Cell commits an initial cell state.
type Cell struct {
	Row   int    `yaml:"row"`
	Col   int    `yaml:"col"`
	State string `yaml:"state"`
}

// Load reads and materializes a puzzle file.
func Load(path string) (*starbattle.Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}
	return Parse(data)
}

// Parse materializes a puzzle from YAML bytes.
func Parse(data []byte) (*starbattle.Board, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("puzzlefile: parse: %w", err)
	}
	if f.Size <= 0 {
		return nil, fmt.Errorf("puzzlefile: size must be positive, got %d", f.Size)
	}
	if f.Stars <= 0 {
		return nil, fmt.Errorf("puzzlefile: stars must be positive, got %d", f.Stars)
	}
	if len(f.Regions) != f.Size {
		return nil, fmt.Errorf("puzzlefile: %d region rows, want %d", len(f.Regions), f.Size)
	}

	ids := make(map[rune]int)
	var letters []rune
	regions := make([]int, 0, f.Size*f.Size)
	for rowIdx, row := range f.Regions {
		runes := []rune(row)
		if len(runes) != f.Size {
			return nil, fmt.Errorf("puzzlefile: region row %d has %d cells, want %d", rowIdx, len(runes), f.Size)
		}
		for _, ch := range runes {
			id, ok := ids[ch]
			if !ok {
				id = len(letters)
				ids[ch] = id
				letters = append(letters, ch)
			}
			regions = append(regions, id)
		}
	}

	var board *starbattle.Board
	var err error
	if len(f.Quotas) > 0 {
		quotas := make([]int, len(letters))
		for i, ch := range letters {
			q, ok := f.Quotas[string(ch)]
			if !ok {
				q = f.Stars
			}
			quotas[i] = q
		}
		board, err = starbattle.NewBoardWithRegionQuotas(f.Size, f.Stars, regions, quotas)
	} else {
		board, err = starbattle.NewBoard(f.Size, f.Stars, regions)
	}
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}

	if len(f.Cells) == 0 {
		return board, nil
	}
	deds := make([]starbattle.Deduction, 0, len(f.Cells))
	for _, c := range f.Cells {
		if c.Row < 0 || c.Row >= f.Size || c.Col < 0 || c.Col >= f.Size {
			return nil, fmt.Errorf("puzzlefile: cell (%d,%d) outside the board", c.Row, c.Col)
		}
		var v starbattle.CellState
		switch c.State {
		case "star":
			v = starbattle.Star
		case "excluded":
			v = starbattle.Excluded
		default:
			return nil, fmt.Errorf("puzzlefile: cell (%d,%d) has state %q, want star or excluded", c.Row, c.Col, c.State)
		}
		deds = append(deds, starbattle.Deduction{Cell: board.Index(c.Row, c.Col), Value: v})
	}
	board, err = board.Apply(deds)
	if err != nil {
		return nil, fmt.Errorf("puzzlefile: %w", err)
	}
	return board, nil
}
