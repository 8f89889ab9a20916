// cage.go: exact-cover packing of 2×2 blocks. Cage schemas need to know all
// the ways a target number of pairwise non-overlapping blocks can be chosen
// from a candidate list: the existence of one packing enables pigeonhole
// arguments, and the full solution set yields cells that are possible or
// mandatory across every packing.
package starbattle

import (
	"context"
	"sort"
)

// CagePackings is the result of enumerating block packings.
//
// Solutions holds every subset of Target pairwise non-overlapping blocks
// from the candidate list. Possible lists the cells covered by at least one
// solution; Mandatory the cells covered by every solution (both sorted,
// both empty when Target is 0 or no solution exists).
//
// Complete is false when the node budget cut the enumeration short. An
// incomplete result may be missing solutions, so absence-based reasoning
// (mandatory cells, cells in no packing) must not be trusted; the solutions
// actually found remain genuine.
type CagePackings struct {
	Target    int
	Solutions [][]Block
	Possible  []int
	Mandatory []int
	Complete  bool
}

// HasSolution reports whether at least one packing was found.
func (p *CagePackings) HasSolution() bool { return len(p.Solutions) > 0 }

// FindCagePackings enumerates every way to choose target pairwise
// non-overlapping blocks from candidates, by depth-first include/exclude
// search pruned when the remaining candidates cannot reach the target.
//
// A target of 0 yields exactly one empty solution; a target exceeding the
// candidate count (or the maximum independent set) yields none.
func (a *Analysis) FindCagePackings(ctx context.Context, candidates []Block, target int) *CagePackings {
	a.verify()
	a.stats.PackerRuns++
	p := &CagePackings{Target: target, Complete: true}
	if target < 0 {
		return p
	}
	if target == 0 {
		p.Solutions = [][]Block{{}}
		return p
	}
	if len(candidates) < target {
		return p
	}

	b := a.board
	occupied := make([]bool, b.NumCells())
	chosen := make([]Block, 0, target)

	var rec func(i int)
	rec = func(i int) {
		if len(chosen) == target {
			p.Solutions = append(p.Solutions, append([]Block(nil), chosen...))
			return
		}
		if len(candidates)-i < target-len(chosen) {
			return
		}
		if !a.budget.Spend(ctx) {
			p.Complete = false
			return
		}
		bl := candidates[i]
		cells := bl.Cells(b)
		overlap := false
		for _, c := range cells {
			if occupied[c] {
				overlap = true
				break
			}
		}
		if !overlap {
			for _, c := range cells {
				occupied[c] = true
			}
			chosen = append(chosen, bl)
			rec(i + 1)
			chosen = chosen[:len(chosen)-1]
			for _, c := range cells {
				occupied[c] = false
			}
			if !p.Complete {
				return
			}
		}
		rec(i + 1)
	}
	rec(0)

	if !p.Complete {
		a.stats.PackerAborts++
	}
	p.Possible, p.Mandatory = coverSets(b, p.Solutions)
	return p
}

// coverSets derives the union and intersection of covered cells across
// solutions.
func coverSets(b *Board, solutions [][]Block) (possible, mandatory []int) {
	if len(solutions) == 0 {
		return nil, nil
	}
	counts := make(map[int]int)
	for _, sol := range solutions {
		seen := make(map[int]bool)
		for _, bl := range sol {
			for _, c := range bl.Cells(b) {
				if !seen[c] {
					seen[c] = true
					counts[c]++
				}
			}
		}
	}
	for c, n := range counts {
		possible = append(possible, c)
		if n == len(solutions) {
			mandatory = append(mandatory, c)
		}
	}
	sort.Ints(possible)
	sort.Ints(mandatory)
	return possible, mandatory
}
