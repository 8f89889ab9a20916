// schema_c.go: the C-family cage (2×2 block) rules.
//
// The premise shared by the family is established per band by c1Condition:
// when a band's placeable cells are all covered by valid blocks, the number
// of valid blocks equals the band's remaining star need, and at least one
// exact-cover packing of that size exists, then a counting argument forces
// every valid block to hold exactly one of the band's future stars (and
// every future star to lie in exactly one block). C1 records that premise
// and C2 turns it into cell deductions per region. C3 reasons about one
// region's band cage directly and does not need the shared premise.
package starbattle

import (
	"context"
	"fmt"
)

// cagePremise is the per-band result of the C1 counting argument.
type cagePremise struct {
	band          Band
	need          int     // future stars the band requires
	blocks        []Block // valid blocks fully inside the band
	solutionCount int     // packings of size need over those blocks
}

// c1Condition checks the pigeonhole premise for a band. All four parts are
// required for soundness:
//
//  1. the band still needs at least one star;
//  2. every candidate in the band lies in some valid in-band block;
//  3. the number of valid in-band blocks equals the star need;
//  4. a packing of that size exists (which, with count equality, also
//     proves the valid blocks are pairwise disjoint).
func c1Condition(ctx context.Context, a *Analysis, bd Band) (cagePremise, bool) {
	b := a.Board()
	pre := cagePremise{band: bd}
	pre.need = bd.Capacity(b) - bd.Stars(b)
	if pre.need <= 0 {
		return pre, false
	}
	pre.blocks = a.ValidBlocksIn(bd)
	if len(pre.blocks) != pre.need {
		return pre, false
	}
	covered := make(map[int]bool)
	for _, bl := range pre.blocks {
		for _, c := range bl.Cells(b) {
			covered[c] = true
		}
	}
	for _, c := range bd.Cells(b) {
		if a.Candidate(c) && !covered[c] {
			return pre, false
		}
	}
	packings := a.FindCagePackings(ctx, pre.blocks, pre.need)
	if !packings.HasSolution() {
		return pre, false
	}
	pre.solutionCount = len(packings.Solutions)
	return pre, true
}

// SchemaC1 confirms the cage pigeonhole premise per band. Its applications
// carry no deductions — each packed block holding exactly one star is a
// structural fact, not a cell value — but they surface the premise to the
// driver and to explanations.
type SchemaC1 struct{}

// Name implements Schema.
func (SchemaC1) Name() string { return "C1" }

// Priority implements Schema.
func (SchemaC1) Priority() int { return 30 }

// Apply implements Schema.
func (SchemaC1) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	var out []Application
	for _, bd := range a.Bands() {
		pre, ok := c1Condition(ctx, a, bd)
		if !ok {
			continue
		}
		bd := bd
		out = append(out, Application{
			Schema: "C1",
			Params: map[string]int{"need": pre.need, "solutionCount": pre.solutionCount},
			Steps: []Step{{
				Note: fmt.Sprintf("%s needs %d more star(s) and its placeable cells fill exactly %d disjoint 2×2 blocks; each block holds exactly one star",
					bd, pre.need, len(pre.blocks)),
				Band:   &bd,
				Blocks: pre.blocks,
			}},
		})
	}
	return out, nil
}

// regionBlocks returns the premise blocks lying fully inside the region.
func regionBlocks(b *Board, pre cagePremise, region int) []Block {
	var out []Block
	for _, bl := range pre.blocks {
		inside := true
		for _, c := range bl.Cells(b) {
			if b.RegionOf(c) != region {
				inside = false
				break
			}
		}
		if inside {
			out = append(out, bl)
		}
	}
	return out
}

// SchemaC2 counts premise blocks per region: when the blocks fully inside a
// region account for the region's whole in-band star allowance, every other
// open cell of the region inside the band is star-free.
type SchemaC2 struct{}

// Name implements Schema.
func (SchemaC2) Name() string { return "C2" }

// Priority implements Schema.
func (SchemaC2) Priority() int { return 31 }

// Apply implements Schema.
func (SchemaC2) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	b := a.Board()
	var out []Application
	for _, bd := range a.Bands() {
		pre, ok := c1Condition(ctx, a, bd)
		if !ok {
			continue
		}
		for _, r := range regionsIntersecting(b, bd) {
			inside := regionBlocks(b, pre, r)
			if len(inside) == 0 {
				continue
			}
			_, hi := a.RegionBandBounds(ctx, r, bd)
			futureHi := hi - regionStarsInBand(b, r, bd)
			if len(inside) != futureHi {
				continue
			}
			blockCells := make(map[int]bool)
			for _, bl := range inside {
				for _, c := range bl.Cells(b) {
					blockCells[c] = true
				}
			}
			in, _ := regionCellsInBand(b, r, bd)
			var open []int
			for _, c := range a.UndeterminedIn(in) {
				if !blockCells[c] {
					open = append(open, c)
				}
			}
			if len(open) == 0 {
				continue
			}
			bd := bd
			out = append(out, Application{
				Schema:     "C2",
				Params:     map[string]int{"region": r, "blocks": len(inside)},
				Deductions: exclDeductions(open),
				Steps: []Step{{
					Note: fmt.Sprintf("each block in %s holds one star, and the %d block(s) inside region %d absorb its whole share; the region's other cells there stay empty",
						bd, len(inside), r),
					Band:   &bd,
					Group:  regionGroup(b, r),
					Blocks: inside,
					Cells:  open,
				}},
			})
		}
	}
	return out, nil
}

// SchemaC3 works one region∩band cage at a time: when the region provably
// owes the band two or more stars, it squeezes each placeable cell — if
// starring the cell leaves too few compatible cells for the rest of the
// share, the cell is star-free. Every exclusion is verified through the
// oracle, so it stands on its own even when the block view of the cage is
// loose; the in-region blocks scope the rule to cage-shaped slices and
// annotate the explanation.
type SchemaC3 struct{}

// Name implements Schema.
func (SchemaC3) Name() string { return "C3" }

// Priority implements Schema.
func (SchemaC3) Priority() int { return 32 }

// regionBandBlocks returns the valid blocks whose four cells all belong to
// the region and lie inside the band.
func regionBandBlocks(a *Analysis, bd Band, region int) []Block {
	b := a.Board()
	var out []Block
	for _, bl := range a.ValidBlocksIn(bd) {
		inside := true
		for _, c := range bl.Cells(b) {
			if b.RegionOf(c) != region {
				inside = false
				break
			}
		}
		if inside {
			out = append(out, bl)
		}
	}
	return out
}

// Apply implements Schema.
func (SchemaC3) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	b := a.Board()
	var out []Application
	for _, bd := range a.Bands() {
		for _, r := range regionsIntersecting(b, bd) {
			lo := a.RegionBandQuota(ctx, r, bd)
			committed := regionStarsInBand(b, r, bd)
			needed := lo - committed
			if needed < 2 {
				// Squeezing one cell can never contradict a need of one.
				continue
			}
			in, _ := regionCellsInBand(b, r, bd)
			cands := a.CandidatesIn(in)
			if len(cands) < needed || len(cands) > capacityFallbackThreshold {
				continue
			}
			inside := regionBandBlocks(a, bd, r)
			if len(inside) == 0 {
				continue
			}

			var excl []int
			others := make([]int, 0, len(cands)-1)
			for _, c := range cands {
				t := NewTrial(b)
				if !t.Place(c) {
					continue
				}
				others = others[:0]
				for _, o := range cands {
					if o != c {
						others = append(others, o)
					}
				}
				more, complete := a.maxPlaceableFrom(ctx, t, others, needed-1)
				if complete && 1+more < needed {
					excl = append(excl, c)
				}
			}
			if len(excl) == 0 {
				continue
			}
			bd := bd
			out = append(out, Application{
				Schema:     "C3",
				Params:     map[string]int{"region": r, "needed": needed},
				Deductions: exclDeductions(excl),
				Steps: []Step{{
					Note: fmt.Sprintf("region %d still owes %s %d star(s); a star on any of these cells would crowd out the rest of that share",
						r, bd, needed),
					Band:   &bd,
					Group:  regionGroup(b, r),
					Blocks: inside,
					Cells:  excl,
				}},
			})
		}
	}
	return out, nil
}
