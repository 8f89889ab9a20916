// schema_f.go: the F-family region-set exclusion rules.
//
// Referenced in the source material as "region-pair exclusion" and
// "exclusivity chains" without bodies; designed here by analogy with the
// A/B quota-exclusivity pattern (see DESIGN.md). A region whose candidates
// all lie inside a band must spend its remaining quota there; when a set of
// such confined regions accounts for all of the band's future stars, every
// other region is squeezed out of the band. F1 restricts the argument to
// pairs (the cheap, explainable case), F2 runs the full chain.
package starbattle

import (
	"context"
	"fmt"
	"sort"
)

// confinedRegions lists the regions with remaining quota whose candidate
// cells all lie inside the band, together with the band's future star need
// and the band candidates belonging to no confined region.
func confinedRegions(a *Analysis, bd Band) (confined []int, futureNeed int, outsiders []int) {
	b := a.Board()
	futureNeed = bd.Capacity(b) - bd.Stars(b)
	isConfined := make(map[int]bool)
	for _, r := range regionsIntersecting(b, bd) {
		rem := b.RegionQuota(r) - b.RegionStars(r)
		if rem <= 0 {
			continue
		}
		cands := a.CandidatesIn(b.RegionCells(r))
		if len(cands) == 0 {
			continue
		}
		inside := true
		for _, c := range cands {
			if !bd.Contains(b, c) {
				inside = false
				break
			}
		}
		if inside {
			confined = append(confined, r)
			isConfined[r] = true
		}
	}
	sort.Ints(confined)
	for _, c := range bd.Cells(b) {
		if a.Candidate(c) && !isConfined[b.RegionOf(c)] {
			outsiders = append(outsiders, c)
		}
	}
	return confined, futureNeed, outsiders
}

// remainingSum sums the remaining quotas of the given regions.
func remainingSum(b *Board, regions []int) int {
	total := 0
	for _, r := range regions {
		total += b.RegionQuota(r) - b.RegionStars(r)
	}
	return total
}

// SchemaF1 applies the pair case: two confined regions whose remaining
// quotas cover the band's whole future need squeeze every other region out
// of the band.
type SchemaF1 struct{}

// Name implements Schema.
func (SchemaF1) Name() string { return "F1" }

// Priority implements Schema.
func (SchemaF1) Priority() int { return 50 }

// Apply implements Schema.
func (SchemaF1) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	b := a.Board()
	var out []Application
	for _, bd := range a.Bands() {
		confined, futureNeed, outsiders := confinedRegions(a, bd)
		if futureNeed <= 0 || len(outsiders) == 0 {
			continue
		}
		for i := 0; i < len(confined); i++ {
			for j := i + 1; j < len(confined); j++ {
				pair := []int{confined[i], confined[j]}
				if remainingSum(b, pair) != futureNeed {
					continue
				}
				bd := bd
				out = append(out, Application{
					Schema:     "F1",
					Params:     map[string]int{"regionA": pair[0], "regionB": pair[1], "need": futureNeed},
					Deductions: exclDeductions(outsiders),
					Steps: []Step{{
						Note: fmt.Sprintf("regions %d and %d are confined to %s and together supply all %d of its remaining star(s); other regions place none there",
							pair[0], pair[1], bd, futureNeed),
						Band:  &bd,
						Cells: outsiders,
					}},
				})
			}
		}
	}
	return out, nil
}

// SchemaF2 applies the chain case: all confined regions of a band taken
// together. Subsumes F1 but is kept separate so the pair explanation stays
// available at a higher priority.
type SchemaF2 struct{}

// Name implements Schema.
func (SchemaF2) Name() string { return "F2" }

// Priority implements Schema.
func (SchemaF2) Priority() int { return 51 }

// Apply implements Schema.
func (SchemaF2) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	b := a.Board()
	var out []Application
	for _, bd := range a.Bands() {
		confined, futureNeed, outsiders := confinedRegions(a, bd)
		if futureNeed <= 0 || len(outsiders) == 0 || len(confined) == 0 {
			continue
		}
		if remainingSum(b, confined) != futureNeed {
			continue
		}
		bd := bd
		out = append(out, Application{
			Schema:     "F2",
			Params:     map[string]int{"regions": len(confined), "need": futureNeed},
			Deductions: exclDeductions(outsiders),
			Steps: []Step{{
				Note: fmt.Sprintf("%d confined region(s) supply all %d remaining star(s) of %s; other regions place none there",
					len(confined), futureNeed, bd),
				Band:  &bd,
				Cells: outsiders,
			}},
		})
	}
	return out, nil
}
