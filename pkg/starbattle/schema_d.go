// schema_d.go: the D-family confinement rules.
//
// Like the B-family, these were referenced in the source material without
// their arithmetic and are designed by analogy with the A-family pattern
// (see DESIGN.md). Both directions of confinement are covered: a region
// proven to spend part or all of its quota inside a band abandons or fills
// the matching cells (D1), and a line owned by a single region can confine
// that region to the line (D2).
package starbattle

import (
	"context"
	"fmt"
)

// SchemaD1 turns proven region×band shares into cell deductions, in both
// directions: a region whose whole quota provably lands inside a band
// abandons its outside cells, and a partial region with exactly as many
// placeable in-band cells as its proven future share stars them all.
type SchemaD1 struct{}

// Name implements Schema.
func (SchemaD1) Name() string { return "D1" }

// Priority implements Schema.
func (SchemaD1) Priority() int { return 40 }

// Apply implements Schema.
func (SchemaD1) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	b := a.Board()
	var out []Application
	for _, bd := range a.Bands() {
		for _, r := range regionsIntersecting(b, bd) {
			in, outCells := regionCellsInBand(b, r, bd)
			lo := a.RegionBandQuota(ctx, r, bd)

			if open := a.UndeterminedIn(outCells); len(open) > 0 && lo >= b.RegionQuota(r) {
				bd := bd
				out = append(out, Application{
					Schema:     "D1",
					Params:     map[string]int{"region": r, "quota": b.RegionQuota(r)},
					Deductions: exclDeductions(open),
					Steps: []Step{{
						Note: fmt.Sprintf("region %d provably places all %d of its star(s) inside %s; its cells outside stay empty",
							r, b.RegionQuota(r), bd),
						Band:  &bd,
						Group: regionGroup(b, r),
						Cells: open,
					}},
				})
			}

			// The star direction. Every completion puts at least lo of the
			// region's stars in the band; when the committed stars leave a
			// future share equal to the region's placeable cell count there,
			// each of those cells holds one. Fully contained regions are
			// left to E1's region group.
			if len(outCells) == 0 {
				continue
			}
			future := lo - regionStarsInBand(b, r, bd)
			cands := a.CandidatesIn(in)
			if future <= 0 || len(cands) != future {
				continue
			}
			bd := bd
			out = append(out, Application{
				Schema:     "D1",
				Params:     map[string]int{"region": r, "share": lo},
				Deductions: starDeductions(cands),
				Steps: []Step{{
					Note: fmt.Sprintf("region %d provably owes %s %d more star(s) and has exactly %d placeable cell(s) left there",
						r, bd, future, len(cands)),
					Band:  &bd,
					Group: regionGroup(b, r),
					Cells: cands,
				}},
			})
		}
	}
	return out, nil
}

// SchemaD2 confines a region to a line it owns: when every placeable cell
// of a line belongs to one region and the line's remaining need equals the
// region's remaining quota, the region's cells outside the line are
// star-free.
type SchemaD2 struct{}

// Name implements Schema.
func (SchemaD2) Name() string { return "D2" }

// Priority implements Schema.
func (SchemaD2) Priority() int { return 41 }

// Apply implements Schema.
func (SchemaD2) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	b := a.Board()
	var out []Application
	for _, g := range b.Groups() {
		if g.Kind == RegionGroup {
			continue
		}
		need := g.Remaining(b)
		if need <= 0 {
			continue
		}
		cands := a.CandidatesIn(g.Cells)
		if len(cands) == 0 {
			continue
		}
		owner := b.RegionOf(cands[0])
		owned := true
		for _, c := range cands[1:] {
			if b.RegionOf(c) != owner {
				owned = false
				break
			}
		}
		if !owned {
			continue
		}
		// The line's remaining stars all come from the owner region. If they
		// exhaust the region's remaining quota, the region is confined.
		if need != b.RegionQuota(owner)-b.RegionStars(owner) {
			continue
		}
		lineCells := cellSet(g.Cells)
		var open []int
		for _, c := range a.UndeterminedIn(b.RegionCells(owner)) {
			if !lineCells[c] {
				open = append(open, c)
			}
		}
		if len(open) == 0 {
			continue
		}
		g := g
		out = append(out, Application{
			Schema:     "D2",
			Params:     map[string]int{"region": owner, "need": need},
			Deductions: exclDeductions(open),
			Steps: []Step{{
				Note: fmt.Sprintf("%s's %d remaining star(s) can only come from region %d, using up its quota; the region's other cells stay empty",
					g, need, owner),
				Group: regionGroup(b, owner),
				Cells: open,
			}},
		})
	}
	return out, nil
}
