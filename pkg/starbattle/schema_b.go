// schema_b.go: the B-family containment-exclusivity rules.
//
// The source material referenced these rules by name without their
// arithmetic, so the bodies here are designed by analogy with the A-family
// quota-exclusivity pattern (see DESIGN.md): regions lying fully inside a
// band claim their whole quota there, and when that claim saturates the
// band, the partial regions are squeezed out. Extension point: finer
// containment variants can slot in beside B1/B2 without touching the
// protocol.
package starbattle

import (
	"context"
	"fmt"
)

// bandContainment sums the band contributions that containment alone proves:
// quotas of regions fully inside the band plus committed in-band stars of
// partial regions. The leftover is the number of future stars partial
// regions must still place in the band.
func bandContainment(a *Analysis, bd Band) (futureNeed int, partialCands []int) {
	b := a.Board()
	claimed := 0
	for _, r := range regionsIntersecting(b, bd) {
		in, out := regionCellsInBand(b, r, bd)
		if len(out) == 0 {
			claimed += b.RegionQuota(r)
			continue
		}
		for _, c := range in {
			if b.State(c) == Star {
				claimed++
			}
		}
		partialCands = append(partialCands, a.CandidatesIn(in)...)
	}
	return bd.Capacity(b) - claimed, partialCands
}

// SchemaB1 excludes partial-region candidates in a band whose capacity is
// already fully claimed by the regions contained in it.
type SchemaB1 struct{}

// Name implements Schema.
func (SchemaB1) Name() string { return "B1" }

// Priority implements Schema.
func (SchemaB1) Priority() int { return 20 }

// Apply implements Schema.
func (SchemaB1) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	var out []Application
	for _, bd := range a.Bands() {
		futureNeed, partialCands := bandContainment(a, bd)
		if futureNeed != 0 || len(partialCands) == 0 {
			continue
		}
		bd := bd
		out = append(out, Application{
			Schema:     "B1",
			Params:     map[string]int{"capacity": bd.Capacity(a.Board())},
			Deductions: exclDeductions(partialCands),
			Steps: []Step{{
				Note: fmt.Sprintf("the regions contained in %s claim all %d of its stars; cells of other regions there stay empty",
					bd, bd.Capacity(a.Board())),
				Band:  &bd,
				Cells: partialCands,
			}},
		})
	}
	return out, nil
}

// SchemaB2 is the dual of B1: when the band capacity left over after the
// contained regions' claims equals the partial regions' candidate count,
// those candidates are all stars.
type SchemaB2 struct{}

// Name implements Schema.
func (SchemaB2) Name() string { return "B2" }

// Priority implements Schema.
func (SchemaB2) Priority() int { return 21 }

// Apply implements Schema.
func (SchemaB2) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	var out []Application
	for _, bd := range a.Bands() {
		futureNeed, partialCands := bandContainment(a, bd)
		if futureNeed <= 0 || futureNeed != len(partialCands) {
			continue
		}
		bd := bd
		out = append(out, Application{
			Schema:     "B2",
			Params:     map[string]int{"need": futureNeed},
			Deductions: starDeductions(partialCands),
			Steps: []Step{{
				Note: fmt.Sprintf("%s still needs %d star(s) outside its contained regions and has exactly that many placeable cells",
					bd, futureNeed),
				Band:  &bd,
				Cells: partialCands,
			}},
		})
	}
	return out, nil
}
