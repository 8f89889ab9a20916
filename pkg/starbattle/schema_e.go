// schema_e.go: E1, the candidate-deficit rule. The cheapest and most
// general schema: it compares a group's remaining quota against its
// candidate count and forces the degenerate cases.
package starbattle

import (
	"context"
	"fmt"
)

// SchemaE1 forces the two candidate-deficit cases for every row, column,
// and region:
//
//   - remaining quota 0: every still-undetermined cell of the group is
//     star-free and is forced Excluded;
//   - remaining quota equal to the candidate count: every candidate must
//     carry one of the missing stars and is forced Star.
type SchemaE1 struct{}

// Name implements Schema.
func (SchemaE1) Name() string { return "E1" }

// Priority implements Schema.
func (SchemaE1) Priority() int { return 1 }

// Apply implements Schema.
func (SchemaE1) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	var out []Application
	for _, g := range a.Board().Groups() {
		g := g
		rem := g.Remaining(a.Board())
		if rem < 0 {
			// Over-quota group: the board violates the rules. Conflict
			// detection is the validator's job, not this engine's.
			continue
		}
		if rem == 0 {
			undet := a.UndeterminedIn(g.Cells)
			if len(undet) == 0 {
				continue
			}
			out = append(out, Application{
				Schema:     "E1",
				Params:     map[string]int{"remaining": 0},
				Deductions: exclDeductions(undet),
				Steps: []Step{{
					Note:  fmt.Sprintf("%s already holds its %d star(s); its open cells cannot hold more", g, g.Quota),
					Group: &g,
					Cells: undet,
				}},
			})
			continue
		}
		cands := a.CandidatesIn(g.Cells)
		if len(cands) == rem {
			out = append(out, Application{
				Schema:     "E1",
				Params:     map[string]int{"remaining": rem},
				Deductions: starDeductions(cands),
				Steps: []Step{{
					Note:  fmt.Sprintf("%s needs %d more star(s) and has exactly %d placeable cell(s)", g, rem, len(cands)),
					Group: &g,
					Cells: cands,
				}},
			})
		}
	}
	return out, nil
}
