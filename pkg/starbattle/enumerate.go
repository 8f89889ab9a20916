// enumerate.go: brute-force completion search. This is the verification
// collaborator realized in-repo: tests use it to check schema soundness on
// small boards, and drivers can use it to cross-check a deduction before
// surfacing it. It is not part of the deduction protocol itself.
package starbattle

import (
	"context"
	"fmt"
)

// EnumerateResult is the outcome of a bounded completion search.
type EnumerateResult struct {
	// Solutions holds the star sets (sorted cell indices) of the
	// completions found, capped at the enumeration limit.
	Solutions [][]int

	// Complete is true when the search space was fully explored: the count
	// is then exact. It is false when the solution limit, node budget, or
	// cancellation cut the search short.
	Complete bool
}

// Count returns the number of solutions found.
func (r *EnumerateResult) Count() int { return len(r.Solutions) }

// EnumerateSolutions finds completions of the board: assignments of stars
// to undetermined cells satisfying every row, column, and region quota
// exactly, with no two stars adjacent. Committed stars are kept; Excluded
// cells stay empty.
//
// limit caps the number of solutions collected (0 means unlimited); the
// Analysis's node budget and the context bound the search either way. With
// limit 2 this answers the classic {0, 1, ≥2, aborted} uniqueness query.
func (a *Analysis) EnumerateSolutions(ctx context.Context, limit int) (*EnumerateResult, error) {
	a.verify()
	b := a.board
	res := &EnumerateResult{Complete: true}

	t := NewTrial(b)
	total := b.Size() * b.LineQuota()
	committed := 0
	for c := 0; c < b.NumCells(); c++ {
		if b.State(c) == Star {
			committed++
		}
	}
	if committed > total {
		return nil, fmt.Errorf("EnumerateSolutions: board holds %d stars, quota allows %d", committed, total)
	}

	var rec func(cell, placed int)
	rec = func(cell, placed int) {
		if !res.Complete {
			return
		}
		if placed == total {
			sol := make([]int, 0, total)
			for c := 0; c < b.NumCells(); c++ {
				if b.State(c) == Star || t.trialStar[c] {
					sol = append(sol, c)
				}
			}
			res.Solutions = append(res.Solutions, sol)
			if limit > 0 && len(res.Solutions) >= limit {
				res.Complete = false
			}
			return
		}
		if cell >= b.NumCells() {
			return
		}
		// Prune: the rows not yet passed must be able to supply the
		// missing stars.
		row := b.RowOf(cell)
		maxAhead := (b.Size() - row) * b.LineQuota()
		if placed+maxAhead < total {
			return
		}
		if !a.budget.Spend(ctx) {
			res.Complete = false
			return
		}
		if t.Place(cell) {
			rec(cell+1, placed+1)
			t.Remove(cell)
		}
		rec(cell+1, placed)
	}
	rec(0, committed)
	return res, nil
}

// CountSolutions runs EnumerateSolutions and returns the solution count
// together with whether it is exact.
func (a *Analysis) CountSolutions(ctx context.Context, limit int) (int, bool, error) {
	res, err := a.EnumerateSolutions(ctx, limit)
	if err != nil {
		return 0, false, err
	}
	return res.Count(), res.Complete, nil
}
