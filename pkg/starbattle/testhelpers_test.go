// testhelpers_test.go: board builders and an independent brute-force
// completion checker. The checker deliberately re-derives the puzzle rules
// from scratch (no Trial, no Analysis) so soundness tests do not inherit
// bugs from the code under test.
package starbattle

import (
	"testing"
)

// mustBoard builds a board with uniform quotas from region rows, one letter
// per cell ('A' is region 0).
func mustBoard(t *testing.T, stars int, regionRows []string) *Board {
	t.Helper()
	b, err := NewBoard(len(regionRows), stars, regionIDs(t, regionRows))
	if err != nil {
		t.Fatalf("NewBoard: %v", err)
	}
	return b
}

// mustBoardQuotas is mustBoard with per-region quotas ('A' first).
func mustBoardQuotas(t *testing.T, lineQuota int, regionRows []string, quotas []int) *Board {
	t.Helper()
	b, err := NewBoardWithRegionQuotas(len(regionRows), lineQuota, regionIDs(t, regionRows), quotas)
	if err != nil {
		t.Fatalf("NewBoardWithRegionQuotas: %v", err)
	}
	return b
}

func regionIDs(t *testing.T, regionRows []string) []int {
	t.Helper()
	size := len(regionRows)
	ids := make([]int, 0, size*size)
	for _, row := range regionRows {
		if len(row) != size {
			t.Fatalf("region row %q has %d cells, want %d", row, len(row), size)
		}
		for _, ch := range row {
			ids = append(ids, int(ch-'A'))
		}
	}
	return ids
}

func mustApply(t *testing.T, b *Board, deds []Deduction) *Board {
	t.Helper()
	next, err := b.Apply(deds)
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	return next
}

func mustAnalysis(t *testing.T, b *Board, opts ...Option) *Analysis {
	t.Helper()
	a, err := NewAnalysis(b, opts...)
	if err != nil {
		t.Fatalf("NewAnalysis: %v", err)
	}
	return a
}

func starAt(b *Board, row, col int) Deduction {
	return Deduction{Cell: b.Index(row, col), Value: Star}
}

func exclAt(b *Board, row, col int) Deduction {
	return Deduction{Cell: b.Index(row, col), Value: Excluded}
}

func exclAll(b *Board, coords ...[2]int) []Deduction {
	deds := make([]Deduction, len(coords))
	for i, rc := range coords {
		deds[i] = exclAt(b, rc[0], rc[1])
	}
	return deds
}

// hasDeduction reports whether any application carries the deduction.
func hasDeduction(apps []Application, d Deduction) bool {
	for _, app := range apps {
		for _, got := range app.Deductions {
			if got == d {
				return true
			}
		}
	}
	return false
}

// appsOf filters applications by schema name.
func appsOf(apps []Application, schema string) []Application {
	var out []Application
	for _, app := range apps {
		if app.Schema == schema {
			out = append(out, app)
		}
	}
	return out
}

// naiveSolutions enumerates every completion of the board by unoptimized
// backtracking. It keeps committed stars, skips excluded cells, and checks
// the rules cell by cell against the chosen star set, independently of the
// engine's bookkeeping. Rows are forced to their exact quota as the scan
// passes them, which keeps the search small on test-sized boards.
func naiveSolutions(b *Board) [][]int {
	var sols [][]int
	var cur []int

	countRow := func(row int) int {
		n := 0
		for _, s := range cur {
			if b.RowOf(s) == row {
				n++
			}
		}
		return n
	}
	legal := func(cell int) bool {
		row, col, reg := b.RowOf(cell), b.ColOf(cell), b.RegionOf(cell)
		rowN, colN, regN := 0, 0, 0
		for _, s := range cur {
			sr, sc := b.RowOf(s), b.ColOf(s)
			dr, dc := sr-row, sc-col
			if dr < 0 {
				dr = -dr
			}
			if dc < 0 {
				dc = -dc
			}
			if dr <= 1 && dc <= 1 {
				return false
			}
			if sr == row {
				rowN++
			}
			if sc == col {
				colN++
			}
			if b.RegionOf(s) == reg {
				regN++
			}
		}
		return rowN < b.LineQuota() && colN < b.LineQuota() && regN < b.RegionQuota(reg)
	}
	exact := func() bool {
		for col := 0; col < b.Size(); col++ {
			n := 0
			for _, s := range cur {
				if b.ColOf(s) == col {
					n++
				}
			}
			if n != b.LineQuota() {
				return false
			}
		}
		for r := 0; r < b.NumRegions(); r++ {
			n := 0
			for _, s := range cur {
				if b.RegionOf(s) == r {
					n++
				}
			}
			if n != b.RegionQuota(r) {
				return false
			}
		}
		return true
	}

	var rec func(cell int)
	rec = func(cell int) {
		if cell > 0 && cell%b.Size() == 0 {
			if countRow(cell/b.Size()-1) != b.LineQuota() {
				return
			}
		}
		if cell == b.NumCells() {
			if exact() {
				sols = append(sols, append([]int(nil), cur...))
			}
			return
		}
		switch b.State(cell) {
		case Star:
			if legal(cell) {
				cur = append(cur, cell)
				rec(cell + 1)
				cur = cur[:len(cur)-1]
			}
		case Excluded:
			rec(cell + 1)
		default:
			if legal(cell) {
				cur = append(cur, cell)
				rec(cell + 1)
				cur = cur[:len(cur)-1]
			}
			rec(cell + 1)
		}
	}
	rec(0)
	return sols
}

// solutionsContain reports whether the cell is starred in the solution.
func solutionsContain(sol []int, cell int) bool {
	for _, s := range sol {
		if s == cell {
			return true
		}
	}
	return false
}
