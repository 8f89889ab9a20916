package starbattle

import "testing"

func TestTrialCanPlaceRules(t *testing.T) {
	b := mustBoard(t, 1, []string{"AABB", "AABB", "CCDD", "CCDD"})
	b = mustApply(t, b, []Deduction{starAt(b, 0, 0), exclAt(b, 3, 3)})
	tr := NewTrial(b)

	tests := []struct {
		name     string
		row, col int
		want     bool
	}{
		{"open cell", 2, 2, true},
		{"committed star cell", 0, 0, false},
		{"excluded cell", 3, 3, false},
		{"adjacent to star", 1, 1, false},
		{"row at quota", 0, 3, false},
		{"column at quota", 3, 0, false},
		{"region at quota", 1, 0, false}, // also adjacent, either check suffices
		{"clear of everything", 2, 3, true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tr.CanPlace(b.Index(tc.row, tc.col)); got != tc.want {
				t.Fatalf("CanPlace(%d,%d) = %v, want %v", tc.row, tc.col, got, tc.want)
			}
		})
	}
}

// TestTrialMatchesNaiveRules cross-checks CanPlace after one trial placement
// against a from-scratch rendering of the rules, for every cell pair.
func TestTrialMatchesNaiveRules(t *testing.T) {
	b := mustBoard(t, 1, []string{"AABB", "AABB", "CCDD", "CCDD"})
	tr := NewTrial(b)

	for first := 0; first < b.NumCells(); first++ {
		if !tr.Place(first) {
			t.Fatalf("empty board rejects a first star at cell %d", first)
		}
		for second := 0; second < b.NumCells(); second++ {
			want := second != first &&
				b.RowOf(second) != b.RowOf(first) &&
				b.ColOf(second) != b.ColOf(first) &&
				b.RegionOf(second) != b.RegionOf(first)
			dr, dc := b.RowOf(second)-b.RowOf(first), b.ColOf(second)-b.ColOf(first)
			if dr < 0 {
				dr = -dr
			}
			if dc < 0 {
				dc = -dc
			}
			if dr <= 1 && dc <= 1 {
				want = false
			}
			if got := tr.CanPlace(second); got != want {
				t.Fatalf("star at %d: CanPlace(%d) = %v, want %v", first, second, got, want)
			}
		}
		tr.Remove(first)
	}
	if tr.Depth() != 0 {
		t.Fatalf("trial depth %d after full unwind", tr.Depth())
	}
}

func TestTrialPlaceRemoveStack(t *testing.T) {
	b := mustBoard(t, 1, []string{"AAAA", "BBBB", "CCCC", "DDDD"})
	tr := NewTrial(b)

	c1, c2 := b.Index(0, 0), b.Index(2, 2)
	if !tr.Place(c1) || !tr.Place(c2) {
		t.Fatalf("placements rejected")
	}
	if tr.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", tr.Depth())
	}
	if tr.Place(c2) {
		t.Fatalf("double placement accepted")
	}
	tr.Remove(c2)
	tr.Remove(c1)
	if tr.Depth() != 0 {
		t.Fatalf("depth = %d after unwinding, want 0", tr.Depth())
	}
	// A full cycle must leave the cell placeable again.
	if !tr.CanPlace(c1) {
		t.Fatalf("cell not placeable after place/remove cycle")
	}
}

func TestTrialRemoveOutOfOrderPanics(t *testing.T) {
	b := mustBoard(t, 1, []string{"AAAA", "BBBB", "CCCC", "DDDD"})
	tr := NewTrial(b)
	tr.Place(b.Index(0, 0))
	tr.Place(b.Index(2, 2))

	defer func() {
		if recover() == nil {
			t.Fatalf("out-of-order Remove did not panic")
		}
	}()
	tr.Remove(b.Index(0, 0))
}

func TestTrialDoesNotTouchBoard(t *testing.T) {
	b := mustBoard(t, 1, []string{"AAAA", "BBBB", "CCCC", "DDDD"})
	tr := NewTrial(b)
	tr.Place(b.Index(1, 1))
	if b.State(b.Index(1, 1)) != Undetermined || b.RowStars(1) != 0 {
		t.Fatalf("trial placement leaked into the board")
	}
}

func TestTrialSeedsCommittedStars(t *testing.T) {
	b := mustBoard(t, 2, []string{"AABB", "AABB", "CCDD", "CCDD"})
	b = mustApply(t, b, []Deduction{starAt(b, 0, 0)})
	tr := NewTrial(b)
	// Row 0 has one of its two stars; a second non-adjacent cell in the row
	// is fine, a third is not.
	if !tr.Place(b.Index(0, 3)) {
		t.Fatalf("second star in a 2-quota row rejected")
	}
	if tr.CanPlace(b.Index(0, 2)) {
		t.Fatalf("third star in a 2-quota row accepted")
	}
}
