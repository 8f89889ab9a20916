package starbattle

import (
	"context"
	"testing"
)

// a1Board pins region D's share of cols 3-4 to zero: region B lies fully
// inside the band and claims both of its stars, so D's cells there are dead.
func a1Board(t *testing.T) *Board {
	return mustBoardQuotas(t, 1,
		[]string{
			"AAABB",
			"AAABB",
			"CCCBB",
			"CCCBB",
			"EEDDD",
		},
		[]int{1, 2, 1, 1, 0})
}

func TestSchemaA1PinsZero(t *testing.T) {
	ctx := context.Background()
	b := a1Board(t)
	a := mustAnalysis(t, b)

	apps, err := SchemaA1{}.Apply(ctx, a)
	if err != nil {
		t.Fatalf("A1: %v", err)
	}
	if !hasDeduction(apps, exclAt(b, 4, 3)) || !hasDeduction(apps, exclAt(b, 4, 4)) {
		t.Fatalf("A1 missed the cols 3-4 exclusions, got %v", apps)
	}
	// D's cell outside the band is untouched.
	if hasDeduction(apps, exclAt(b, 4, 2)) {
		t.Fatalf("A1 excluded (4,2), which lies outside the pinned band")
	}
}

// a2Board pins region D's share of cols 3-4 to one: region B (quota 1) lies
// fully inside, the band needs two stars, and D's only in-band cell is
// (4,4).
func a2Board(t *testing.T) *Board {
	return mustBoardQuotas(t, 1,
		[]string{
			"AAABB",
			"AAABB",
			"CCCBB",
			"CCCBB",
			"EEDBD",
		},
		[]int{2, 1, 1, 1, 0})
}

func TestSchemaA2PinsFullCount(t *testing.T) {
	ctx := context.Background()
	b := a2Board(t)
	a := mustAnalysis(t, b)

	apps, err := SchemaA2{}.Apply(ctx, a)
	if err != nil {
		t.Fatalf("A2: %v", err)
	}
	if !hasDeduction(apps, starAt(b, 4, 4)) {
		t.Fatalf("A2 missed the forced star at (4,4), got %v", apps)
	}
}

// a3Board confines region A's single star to row 0: its row-1 cells are
// excluded and its row-0 cells are down to one candidate.
func a3Board(t *testing.T) *Board {
	b := mustBoard(t, 1, []string{"AABBB", "AABBB", "CCCCC", "DDDDD", "EEEEE"})
	return mustApply(t, b, exclAll(b, [2]int{1, 0}, [2]int{1, 1}, [2]int{0, 1}))
}

func TestSchemaA3StarsByComplementBound(t *testing.T) {
	ctx := context.Background()
	b := a3Board(t)
	a := mustAnalysis(t, b)

	apps, err := SchemaA3{}.Apply(ctx, a)
	if err != nil {
		t.Fatalf("A3: %v", err)
	}
	if !hasDeduction(apps, starAt(b, 0, 0)) {
		t.Fatalf("A3 missed the forced star at (0,0), got %v", apps)
	}
}

// TestSchemaA3ExcludesByComplementBound excludes region A from row 1: with
// region B shut out of row 0, the band-capacity argument proves A's star
// lands in row 0, so its row-1 cells stay empty.
func TestSchemaA3ExcludesByComplementBound(t *testing.T) {
	ctx := context.Background()
	b := mustBoard(t, 1, []string{"AABBB", "AABBB", "CCCCC", "DDDDD", "EEEEE"})
	b = mustApply(t, b, exclAll(b, [2]int{0, 2}, [2]int{0, 3}, [2]int{0, 4}))
	a := mustAnalysis(t, b)

	apps, err := SchemaA3{}.Apply(ctx, a)
	if err != nil {
		t.Fatalf("A3: %v", err)
	}
	if !hasDeduction(apps, exclAt(b, 1, 0)) || !hasDeduction(apps, exclAt(b, 1, 1)) {
		t.Fatalf("A3 missed the row-1 exclusions for region A, got %v", apps)
	}
}

func TestSchemaA4StarsByComplementBound(t *testing.T) {
	ctx := context.Background()
	// The a3 fixture transposed: region A spans cols 0-1, its col-1 cells
	// are excluded, and one candidate is left in col 0.
	b := mustBoard(t, 1, []string{"AACDE", "AACDE", "BBCDE", "BBCDE", "BBCDE"})
	b = mustApply(t, b, exclAll(b, [2]int{0, 1}, [2]int{1, 1}, [2]int{1, 0}))
	a := mustAnalysis(t, b)

	apps, err := SchemaA4{}.Apply(ctx, a)
	if err != nil {
		t.Fatalf("A4: %v", err)
	}
	if !hasDeduction(apps, starAt(b, 0, 0)) {
		t.Fatalf("A4 missed the forced star at (0,0), got %v", apps)
	}
}

func TestLedgerRejectsTwoUnknowns(t *testing.T) {
	b := mustBoard(t, 1, []string{"ABCDE", "ABCDE", "ABCDE", "ABCDE", "ABCDE"})
	a := mustAnalysis(t, b)
	// Every column region pokes out of a row band, so no pin is possible.
	if _, ok := ledgerFor(a, Band{Start: 0, End: 1}); ok {
		t.Fatalf("ledger claimed a pin with five unknown regions")
	}
}
