// schema_util.go: small helpers shared by the schema implementations.
package starbattle

// starDeductions forces every listed cell to Star.
func starDeductions(cells []int) []Deduction {
	out := make([]Deduction, len(cells))
	for i, c := range cells {
		out[i] = Deduction{Cell: c, Value: Star}
	}
	return out
}

// exclDeductions forces every listed cell to Excluded.
func exclDeductions(cells []int) []Deduction {
	out := make([]Deduction, len(cells))
	for i, c := range cells {
		out[i] = Deduction{Cell: c, Value: Excluded}
	}
	return out
}

// regionGroup builds a Group reference for explanation steps.
func regionGroup(b *Board, r int) *Group {
	return &Group{Kind: RegionGroup, Index: r, Cells: b.RegionCells(r), Quota: b.RegionQuota(r)}
}

// regionStarsInBand counts the region's committed stars inside the band.
func regionStarsInBand(b *Board, region int, bd Band) int {
	n := 0
	for _, c := range b.RegionCells(region) {
		if bd.Contains(b, c) && b.State(c) == Star {
			n++
		}
	}
	return n
}

// regionCellsInBand splits a region's cells into those inside and outside
// the band.
func regionCellsInBand(b *Board, region int, bd Band) (in, out []int) {
	for _, c := range b.RegionCells(region) {
		if bd.Contains(b, c) {
			in = append(in, c)
		} else {
			out = append(out, c)
		}
	}
	return in, out
}

// regionsIntersecting lists the region ids with at least one cell in the
// band, in scan order (deterministic for a given board).
func regionsIntersecting(b *Board, bd Band) []int {
	seen := make([]bool, b.NumRegions())
	var out []int
	for _, c := range bd.Cells(b) {
		r := b.RegionOf(c)
		if !seen[r] {
			seen[r] = true
			out = append(out, r)
		}
	}
	return out
}

// cellSet builds a membership set from a cell list.
func cellSet(cells []int) map[int]bool {
	m := make(map[int]bool, len(cells))
	for _, c := range cells {
		m[c] = true
	}
	return m
}
