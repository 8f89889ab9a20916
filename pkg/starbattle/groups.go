// groups.go: row/column/region groups, the quota-carrying cell sets.
package starbattle

import "fmt"

// GroupKind identifies the kind of a quota-carrying cell group.
type GroupKind uint8

const (
	// RowGroup is a single board row.
	RowGroup GroupKind = iota
	// ColumnGroup is a single board column.
	ColumnGroup
	// RegionGroup is one of the board's regions.
	RegionGroup
)

// String returns the kind name.
func (k GroupKind) String() string {
	switch k {
	case RowGroup:
		return "row"
	case ColumnGroup:
		return "column"
	case RegionGroup:
		return "region"
	default:
		return "group"
	}
}

// Group is a set of cells with a star quota: a row, a column, or a region.
// The invariant stars-in-group <= quota is assumed, not enforced; detecting a
// violated board is the caller's concern.
type Group struct {
	Kind  GroupKind
	Index int
	Cells []int
	Quota int
}

// String returns a short identifier like "row 3" or "region 1".
func (g Group) String() string {
	return fmt.Sprintf("%s %d", g.Kind, g.Index)
}

// Stars counts committed stars in the group.
func (g Group) Stars(b *Board) int {
	switch g.Kind {
	case RowGroup:
		return b.RowStars(g.Index)
	case ColumnGroup:
		return b.ColStars(g.Index)
	case RegionGroup:
		return b.RegionStars(g.Index)
	}
	n := 0
	for _, c := range g.Cells {
		if b.State(c) == Star {
			n++
		}
	}
	return n
}

// Remaining returns the number of stars the group still needs.
func (g Group) Remaining(b *Board) int {
	return g.Quota - g.Stars(b)
}

// Groups enumerates all quota groups of the board: rows, then columns, then
// regions. Cell slices for rows and columns are freshly allocated; region
// slices are shared with the board.
func (b *Board) Groups() []Group {
	n := b.Size()
	groups := make([]Group, 0, 2*n+b.NumRegions())
	for row := 0; row < n; row++ {
		cells := make([]int, n)
		for col := 0; col < n; col++ {
			cells[col] = b.Index(row, col)
		}
		groups = append(groups, Group{Kind: RowGroup, Index: row, Cells: cells, Quota: b.LineQuota()})
	}
	for col := 0; col < n; col++ {
		cells := make([]int, n)
		for row := 0; row < n; row++ {
			cells[row] = b.Index(row, col)
		}
		groups = append(groups, Group{Kind: ColumnGroup, Index: col, Cells: cells, Quota: b.LineQuota()})
	}
	for r := 0; r < b.NumRegions(); r++ {
		groups = append(groups, Group{Kind: RegionGroup, Index: r, Cells: b.RegionCells(r), Quota: b.RegionQuota(r)})
	}
	return groups
}
