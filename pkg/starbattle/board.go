// Package starbattle provides a deduction engine for star-battle style
// placement puzzles: an N×N board partitioned into regions, with a fixed
// number of stars required per row, column, and region, no two stars on
// adjacent cells (including diagonals), and at most one star in any 2×2
// sub-square.
//
// The engine does not merely solve boards. Its job is to find, for a given
// partial board, a provable forced move: a cell whose value every valid
// completion agrees on. It is organized as a set of independent rule modules
// ("schemas") that consult shared primitives:
//
//   - Board: an immutable snapshot of the grid state
//   - Trial: a feasibility oracle for speculative star placement
//   - Analysis: per-snapshot caches (bands, candidates, quota bounds)
//   - RegionBandBounds: provable bounds on a region's stars inside a band
//   - FindCagePackings: exact-cover enumeration of disjoint 2×2 blocks
//   - Registry: priority-ordered schema evaluation
//
// All searches are budget-limited (node counts, optional deadline) and
// cancellable through context.Context. Budget exhaustion never produces a
// wrong answer: bounds degrade to weaker but still sound values, and schemas
// that cannot prove a deduction simply emit none.
package starbattle

import (
	"fmt"
	"strings"
	"sync/atomic"
)

// CellState is the marking of a single board cell.
type CellState uint8

const (
	// Undetermined cells have not been decided either way.
	Undetermined CellState = iota
	// Star cells hold a committed star.
	Star
	// Excluded cells are proven to hold no star.
	Excluded
)

// String returns a single-character representation of the state.
func (s CellState) String() string {
	switch s {
	case Undetermined:
		return "."
	case Star:
		return "*"
	case Excluded:
		return "x"
	default:
		return "?"
	}
}

// boardVersions issues process-unique snapshot versions. Versions are the
// cache keys for everything derived from a Board: two boards never share a
// version, so caches built for one snapshot can never be consulted for
// another, even if the caller discards and rebuilds boards freely.
var boardVersions atomic.Uint64

// Board is an immutable snapshot of the puzzle state: grid size, quotas,
// region membership, and per-cell markings.
//
// Boards are never mutated after construction. Applying deductions produces a
// new Board with a fresh version (see Apply). All derived state (candidate
// sets, band enumerations, quota memos) lives in Analysis and is keyed by the
// board's version, so a snapshot handed to the engine cannot silently
// invalidate cached results.
type Board struct {
	size        int
	lineQuota   int
	regionQuota []int // indexed by region id
	regionOf    []int // cell -> region id
	cells       []CellState
	version     uint64

	numRegions  int
	regionCells [][]int // region id -> cells, row-major order
	rowStars    []int
	colStars    []int
	regionStars []int
}

// NewBoard creates an empty board of the given size with uniform quotas:
// every row, column, and region must hold exactly stars stars. regions maps
// each cell (row-major) to a region id; ids must form the contiguous range
// 0..R-1 and the uniform quota must be consistent (R*stars == size*stars,
// i.e. R == size).
func NewBoard(size, stars int, regions []int) (*Board, error) {
	numRegions := 0
	for _, r := range regions {
		if r+1 > numRegions {
			numRegions = r + 1
		}
	}
	quotas := make([]int, numRegions)
	for i := range quotas {
		quotas[i] = stars
	}
	return NewBoardWithRegionQuotas(size, stars, regions, quotas)
}

// NewBoardWithRegionQuotas creates an empty board where regions may carry
// individual quotas. The quotas must sum to size*lineQuota so that row,
// column, and region totals can agree.
func NewBoardWithRegionQuotas(size, lineQuota int, regions []int, regionQuotas []int) (*Board, error) {
	if size < 1 {
		return nil, fmt.Errorf("NewBoardWithRegionQuotas: size must be positive, got %d", size)
	}
	if lineQuota < 1 {
		return nil, fmt.Errorf("NewBoardWithRegionQuotas: line quota must be positive, got %d", lineQuota)
	}
	if len(regions) != size*size {
		return nil, fmt.Errorf("NewBoardWithRegionQuotas: regions has %d entries, want %d", len(regions), size*size)
	}
	numRegions := len(regionQuotas)
	if numRegions == 0 {
		return nil, fmt.Errorf("NewBoardWithRegionQuotas: no regions")
	}
	seen := make([]bool, numRegions)
	for i, r := range regions {
		if r < 0 || r >= numRegions {
			return nil, fmt.Errorf("NewBoardWithRegionQuotas: cell %d has region %d outside 0..%d", i, r, numRegions-1)
		}
		seen[r] = true
	}
	total := 0
	for r, q := range regionQuotas {
		if !seen[r] {
			return nil, fmt.Errorf("NewBoardWithRegionQuotas: region %d has no cells", r)
		}
		if q < 0 {
			return nil, fmt.Errorf("NewBoardWithRegionQuotas: region %d has negative quota", r)
		}
		total += q
	}
	if total != size*lineQuota {
		return nil, fmt.Errorf("NewBoardWithRegionQuotas: region quotas sum to %d, want %d", total, size*lineQuota)
	}

	b := &Board{
		size:        size,
		lineQuota:   lineQuota,
		regionQuota: append([]int(nil), regionQuotas...),
		regionOf:    append([]int(nil), regions...),
		cells:       make([]CellState, size*size),
		version:     boardVersions.Add(1),
		numRegions:  numRegions,
		rowStars:    make([]int, size),
		colStars:    make([]int, size),
		regionStars: make([]int, numRegions),
	}
	b.regionCells = make([][]int, numRegions)
	for cell, r := range b.regionOf {
		b.regionCells[r] = append(b.regionCells[r], cell)
	}
	return b, nil
}

// Size returns the board dimension N.
func (b *Board) Size() int { return b.size }

// LineQuota returns the number of stars required in every row and column.
func (b *Board) LineQuota() int { return b.lineQuota }

// NumRegions returns the number of regions.
func (b *Board) NumRegions() int { return b.numRegions }

// RegionQuota returns the number of stars required in region r.
func (b *Board) RegionQuota(r int) int { return b.regionQuota[r] }

// Version returns the snapshot's process-unique version. Everything the
// engine caches about a board is keyed by this value.
func (b *Board) Version() uint64 { return b.version }

// Index converts (row, col) to a linear cell index.
func (b *Board) Index(row, col int) int { return row*b.size + col }

// RowOf returns the row of a cell index.
func (b *Board) RowOf(cell int) int { return cell / b.size }

// ColOf returns the column of a cell index.
func (b *Board) ColOf(cell int) int { return cell % b.size }

// State returns the marking of a cell.
func (b *Board) State(cell int) CellState { return b.cells[cell] }

// RegionOf returns the region id of a cell.
func (b *Board) RegionOf(cell int) int { return b.regionOf[cell] }

// RegionCells returns the cells of region r in row-major order. The returned
// slice is shared; callers must not modify it.
func (b *Board) RegionCells(r int) []int { return b.regionCells[r] }

// RowStars returns the number of committed stars in a row.
func (b *Board) RowStars(row int) int { return b.rowStars[row] }

// ColStars returns the number of committed stars in a column.
func (b *Board) ColStars(col int) int { return b.colStars[col] }

// RegionStars returns the number of committed stars in a region.
func (b *Board) RegionStars(r int) int { return b.regionStars[r] }

// NumCells returns the total cell count N*N.
func (b *Board) NumCells() int { return b.size * b.size }

// Apply produces a new Board with the given deductions committed. Every
// deduction must target an Undetermined cell and force it to Star or
// Excluded; conflicting deductions for the same cell are rejected. The
// receiver is unchanged and the result carries a fresh version.
//
// Apply performs no rule validation beyond cell-state checks: deciding
// whether a deduction is consistent with the full puzzle rules is the
// caller's concern.
func (b *Board) Apply(deds []Deduction) (*Board, error) {
	next := &Board{
		size:        b.size,
		lineQuota:   b.lineQuota,
		regionQuota: b.regionQuota,
		regionOf:    b.regionOf,
		cells:       append([]CellState(nil), b.cells...),
		version:     boardVersions.Add(1),
		numRegions:  b.numRegions,
		regionCells: b.regionCells,
		rowStars:    append([]int(nil), b.rowStars...),
		colStars:    append([]int(nil), b.colStars...),
		regionStars: append([]int(nil), b.regionStars...),
	}
	for _, d := range deds {
		if d.Cell < 0 || d.Cell >= len(next.cells) {
			return nil, fmt.Errorf("Apply: cell %d out of range", d.Cell)
		}
		if d.Value != Star && d.Value != Excluded {
			return nil, fmt.Errorf("Apply: deduction for cell %d has value %v, want Star or Excluded", d.Cell, d.Value)
		}
		switch next.cells[d.Cell] {
		case Undetermined:
			next.cells[d.Cell] = d.Value
			if d.Value == Star {
				next.rowStars[next.RowOf(d.Cell)]++
				next.colStars[next.ColOf(d.Cell)]++
				next.regionStars[next.regionOf[d.Cell]]++
			}
		case d.Value:
			// Re-deriving an already committed value is harmless.
		default:
			return nil, fmt.Errorf("Apply: cell %d is already %v, cannot force %v", d.Cell, next.cells[d.Cell], d.Value)
		}
	}
	return next, nil
}

// Neighbors appends to dst the linear indices of the up-to-8 cells adjacent
// to cell (including diagonals) and returns the extended slice.
func (b *Board) Neighbors(dst []int, cell int) []int {
	row, col := b.RowOf(cell), b.ColOf(cell)
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			r, c := row+dr, col+dc
			if r < 0 || r >= b.size || c < 0 || c >= b.size {
				continue
			}
			dst = append(dst, b.Index(r, c))
		}
	}
	return dst
}

// String renders the board as an ASCII grid, one row per line:
// '*' for stars, 'x' for excluded cells, '.' for undetermined cells.
func (b *Board) String() string {
	var sb strings.Builder
	for row := 0; row < b.size; row++ {
		for col := 0; col < b.size; col++ {
			sb.WriteString(b.cells[b.Index(row, col)].String())
		}
		if row < b.size-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}
