// oracle.go: the placement feasibility oracle. Every search in the engine
// (quota bounds, cage packing, brute-force enumeration) probes speculative
// star placements through a Trial instead of re-deriving quota and adjacency
// logic locally.
package starbattle

import "fmt"

// Trial is a mutable trial state layered over a read-only Board. It tracks
// per-row, per-column, and per-region star counts (committed plus trial) and
// answers whether a further star can legally be placed at a cell.
//
// Place and Remove follow strict stack discipline: Remove must undo the most
// recent un-removed Place. Violating that is a programming error and panics.
// A Trial never modifies its underlying Board.
//
// Trials are not safe for concurrent use; each goroutine layers its own
// Trial over the shared snapshot.
type Trial struct {
	board       *Board
	rowStars    []int
	colStars    []int
	regionStars []int
	trialStar   []bool
	stack       []int
	scratch     []int
}

// NewTrial creates a trial state over the board, seeded with the board's
// committed stars.
func NewTrial(b *Board) *Trial {
	t := &Trial{
		board:       b,
		rowStars:    make([]int, b.Size()),
		colStars:    make([]int, b.Size()),
		regionStars: make([]int, b.NumRegions()),
		trialStar:   make([]bool, b.NumCells()),
		scratch:     make([]int, 0, 8),
	}
	for i := 0; i < b.Size(); i++ {
		t.rowStars[i] = b.RowStars(i)
		t.colStars[i] = b.ColStars(i)
	}
	for r := 0; r < b.NumRegions(); r++ {
		t.regionStars[r] = b.RegionStars(r)
	}
	return t
}

// Board returns the underlying snapshot.
func (t *Trial) Board() *Board { return t.board }

// Depth returns the number of trial stars currently placed.
func (t *Trial) Depth() int { return len(t.stack) }

// hasStar reports whether the cell holds a committed or trial star.
func (t *Trial) hasStar(cell int) bool {
	return t.trialStar[cell] || t.board.State(cell) == Star
}

// CanPlace reports whether a star can be added at cell without immediately
// violating the rules: the cell must be Undetermined and not already a trial
// star, its row, column, and region must be below quota, none of its 8
// neighbors may hold a star, and no 2×2 block containing it may end up with
// two stars.
//
// The 2×2 check is implied by the adjacency check (all cells of a 2×2 square
// are mutually adjacent) but is performed explicitly: the two rules are
// independent in the puzzle definition and the redundancy is cheap.
func (t *Trial) CanPlace(cell int) bool {
	b := t.board
	if b.State(cell) != Undetermined || t.trialStar[cell] {
		return false
	}
	if t.rowStars[b.RowOf(cell)] >= b.LineQuota() {
		return false
	}
	if t.colStars[b.ColOf(cell)] >= b.LineQuota() {
		return false
	}
	if reg := b.RegionOf(cell); t.regionStars[reg] >= b.RegionQuota(reg) {
		return false
	}
	t.scratch = b.Neighbors(t.scratch[:0], cell)
	for _, n := range t.scratch {
		if t.hasStar(n) {
			return false
		}
	}
	// 2×2 blocks containing the cell.
	row, col := b.RowOf(cell), b.ColOf(cell)
	for _, bl := range [4]Block{
		{Row: row - 1, Col: col - 1},
		{Row: row - 1, Col: col},
		{Row: row, Col: col - 1},
		{Row: row, Col: col},
	} {
		if bl.Row < 0 || bl.Col < 0 || bl.Row+1 >= b.Size() || bl.Col+1 >= b.Size() {
			continue
		}
		for _, c := range bl.Cells(b) {
			if c != cell && t.hasStar(c) {
				return false
			}
		}
	}
	return true
}

// Place adds a trial star at cell if CanPlace allows it, reporting whether
// the star was placed.
func (t *Trial) Place(cell int) bool {
	if !t.CanPlace(cell) {
		return false
	}
	b := t.board
	t.trialStar[cell] = true
	t.rowStars[b.RowOf(cell)]++
	t.colStars[b.ColOf(cell)]++
	t.regionStars[b.RegionOf(cell)]++
	t.stack = append(t.stack, cell)
	return true
}

// Remove undoes the most recent Place. Removing any other cell panics: the
// oracle's callers are depth-first searches, and out-of-order removal means
// the search's bookkeeping is broken.
func (t *Trial) Remove(cell int) {
	if len(t.stack) == 0 || t.stack[len(t.stack)-1] != cell {
		panic(fmt.Sprintf("starbattle: Trial.Remove(%d) out of order", cell))
	}
	b := t.board
	t.stack = t.stack[:len(t.stack)-1]
	t.trialStar[cell] = false
	t.rowStars[b.RowOf(cell)]--
	t.colStars[b.ColOf(cell)]--
	t.regionStars[b.RegionOf(cell)]--
}
