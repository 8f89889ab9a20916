// bands.go: contiguous runs of rows or columns, treated as composite quota
// groups for budgeting arguments. A band of k lines holds exactly
// k*lineQuota stars in any completion, which is what lets schemas do
// capacity arithmetic across the regions intersecting it.
package starbattle

import "fmt"

// Band is a contiguous run of rows (Vertical=false) or columns
// (Vertical=true), inclusive of both endpoints.
type Band struct {
	Vertical bool
	Start    int
	End      int
}

// String returns a short identifier like "rows 1-3" or "cols 0-0".
func (bd Band) String() string {
	if bd.Vertical {
		return fmt.Sprintf("cols %d-%d", bd.Start, bd.End)
	}
	return fmt.Sprintf("rows %d-%d", bd.Start, bd.End)
}

// Lines returns the number of lines the band spans.
func (bd Band) Lines() int { return bd.End - bd.Start + 1 }

// Capacity returns the exact number of stars the band holds in any
// completion: lines spanned times the per-line quota.
func (bd Band) Capacity(b *Board) int { return bd.Lines() * b.LineQuota() }

// Contains reports whether the cell lies inside the band.
func (bd Band) Contains(b *Board, cell int) bool {
	line := b.RowOf(cell)
	if bd.Vertical {
		line = b.ColOf(cell)
	}
	return line >= bd.Start && line <= bd.End
}

// Cells returns the band's cells in row-major order.
func (bd Band) Cells(b *Board) []int {
	n := b.Size()
	cells := make([]int, 0, bd.Lines()*n)
	if bd.Vertical {
		for row := 0; row < n; row++ {
			for col := bd.Start; col <= bd.End; col++ {
				cells = append(cells, b.Index(row, col))
			}
		}
	} else {
		for row := bd.Start; row <= bd.End; row++ {
			for col := 0; col < n; col++ {
				cells = append(cells, b.Index(row, col))
			}
		}
	}
	return cells
}

// Stars counts committed stars inside the band.
func (bd Band) Stars(b *Board) int {
	n := 0
	for line := bd.Start; line <= bd.End; line++ {
		if bd.Vertical {
			n += b.ColStars(line)
		} else {
			n += b.RowStars(line)
		}
	}
	return n
}

// key returns a dense index for the band, used as a memoization key
// component. Bands on a size-N board occupy 0..2*N*N-1.
func (bd Band) key(b *Board) int {
	n := b.Size()
	k := bd.Start*n + bd.End
	if bd.Vertical {
		k += n * n
	}
	return k
}

// Complement returns the up-to-two bands covering the lines the receiver
// does not, in the same orientation. An empty slice means the band spans the
// whole board.
func (bd Band) Complement(b *Board) []Band {
	var out []Band
	if bd.Start > 0 {
		out = append(out, Band{Vertical: bd.Vertical, Start: 0, End: bd.Start - 1})
	}
	if bd.End < b.Size()-1 {
		out = append(out, Band{Vertical: bd.Vertical, Start: bd.End + 1, End: b.Size() - 1})
	}
	return out
}

// enumerateBands lists every contiguous band of the board, horizontal runs
// first, shorter runs before longer ones.
func enumerateBands(b *Board) []Band {
	n := b.Size()
	bands := make([]Band, 0, n*(n+1))
	for _, vertical := range []bool{false, true} {
		for length := 1; length <= n; length++ {
			for start := 0; start+length <= n; start++ {
				bands = append(bands, Band{Vertical: vertical, Start: start, End: start + length - 1})
			}
		}
	}
	return bands
}
