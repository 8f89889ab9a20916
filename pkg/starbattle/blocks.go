// blocks.go: 2×2 sub-squares ("cages"). Any 2×2 square holds at most one
// star, which makes blocks capacity-1 groups for pigeonhole arguments.
package starbattle

import "fmt"

// Block is a 2×2 sub-square anchored at its top-left cell.
type Block struct {
	Row int
	Col int
}

// String returns a short identifier like "block (2,3)".
func (bl Block) String() string {
	return fmt.Sprintf("block (%d,%d)", bl.Row, bl.Col)
}

// Cells returns the block's four cell indices in row-major order.
func (bl Block) Cells(b *Board) [4]int {
	return [4]int{
		b.Index(bl.Row, bl.Col),
		b.Index(bl.Row, bl.Col+1),
		b.Index(bl.Row+1, bl.Col),
		b.Index(bl.Row+1, bl.Col+1),
	}
}

// Overlaps reports whether two blocks share at least one cell.
func (bl Block) Overlaps(other Block) bool {
	dr := bl.Row - other.Row
	if dr < 0 {
		dr = -dr
	}
	dc := bl.Col - other.Col
	if dc < 0 {
		dc = -dc
	}
	return dr <= 1 && dc <= 1
}

// InBand reports whether the block lies fully inside the band.
func (bl Block) InBand(bd Band) bool {
	if bd.Vertical {
		return bl.Col >= bd.Start && bl.Col+1 <= bd.End
	}
	return bl.Row >= bd.Start && bl.Row+1 <= bd.End
}

// Blocks enumerates all (N-1)² blocks of the board.
func (b *Board) Blocks() []Block {
	n := b.Size()
	blocks := make([]Block, 0, (n-1)*(n-1))
	for row := 0; row+1 < n; row++ {
		for col := 0; col+1 < n; col++ {
			blocks = append(blocks, Block{Row: row, Col: col})
		}
	}
	return blocks
}
