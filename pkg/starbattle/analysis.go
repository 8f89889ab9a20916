// analysis.go: per-snapshot derived state. An Analysis owns every cache the
// engine builds for one Board: the candidate set, the band enumeration, and
// the region×band quota memo. Caches are keyed by the board's version and an
// Analysis revalidates that version on every query, so results computed for
// one snapshot can never leak into another.
package starbattle

import (
	"fmt"
	"time"
)

// Option configures an Analysis.
type Option func(*analysisConfig)

type analysisConfig struct {
	nodeLimit int64
	timeLimit time.Duration
}

// WithNodeLimit bounds the total search nodes the Analysis may spend across
// all quota, packing, and schema queries. Zero or negative means the
// DefaultNodeLimit; use a very large value for effectively unlimited search.
func WithNodeLimit(n int64) Option {
	return func(c *analysisConfig) { c.nodeLimit = n }
}

// WithTimeLimit bounds the wall-clock time of the Analysis's searches.
// Zero means no deadline.
func WithTimeLimit(d time.Duration) Option {
	return func(c *analysisConfig) { c.timeLimit = d }
}

// Analysis is the engine's working view of one Board snapshot. It is cheap
// to construct; candidate sets and band enumerations are computed lazily on
// first use. An Analysis is not safe for concurrent use — concurrent
// callers each build their own over the shared (immutable) Board.
type Analysis struct {
	board   *Board
	version uint64
	budget  *Budget
	stats   SearchStats

	bands      []Band
	blocks     []Block
	candidates []bool
	quotaMemo  map[quotaKey]quotaBounds
}

// NewAnalysis creates the cache holder for a snapshot.
func NewAnalysis(b *Board, opts ...Option) (*Analysis, error) {
	if b == nil {
		return nil, fmt.Errorf("NewAnalysis: board cannot be nil")
	}
	cfg := analysisConfig{nodeLimit: DefaultNodeLimit}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.nodeLimit <= 0 {
		cfg.nodeLimit = DefaultNodeLimit
	}
	return &Analysis{
		board:     b,
		version:   b.Version(),
		budget:    newBudget(cfg.nodeLimit, cfg.timeLimit),
		quotaMemo: make(map[quotaKey]quotaBounds),
	}, nil
}

// Board returns the underlying snapshot.
func (a *Analysis) Board() *Board { return a.board }

// Stats returns a copy of the search statistics accumulated so far.
func (a *Analysis) Stats() SearchStats {
	s := a.stats
	s.Nodes = a.budget.Used()
	return s
}

// verify guards against the one unrecoverable misuse: consulting an Analysis
// whose board identity no longer matches the version the caches were built
// for. Board fields are unexported, so this can only trip if the package
// itself breaks the immutability convention.
func (a *Analysis) verify() {
	if a.board.Version() != a.version {
		panic(fmt.Sprintf("starbattle: Analysis built for snapshot %d used with snapshot %d",
			a.version, a.board.Version()))
	}
}

// Bands returns every contiguous row and column band of the board,
// enumerated once per Analysis.
func (a *Analysis) Bands() []Band {
	a.verify()
	if a.bands == nil {
		a.bands = enumerateBands(a.board)
	}
	return a.bands
}

// Blocks returns every 2×2 block of the board, enumerated once per Analysis.
func (a *Analysis) Blocks() []Block {
	a.verify()
	if a.blocks == nil {
		a.blocks = a.board.Blocks()
	}
	return a.blocks
}

// Candidate reports whether the cell is a star candidate: Undetermined, and
// the feasibility oracle confirms an immediate star placement is legal.
func (a *Analysis) Candidate(cell int) bool {
	a.verify()
	if a.candidates == nil {
		a.candidates = make([]bool, a.board.NumCells())
		t := NewTrial(a.board)
		for c := 0; c < a.board.NumCells(); c++ {
			if a.board.State(c) == Undetermined {
				a.candidates[c] = t.CanPlace(c)
			}
		}
	}
	return a.candidates[cell]
}

// CandidatesIn filters cells down to the star candidates among them,
// preserving order.
func (a *Analysis) CandidatesIn(cells []int) []int {
	var out []int
	for _, c := range cells {
		if a.Candidate(c) {
			out = append(out, c)
		}
	}
	return out
}

// UndeterminedIn filters cells down to the Undetermined ones, preserving
// order. Undetermined cells that are not candidates can still receive
// Excluded deductions.
func (a *Analysis) UndeterminedIn(cells []int) []int {
	var out []int
	for _, c := range cells {
		if a.board.State(c) == Undetermined {
			out = append(out, c)
		}
	}
	return out
}

// ValidBlock reports whether the block is live in the current position: it
// contains at least one star-candidate cell. Only valid blocks participate
// in cage reasoning; a block with no candidates can never hold a star.
func (a *Analysis) ValidBlock(bl Block) bool {
	for _, c := range bl.Cells(a.board) {
		if a.Candidate(c) {
			return true
		}
	}
	return false
}

// ValidBlocksIn returns the valid blocks lying fully inside the band.
func (a *Analysis) ValidBlocksIn(bd Band) []Block {
	var out []Block
	for _, bl := range a.Blocks() {
		if bl.InBand(bd) && a.ValidBlock(bl) {
			out = append(out, bl)
		}
	}
	return out
}
