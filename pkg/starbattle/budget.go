// budget.go: node and wall-clock budgets for the engine's searches.
//
// Every bounded search (quota bounds, cage packing, brute-force enumeration)
// spends from a Budget as it expands nodes. When the budget runs out or the
// caller's context is cancelled, the search stops early and reports that it
// was cut short; callers then fall back to weaker but still sound results
// and never cache the partial ones.
package starbattle

import (
	"context"
	"time"
)

const (
	// DefaultNodeLimit bounds the total search nodes one Analysis may spend.
	DefaultNodeLimit = 200_000

	// exactSearchMaxCells is the largest combined candidate set the quota
	// algorithm will search exhaustively.
	exactSearchMaxCells = 16

	// capacityFallbackThreshold is the unknown-cell count above which the
	// quota algorithm replaces bounded search with a pure capacity bound.
	capacityFallbackThreshold = 20

	// maxQuotaDepth caps mutual recursion between region quota bounds.
	maxQuotaDepth = 1

	// checkInterval is how many nodes a search expands between context and
	// deadline probes. These probes are the engine's suspension points.
	checkInterval = 256
)

// Budget tracks the node and time allowance of an Analysis. The zero value
// is not useful; budgets are created by NewAnalysis from its options.
type Budget struct {
	nodeLimit int64
	deadline  time.Time
	used      int64
	exhausted bool
	cancelled bool
}

func newBudget(nodeLimit int64, timeLimit time.Duration) *Budget {
	bg := &Budget{nodeLimit: nodeLimit}
	if timeLimit > 0 {
		bg.deadline = time.Now().Add(timeLimit)
	}
	return bg
}

// Spend consumes one search node and reports whether the search may
// continue. Context and deadline are probed every checkInterval nodes so the
// hot path stays a counter increment.
func (bg *Budget) Spend(ctx context.Context) bool {
	if bg.exhausted || bg.cancelled {
		return false
	}
	bg.used++
	if bg.nodeLimit > 0 && bg.used > bg.nodeLimit {
		bg.exhausted = true
		return false
	}
	if bg.used%checkInterval == 0 {
		if ctx != nil && ctx.Err() != nil {
			bg.cancelled = true
			return false
		}
		if !bg.deadline.IsZero() && time.Now().After(bg.deadline) {
			bg.exhausted = true
			return false
		}
	}
	return true
}

// Ok reports whether the budget still has allowance.
func (bg *Budget) Ok() bool { return !bg.exhausted && !bg.cancelled }

// Used returns the number of nodes spent so far.
func (bg *Budget) Used() int64 { return bg.used }

// SearchStats summarizes the work an Analysis has performed, in the spirit
// of a solver monitor: useful for tests and for tuning budgets, carrying no
// semantic weight.
type SearchStats struct {
	Nodes          int64 // search nodes expanded
	QuotaQueries   int   // RegionBandBounds calls answered
	QuotaCacheHits int   // answered from the per-snapshot memo
	QuotaAborts    int   // searches cut short by budget or cancellation
	PackerRuns     int   // cage packing enumerations
	PackerAborts   int   // packings cut short
}
