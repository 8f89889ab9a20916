// quota.go: the region×band quota algorithm. Given a region and a band, it
// derives provable bounds on how many of the region's stars (committed plus
// future) land inside the band. The lower bound is the engine's workhorse:
// band-budget schemas pin a region's contribution by subtracting the other
// regions' bounds from the band's exact capacity.
//
// The algorithm is layered by cost, cheapest first:
//
//  1. Trivial shortcuts for regions with no remaining quota, no candidates
//     in the band, or lying fully inside or outside it.
//  2. A bound on the stars the region could place *outside* the band, via
//     bounded search over the outside candidates, falling back to a pure
//     capacity bound when the unknown-cell count exceeds a threshold.
//  3. A band-capacity argument consulting the other regions' upper bounds
//     (mutually recursive, capped at depth 1 by an explicit parameter).
//  4. Exact bounded backtracking over all placements of the remaining quota
//     when the combined candidate set is small, every step validated through
//     the feasibility oracle.
//
// Node and time budgets abort any of the searches early; an aborted search
// contributes nothing (the previously proved bound stands) and aborted
// results are never memoized. Returned lower bounds may under-report the
// true forced quota but never over-report it.
package starbattle

import "context"

type quotaKey struct {
	region int
	band   int
	depth  int
}

type quotaBounds struct {
	lo int
	hi int
}

// RegionBandQuota returns a provable lower bound on the total number of
// stars region places inside the band, counting committed stars.
func (a *Analysis) RegionBandQuota(ctx context.Context, region int, bd Band) int {
	lo, _ := a.RegionBandBounds(ctx, region, bd)
	return lo
}

// RegionBandBounds returns provable lower and upper bounds on the total
// number of stars region places inside the band. Always lo <= hi, and in
// any valid completion the region's in-band star count lies within
// [lo, hi].
func (a *Analysis) RegionBandBounds(ctx context.Context, region int, bd Band) (lo, hi int) {
	a.verify()
	b := a.regionBandBounds(ctx, region, bd, 0)
	return b.lo, b.hi
}

func (a *Analysis) regionBandBounds(ctx context.Context, region int, bd Band, depth int) quotaBounds {
	a.stats.QuotaQueries++
	key := quotaKey{region: region, band: bd.key(a.board), depth: depth}
	if cached, ok := a.quotaMemo[key]; ok {
		a.stats.QuotaCacheHits++
		return cached
	}

	b := a.board
	quota := b.RegionQuota(region)
	rem := quota - b.RegionStars(region)

	committed := 0
	inBandCells := 0
	for _, c := range b.RegionCells(region) {
		if bd.Contains(b, c) {
			inBandCells++
			if b.State(c) == Star {
				committed++
			}
		}
	}

	// Trivial shortcuts: these are exact, not bounds.
	if inBandCells == 0 {
		return a.memoize(key, quotaBounds{0, 0}, true)
	}
	if rem <= 0 {
		return a.memoize(key, quotaBounds{committed, committed}, true)
	}
	var candIn, candOut []int
	for _, c := range b.RegionCells(region) {
		if !a.Candidate(c) {
			continue
		}
		if bd.Contains(b, c) {
			candIn = append(candIn, c)
		} else {
			candOut = append(candOut, c)
		}
	}
	if len(candIn) == 0 {
		return a.memoize(key, quotaBounds{committed, committed}, true)
	}
	if inBandCells == len(b.RegionCells(region)) {
		// Fully inside: all of the region's stars land in the band.
		return a.memoize(key, quotaBounds{quota, quota}, true)
	}

	sound := true // false once any contributing search was cut short
	res := quotaBounds{lo: committed, hi: committed + min(rem, len(candIn))}

	// Bound the stars the region could still place outside the band. This
	// keys the main lower bound: whatever cannot fit outside must go inside.
	maxOutside := a.capacityBound(candOut, rem)
	if len(candOut) > 0 && len(candOut) <= capacityFallbackThreshold {
		if v, complete := a.maxPlaceable(ctx, candOut, rem); complete {
			maxOutside = min(maxOutside, v)
		} else {
			sound = false
		}
	}
	if v := committed + rem - maxOutside; v > res.lo {
		res.lo = v
	}

	// Tighten the upper bound by how many stars fit simultaneously inside.
	if len(candIn) <= capacityFallbackThreshold {
		if v, complete := a.maxPlaceable(ctx, candIn, rem); complete {
			res.hi = min(res.hi, committed+v)
		} else {
			sound = false
		}
	}

	// Band-capacity argument: the band holds exactly Capacity stars, so this
	// region must cover whatever the other regions' upper bounds cannot.
	// Consulting those bounds recurses into this function; the explicit
	// depth parameter caps the mutual recursion.
	if depth < maxQuotaDepth {
		sumOtherHi := 0
		for other := 0; other < b.NumRegions(); other++ {
			if other == region {
				continue
			}
			ob := a.regionBandBounds(ctx, other, bd, depth+1)
			sumOtherHi += ob.hi
		}
		if v := bd.Capacity(b) - sumOtherHi; v > res.lo {
			res.lo = v
		}
	}

	// Exact bounded search over all placements of the remaining quota.
	combined := len(candIn) + len(candOut)
	if combined <= exactSearchMaxCells {
		all := make([]int, 0, combined)
		all = append(all, candIn...)
		all = append(all, candOut...)
		minIn, maxIn, found, complete := a.exactRegionSearch(ctx, all, rem, bd)
		if complete && found {
			if v := committed + minIn; v > res.lo {
				res.lo = v
			}
			if v := committed + maxIn; v < res.hi {
				res.hi = v
			}
		} else if !complete {
			sound = false
		}
	}

	if res.hi < res.lo {
		// Only reachable on contradictory boards, where every bound is
		// vacuously sound. Keep the invariant lo <= hi for callers.
		res.hi = res.lo
	}
	return a.memoize(key, res, sound)
}

// memoize caches complete results. Results derived from aborted searches
// are returned but never cached: a later call with fresh budget may prove
// something stronger.
func (a *Analysis) memoize(key quotaKey, b quotaBounds, complete bool) quotaBounds {
	if complete {
		a.quotaMemo[key] = b
	} else {
		a.stats.QuotaAborts++
	}
	return b
}

// capacityBound returns a coarse upper bound on how many of the given cells
// can simultaneously hold stars: the minimum of the remaining row, column,
// and region capacities touching them, clamped to rem. It involves no
// search and is the fallback for large candidate sets.
func (a *Analysis) capacityBound(cells []int, rem int) int {
	if len(cells) == 0 {
		return 0
	}
	b := a.board
	rowSeen := make(map[int]bool)
	colSeen := make(map[int]bool)
	rowCap, colCap := 0, 0
	for _, c := range cells {
		if r := b.RowOf(c); !rowSeen[r] {
			rowSeen[r] = true
			rowCap += b.LineQuota() - b.RowStars(r)
		}
		if cl := b.ColOf(c); !colSeen[cl] {
			colSeen[cl] = true
			colCap += b.LineQuota() - b.ColStars(cl)
		}
	}
	return min(rem, rowCap, colCap)
}

// maxPlaceable searches for the largest number of the given cells that can
// simultaneously hold stars, up to cap, with every placement validated
// through the oracle. complete is false if the budget cut the search short;
// the returned value is then a witness count, not an upper bound, and
// callers must discard it.
func (a *Analysis) maxPlaceable(ctx context.Context, cells []int, limit int) (best int, complete bool) {
	return a.maxPlaceableFrom(ctx, NewTrial(a.board), cells, limit)
}

// maxPlaceableFrom is maxPlaceable over an existing trial state, so callers
// can ask "how many of these still fit" after speculative placements.
func (a *Analysis) maxPlaceableFrom(ctx context.Context, t *Trial, cells []int, limit int) (best int, complete bool) {
	complete = true
	var rec func(i, placed int)
	rec = func(i, placed int) {
		if placed > best {
			best = placed
		}
		if best >= limit || i >= len(cells) || placed+(len(cells)-i) <= best {
			return
		}
		if !a.budget.Spend(ctx) {
			complete = false
			return
		}
		if t.Place(cells[i]) {
			rec(i+1, placed+1)
			t.Remove(cells[i])
			if !complete {
				return
			}
		}
		rec(i+1, placed)
	}
	rec(0, 0)
	return best, complete
}

// exactRegionSearch enumerates every way to place exactly rem stars among
// the candidate cells (each step validated through the oracle) and tracks
// the minimum and maximum number landing inside the band. found is false
// when no placement exists, which means the board is contradictory.
func (a *Analysis) exactRegionSearch(ctx context.Context, cells []int, rem int, bd Band) (minIn, maxIn int, found, complete bool) {
	b := a.board
	t := NewTrial(b)
	minIn, maxIn = rem+1, -1
	complete = true
	var rec func(i, placed, inside int)
	rec = func(i, placed, inside int) {
		if placed == rem {
			found = true
			if inside < minIn {
				minIn = inside
			}
			if inside > maxIn {
				maxIn = inside
			}
			return
		}
		if i >= len(cells) || placed+(len(cells)-i) < rem {
			return
		}
		if !a.budget.Spend(ctx) {
			complete = false
			return
		}
		if t.Place(cells[i]) {
			d := 0
			if bd.Contains(b, cells[i]) {
				d = 1
			}
			rec(i+1, placed+1, inside+d)
			t.Remove(cells[i])
			if !complete {
				return
			}
		}
		rec(i+1, placed, inside)
	}
	rec(0, 0, 0)
	if !found {
		minIn, maxIn = 0, 0
	}
	return minIn, maxIn, found, complete
}
