// schema_a.go: the A-family band-budget rules.
//
// A band of k lines holds exactly k*lineQuota stars. A1/A2 split that
// capacity across the regions intersecting the band: when the in-band
// contribution of every region but one is independently known, the last
// region's contribution is pinned by subtraction, and a pinned contribution
// of zero (or of the full candidate count) forces cell values.
//
// A3/A4 apply the symmetric reasoning within one region across its bands:
// the region's quota, minus what can still land in the band's complement,
// bounds what must land in the band.
package starbattle

import (
	"context"
	"fmt"
)

// bandLedger is the per-band quota bookkeeping shared by A1 and A2.
type bandLedger struct {
	band     Band
	capacity int

	// unknown is the single region whose in-band contribution is not
	// independently known, or -1 when every region is known.
	unknown int

	// pinnedFuture is how many more stars the unknown region must place in
	// the band: capacity minus all known contributions minus the unknown
	// region's committed in-band stars.
	pinnedFuture int

	// unknownCands are the unknown region's candidate cells inside the band.
	unknownCands []int
}

// ledgerFor classifies the regions intersecting the band as known or
// unknown. A region's in-band contribution is known when the region lies
// fully inside the band (contribution = quota), has no remaining quota
// (contribution = committed in-band stars), or is confined — all of its
// candidates lie inside the band (contribution = committed in-band +
// remaining). ok is false unless exactly one region remains unknown with a
// consistent pinned quota.
func ledgerFor(a *Analysis, bd Band) (bandLedger, bool) {
	b := a.Board()
	led := bandLedger{band: bd, capacity: bd.Capacity(b), unknown: -1}
	known := 0
	for _, r := range regionsIntersecting(b, bd) {
		in, out := regionCellsInBand(b, r, bd)
		committedIn := 0
		for _, c := range in {
			if b.State(c) == Star {
				committedIn++
			}
		}
		rem := b.RegionQuota(r) - b.RegionStars(r)
		switch {
		case len(out) == 0:
			known += b.RegionQuota(r)
		case rem <= 0:
			known += committedIn
		case len(a.CandidatesIn(out)) == 0:
			// Confined: no remaining star can land outside the band.
			known += committedIn + rem
		default:
			if led.unknown >= 0 {
				return led, false // second unknown region, no pin possible
			}
			led.unknown = r
			led.pinnedFuture = -committedIn // completed below
			led.unknownCands = a.CandidatesIn(in)
		}
	}
	if led.unknown < 0 {
		return led, false
	}
	led.pinnedFuture += led.capacity - known
	if led.pinnedFuture < 0 || led.pinnedFuture > len(led.unknownCands) {
		// The ledger does not add up; the board is already contradictory.
		return led, false
	}
	return led, true
}

// SchemaA1 pins a region's band quota to zero by band-capacity subtraction
// and excludes the region's candidates inside the band.
type SchemaA1 struct{}

// Name implements Schema.
func (SchemaA1) Name() string { return "A1" }

// Priority implements Schema.
func (SchemaA1) Priority() int { return 10 }

// Apply implements Schema.
func (SchemaA1) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	var out []Application
	for _, bd := range a.Bands() {
		led, ok := ledgerFor(a, bd)
		if !ok || led.pinnedFuture != 0 || len(led.unknownCands) == 0 {
			continue
		}
		bd := bd
		out = append(out, Application{
			Schema:     "A1",
			Params:     map[string]int{"region": led.unknown, "pinned": 0},
			Deductions: exclDeductions(led.unknownCands),
			Steps: []Step{{
				Note: fmt.Sprintf("%s holds %d stars, all accounted for by the other regions; region %d places none there",
					bd, led.capacity, led.unknown),
				Band:  &bd,
				Group: regionGroup(a.Board(), led.unknown),
				Cells: led.unknownCands,
			}},
		})
	}
	return out, nil
}

// SchemaA2 pins a region's band quota to its in-band candidate count by
// band-capacity subtraction and forces those candidates to Star.
type SchemaA2 struct{}

// Name implements Schema.
func (SchemaA2) Name() string { return "A2" }

// Priority implements Schema.
func (SchemaA2) Priority() int { return 11 }

// Apply implements Schema.
func (SchemaA2) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	var out []Application
	for _, bd := range a.Bands() {
		led, ok := ledgerFor(a, bd)
		if !ok || led.pinnedFuture == 0 || led.pinnedFuture != len(led.unknownCands) {
			continue
		}
		bd := bd
		out = append(out, Application{
			Schema:     "A2",
			Params:     map[string]int{"region": led.unknown, "pinned": led.pinnedFuture},
			Deductions: starDeductions(led.unknownCands),
			Steps: []Step{{
				Note: fmt.Sprintf("%s needs %d more star(s) from region %d, which has exactly that many placeable cells there",
					bd, led.pinnedFuture, led.unknown),
				Band:  &bd,
				Group: regionGroup(a.Board(), led.unknown),
				Cells: led.unknownCands,
			}},
		})
	}
	return out, nil
}

// applyRegionAcrossBands is the shared body of A3 (row bands) and A4
// (column bands): for one region and one band, the region's remaining quota
// minus the complement bands' bounds pins what must (or cannot) land in the
// band.
func applyRegionAcrossBands(ctx context.Context, a *Analysis, name string, vertical bool) ([]Application, error) {
	b := a.Board()
	var out []Application
	for _, bd := range a.Bands() {
		if bd.Vertical != vertical {
			continue
		}
		for _, r := range regionsIntersecting(b, bd) {
			rem := b.RegionQuota(r) - b.RegionStars(r)
			if rem <= 0 {
				continue
			}
			in, outCells := regionCellsInBand(b, r, bd)
			if len(outCells) == 0 {
				continue // fully inside, E1 territory
			}
			candIn := a.CandidatesIn(in)
			if len(candIn) == 0 {
				continue
			}

			// Bound the region's future stars in the complement bands.
			compMaxFuture, compMinFuture := 0, 0
			for _, comp := range bd.Complement(b) {
				lo, hi := a.RegionBandBounds(ctx, r, comp)
				committed := regionStarsInBand(b, r, comp)
				compMaxFuture += hi - committed
				if lo > committed {
					compMinFuture += lo - committed
				}
			}

			bd := bd
			if need := rem - compMaxFuture; need == len(candIn) && need > 0 {
				out = append(out, Application{
					Schema:     name,
					Params:     map[string]int{"region": r, "pinned": need},
					Deductions: starDeductions(candIn),
					Steps: []Step{{
						Note: fmt.Sprintf("region %d can place at most %d of its %d remaining star(s) outside %s; its %d cell(s) there must all be stars",
							r, compMaxFuture, rem, bd, len(candIn)),
						Band:  &bd,
						Group: regionGroup(b, r),
						Cells: candIn,
					}},
				})
			} else if room := rem - compMinFuture; room == 0 {
				out = append(out, Application{
					Schema:     name,
					Params:     map[string]int{"region": r, "pinned": 0},
					Deductions: exclDeductions(candIn),
					Steps: []Step{{
						Note: fmt.Sprintf("region %d must place all %d remaining star(s) outside %s; its cells there stay empty",
							r, rem, bd),
						Band:  &bd,
						Group: regionGroup(b, r),
						Cells: candIn,
					}},
				})
			}
		}
	}
	return out, nil
}

// SchemaA3 applies the band-budget reasoning within one region across its
// row bands.
type SchemaA3 struct{}

// Name implements Schema.
func (SchemaA3) Name() string { return "A3" }

// Priority implements Schema.
func (SchemaA3) Priority() int { return 12 }

// Apply implements Schema.
func (SchemaA3) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	return applyRegionAcrossBands(ctx, a, "A3", false)
}

// SchemaA4 applies the band-budget reasoning within one region across its
// column bands.
type SchemaA4 struct{}

// Name implements Schema.
func (SchemaA4) Name() string { return "A4" }

// Priority implements Schema.
func (SchemaA4) Priority() int { return 13 }

// Apply implements Schema.
func (SchemaA4) Apply(ctx context.Context, a *Analysis) ([]Application, error) {
	return applyRegionAcrossBands(ctx, a, "A4", true)
}
