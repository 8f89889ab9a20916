// schema.go: the rule protocol. A schema is an independent, stateless rule
// module that reads a snapshot through its Analysis and emits zero or more
// proven Applications. The Registry holds schemas in a fixed priority order
// and runs them cheapest-and-most-general first.
package starbattle

import (
	"context"
	"sort"
	"sync"

	"github.com/kristofer84/star-battle-solver-sub000/internal/parallel"
)

// Schema is one deduction rule. Implementations must be stateless across
// invocations, idempotent on the same snapshot, and must justify every
// deduction through the shared primitives (oracle, quota bounds, packer) —
// a schema that cannot prove a move emits no Application for it.
type Schema interface {
	// Name returns the schema's stable identifier, e.g. "E1" or "C3".
	Name() string

	// Priority orders schemas in the registry; lower runs first.
	Priority() int

	// Apply evaluates the rule against the snapshot behind the Analysis.
	// Budget exhaustion and cancellation surface as an empty (or shortened)
	// result, never as an error; errors are reserved for protocol misuse.
	Apply(ctx context.Context, a *Analysis) ([]Application, error)
}

// Registry is an ordered collection of schemas.
type Registry struct {
	schemas []Schema
}

// NewRegistry creates a registry over the given schemas, sorted by
// priority. The sort is stable, so schemas sharing a priority keep their
// registration order.
func NewRegistry(schemas ...Schema) *Registry {
	r := &Registry{schemas: append([]Schema(nil), schemas...)}
	sort.SliceStable(r.schemas, func(i, j int) bool {
		return r.schemas[i].Priority() < r.schemas[j].Priority()
	})
	return r
}

// DefaultRegistry returns a registry with every schema this package
// implements, in the standard priority order.
func DefaultRegistry() *Registry {
	return NewRegistry(
		SchemaE1{},
		SchemaA1{}, SchemaA2{}, SchemaA3{}, SchemaA4{},
		SchemaB1{}, SchemaB2{},
		SchemaC1{}, SchemaC2{}, SchemaC3{},
		SchemaD1{}, SchemaD2{},
		SchemaF1{}, SchemaF2{},
	)
}

// Schemas returns the registry's schemas in evaluation order. The returned
// slice is shared; callers must not modify it.
func (r *Registry) Schemas() []Schema { return r.schemas }

// Run evaluates every schema in priority order and returns all
// Applications found. The result for an unchanged snapshot is stable:
// running twice yields the same list.
func (r *Registry) Run(ctx context.Context, a *Analysis) ([]Application, error) {
	var out []Application
	for _, s := range r.schemas {
		apps, err := s.Apply(ctx, a)
		if err != nil {
			return nil, err
		}
		out = append(out, apps...)
		if ctx != nil && ctx.Err() != nil {
			break
		}
	}
	return out, nil
}

// First evaluates schemas in priority order and returns the first
// Application that carries at least one Deduction, or nil when no schema
// can prove a move. Zero-deduction applications (pure pigeonhole
// confirmations) are skipped.
func (r *Registry) First(ctx context.Context, a *Analysis) (*Application, error) {
	for _, s := range r.schemas {
		apps, err := s.Apply(ctx, a)
		if err != nil {
			return nil, err
		}
		for i := range apps {
			if len(apps[i].Deductions) > 0 {
				return &apps[i], nil
			}
		}
		if ctx != nil && ctx.Err() != nil {
			break
		}
	}
	return nil, nil
}

// RunConcurrent evaluates all schemas against the same snapshot using a
// bounded worker pool. Schemas are pure with respect to a snapshot, but an
// Analysis is not safe for sharing, so each schema gets its own Analysis
// over the same Board (budgets apply per schema). Results are returned in
// priority order, matching Run up to per-schema budget differences.
func (r *Registry) RunConcurrent(ctx context.Context, b *Board, workers int, opts ...Option) ([]Application, error) {
	pool := parallel.NewPool(workers)
	defer pool.Shutdown()

	results := make([][]Application, len(r.schemas))
	errs := make([]error, len(r.schemas))
	var wg sync.WaitGroup
	for i, s := range r.schemas {
		i, s := i, s
		wg.Add(1)
		err := pool.Submit(ctx, func() {
			defer wg.Done()
			a, err := NewAnalysis(b, opts...)
			if err != nil {
				errs[i] = err
				return
			}
			results[i], errs[i] = s.Apply(ctx, a)
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	var out []Application
	for i := range results {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out = append(out, results[i]...)
	}
	return out, nil
}
