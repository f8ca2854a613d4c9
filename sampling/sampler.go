// Package sampling draws joint observations from a validated Bayesian
// network by forward (ancestral) sampling.
//
// Each draw walks the model's topological order. For every variable it reads
// the parents' states already drawn in the same row, selects the matching CPD
// column and inverts its cumulative distribution against one uniform draw
// u ∈ [0,1): the sampled state is the smallest s with Σ_{t≤s} P(t) > u.
//
// # Determinism
//
// Given the same model, n, seed and worker count, Forward returns the same
// table. Rows are split into contiguous shards, one per worker; shard i draws
// from its own PCG stream (seed, i) and the shards are concatenated in order,
// so goroutine scheduling never affects the result.
//
// # Errors
//
//   - n ≤ 0 or workers ≤ 0: ErrValue (the cpd.ErrValue sentinel).
//   - nil or unvalidated model: model.ErrValidation.
//   - cancelled context: the partial table and ctx.Err().
package sampling

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
)

// ErrValue is the invalid-argument sentinel shared with package cpd.
var ErrValue = cpd.ErrValue

// Forward draws n independent joint assignments from m.
//
// Steps:
//  1. Validate arguments and model readiness.
//  2. Resolve the seed (crypto/rand when none was given).
//  3. Build the sampling plan (evidence positions + cumulative tables).
//  4. Run one shard per worker via errgroup, each with its own source.
//  5. Concatenate the rows each shard produced, in shard order.
//
// Complexity: O(n · (V + Σ|evidence|) + Σ CPD sizes).
func Forward(m *model.Model, n int, opts ...Option) (*Table, error) {
	// 1) Arguments
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if n <= 0 {
		return nil, fmt.Errorf("%w: sample count must be > 0, got %d", ErrValue, n)
	}
	if o.workers <= 0 {
		return nil, fmt.Errorf("%w: workers must be > 0, got %d", ErrValue, o.workers)
	}
	if err := m.Ready(); err != nil {
		return nil, err
	}

	// 2) Seed
	if !o.seeded {
		seed, err := NewSeed()
		if err != nil {
			return nil, err
		}
		o.seed = seed
	}

	// 3) Plan
	p, err := newPlan(m)
	if err != nil {
		return nil, err
	}

	// 4) Shards
	workers := o.workers
	if workers > n {
		workers = n
	}
	width := len(p)
	backing := make([]int, n*width)
	rows := make([][]int, n)
	for i := range rows {
		rows[i] = backing[i*width : (i+1)*width : (i+1)*width]
	}
	bounds := shardBounds(n, workers)
	produced := make([]int, workers)

	var g errgroup.Group
	for w := 0; w < workers; w++ {
		w := w
		lo, hi := bounds[w], bounds[w+1]
		src := o.source(w, o.seed)
		g.Go(func() error {
			scratch := make([]int, p.maxEvidence())
			for r := lo; r < hi; r++ {
				select {
				case <-o.ctx.Done():
					return o.ctx.Err()
				default:
				}
				if err := p.draw(src, rows[r], scratch); err != nil {
					return err
				}
				produced[w]++
			}
			return nil
		})
	}
	runErr := g.Wait()

	// 5) Assemble, keeping only completed rows
	kept := rows
	if runErr != nil {
		kept = make([][]int, 0, n)
		for w := 0; w < workers; w++ {
			kept = append(kept, rows[bounds[w]:bounds[w]+produced[w]]...)
		}
	}

	return newTable(m, kept), runErr
}

// Generate is the convenience form of Forward with an optional seed.
// A nil seed draws a fresh one from crypto/rand.
func Generate(m *model.Model, n int, seed *uint64) (*Table, error) {
	var opts []Option
	if seed != nil {
		opts = append(opts, WithSeed(*seed))
	}

	return Forward(m, n, opts...)
}

// shardBounds splits [0,n) into k contiguous ranges; the first n%k ranges get one extra row.
func shardBounds(n, k int) []int {
	b := make([]int, k+1)
	size, rem := n/k, n%k
	for i := 0; i < k; i++ {
		b[i+1] = b[i] + size
		if i < rem {
			b[i+1]++
		}
	}

	return b
}
