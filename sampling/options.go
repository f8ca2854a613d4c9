package sampling

import (
	"context"
	"math/rand/v2"
)

// Uniform is a source of independent draws in [0,1).
// *rand.Rand from math/rand/v2 satisfies it.
type Uniform interface {
	Float64() float64
}

// Option configures Forward.
type Option func(*options)

type options struct {
	ctx     context.Context
	seed    uint64
	seeded  bool
	workers int
	source  func(shard int, seed uint64) Uniform
}

func defaultOptions() options {
	return options{
		ctx:     context.Background(),
		workers: 1,
		source:  pcgSource,
	}
}

// pcgSource gives shard i its own PCG stream (seed, i): distinct shards never
// share generator state.
func pcgSource(shard int, seed uint64) Uniform {
	return rand.New(rand.NewPCG(seed, uint64(shard)))
}

// WithSeed fixes the base seed. Two Forward calls with the same model, n,
// seed and worker count return identical tables.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithWorkers shards the n draws across k goroutines (k > 0). Each shard
// draws from its own stream, so results depend on k but never on scheduling.
func WithWorkers(k int) Option {
	return func(o *options) { o.workers = k }
}

// WithContext enables cancellation. A cancelled run returns the rows drawn
// so far together with ctx.Err(). Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithSource replaces the per-shard uniform source. fn is called once per
// shard with the shard index and the base seed, and must return a source not
// shared with any other shard.
func WithSource(fn func(shard int, seed uint64) Uniform) Option {
	return func(o *options) {
		if fn != nil {
			o.source = fn
		}
	}
}
