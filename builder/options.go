// SPDX-License-Identifier: MIT
// Package: builder
//
// options.go - functional options resolved into an immutable builderConfig.
// Last option wins. Option constructors panic on programmer errors (nil
// funcs, non-positive cardinality); constructors never panic.

package builder

import (
	"math/rand/v2"
	"strconv"
)

// BuilderOption configures BuildNetwork.
type BuilderOption func(*builderConfig)

type builderConfig struct {
	// idFn maps a variable index to its name.
	idFn func(int) string
	// rng drives stochastic structure and random CPDs; nil means uniform CPDs.
	rng *rand.Rand
	// card is the cardinality of every generated variable.
	card int
}

const defaultCard = 2

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{idFn: defaultID, card: defaultCard}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// defaultID yields "V0", "V1", ...
func defaultID(i int) string {
	return "V" + strconv.Itoa(i)
}

// WithIDScheme overrides variable naming. Panics on nil.
func WithIDScheme(fn func(int) string) BuilderOption {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *builderConfig) { c.idFn = fn }
}

// WithRand provides an explicit RNG. Panics on nil; prefer WithSeed for
// reproducible fixtures.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) { c.rng = r }
}

// WithSeed creates a PCG-backed RNG with the given seed.
func WithSeed(seed uint64) BuilderOption {
	return func(c *builderConfig) { c.rng = rand.New(rand.NewPCG(seed, 0)) }
}

// WithCard sets the cardinality of every generated variable. Panics if k < 2.
func WithCard(k int) BuilderOption {
	if k < 2 {
		panic("builder: WithCard(k < 2)")
	}
	return func(c *builderConfig) { c.card = k }
}
