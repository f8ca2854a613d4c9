// SPDX-License-Identifier: MIT
// Package: builder
//
// impl.go - structural constructors.
//
//   - Chain(n):        V0 → V1 → … → V(n-1)
//   - Star(n):         one root with n children (naive-Bayes shape)
//   - RandomDAG(n, p): each forward pair i<j gets an edge with probability p
//
// Every constructor emits variables in ascending index order and edges in
// increasing (parent, child) index order, so output depends only on cfg.

package builder

const (
	methodChain     = "Chain"
	methodStar      = "Star"
	methodRandomDAG = "RandomDAG"

	minChainNodes  = 2
	minStarLeaves  = 1
	minRandomNodes = 1
)

// Chain returns a Constructor that builds a directed path of n variables.
func Chain(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minChainNodes {
			return builderErrorf(methodChain, ErrTooFewVariables)
		}
		prev := ""
		for i := 0; i < n; i++ {
			name, err := d.add(cfg)
			if err != nil {
				return builderErrorf(methodChain, err)
			}
			if prev != "" {
				if err := d.g.AddEdge(prev, name); err != nil {
					return builderErrorf(methodChain, err)
				}
			}
			prev = name
		}
		return nil
	}
}

// Star returns a Constructor that adds one root and n children of it.
func Star(n int) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minStarLeaves {
			return builderErrorf(methodStar, ErrTooFewVariables)
		}
		root, err := d.add(cfg)
		if err != nil {
			return builderErrorf(methodStar, err)
		}
		for i := 0; i < n; i++ {
			leaf, err := d.add(cfg)
			if err != nil {
				return builderErrorf(methodStar, err)
			}
			if err := d.g.AddEdge(root, leaf); err != nil {
				return builderErrorf(methodStar, err)
			}
		}
		return nil
	}
}

// RandomDAG returns a Constructor that adds n variables and, for every pair
// i < j of them, an edge i → j with probability p. Edges only point forward
// in index order, so the result is acyclic. Requires an RNG.
func RandomDAG(n int, p float64) Constructor {
	return func(d *draft, cfg builderConfig) error {
		if n < minRandomNodes {
			return builderErrorf(methodRandomDAG, ErrTooFewVariables)
		}
		if p < 0 || p > 1 {
			return builderErrorf(methodRandomDAG, ErrInvalidProbability)
		}
		if cfg.rng == nil {
			return builderErrorf(methodRandomDAG, ErrNeedRandSource)
		}
		names := make([]string, n)
		for i := range names {
			name, err := d.add(cfg)
			if err != nil {
				return builderErrorf(methodRandomDAG, err)
			}
			names[i] = name
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if cfg.rng.Float64() >= p {
					continue
				}
				if err := d.g.AddEdge(names[i], names[j]); err != nil {
					return builderErrorf(methodRandomDAG, err)
				}
			}
		}
		return nil
	}
}
