// SPDX-License-Identifier: MIT

// Package builder generates synthetic Bayesian networks for tests,
// benchmarks and demos.
//
// Constructors (Chain, Star, RandomDAG) describe structure; BuildNetwork
// composes them, attaches one CPD per variable and returns a validated
// *model.Model:
//
//	m, err := builder.BuildNetwork(
//		[]builder.BuilderOption{builder.WithSeed(7), builder.WithCard(3)},
//		builder.RandomDAG(20, 0.2),
//	)
//
// The same options, seed and constructor order always produce the same model.
package builder
