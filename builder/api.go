// SPDX-License-Identifier: MIT
// Package: builder
//
// api.go - the BuildNetwork orchestrator.
//
// Design contract:
//   - One orchestrator: BuildNetwork(bopts, cons...). Resolves cfg, runs
//     cons in order against a shared draft, then attaches CPDs and validates.
//   - Determinism: same options, seed and constructor order ⇒ identical models.
//   - Safety: never panic at runtime; return sentinel errors.

package builder

import (
	"fmt"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
)

// Constructor applies a deterministic structural mutation to the draft.
// Constructors add their own variables (named by cfg.idFn, continuing the
// draft's running index) and edges between them.
type Constructor func(d *draft, cfg builderConfig) error

// draft is the structure under construction.
type draft struct {
	g    *core.Graph
	next int // next variable index
}

// add appends one variable and returns its name.
func (d *draft) add(cfg builderConfig) (string, error) {
	name := cfg.idFn(d.next)
	if err := d.g.AddVariable(name, cfg.card); err != nil {
		return "", err
	}
	d.next++
	return name, nil
}

// BuildNetwork applies all constructors in order, then gives every variable a
// CPD over its parents and validates the result.
//
// CPD policy: with an RNG (WithSeed/WithRand) each column is a random
// distribution (normalized uniform draws); without one every column is uniform.
//
// Complexity: Σ constructor cost + O(Σ_v card · Π card(parents(v))).
func BuildNetwork(bopts []BuilderOption, cons ...Constructor) (*model.Model, error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{g: core.NewGraph()}

	// 1) Structure
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildNetwork: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w", err)
		}
	}

	// 2) CPDs
	store, err := cpd.NewStore()
	if err != nil {
		return nil, err
	}
	for _, v := range d.g.Variables() {
		parents, err := d.g.ParentsOf(v.Name)
		if err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
		}
		c, err := randomCPD(d.g, v, parents, cfg)
		if err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
		}
		if err := store.Add(c); err != nil {
			return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
		}
	}

	// 3) Validate
	m, err := model.Check(d.g, store)
	if err != nil {
		return nil, fmt.Errorf("BuildNetwork: %w: %w", ErrConstructFailed, err)
	}
	return m, nil
}

// randomCPD builds P(v | parents) with one column per parent configuration.
func randomCPD(g *core.Graph, v core.Variable, parents []string, cfg builderConfig) (*cpd.Tabular, error) {
	cols := 1
	cards := make([]int, len(parents))
	for i, p := range parents {
		k, err := g.Card(p)
		if err != nil {
			return nil, err
		}
		cards[i] = k
		cols *= k
	}

	values := make([][]float64, v.Card)
	for s := range values {
		values[s] = make([]float64, cols)
	}
	for j := 0; j < cols; j++ {
		fillColumn(values, j, cfg)
	}

	var opts []cpd.Option
	if len(parents) > 0 {
		opts = append(opts, cpd.WithEvidence(parents, cards))
	}
	return cpd.NewTabular(v.Name, v.Card, values, opts...)
}

// fillColumn writes one distribution into column j. The last entry absorbs
// the rounding remainder so the column sums to 1 within cpd.Tolerance.
func fillColumn(values [][]float64, j int, cfg builderConfig) {
	k := len(values)
	if cfg.rng == nil {
		for s := 0; s < k; s++ {
			values[s][j] = 1 / float64(k)
		}
		return
	}

	w := make([]float64, k)
	total := 0.0
	for s := range w {
		w[s] = cfg.rng.Float64() + 1e-3
		total += w[s]
	}
	acc := 0.0
	for s := 0; s < k-1; s++ {
		values[s][j] = w[s] / total
		acc += values[s][j]
	}
	last := 1 - acc
	if last < 0 {
		last = 0
	}
	values[k-1][j] = last
}
