package builder_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/builder"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
)

func TestChain(t *testing.T) {
	m, err := builder.BuildNetwork(nil, builder.Chain(4))
	require.NoError(t, err)

	assert.Equal(t, []string{"V0", "V1", "V2", "V3"}, m.Order())
	assert.Equal(t, []core.Edge{{From: "V0", To: "V1"}, {From: "V1", To: "V2"}, {From: "V2", To: "V3"}}, m.Edges())
	// no RNG: uniform columns
	assert.Equal(t, [][]float64{{0.5, 0.5}, {0.5, 0.5}}, m.CPD("V2").Values())
}

func TestStar(t *testing.T) {
	m, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithCard(3)}, builder.Star(3))
	require.NoError(t, err)

	s := m.Stats()
	assert.Equal(t, 4, s.Variables)
	assert.Equal(t, 3, s.Edges)
	assert.Equal(t, 1, s.Roots)
	assert.Equal(t, 3, s.Leaves)
	parents, err := m.Parents("V3")
	require.NoError(t, err)
	assert.Equal(t, []string{"V0"}, parents)
	assert.Equal(t, 3, m.CPD("V3").Columns())
}

func TestComposition(t *testing.T) {
	m, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithIDScheme(func(i int) string { return fmt.Sprintf("N%02d", i) })},
		builder.Chain(2), builder.Star(2),
	)
	require.NoError(t, err)
	// Chain(2) adds N00 → N01; Star(2) adds root N02 with leaves N03, N04
	assert.Equal(t, 5, m.Stats().Variables)
	assert.Equal(t, 2, m.Stats().Roots)
	assert.Equal(t, 3, m.Stats().Edges)
	parents, err := m.Parents("N04")
	require.NoError(t, err)
	assert.Equal(t, []string{"N02"}, parents)
	_, ok := m.Variable("N05")
	assert.False(t, ok)
}

func TestRandomDAG_Deterministic(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(11)}
	a, err := builder.BuildNetwork(opts, builder.RandomDAG(12, 0.3))
	require.NoError(t, err)
	b, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(11)}, builder.RandomDAG(12, 0.3))
	require.NoError(t, err)

	assert.Equal(t, a.Edges(), b.Edges())
	for _, name := range a.Order() {
		assert.Equal(t, a.CPD(name).Values(), b.CPD(name).Values(), name)
	}
	// edges only point forward in index order
	for _, e := range a.Edges() {
		from, _ := strconv.Atoi(strings.TrimPrefix(e.From, "V"))
		to, _ := strconv.Atoi(strings.TrimPrefix(e.To, "V"))
		assert.Less(t, from, to)
	}
}

func TestRandomDAG_Extremes(t *testing.T) {
	empty, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomDAG(5, 0))
	require.NoError(t, err)
	assert.Empty(t, empty.Edges())

	full, err := builder.BuildNetwork([]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomDAG(5, 1))
	require.NoError(t, err)
	assert.Len(t, full.Edges(), 10)
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		opts []builder.BuilderOption
		con  builder.Constructor
		want error
	}{
		{"short chain", nil, builder.Chain(1), builder.ErrTooFewVariables},
		{"empty star", nil, builder.Star(0), builder.ErrTooFewVariables},
		{"no rng", nil, builder.RandomDAG(3, 0.5), builder.ErrNeedRandSource},
		{"bad p", []builder.BuilderOption{builder.WithSeed(1)}, builder.RandomDAG(3, 1.5), builder.ErrInvalidProbability},
		{"nil constructor", nil, nil, builder.ErrConstructFailed},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildNetwork(tc.opts, tc.con)
			assert.ErrorIs(t, err, tc.want)
		})
	}

	// colliding names from a constant ID scheme
	_, err := builder.BuildNetwork(
		[]builder.BuilderOption{builder.WithIDScheme(func(int) string { return "X" })},
		builder.Chain(2))
	assert.ErrorIs(t, err, core.ErrDuplicateVariable)
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithCard(1) })
}
