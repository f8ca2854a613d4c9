package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
)

// chain returns the Smoking → LungCancer → ShortnessOfBreath definition.
func chain(t *testing.T) ([]core.Variable, []core.Edge, []*cpd.Tabular) {
	t.Helper()
	smoking, err := cpd.NewTabular("Smoking", 2, [][]float64{{0.7}, {0.3}})
	require.NoError(t, err)
	cancer, err := cpd.NewTabular("LungCancer", 2,
		[][]float64{{0.99, 0.1}, {0.01, 0.9}},
		cpd.WithEvidence([]string{"Smoking"}, []int{2}))
	require.NoError(t, err)
	breath, err := cpd.NewTabular("ShortnessOfBreath", 2,
		[][]float64{{0.9, 0.3}, {0.1, 0.7}},
		cpd.WithEvidence([]string{"LungCancer"}, []int{2}))
	require.NoError(t, err)

	vars := []core.Variable{
		{Name: "Smoking", Card: 2},
		{Name: "LungCancer", Card: 2},
		{Name: "ShortnessOfBreath", Card: 2},
	}
	edges := []core.Edge{
		{From: "Smoking", To: "LungCancer"},
		{From: "LungCancer", To: "ShortnessOfBreath"},
	}

	return vars, edges, []*cpd.Tabular{smoking, cancer, breath}
}

// TestBuild_Chain accepts the diagnosis network and caches its order.
func TestBuild_Chain(t *testing.T) {
	vars, edges, cpds := chain(t)

	m, err := model.Build(vars, edges, cpds)
	require.NoError(t, err)
	require.NoError(t, m.Ready())

	assert.Equal(t, []string{"Smoking", "LungCancer", "ShortnessOfBreath"}, m.Order())
	assert.Same(t, cpds[1], m.CPD("LungCancer"))
	assert.Nil(t, m.CPD("Nope"))

	parents, err := m.Parents("ShortnessOfBreath")
	require.NoError(t, err)
	assert.Equal(t, []string{"LungCancer"}, parents)

	v, ok := m.Variable("Smoking")
	assert.True(t, ok)
	assert.Equal(t, 2, v.Card)
	assert.Len(t, m.Variables(), 3)
	assert.Len(t, m.Edges(), 2)
	assert.Equal(t, 5, m.Stats().Columns)
}

// TestBuild_Cycle rejects A→B→C→A with both sentinels.
func TestBuild_Cycle(t *testing.T) {
	vars := []core.Variable{{Name: "A", Card: 2}, {Name: "B", Card: 2}, {Name: "C", Card: 2}}
	edges := []core.Edge{{From: "A", To: "B"}, {From: "B", To: "C"}, {From: "C", To: "A"}}

	m, err := model.Build(vars, edges, nil)
	assert.Nil(t, m)
	assert.ErrorIs(t, err, core.ErrCycle)
	assert.ErrorIs(t, err, model.ErrValidation)
}

// TestCheck_CyclicStructure covers a cycle smuggled in WithoutCycleCheck.
func TestCheck_CyclicStructure(t *testing.T) {
	g := core.NewGraph(core.WithoutCycleCheck())
	for _, v := range []string{"A", "B"} {
		require.NoError(t, g.AddVariable(v, 2))
	}
	require.NoError(t, g.AddEdge("A", "B"))
	require.NoError(t, g.AddEdge("B", "A"))
	store, _ := cpd.NewStore()

	_, err := model.Check(g, store)
	assert.ErrorIs(t, err, core.ErrCycle)
	assert.ErrorIs(t, err, model.ErrValidation)
}

// TestCheck_Violations walks each rule.
func TestCheck_Violations(t *testing.T) {
	vars, edges, cpds := chain(t)

	t.Run("nil inputs", func(t *testing.T) {
		store, _ := cpd.NewStore()
		_, err := model.Check(nil, store)
		assert.ErrorIs(t, err, model.ErrValidation)
		_, err = model.Check(core.NewGraph(), nil)
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("missing CPD", func(t *testing.T) {
		_, err := model.Build(vars, edges, cpds[:2])
		require.ErrorIs(t, err, model.ErrValidation)
		assert.Contains(t, err.Error(), "ShortnessOfBreath has no CPD")
	})

	t.Run("duplicate CPD", func(t *testing.T) {
		_, err := model.Build(vars, edges, append(append([]*cpd.Tabular(nil), cpds...), cpds[0]))
		require.ErrorIs(t, err, model.ErrValidation)
		assert.Contains(t, err.Error(), "Smoking has 2 CPDs")
	})

	t.Run("orphan CPD", func(t *testing.T) {
		extra, err := cpd.NewTabular("Cough", 2, [][]float64{{0.5}, {0.5}})
		require.NoError(t, err)
		_, err = model.Build(vars, edges, append(append([]*cpd.Tabular(nil), cpds...), extra))
		require.ErrorIs(t, err, model.ErrValidation)
		assert.Contains(t, err.Error(), "unknown variable Cough")
	})

	t.Run("nil CPD", func(t *testing.T) {
		_, err := model.Build(vars, edges, []*cpd.Tabular{cpds[0], nil})
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.ErrorIs(t, err, cpd.ErrValue)
	})

	t.Run("root declares evidence", func(t *testing.T) {
		bad, err := cpd.NewTabular("Smoking", 2, [][]float64{{0.5, 0.5}, {0.5, 0.5}},
			cpd.WithEvidence([]string{"LungCancer"}, []int{2}))
		require.NoError(t, err)
		_, err = model.Build(vars, edges, []*cpd.Tabular{bad, cpds[1], cpds[2]})
		assert.ErrorIs(t, err, model.ErrValidation)
	})

	t.Run("cardinality disagreement", func(t *testing.T) {
		tri, err := cpd.NewTabular("Smoking", 3, [][]float64{{0.5}, {0.3}, {0.2}})
		require.NoError(t, err)
		_, err = model.Build(vars, edges, []*cpd.Tabular{tri, cpds[1], cpds[2]})
		require.ErrorIs(t, err, model.ErrValidation)
		assert.Contains(t, err.Error(), "cardinality 3")
	})

	t.Run("evidence cardinality disagreement", func(t *testing.T) {
		wide, err := cpd.NewTabular("LungCancer", 2,
			[][]float64{{0.9, 0.5, 0.1}, {0.1, 0.5, 0.9}},
			cpd.WithEvidence([]string{"Smoking"}, []int{3}))
		require.NoError(t, err)
		_, err = model.Build(vars, edges, []*cpd.Tabular{cpds[0], wide, cpds[2]})
		require.ErrorIs(t, err, model.ErrValidation)
		assert.Contains(t, err.Error(), "evidence Smoking cardinality 3")
	})

	t.Run("unknown edge endpoint", func(t *testing.T) {
		_, err := model.Build(vars, append(append([]core.Edge(nil), edges...),
			core.Edge{From: "Ghost", To: "Smoking"}), cpds)
		assert.ErrorIs(t, err, model.ErrValidation)
		assert.ErrorIs(t, err, core.ErrVariableNotFound)
	})

	t.Run("duplicate variable", func(t *testing.T) {
		_, err := model.Build(append(append([]core.Variable(nil), vars...), vars[0]), edges, cpds)
		assert.ErrorIs(t, err, core.ErrDuplicateVariable)
	})
}

// TestCheck_EvidenceSubsetOfParents is the {X} vs {X, Y} case.
func TestCheck_EvidenceSubsetOfParents(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"X", "Y", "Z"} {
		require.NoError(t, g.AddVariable(v, 2))
	}
	require.NoError(t, g.AddEdge("X", "Z"))
	require.NoError(t, g.AddEdge("Y", "Z"))

	x, _ := cpd.NewTabular("X", 2, [][]float64{{0.5}, {0.5}})
	y, _ := cpd.NewTabular("Y", 2, [][]float64{{0.5}, {0.5}})
	z, err := cpd.NewTabular("Z", 2, [][]float64{{0.2, 0.6}, {0.8, 0.4}},
		cpd.WithEvidence([]string{"X"}, []int{2}))
	require.NoError(t, err)
	store, err := cpd.NewStore(x, y, z)
	require.NoError(t, err)

	_, err = model.Check(g, store)
	require.ErrorIs(t, err, model.ErrValidation)
	assert.Contains(t, err.Error(), "declares evidence {X} but graph parents are {X, Y}")
}

// TestCheck_EvidenceOrderIrrelevant accepts evidence listed in reverse parent order.
func TestCheck_EvidenceOrderIrrelevant(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"X", "Y", "Z"} {
		require.NoError(t, g.AddVariable(v, 2))
	}
	require.NoError(t, g.AddEdge("X", "Z"))
	require.NoError(t, g.AddEdge("Y", "Z"))

	x, _ := cpd.NewTabular("X", 2, [][]float64{{0.5}, {0.5}})
	y, _ := cpd.NewTabular("Y", 2, [][]float64{{0.5}, {0.5}})
	z, err := cpd.NewTabular("Z", 2,
		[][]float64{{0.1, 0.2, 0.3, 0.4}, {0.9, 0.8, 0.7, 0.6}},
		cpd.WithEvidence([]string{"Y", "X"}, []int{2, 2}))
	require.NoError(t, err)
	store, _ := cpd.NewStore(x, y, z)

	m, err := model.Check(g, store)
	require.NoError(t, err)
	assert.NoError(t, m.Ready())
}

// TestModel_Isolation ensures later mutation of the source graph is invisible.
func TestModel_Isolation(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVariable("A", 2))
	a, _ := cpd.NewTabular("A", 2, [][]float64{{0.5}, {0.5}})
	store, _ := cpd.NewStore(a)

	m, err := model.Check(g, store)
	require.NoError(t, err)

	require.NoError(t, g.AddVariable("B", 2))
	require.NoError(t, g.AddEdge("A", "B"))
	assert.Equal(t, []string{"A"}, m.Order())
	assert.Empty(t, m.Edges())

	cp := m.Graph()
	require.NoError(t, cp.AddVariable("C", 2))
	assert.Len(t, m.Variables(), 1)
}

// TestModel_StateLabelsDetached ensures returned variables cannot rewrite
// the labels held by a validated Model.
func TestModel_StateLabelsDetached(t *testing.T) {
	vars, edges, cpds := chain(t)
	vars[0].States = []string{"no", "yes"}
	m, err := model.Build(vars, edges, cpds)
	require.NoError(t, err)

	m.Variables()[0].States[1] = "tampered"
	v, ok := m.Variable("Smoking")
	require.True(t, ok)
	assert.Equal(t, "yes", v.StateName(1))

	v.States[0] = "tampered"
	again, _ := m.Variable("Smoking")
	assert.Equal(t, "no", again.StateName(0))
}

// TestModel_Ready rejects nil and zero-value models.
func TestModel_Ready(t *testing.T) {
	var nilModel *model.Model
	assert.ErrorIs(t, nilModel.Ready(), model.ErrValidation)
	assert.ErrorIs(t, (&model.Model{}).Ready(), model.ErrValidation)
}
