package model

import (
	"fmt"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
)

// Ready returns nil for a Model produced by Check/Build and ErrValidation
// for nil or zero-value Models.
func (m *Model) Ready() error {
	if m == nil || !m.validated {
		return fmt.Errorf("%w: model was not validated", ErrValidation)
	}

	return nil
}

// Order returns a copy of the cached topological order.
func (m *Model) Order() []string {
	return append([]string(nil), m.order...)
}

// Variables returns the variables in topological order.
func (m *Model) Variables() []core.Variable {
	out := make([]core.Variable, len(m.order))
	for i, n := range m.order {
		out[i] = m.variables[n].Clone()
	}

	return out
}

// Variable returns the named variable.
func (m *Model) Variable(name string) (core.Variable, bool) {
	v, ok := m.variables[name]

	return v.Clone(), ok
}

// CPD returns the CPD owned by name, or nil.
func (m *Model) CPD(name string) *cpd.Tabular {
	return m.cpds[name]
}

// Parents returns the sorted parents of name.
func (m *Model) Parents(name string) ([]string, error) {
	return m.graph.ParentsOf(name)
}

// Edges returns the structure's edges sorted by (From, To).
func (m *Model) Edges() []core.Edge {
	return m.graph.Edges()
}

// Graph returns a deep copy of the validated structure; mutating it does not
// affect the Model.
func (m *Model) Graph() *core.Graph {
	return m.graph.Clone()
}

// Stats returns the structural snapshot of the model's graph.
func (m *Model) Stats() *core.GraphStats {
	return m.graph.Stats()
}
