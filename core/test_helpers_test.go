// Package core_test contains test helpers for core.Graph.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
)

// Common variable names used across core tests.
const (
	VarEmpty = ""

	VarA = "A"
	VarB = "B"
	VarC = "C"
	VarD = "D"
	VarX = "X"
	VarY = "Y"
)

// Common cardinalities used across core tests (avoid magic numbers in test bodies).
const (
	Card2 = 2
	Card3 = 3
)

// Common concurrency sizes.
const (
	NConcurrentAdds = 200
	NReaders        = 50
)

// mustGraph builds a graph with binary variables named in vars and the given edges.
func mustGraph(t *testing.T, vars []string, edges [][2]string, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g := core.NewGraph(opts...)
	for _, v := range vars {
		require.NoError(t, g.AddVariable(v, Card2), "AddVariable(%s)", v)
	}
	for _, e := range edges {
		require.NoError(t, g.AddEdge(e[0], e[1]), "AddEdge(%s→%s)", e[0], e[1])
	}

	return g
}
