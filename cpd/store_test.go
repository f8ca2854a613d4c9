package cpd_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
)

func TestStore(t *testing.T) {
	a, err := cpd.NewTabular("A", 2, [][]float64{{0.5}, {0.5}})
	require.NoError(t, err)
	a2, err := cpd.NewTabular("A", 2, [][]float64{{0.1}, {0.9}})
	require.NoError(t, err)
	b, err := cpd.NewTabular("B", 2, [][]float64{{0.2, 0.8}, {0.8, 0.2}},
		cpd.WithEvidence([]string{"A"}, []int{2}))
	require.NoError(t, err)

	_, err = cpd.NewStore(a, nil)
	assert.ErrorIs(t, err, cpd.ErrValue)

	s, err := cpd.NewStore(b, a)
	require.NoError(t, err)
	require.NoError(t, s.Add(a2))
	assert.ErrorIs(t, s.Add(nil), cpd.ErrValue)

	assert.Equal(t, 3, s.Len())
	assert.Equal(t, []*cpd.Tabular{a, a2}, s.For("A"))
	assert.Empty(t, s.For("C"))
	assert.Equal(t, []string{"A", "B"}, s.Owners())
	assert.Equal(t, []*cpd.Tabular{b, a, a2}, s.All())
}
