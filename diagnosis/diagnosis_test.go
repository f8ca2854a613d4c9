package diagnosis_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/diagnosis"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/sampling"
)

func TestNewModel_Default(t *testing.T) {
	m, err := diagnosis.NewModel(diagnosis.Default())
	require.NoError(t, err)

	assert.Equal(t, []string{diagnosis.Smoking, diagnosis.LungCancer, diagnosis.ShortnessOfBreath}, m.Order())
	prior := m.CPD(diagnosis.Smoking).Values()
	assert.InDelta(t, 0.7, prior[0][0], 1e-12)
	assert.InDelta(t, 0.3, prior[1][0], 1e-12)

	dist, err := m.CPD(diagnosis.LungCancer).DistributionGiven(map[string]int{diagnosis.Smoking: 1})
	require.NoError(t, err)
	assert.InDelta(t, 0.9, dist[1], 1e-12)

	dist, err = m.CPD(diagnosis.ShortnessOfBreath).DistributionGiven(map[string]int{diagnosis.LungCancer: 0})
	require.NoError(t, err)
	assert.InDelta(t, 0.1, dist[1], 1e-12)
}

func TestNewModel_Adjusted(t *testing.T) {
	p := diagnosis.Default()
	p.SmokingRate = 1
	m, err := diagnosis.NewModel(p)
	require.NoError(t, err)

	tbl, err := sampling.Forward(m, 500, sampling.WithSeed(1))
	require.NoError(t, err)
	rate, err := tbl.Rate(diagnosis.Smoking, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, rate)

	label, err := tbl.Label(0, diagnosis.Smoking)
	require.NoError(t, err)
	assert.Equal(t, "smoker", label)
}

func TestParams_Validate(t *testing.T) {
	require.NoError(t, diagnosis.Default().Validate())

	for _, bad := range []float64{-0.1, 1.5, math.NaN()} {
		p := diagnosis.Default()
		p.BreathGivenCancer = bad
		err := p.Validate()
		assert.ErrorIs(t, err, cpd.ErrValue)

		_, err = diagnosis.NewModel(p)
		assert.ErrorIs(t, err, cpd.ErrValue)
	}
}
