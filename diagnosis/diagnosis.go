// Package diagnosis provides the Smoking → LungCancer → ShortnessOfBreath
// network with adjustable probabilities.
package diagnosis

import (
	"fmt"
	"math"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
)

// Variable names.
const (
	Smoking           = "Smoking"
	LungCancer        = "LungCancer"
	ShortnessOfBreath = "ShortnessOfBreath"
)

// Params holds the probability of state 1 for each variable given its parent.
type Params struct {
	SmokingRate          float64 `koanf:"smoking_rate"`
	CancerGivenNonSmoker float64 `koanf:"cancer_given_non_smoker"`
	CancerGivenSmoker    float64 `koanf:"cancer_given_smoker"`
	BreathGivenNoCancer  float64 `koanf:"breath_given_no_cancer"`
	BreathGivenCancer    float64 `koanf:"breath_given_cancer"`
}

// Default returns the reference parameters: 30% smokers, cancer in 1% of
// non-smokers and 90% of smokers, breathlessness in 10% without cancer and
// 70% with it.
func Default() Params {
	return Params{
		SmokingRate:          0.30,
		CancerGivenNonSmoker: 0.01,
		CancerGivenSmoker:    0.90,
		BreathGivenNoCancer:  0.10,
		BreathGivenCancer:    0.70,
	}
}

// Validate requires every parameter to be a probability.
func (p Params) Validate() error {
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"smoking_rate", p.SmokingRate},
		{"cancer_given_non_smoker", p.CancerGivenNonSmoker},
		{"cancer_given_smoker", p.CancerGivenSmoker},
		{"breath_given_no_cancer", p.BreathGivenNoCancer},
		{"breath_given_cancer", p.BreathGivenCancer},
	} {
		if math.IsNaN(f.v) || f.v < 0 || f.v > 1 {
			return fmt.Errorf("%w: diagnosis %s = %v outside [0,1]", cpd.ErrValue, f.name, f.v)
		}
	}

	return nil
}

// Variables returns the three binary variables with readable state labels.
func Variables() []core.Variable {
	return []core.Variable{
		{Name: Smoking, Card: 2, States: []string{"non-smoker", "smoker"}},
		{Name: LungCancer, Card: 2, States: []string{"no cancer", "cancer"}},
		{Name: ShortnessOfBreath, Card: 2, States: []string{"no breath issue", "breath issue"}},
	}
}

// Edges returns Smoking → LungCancer and LungCancer → ShortnessOfBreath.
func Edges() []core.Edge {
	return []core.Edge{
		{From: Smoking, To: LungCancer},
		{From: LungCancer, To: ShortnessOfBreath},
	}
}

// NewModel builds and validates the network for p.
func NewModel(p Params) (*model.Model, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	smoking, err := cpd.NewTabular(Smoking, 2, [][]float64{
		{1 - p.SmokingRate},
		{p.SmokingRate},
	})
	if err != nil {
		return nil, err
	}
	cancer, err := cpd.NewTabular(LungCancer, 2, [][]float64{
		{1 - p.CancerGivenNonSmoker, 1 - p.CancerGivenSmoker},
		{p.CancerGivenNonSmoker, p.CancerGivenSmoker},
	}, cpd.WithEvidence([]string{Smoking}, []int{2}))
	if err != nil {
		return nil, err
	}
	breath, err := cpd.NewTabular(ShortnessOfBreath, 2, [][]float64{
		{1 - p.BreathGivenNoCancer, 1 - p.BreathGivenCancer},
		{p.BreathGivenNoCancer, p.BreathGivenCancer},
	}, cpd.WithEvidence([]string{LungCancer}, []int{2}))
	if err != nil {
		return nil, err
	}

	return model.Build(Variables(), Edges(), []*cpd.Tabular{smoking, cancer, breath})
}
