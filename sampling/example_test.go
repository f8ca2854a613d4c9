package sampling_test

import (
	"fmt"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/sampling"
)

// ExampleForward samples a two-node network with four workers.
func ExampleForward() {
	rain, _ := cpd.NewTabular("Rain", 2, [][]float64{{0.8}, {0.2}})
	wet, _ := cpd.NewTabular("WetGrass", 2,
		[][]float64{{0.9, 0.1}, {0.1, 0.9}},
		cpd.WithEvidence([]string{"Rain"}, []int{2}))

	m, err := model.Build(
		[]core.Variable{{Name: "WetGrass", Card: 2}, {Name: "Rain", Card: 2}},
		[]core.Edge{{From: "Rain", To: "WetGrass"}},
		[]*cpd.Tabular{rain, wet},
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	tbl, err := sampling.Forward(m, 1000, sampling.WithSeed(42), sampling.WithWorkers(4))
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(tbl.Columns(), tbl.Len())
	// Output: [Rain WetGrass] 1000
}
