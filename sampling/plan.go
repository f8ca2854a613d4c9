package sampling

import (
	"fmt"
	"sort"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/cpd"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
)

// step is the precomputed sampling recipe for one variable.
type step struct {
	cpd     *cpd.Tabular
	parents []int       // column positions (in the row) of the CPD evidence, in evidence order
	cdf     [][]float64 // cumulative distribution per CPD column
	last    []int       // per column: highest state with positive mass (round-off fallback)
}

// plan lists steps in topological order; step i fills row[i].
type plan []step

// newPlan resolves evidence positions and cumulative tables once per call.
// Only validated models reach here, so every lookup succeeds.
func newPlan(m *model.Model) (plan, error) {
	order := m.Order()
	pos := make(map[string]int, len(order))
	for i, n := range order {
		pos[n] = i
	}
	p := make(plan, len(order))
	for i, name := range order {
		c := m.CPD(name)
		ev := c.Evidence()
		st := step{cpd: c, parents: make([]int, len(ev))}
		for k, e := range ev {
			j, ok := pos[e]
			if !ok || j >= i {
				return nil, fmt.Errorf("%w: evidence %s of %s is not sampled before it", model.ErrValidation, e, name)
			}
			st.parents[k] = j
		}
		cols := c.Columns()
		st.cdf = make([][]float64, cols)
		st.last = make([]int, cols)
		for col := 0; col < cols; col++ {
			dist, err := columnAt(c, col)
			if err != nil {
				return nil, err
			}
			cum := make([]float64, len(dist))
			acc := 0.0
			for s, q := range dist {
				acc += q
				cum[s] = acc
				if q > 0 {
					st.last[col] = s
				}
			}
			st.cdf[col] = cum
		}
		p[i] = st
	}

	return p, nil
}

// columnAt decodes column index col into evidence states and fetches the distribution.
func columnAt(c *cpd.Tabular, col int) ([]float64, error) {
	cards := c.EvidenceCard()
	states := make([]int, len(cards))
	for k := len(cards) - 1; k >= 0; k-- {
		states[k] = col % cards[k]
		col /= cards[k]
	}

	return c.DistributionAt(states)
}

// draw fills row (len == len(p)) with one joint assignment.
// scratch must have room for the largest evidence list.
func (p plan) draw(src Uniform, row, scratch []int) error {
	for i := range p {
		st := &p[i]
		ev := scratch[:len(st.parents)]
		for k, j := range st.parents {
			ev[k] = row[j]
		}
		col, err := st.cpd.ColumnIndex(ev)
		if err != nil {
			return err
		}
		row[i] = invert(st.cdf[col], st.last[col], src.Float64())
	}

	return nil
}

// invert returns the smallest state s with cdf[s] > u. If round-off leaves
// cdf[last] ≤ u, the highest state with positive mass is returned instead.
func invert(cdf []float64, fallback int, u float64) int {
	s := sort.Search(len(cdf), func(i int) bool { return cdf[i] > u })
	if s == len(cdf) {
		return fallback
	}

	return s
}

// maxEvidence returns the longest evidence list in the plan.
func (p plan) maxEvidence() int {
	m := 0
	for i := range p {
		if len(p[i].parents) > m {
			m = len(p[i].parents)
		}
	}

	return m
}
