// Package cpd implements tabular conditional probability distributions
// for discrete Bayesian networks.
//
// A Tabular CPD for variable X with evidence E1..Ek stores P(X | E1..Ek) as a
// card(X) × Π card(Ei) table: row s is state s of X, and each column is one
// joint assignment of the evidence. Columns are laid out row-major over the
// evidence list, i.e. the LAST evidence variable varies fastest:
//
//	evidence [A(2), B(3)] → columns (a0,b0) (a0,b1) (a0,b2) (a1,b0) (a1,b1) (a1,b2)
//
// Every column must sum to 1 within Tolerance and every entry must lie in [0,1].
package cpd

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/matrix"
)

// Tolerance is the maximum allowed |Σ column − 1|.
const Tolerance = 1e-6

// Option configures optional parts of a Tabular CPD.
type Option func(*options)

type options struct {
	evidence     []string
	evidenceCard []int
}

// WithEvidence declares the conditioning variables and their cardinalities,
// in the order that defines the column layout.
func WithEvidence(names []string, cards []int) Option {
	return func(o *options) {
		o.evidence = append([]string(nil), names...)
		o.evidenceCard = append([]int(nil), cards...)
	}
}

// Tabular is an immutable conditional probability table.
type Tabular struct {
	variable     string        // owner variable
	card         int           // owner cardinality (rows)
	evidence     []string      // ordered evidence variables
	evidenceCard []int         // cardinalities, parallel to evidence
	strides      []int         // column stride per evidence variable
	table        *matrix.Dense // card × Π evidenceCard
}

// NewTabular builds and validates a CPD for variable with the given cardinality.
// values is row-major: values[s][j] = P(variable = s | evidence column j).
//
// Steps:
//  1. Validate the owner and the evidence declaration (ErrValue / ErrShape).
//  2. Copy values into a dense table; ragged or empty input ⇒ ErrShape.
//  3. Check rows == card and cols == Π evidence cardinalities ⇒ ErrShape.
//  4. Check every entry ∈ [0,1] and every column sums to 1 ⇒ ErrNormalization.
//
// Complexity: O(card · columns).
func NewTabular(variable string, card int, values [][]float64, opts ...Option) (*Tabular, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	// 1) Owner and evidence declaration
	if variable == "" {
		return nil, fmt.Errorf("%w: empty variable name", ErrValue)
	}
	if card <= 0 {
		return nil, fmt.Errorf("%w: %s: cardinality %d", ErrShape, variable, card)
	}
	if len(o.evidence) != len(o.evidenceCard) {
		return nil, fmt.Errorf("%w: %s: %d evidence variables but %d cardinalities",
			ErrShape, variable, len(o.evidence), len(o.evidenceCard))
	}
	seen := make(map[string]struct{}, len(o.evidence))
	for i, e := range o.evidence {
		switch {
		case e == "":
			return nil, fmt.Errorf("%w: %s: empty evidence name at %d", ErrValue, variable, i)
		case e == variable:
			return nil, fmt.Errorf("%w: %s: variable listed as its own evidence", ErrShape, variable)
		case o.evidenceCard[i] <= 0:
			return nil, fmt.Errorf("%w: %s: evidence %s has cardinality %d",
				ErrShape, variable, e, o.evidenceCard[i])
		}
		if _, dup := seen[e]; dup {
			return nil, fmt.Errorf("%w: %s: duplicate evidence %s", ErrShape, variable, e)
		}
		seen[e] = struct{}{}
	}

	// Column strides: last evidence varies fastest
	strides := make([]int, len(o.evidenceCard))
	cols := 1
	for i := len(o.evidenceCard) - 1; i >= 0; i-- {
		strides[i] = cols
		cols *= o.evidenceCard[i]
	}

	// 2) Dense copy
	table, err := matrix.NewDenseFromRows(values)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, fmt.Errorf("%w: %s: %v", ErrNormalization, variable, err)
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrShape, variable, err)
	}

	c := &Tabular{
		variable:     variable,
		card:         card,
		evidence:     o.evidence,
		evidenceCard: o.evidenceCard,
		strides:      strides,
		table:        table,
	}
	// 3) + 4)
	if err = c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate re-checks shape and normalization. A CPD returned by NewTabular
// always passes; the validator calls it so a Store can be trusted wholesale.
func (c *Tabular) Validate() error {
	if c == nil || matrix.ValidateNotNil(c.table) != nil {
		return fmt.Errorf("%w: nil CPD", ErrValue)
	}
	// Shape
	if err := matrix.ValidateShape(c.table, c.card, c.Columns()); err != nil {
		return fmt.Errorf("%w: %s: card %d: %v", ErrShape, c.variable, c.card, err)
	}
	// Entry range
	if err := matrix.ValidateFinite(c.table); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrNormalization, c.variable, err)
	}
	var bad error
	c.table.Do(func(i, j int, v float64) bool {
		if v < 0 || v > 1 {
			bad = fmt.Errorf("%w: %s: entry (%d,%d) = %g outside [0,1]", ErrNormalization, c.variable, i, j, v)
			return false
		}
		return true
	})
	if bad != nil {
		return bad
	}
	// Column sums
	for j, s := range c.table.ColSums() {
		if math.Abs(s-1) > Tolerance {
			return fmt.Errorf("%w: %s: column %d sums to %g", ErrNormalization, c.variable, j, s)
		}
	}

	return nil
}

// Variable returns the owner variable name.
func (c *Tabular) Variable() string { return c.variable }

// Card returns the owner cardinality.
func (c *Tabular) Card() int { return c.card }

// Evidence returns a copy of the ordered evidence variable names.
func (c *Tabular) Evidence() []string { return append([]string(nil), c.evidence...) }

// EvidenceCard returns a copy of the evidence cardinalities.
func (c *Tabular) EvidenceCard() []int { return append([]int(nil), c.evidenceCard...) }

// Columns returns Π evidence cardinalities (1 without evidence).
func (c *Tabular) Columns() int {
	n := 1
	for _, k := range c.evidenceCard {
		n *= k
	}

	return n
}

// Values returns a row-major copy of the table.
func (c *Tabular) Values() [][]float64 {
	out := make([][]float64, c.table.Rows())
	for i := range out {
		out[i], _ = c.table.Row(i)
	}

	return out
}

// ColumnIndex maps evidence states (in Evidence() order) to a column index.
// Errors: ErrValue if the length differs from the evidence count or a state is out of range.
func (c *Tabular) ColumnIndex(states []int) (int, error) {
	if len(states) != len(c.evidence) {
		return 0, fmt.Errorf("%w: %s: %d evidence states, want %d", ErrValue, c.variable, len(states), len(c.evidence))
	}
	col := 0
	for i, s := range states {
		if s < 0 || s >= c.evidenceCard[i] {
			return 0, fmt.Errorf("%w: %s: evidence %s state %d outside [0,%d)",
				ErrValue, c.variable, c.evidence[i], s, c.evidenceCard[i])
		}
		col += s * c.strides[i]
	}

	return col, nil
}

// DistributionAt returns P(variable | evidence = states) with states in Evidence() order.
// The returned slice is a fresh copy of length Card().
func (c *Tabular) DistributionAt(states []int) ([]float64, error) {
	col, err := c.ColumnIndex(states)
	if err != nil {
		return nil, err
	}

	return c.table.Col(col)
}

// DistributionGiven returns P(variable | assignment), reading each evidence
// variable's state from assignment. Keys that are not evidence are ignored, so
// a full joint assignment may be passed.
// Errors: ErrValue if an evidence variable is missing or its state is out of range.
func (c *Tabular) DistributionGiven(assignment map[string]int) ([]float64, error) {
	states := make([]int, len(c.evidence))
	for i, e := range c.evidence {
		s, ok := assignment[e]
		if !ok {
			return nil, fmt.Errorf("%w: %s: evidence %s not assigned", ErrValue, c.variable, e)
		}
		states[i] = s
	}

	return c.DistributionAt(states)
}

// String renders the CPD header and table, e.g. "P(LungCancer | Smoking)".
func (c *Tabular) String() string {
	var sb strings.Builder
	sb.WriteString("P(")
	sb.WriteString(c.variable)
	if len(c.evidence) > 0 {
		sb.WriteString(" | ")
		sb.WriteString(strings.Join(c.evidence, ", "))
	}
	sb.WriteString(")\n")
	sb.WriteString(c.table.String())

	return sb.String()
}
