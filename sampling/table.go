package sampling

import (
	"errors"
	"fmt"

	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/core"
	"github.com/cdrcknt/Bayesian-MedicalDiagnosis/model"
)

// ErrUnknownColumn is returned when a Table lookup names a variable it does not hold.
var ErrUnknownColumn = errors.New("sampling: unknown column")

// Table holds sampled rows. Columns follow the model's topological order and
// cell (i, j) is the state drawn for column j in row i.
// A Table is immutable once returned and safe for concurrent reads.
type Table struct {
	columns []core.Variable
	index   map[string]int
	rows    [][]int
}

func newTable(m *model.Model, rows [][]int) *Table {
	vars := m.Variables()
	idx := make(map[string]int, len(vars))
	for i, v := range vars {
		idx[v.Name] = i
	}

	return &Table{columns: vars, index: idx, rows: rows}
}

// Columns returns the column names in topological order.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	for i, v := range t.columns {
		out[i] = v.Name
	}

	return out
}

// Variables returns the column variables (with cardinalities and state labels).
func (t *Table) Variables() []core.Variable {
	out := make([]core.Variable, len(t.columns))
	for i, v := range t.columns {
		out[i] = v.Clone()
	}

	return out
}

// Len returns the number of rows.
func (t *Table) Len() int { return len(t.rows) }

// Row returns a copy of row i, or nil if i is out of range.
func (t *Table) Row(i int) []int {
	if i < 0 || i >= len(t.rows) {
		return nil
	}

	return append([]int(nil), t.rows[i]...)
}

// Assignment returns row i keyed by column name, or nil if i is out of range.
func (t *Table) Assignment(i int) map[string]int {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	out := make(map[string]int, len(t.columns))
	for j, v := range t.columns {
		out[v.Name] = t.rows[i][j]
	}

	return out
}

// Column returns every sampled state of the named variable, in row order.
func (t *Table) Column(name string) ([]int, error) {
	j, err := t.col(name)
	if err != nil {
		return nil, err
	}
	out := make([]int, len(t.rows))
	for i, r := range t.rows {
		out[i] = r[j]
	}

	return out, nil
}

// Label renders the state at (row, column) using the variable's state names.
func (t *Table) Label(row int, name string) (string, error) {
	j, err := t.col(name)
	if err != nil {
		return "", err
	}
	if row < 0 || row >= len(t.rows) {
		return "", fmt.Errorf("%w: row %d outside [0,%d)", ErrValue, row, len(t.rows))
	}

	return t.columns[j].StateName(t.rows[row][j]), nil
}

func (t *Table) col(name string) (int, error) {
	j, ok := t.index[name]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
	}

	return j, nil
}
