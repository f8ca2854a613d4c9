package sampling

import (
	"errors"
	"fmt"
	"slices"
)

// ErrNoSupport is returned by ConditionalRate when no row matches the condition.
var ErrNoSupport = errors.New("sampling: no rows match the condition")

// Group is one distinct combination of states and how many rows carry it.
type Group struct {
	States []int
	Count  int
}

// Frequencies returns the empirical marginal of the named column: entry s is
// the fraction of rows in state s. An empty table yields all zeros.
func (t *Table) Frequencies(name string) ([]float64, error) {
	j, err := t.col(name)
	if err != nil {
		return nil, err
	}
	out := make([]float64, t.columns[j].Card)
	if len(t.rows) == 0 {
		return out, nil
	}
	for _, r := range t.rows {
		out[r[j]]++
	}
	n := float64(len(t.rows))
	for s := range out {
		out[s] /= n
	}

	return out, nil
}

// Rate returns the fraction of rows whose column name equals state.
func (t *Table) Rate(name string, state int) (float64, error) {
	f, err := t.Frequencies(name)
	if err != nil {
		return 0, err
	}
	if state < 0 || state >= len(f) {
		return 0, fmt.Errorf("%w: %s state %d outside [0,%d)", ErrValue, name, state, len(f))
	}

	return f[state], nil
}

// ConditionalRate estimates P(target = ts | given = gs) from the rows.
// Errors: ErrUnknownColumn, ErrValue for a state outside the column's
// cardinality, or ErrNoSupport when no row has given = gs.
func (t *Table) ConditionalRate(target string, ts int, given string, gs int) (float64, error) {
	tj, err := t.col(target)
	if err != nil {
		return 0, err
	}
	gj, err := t.col(given)
	if err != nil {
		return 0, err
	}
	if err = t.checkState(tj, ts); err != nil {
		return 0, err
	}
	if err = t.checkState(gj, gs); err != nil {
		return 0, err
	}
	var hit, total int
	for _, r := range t.rows {
		if r[gj] != gs {
			continue
		}
		total++
		if r[tj] == ts {
			hit++
		}
	}
	if total == 0 {
		return 0, fmt.Errorf("%w: %s = %d", ErrNoSupport, given, gs)
	}

	return float64(hit) / float64(total), nil
}

// checkState reports ErrValue when s is not a state of column j.
func (t *Table) checkState(j, s int) error {
	v := t.columns[j]
	if s < 0 || s >= v.Card {
		return fmt.Errorf("%w: %s state %d outside [0,%d)", ErrValue, v.Name, s, v.Card)
	}

	return nil
}

// GroupCounts counts rows per distinct combination of the named columns.
// Groups with zero rows are omitted; the rest are sorted lexicographically
// by States. With no names, every column is used.
func (t *Table) GroupCounts(names ...string) ([]Group, error) {
	if len(names) == 0 {
		names = t.Columns()
	}
	idx := make([]int, len(names))
	for k, n := range names {
		j, err := t.col(n)
		if err != nil {
			return nil, err
		}
		idx[k] = j
	}

	counts := make(map[string]*Group)
	key := make([]byte, 0, 8*len(idx))
	for _, r := range t.rows {
		key = key[:0]
		for _, j := range idx {
			key = fmt.Appendf(key, "%d,", r[j])
		}
		g, ok := counts[string(key)]
		if !ok {
			st := make([]int, len(idx))
			for k, j := range idx {
				st[k] = r[j]
			}
			g = &Group{States: st}
			counts[string(key)] = g
		}
		g.Count++
	}

	out := make([]Group, 0, len(counts))
	for _, g := range counts {
		out = append(out, *g)
	}
	slices.SortFunc(out, func(a, b Group) int { return slices.Compare(a.States, b.States) })

	return out, nil
}
