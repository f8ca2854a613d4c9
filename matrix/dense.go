// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: Row/Col return errors instead of panicking.
//   - Keep determinism (fixed loop orders, no map iteration).
//   - Offer the column-oriented reads that probability tables need (Col, ColSums).
//
// Complexity quicksheet:
//   - NewDenseFromRows: O(r*c) copy; Row: O(c); Col: O(r); ColSums: O(r*c).

package matrix

import (
	"fmt"
	"math"
	"strings"
)

// ---------- error context tags ----------

const (
	ctxNew = "FromRows" // method tag used in error wrappers
	ctxCol = "Col"      // method tag used in error wrappers
	ctxRow = "Row"      // method tag used in error wrappers
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
type Dense struct {
	r, c int       // row and column counts (> 0)
	data []float64 // contiguous row-major storage (len == r*c)
}

var _ fmt.Stringer = (*Dense)(nil)

// NewDenseFromRows copies a rectangular [][]float64 into a new Dense.
//
// Implementation:
//   - Stage 1: reject empty input and ragged rows.
//   - Stage 2: copy row by row into the flat buffer, rejecting NaN/±Inf.
//
// Errors:
//   - ErrInvalidDimensions (no rows or zero-length rows).
//   - ErrRaggedRows (rows of different lengths).
//   - ErrNaNInf (non-finite entry, wrapped with coordinates).
//
// Complexity: Time O(r*c), Space O(r*c).
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	// Stage 1: shape checks
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	c := len(rows[0])
	for i := range rows {
		if len(rows[i]) != c {
			return nil, fmt.Errorf("%w: row %d has %d entries, want %d", ErrRaggedRows, i, len(rows[i]), c)
		}
	}
	// Stage 2: copy with numeric policy
	m := &Dense{r: len(rows), c: c, data: make([]float64, len(rows)*c)}
	for i := range rows {
		for j, v := range rows[i] {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxNew, i, j, ErrNaNInf)
			}
			m.data[i*c+j] = v
		}
	}

	return m, nil
}

// Rows returns the number of rows in the matrix.
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns in the matrix.
func (m *Dense) Cols() int { return m.c }

// Row returns a copy of row i.
// Complexity: O(c).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	out := make([]float64, m.c)
	copy(out, m.data[i*m.c:(i+1)*m.c])

	return out, nil
}

// Col returns a copy of column j.
// Complexity: O(r) (strided read).
func (m *Dense) Col(j int) ([]float64, error) {
	if j < 0 || j >= m.c {
		return nil, denseErrorf(ctxCol, 0, j, ErrOutOfRange)
	}
	out := make([]float64, m.r)
	m.ColInto(j, out)

	return out, nil
}

// ColInto copies column j into dst without bounds checks on j beyond the
// slice access itself; dst must have length >= Rows(). Hot-path variant of Col.
func (m *Dense) ColInto(j int, dst []float64) {
	for i := 0; i < m.r; i++ {
		dst[i] = m.data[i*m.c+j]
	}
}

// ColSums returns the per-column sums in column order.
// Complexity: O(r*c), single row-major pass.
func (m *Dense) ColSums() []float64 {
	sums := make([]float64, m.c)
	for i := 0; i < m.r; i++ {
		row := m.data[i*m.c : (i+1)*m.c]
		for j, v := range row {
			sums[j] += v
		}
	}

	return sums
}

// Do calls f for every element in row-major order; iteration stops when f returns false.
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	for i := 0; i < m.r; i++ {
		for j := 0; j < m.c; j++ {
			if !f(i, j, m.data[i*m.c+j]) {
				return
			}
		}
	}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		sb.WriteString("[")
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteString("]\n")
	}

	return sb.String()
}
