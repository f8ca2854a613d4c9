// SPDX-License-Identifier: MIT
// Package matrix - validators shared by callers that ingest tables.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf prefixes a sentinel with the validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil returns ErrNilMatrix when m is nil.
func ValidateNotNil(m *Dense) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateShape checks that m is exactly rows×cols.
func ValidateShape(m *Dense, rows, cols int) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.r != rows || m.c != cols {
		return validatorErrorf("ValidateShape",
			fmt.Errorf("%w: got %dx%d, want %dx%d", ErrInvalidDimensions, m.r, m.c, rows, cols))
	}

	return nil
}

// ValidateFinite scans m in row-major order and reports the first NaN/±Inf.
// Complexity: O(r*c).
func ValidateFinite(m *Dense) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var bad error
	m.Do(func(i, j int, v float64) bool {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			bad = denseErrorf("ValidateFinite", i, j, ErrNaNInf)
			return false
		}
		return true
	})

	return bad
}
