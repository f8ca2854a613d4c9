// SPDX-License-Identifier: MIT
// Package: builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w.

package builder

import (
	"errors"
	"fmt"
)

// ErrTooFewVariables indicates that a size parameter is below the minimum
// for the requested constructor.
var ErrTooFewVariables = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates an edge probability outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor ran without
// WithSeed or WithRand.
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the draft could not be turned into a
// validated model (nil constructor, structural or CPD error).
var ErrConstructFailed = errors.New("builder: construction failed")

// builderErrorf prefixes err with the constructor name.
func builderErrorf(method string, err error) error {
	return fmt.Errorf("%s: %w", method, err)
}
