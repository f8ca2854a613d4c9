package cpd

import "errors"

// Sentinel errors for CPD construction and lookup.
var (
	// ErrShape indicates that a table's dimensions disagree with the declared
	// cardinalities: rows ≠ owner cardinality, columns ≠ Π evidence cardinalities,
	// ragged rows, or an inconsistent evidence declaration.
	ErrShape = errors.New("cpd: table shape does not match cardinalities")

	// ErrNormalization indicates that a column is not a probability distribution:
	// an entry outside [0,1] (or non-finite), or a column sum off by more than Tolerance.
	ErrNormalization = errors.New("cpd: column is not a probability distribution")

	// ErrValue indicates an invalid argument: an out-of-range or missing evidence
	// state, an empty variable name, or a nil CPD.
	ErrValue = errors.New("cpd: invalid value")
)
