package maxprec

import "errors"

// Sentinel errors for maxprec.Index construction and access.
var (
	// ErrInvalidDimensions indicates n is non-positive.
	ErrInvalidDimensions = errors.New("maxprec: dimensions must be positive")

	// ErrVariableOutOfRange indicates a variable index outside [0, n).
	ErrVariableOutOfRange = errors.New("maxprec: variable index out of range")

	// ErrEmpty indicates Max was called for a variable with no entries yet.
	ErrEmpty = errors.New("maxprec: variable has no entries")
)
