package marginal

import "errors"

// Sentinel errors for marginal.State construction and access.
var (
	// ErrInvalidDimensions indicates n is non-positive or K is negative.
	ErrInvalidDimensions = errors.New("marginal: dimensions must be valid")

	// ErrVariableOutOfRange indicates a variable index outside [0, n).
	ErrVariableOutOfRange = errors.New("marginal: variable index out of range")

	// ErrPrecVarOutOfRange indicates a precision-variable index outside [0, K).
	ErrPrecVarOutOfRange = errors.New("marginal: precision variable index out of range")
)
