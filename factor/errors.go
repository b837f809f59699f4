package factor

import "errors"

// Sentinel errors for factor.Representation construction and access.
var (
	// ErrInvalidDimensions indicates n (variables) is non-positive, or, for a
	// bivariate-precision Representation, K (precision variables) is non-positive.
	ErrInvalidDimensions = errors.New("factor: dimensions must be positive")

	// ErrRowLengthMismatch indicates a Row's Vars and Coefs slices differ in length.
	ErrRowLengthMismatch = errors.New("factor: row Vars/Coefs length mismatch")

	// ErrVariableOutOfRange indicates a Row references a variable index outside [0, n).
	ErrVariableOutOfRange = errors.New("factor: variable index out of range")

	// ErrDuplicateVariable indicates a Row references the same variable twice.
	ErrDuplicateVariable = errors.New("factor: duplicate variable in row support")

	// ErrFactorOutOfRange indicates a factor index j is outside [0, m).
	ErrFactorOutOfRange = errors.New("factor: factor index out of range")

	// ErrLocalIndexOutOfRange indicates ii is outside [0, s_j) for the addressed factor.
	ErrLocalIndexOutOfRange = errors.New("factor: local index out of range")

	// ErrNotBivariate indicates a bivariate-only accessor was called on a
	// univariate Representation.
	ErrNotBivariate = errors.New("factor: representation is not bivariate-precision")

	// ErrPrecVarOutOfRange indicates k(j) (or a direct precision-variable index)
	// falls outside [0, K).
	ErrPrecVarOutOfRange = errors.New("factor: precision variable index out of range")

	// ErrMissingPrecMap indicates a bivariate Representation was constructed
	// without a k(j) entry for every factor.
	ErrMissingPrecMap = errors.New("factor: missing k(j) map for bivariate representation")
)
