package driver

import "errors"

// Sentinel errors for Driver construction and SequentialUpdate argument
// validation. These are construction-time / programmer-error failures,
// distinct from the Status taxonomy, which covers expected numerical
// outcomes.
var (
	// ErrNilFactors indicates a nil *factor.Representation was supplied.
	ErrNilFactors = errors.New("driver: factor representation is nil")

	// ErrNilMarginals indicates a nil *marginal.State was supplied.
	ErrNilMarginals = errors.New("driver: marginal state is nil")

	// ErrNilOracle indicates a nil oracle.Oracle was supplied.
	ErrNilOracle = errors.New("driver: oracle is nil")

	// ErrNonPositiveThreshold indicates piMin, aMin, or cMin was <= 0.
	ErrNonPositiveThreshold = errors.New("driver: threshold must be positive")

	// ErrModeMismatch indicates the factor representation's Mode() does not
	// match the driver construction mode requested (New vs NewBivariatePrecision).
	ErrModeMismatch = errors.New("driver: factor representation mode mismatch")

	// ErrDimensionMismatch indicates the factor representation and marginal
	// state disagree on NumVariables() or NumPrecVars().
	ErrDimensionMismatch = errors.New("driver: factor/marginal dimension mismatch")

	// ErrIndexDimensionMismatch indicates an optional MaxPrecisionIndex's
	// NumVariables() does not match the representation it is paired with.
	ErrIndexDimensionMismatch = errors.New("driver: index dimension mismatch")

	// ErrFactorOutOfRange indicates SequentialUpdate was called with a
	// factor index outside [0, m).
	ErrFactorOutOfRange = errors.New("driver: factor index out of range")

	// ErrOracleGroupMismatch indicates the oracle reports a Group for factor
	// j that does not match this driver's construction mode.
	ErrOracleGroupMismatch = errors.New("driver: oracle group does not match driver mode")

	// ErrBadDamping indicates the requested damping factor d is outside [0, 1).
	ErrBadDamping = errors.New("driver: damping must be in [0, 1)")
)
