package wire

import "errors"

// Errors returned by Decode when the byte stream is malformed or internally
// inconsistent. When the decoded fields fail factor.Representation's own
// construction checks, Decode instead returns that factor error, wrapped.
var (
	// ErrTruncated indicates the byte stream ended before a required field.
	ErrTruncated = errors.New("wire: truncated stream")

	// ErrUnknownMode indicates the mode tag was neither 0 (univariate) nor
	// 1 (bivariate-precision).
	ErrUnknownMode = errors.New("wire: unknown mode tag")

	// ErrNegativeLength indicates a row length, n, m, or k field decoded as
	// negative.
	ErrNegativeLength = errors.New("wire: negative length field")
)
