package marginal_test

import (
	"testing"

	"epfactor/marginal"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Univariate(t *testing.T) {
	s, err := marginal.New(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, s.NumVariables())
	assert.Equal(t, 0, s.NumPrecVars())
	assert.Nil(t, s.APrec)
}

func TestNew_Bivariate(t *testing.T) {
	s, err := marginal.New(3, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, s.NumPrecVars())
}

func TestNew_RejectsBadDimensions(t *testing.T) {
	_, err := marginal.New(0, 0)
	assert.ErrorIs(t, err, marginal.ErrInvalidDimensions)

	_, err = marginal.New(1, -1)
	assert.ErrorIs(t, err, marginal.ErrInvalidDimensions)
}

func TestSetAt_RoundTrip(t *testing.T) {
	s, err := marginal.New(2, 1)
	require.NoError(t, err)

	require.NoError(t, s.Set(1, 3.0, 4.0))
	pi, beta, err := s.At(1)
	require.NoError(t, err)
	assert.InDelta(t, 3.0, pi, 1e-12)
	assert.InDelta(t, 4.0, beta, 1e-12)

	require.NoError(t, s.SetPrec(0, 1.0, 2.0))
	a, c, err := s.PrecAt(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, a, 1e-12)
	assert.InDelta(t, 2.0, c, 1e-12)
}

func TestOutOfRange(t *testing.T) {
	s, err := marginal.New(2, 1)
	require.NoError(t, err)

	_, _, err = s.At(5)
	assert.ErrorIs(t, err, marginal.ErrVariableOutOfRange)

	err = s.Set(-1, 0, 0)
	assert.ErrorIs(t, err, marginal.ErrVariableOutOfRange)

	_, _, err = s.PrecAt(5)
	assert.ErrorIs(t, err, marginal.ErrPrecVarOutOfRange)
}
