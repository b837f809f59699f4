package factor_test

import (
	"testing"

	"epfactor/factor"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoFactorRows() []factor.Row {
	return []factor.Row{
		{Vars: []int{0}, Coefs: []float64{1.0}},
		{Vars: []int{0, 1}, Coefs: []float64{1.0, 2.0}},
	}
}

func TestNew_ValidatesDimensions(t *testing.T) {
	_, err := factor.New(0, twoFactorRows())
	assert.ErrorIs(t, err, factor.ErrInvalidDimensions)
}

func TestNew_RejectsOutOfRangeVariable(t *testing.T) {
	rows := []factor.Row{{Vars: []int{5}, Coefs: []float64{1.0}}}
	_, err := factor.New(2, rows)
	assert.ErrorIs(t, err, factor.ErrVariableOutOfRange)
}

func TestNew_RejectsLengthMismatch(t *testing.T) {
	rows := []factor.Row{{Vars: []int{0, 1}, Coefs: []float64{1.0}}}
	_, err := factor.New(2, rows)
	assert.ErrorIs(t, err, factor.ErrRowLengthMismatch)
}

func TestNew_RejectsDuplicateVariable(t *testing.T) {
	rows := []factor.Row{{Vars: []int{0, 0}, Coefs: []float64{1.0, 2.0}}}
	_, err := factor.New(2, rows)
	assert.ErrorIs(t, err, factor.ErrDuplicateVariable)
}

func TestMessageRoundTrip(t *testing.T) {
	rep, err := factor.New(2, twoFactorRows())
	require.NoError(t, err)

	require.NoError(t, rep.SetMessage(1, 1, 0.5, 2.0))
	pi, beta, err := rep.Message(1, 1)
	require.NoError(t, err)
	assert.InDelta(t, 0.5, pi, 1e-12)
	assert.InDelta(t, 2.0, beta, 1e-12)

	vars, coefs, err := rep.Row(1)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, vars)
	assert.Equal(t, []float64{1.0, 2.0}, coefs)
}

func TestMessages_ReturnsLiveSlices(t *testing.T) {
	rep, err := factor.New(2, twoFactorRows())
	require.NoError(t, err)

	pi, _, err := rep.Messages(1)
	require.NoError(t, err)
	pi[0] = 7.0

	got, _, err := rep.Message(1, 0)
	require.NoError(t, err)
	assert.InDelta(t, 7.0, got, 1e-12)
}

func TestBivariatePrecision_RoundTrip(t *testing.T) {
	rows := []factor.Row{{Vars: []int{0}, Coefs: []float64{1.0}}}
	rep, err := factor.NewBivariatePrecision(1, 1, rows, []int{0})
	require.NoError(t, err)

	k, err := rep.PrecVar(0)
	require.NoError(t, err)
	assert.Equal(t, 0, k)

	require.NoError(t, rep.SetPrecisionMessage(0, 1.5, 2.5))
	a, c, err := rep.PrecisionMessage(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.5, a, 1e-12)
	assert.InDelta(t, 2.5, c, 1e-12)
}

func TestBivariateAccessors_RejectUnivariate(t *testing.T) {
	rep, err := factor.New(2, twoFactorRows())
	require.NoError(t, err)

	_, err = rep.PrecVar(0)
	assert.ErrorIs(t, err, factor.ErrNotBivariate)

	_, _, err = rep.PrecisionMessage(0)
	assert.ErrorIs(t, err, factor.ErrNotBivariate)

	err = rep.SetPrecisionMessage(0, 1, 1)
	assert.ErrorIs(t, err, factor.ErrNotBivariate)
}

func TestFactorOutOfRange(t *testing.T) {
	rep, err := factor.New(2, twoFactorRows())
	require.NoError(t, err)

	_, err = rep.RowSize(5)
	assert.ErrorIs(t, err, factor.ErrFactorOutOfRange)

	_, _, err = rep.Message(5, 0)
	assert.ErrorIs(t, err, factor.ErrFactorOutOfRange)

	_, _, err = rep.Message(1, 5)
	assert.ErrorIs(t, err, factor.ErrLocalIndexOutOfRange)
}
