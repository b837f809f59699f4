package wire_test

import (
	"testing"

	"epfactor/factor"
	"epfactor/wire"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip_Univariate(t *testing.T) {
	rows := []factor.Row{
		{Vars: []int{0, 1}, Coefs: []float64{1.5, -2.0}},
		{Vars: []int{1, 2}, Coefs: []float64{0.25, 4.0}},
	}
	rep, err := factor.New(3, rows)
	require.NoError(t, err)
	require.NoError(t, rep.SetMessage(0, 0, 1.0, 2.0))
	require.NoError(t, rep.SetMessage(0, 1, 3.0, 4.0))
	require.NoError(t, rep.SetMessage(1, 0, 5.0, 6.0))
	require.NoError(t, rep.SetMessage(1, 1, 7.0, 8.0))

	data, err := wire.Encode(rep)
	require.NoError(t, err)

	got, err := wire.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, rep.NumVariables(), got.NumVariables())
	assert.Equal(t, rep.NumPotentials(), got.NumPotentials())
	assert.Equal(t, factor.Univariate, got.Mode())

	for j := 0; j < rep.NumPotentials(); j++ {
		wantVars, wantCoefs, _ := rep.Row(j)
		gotVars, gotCoefs, _ := got.Row(j)
		assert.Equal(t, wantVars, gotVars)
		assert.Equal(t, wantCoefs, gotCoefs)

		for ii := range wantVars {
			wantPi, wantBeta, _ := rep.Message(j, ii)
			gotPi, gotBeta, _ := got.Message(j, ii)
			assert.InDelta(t, wantPi, gotPi, 1e-12)
			assert.InDelta(t, wantBeta, gotBeta, 1e-12)
		}
	}
}

func TestRoundTrip_BivariatePrecision(t *testing.T) {
	rows := []factor.Row{
		{Vars: []int{0}, Coefs: []float64{1.0}},
		{Vars: []int{1}, Coefs: []float64{2.0}},
	}
	rep, err := factor.NewBivariatePrecision(2, 1, rows, []int{0, 0})
	require.NoError(t, err)
	require.NoError(t, rep.SetMessage(0, 0, 1.0, 2.0))
	require.NoError(t, rep.SetMessage(1, 0, 3.0, 4.0))
	require.NoError(t, rep.SetPrecisionMessage(0, 0.5, 1.5))
	require.NoError(t, rep.SetPrecisionMessage(1, 0.25, 0.75))

	data, err := wire.Encode(rep)
	require.NoError(t, err)

	got, err := wire.Decode(data)
	require.NoError(t, err)

	assert.Equal(t, factor.BivariatePrecision, got.Mode())
	assert.Equal(t, rep.NumPrecVars(), got.NumPrecVars())

	for j := 0; j < rep.NumPotentials(); j++ {
		wantK, _ := rep.PrecVar(j)
		gotK, _ := got.PrecVar(j)
		assert.Equal(t, wantK, gotK)

		wantA, wantC, _ := rep.PrecisionMessage(j)
		gotA, gotC, _ := got.PrecisionMessage(j)
		assert.InDelta(t, wantA, gotA, 1e-12)
		assert.InDelta(t, wantC, gotC, 1e-12)
	}
}

func TestDecode_TruncatedStream(t *testing.T) {
	_, err := wire.Decode([]byte{1, 2, 3})
	assert.ErrorIs(t, err, wire.ErrTruncated)
}

func TestDecode_UnknownMode(t *testing.T) {
	rows := []factor.Row{{Vars: []int{0}, Coefs: []float64{1.0}}}
	rep, err := factor.New(1, rows)
	require.NoError(t, err)
	data, err := wire.Encode(rep)
	require.NoError(t, err)

	// Mode tag is the second int32 field (bytes 4:8); corrupt it.
	data[4] = 7

	_, err = wire.Decode(data)
	assert.ErrorIs(t, err, wire.ErrUnknownMode)
}
