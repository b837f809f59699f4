package maxprec_test

import (
	"math"
	"math/rand"
	"testing"

	"epfactor/maxprec"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_RejectsBadDimensions(t *testing.T) {
	_, err := maxprec.New(0)
	assert.ErrorIs(t, err, maxprec.ErrInvalidDimensions)
}

func TestMax_EmptyIsError(t *testing.T) {
	idx, err := maxprec.New(2)
	require.NoError(t, err)

	_, err = idx.Max(0)
	assert.ErrorIs(t, err, maxprec.ErrEmpty)
}

func TestUpdate_InsertsThenTracksMax(t *testing.T) {
	idx, err := maxprec.New(1)
	require.NoError(t, err)

	require.NoError(t, idx.Update(0, 10, 5.0))
	require.NoError(t, idx.Update(0, 11, 8.0))
	require.NoError(t, idx.Update(0, 12, 3.0))

	got, err := idx.Max(0)
	require.NoError(t, err)
	assert.InDelta(t, 8.0, got, 1e-12)
}

func TestUpdate_DecreaseAndIncreaseKey(t *testing.T) {
	idx, err := maxprec.New(1)
	require.NoError(t, err)

	require.NoError(t, idx.Update(0, 1, 10.0))
	require.NoError(t, idx.Update(0, 2, 1.0))

	// Decrease the current maximum below the other entry.
	require.NoError(t, idx.Update(0, 1, 0.5))
	got, err := idx.Max(0)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, got, 1e-12)

	// Increase it back above.
	require.NoError(t, idx.Update(0, 1, 99.0))
	got, err = idx.Max(0)
	require.NoError(t, err)
	assert.InDelta(t, 99.0, got, 1e-12)
}

func TestUpdate_OutOfRangeVariable(t *testing.T) {
	idx, err := maxprec.New(1)
	require.NoError(t, err)
	assert.ErrorIs(t, idx.Update(5, 0, 1.0), maxprec.ErrVariableOutOfRange)

	_, err = idx.Max(5)
	assert.ErrorIs(t, err, maxprec.ErrVariableOutOfRange)
}

// TestMax_MatchesBruteForce is a property test: after a random sequence of
// updates, Max(i) must equal the brute-force maximum over all recorded
// factors for that variable.
func TestMax_MatchesBruteForce(t *testing.T) {
	idx, err := maxprec.New(1)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(7))
	brute := make(map[int]float64)
	const numFactors = 20
	for step := 0; step < 500; step++ {
		j := r.Intn(numFactors)
		v := r.Float64()*200 - 100
		brute[j] = v
		require.NoError(t, idx.Update(0, j, v))

		want := math.Inf(-1)
		for _, vv := range brute {
			if vv > want {
				want = vv
			}
		}
		got, err := idx.Max(0)
		require.NoError(t, err)
		assert.InDelta(t, want, got, 1e-9)
	}
}
