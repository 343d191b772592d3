package dispatch_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdispatch/dispatch"
	"github.com/katalvlaran/lvdispatch/matrix"
)

func TestExhaustive(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows(reference)
	require.NoError(t, err)
	assign, total, err := dispatch.Exhaustive(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 1, 2, 4}, assign)
	assert.Equal(t, 39.0, total)
}

func TestExhaustive_TiesKeepFirst(t *testing.T) {
	t.Parallel()

	m, err := matrix.NewFromRows([][]float64{{1, 1}, {1, 1}})
	require.NoError(t, err)
	assign, total, err := dispatch.Exhaustive(m)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, assign)
	assert.Equal(t, 2.0, total)
}

func TestExhaustive_Infeasible(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	m, err := matrix.NewFromRows([][]float64{{inf, 2}, {3, inf}})
	require.NoError(t, err)
	assign, total, err := dispatch.Exhaustive(m)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0}, assign)
	assert.Equal(t, 5.0, total)
}

func TestExhaustive_Rejects(t *testing.T) {
	t.Parallel()

	big, err := matrix.NewDense(dispatch.MaxExhaustive+1, dispatch.MaxExhaustive+1)
	require.NoError(t, err)
	_, _, err = dispatch.Exhaustive(big)
	require.ErrorIs(t, err, dispatch.ErrTooLarge)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, _, err = dispatch.Exhaustive(rect)
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	huge, err := matrix.NewFromRows([][]float64{{1 << 52, 1}, {1, 1 << 52}})
	require.NoError(t, err)
	_, _, err = dispatch.Exhaustive(huge)
	require.ErrorIs(t, err, matrix.ErrCostOverflow)
}
