package hungarian_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/katalvlaran/lvdispatch/hungarian"
	"github.com/katalvlaran/lvdispatch/matrix"
)

func TestSolve_Reference(t *testing.T) {
	t.Parallel()

	res, err := hungarian.Solve(mustDense(t, reference))
	require.NoError(t, err)
	assert.Equal(t, 39.0, res.Cost)
	assert.Equal(t, []int{0, 3, 1, 2, 4}, res.Assignment)
	assert.Equal(t, 2, res.Iterations)
	assert.LessOrEqual(t, res.Iterations, 5)
	assert.False(t, res.Repaired)
	assert.True(t, matrix.IsPermutation(res.Dispatch, true))
}

func TestSolve_Small(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		rows   [][]float64
		assign []int
		cost   float64
	}{
		{"diagonal", [][]float64{{1, 2}, {2, 1}}, []int{0, 1}, 2},
		{"anti-diagonal", [][]float64{{5, 1}, {1, 5}}, []int{1, 0}, 2},
		{"single", [][]float64{{7}}, []int{0}, 7},
		{"all equal", [][]float64{{3, 3}, {3, 3}}, nil, 6},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			res, err := hungarian.Solve(mustDense(t, tc.rows))
			require.NoError(t, err)
			assert.Equal(t, tc.cost, res.Cost)
			if tc.assign != nil {
				assert.Equal(t, tc.assign, res.Assignment)
			}
			assert.True(t, matrix.IsPermutation(res.Dispatch, true))
		})
	}
}

func TestSolve_MatchesBruteForce(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(seedDet + 3))
	modes := []hungarian.SelectionMode{hungarian.SelectionFrequency, hungarian.SelectionMatching}
	var trial int
	for trial = 0; trial < 300; trial++ {
		n := 1 + rng.Intn(5)
		rows := randomCost(rng, n, 20)
		want := bruteForce(rows)
		for _, mode := range modes {
			res, err := hungarian.Solve(mustDense(t, rows), hungarian.WithSelection(mode))
			require.NoErrorf(t, err, "trial %d %v: %v", trial, mode, rows)
			require.Truef(t, matrix.IsPermutation(res.Dispatch, true), "trial %d: not a permutation", trial)
			require.Equalf(t, want, res.Cost, "trial %d %v: %v", trial, mode, rows)
		}
	}
}

func TestSolve_FractionalCosts(t *testing.T) {
	t.Parallel()

	rows := [][]float64{
		{1.25, 3.5, 2.75},
		{2.5, 0.75, 4.0},
		{3.25, 2.0, 1.5},
	}
	res, err := hungarian.Solve(mustDense(t, rows))
	require.NoError(t, err)
	assert.InDelta(t, 3.5, res.Cost, 1e-9)
	assert.Equal(t, []int{0, 1, 2}, res.Assignment)
}

func TestSolve_Infeasible(t *testing.T) {
	t.Parallel()

	inf := math.Inf(1)
	rows := [][]float64{
		{inf, 1, 9},
		{2, inf, 9},
		{inf, inf, 3},
	}
	in := mustDense(t, rows)
	res, err := hungarian.Solve(in)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Assignment)
	assert.Equal(t, 6.0, res.Cost)
	assert.True(t, math.IsInf(in.ToRows()[0][0], 1), "caller matrix must not change")
}

func TestSolve_ForcedInfeasiblePair(t *testing.T) {
	t.Parallel()

	// Row 1 has no feasible target other than column 0, which row 0 also needs.
	inf := math.Inf(1)
	res, err := hungarian.Solve(mustDense(t, [][]float64{{1, inf}, {2, inf}}))
	require.NoError(t, err)
	assert.True(t, matrix.IsPermutation(res.Dispatch, true))
	// Sentinel = (1 + 2) + 1 = 4; the cheaper feasible pair is kept.
	assert.Equal(t, []int{0, 1}, res.Assignment)
	assert.Equal(t, 5.0, res.Cost)
}

func TestSolve_Repair(t *testing.T) {
	t.Parallel()

	m := mustDense(t, zeroPattern(6, greedyTrap))

	res, err := hungarian.Solve(m)
	require.NoError(t, err)
	assert.True(t, res.Repaired)
	assert.Equal(t, 0.0, res.Cost)
	assert.True(t, matrix.IsPermutation(res.Dispatch, true))

	_, err = hungarian.Solve(m, hungarian.WithSelection(hungarian.SelectionFrequencyStrict))
	require.ErrorIs(t, err, hungarian.ErrIncompleteSelection)

	res, err = hungarian.Solve(m, hungarian.WithSelection(hungarian.SelectionMatching))
	require.NoError(t, err)
	assert.False(t, res.Repaired)
	assert.Equal(t, 0.0, res.Cost)
}

func TestSolve_Rejects(t *testing.T) {
	t.Parallel()

	_, err := hungarian.Solve(nil)
	require.ErrorIs(t, err, hungarian.ErrEmpty)

	var typedNil *matrix.Dense
	_, err = hungarian.Solve(typedNil)
	require.ErrorIs(t, err, hungarian.ErrEmpty)

	_, err = hungarian.Solve(mustDense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = hungarian.Solve(mustDense(t, [][]float64{{1, math.NaN()}, {1, 1}}))
	require.ErrorIs(t, err, matrix.ErrNaN)

	_, err = hungarian.Solve(mustDense(t, [][]float64{{1, -1}, {1, 1}}))
	require.ErrorIs(t, err, matrix.ErrNegativeCost)

	_, err = hungarian.HBA(nil)
	require.ErrorIs(t, err, hungarian.ErrEmpty)

	_, err = hungarian.Solve(mustDense(t, [][]float64{{math.MaxFloat64, math.Inf(1)}, {math.MaxFloat64, 1}}))
	require.ErrorIs(t, err, matrix.ErrCostOverflow)
}

func TestHBA(t *testing.T) {
	t.Parallel()

	d, err := hungarian.HBA(mustDense(t, [][]float64{{1, 2}, {2, 1}}))
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 0}, {0, 1}}, d.ToRows())
}

func TestSolve_Trace(t *testing.T) {
	t.Parallel()

	core, logs := observer.New(zap.DebugLevel)
	_, err := hungarian.Solve(mustDense(t, reference), hungarian.WithLogger(zap.New(core)))
	require.NoError(t, err)

	for _, msg := range []string{"row reduction", "column reduction", "lines", "uncovered min", "matrix adjusted", "zero selected"} {
		assert.NotZerof(t, logs.FilterMessage(msg).Len(), "missing %q", msg)
	}
	assert.Equal(t, 5, logs.FilterMessage("zero selected").Len())
}

func TestOptions_Panics(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { hungarian.WithPrecision(-1) })
	assert.Panics(t, func() { hungarian.WithPrecision(16) })
	assert.Panics(t, func() { hungarian.WithMaxIterations(-1) })
	assert.Panics(t, func() { hungarian.WithSelection(hungarian.SelectionMode(9)) })
	assert.Equal(t, "matching", hungarian.SelectionMatching.String())
	assert.Equal(t, "unknown", hungarian.SelectionMode(9).String())

	o := hungarian.DefaultOptions()
	assert.Equal(t, hungarian.DefaultPrecision, o.Precision)
	assert.Equal(t, hungarian.SelectionFrequency, o.Selection)
	assert.NotNil(t, o.Logger)
}
