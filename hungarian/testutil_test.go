package hungarian_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvdispatch/matrix"
)

// seedDet keeps random matrices reproducible across runs.
const seedDet = 20240611

// reference is the classic 5×5 worked example; its optimum is 39.
var reference = [][]float64{
	{10, 13, 3, 18, 11},
	{5, 19, 2, 9, 6},
	{9, 6, 4, 12, 14},
	{18, 12, 4, 17, 19},
	{11, 14, 5, 15, 10},
}

func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewFromRows(rows)
	require.NoError(t, err)

	return m
}

func randomCost(rng *rand.Rand, n, maxCost int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = float64(rng.Intn(maxCost + 1))
		}
	}

	return rows
}

// bruteForce returns the cheapest total over all permutations.
func bruteForce(cost [][]float64) float64 {
	n := len(cost)
	perm := make([]int, n)
	used := make([]bool, n)
	best := -1.0
	var walk func(i int, sum float64)
	walk = func(i int, sum float64) {
		if best >= 0 && sum >= best {
			return
		}
		if i == n {
			best = sum
			return
		}
		for j := 0; j < n; j++ {
			if used[j] {
				continue
			}
			used[j], perm[i] = true, j
			walk(i+1, sum+cost[i][j])
			used[j] = false
		}
	}
	walk(0, 0)

	return best
}

// zeroPattern is a 0/1 cost matrix: 0 at the given cells, 1 elsewhere.
func zeroPattern(n int, cells [][2]int) [][]float64 {
	rows := make([][]float64, n)
	for i := range rows {
		rows[i] = make([]float64, n)
		for j := range rows[i] {
			rows[i][j] = 1
		}
	}
	for _, c := range cells {
		rows[c[0]][c[1]] = 0
	}

	return rows
}

// greedyTrap has a perfect matching on its zeros that the frequency
// heuristic misses: it stops after five selections.
var greedyTrap = [][2]int{
	{0, 0}, {0, 4}, {0, 5},
	{1, 0}, {1, 2}, {1, 3}, {1, 4}, {1, 5},
	{2, 1}, {2, 5},
	{3, 2},
	{4, 1}, {4, 3},
	{5, 1}, {5, 2}, {5, 3},
}
