package dispatch

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/katalvlaran/lvdispatch/matrix"
)

// MaxExhaustive bounds Exhaustive: 9! permutations is about 3.6e5.
const MaxExhaustive = 9

// Exhaustive returns the cheapest permutation of a square cost matrix and
// its total by enumerating all n! candidates. Ties keep the lexicographically
// first permutation. +Inf cells are priced at matrix.InfeasibleCost.
//
// Errors: matrix.ErrNilMatrix, matrix.ErrNonSquare, matrix.ErrNaN,
// matrix.ErrNegativeCost, matrix.ErrCostOverflow, ErrTooLarge.
// Complexity: O(n!·n).
func Exhaustive(cost matrix.Matrix) ([]int, float64, error) {
	if err := matrix.ValidateSquare(cost); err != nil {
		return nil, 0, err
	}
	if err := matrix.ValidateCosts(cost); err != nil {
		return nil, 0, err
	}
	n := cost.Rows()
	if n > MaxExhaustive {
		return nil, 0, fmt.Errorf("Exhaustive(%d): %w", n, ErrTooLarge)
	}
	m, err := matrix.AsDense(cost)
	if err != nil {
		return nil, 0, err
	}
	sentinel, err := matrix.InfeasibleCost(m)
	if err != nil {
		return nil, 0, err
	}
	matrix.ReplaceInfInPlace(m, sentinel)

	var (
		gen  = combin.NewPermutationGenerator(n, n)
		perm = make([]int, n)
		best []int
		low  = math.Inf(1)
	)
	for gen.Next() {
		gen.Permutation(perm)
		var sum float64
		for i, j := range perm {
			sum += m.RowView(i)[j]
		}
		if sum < low {
			low = sum
			best = append(best[:0], perm...)
		}
	}

	return best, low, nil
}
