// SPDX-License-Identifier: MIT

// Package matrix - shape transforms and cost-policy helpers.
//
// Every function here returns a NEW matrix (or a scalar) and leaves its
// arguments untouched. The single exception is ReplaceInfInPlace, which is
// named for what it does.

package matrix

import (
	"fmt"
	"math"
)

// AsDense returns a *Dense copy of m. A *Dense input is cloned; any other
// Matrix implementation is read cell by cell.
// Complexity: O(r*c).
func AsDense(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*Dense); ok {
		return d.CloneDense(), nil
	}
	out, err := NewDense(m.Rows(), m.Cols())
	if err != nil {
		return nil, err
	}
	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, err
			}
			out.data[i*out.c+j] = v
		}
	}

	return out, nil
}

// Transpose returns mᵀ as a new Dense.
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	src, err := AsDense(m)
	if err != nil {
		return nil, err
	}
	out := &Dense{r: src.c, c: src.r, data: make([]float64, len(src.data))}
	var i, j int
	for i = 0; i < src.r; i++ {
		for j = 0; j < src.c; j++ {
			out.data[j*out.c+i] = src.data[i*src.c+j]
		}
	}

	return out, nil
}

// Pad returns an n×n copy of m with every cell outside the original shape
// set to fill. Use +Inf as fill to mark dummy agents/targets infeasible, or the
// observed maximum when the caller wants a finite filler from the start.
//
// Errors: ErrDimensionMismatch if n is smaller than either dimension of m.
// Complexity: O(n²).
func Pad(m Matrix, n int, fill float64) (*Dense, error) {
	src, err := AsDense(m)
	if err != nil {
		return nil, err
	}
	if n < src.r || n < src.c {
		return nil, fmt.Errorf("Pad(%d) of %dx%d: %w", n, src.r, src.c, ErrDimensionMismatch)
	}
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i < src.r && j < src.c {
				out.data[i*n+j] = src.data[i*src.c+j]
			} else {
				out.data[i*n+j] = fill
			}
		}
	}

	return out, nil
}

// MaxFinite returns the largest finite value of m and whether one exists.
// Complexity: O(r*c).
func MaxFinite(m *Dense) (float64, bool) {
	var (
		best  = math.Inf(-1)
		found bool
	)
	for _, v := range m.data {
		if math.IsInf(v, 0) || math.IsNaN(v) {
			continue
		}
		if !found || v > best {
			best, found = v, true
		}
	}

	return best, found
}

// MaxCostSum bounds the sum of per-row finite maxima accepted by
// InfeasibleCost. Up to 2^53 every integer is exact in a float64, so the
// sentinel stays strictly above any feasible total and the reduction
// arithmetic on it stays finite.
const MaxCostSum = 1 << 53

// InfeasibleCost computes the finite sentinel that stands in for +Inf.
//
// The value is Σ_i max_j{finite m[i][j]} + 1: any assignment made only of
// feasible cells costs less than a single sentinel cell, so a solver working
// on finite numbers never prefers an infeasible pairing it can avoid.
// Rows without a finite value contribute nothing. Costs are assumed
// non-negative (see ValidateCosts).
//
// Errors: ErrNilMatrix, ErrCostOverflow when the sum reaches MaxCostSum.
// Complexity: O(r*c).
func InfeasibleCost(m *Dense) (float64, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	var (
		sum  float64
		i, j int
	)
	for i = 0; i < m.r; i++ {
		rowMax, found := 0.0, false
		for j = 0; j < m.c; j++ {
			v := m.data[i*m.c+j]
			if math.IsInf(v, 0) || math.IsNaN(v) {
				continue
			}
			if !found || v > rowMax {
				rowMax, found = v, true
			}
		}
		if found {
			sum += rowMax
		}
	}
	if sum >= MaxCostSum {
		return 0, fmt.Errorf("InfeasibleCost: row maxima sum to %g: %w", sum, ErrCostOverflow)
	}

	return sum + 1, nil
}

// CountInf returns the number of ±Inf cells of m.
func CountInf(m *Dense) int {
	var n int
	for _, v := range m.data {
		if math.IsInf(v, 0) {
			n++
		}
	}

	return n
}

// ReplaceInf returns a copy of m with every ±Inf cell replaced by v.
// Complexity: O(r*c).
func ReplaceInf(m Matrix, v float64) (*Dense, error) {
	out, err := AsDense(m)
	if err != nil {
		return nil, err
	}
	ReplaceInfInPlace(out, v)

	return out, nil
}

// ReplaceInfInPlace overwrites every ±Inf cell of m with v and returns the
// number of cells it replaced.
func ReplaceInfInPlace(m *Dense, v float64) int {
	var n int
	for k := range m.data {
		if math.IsInf(m.data[k], 0) {
			m.data[k] = v
			n++
		}
	}

	return n
}

// Round rounds v to the given number of decimal places (half away from zero).
// places < 0 disables rounding.
func Round(v float64, places int) float64 {
	if places < 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return v
	}
	p := math.Pow(10, float64(places))

	return math.Round(v*p) / p
}

// IsPermutation reports whether d is a 0/1 matrix with at most one 1 in every
// row and column. With full=true every row must also hold exactly one 1.
// Complexity: O(r*c).
func IsPermutation(d *Dense, full bool) bool {
	if d == nil {
		return false
	}
	var (
		colUsed = make([]bool, d.c)
		i, j    int
	)
	for i = 0; i < d.r; i++ {
		ones := 0
		for j = 0; j < d.c; j++ {
			switch d.data[i*d.c+j] {
			case 0:
			case 1:
				if colUsed[j] {
					return false
				}
				colUsed[j] = true
				ones++
			default:
				return false
			}
		}
		if ones > 1 || (full && ones == 0) {
			return false
		}
	}

	return true
}

// Assignment reads a 0/1 dispatch matrix back into row→column form:
// out[i] is the column holding row i's 1, or -1 when the row has none.
// Complexity: O(r*c).
func Assignment(d *Dense) []int {
	out := make([]int, d.r)
	var i, j int
	for i = 0; i < d.r; i++ {
		out[i] = -1
		for j = 0; j < d.c; j++ {
			if d.data[i*d.c+j] == 1 {
				out[i] = j
				break
			}
		}
	}

	return out
}

// DispatchFromAssignment builds an n×n 0/1 matrix from a row→column slice;
// negative entries leave their row empty.
//
// Errors: ErrOutOfRange for a column outside [0, n).
func DispatchFromAssignment(n int, assign []int) (*Dense, error) {
	out, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	if len(assign) > n {
		return nil, fmt.Errorf("DispatchFromAssignment: %d rows for n=%d: %w", len(assign), n, ErrDimensionMismatch)
	}
	for i, j := range assign {
		if j < 0 {
			continue
		}
		if j >= n {
			return nil, denseErrorf(ctxSet, i, j, ErrOutOfRange)
		}
		out.data[i*n+j] = 1
	}

	return out, nil
}
