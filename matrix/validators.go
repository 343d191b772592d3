// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the input checks every
//    solver runs before reduction begins.
//  - Return sentinel errors wrapped with the validator tag so errors.Is works
//    at every call site.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil, including a typed
// nil *Dense hidden inside the interface.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is non-nil and square (Rows == Cols).
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateCosts scans every cell of a cost matrix:
//   - NaN            -> ErrNaN
//   - value < 0      -> ErrNegativeCost (this includes -Inf)
//   - +Inf           -> accepted, it marks an infeasible pairing
//
// The first offending cell is reported in the error message.
// Complexity: O(r*c).
func ValidateCosts(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateCosts", err)
			}
			if math.IsNaN(v) {
				return validatorErrorf(fmt.Sprintf("ValidateCosts(%d,%d)", i, j), ErrNaN)
			}
			if v < 0 {
				return validatorErrorf(fmt.Sprintf("ValidateCosts(%d,%d)", i, j), ErrNegativeCost)
			}
		}
	}

	return nil
}

// ValidateFinite rejects any NaN or ±Inf cell. Solvers that do arithmetic on
// every cell call it after the infeasible sentinel has been substituted.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNaN)
			}
			if math.IsInf(v, 0) {
				return validatorErrorf(fmt.Sprintf("ValidateFinite(%d,%d)", i, j), ErrNonFinite)
			}
		}
	}

	return nil
}

// ValidateVecLen ensures a per-row vector (e.g. battery levels) has exactly n entries.
// Complexity: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(fmt.Sprintf("ValidateVecLen(len=%d,want=%d)", len(x), n), ErrDimensionMismatch)
	}

	return nil
}
