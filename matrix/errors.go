// SPDX-License-Identifier: MIT

// Package matrix: sentinel error set.
// Every message is prefixed with "matrix: ..." for consistency. Callers match
// with errors.Is; call sites wrap with fmt.Errorf("ctx: %w", ErrX).

package matrix

import "errors"

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrRagged signals that the rows of a [][]float64 input differ in length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. a per-agent vector whose length differs from the row count.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrNaN signals a NaN cost. NaN has no ordering and cannot be assigned.
	ErrNaN = errors.New("matrix: NaN encountered")

	// ErrNonFinite signals ±Inf where only finite values are allowed.
	ErrNonFinite = errors.New("matrix: non-finite value")

	// ErrNegativeCost signals a cost below zero (including -Inf).
	ErrNegativeCost = errors.New("matrix: negative cost")

	// ErrCostOverflow signals finite costs too large for a sentinel above
	// every feasible total (see MaxCostSum).
	ErrCostOverflow = errors.New("matrix: cost magnitude overflows the infeasible sentinel")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
