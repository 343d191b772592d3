// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrices that flow through the
// dispatch pipeline: agent×target cost matrices on the way in and 0/1
// dispatch matrices on the way out.
//
// Conventions:
//
//   - Indexing is agent-major: m[i][j] is the cost of sending agent i to target j.
//   - +Inf marks an infeasible pairing. NaN and negative costs are rejected by
//     ValidateCosts; solvers call it before touching the data.
//   - Rectangular inputs are squared with Pad, and +Inf is replaced by a finite
//     sentinel (InfeasibleCost) before any arithmetic, so NaN never appears.
//   - Transforms (Transpose, Pad, ReplaceInf) return new matrices. Only the
//     explicit in-place helpers documented as such mutate their argument.
//
// Errors are package-level sentinels (errors.go) and must be matched with
// errors.Is; wrappers add the call site, never replace the sentinel.
//
// Interop: FromMat and (*Dense).ToMat convert to and from gonum's mat.Dense.
package matrix
