// Package hungarian implements the HBA dispatch solver: the Hungarian
// algorithm on a square agent×target cost matrix, followed by a
// frequency-driven choice of which zero cells become the assignment.
//
// Pipeline (Solve):
//
//  1. Validate: square, no NaN, no negative cost. +Inf marks an infeasible
//     pair and is replaced by matrix.InfeasibleCost before any arithmetic.
//  2. ReduceRows, then ReduceColumns: subtract each line's minimum finite
//     value. A line with fewer than two finite values is left alone.
//  3. ReduceWithLines: cover the zeros with the fewest lines (bipartite
//     König cover); while fewer than n lines are needed, subtract the
//     smallest uncovered value from uncovered cells and add it to cells
//     covered twice, rounding to Options precision (3 places by default).
//  4. FindZeros + SelectZeros: repeatedly take the row or column with the
//     fewest live zeros, select its zero with the cheapest original cost and
//     eliminate every zero sharing its row or column.
//  5. If the heuristic leaves a row unassigned, the assignment is extracted
//     as a maximum matching over the zero cells instead (SelectionFrequency,
//     the default). SelectionFrequencyStrict reports ErrIncompleteSelection
//     and SelectionMatching skips the heuristic altogether.
//
// Every zero of the converged matrix has reduced cost 0, so any perfect
// matching on them is an optimal assignment.
//
// Errors:
//
//   - ErrEmpty               – nil cost matrix.
//   - matrix.ErrNonSquare, matrix.ErrNaN, matrix.ErrNegativeCost – malformed input.
//   - ErrInvariant (*InvariantError) – the smallest uncovered value was 0,
//     meaning the line cover missed a zero. This is a bug, never bad input.
//   - ErrNoConvergence       – the adjustment loop hit its iteration guard.
//   - ErrIncompleteSelection – strict selection could not assign every row.
//
// Trace: with WithLogger and a logger at Debug level, every stage emits the
// matrix state ("row reduction", "column reduction", "lines", "uncovered min",
// "matrix adjusted", "zero selected", "selection repaired").
package hungarian
