// Package tba implements the TBA dispatch builder, a marking heuristic that
// makes no optimality claim.
//
// A position matrix of the same shape as the cost matrix records which cells
// are marked:
//
//  1. Mark the cheapest cell of every column and of every row, unless that
//     cell is infeasible.
//  2. Compute a maximum matching over the marked cells and its König cover.
//     Stop once the matching is as large as a maximum matching over all
//     feasible cells (n on a fully feasible matrix).
//  3. Otherwise mark the cheapest unmarked cell that the cover leaves
//     uncovered, and go back to 2.
//  4. Read the dispatch off the marks by cost: the cheapest perfect
//     matching over marked and infeasible cells, solved by hungarian.
//
// The cell marked in step 3 is always feasible, so the loop ends after at
// most n² marks. Step 4 keeps every pair step 2 could reach and spends
// infeasible cells only on rows no marked cell can serve.
//
// +Inf cells are replaced by matrix.InfeasibleCost before marking.
//
// Trace: "tba mark" at Debug level for every mark added after step 1.
package tba
