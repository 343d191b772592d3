// Package dispatch is the entry point for solving agent→target assignments.
//
// Solve accepts a rectangular [agent][target] cost matrix in which +Inf marks
// an unreachable pair, and runs:
//
//  1. validation (no NaN, no negative cost, rectangular rows);
//  2. the battery-aware transform when WithBattery is given;
//  3. padding to max(agents, targets) with +Inf; every builder prices +Inf
//     at matrix.InfeasibleCost, and costs whose row maxima sum to
//     matrix.MaxCostSum or more are rejected with matrix.ErrCostOverflow;
//  4. the selected builder: AlgorithmHBA (hungarian), AlgorithmTBA (tba) or
//     AlgorithmExhaustive (permutation search, small n only);
//  5. trimming: dummy agents are dropped, and an agent whose target is a
//     dummy or an infeasible pair gets -1.
//
// Result.Cost sums the raw costs of the pairs kept in Result.Assignment.
//
// SolveBatch fans independent problems out over an ants worker pool. Each
// problem gets its own copies of every matrix.
//
// Telemetry: Solve starts an OpenTelemetry span "lvdispatch.solve" (child
// spans of "lvdispatch.batch" under SolveBatch) and records the counter
// "lvdispatch.solves" and the histogram "lvdispatch.cost". Both default to
// the global otel providers, which are no-ops unless the application
// installs real ones.
package dispatch
