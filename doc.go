// Package lvdispatch dispatches mobile agents to target positions at minimum
// total cost.
//
// The packages build on each other leaf-first:
//
//	matrix/    — row-major Dense cost matrices, validation, padding, the
//	             finite infeasible sentinel, gonum interop
//	bipartite/ — Hopcroft–Karp maximum matching and König minimum vertex cover
//	hungarian/ — row/column reduction, the line-cover adjustment loop, the
//	             frequency zero-selection heuristic and the HBA builder
//	tba/       — the TBA marking builder
//	battery/   — battery-aware cost remapping
//	dispatch/  — the entry point: rectangular input, +Inf for unreachable
//	             pairs, builder choice, batches on a worker pool, telemetry
//	log/       — zap loggers for the Debug-level trace side channel
//
// Quick start:
//
//	res, err := dispatch.Solve(ctx, cost)
//	// res.Assignment[agent] is a target index or dispatch.Unassigned.
//
// Every solve owns its matrices; nothing is shared between calls, so
// independent solves may run in parallel.
package lvdispatch
