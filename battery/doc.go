// Package battery remaps a cost matrix so that agents left with more charge
// after the move look cheaper to the dispatch builders.
//
// For agent i with level b[i] and cost c[i][j]:
//
//	remaining[i][j]   = b[i] - c[i][j]
//	transformed[i][j] = max(finite remaining) - remaining[i][j]
//
// Infeasible (+Inf) cells stay +Inf. The result is non-negative, and for two
// agents with identical distances the one with more charge is strictly
// cheaper on every feasible target.
package battery
