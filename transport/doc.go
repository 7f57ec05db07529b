// SPDX-License-Identifier: MIT

// Package transport builds initial basic feasible solutions for the balanced
// transportation problem: ship Supply[i] units out of every source and
// Demand[j] units into every destination at minimum Σ Costs[i][j]·x[i][j].
//
// Two classic constructions are provided:
//
//	NorthwestCornerAllocation: fill cells from the top-left corner, ignoring costs.
//	LeastCostAllocation:       repeatedly fill the cheapest open cell (first on ties).
//
// Solve runs both and reports them ordered by total cost; the cheaper one is
// Result.Best. Neither construction is guaranteed optimal: no MODI/stepping
// stone improvement is applied.
//
// Quantities below Options.Eps (default 1e-4) count as exhausted.
package transport
