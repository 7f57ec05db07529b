// SPDX-License-Identifier: MIT

// Package simplex solves linear programs with the tableau simplex method.
//
// The package is split the way a hand calculation is:
//
//   - Build turns an lp.Problem into a Tableau: one row per constraint plus
//     the objective row (last), columns for decision, slack and artificial
//     variables, and the right-hand side (last column).
//   - The pivot engine (PivotColumn, PivotRow, Pivot) performs one
//     Gauss-Jordan exchange at a time on the flat row-major buffer.
//   - Solve drives the engine to a terminal status and extracts the point.
//
// Two methods are available:
//
//	BigM     — artificial variables carry penalty M in a single objective row
//	           (default, M = 1000). Simple, but a poorly scaled M can give
//	           wrong verdicts on problems with large coefficients. An
//	           infeasible problem can also come back Unbounded: the ratio
//	           test fails while an artificial is still basic at a positive
//	           level, before the penalty has driven it out. Use TwoPhase
//	           when the infeasible/unbounded distinction matters.
//	TwoPhase — phase 1 minimizes the sum of artificials, phase 2 optimizes the
//	           real objective with artificial columns blocked.
//
// Minimization is handled by negating the objective and maximizing.
// Constraints with a negative right-hand side are multiplied by −1 and their
// relation flipped before columns are assigned.
//
// Pivoting rule: Dantzig (most negative reduced cost, first occurrence on
// ties) with the minimum-ratio test (first occurrence on ties). There is no
// anti-cycling rule; a degenerate cycle ends at Options.MaxIterations with
// Status NotConverged.
//
// Complexity: each pivot is O(m·n) on an (m+1)×(n+1) tableau.
package simplex
