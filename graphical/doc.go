// SPDX-License-Identifier: MIT

// Package graphical solves two-variable linear programs by corner-point
// enumeration, the "graphical method" taught before the simplex method.
//
// Candidate points, in discovery order:
//
//  1. the origin;
//  2. for every constraint line a₁x₁ + a₂x₂ = b, its x₂-axis intercept
//     (0, b/a₂) and its x₁-axis intercept (b/a₁, 0), skipping zero coefficients;
//  3. the intersection of every pair of constraint lines, found by solving the
//     2×2 system with gonum; nearly parallel pairs (|det| < DetTol) are skipped.
//
// A candidate is feasible when both coordinates are ≥ −Eps and every
// constraint holds within Eps. The optimum is the best objective value over
// feasible candidates; the first candidate reaching that value wins.
//
// A bounded optimum of a two-variable LP is always attained at a vertex, and
// every vertex is one of the candidates above. When the feasible region is
// unbounded in a direction that improves the objective, the status is
// lp.Unbounded instead; that check tests the boundary rays of the region
// (the two axes and both directions along every constraint line).
package graphical
