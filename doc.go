// SPDX-License-Identifier: MIT

// Package lvopt is a toolbox of classic operations-research solvers, written
// for learning: every result carries enough intermediate state (tableaux,
// candidate points, DP tables, search trees) to show how it was reached.
//
// 🚀 What is inside?
//
//	lp/          — the shared linear-program model (Sense, Relation, Problem, Solution)
//	simplex/     — tableau simplex with Big-M (default) or two-phase start
//	duality/     — primal → dual transformation, paired solve, duality checks
//	graphical/   — corner-point enumeration for two-variable programs
//	branchbound/ — depth-first branch-and-bound over simplex relaxations
//	knapsack/    — 0/1 knapsack by dynamic programming
//	tsp/         — nearest-neighbor tours with an optional 2-opt pass
//	transport/   — northwest-corner and least-cost initial allocations
//	matrix/      — flat row-major Dense storage the solvers share
//	numparse/    — strict calculator text → number parsing
//	worksheet/   — YAML/JSON problem sheets, solver config and reports
//	cmd/optcalc  — command-line front end over worksheet
//
// ✨ Conventions
//
//   - Pure Go; gonum backs the small linear-algebra and vector work.
//   - Malformed input is an error (package sentinels, match with errors.Is);
//     infeasible, unbounded or unfinished solves are statuses, not errors.
//   - No package logs or panics on user input; only worksheet takes a logger.
//   - Every solver is synchronous and deterministic: ties break on the first
//     candidate in index order.
//
// Quick example:
//
//	max  3x1 + 2x2
//	s.t.  x1 +  x2 ≤ 4
//	      x1 + 3x2 ≤ 6
//
//	sol, _ := simplex.SolveProblem(p, simplex.DefaultOptions())
//	// sol.Status == lp.Optimal, sol.Values == [4 0], sol.Objective == 12
//
//	go install github.com/katalvlaran/lvopt/cmd/optcalc@latest
package lvopt
