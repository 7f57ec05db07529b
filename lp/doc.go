// SPDX-License-Identifier: MIT

// Package lp defines the linear-program data model shared by the lvopt solvers.
//
// A Problem is an objective (Maximize or Minimize over Objective·x) and an
// ordered list of Constraints (Coefficients·x Relation RHS), with the implicit
// restriction x ≥ 0 on every decision variable. The simplex, duality,
// graphical and branchbound packages all consume this one type, so a
// calculator can hand the same Problem to any of them.
//
// Terminal outcomes of a solve are Status values inside Solution, not errors:
//
//	Optimal      — Values and Objective are meaningful.
//	Infeasible   — no x satisfies every constraint.
//	Unbounded    — the objective improves without limit.
//	NotConverged — the iteration cap was reached first.
//
// Errors are reserved for malformed input (ErrInvalidDimension, ErrNaNInf, …).
package lp
