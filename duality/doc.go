// SPDX-License-Identifier: MIT

// Package duality builds and solves the dual of a linear program.
//
// For a primal over x ≥ 0 with m constraints, the dual has one variable yᵢ per
// primal constraint and one constraint per primal variable:
//
//	primal max c·x, A x (≤|≥|=) b   →   dual min b·y, Aᵀy ≥ c
//	primal min c·x, A x (≤|≥|=) b   →   dual max b·y, Aᵀy ≤ c
//
// Sign restrictions on yᵢ follow the relation of primal row i:
//
//	primal max:  ≤ → yᵢ ≥ 0,  ≥ → yᵢ ≤ 0,  = → yᵢ free
//	primal min:  ≤ → yᵢ ≤ 0,  ≥ → yᵢ ≥ 0,  = → yᵢ free
//
// SolvePair solves both problems with the simplex package. Because the
// simplex tableau assumes non-negative variables, a y ≤ 0 variable is solved
// as y = −y′ and a free one as y = y⁺ − y⁻; values are mapped back before
// they are returned.
package duality
