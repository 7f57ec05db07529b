// SPDX-License-Identifier: MIT

package duality

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/simplex"
)

// SolvePair transforms primal, then solves the primal and the dual with the
// simplex package using opts for both.
//
// Errors: primal validation errors, invalid simplex options.
// Terminal statuses (infeasible, unbounded, …) are reported per problem.
func SolvePair(primal lp.Problem, opts simplex.Options) (Pair, error) {
	d, err := Transform(primal)
	if err != nil {
		return Pair{}, err
	}

	ps, err := simplex.SolveProblem(primal, opts)
	if err != nil {
		return Pair{}, fmt.Errorf("duality.SolvePair: primal: %w", err)
	}
	ds, err := d.Solve(opts)
	if err != nil {
		return Pair{}, fmt.Errorf("duality.SolvePair: dual: %w", err)
	}

	out := Pair{Primal: ps, Dual: ds, DualProblem: d}
	if out.BothOptimal() {
		out.Gap = math.Abs(ps.Objective - ds.Objective)
	}

	return out, nil
}

// Solve solves the dual with the simplex package after rewriting sign
// restrictions into non-negative variables. Values are returned in the
// original y coordinates.
func (d Dual) Solve(opts simplex.Options) (lp.Solution, error) {
	if len(d.Signs) != d.Problem.NumVars() {
		return lp.Solution{}, ErrSignMismatch
	}
	if len(d.Signs) == 0 {
		return d.solveEmpty(), nil
	}

	std, back := d.standardForm()
	sol, err := simplex.SolveProblem(std, opts)
	if err != nil {
		return lp.Solution{}, err
	}
	if sol.IsOptimal() {
		sol.Values = back(sol.Values)
	}

	return sol, nil
}

// solveEmpty handles a primal without constraints: the dual has no
// variables, so it is optimal at 0 iff every dual row holds at y = ∅.
func (d Dual) solveEmpty() lp.Solution {
	for _, c := range d.Problem.Constraints {
		if !c.Satisfied(nil, lp.DefaultEps) {
			return lp.Solution{Status: lp.Infeasible}
		}
	}

	return lp.Solution{Status: lp.Optimal, Values: []float64{}}
}

// standardForm substitutes y = −y′ for NonPositive and y = y⁺ − y⁻ for Free
// variables. The returned function maps a standard-form point back to y.
func (d Dual) standardForm() (lp.Problem, func([]float64) []float64) {
	// first[i] is the first standard-form column holding yᵢ.
	var (
		first = make([]int, len(d.Signs))
		width int
	)
	for i, s := range d.Signs {
		first[i] = width
		width++
		if s == Free {
			width++
		}
	}

	expand := func(v []float64) []float64 {
		out := make([]float64, width)
		for i, s := range d.Signs {
			switch s {
			case NonPositive:
				out[first[i]] = -v[i]
			case Free:
				out[first[i]] = v[i]
				out[first[i]+1] = -v[i]
			default:
				out[first[i]] = v[i]
			}
		}

		return out
	}

	std := lp.Problem{
		Sense:       d.Problem.Sense,
		Objective:   expand(d.Problem.Objective),
		Constraints: make([]lp.Constraint, len(d.Problem.Constraints)),
	}
	for j, c := range d.Problem.Constraints {
		std.Constraints[j] = lp.Constraint{
			Coefficients: expand(c.Coefficients),
			Relation:     c.Relation,
			RHS:          c.RHS,
		}
	}

	back := func(x []float64) []float64 {
		y := make([]float64, len(d.Signs))
		for i, s := range d.Signs {
			switch s {
			case NonPositive:
				y[i] = -x[first[i]]
			case Free:
				y[i] = x[first[i]] - x[first[i]+1]
			default:
				y[i] = x[first[i]]
			}
		}

		return y
	}

	return std, back
}

// Feasible reports whether y satisfies the dual constraints and sign
// restrictions within eps.
func (d Dual) Feasible(y []float64, eps float64) bool {
	if len(y) != len(d.Signs) || len(y) != d.Problem.NumVars() {
		return false
	}
	for i, s := range d.Signs {
		if (s == NonNegative && y[i] < -eps) || (s == NonPositive && y[i] > eps) {
			return false
		}
	}
	for _, c := range d.Problem.Constraints {
		if !c.Satisfied(y, eps) {
			return false
		}
	}

	return true
}

// WeakDualityHolds checks c·x ≤ b·y (primal max) or c·x ≥ b·y (primal min)
// within eps for a primal point x and a dual point y. Feasibility of the pair
// is the caller's responsibility.
//
// Errors: lp.ErrInvalidDimension when x or y has the wrong length.
func WeakDualityHolds(primal lp.Problem, x, y []float64, eps float64) (bool, error) {
	if len(x) != primal.NumVars() || len(y) != len(primal.Constraints) {
		return false, lp.ErrInvalidDimension
	}

	b := make([]float64, len(primal.Constraints))
	for i, c := range primal.Constraints {
		b[i] = c.RHS
	}
	var (
		cx = floats.Dot(primal.Objective, x)
		by = floats.Dot(b, y)
	)
	if primal.Sense == lp.Maximize {
		return cx <= by+eps, nil
	}

	return cx >= by-eps, nil
}
