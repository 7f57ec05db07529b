// SPDX-License-Identifier: MIT

package branchbound

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/simplex"
)

// pending is a node waiting on the stack.
type pending struct {
	prob   lp.Problem
	parent int
	depth  int
	branch string
}

// Solve runs branch and bound on p. integer[j] marks xⱼ as integer; a nil
// slice marks every variable integer.
//
// Errors: lp validation errors, lp.ErrInvalidDimension for a wrong-length
// integer mask, option errors (including simplex option errors).
//
// Complexity: exponential in the number of integer variables in the worst
// case; bounded by MaxNodes relaxation solves.
func Solve(p lp.Problem, integer []bool, opts Options) (Result, error) {
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("branchbound.Solve: %w", err)
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, fmt.Errorf("branchbound.Solve: %w", err)
	}
	if integer == nil {
		integer = make([]bool, p.NumVars())
		for j := range integer {
			integer[j] = true
		}
	}
	if len(integer) != p.NumVars() {
		return Result{}, fmt.Errorf("branchbound.Solve: integer mask has %d entries for %d variables: %w",
			len(integer), p.NumVars(), lp.ErrInvalidDimension)
	}

	var (
		res        Result
		stack      = []pending{{prob: p.Clone(), parent: -1}}
		incumbent  []float64
		best       float64
		incomplete bool
		eps        = opts.Simplex.Eps
	)

	for len(stack) > 0 {
		if len(res.Nodes) >= opts.MaxNodes {
			incomplete = true
			break
		}
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		sol, err := simplex.SolveProblem(top.prob, opts.Simplex)
		if err != nil {
			return Result{}, fmt.Errorf("branchbound.Solve: node %d: %w", len(res.Nodes), err)
		}

		node := Node{ID: len(res.Nodes), Parent: top.parent, Depth: top.depth, Branch: top.branch}
		switch sol.Status {
		case lp.Infeasible:
			node.Status = Infeasible
		case lp.Unbounded:
			node.Status = Unbounded
			res.Nodes = append(res.Nodes, node)
			res.Status = lp.Unbounded

			return res, nil
		case lp.NotConverged:
			node.Status = Unresolved
			incomplete = true
		default:
			node.Bound, node.Values = sol.Objective, sol.Values
			j, v := mostFractional(sol.Values, integer, opts.IntTol)
			switch {
			case incumbent != nil && !p.Better(sol.Objective, best+signedEps(p.Sense, eps)):
				node.Status = Pruned
			case j < 0:
				node.Status = Integral
				if incumbent == nil || p.Better(sol.Objective, best) {
					incumbent = snap(sol.Values, integer)
					best, _ = p.Evaluate(incumbent)
				}
			default:
				node.Status = Branched
				lo, hi := math.Floor(v), math.Ceil(v)
				// Right child is pushed first so the left (≤) child is explored first.
				stack = append(stack,
					child(top, node, j, lp.GreaterEq, hi),
					child(top, node, j, lp.LessEq, lo),
				)
			}
		}
		res.Nodes = append(res.Nodes, node)
	}

	switch {
	case incumbent != nil && !incomplete:
		res.Status = lp.Optimal
	case incomplete:
		res.Status = lp.NotConverged
	default:
		res.Status = lp.Infeasible
	}
	if incumbent != nil {
		res.Values, res.Objective = incumbent, best
	}

	return res, nil
}

// signedEps shifts the incumbent so that only strictly better bounds survive.
func signedEps(s lp.Sense, eps float64) float64 {
	if s == lp.Minimize {
		return -eps
	}

	return eps
}

// mostFractional returns the integer variable farthest from an integer and
// its value, or -1 when all are within tol. Ties keep the lowest index.
func mostFractional(x []float64, integer []bool, tol float64) (int, float64) {
	var (
		idx   = -1
		worst = tol
		val   float64
	)
	for j, v := range x {
		if !integer[j] {
			continue
		}
		f := v - math.Floor(v)
		if d := math.Min(f, 1-f); d > worst {
			idx, worst, val = j, d, v
		}
	}

	return idx, val
}

// snap rounds integer variables to the nearest integer.
func snap(x []float64, integer []bool) []float64 {
	out := append([]float64(nil), x...)
	for j := range out {
		if integer[j] {
			out[j] = math.Round(out[j])
		}
	}

	return out
}

// child copies the parent problem and appends the bound xⱼ rel rhs.
func child(parent pending, node Node, j int, rel lp.Relation, rhs float64) pending {
	prob := parent.prob.Clone()
	coef := make([]float64, prob.NumVars())
	coef[j] = 1
	prob.Constraints = append(prob.Constraints, lp.Constraint{
		Coefficients: coef,
		Relation:     rel,
		RHS:          rhs,
	})

	return pending{
		prob:   prob,
		parent: node.ID,
		depth:  node.Depth + 1,
		branch: fmt.Sprintf("x%d %s %g", j+1, rel, rhs),
	}
}
