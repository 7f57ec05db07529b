// SPDX-License-Identifier: MIT

package lp

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// DefaultEps is the feasibility tolerance used across the solvers (1e-6).
const DefaultEps = 1e-6

// Constraint is one row: Coefficients·x Relation RHS.
// RHS may be negative; the simplex tableau builder normalizes such rows.
type Constraint struct {
	Coefficients []float64
	Relation     Relation
	RHS          float64
}

// LHS evaluates Coefficients·x. x must have len(Coefficients) entries.
func (c Constraint) LHS(x []float64) float64 {
	return floats.Dot(c.Coefficients, x)
}

// Satisfied reports whether x satisfies the constraint within eps.
// A length mismatch is never satisfied.
func (c Constraint) Satisfied(x []float64, eps float64) bool {
	if len(x) != len(c.Coefficients) {
		return false
	}
	lhs := c.LHS(x)
	switch c.Relation {
	case LessEq:
		return lhs <= c.RHS+eps
	case GreaterEq:
		return lhs >= c.RHS-eps
	case Equal:
		return math.Abs(lhs-c.RHS) <= eps
	default:
		return false
	}
}

// Problem is a linear program over non-negative decision variables.
type Problem struct {
	Sense       Sense
	Objective   []float64
	Constraints []Constraint
}

// NumVars returns the number of decision variables.
func (p Problem) NumVars() int { return len(p.Objective) }

// Validate checks the shape invariant (every coefficient array has NumVars
// entries), finiteness and known relations.
//
// Errors: ErrEmptyProblem, ErrInvalidDimension, ErrNaNInf, ErrUnknownRelation,
// ErrUnknownSense; dimension errors name the offending constraint.
//
// Complexity: O(m·n).
func (p Problem) Validate() error {
	n := p.NumVars()
	if n == 0 {
		return ErrEmptyProblem
	}
	if p.Sense != Maximize && p.Sense != Minimize {
		return ErrUnknownSense
	}
	if !allFinite(p.Objective) {
		return fmt.Errorf("objective: %w", ErrNaNInf)
	}

	var (
		i int
		c Constraint
	)
	for i, c = range p.Constraints {
		if len(c.Coefficients) != n {
			return fmt.Errorf("constraint %d: %d coefficients for %d variables: %w",
				i, len(c.Coefficients), n, ErrInvalidDimension)
		}
		if !allFinite(c.Coefficients) || math.IsNaN(c.RHS) || math.IsInf(c.RHS, 0) {
			return fmt.Errorf("constraint %d: %w", i, ErrNaNInf)
		}
		if c.Relation != LessEq && c.Relation != GreaterEq && c.Relation != Equal {
			return fmt.Errorf("constraint %d: %w", i, ErrUnknownRelation)
		}
	}

	return nil
}

// Evaluate returns Objective·x.
//
// Errors: ErrInvalidDimension when len(x) != NumVars.
func (p Problem) Evaluate(x []float64) (float64, error) {
	if len(x) != p.NumVars() {
		return 0, ErrInvalidDimension
	}

	return floats.Dot(p.Objective, x), nil
}

// Feasible reports whether x ≥ −eps componentwise and satisfies every constraint within eps.
func (p Problem) Feasible(x []float64, eps float64) bool {
	if len(x) != p.NumVars() {
		return false
	}
	if floats.Min(x) < -eps {
		return false
	}
	for _, c := range p.Constraints {
		if !c.Satisfied(x, eps) {
			return false
		}
	}

	return true
}

// Better reports whether objective value a improves on b under the sense.
func (p Problem) Better(a, b float64) bool {
	if p.Sense == Minimize {
		return a < b
	}

	return a > b
}

// Clone returns a deep copy; solvers that add rows (branch and bound) work on clones.
func (p Problem) Clone() Problem {
	out := Problem{
		Sense:       p.Sense,
		Objective:   append([]float64(nil), p.Objective...),
		Constraints: make([]Constraint, len(p.Constraints)),
	}
	for i, c := range p.Constraints {
		out.Constraints[i] = Constraint{
			Coefficients: append([]float64(nil), c.Coefficients...),
			Relation:     c.Relation,
			RHS:          c.RHS,
		}
	}

	return out
}

func allFinite(v []float64) bool {
	for _, x := range v {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return false
		}
	}

	return true
}
