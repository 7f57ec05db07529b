// SPDX-License-Identifier: MIT

package lp

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrInvalidDimension is returned when a coefficient vector does not match NumVars.
	ErrInvalidDimension = errors.New("lp: invalid dimension")

	// ErrEmptyProblem is returned for a problem without decision variables.
	ErrEmptyProblem = errors.New("lp: problem has no decision variables")

	// ErrNaNInf is returned when a coefficient or right-hand side is NaN or ±Inf.
	ErrNaNInf = errors.New("lp: NaN or Inf coefficient")

	// ErrUnknownRelation is returned for a relation token other than <=, >=, =.
	ErrUnknownRelation = errors.New("lp: unknown constraint relation")

	// ErrUnknownSense is returned for an objective type other than max/min.
	ErrUnknownSense = errors.New("lp: unknown objective sense")
)

// Sense is the optimization direction of the objective.
type Sense int

const (
	// Maximize the objective (the zero value: calculators default to "max").
	Maximize Sense = iota
	// Minimize the objective.
	Minimize
)

// String returns "max" or "min".
func (s Sense) String() string {
	switch s {
	case Maximize:
		return "max"
	case Minimize:
		return "min"
	default:
		return fmt.Sprintf("Sense(%d)", int(s))
	}
}

// Opposite returns the dual direction (max ↔ min).
func (s Sense) Opposite() Sense {
	if s == Maximize {
		return Minimize
	}

	return Maximize
}

// ParseSense accepts "max"/"maximize" and "min"/"minimize" in any case.
func ParseSense(s string) (Sense, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "max", "maximize", "maximise":
		return Maximize, nil
	case "min", "minimize", "minimise":
		return Minimize, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownSense)
	}
}

// Relation is the comparison in a constraint row.
type Relation int

const (
	// LessEq is Coefficients·x ≤ RHS.
	LessEq Relation = iota
	// GreaterEq is Coefficients·x ≥ RHS.
	GreaterEq
	// Equal is Coefficients·x = RHS.
	Equal
)

// String returns the ASCII token ("<=", ">=", "=").
func (r Relation) String() string {
	switch r {
	case LessEq:
		return "<="
	case GreaterEq:
		return ">="
	case Equal:
		return "="
	default:
		return fmt.Sprintf("Relation(%d)", int(r))
	}
}

// Flip returns the relation obtained by multiplying both sides by −1.
func (r Relation) Flip() Relation {
	switch r {
	case LessEq:
		return GreaterEq
	case GreaterEq:
		return LessEq
	default:
		return r
	}
}

// ParseRelation accepts ASCII and Unicode relation tokens.
func ParseRelation(s string) (Relation, error) {
	switch strings.TrimSpace(s) {
	case "<=", "≤", "=<":
		return LessEq, nil
	case ">=", "≥", "=>":
		return GreaterEq, nil
	case "=", "==":
		return Equal, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownRelation)
	}
}

// Status classifies how a solve terminated.
type Status int

const (
	// Optimal: a best solution was found.
	Optimal Status = iota
	// Infeasible: no point satisfies all constraints.
	Infeasible
	// Unbounded: the objective can be improved indefinitely.
	Unbounded
	// NotConverged: the iteration or node cap was hit before a verdict.
	NotConverged
)

// String returns the snake_case status name used in reports.
func (s Status) String() string {
	switch s {
	case Optimal:
		return "optimal"
	case Infeasible:
		return "infeasible"
	case Unbounded:
		return "unbounded"
	case NotConverged:
		return "not_converged"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Solution is the outcome of solving a Problem.
// Values and Objective are meaningful iff Status == Optimal; Values is nil otherwise.
type Solution struct {
	Status     Status
	Values     []float64
	Objective  float64
	Iterations int
}

// IsOptimal reports whether the solution carries a usable point.
func (s Solution) IsOptimal() bool { return s.Status == Optimal }
