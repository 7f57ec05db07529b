// SPDX-License-Identifier: MIT

package duality

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/lvopt/lp"
)

// Transform builds the dual of primal.
//
// The dual sense is the opposite of the primal, its objective is the primal
// RHS vector, and dual constraint j uses column j of the primal constraint
// matrix with RHS cⱼ (relation ≥ for a max primal, ≤ for a min primal).
//
// Errors: primal validation errors (lp.ErrInvalidDimension, …).
//
// Complexity: O(m·n).
func Transform(primal lp.Problem) (Dual, error) {
	if err := primal.Validate(); err != nil {
		return Dual{}, fmt.Errorf("duality.Transform: %w", err)
	}

	var (
		n   = primal.NumVars()
		m   = len(primal.Constraints)
		rel = lp.LessEq
		d   = Dual{
			Problem: lp.Problem{
				Sense:       primal.Sense.Opposite(),
				Objective:   make([]float64, m),
				Constraints: make([]lp.Constraint, n),
			},
			Signs: make([]Sign, m),
		}
		i, j int
	)
	if primal.Sense == lp.Maximize {
		rel = lp.GreaterEq
	}

	for i = 0; i < m; i++ {
		d.Problem.Objective[i] = primal.Constraints[i].RHS
		d.Signs[i] = signFor(primal.Sense, primal.Constraints[i].Relation)
	}
	for j = 0; j < n; j++ {
		col := make([]float64, m)
		for i = 0; i < m; i++ {
			col[i] = primal.Constraints[i].Coefficients[j]
		}
		d.Problem.Constraints[j] = lp.Constraint{
			Coefficients: col,
			Relation:     rel,
			RHS:          primal.Objective[j],
		}
	}

	return d, nil
}

// signFor maps a primal row relation to the restriction on its dual variable.
func signFor(primal lp.Sense, r lp.Relation) Sign {
	switch {
	case r == lp.Equal:
		return Free
	case (primal == lp.Maximize) == (r == lp.LessEq):
		return NonNegative
	default:
		return NonPositive
	}
}

// Formulation renders the dual as text:
//
//	Dual Problem:
//
//	Minimize
//	Z = 4y1 + 6y2
//
//	Subject To:
//	y1 + y2 >= 3
//	...
//
//	Sign restrictions:
//	y1 ≥ 0
func (d Dual) Formulation() string {
	var b strings.Builder

	b.WriteString("Dual Problem:\n\n")
	if d.Problem.Sense == lp.Minimize {
		b.WriteString("Minimize\n")
	} else {
		b.WriteString("Maximize\n")
	}
	b.WriteString("Z = ")
	b.WriteString(linear(d.Problem.Objective, "y"))
	b.WriteString("\n\nSubject To:\n")
	for _, c := range d.Problem.Constraints {
		fmt.Fprintf(&b, "%s %s %s\n", linear(c.Coefficients, "y"), c.Relation, num(c.RHS))
	}
	b.WriteString("\nSign restrictions:\n")
	for i, s := range d.Signs {
		fmt.Fprintf(&b, "y%d %s\n", i+1, s)
	}

	return b.String()
}

// linear renders Σ coef·<name>i with unit coefficients elided ("y1 - 2y2").
func linear(coef []float64, name string) string {
	var b strings.Builder
	for i, c := range coef {
		switch {
		case i == 0 && c < 0:
			b.WriteString("-")
		case i > 0 && c < 0:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}
		if c < 0 {
			c = -c
		}
		if c != 1 {
			b.WriteString(num(c))
		}
		b.WriteString(name)
		b.WriteString(strconv.Itoa(i + 1))
	}

	return b.String()
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
