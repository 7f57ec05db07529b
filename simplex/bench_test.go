// SPDX-License-Identifier: MIT

package simplex_test

import (
	"testing"

	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/simplex"
)

// benchProblem builds a dense n-variable, n-constraint ≤ problem with a
// bounded feasible region.
func benchProblem(n int) lp.Problem {
	p := lp.Problem{Sense: lp.Maximize, Objective: make([]float64, n)}
	for j := 0; j < n; j++ {
		p.Objective[j] = float64(1 + j%5)
	}
	for i := 0; i < n; i++ {
		coef := make([]float64, n)
		for j := range coef {
			coef[j] = float64(1 + (i*7+j*3)%9)
		}
		p.Constraints = append(p.Constraints, lp.Constraint{
			Coefficients: coef,
			Relation:     lp.LessEq,
			RHS:          float64(50 + i),
		})
	}

	return p
}

func BenchmarkSolve_BigM20(b *testing.B) {
	p := benchProblem(20)
	opts := simplex.DefaultOptions()
	opts.MaxIterations = 1000
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(p, opts); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSolve_TwoPhase20(b *testing.B) {
	p := benchProblem(20)
	opts := simplex.DefaultOptions()
	opts.Method = simplex.TwoPhase
	opts.MaxIterations = 1000
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := simplex.Solve(p, opts); err != nil {
			b.Fatal(err)
		}
	}
}
