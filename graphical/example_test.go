// SPDX-License-Identifier: MIT

package graphical_test

import (
	"fmt"

	"github.com/katalvlaran/lvopt/graphical"
	"github.com/katalvlaran/lvopt/lp"
)

func ExampleSolve() {
	p := lp.Problem{
		Sense:     lp.Maximize,
		Objective: []float64{3, 2},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 1}, Relation: lp.LessEq, RHS: 4},
			{Coefficients: []float64{1, 3}, Relation: lp.LessEq, RHS: 6},
		},
	}
	res, err := graphical.Solve(p, graphical.DefaultOptions())
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Status, res.Point, res.Value)
	fmt.Println("vertices:", res.Vertices)
	// Output:
	// optimal (4, 0) 12
	// vertices: [(0, 0) (4, 0) (0, 2) (3, 1)]
}
