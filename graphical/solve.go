// SPDX-License-Identifier: MIT

package graphical

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvopt/lp"
)

// Solve enumerates corner points of a two-variable problem and picks the best.
//
// Errors: lp.ErrInvalidDimension when p does not have exactly 2 variables,
// other lp validation errors, ErrInvalidTolerance.
//
// Complexity: O(m²) candidates, each checked in O(m): O(m³) overall.
func Solve(p lp.Problem, opts Options) (Result, error) {
	if p.NumVars() != 2 {
		return Result{}, fmt.Errorf("graphical.Solve: %d variables, want 2: %w", p.NumVars(), lp.ErrInvalidDimension)
	}
	if err := p.Validate(); err != nil {
		return Result{}, fmt.Errorf("graphical.Solve: %w", err)
	}
	if err := validateOptions(opts); err != nil {
		return Result{}, fmt.Errorf("graphical.Solve: %w", err)
	}

	var (
		res   = Result{Status: lp.Infeasible}
		cands = enumerate(p.Constraints, opts.DetTol)
		found bool
		i     int
	)
	for i = range cands {
		c := &cands[i]
		x := []float64{c.Point.X1, c.Point.X2}
		c.Feasible = p.Feasible(x, opts.Eps)
		c.Value, _ = p.Evaluate(x)
		if !c.Feasible {
			continue
		}
		if !containsNear(res.Vertices, c.Point, opts.Eps) {
			res.Vertices = append(res.Vertices, c.Point)
		}
		if !found || p.Better(c.Value, res.Value) {
			res.Point, res.Value, found = c.Point, c.Value, true
		}
	}
	res.Candidates = cands

	if !found {
		return res, nil
	}
	if improvingRay(p, opts.Eps) {
		res.Status = lp.Unbounded
		res.Point, res.Value = Point{}, 0

		return res, nil
	}
	res.Status = lp.Optimal

	return res, nil
}

// enumerate lists origin, axis intercepts and pairwise line intersections.
func enumerate(cons []lp.Constraint, detTol float64) []Candidate {
	out := []Candidate{{Point: Point{}, Source: "origin"}}

	var (
		a1, a2 float64
		i, j   int
	)
	for i = range cons {
		a1, a2 = cons[i].Coefficients[0], cons[i].Coefficients[1]
		if a2 != 0 {
			out = append(out, Candidate{
				Point:  Point{X1: 0, X2: cons[i].RHS / a2},
				Source: fmt.Sprintf("c%d x2-intercept", i+1),
			})
		}
		if a1 != 0 {
			out = append(out, Candidate{
				Point:  Point{X1: cons[i].RHS / a1, X2: 0},
				Source: fmt.Sprintf("c%d x1-intercept", i+1),
			})
		}
	}

	for i = 0; i < len(cons); i++ {
		for j = i + 1; j < len(cons); j++ {
			pt, ok := intersect(cons[i], cons[j], detTol)
			if !ok {
				continue
			}
			out = append(out, Candidate{
				Point:  pt,
				Source: fmt.Sprintf("c%d ∩ c%d", i+1, j+1),
			})
		}
	}

	return out
}

// intersect solves the 2×2 system formed by the two constraint lines.
func intersect(c1, c2 lp.Constraint, detTol float64) (Point, bool) {
	a := mat.NewDense(2, 2, []float64{
		c1.Coefficients[0], c1.Coefficients[1],
		c2.Coefficients[0], c2.Coefficients[1],
	})
	if math.Abs(mat.Det(a)) < detTol {
		return Point{}, false
	}

	var (
		b = mat.NewVecDense(2, []float64{c1.RHS, c2.RHS})
		x mat.VecDense
	)
	if err := x.SolveVec(a, b); err != nil {
		return Point{}, false
	}

	return Point{X1: x.AtVec(0), X2: x.AtVec(1)}, true
}

// improvingRay reports whether the feasible region contains a recession
// direction along which the objective improves. Extreme rays of a planar
// recession cone lie on the axes or along constraint lines, so only those
// directions are tested.
func improvingRay(p lp.Problem, eps float64) bool {
	dirs := [][]float64{{1, 0}, {0, 1}}
	for _, c := range p.Constraints {
		a1, a2 := c.Coefficients[0], c.Coefficients[1]
		if a1 == 0 && a2 == 0 {
			continue
		}
		dirs = append(dirs, []float64{a2, -a1}, []float64{-a2, a1})
	}

	for _, d := range dirs {
		floats.Scale(1/floats.Norm(d, 2), d)
		if !isRecession(p.Constraints, d, eps) {
			continue
		}
		gain := floats.Dot(p.Objective, d)
		if (p.Sense == lp.Maximize && gain > eps) || (p.Sense == lp.Minimize && gain < -eps) {
			return true
		}
	}

	return false
}

// isRecession reports whether moving along unit direction d from any feasible
// point stays feasible: d ≥ 0 and the homogeneous constraints hold.
func isRecession(cons []lp.Constraint, d []float64, eps float64) bool {
	if d[0] < -eps || d[1] < -eps {
		return false
	}
	for _, c := range cons {
		ad := floats.Dot(c.Coefficients, d)
		switch c.Relation {
		case lp.LessEq:
			if ad > eps {
				return false
			}
		case lp.GreaterEq:
			if ad < -eps {
				return false
			}
		case lp.Equal:
			if math.Abs(ad) > eps {
				return false
			}
		}
	}

	return true
}

func containsNear(pts []Point, q Point, eps float64) bool {
	for _, p := range pts {
		if p.near(q, eps) {
			return true
		}
	}

	return false
}
