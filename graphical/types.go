// SPDX-License-Identifier: MIT

package graphical

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/lp"
)

// ErrInvalidTolerance is returned when Eps or DetTol is negative, NaN or Inf.
var ErrInvalidTolerance = errors.New("graphical: tolerance must be finite and >= 0")

// Point is a location in the (x₁, x₂) plane.
type Point struct {
	X1, X2 float64
}

// String formats the point as "(x1, x2)".
func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X1, p.X2)
}

// near reports whether p and q coincide within eps in both coordinates.
func (p Point) near(q Point, eps float64) bool {
	return math.Abs(p.X1-q.X1) <= eps && math.Abs(p.X2-q.X2) <= eps
}

// Candidate is one enumerated point with its origin, feasibility and objective value.
type Candidate struct {
	Point    Point
	Source   string // "origin", "c1 x2-intercept", "c1 ∩ c2", …
	Feasible bool
	Value    float64
}

// Result is the outcome of Solve.
type Result struct {
	Status lp.Status

	// Point and Value are meaningful only when Status == lp.Optimal.
	Point Point
	Value float64

	// Candidates lists every enumerated point in discovery order.
	Candidates []Candidate

	// Vertices lists feasible candidates, de-duplicated within Eps.
	Vertices []Point
}

// Solution converts the result to the shared lp.Solution shape.
func (r Result) Solution() lp.Solution {
	if r.Status != lp.Optimal {
		return lp.Solution{Status: r.Status}
	}

	return lp.Solution{
		Status:    lp.Optimal,
		Values:    []float64{r.Point.X1, r.Point.X2},
		Objective: r.Value,
	}
}

// Options configures Solve.
type Options struct {
	// Eps is the feasibility tolerance.
	Eps float64

	// DetTol is the determinant magnitude below which two lines count as parallel.
	DetTol float64
}

// DefaultOptions returns Eps = 1e-6 and DetTol = 1e-10.
func DefaultOptions() Options {
	return Options{Eps: 1e-6, DetTol: 1e-10}
}

func validateOptions(o Options) error {
	for _, v := range []float64{o.Eps, o.DetTol} {
		if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
			return ErrInvalidTolerance
		}
	}

	return nil
}
