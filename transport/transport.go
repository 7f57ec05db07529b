// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lvopt/matrix"
)

// Solve validates p, builds the northwest-corner and least-cost allocations
// and returns them ordered by total cost.
//
// Errors: ErrInvalidOptions, ErrEmpty, ErrNegative, ErrNaNInf,
// ErrDimensionMismatch, ErrUnbalanced.
//
// Complexity: O((m+n)·m·n), dominated by LeastCost.
func Solve(p Problem, opts Options) (Result, error) {
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	costs, err := validate(p, opts.Eps)
	if err != nil {
		return Result{}, err
	}

	nw := northwestCorner(p.Supply, p.Demand, opts.Eps)
	lc := leastCost(p.Supply, p.Demand, costs, opts.Eps)
	res := Result{Initial: []Solution{
		{Method: NorthwestCorner, Allocation: nw, Cost: totalCost(nw, costs)},
		{Method: LeastCost, Allocation: lc, Cost: totalCost(lc, costs)},
	}}
	sort.SliceStable(res.Initial, func(i, j int) bool {
		return res.Initial[i].Cost < res.Initial[j].Cost
	})
	res.Best = res.Initial[0]

	return res, nil
}

// NorthwestCornerAllocation returns the northwest-corner allocation for a balanced
// supply/demand pair. Costs play no role.
//
// Errors: as Solve, except cost-related checks.
func NorthwestCornerAllocation(supply, demand []float64) ([][]float64, error) {
	if err := validateQuantities(supply, demand, DefaultOptions().Eps); err != nil {
		return nil, err
	}

	return northwestCorner(supply, demand, DefaultOptions().Eps), nil
}

// LeastCostAllocation returns the least-cost allocation and its total cost.
//
// Errors: as Solve.
func LeastCostAllocation(supply, demand []float64, costs [][]float64) ([][]float64, float64, error) {
	p := Problem{Supply: supply, Demand: demand, Costs: costs}
	c, err := validate(p, DefaultOptions().Eps)
	if err != nil {
		return nil, 0, err
	}
	alloc := leastCost(supply, demand, c, DefaultOptions().Eps)

	return alloc, totalCost(alloc, c), nil
}

// TotalCost returns Σ costs[i][j]·alloc[i][j].
//
// Errors: ErrDimensionMismatch when the shapes differ.
func TotalCost(alloc, costs [][]float64) (float64, error) {
	c, err := matrix.NewDenseFrom(costs)
	if err != nil || len(alloc) != c.Rows() {
		return 0, ErrDimensionMismatch
	}
	for _, row := range alloc {
		if len(row) != c.Cols() {
			return 0, ErrDimensionMismatch
		}
	}

	return totalCost(alloc, c), nil
}

func validate(p Problem, eps float64) (*matrix.Dense, error) {
	if err := validateQuantities(p.Supply, p.Demand, eps); err != nil {
		return nil, err
	}
	if len(p.Costs) != len(p.Supply) {
		return nil, fmt.Errorf("%d cost rows for %d sources: %w", len(p.Costs), len(p.Supply), ErrDimensionMismatch)
	}
	costs, err := matrix.NewDenseFrom(p.Costs)
	if err != nil {
		if errors.Is(err, matrix.ErrNaNInf) {
			return nil, ErrNaNInf
		}

		return nil, fmt.Errorf("costs: %w", ErrDimensionMismatch)
	}
	if costs.Cols() != len(p.Demand) {
		return nil, fmt.Errorf("%d cost columns for %d destinations: %w", costs.Cols(), len(p.Demand), ErrDimensionMismatch)
	}
	if (p.Sources != nil && len(p.Sources) != len(p.Supply)) ||
		(p.Destinations != nil && len(p.Destinations) != len(p.Demand)) {
		return nil, fmt.Errorf("labels: %w", ErrDimensionMismatch)
	}

	return costs, nil
}

func validateQuantities(supply, demand []float64, eps float64) error {
	if len(supply) == 0 || len(demand) == 0 {
		return ErrEmpty
	}
	for _, v := range append(append([]float64(nil), supply...), demand...) {
		if !finite(v) {
			return ErrNaNInf
		}
		if v < 0 {
			return ErrNegative
		}
	}

	s, d := floats.Sum(supply), floats.Sum(demand)
	if s <= eps {
		return ErrEmpty
	}
	if math.Abs(s-d) > eps {
		return fmt.Errorf("supply %g, demand %g: %w", s, d, ErrUnbalanced)
	}

	return nil
}

// northwestCorner walks from (0,0): allocate min(s[i], d[j]) and advance the
// exhausted side (both when both are exhausted).
func northwestCorner(supply, demand []float64, eps float64) [][]float64 {
	var (
		s     = append([]float64(nil), supply...)
		d     = append([]float64(nil), demand...)
		alloc = newAlloc(len(s), len(d))
		i, j  int
		q     float64
	)
	for i < len(s) && j < len(d) {
		q = math.Min(s[i], d[j])
		alloc[i][j] = q
		s[i] -= q
		d[j] -= q
		if math.Abs(s[i]) <= eps {
			i++
		}
		if math.Abs(d[j]) <= eps {
			j++
		}
	}

	return alloc
}

// leastCost repeatedly fills the cheapest cell whose row and column are both
// still open (row-major first occurrence on ties).
func leastCost(supply, demand []float64, costs *matrix.Dense, eps float64) [][]float64 {
	var (
		s          = append([]float64(nil), supply...)
		d          = append([]float64(nil), demand...)
		alloc      = newAlloc(len(s), len(d))
		i, j       int
		bi, bj     int
		c, minCost float64
		q          float64
	)
	for floats.Max(s) > eps && floats.Max(d) > eps {
		bi, bj, minCost = -1, -1, math.Inf(1)
		for i = range s {
			if s[i] <= eps {
				continue
			}
			for j = range d {
				if d[j] <= eps {
					continue
				}
				if c, _ = costs.At(i, j); c < minCost {
					bi, bj, minCost = i, j, c
				}
			}
		}
		if bi < 0 {
			break
		}
		q = math.Min(s[bi], d[bj])
		alloc[bi][bj] += q
		s[bi] -= q
		d[bj] -= q
		if s[bi] < eps {
			s[bi] = 0
		}
		if d[bj] < eps {
			d[bj] = 0
		}
	}

	return alloc
}

func totalCost(alloc [][]float64, costs *matrix.Dense) float64 {
	var (
		sum float64
		c   float64
	)
	for i, row := range alloc {
		for j, q := range row {
			c, _ = costs.At(i, j)
			sum += c * q
		}
	}

	return sum
}

func newAlloc(m, n int) [][]float64 {
	out := make([][]float64, m)
	for i := range out {
		out[i] = make([]float64, n)
	}

	return out
}
