// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/katalvlaran/lvopt/matrix"
)

// NearestNeighbor builds a closed tour greedily.
//
// Algorithm Outline:
//  1. Validate dist (square, n ≥ 2, finite, non-negative, zero diagonal,
//     symmetric) and opts.
//  2. cur = StartVertex; mark it visited.
//  3. n−1 times: move to the unvisited city with the smallest distance from
//     cur (smallest index on ties) and record the step.
//  4. Close the tour back to StartVertex.
//  5. Optionally polish with TwoOpt; Steps always describe the final tour.
//
// The result is an approximation; it can be far from optimal on adversarial
// inputs.
//
// Errors: ErrTooFewCities, ErrNonSquare, ErrInvalidDistance,
// ErrNegativeWeight, ErrNonZeroDiagonal, ErrAsymmetric, ErrStartOutOfRange,
// ErrLabelCount, ErrInvalidOptions.
//
// Complexity: O(n²) time, O(n) extra space (plus O(n²) for the 2-opt pass).
func NearestNeighbor(dist matrix.Matrix, opts Options) (TSResult, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateOptions(n, opts); err != nil {
		return TSResult{}, err
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n+1)
		cur     = opts.StartVertex
		next    int
		best, w float64
		step, v int
	)
	visited[cur] = true
	tour = append(tour, cur)

	for step = 1; step < n; step++ {
		next, best = -1, math.Inf(1)
		for v = 0; v < n; v++ {
			if visited[v] {
				continue
			}
			if w, _ = dist.At(cur, v); w < best {
				next, best = v, w
			}
		}
		visited[next] = true
		tour = append(tour, next)
		cur = next
	}
	tour = append(tour, opts.StartVertex)

	res := TSResult{Tour: tour}
	if opts.TwoOpt {
		if res.Tour, res.Cost, err = TwoOpt(dist, tour, opts); err != nil {
			return TSResult{}, err
		}
	} else if res.Cost, err = TourCost(dist, tour); err != nil {
		return TSResult{}, err
	}
	res.Steps = steps(dist, res.Tour, opts.Labels)

	return res, nil
}

// steps expands a validated tour into labelled legs.
func steps(dist matrix.Matrix, tour []int, labels []string) []Step {
	out := make([]Step, 0, len(tour)-1)
	for i := 0; i+1 < len(tour); i++ {
		u, v := tour[i], tour[i+1]
		d, _ := dist.At(u, v)
		out = append(out, Step{
			From:      u,
			To:        v,
			FromLabel: label(labels, u),
			ToLabel:   label(labels, v),
			Distance:  d,
		})
	}

	return out
}
