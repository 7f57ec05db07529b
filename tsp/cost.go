// SPDX-License-Identifier: MIT

package tsp

import (
	"math"

	"github.com/katalvlaran/lvopt/matrix"
)

// roundScale is the cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost sums dist[tour[i]][tour[i+1]] over consecutive pairs of a closed
// tour and rounds the total to 1e-9.
//
// Errors: ErrNonSquare for a nil or non-square matrix, ErrInvalidTour for a
// tour shorter than 2 or an index out of range, ErrInvalidDistance and
// ErrNegativeWeight for a bad edge weight.
//
// Complexity: O(len(tour)).
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		return 0, ErrNonSquare
	}
	if len(tour) < 2 {
		return 0, ErrInvalidTour
	}

	var (
		n    = dist.Rows()
		sum  float64
		u, v int
		w    float64
	)
	for i := 0; i+1 < len(tour); i++ {
		u, v = tour[i], tour[i+1]
		if u < 0 || u >= n || v < 0 || v >= n {
			return 0, ErrInvalidTour
		}
		w, _ = dist.At(u, v)
		if math.IsNaN(w) || math.IsInf(w, 0) {
			return 0, ErrInvalidDistance
		}
		if w < 0 {
			return 0, ErrNegativeWeight
		}
		sum += w
	}

	return round1e9(sum), nil
}

// round1e9 rounds x to the nearest 1e-9.
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
