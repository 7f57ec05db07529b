// SPDX-License-Identifier: MIT

package tsp

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvopt/matrix"
)

// symTol is the structural tolerance for the symmetry and diagonal checks.
// It is independent from Options.Eps, which governs 2-opt improvement.
const symTol = 1e-12

// validateDistMatrix checks shape, values, diagonal and symmetry in that
// order and returns n on success.
//
// Complexity: O(n²).
func validateDistMatrix(dist matrix.Matrix) (int, error) {
	if err := matrix.ValidateSquare(dist); err != nil {
		if errors.Is(err, matrix.ErrNilMatrix) {
			return 0, ErrTooFewCities
		}

		return 0, ErrNonSquare
	}

	n := dist.Rows()
	if n < 2 {
		return 0, ErrTooFewCities
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v, _ = dist.At(i, j)
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, ErrInvalidDistance
			}
			if v < 0 {
				return 0, ErrNegativeWeight
			}
		}
	}
	if err := matrix.ValidateZeroDiagonal(dist, symTol); err != nil {
		return 0, ErrNonZeroDiagonal
	}
	if err := matrix.ValidateSymmetric(dist, symTol); err != nil {
		return 0, ErrAsymmetric
	}

	return n, nil
}

// validateOptions checks options against the matrix order n.
//
// Complexity: O(1).
func validateOptions(n int, opts Options) error {
	if opts.StartVertex < 0 || opts.StartVertex >= n {
		return ErrStartOutOfRange
	}
	if opts.Labels != nil && len(opts.Labels) != n {
		return ErrLabelCount
	}
	if math.IsNaN(opts.Eps) || opts.Eps < 0 || opts.TwoOptMaxIters < 0 {
		return ErrInvalidOptions
	}

	return nil
}
