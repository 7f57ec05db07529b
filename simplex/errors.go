// SPDX-License-Identifier: MIT

package simplex

import "errors"

var (
	// ErrZeroPivot is returned when the selected pivot element is (numerically) zero.
	ErrZeroPivot = errors.New("simplex: zero pivot element")

	// ErrPivotOutOfRange is returned when Pivot receives the objective row, the RHS
	// column or indices outside the tableau.
	ErrPivotOutOfRange = errors.New("simplex: pivot position out of range")

	// ErrInvalidBigM is returned when Options.BigM is not a positive finite number.
	ErrInvalidBigM = errors.New("simplex: BigM must be positive and finite")

	// ErrInvalidIterations is returned when Options.MaxIterations < 1.
	ErrInvalidIterations = errors.New("simplex: MaxIterations must be >= 1")

	// ErrInvalidEps is returned when Options.Eps is negative, NaN or Inf.
	ErrInvalidEps = errors.New("simplex: Eps must be finite and >= 0")

	// ErrUnknownMethod is returned for a Method outside {BigM, TwoPhase}.
	ErrUnknownMethod = errors.New("simplex: unknown method")
)
