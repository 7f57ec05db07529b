// SPDX-License-Identifier: MIT

package duality

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvopt/lp"
)

// ErrSignMismatch is returned when a dual value vector does not match the
// number of sign restrictions.
var ErrSignMismatch = errors.New("duality: dual vector length does not match sign restrictions")

// Sign is the restriction on one dual variable.
type Sign int

const (
	// NonNegative is yᵢ ≥ 0.
	NonNegative Sign = iota
	// NonPositive is yᵢ ≤ 0.
	NonPositive
	// Free is yᵢ unrestricted.
	Free
)

// String returns "≥ 0", "≤ 0" or "unrestricted".
func (s Sign) String() string {
	switch s {
	case NonNegative:
		return "≥ 0"
	case NonPositive:
		return "≤ 0"
	case Free:
		return "unrestricted"
	default:
		return fmt.Sprintf("Sign(%d)", int(s))
	}
}

// Dual is the dual problem plus the sign restriction of each dual variable.
// Problem.Objective has one entry per primal constraint; Problem.Constraints
// has one row per primal variable.
type Dual struct {
	Problem lp.Problem
	Signs   []Sign
}

// Pair is the outcome of solving a primal problem together with its dual.
type Pair struct {
	Primal      lp.Solution
	Dual        lp.Solution
	DualProblem Dual

	// Gap is |primal objective − dual objective|; set only when both are optimal.
	Gap float64
}

// BothOptimal reports whether both problems reached an optimum.
func (p Pair) BothOptimal() bool {
	return p.Primal.IsOptimal() && p.Dual.IsOptimal()
}

// StrongDuality reports whether both are optimal with a gap of at most eps.
func (p Pair) StrongDuality(eps float64) bool {
	return p.BothOptimal() && p.Gap <= eps
}
