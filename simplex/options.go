// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"
	"strings"
)

// Method selects how artificial variables are driven out of the basis.
type Method int

const (
	// BigM penalizes artificial variables with Options.BigM in the objective row.
	BigM Method = iota
	// TwoPhase runs an auxiliary feasibility phase before the real objective.
	TwoPhase
)

// String returns "big-m" or "two-phase".
func (m Method) String() string {
	switch m {
	case BigM:
		return "big-m"
	case TwoPhase:
		return "two-phase"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// ParseMethod accepts "big-m", "bigm", "two-phase" and "twophase" in any case.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "big-m", "bigm", "big_m", "":
		return BigM, nil
	case "two-phase", "twophase", "two_phase":
		return TwoPhase, nil
	default:
		return 0, fmt.Errorf("%q: %w", s, ErrUnknownMethod)
	}
}

// Defaults used by DefaultOptions.
const (
	DefaultBigM          = 1000.0
	DefaultMaxIterations = 100
	DefaultEps           = 1e-6
)

// Options configures Build and Solve.
type Options struct {
	// Method is BigM (default) or TwoPhase.
	Method Method

	// BigM is the artificial-variable penalty (BigM method only).
	BigM float64

	// MaxIterations caps the number of pivots (across both phases).
	MaxIterations int

	// Eps is the tolerance for "negative" reduced costs, positive ratio-test
	// entries and infeasibility checks.
	Eps float64

	// RecordHistory keeps a snapshot of the tableau before the first pivot
	// and after every pivot in Result.History.
	RecordHistory bool
}

// DefaultOptions returns BigM with M=1000, 100 iterations and eps 1e-6.
func DefaultOptions() Options {
	return Options{
		Method:        BigM,
		BigM:          DefaultBigM,
		MaxIterations: DefaultMaxIterations,
		Eps:           DefaultEps,
	}
}

func validateOptions(o Options) error {
	if o.Method != BigM && o.Method != TwoPhase {
		return ErrUnknownMethod
	}
	if !(o.BigM > 0) || math.IsInf(o.BigM, 0) {
		return ErrInvalidBigM
	}
	if o.MaxIterations < 1 {
		return ErrInvalidIterations
	}
	if math.IsNaN(o.Eps) || math.IsInf(o.Eps, 0) || o.Eps < 0 {
		return ErrInvalidEps
	}

	return nil
}
