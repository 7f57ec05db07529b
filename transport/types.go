// SPDX-License-Identifier: MIT

package transport

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrUnbalanced is returned when total supply and total demand differ by more than Eps.
	ErrUnbalanced = errors.New("transport: total supply must equal total demand")

	// ErrDimensionMismatch is returned when Costs is not len(Supply)×len(Demand)
	// or a label list has the wrong length.
	ErrDimensionMismatch = errors.New("transport: dimension mismatch")

	// ErrNegative is returned for a negative supply or demand.
	ErrNegative = errors.New("transport: negative quantity")

	// ErrEmpty is returned when there are no sources, no destinations or zero total supply.
	ErrEmpty = errors.New("transport: empty problem")

	// ErrNaNInf is returned for a non-finite quantity or cost.
	ErrNaNInf = errors.New("transport: NaN or Inf value")

	// ErrInvalidOptions is returned for a negative, NaN or Inf Eps.
	ErrInvalidOptions = errors.New("transport: invalid options")
)

// Method names an initial-solution construction.
type Method int

const (
	// NorthwestCorner fills from the top-left cell.
	NorthwestCorner Method = iota
	// LeastCost fills the cheapest open cell first.
	LeastCost
)

// String returns "Northwest Corner" or "Least Cost".
func (m Method) String() string {
	switch m {
	case NorthwestCorner:
		return "Northwest Corner"
	case LeastCost:
		return "Least Cost"
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Problem is a transportation instance. Sources and Destinations are
// optional display labels.
type Problem struct {
	Supply       []float64
	Demand       []float64
	Costs        [][]float64
	Sources      []string
	Destinations []string
}

// Solution is one allocation and its total cost.
type Solution struct {
	Method     Method
	Allocation [][]float64
	Cost       float64
}

// Result is the outcome of Solve.
type Result struct {
	// Initial holds both constructions ordered by cost (ties keep NorthwestCorner first).
	Initial []Solution

	// Best is Initial[0].
	Best Solution
}

// Options configures Solve.
type Options struct {
	// Eps is the balance tolerance and the "exhausted" threshold.
	Eps float64
}

// DefaultOptions returns Eps = 1e-4.
func DefaultOptions() Options {
	return Options{Eps: 1e-4}
}

func validateOptions(o Options) error {
	if !finite(o.Eps) || o.Eps < 0 {
		return ErrInvalidOptions
	}

	return nil
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
