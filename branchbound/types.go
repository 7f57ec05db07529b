// SPDX-License-Identifier: MIT

package branchbound

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/simplex"
)

var (
	// ErrInvalidIntTol is returned when IntTol is not in [0, 0.5).
	ErrInvalidIntTol = errors.New("branchbound: IntTol must be in [0, 0.5)")

	// ErrInvalidMaxNodes is returned when MaxNodes < 1.
	ErrInvalidMaxNodes = errors.New("branchbound: MaxNodes must be >= 1")
)

// NodeStatus is the outcome of one node of the search tree.
type NodeStatus int

const (
	// Branched: the relaxation was fractional and the node was split.
	Branched NodeStatus = iota
	// Integral: the relaxation point is integral (it may or may not improve the incumbent).
	Integral
	// Infeasible: the relaxation has no feasible point.
	Infeasible
	// Pruned: the relaxation bound cannot beat the incumbent.
	Pruned
	// Unbounded: the relaxation is unbounded.
	Unbounded
	// Unresolved: the relaxation hit the simplex iteration cap.
	Unresolved
)

// String returns the lower-case status name.
func (s NodeStatus) String() string {
	switch s {
	case Branched:
		return "branched"
	case Integral:
		return "integral"
	case Infeasible:
		return "infeasible"
	case Pruned:
		return "pruned"
	case Unbounded:
		return "unbounded"
	case Unresolved:
		return "unresolved"
	default:
		return fmt.Sprintf("NodeStatus(%d)", int(s))
	}
}

// Node is one solved relaxation in the search tree.
type Node struct {
	ID     int
	Parent int // -1 for the root
	Depth  int

	// Branch is the bound added on the edge from Parent ("x1 <= 2"); "" for the root.
	Branch string

	// Bound is the relaxation objective; Values the relaxation point.
	// Both are zero/nil unless the relaxation was optimal.
	Bound  float64
	Values []float64

	Status NodeStatus
}

// Result is the outcome of Solve.
type Result struct {
	Status lp.Status

	// Values and Objective describe the best integer point found. They are
	// set when Status is Optimal, and also for NotConverged when an
	// incumbent exists (best known, optimality unproven).
	Values    []float64
	Objective float64

	// Nodes lists solved nodes in processing order.
	Nodes []Node
}

// Solution converts the result to an lp.Solution (Values only when Optimal).
// Iterations counts solved nodes.
func (r Result) Solution() lp.Solution {
	sol := lp.Solution{Status: r.Status, Iterations: len(r.Nodes)}
	if r.Status == lp.Optimal {
		sol.Values = r.Values
		sol.Objective = r.Objective
	}

	return sol
}

// Options configures Solve.
type Options struct {
	// Simplex configures every relaxation solve.
	Simplex simplex.Options

	// IntTol is the distance from an integer under which a value counts as integral.
	IntTol float64

	// MaxNodes caps the number of solved relaxations.
	MaxNodes int
}

// DefaultOptions returns simplex defaults, IntTol = 1e-6 and MaxNodes = 1000.
func DefaultOptions() Options {
	return Options{
		Simplex:  simplex.DefaultOptions(),
		IntTol:   1e-6,
		MaxNodes: 1000,
	}
}

func validateOptions(o Options) error {
	if math.IsNaN(o.IntTol) || o.IntTol < 0 || o.IntTol >= 0.5 {
		return ErrInvalidIntTol
	}
	if o.MaxNodes < 1 {
		return ErrInvalidMaxNodes
	}

	return nil
}
