// SPDX-License-Identifier: MIT

package tsp

import "errors"

var (
	// ErrTooFewCities is returned for a distance matrix with fewer than 2 cities.
	ErrTooFewCities = errors.New("tsp: at least 2 cities required")

	// ErrNonSquare is returned when the distance matrix is not n×n.
	ErrNonSquare = errors.New("tsp: distance matrix must be square")

	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = errors.New("tsp: negative distance")

	// ErrInvalidDistance is returned for a NaN or ±Inf distance.
	ErrInvalidDistance = errors.New("tsp: distance must be finite")

	// ErrNonZeroDiagonal is returned when a city's distance to itself is not 0.
	ErrNonZeroDiagonal = errors.New("tsp: diagonal must be zero")

	// ErrAsymmetric is returned when dist[i][j] != dist[j][i].
	ErrAsymmetric = errors.New("tsp: distance matrix must be symmetric")

	// ErrStartOutOfRange is returned when StartVertex is not a city index.
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrLabelCount is returned when Labels is non-nil but not one label per city.
	ErrLabelCount = errors.New("tsp: label count does not match city count")

	// ErrInvalidTour is returned when a tour is not a closed permutation of the cities.
	ErrInvalidTour = errors.New("tsp: invalid tour")

	// ErrInvalidOptions is returned for a negative Eps or TwoOptMaxIters.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// Options configures NearestNeighbor.
type Options struct {
	// StartVertex is the first and last city of the tour.
	StartVertex int

	// TwoOpt enables the 2-opt post-pass.
	TwoOpt bool

	// TwoOptMaxIters caps accepted 2-opt moves; 0 means until a local optimum.
	TwoOptMaxIters int

	// Eps is the minimum improvement for an accepted 2-opt move.
	Eps float64

	// Labels optionally names the cities in Steps; nil uses "1".."n".
	Labels []string
}

// DefaultOptions starts at city 0 without 2-opt, Eps = 1e-9.
func DefaultOptions() Options {
	return Options{StartVertex: 0, Eps: 1e-9}
}

// Step is one leg of the tour.
type Step struct {
	From, To           int
	FromLabel, ToLabel string
	Distance           float64
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of city indices; len(Tour) == n+1 and
	// Tour[0] == Tour[n] == StartVertex.
	Tour []int

	// Cost is the total length of the closed tour.
	Cost float64

	// Steps lists the legs Tour[i] → Tour[i+1] in order.
	Steps []Step
}
