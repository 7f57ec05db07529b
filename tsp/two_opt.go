// SPDX-License-Identifier: MIT

package tsp

import "github.com/katalvlaran/lvopt/matrix"

// TwoOpt runs deterministic first-improvement 2-opt on a closed tour.
//
// For cut positions 1 ≤ i < k ≤ n−1 with a=T[i−1], b=T[i], c=T[k], d=T[k+1],
// reversing T[i..k] changes the length by
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d).
//
// A move is accepted when Δ < −opts.Eps; the scan restarts after every
// accepted move until no move improves or opts.TwoOptMaxIters moves were made.
// The start city stays at both ends. The input tour is not modified.
//
// Errors: validation errors for dist, tour and opts (see NearestNeighbor).
//
// Complexity: O(n²) per pass, O(passes·n²) overall; O(n²) extra space for
// the prefetched weights.
func TwoOpt(dist matrix.Matrix, tour []int, opts Options) ([]int, float64, error) {
	n, err := validateDistMatrix(dist)
	if err != nil {
		return nil, 0, err
	}
	if err = validateOptions(n, opts); err != nil {
		return nil, 0, err
	}
	if err = ValidateTour(tour, n, opts.StartVertex); err != nil {
		return nil, 0, err
	}

	// Prefetch weights into a flat row-major buffer for the hot loop.
	var (
		w    = make([]float64, n*n)
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			w[i*n+j], _ = dist.At(i, j)
		}
	}
	at := func(u, v int) float64 { return w[u*n+v] }

	cur := append([]int(nil), tour...)

	var (
		accepted   int
		improved   = true
		a, b, c, d int
		k          int
		delta      float64
	)
	for improved {
		improved = false
	scan:
		for i = 1; i <= n-2; i++ {
			for k = i + 1; k <= n-1; k++ {
				a, b, c, d = cur[i-1], cur[i], cur[k], cur[k+1]
				delta = at(a, c) + at(b, d) - at(a, b) - at(c, d)
				if delta >= -opts.Eps {
					continue
				}
				reverseArcInPlace(cur, i, k)
				accepted++
				improved = true
				if opts.TwoOptMaxIters > 0 && accepted >= opts.TwoOptMaxIters {
					improved = false
				}

				break scan
			}
		}
	}

	cost, err := TourCost(dist, cur)
	if err != nil {
		return nil, 0, err
	}

	return cur, cost, nil
}
