// SPDX-License-Identifier: MIT

package tsp

import "strconv"

// ValidateTour checks that tour is a closed Hamiltonian cycle over n cities
// starting and ending at start: len n+1, tour[0] == tour[n] == start and
// tour[0..n-1] a permutation of 0..n-1.
//
// Errors: ErrInvalidTour, ErrStartOutOfRange.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int, start int) error {
	if n <= 0 || len(tour) != n+1 {
		return ErrInvalidTour
	}
	if start < 0 || start >= n {
		return ErrStartOutOfRange
	}
	if tour[0] != start || tour[n] != start {
		return ErrInvalidTour
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n || seen[v] {
			return ErrInvalidTour
		}
		seen[v] = true
	}

	return nil
}

// reverseArcInPlace reverses tour[i..k] (inclusive), 1 ≤ i < k ≤ n−1, so the
// fixed endpoints tour[0] and tour[n] never move.
//
// Complexity: O(k−i).
func reverseArcInPlace(tour []int, i, k int) {
	for i < k {
		tour[i], tour[k] = tour[k], tour[i]
		i++
		k--
	}
}

// label returns the display name of city v.
func label(labels []string, v int) string {
	if labels != nil {
		return labels[v]
	}

	return strconv.Itoa(v + 1)
}
