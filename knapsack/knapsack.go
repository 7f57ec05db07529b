// SPDX-License-Identifier: MIT

package knapsack

import (
	"fmt"
	"math"
	"sort"
)

// Solve computes the 0/1 knapsack optimum by dynamic programming.
//
// Algorithm Outline:
//  1. Let n = len(items). Allocate the (n+1)×(capacity+1) table dp.
//  2. dp[0][w] = 0 for every w.
//  3. For i = 1..n, w = 0..capacity:
//     dp[i][w] = max(dp[i-1][w], dp[i-1][w-wᵢ] + vᵢ)   if wᵢ ≤ w
//     dp[i][w] = dp[i-1][w]                           otherwise
//  4. Backtrack from (n, capacity): item i-1 is taken whenever
//     dp[i][w] ≠ dp[i-1][w], and w drops by its weight.
//
// Invariants: dp is non-decreasing in w for fixed i and in i for fixed w.
//
// Errors:
//   - ErrInvalidInput  — negative capacity, weight or value.
//   - ErrTableTooLarge — table would exceed MaxTableCells.
//
// Complexity:
//
//	Time   = O(n·capacity)
//	Memory = O(n·capacity)
func Solve(capacity int, items []Item) (Result, error) {
	if capacity < 0 {
		return Result{}, fmt.Errorf("capacity %d: %w", capacity, ErrInvalidInput)
	}
	for i, it := range items {
		if it.Weight < 0 || it.Value < 0 {
			return Result{}, fmt.Errorf("item %d (w=%d, v=%d): %w", i, it.Weight, it.Value, ErrInvalidInput)
		}
	}

	n := len(items)
	if float64(n+1)*float64(capacity+1) > MaxTableCells {
		return Result{}, ErrTableTooLarge
	}

	var (
		dp   = make([][]int, n+1)
		i, w int
		it   Item
	)
	for i = range dp {
		dp[i] = make([]int, capacity+1)
	}
	for i = 1; i <= n; i++ {
		it = items[i-1]
		for w = 0; w <= capacity; w++ {
			dp[i][w] = dp[i-1][w]
			if it.Weight <= w {
				if take := dp[i-1][w-it.Weight] + it.Value; take > dp[i][w] {
					dp[i][w] = take
				}
			}
		}
	}

	res := Result{MaxValue: dp[n][capacity], Table: dp}
	w = capacity
	for i = n; i > 0; i-- {
		if dp[i][w] != dp[i-1][w] {
			res.Selected = append(res.Selected, i-1)
			res.TotalWeight += items[i-1].Weight
			w -= items[i-1].Weight
		}
	}
	sort.Ints(res.Selected)

	return res, nil
}

// SolveFloat is Solve for calculator input given as floats. Every number must
// be a finite, non-negative integer value; 2.5 is rejected, not truncated.
//
// Errors: ErrInvalidInput for fractional, negative or non-finite numbers and
// for len(weights) != len(values).
func SolveFloat(capacity float64, weights, values []float64) (Result, error) {
	if len(weights) != len(values) {
		return Result{}, fmt.Errorf("%d weights, %d values: %w", len(weights), len(values), ErrInvalidInput)
	}
	c, err := toInt(capacity)
	if err != nil {
		return Result{}, fmt.Errorf("capacity: %w", err)
	}

	items := make([]Item, len(weights))
	for i := range weights {
		if items[i].Weight, err = toInt(weights[i]); err != nil {
			return Result{}, fmt.Errorf("item %d weight: %w", i, err)
		}
		if items[i].Value, err = toInt(values[i]); err != nil {
			return Result{}, fmt.Errorf("item %d value: %w", i, err)
		}
	}

	return Solve(c, items)
}

func toInt(v float64) (int, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, fmt.Errorf("%g: %w", v, ErrInvalidInput)
	}

	return int(v), nil
}
