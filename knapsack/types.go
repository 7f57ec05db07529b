// SPDX-License-Identifier: MIT

package knapsack

import "errors"

var (
	// ErrInvalidInput indicates a negative or fractional capacity, weight or
	// value, or mismatched weight/value lengths.
	ErrInvalidInput = errors.New("knapsack: invalid input")

	// ErrTableTooLarge indicates (n+1)·(capacity+1) exceeds MaxTableCells.
	ErrTableTooLarge = errors.New("knapsack: DP table too large")
)

// MaxTableCells bounds the DP table so a typo in capacity cannot exhaust memory.
const MaxTableCells = 1 << 24

// Item is one candidate with an integer weight and value.
type Item struct {
	Weight int
	Value  int
}

// Result is the outcome of Solve.
type Result struct {
	// MaxValue is Table[n][capacity].
	MaxValue int

	// Selected holds the chosen item indices in ascending order.
	Selected []int

	// TotalWeight is the summed weight of Selected (≤ capacity).
	TotalWeight int

	// Table is the full DP table, (n+1) rows × (capacity+1) columns.
	Table [][]int
}
