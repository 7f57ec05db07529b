// SPDX-License-Identifier: MIT

package knapsack_test

import (
	"fmt"

	"github.com/katalvlaran/lvopt/knapsack"
)

func ExampleSolve() {
	items := []knapsack.Item{
		{Weight: 2, Value: 3},
		{Weight: 3, Value: 4},
		{Weight: 4, Value: 5},
		{Weight: 5, Value: 6},
	}
	res, err := knapsack.Solve(5, items)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("value:", res.MaxValue, "items:", res.Selected, "weight:", res.TotalWeight)
	// Output:
	// value: 7 items: [0 1] weight: 5
}
