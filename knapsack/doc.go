// SPDX-License-Identifier: MIT

// Package knapsack solves the 0/1 knapsack problem by dynamic programming.
//
// Each item is taken at most once. Solve fills the full (n+1)×(capacity+1)
// table, so the table is available to callers that display it, and recovers
// the chosen items by backtracking through it.
//
// Weights, values and capacity are non-negative integers. SolveFloat accepts
// calculator-style float input and rejects fractional numbers instead of
// truncating them.
package knapsack
