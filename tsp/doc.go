// SPDX-License-Identifier: MIT

// Package tsp builds closed tours for the symmetric travelling salesman
// problem with the nearest-neighbor heuristic and an optional 2-opt polish.
//
// Nearest-neighbor starts at Options.StartVertex, repeatedly moves to the
// closest unvisited city (smallest index on ties) and finally returns to the
// start. It is a greedy approximation: the tour is a valid Hamiltonian cycle
// but not necessarily the shortest one. Setting Options.TwoOpt runs
// first-improvement 2-opt on the greedy tour, which never makes it longer.
//
// Distances come as an n×n matrix.Matrix that must be square with n ≥ 2,
// finite, non-negative, symmetric and zero on the diagonal.
//
// Tours are represented as n+1 vertex indices with tour[0] == tour[n] == start.
// Costs are rounded to 1e-9 so equal tours compare equal across platforms.
package tsp
