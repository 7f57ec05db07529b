// SPDX-License-Identifier: MIT

// Package branchbound solves small integer and mixed-integer linear programs
// by LP-based branch and bound.
//
// Every node solves the LP relaxation of the problem plus the branching
// bounds accumulated on its path, using the simplex package. The relaxation
// objective bounds every integer point below the node:
//
//   - relaxation infeasible → node closed (infeasible);
//   - bound no better than the incumbent → node pruned;
//   - all integer variables integral within IntTol → candidate incumbent;
//   - otherwise branch on the most fractional integer variable xⱼ = v:
//     left child adds xⱼ ≤ ⌊v⌋, right child adds xⱼ ≥ ⌈v⌉.
//
// Search is depth-first with an explicit stack, left child first, so the
// explored tree is deterministic. Options.MaxNodes caps the number of solved
// nodes; hitting the cap before the tree is exhausted yields NotConverged.
// An unbounded relaxation stops the search with status Unbounded.
package branchbound
