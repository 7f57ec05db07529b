// SPDX-License-Identifier: MIT

// Package matrix provides the dense numeric storage shared by the lvopt solvers.
//
// What & Why:
//
//	Simplex tableaux and TSP distance tables are small, rectangular and
//	mutated cell by cell. Dense keeps them in one flat row-major buffer
//	(offset = i*cols + j) with explicit dimensions, so a pivot step is a pair
//	of tight loops over contiguous rows and no row ever aliases another.
//
// Surface:
//   - Dense: NewDense, NewDenseFrom, At/Set (bounds-checked, never panic),
//     Clone, String, Row (no-copy row slice), ScaleRow, AddScaledRow.
//   - Mat: a gonum *mat.Dense sharing the same buffer for formatting and
//     linear algebra.
//   - Validators: ValidateNotNil, ValidateSquare, ValidateSymmetric,
//     ValidateZeroDiagonal.
//
// Errors are package sentinels (errors.go); match them with errors.Is.
//
// Complexity:
//
//	Rows/Cols/At/Set/Row are O(1); Clone and NewDenseFrom are O(r*c);
//	row operations are O(c).
package matrix
