// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"
)

// zeroTol is the magnitude below which a pivot element is treated as zero and
// below which a right-hand side is snapped to exactly zero after a pivot.
const zeroTol = 1e-12

// PivotColumn returns the entering column: the most negative objective-row
// entry strictly below −eps among non-blocked, non-RHS columns. Ties keep the
// first occurrence. Returns -1 when no entry qualifies (current basis optimal).
//
// Complexity: O(cols).
func (t *Tableau) PivotColumn(eps float64) int {
	var (
		obj  = t.row(t.NumConstraints())
		best = -eps
		col  = -1
		j    int
	)
	for j = 0; j < t.RHSCol(); j++ {
		if t.blocked[j] {
			continue
		}
		if obj[j] < best {
			best, col = obj[j], j
		}
	}

	return col
}

// PivotRow returns the leaving row for entering column col: among constraint
// rows with entry > eps, the one minimizing rhs/entry with ratio ≥ 0. Ties keep
// the first occurrence. Returns -1 when no row qualifies (unbounded direction)
// or col is out of range.
//
// Complexity: O(m).
func (t *Tableau) PivotRow(col int, eps float64) int {
	if col < 0 || col >= t.RHSCol() {
		return -1
	}

	var (
		rhs      = t.RHSCol()
		minRatio = math.Inf(1)
		row      = -1
		i        int
		a, ratio float64
		r        []float64
	)
	for i = 0; i < t.NumConstraints(); i++ {
		r = t.row(i)
		a = r[col]
		if a <= eps {
			continue
		}
		ratio = r[rhs] / a
		if ratio >= 0 && ratio < minRatio {
			minRatio, row = ratio, i
		}
	}

	return row
}

// Pivot performs the Gauss-Jordan exchange at (row, col): the pivot row is
// divided by the pivot element and col is eliminated from every other row,
// the objective row included. Afterwards the pivot cell is exactly 1, the
// rest of the column exactly 0, and col is basic in row.
//
// Errors: ErrPivotOutOfRange (objective row, RHS column or outside the
// tableau), ErrZeroPivot (|element| < 1e-12).
//
// Complexity: O(rows·cols).
func (t *Tableau) Pivot(row, col int) error {
	if row < 0 || row >= t.NumConstraints() || col < 0 || col >= t.RHSCol() {
		return fmt.Errorf("Tableau.Pivot(%d,%d): %w", row, col, ErrPivotOutOfRange)
	}

	pr := t.row(row)
	pv := pr[col]
	if math.Abs(pv) < zeroTol {
		return fmt.Errorf("Tableau.Pivot(%d,%d): %w", row, col, ErrZeroPivot)
	}
	if err := t.data.ScaleRow(row, 1/pv); err != nil {
		return fmt.Errorf("Tableau.Pivot(%d,%d): %w", row, col, err)
	}
	pr[col] = 1

	var (
		rows   = t.data.Rows()
		rhs    = t.RHSCol()
		i      int
		factor float64
		r      []float64
	)
	for i = 0; i < rows; i++ {
		if i == row {
			continue
		}
		r = t.row(i)
		factor = r[col]
		if factor != 0 {
			if err := t.data.AddScaledRow(i, row, -factor); err != nil {
				return fmt.Errorf("Tableau.Pivot(%d,%d): %w", row, col, err)
			}
		}
		r[col] = 0
		if i < rows-1 && math.Abs(r[rhs]) < zeroTol {
			r[rhs] = 0
		}
	}
	t.basis[row] = col

	return nil
}
