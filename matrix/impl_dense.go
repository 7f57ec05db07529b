// SPDX-License-Identifier: MIT

// Package matrix - Dense storage (row-major) & safe accessors.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Guarantee safety at the public surface: At/Set return errors instead of panicking.
//   - Offer the two Gauss-Jordan row primitives (ScaleRow, AddScaledRow) that
//     the simplex pivot is built from, operating directly on the flat buffer.
//   - Enforce a numeric policy (optional rejection of NaN/Inf) from a single source of truth.
//
// Complexity quicksheet:
//   - NewDense: O(r*c) zero-init; At/Set/Row: O(1); Clone: O(r*c); row ops: O(c).

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- error context tags ----------

const (
	ctxAt        = "At"           // method tag used in error wrappers
	ctxSet       = "Set"          // method tag used in error wrappers
	ctxRow       = "Row"          // method tag used in error wrappers
	ctxScaleRow  = "ScaleRow"     // method tag used in error wrappers
	ctxAddScaled = "AddScaledRow" // method tag used in error wrappers
)

// ---------- Formatting literals  ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): %w"; the sentinel is preserved for errors.Is.
//
// Complexity: O(1).
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix.
//   - r,c hold dimensions (rows, cols).
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - validateNaNInf enables optional NaN/Inf rejection in Set.
type Dense struct {
	r, c           int       // row and column counts (>0)
	data           []float64 // contiguous row-major storage (len == r*c)
	validateNaNInf bool      // numeric guard: reject NaN/Inf in Set when true
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
//
// Errors:
//   - ErrInvalidDimensions when rows<=0 or cols<=0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// Allocate a contiguous flat buffer; make() zero-fills it deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{
		r:              rows,
		c:              cols,
		data:           buf,
		validateNaNInf: DefaultValidateNaNInf,
	}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
// This is the bridge from calculator input tables (distance grids,
// coefficient rows) to the flat buffer.
//
// Errors:
//   - ErrInvalidDimensions for an empty table or empty first row.
//   - ErrDimensionMismatch for ragged rows.
//   - ErrNaNInf for non-finite cells (policy is on for new matrices).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	m, err := NewDense(len(rows), len(rows[0]))
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		v    float64
	)
	for i = 0; i < m.r; i++ {
		if len(rows[i]) != m.c {
			return nil, fmt.Errorf("NewDenseFrom: row %d has %d cols, want %d: %w", i, len(rows[i]), m.c, ErrDimensionMismatch)
		}
		for j = 0; j < m.c; j++ {
			v = rows[i][j]
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, denseErrorf(ctxSet, i, j, ErrNaNInf)
			}
			m.data[i*m.c+j] = v
		}
	}

	return m, nil
}

// Rows returns the row count. No side effects.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. No side effects.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call for convenience.
// Complexity: O(1).
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
//
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Never panics on out-of-range; returns a wrapped sentinel error.
//
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err) // wrap with context
	}

	return m.data[off], nil
}

// Set stores v at (row, col) or returns an error (bounds or numeric policy).
//
// Errors:
//   - ErrOutOfRange for bounds; ErrNaNInf for invalid numbers when the policy is on.
//
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	off, err := m.indexOf(row, col)
	if err != nil {
		return denseErrorf(ctxSet, row, col, err) // wrap with context
	}
	// Numeric policy: optional finite-only enforcement.
	if m.validateNaNInf && (math.IsNaN(v) || math.IsInf(v, 0)) {
		return denseErrorf(ctxSet, row, col, ErrNaNInf)
	}
	m.data[off] = v // direct flat write

	return nil
}

// Clone returns a deep copy (new buffer, same numeric policy).
// Mutations of the clone never affect the original.
//
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix {
	return m.CloneDense()
}

// CloneDense is Clone with the concrete return type, for callers that keep
// snapshots (e.g. simplex iteration history) and need Row access afterwards.
//
// Complexity: O(r*c).
func (m *Dense) CloneDense() *Dense {
	cp := make([]float64, len(m.data)) // allocate same length
	copy(cp, m.data)                   // deep copy

	return &Dense{
		r:              m.r,
		c:              m.c,
		data:           cp,
		validateNaNInf: m.validateNaNInf, // preserve guard policy
	}
}

// Row returns row i as a slice aliasing the underlying buffer.
// Writes through the slice mutate the matrix; the slice has exactly Cols()
// elements and its capacity is clipped so appends never spill into row i+1.
//
// Errors:
//   - ErrOutOfRange when i is not a valid row.
//
// Complexity: O(1).
func (m *Dense) Row(i int) ([]float64, error) {
	if i < 0 || i >= m.r {
		return nil, denseErrorf(ctxRow, i, 0, ErrOutOfRange)
	}
	base := i * m.c

	return m.data[base : base+m.c : base+m.c], nil
}

// ScaleRow multiplies every entry of row i by alpha.
//
// Errors:
//   - ErrOutOfRange for a bad row; ErrZeroScale for alpha == 0;
//     ErrNaNInf for a non-finite alpha.
//
// Complexity: O(c).
func (m *Dense) ScaleRow(i int, alpha float64) error {
	if i < 0 || i >= m.r {
		return denseErrorf(ctxScaleRow, i, 0, ErrOutOfRange)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return denseErrorf(ctxScaleRow, i, 0, ErrNaNInf)
	}
	if alpha == 0 {
		return denseErrorf(ctxScaleRow, i, 0, ErrZeroScale)
	}

	var (
		base = i * m.c
		j    int
	)
	for j = 0; j < m.c; j++ {
		m.data[base+j] *= alpha
	}

	return nil
}

// AddScaledRow performs row[dst] += alpha * row[src] (one Gauss-Jordan
// elimination step). dst == src is rejected as a shape misuse.
//
// Errors:
//   - ErrOutOfRange for bad indices; ErrDimensionMismatch for dst == src;
//     ErrNaNInf for a non-finite alpha.
//
// Complexity: O(c).
func (m *Dense) AddScaledRow(dst, src int, alpha float64) error {
	if dst < 0 || dst >= m.r || src < 0 || src >= m.r {
		return denseErrorf(ctxAddScaled, dst, src, ErrOutOfRange)
	}
	if dst == src {
		return denseErrorf(ctxAddScaled, dst, src, ErrDimensionMismatch)
	}
	if math.IsNaN(alpha) || math.IsInf(alpha, 0) {
		return denseErrorf(ctxAddScaled, dst, src, ErrNaNInf)
	}
	if alpha == 0 {
		return nil
	}

	var (
		d = dst * m.c
		s = src * m.c
		j int
	)
	for j = 0; j < m.c; j++ {
		m.data[d+j] += alpha * m.data[s+j]
	}

	return nil
}

// Mat returns a gonum *mat.Dense sharing this matrix's buffer.
// Writes through either view are visible in both.
//
// Complexity: O(1).
func (m *Dense) Mat() *mat.Dense {
	return mat.NewDense(m.r, m.c, m.data)
}

// String HUMAN-READABLE dump of rows for diagnostics.
// Not for hot paths; intended for logs, tests and debugging.
//
// Complexity: O(r*c).
func (m *Dense) String() string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < m.r; i++ { // iterate rows deterministically
		b.WriteString(_fmtRowOpen) // open row
		base = i * m.c
		for j = 0; j < m.c; j++ { // iterate cols
			b.WriteString(fmt.Sprintf("%g", m.data[base+j]))
			if j+1 < m.c {
				b.WriteString(_fmtSep) // separate values with comma + space
			}
		}
		b.WriteString(_fmtRowClose) // close row
	}

	return b.String()
}
