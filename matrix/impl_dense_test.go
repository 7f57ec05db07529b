// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Dense implementation
// of the Matrix interface in the matrix package.
package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/lvopt/matrix"
	"github.com/stretchr/testify/require"
)

// TestNewDenseInvalidDimensions ensures that NewDense rejects non-positive dimensions.
func TestNewDenseInvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 5)                      // attempt to create with zero rows
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions

	_, err = matrix.NewDense(5, 0)                       // attempt to create with zero columns
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions) // expect ErrInvalidDimensions
}

// TestRowsCols verifies that Rows() and Cols() return correct dimension values.
func TestRowsCols(t *testing.T) {
	rows, cols := 3, 4
	m, err := matrix.NewDense(rows, cols)
	require.NoError(t, err)

	require.Equal(t, rows, m.Rows())
	require.Equal(t, cols, m.Cols())
}

// TestAtSetOutOfBounds ensures At() and Set() return ErrOutOfRange on invalid access.
func TestAtSetOutOfBounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	_, err = m.At(-1, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = m.At(0, 2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(2, 0, 1.23)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	err = m.Set(0, -1, 4.56)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestSetRejectsNaNInf verifies the default numeric policy of new matrices.
func TestSetRejectsNaNInf(t *testing.T) {
	m, err := matrix.NewDense(1, 1)
	require.NoError(t, err)

	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

// TestCloneIndependence ensures Clone() returns a deep copy that does not share storage.
func TestCloneIndependence(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	_ = m.Set(0, 0, 1.0)

	clone := m.Clone()
	_ = clone.Set(0, 0, 3.0) // modify the clone, but not the original

	origVal, err := m.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 1.0, origVal)

	cloneVal, err := clone.At(0, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, cloneVal)
}

// TestNewDenseFrom covers the happy path and the ragged / empty guards.
func TestNewDenseFrom(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)
	require.Equal(t, "[1, 2, 3]\n[4, 5, 6]\n", m.String())

	_, err = matrix.NewDenseFrom([][]float64{{1, 2}, {3}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = matrix.NewDenseFrom(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDenseFrom([][]float64{{math.NaN()}})
	require.ErrorIs(t, err, matrix.ErrNaNInf)
}

// TestRowAliasesBuffer checks that Row exposes the live storage of one row only.
func TestRowAliasesBuffer(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	row, err := m.Row(1)
	require.NoError(t, err)
	require.Equal(t, []float64{3, 4}, row)
	require.Equal(t, 2, cap(row)) // clipped: appends cannot spill

	row[0] = 30
	v, _ := m.At(1, 0)
	require.Equal(t, 30.0, v)

	_, err = m.Row(2)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestRowOperations exercises the Gauss-Jordan primitives.
func TestRowOperations(t *testing.T) {
	m, err := matrix.NewDenseFrom([][]float64{{2, 4, 6}, {1, 1, 1}})
	require.NoError(t, err)

	require.NoError(t, m.ScaleRow(0, 0.5))
	require.NoError(t, m.AddScaledRow(1, 0, -1))
	require.Equal(t, "[1, 2, 3]\n[0, -1, -2]\n", m.String())

	require.ErrorIs(t, m.ScaleRow(0, 0), matrix.ErrZeroScale)
	require.ErrorIs(t, m.ScaleRow(5, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.AddScaledRow(0, 0, 1), matrix.ErrDimensionMismatch)
	require.ErrorIs(t, m.AddScaledRow(0, 1, math.Inf(1)), matrix.ErrNaNInf)
}

// TestMatSharesBuffer verifies the gonum view writes through to Dense.
func TestMatSharesBuffer(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	g := m.Mat()
	g.Set(1, 1, 9)

	v, err := m.At(1, 1)
	require.NoError(t, err)
	require.Equal(t, 9.0, v)
}
