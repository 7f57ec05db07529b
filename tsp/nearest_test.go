// SPDX-License-Identifier: MIT

package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/tsp"
)

func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

func fourCities(t *testing.T) *matrix.Dense {
	return dense(t, [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	})
}

// greedyTrap is a 5-city instance where nearest-neighbor costs 28 and the optimum is 26.
func greedyTrap(t *testing.T) *matrix.Dense {
	return dense(t, [][]float64{
		{0, 2, 9, 10, 7},
		{2, 0, 6, 4, 3},
		{9, 6, 0, 8, 5},
		{10, 4, 8, 0, 6},
		{7, 3, 5, 6, 0},
	})
}

// independentCost recomputes the tour length straight from the rows.
func independentCost(rows [][]float64, tour []int) float64 {
	var sum float64
	for i := 0; i+1 < len(tour); i++ {
		sum += rows[tour[i]][tour[i+1]]
	}

	return sum
}

func TestNearestNeighbor_FourCities(t *testing.T) {
	res, err := tsp.NearestNeighbor(fourCities(t), tsp.DefaultOptions())
	require.NoError(t, err)

	assert.Equal(t, []int{0, 1, 3, 2, 0}, res.Tour)
	assert.Equal(t, 80.0, res.Cost)
	require.Len(t, res.Steps, 4)
	assert.Equal(t, tsp.Step{From: 0, To: 1, FromLabel: "1", ToLabel: "2", Distance: 10}, res.Steps[0])
	assert.Equal(t, 15.0, res.Steps[3].Distance)
}

func TestNearestNeighbor_TourIsClosedPermutation(t *testing.T) {
	rows := [][]float64{
		{0, 2, 9, 10, 7},
		{2, 0, 6, 4, 3},
		{9, 6, 0, 8, 5},
		{10, 4, 8, 0, 6},
		{7, 3, 5, 6, 0},
	}
	for start := 0; start < len(rows); start++ {
		opts := tsp.DefaultOptions()
		opts.StartVertex = start
		res, err := tsp.NearestNeighbor(dense(t, rows), opts)
		require.NoError(t, err)

		require.NoError(t, tsp.ValidateTour(res.Tour, len(rows), start))
		assert.InDelta(t, independentCost(rows, res.Tour), res.Cost, 1e-9)

		var legs float64
		for _, s := range res.Steps {
			legs += s.Distance
		}
		assert.InDelta(t, res.Cost, legs, 1e-9)
	}
}

func TestNearestNeighbor_TwoOptImproves(t *testing.T) {
	greedy, err := tsp.NearestNeighbor(greedyTrap(t), tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 4, 2, 3, 0}, greedy.Tour)
	assert.Equal(t, 28.0, greedy.Cost)

	opts := tsp.DefaultOptions()
	opts.TwoOpt = true
	polished, err := tsp.NearestNeighbor(greedyTrap(t), opts)
	require.NoError(t, err)
	assert.Equal(t, 26.0, polished.Cost)
	assert.LessOrEqual(t, polished.Cost, greedy.Cost)
	require.NoError(t, tsp.ValidateTour(polished.Tour, 5, 0))
	require.Len(t, polished.Steps, 5)
	assert.Equal(t, polished.Tour[1], polished.Steps[0].To)
}

func TestNearestNeighbor_TieTakesSmallestIndex(t *testing.T) {
	m := dense(t, [][]float64{
		{0, 5, 5},
		{5, 0, 1},
		{5, 1, 0},
	})
	res, err := tsp.NearestNeighbor(m, tsp.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 0}, res.Tour)
}

func TestNearestNeighbor_Labels(t *testing.T) {
	opts := tsp.DefaultOptions()
	opts.Labels = []string{"A", "B", "C", "D"}
	res, err := tsp.NearestNeighbor(fourCities(t), opts)
	require.NoError(t, err)
	assert.Equal(t, "A", res.Steps[0].FromLabel)
	assert.Equal(t, "B", res.Steps[0].ToLabel)
	assert.Equal(t, "A", res.Steps[3].ToLabel)

	opts.Labels = []string{"A"}
	_, err = tsp.NearestNeighbor(fourCities(t), opts)
	require.ErrorIs(t, err, tsp.ErrLabelCount)
}

func TestNearestNeighbor_Validation(t *testing.T) {
	cases := map[string]struct {
		rows [][]float64
		want error
	}{
		"single":    {rows: [][]float64{{0}}, want: tsp.ErrTooFewCities},
		"nonsquare": {rows: [][]float64{{0, 1, 2}, {1, 0, 3}}, want: tsp.ErrNonSquare},
		"negative":  {rows: [][]float64{{0, -1}, {-1, 0}}, want: tsp.ErrNegativeWeight},
		"diagonal":  {rows: [][]float64{{1, 2}, {2, 0}}, want: tsp.ErrNonZeroDiagonal},
		"asym":      {rows: [][]float64{{0, 2}, {3, 0}}, want: tsp.ErrAsymmetric},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := tsp.NearestNeighbor(dense(t, tc.rows), tsp.DefaultOptions())
			require.ErrorIs(t, err, tc.want)
		})
	}

	_, err := tsp.NearestNeighbor(nil, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrTooFewCities)

	opts := tsp.DefaultOptions()
	opts.StartVertex = 4
	_, err = tsp.NearestNeighbor(fourCities(t), opts)
	require.ErrorIs(t, err, tsp.ErrStartOutOfRange)

	opts = tsp.DefaultOptions()
	opts.Eps = -1
	_, err = tsp.NearestNeighbor(fourCities(t), opts)
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)
}

func TestNearestNeighbor_RejectsInf(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	// NewDenseFrom refuses Inf, so build the matrix through the raw row view.
	r0, err := m.Row(0)
	require.NoError(t, err)
	r1, err := m.Row(1)
	require.NoError(t, err)
	r0[1], r1[0] = posInf(), posInf()

	_, err = tsp.NearestNeighbor(m, tsp.DefaultOptions())
	require.ErrorIs(t, err, tsp.ErrInvalidDistance)
}
