// SPDX-License-Identifier: MIT

package duality_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/duality"
	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/simplex"
)

const tol = 1e-4

func sampleMax() lp.Problem {
	return lp.Problem{
		Sense:     lp.Maximize,
		Objective: []float64{3, 2},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 1}, Relation: lp.LessEq, RHS: 4},
			{Coefficients: []float64{1, 3}, Relation: lp.LessEq, RHS: 6},
		},
	}
}

func TestTransform_MaxPrimal(t *testing.T) {
	d, err := duality.Transform(sampleMax())
	require.NoError(t, err)

	assert.Equal(t, lp.Minimize, d.Problem.Sense)
	assert.Equal(t, []float64{4, 6}, d.Problem.Objective)
	require.Len(t, d.Problem.Constraints, 2)
	assert.Equal(t, []float64{1, 1}, d.Problem.Constraints[0].Coefficients)
	assert.Equal(t, []float64{1, 3}, d.Problem.Constraints[1].Coefficients)
	assert.Equal(t, lp.GreaterEq, d.Problem.Constraints[0].Relation)
	assert.Equal(t, 3.0, d.Problem.Constraints[0].RHS)
	assert.Equal(t, 2.0, d.Problem.Constraints[1].RHS)
	assert.Equal(t, []duality.Sign{duality.NonNegative, duality.NonNegative}, d.Signs)
}

func TestTransform_SignTable(t *testing.T) {
	rows := []lp.Constraint{
		{Coefficients: []float64{1, 0, 2}, Relation: lp.LessEq, RHS: 1},
		{Coefficients: []float64{0, 1, 0}, Relation: lp.GreaterEq, RHS: 2},
		{Coefficients: []float64{1, 1, 1}, Relation: lp.Equal, RHS: 3},
	}
	maxP := lp.Problem{Sense: lp.Maximize, Objective: []float64{1, 2, 3}, Constraints: rows}
	d, err := duality.Transform(maxP)
	require.NoError(t, err)
	assert.Equal(t, []duality.Sign{duality.NonNegative, duality.NonPositive, duality.Free}, d.Signs)
	require.Len(t, d.Problem.Constraints, 3)
	assert.Equal(t, []float64{2, 0, 1}, d.Problem.Constraints[2].Coefficients)

	minP := maxP.Clone()
	minP.Sense = lp.Minimize
	d, err = duality.Transform(minP)
	require.NoError(t, err)
	assert.Equal(t, lp.Maximize, d.Problem.Sense)
	assert.Equal(t, lp.LessEq, d.Problem.Constraints[0].Relation)
	assert.Equal(t, []duality.Sign{duality.NonPositive, duality.NonNegative, duality.Free}, d.Signs)
}

func TestTransform_Invalid(t *testing.T) {
	p := sampleMax()
	p.Constraints[0].Coefficients = []float64{1}
	_, err := duality.Transform(p)
	require.ErrorIs(t, err, lp.ErrInvalidDimension)
}

func TestFormulation(t *testing.T) {
	d, err := duality.Transform(sampleMax())
	require.NoError(t, err)

	want := "Dual Problem:\n\n" +
		"Minimize\n" +
		"Z = 4y1 + 6y2\n\n" +
		"Subject To:\n" +
		"y1 + y2 >= 3\n" +
		"y1 + 3y2 >= 2\n\n" +
		"Sign restrictions:\n" +
		"y1 ≥ 0\n" +
		"y2 ≥ 0\n"
	assert.Equal(t, want, d.Formulation())
}

func TestSolvePair_StrongDuality(t *testing.T) {
	cases := map[string]struct {
		primal lp.Problem
		z      float64
		y      []float64
	}{
		"max-leq": {primal: sampleMax(), z: 12, y: []float64{3, 0}},
		"min-geq": {
			primal: lp.Problem{
				Sense:     lp.Minimize,
				Objective: []float64{2, 3},
				Constraints: []lp.Constraint{
					{Coefficients: []float64{1, 1}, Relation: lp.GreaterEq, RHS: 4},
					{Coefficients: []float64{1, 3}, Relation: lp.GreaterEq, RHS: 6},
				},
			},
			z: 9, y: []float64{1.5, 0.5},
		},
		"free-dual": {
			primal: lp.Problem{
				Sense:     lp.Maximize,
				Objective: []float64{1, 1},
				Constraints: []lp.Constraint{
					{Coefficients: []float64{1, 2}, Relation: lp.Equal, RHS: 4},
					{Coefficients: []float64{1, 0}, Relation: lp.LessEq, RHS: 2},
				},
			},
			z: 3, y: []float64{0.5, 0.5},
		},
		"nonpositive-dual": {
			primal: lp.Problem{
				Sense:     lp.Maximize,
				Objective: []float64{1, 0},
				Constraints: []lp.Constraint{
					{Coefficients: []float64{1, 1}, Relation: lp.LessEq, RHS: 4},
					{Coefficients: []float64{0, 1}, Relation: lp.GreaterEq, RHS: 1},
				},
			},
			z: 3, y: []float64{1, -1},
		},
	}

	for name, tc := range cases {
		for _, m := range []simplex.Method{simplex.BigM, simplex.TwoPhase} {
			t.Run(name+"/"+m.String(), func(t *testing.T) {
				opts := simplex.DefaultOptions()
				opts.Method = m
				pair, err := duality.SolvePair(tc.primal, opts)
				require.NoError(t, err)
				require.True(t, pair.BothOptimal())

				assert.InDelta(t, tc.z, pair.Primal.Objective, tol)
				assert.InDelta(t, tc.z, pair.Dual.Objective, tol)
				assert.True(t, pair.StrongDuality(tol))
				assert.InDeltaSlice(t, tc.y, pair.Dual.Values, tol)
				assert.True(t, pair.DualProblem.Feasible(pair.Dual.Values, tol))
			})
		}
	}
}

func TestWeakDuality(t *testing.T) {
	p := sampleMax()
	d, err := duality.Transform(p)
	require.NoError(t, err)

	// Feasible primal points and feasible dual points.
	xs := [][]float64{{0, 0}, {1, 1}, {3, 1}, {4, 0}}
	ys := [][]float64{{3, 0}, {3, 1}, {5, 5}, {2, 1}}
	for _, x := range xs {
		require.True(t, p.Feasible(x, tol))
		for _, y := range ys {
			require.True(t, d.Feasible(y, tol), "%v", y)
			ok, err := duality.WeakDualityHolds(p, x, y, tol)
			require.NoError(t, err)
			assert.True(t, ok, "x=%v y=%v", x, y)
		}
	}

	_, err = duality.WeakDualityHolds(p, []float64{1}, []float64{1, 1}, tol)
	require.ErrorIs(t, err, lp.ErrInvalidDimension)
}

func TestSolvePair_UnboundedPrimalInfeasibleDual(t *testing.T) {
	p := lp.Problem{
		Sense:     lp.Maximize,
		Objective: []float64{1, 1},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, -1}, Relation: lp.LessEq, RHS: 1},
		},
	}
	pair, err := duality.SolvePair(p, simplex.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, lp.Unbounded, pair.Primal.Status)
	assert.Equal(t, lp.Infeasible, pair.Dual.Status)
	assert.False(t, pair.BothOptimal())
	assert.Zero(t, pair.Gap)
}

func TestDualSolve_SignMismatch(t *testing.T) {
	d, err := duality.Transform(sampleMax())
	require.NoError(t, err)
	d.Signs = d.Signs[:1]
	_, err = d.Solve(simplex.DefaultOptions())
	require.ErrorIs(t, err, duality.ErrSignMismatch)
}
