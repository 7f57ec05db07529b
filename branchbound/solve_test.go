// SPDX-License-Identifier: MIT

package branchbound_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/branchbound"
	"github.com/katalvlaran/lvopt/lp"
)

const tol = 1e-6

// textbook is max 5x1+4x2 s.t. 6x1+4x2 ≤ 24, x1+2x2 ≤ 6.
// LP optimum 21 at (3, 1.5); integer optimum 20 at (4, 0).
func textbook() lp.Problem {
	return lp.Problem{
		Sense:     lp.Maximize,
		Objective: []float64{5, 4},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{6, 4}, Relation: lp.LessEq, RHS: 24},
			{Coefficients: []float64{1, 2}, Relation: lp.LessEq, RHS: 6},
		},
	}
}

func TestSolve_Textbook(t *testing.T) {
	res, err := branchbound.Solve(textbook(), nil, branchbound.DefaultOptions())
	require.NoError(t, err)

	require.Equal(t, lp.Optimal, res.Status)
	assert.Equal(t, []float64{4, 0}, res.Values)
	assert.InDelta(t, 20.0, res.Objective, tol)

	require.Len(t, res.Nodes, 5)
	root := res.Nodes[0]
	assert.Equal(t, -1, root.Parent)
	assert.Equal(t, branchbound.Branched, root.Status)
	assert.InDelta(t, 21.0, root.Bound, tol)

	assert.Equal(t, "x2 <= 1", res.Nodes[1].Branch)
	assert.Equal(t, "x1 <= 3", res.Nodes[2].Branch)
	assert.Equal(t, branchbound.Integral, res.Nodes[2].Status)
	assert.Equal(t, "x1 >= 4", res.Nodes[3].Branch)
	assert.Equal(t, 2, res.Nodes[3].Depth)
	assert.Equal(t, "x2 >= 2", res.Nodes[4].Branch)
	assert.Equal(t, branchbound.Pruned, res.Nodes[4].Status)

	sol := res.Solution()
	assert.Equal(t, lp.Optimal, sol.Status)
	assert.Equal(t, 5, sol.Iterations)
}

// bruteForce enumerates integer points of a 2-variable problem in [0, limit]².
func bruteForce(p lp.Problem, limit int) (float64, bool) {
	best, found := 0.0, false
	for a := 0; a <= limit; a++ {
		for b := 0; b <= limit; b++ {
			x := []float64{float64(a), float64(b)}
			if !p.Feasible(x, tol) {
				continue
			}
			z, _ := p.Evaluate(x)
			if !found || p.Better(z, best) {
				best, found = z, true
			}
		}
	}

	return best, found
}

func TestSolve_MatchesEnumeration(t *testing.T) {
	problems := []lp.Problem{
		textbook(),
		{
			Sense:     lp.Minimize,
			Objective: []float64{3, 2},
			Constraints: []lp.Constraint{
				{Coefficients: []float64{1, 1}, Relation: lp.GreaterEq, RHS: 3.5},
				{Coefficients: []float64{1, 0}, Relation: lp.GreaterEq, RHS: 0.5},
			},
		},
		{
			Sense:     lp.Maximize,
			Objective: []float64{1, 1},
			Constraints: []lp.Constraint{
				{Coefficients: []float64{-2, 2}, Relation: lp.GreaterEq, RHS: 1},
				{Coefficients: []float64{8, 10}, Relation: lp.LessEq, RHS: 45},
			},
		},
		{
			Sense:     lp.Maximize,
			Objective: []float64{3, 5},
			Constraints: []lp.Constraint{
				{Coefficients: []float64{2, 4}, Relation: lp.LessEq, RHS: 25},
				{Coefficients: []float64{1, 0}, Relation: lp.LessEq, RHS: 8},
				{Coefficients: []float64{0, 2}, Relation: lp.LessEq, RHS: 10},
			},
		},
	}
	for i, p := range problems {
		want, ok := bruteForce(p, 20)
		require.True(t, ok, "problem %d", i)

		res, err := branchbound.Solve(p, nil, branchbound.DefaultOptions())
		require.NoError(t, err)
		require.Equal(t, lp.Optimal, res.Status, "problem %d", i)
		assert.InDelta(t, want, res.Objective, 1e-6, "problem %d", i)
		assert.True(t, p.Feasible(res.Values, 1e-6), "problem %d", i)
		for _, v := range res.Values {
			assert.Equal(t, math.Round(v), v, "problem %d", i)
		}
	}
}

func TestSolve_MixedInteger(t *testing.T) {
	res, err := branchbound.Solve(textbook(), []bool{true, false}, branchbound.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, lp.Optimal, res.Status)
	// x1 = 3 is already integral at the relaxation optimum.
	assert.InDelta(t, 21.0, res.Objective, tol)
	assert.InDelta(t, 1.5, res.Values[1], tol)
	assert.Len(t, res.Nodes, 1)
}

func TestSolve_IntegerInfeasible(t *testing.T) {
	p := lp.Problem{
		Sense:     lp.Maximize,
		Objective: []float64{1, 1},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{2, 0}, Relation: lp.Equal, RHS: 1},
			{Coefficients: []float64{0, 1}, Relation: lp.LessEq, RHS: 3},
		},
	}
	res, err := branchbound.Solve(p, nil, branchbound.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, lp.Infeasible, res.Status)
	assert.Nil(t, res.Values)
	require.Len(t, res.Nodes, 3)
	assert.Equal(t, branchbound.Infeasible, res.Nodes[1].Status)
	assert.Equal(t, branchbound.Infeasible, res.Nodes[2].Status)
}

func TestSolve_Unbounded(t *testing.T) {
	p := lp.Problem{
		Sense:     lp.Maximize,
		Objective: []float64{1, 1},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, -1}, Relation: lp.LessEq, RHS: 0.5},
		},
	}
	res, err := branchbound.Solve(p, nil, branchbound.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, lp.Unbounded, res.Status)
	require.Len(t, res.Nodes, 1)
	assert.Equal(t, branchbound.Unbounded, res.Nodes[0].Status)
}

func TestSolve_NodeLimit(t *testing.T) {
	opts := branchbound.DefaultOptions()
	opts.MaxNodes = 1
	res, err := branchbound.Solve(textbook(), nil, opts)
	require.NoError(t, err)
	assert.Equal(t, lp.NotConverged, res.Status)
	assert.Len(t, res.Nodes, 1)
	assert.Nil(t, res.Solution().Values)
}

func TestSolve_Errors(t *testing.T) {
	_, err := branchbound.Solve(textbook(), []bool{true}, branchbound.DefaultOptions())
	require.ErrorIs(t, err, lp.ErrInvalidDimension)

	opts := branchbound.DefaultOptions()
	opts.MaxNodes = 0
	_, err = branchbound.Solve(textbook(), nil, opts)
	require.ErrorIs(t, err, branchbound.ErrInvalidMaxNodes)

	opts = branchbound.DefaultOptions()
	opts.IntTol = 0.5
	_, err = branchbound.Solve(textbook(), nil, opts)
	require.ErrorIs(t, err, branchbound.ErrInvalidIntTol)
}
