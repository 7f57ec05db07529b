// SPDX-License-Identifier: MIT

package lp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/lp"
)

func sample() lp.Problem {
	return lp.Problem{
		Sense:     lp.Maximize,
		Objective: []float64{3, 2},
		Constraints: []lp.Constraint{
			{Coefficients: []float64{1, 1}, Relation: lp.LessEq, RHS: 4},
			{Coefficients: []float64{1, 3}, Relation: lp.LessEq, RHS: 6},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	require.NoError(t, sample().Validate())
}

func TestValidate_Errors(t *testing.T) {
	p := sample()
	p.Constraints[1].Coefficients = []float64{1}
	err := p.Validate()
	require.ErrorIs(t, err, lp.ErrInvalidDimension)
	assert.Contains(t, err.Error(), "constraint 1")

	require.ErrorIs(t, lp.Problem{}.Validate(), lp.ErrEmptyProblem)

	p = sample()
	p.Objective[0] = math.NaN()
	require.ErrorIs(t, p.Validate(), lp.ErrNaNInf)

	p = sample()
	p.Constraints[0].RHS = math.Inf(1)
	require.ErrorIs(t, p.Validate(), lp.ErrNaNInf)

	p = sample()
	p.Constraints[0].Relation = lp.Relation(9)
	require.ErrorIs(t, p.Validate(), lp.ErrUnknownRelation)

	p = sample()
	p.Sense = lp.Sense(7)
	require.ErrorIs(t, p.Validate(), lp.ErrUnknownSense)
}

func TestEvaluateAndFeasible(t *testing.T) {
	p := sample()
	z, err := p.Evaluate([]float64{4, 0})
	require.NoError(t, err)
	assert.InDelta(t, 12.0, z, 1e-12)

	_, err = p.Evaluate([]float64{1})
	require.True(t, errors.Is(err, lp.ErrInvalidDimension))

	assert.True(t, p.Feasible([]float64{4, 0}, lp.DefaultEps))
	assert.True(t, p.Feasible([]float64{3, 1}, lp.DefaultEps))
	assert.False(t, p.Feasible([]float64{5, 0}, lp.DefaultEps))
	assert.False(t, p.Feasible([]float64{-1, 0}, lp.DefaultEps))
	assert.False(t, p.Feasible([]float64{1}, lp.DefaultEps))
}

func TestConstraintSatisfied(t *testing.T) {
	c := lp.Constraint{Coefficients: []float64{1, 2}, Relation: lp.Equal, RHS: 5}
	assert.True(t, c.Satisfied([]float64{1, 2}, 1e-9))
	assert.False(t, c.Satisfied([]float64{1, 2.1}, 1e-9))

	c.Relation = lp.GreaterEq
	assert.True(t, c.Satisfied([]float64{3, 2}, 1e-9))
	assert.False(t, c.Satisfied([]float64{0, 2}, 1e-9))
}

func TestParseRelationAndSense(t *testing.T) {
	cases := map[string]lp.Relation{
		"<=": lp.LessEq, "≤": lp.LessEq,
		">=": lp.GreaterEq, "≥": lp.GreaterEq,
		"=": lp.Equal, "==": lp.Equal,
	}
	for in, want := range cases {
		got, err := lp.ParseRelation(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := lp.ParseRelation("<")
	require.ErrorIs(t, err, lp.ErrUnknownRelation)

	s, err := lp.ParseSense(" MAX ")
	require.NoError(t, err)
	assert.Equal(t, lp.Maximize, s)
	assert.Equal(t, lp.Minimize, s.Opposite())
	_, err = lp.ParseSense("best")
	require.ErrorIs(t, err, lp.ErrUnknownSense)
}

func TestStrings(t *testing.T) {
	assert.Equal(t, "not_converged", lp.NotConverged.String())
	assert.Equal(t, "optimal", lp.Optimal.String())
	assert.Equal(t, ">=", lp.GreaterEq.String())
	assert.Equal(t, lp.LessEq, lp.GreaterEq.Flip())
	assert.Equal(t, lp.Equal, lp.Equal.Flip())
	assert.Equal(t, "min", lp.Minimize.String())
}

func TestClone_Independent(t *testing.T) {
	p := sample()
	q := p.Clone()
	q.Constraints[0].Coefficients[0] = 99
	q.Objective[1] = 99
	assert.Equal(t, 1.0, p.Constraints[0].Coefficients[0])
	assert.Equal(t, 2.0, p.Objective[1])
}
