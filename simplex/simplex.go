// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"math"

	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/matrix"
)

// Result is the full outcome of Solve.
type Result struct {
	// Solution holds status, point, objective value and pivot count.
	Solution lp.Solution

	// Tableau is the final tableau.
	Tableau *Tableau

	// History holds the initial tableau and a snapshot after every pivot,
	// only when Options.RecordHistory is set.
	History []*matrix.Dense

	// Basis is the final basic column per constraint row.
	Basis []int
}

// driver carries the per-solve iteration budget and history sink.
type driver struct {
	t       *Tableau
	opts    Options
	iters   int
	history []*matrix.Dense
}

// Solve runs the simplex method on p.
//
// Driver states: Iterating → {Optimal, Unbounded, NotConverged}; an Optimal
// verdict is reclassified Infeasible when an artificial variable remains basic
// at a positive level (BigM) or phase 1 ends with a positive artificial sum
// (TwoPhase). Terminal states are reported in Result.Solution.Status, never as
// errors.
//
// Errors: malformed problems (lp sentinels), invalid Options.
//
// Complexity: O(iterations · m · n).
func Solve(p lp.Problem, opts Options) (Result, error) {
	t, err := Build(p, opts)
	if err != nil {
		return Result{}, err
	}

	d := &driver{t: t, opts: opts}
	d.record()

	var status lp.Status
	switch opts.Method {
	case TwoPhase:
		status, err = d.twoPhase(p)
	default:
		status, err = d.run()
		if err == nil && status == lp.Optimal && t.artificialAtPositiveLevel(opts.Eps) {
			status = lp.Infeasible
		}
	}
	if err != nil {
		return Result{}, fmt.Errorf("simplex.Solve: %w", err)
	}

	res := Result{
		Solution: lp.Solution{Status: status, Iterations: d.iters},
		Tableau:  t,
		History:  d.history,
		Basis:    t.Basis(),
	}
	if status == lp.Optimal {
		res.Solution.Values = t.Values(opts.Eps)
		res.Solution.Objective = t.ObjectiveValue()
	}

	return res, nil
}

// SolveProblem is Solve returning only the lp.Solution.
func SolveProblem(p lp.Problem, opts Options) (lp.Solution, error) {
	res, err := Solve(p, opts)
	if err != nil {
		return lp.Solution{}, err
	}

	return res.Solution, nil
}

// run pivots until no entering column exists, the ratio test fails, or the
// shared iteration budget is spent.
func (d *driver) run() (lp.Status, error) {
	var (
		eps      = d.opts.Eps
		row, col int
	)
	for d.iters < d.opts.MaxIterations {
		col = d.t.PivotColumn(eps)
		if col < 0 {
			return lp.Optimal, nil
		}
		row = d.t.PivotRow(col, eps)
		if row < 0 {
			return lp.Unbounded, nil
		}
		if err := d.t.Pivot(row, col); err != nil {
			return 0, err
		}
		d.iters++
		d.record()
	}
	// The last allowed pivot may itself have reached the optimum.
	if d.t.PivotColumn(eps) < 0 {
		return lp.Optimal, nil
	}

	return lp.NotConverged, nil
}

// twoPhase replaces the Big-M objective row with the phase-1 row, solves for
// feasibility, then restores the real objective with artificials blocked.
func (d *driver) twoPhase(p lp.Problem) (lp.Status, error) {
	var (
		t   = d.t
		m   = t.NumConstraints()
		rhs = t.RHSCol()
		obj = t.row(m)
		eps = d.opts.Eps
		j   int
	)

	hasArtificial := false
	for j = 0; j < rhs; j++ {
		obj[j] = 0
		if t.kinds[j] == Artificial {
			obj[j] = 1
			hasArtificial = true
		}
	}
	obj[rhs] = 0

	if hasArtificial {
		for i, col := range t.basis {
			if t.kinds[col] == Artificial {
				if err := t.data.AddScaledRow(m, i, -1); err != nil {
					return 0, err
				}
			}
		}
		status, err := d.run()
		if err != nil || status != lp.Optimal {
			return status, err
		}
		// Phase-1 optimum is −Σ artificials.
		if obj[rhs] < -eps {
			return lp.Infeasible, nil
		}
		if err = d.driveOutArtificials(); err != nil {
			return 0, err
		}
		for j = 0; j < rhs; j++ {
			if t.kinds[j] == Artificial {
				t.blocked[j] = true
			}
		}
	}

	for j = 0; j <= rhs; j++ {
		obj[j] = 0
	}
	for j = 0; j < t.numVars; j++ {
		obj[j] = -p.Objective[j]
		if t.negated {
			obj[j] = p.Objective[j]
		}
	}
	for i, col := range t.basis {
		if f := obj[col]; f != 0 {
			if err := t.data.AddScaledRow(m, i, -f); err != nil {
				return 0, err
			}
			obj[col] = 0
		}
	}
	d.record()

	return d.run()
}

// driveOutArtificials pivots every zero-level basic artificial out of the
// basis on the first non-artificial column with a usable entry. Rows with no
// such column are redundant and keep their artificial at zero.
// These degenerate pivots do not count against MaxIterations.
func (d *driver) driveOutArtificials() error {
	var (
		t   = d.t
		rhs = t.RHSCol()
		j   int
		r   []float64
	)
	for i := range t.basis {
		if t.kinds[t.basis[i]] != Artificial {
			continue
		}
		r = t.row(i)
		for j = 0; j < rhs; j++ {
			if t.kinds[j] != Artificial && math.Abs(r[j]) > d.opts.Eps {
				if err := t.Pivot(i, j); err != nil {
					return err
				}
				d.record()

				break
			}
		}
	}

	return nil
}

func (d *driver) record() {
	if d.opts.RecordHistory {
		d.history = append(d.history, d.t.data.CloneDense())
	}
}
