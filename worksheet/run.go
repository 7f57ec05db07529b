// SPDX-License-Identifier: MIT

package worksheet

import (
	"fmt"
	"log"
	"time"

	"github.com/katalvlaran/lvopt/branchbound"
	"github.com/katalvlaran/lvopt/duality"
	"github.com/katalvlaran/lvopt/graphical"
	"github.com/katalvlaran/lvopt/knapsack"
	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/matrix"
	"github.com/katalvlaran/lvopt/simplex"
	"github.com/katalvlaran/lvopt/transport"
	"github.com/katalvlaran/lvopt/tsp"
)

// Runner solves sheets with one Config. A nil Logger disables logging.
type Runner struct {
	Config Config
	Logger *log.Logger
}

// NewRunner returns a Runner whose Config has defaults applied.
func NewRunner(cfg Config, logger *log.Logger) *Runner {
	cfg.ApplyDefaults()

	return &Runner{Config: cfg, Logger: logger}
}

// Run parses s, dispatches it to the solver for s.Kind and logs one line.
// Parse errors and solver input errors are returned wrapped with the kind;
// terminal statuses (infeasible, unbounded, ...) are reported in Report.Status.
func (r *Runner) Run(s Sheet) (Report, error) {
	start := time.Now()

	var (
		rep Report
		err error
	)
	switch s.Kind {
	case KindSimplex:
		rep, err = r.runSimplex(s)
	case KindDuality:
		rep, err = r.runDuality(s)
	case KindGraphical:
		rep, err = r.runGraphical(s)
	case KindKnapsack:
		rep, err = r.runKnapsack(s)
	case KindTSP:
		rep, err = r.runTSP(s)
	case KindBranchBound:
		rep, err = r.runBranchBound(s)
	case KindTransport:
		rep, err = r.runTransport(s)
	default:
		err = fmt.Errorf("%q: %w", s.Kind, ErrUnknownKind)
	}
	if err != nil {
		r.logf("%s %q: %v", s.Kind, s.Title, err)
		return Report{}, fmt.Errorf("%s: %w", s.Kind, err)
	}

	rep.Title, rep.Kind = s.Title, s.Kind
	rep.Elapsed = time.Since(start)
	r.logf("%s %q: %s in %s", s.Kind, s.Title, rep.Status, rep.Elapsed.Round(time.Microsecond))

	return rep, nil
}

func (r *Runner) logf(format string, args ...any) {
	if r.Logger != nil {
		r.Logger.Printf(format, args...)
	}
}

func fromSolution(sol lp.Solution) Report {
	rep := Report{Status: sol.Status.String(), Iterations: sol.Iterations}
	if sol.IsOptimal() {
		rep.setObjective(sol.Objective)
		rep.Values = sol.Values
	}

	return rep
}

func (r *Runner) runSimplex(s Sheet) (Report, error) {
	p, err := s.Problem()
	if err != nil {
		return Report{}, err
	}
	opts, err := r.Config.SimplexOptions(s.Method)
	if err != nil {
		return Report{}, err
	}
	res, err := simplex.Solve(p, opts)
	if err != nil {
		return Report{}, err
	}

	rep := fromSolution(res.Solution)
	for i, snap := range res.History {
		rep.addDetails(fmt.Sprintf("tableau %d:", i))
		rep.addDetails(res.Tableau.FormatSnapshot(snap))
	}
	rep.addDetails("final tableau:")
	rep.addDetails(res.Tableau.Format())

	return rep, nil
}

func (r *Runner) runDuality(s Sheet) (Report, error) {
	p, err := s.Problem()
	if err != nil {
		return Report{}, err
	}
	opts, err := r.Config.SimplexOptions(s.Method)
	if err != nil {
		return Report{}, err
	}
	opts.RecordHistory = false
	pair, err := duality.SolvePair(p, opts)
	if err != nil {
		return Report{}, err
	}

	rep := fromSolution(pair.Primal)
	if pair.Dual.IsOptimal() {
		rep.Dual = pair.Dual.Values
	}
	rep.addDetails(pair.DualProblem.Formulation())
	rep.addDetails(fmt.Sprintf("dual status: %s", pair.Dual.Status))
	if pair.BothOptimal() {
		rep.addDetails(fmt.Sprintf("dual objective: %s", num(pair.Dual.Objective)))
		rep.addDetails(fmt.Sprintf("strong duality: %t (gap %s)", pair.StrongDuality(1e-4), num(pair.Gap)))
	}

	return rep, nil
}

func (r *Runner) runGraphical(s Sheet) (Report, error) {
	p, err := s.Problem()
	if err != nil {
		return Report{}, err
	}
	res, err := graphical.Solve(p, r.Config.GraphicalOptions())
	if err != nil {
		return Report{}, err
	}

	rep := fromSolution(res.Solution())
	for _, c := range res.Candidates {
		mark := "infeasible"
		if c.Feasible {
			mark = "Z = " + num(c.Value)
		}
		rep.addDetails(fmt.Sprintf("%-16s %-24s %s", c.Source, c.Point, mark))
	}

	return rep, nil
}

func (r *Runner) runKnapsack(s Sheet) (Report, error) {
	capacity, weights, values, err := s.Knapsack()
	if err != nil {
		return Report{}, err
	}
	res, err := knapsack.SolveFloat(capacity, weights, values)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Status: lp.Optimal.String(), Values: make([]float64, len(weights))}
	rep.setObjective(float64(res.MaxValue))
	for _, i := range res.Selected {
		rep.Values[i] = 1
	}
	rep.addDetails(fmt.Sprintf("selected items: %v", oneBased(res.Selected)))
	rep.addDetails(fmt.Sprintf("total weight: %d", res.TotalWeight))

	return rep, nil
}

func (r *Runner) runTSP(s Sheet) (Report, error) {
	grid, start, err := s.DistanceTable()
	if err != nil {
		return Report{}, err
	}
	dist, err := matrix.NewDenseFrom(grid)
	if err != nil {
		return Report{}, fmt.Errorf("distances: %w", err)
	}
	res, err := tsp.NearestNeighbor(dist, r.Config.TSPOptions(start, s.Labels))
	if err != nil {
		return Report{}, err
	}

	rep := Report{Status: StatusHeuristic, Tour: res.Tour}
	rep.setObjective(res.Cost)
	for _, st := range res.Steps {
		rep.addDetails(fmt.Sprintf("%s -> %s: %s", st.FromLabel, st.ToLabel, num(st.Distance)))
	}

	return rep, nil
}

func (r *Runner) runBranchBound(s Sheet) (Report, error) {
	p, err := s.Problem()
	if err != nil {
		return Report{}, err
	}
	mask, err := s.IntegerMask(p.NumVars())
	if err != nil {
		return Report{}, err
	}
	opts, err := r.Config.BranchBoundOptions(s.Method)
	if err != nil {
		return Report{}, err
	}
	res, err := branchbound.Solve(p, mask, opts)
	if err != nil {
		return Report{}, err
	}

	rep := fromSolution(res.Solution())
	if res.Status == lp.NotConverged && res.Values != nil {
		rep.setObjective(res.Objective)
		rep.Values = res.Values
	}
	for _, n := range res.Nodes {
		branch := n.Branch
		if branch == "" {
			branch = "root"
		}
		rep.addDetails(fmt.Sprintf("%*snode %d [%s] %s bound=%s",
			2*n.Depth, "", n.ID, branch, n.Status, num(n.Bound)))
	}

	return rep, nil
}

func (r *Runner) runTransport(s Sheet) (Report, error) {
	p, err := s.Transport()
	if err != nil {
		return Report{}, err
	}
	res, err := transport.Solve(p, r.Config.TransportOptions())
	if err != nil {
		return Report{}, err
	}

	rep := Report{Status: StatusInitial, Allocation: res.Best.Allocation}
	rep.setObjective(res.Best.Cost)
	for _, sol := range res.Initial {
		rep.addDetails(fmt.Sprintf("%s: cost %s", sol.Method, num(sol.Cost)))
	}
	rep.addDetails("best: " + res.Best.Method.String())

	return rep, nil
}

func oneBased(idx []int) []int {
	out := make([]int, len(idx))
	for i, v := range idx {
		out[i] = v + 1
	}

	return out
}
