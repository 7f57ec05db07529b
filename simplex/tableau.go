// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"

	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/matrix"
)

// ColumnKind classifies a tableau column.
type ColumnKind int

const (
	// Decision columns hold the original variables x₁..xₙ.
	Decision ColumnKind = iota
	// Slack columns hold slack (+1, ≤ rows) or surplus (−1, ≥ rows) variables.
	Slack
	// Artificial columns hold the artificial variables of ≥ and = rows.
	Artificial
)

// String returns "x", "s" or "a", the prefix used when printing headers.
func (k ColumnKind) String() string {
	switch k {
	case Decision:
		return "x"
	case Slack:
		return "s"
	case Artificial:
		return "a"
	default:
		return "?"
	}
}

// Tableau is the simplex working matrix plus the bookkeeping the driver needs.
//
// Layout: rows 0..m-1 are constraints, row m is the objective row.
// Columns are [decision | slack | artificial | RHS]. The shape never changes
// after Build; pivots only rewrite cell values.
type Tableau struct {
	data    *matrix.Dense
	numVars int
	kinds   []ColumnKind // one per non-RHS column
	basis   []int        // basis[i] = basic column of constraint row i
	blocked []bool       // columns never allowed to enter (phase 2 artificials)
	negated bool         // objective was negated (minimization)
	flipped []bool       // constraint rows multiplied by −1 during Build
}

// Build constructs the initial Big-M tableau for p.
//
// Steps:
//  1. Validate p (every coefficient row has NumVars entries, finite values).
//  2. Normalize rows with negative RHS (multiply by −1, flip relation).
//  3. Assign columns: ≤ gets slack +1; ≥ gets slack −1 and artificial +1;
//     = gets an artificial only. Slack and artificial blocks follow row order.
//  4. Objective row: −c (c negated first for minimization), +M on artificial
//     columns, then −M × every row that owns an artificial.
//
// Errors: wrapped lp validation errors (lp.ErrInvalidDimension names the
// constraint index), ErrInvalidBigM.
//
// Complexity: O(m·(n+m)).
func Build(p lp.Problem, opts Options) (*Tableau, error) {
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("simplex.Build: %w", err)
	}
	if err := validateOptions(opts); err != nil {
		return nil, fmt.Errorf("simplex.Build: %w", err)
	}

	var (
		n       = p.NumVars()
		m       = len(p.Constraints)
		rows    = make([]lp.Constraint, m)
		flipped = make([]bool, m)
		nSlack  int
		nArt    int
		i, j    int
	)

	for i = 0; i < m; i++ {
		c := p.Constraints[i]
		row := lp.Constraint{
			Coefficients: append([]float64(nil), c.Coefficients...),
			Relation:     c.Relation,
			RHS:          c.RHS,
		}
		if row.RHS < 0 {
			for j = range row.Coefficients {
				row.Coefficients[j] = -row.Coefficients[j]
			}
			row.RHS = -row.RHS
			row.Relation = row.Relation.Flip()
			flipped[i] = true
		}
		if row.Relation != lp.Equal {
			nSlack++
		}
		if row.Relation != lp.LessEq {
			nArt++
		}
		rows[i] = row
	}

	cols := n + nSlack + nArt + 1
	data, err := matrix.NewDense(m+1, cols)
	if err != nil {
		return nil, fmt.Errorf("simplex.Build: %w", err)
	}

	t := &Tableau{
		data:    data,
		numVars: n,
		kinds:   make([]ColumnKind, cols-1),
		basis:   make([]int, m),
		blocked: make([]bool, cols-1),
		negated: p.Sense == lp.Minimize,
		flipped: flipped,
	}

	var (
		obj       = t.row(m)
		rhs       = cols - 1
		slackCol  = n
		artCol    = n + nSlack
		artRows   = make([]int, 0, nArt)
		coef      float64
		constrRow []float64
	)

	for j = 0; j < n; j++ {
		coef = p.Objective[j]
		if t.negated {
			coef = -coef
		}
		obj[j] = -coef
	}
	for j = n; j < n+nSlack; j++ {
		t.kinds[j] = Slack
	}
	for j = n + nSlack; j < rhs; j++ {
		t.kinds[j] = Artificial
		obj[j] = opts.BigM
	}

	for i = 0; i < m; i++ {
		constrRow = t.row(i)
		copy(constrRow, rows[i].Coefficients)
		constrRow[rhs] = rows[i].RHS

		switch rows[i].Relation {
		case lp.LessEq:
			constrRow[slackCol] = 1
			t.basis[i] = slackCol
			slackCol++
		case lp.GreaterEq:
			constrRow[slackCol] = -1
			slackCol++
			constrRow[artCol] = 1
			t.basis[i] = artCol
			artCol++
			artRows = append(artRows, i)
		case lp.Equal:
			constrRow[artCol] = 1
			t.basis[i] = artCol
			artCol++
			artRows = append(artRows, i)
		}
	}

	for _, i = range artRows {
		if err = data.AddScaledRow(m, i, -opts.BigM); err != nil {
			return nil, fmt.Errorf("simplex.Build: %w", err)
		}
	}

	return t, nil
}

// row returns a live view of row i; i is always in range for internal callers.
func (t *Tableau) row(i int) []float64 {
	r, _ := t.data.Row(i)

	return r
}

// Matrix returns the underlying storage. Mutating it bypasses basis tracking.
func (t *Tableau) Matrix() *matrix.Dense { return t.data }

// NumConstraints returns the number of constraint rows (the objective row excluded).
func (t *Tableau) NumConstraints() int { return t.data.Rows() - 1 }

// NumVars returns the number of decision columns.
func (t *Tableau) NumVars() int { return t.numVars }

// RHSCol returns the index of the right-hand-side column.
func (t *Tableau) RHSCol() int { return t.data.Cols() - 1 }

// Kind returns the kind of column j (j < RHSCol()).
func (t *Tableau) Kind(j int) ColumnKind { return t.kinds[j] }

// Basis returns a copy of the basic column index per constraint row.
func (t *Tableau) Basis() []int { return append([]int(nil), t.basis...) }

// Flipped reports whether constraint row i was multiplied by −1 during Build.
func (t *Tableau) Flipped(i int) bool { return t.flipped[i] }

// Negated reports whether the objective row holds the negated (minimization) objective.
func (t *Tableau) Negated() bool { return t.negated }

// ObjectiveValue returns the objective-row RHS in the caller's sense.
func (t *Tableau) ObjectiveValue() float64 {
	v, _ := t.data.At(t.NumConstraints(), t.RHSCol())
	if t.negated {
		return -v
	}

	return v
}

// ColumnNames returns header labels: x1..xn, s1.., a1.., RHS.
func (t *Tableau) ColumnNames() []string {
	var (
		names  = make([]string, t.data.Cols())
		counts [3]int
	)
	for j, k := range t.kinds {
		counts[k]++
		names[j] = fmt.Sprintf("%s%d", k, counts[k])
	}
	names[len(names)-1] = "RHS"

	return names
}

// Values extracts decision-variable values from the tracked basis: a basic
// decision column takes the RHS of its row, every other column is 0. Tiny
// negative round-off (above −eps) is clamped to 0. A nonbasic column that
// happens to be a unit vector is still 0.
//
// Complexity: O(m).
func (t *Tableau) Values(eps float64) []float64 {
	var (
		rhs = t.RHSCol()
		out = make([]float64, t.numVars)
		v   float64
	)
	for i, col := range t.basis {
		if col >= t.numVars {
			continue
		}
		v, _ = t.data.At(i, rhs)
		if v < 0 && v > -eps {
			v = 0
		}
		out[col] = v
	}

	return out
}

// artificialAtPositiveLevel reports whether an artificial variable is basic
// with a value above eps, i.e. the original constraints are violated.
func (t *Tableau) artificialAtPositiveLevel(eps float64) bool {
	rhs := t.RHSCol()
	for i, col := range t.basis {
		if t.kinds[col] != Artificial {
			continue
		}
		if v, _ := t.data.At(i, rhs); v > eps {
			return true
		}
	}

	return false
}
