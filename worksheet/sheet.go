// SPDX-License-Identifier: MIT

package worksheet

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvopt/knapsack"
	"github.com/katalvlaran/lvopt/lp"
	"github.com/katalvlaran/lvopt/numparse"
	"github.com/katalvlaran/lvopt/transport"
)

// Kind names the solver a sheet is meant for.
type Kind string

// Supported kinds.
const (
	KindSimplex     Kind = "simplex"
	KindDuality     Kind = "duality"
	KindGraphical   Kind = "graphical"
	KindKnapsack    Kind = "knapsack"
	KindTSP         Kind = "tsp"
	KindBranchBound Kind = "branchbound"
	KindTransport   Kind = "transport"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{
	KindSimplex, KindDuality, KindGraphical, KindKnapsack,
	KindTSP, KindBranchBound, KindTransport,
}

// Valid reports whether k is one of Kinds.
func (k Kind) Valid() bool {
	for _, v := range Kinds {
		if k == v {
			return true
		}
	}

	return false
}

// Format is the encoding of a sheet file.
type Format int

const (
	// YAML sheets use the .yaml or .yml extension.
	YAML Format = iota
	// JSON sheets use the .json extension.
	JSON
)

// FormatOf picks the format from a file extension.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".json":
		return JSON, nil
	default:
		return 0, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
}

// ConstraintRow is one "coefficients relation rhs" line of an LP sheet.
type ConstraintRow struct {
	Coefficients string `yaml:"coefficients" json:"coefficients"`
	Relation     string `yaml:"relation" json:"relation"`
	RHS          string `yaml:"rhs" json:"rhs"`
}

// Sheet is one problem as typed into the calculator. Which fields are used
// depends on Kind.
type Sheet struct {
	Kind  Kind   `yaml:"kind" json:"kind"`
	Title string `yaml:"title,omitempty" json:"title,omitempty"`

	// simplex, duality, graphical, branchbound
	Sense       string          `yaml:"sense,omitempty" json:"sense,omitempty"`
	Objective   string          `yaml:"objective,omitempty" json:"objective,omitempty"`
	Constraints []ConstraintRow `yaml:"constraints,omitempty" json:"constraints,omitempty"`
	Method      string          `yaml:"method,omitempty" json:"method,omitempty"`

	// branchbound: 1 marks an integer variable; empty means all integer.
	Integer string `yaml:"integer,omitempty" json:"integer,omitempty"`

	// knapsack
	Capacity string `yaml:"capacity,omitempty" json:"capacity,omitempty"`
	Weights  string `yaml:"weights,omitempty" json:"weights,omitempty"`
	Values   string `yaml:"values,omitempty" json:"values,omitempty"`

	// tsp
	Distances []string `yaml:"distances,omitempty" json:"distances,omitempty"`
	Labels    []string `yaml:"labels,omitempty" json:"labels,omitempty"`
	Start     string   `yaml:"start,omitempty" json:"start,omitempty"`

	// transport
	Supply       string   `yaml:"supply,omitempty" json:"supply,omitempty"`
	Demand       string   `yaml:"demand,omitempty" json:"demand,omitempty"`
	Costs        []string `yaml:"costs,omitempty" json:"costs,omitempty"`
	Sources      []string `yaml:"sources,omitempty" json:"sources,omitempty"`
	Destinations []string `yaml:"destinations,omitempty" json:"destinations,omitempty"`
}

// Load reads a sheet file, choosing the decoder by extension.
func Load(path string) (Sheet, error) {
	format, err := FormatOf(path)
	if err != nil {
		return Sheet{}, err
	}
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return Sheet{}, fmt.Errorf("read sheet: %w", err)
	}

	return Decode(bytes.NewReader(data), format)
}

// Decode reads one sheet from r and checks its kind.
func Decode(r io.Reader, format Format) (Sheet, error) {
	var (
		s   Sheet
		err error
	)
	switch format {
	case YAML:
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		err = dec.Decode(&s)
	case JSON:
		dec := json.NewDecoder(r)
		dec.DisallowUnknownFields()
		err = dec.Decode(&s)
	default:
		return Sheet{}, ErrUnknownFormat
	}
	if err != nil {
		return Sheet{}, fmt.Errorf("decode sheet: %w", err)
	}
	s.Kind = Kind(strings.ToLower(strings.TrimSpace(string(s.Kind))))
	if !s.Kind.Valid() {
		return Sheet{}, fmt.Errorf("%q: %w", s.Kind, ErrUnknownKind)
	}

	return s, nil
}

// Problem parses the LP fields into an lp.Problem and validates it.
func (s Sheet) Problem() (lp.Problem, error) {
	if s.Sense == "" {
		return lp.Problem{}, fmt.Errorf("sense: %w", ErrMissingField)
	}
	if s.Objective == "" {
		return lp.Problem{}, fmt.Errorf("objective: %w", ErrMissingField)
	}
	sense, err := numparse.Sense(s.Sense)
	if err != nil {
		return lp.Problem{}, fmt.Errorf("sense: %w", err)
	}
	obj, err := numparse.Floats(s.Objective)
	if err != nil {
		return lp.Problem{}, fmt.Errorf("objective: %w", err)
	}

	p := lp.Problem{Sense: sense, Objective: obj, Constraints: make([]lp.Constraint, len(s.Constraints))}
	for i, row := range s.Constraints {
		c, err := row.parse()
		if err != nil {
			return lp.Problem{}, fmt.Errorf("constraint %d: %w", i+1, err)
		}
		p.Constraints[i] = c
	}
	if err := p.Validate(); err != nil {
		return lp.Problem{}, err
	}

	return p, nil
}

func (row ConstraintRow) parse() (lp.Constraint, error) {
	coef, err := numparse.Floats(row.Coefficients)
	if err != nil {
		return lp.Constraint{}, fmt.Errorf("coefficients: %w", err)
	}
	rel, err := numparse.Relation(row.Relation)
	if err != nil {
		return lp.Constraint{}, fmt.Errorf("relation: %w", err)
	}
	rhs, err := numparse.Float(row.RHS)
	if err != nil {
		return lp.Constraint{}, fmt.Errorf("rhs: %w", err)
	}

	return lp.Constraint{Coefficients: coef, Relation: rel, RHS: rhs}, nil
}

// IntegerMask parses the integer field for n variables.
func (s Sheet) IntegerMask(n int) ([]bool, error) {
	mask := make([]bool, n)
	if strings.TrimSpace(s.Integer) == "" {
		for i := range mask {
			mask[i] = true
		}
		return mask, nil
	}
	flags, err := numparse.Ints(s.Integer)
	if err != nil {
		return nil, fmt.Errorf("integer: %w", err)
	}
	if len(flags) != n {
		return nil, fmt.Errorf("integer: %d flags for %d variables: %w", len(flags), n, ErrShape)
	}
	for i, f := range flags {
		mask[i] = f != 0
	}

	return mask, nil
}

// Knapsack parses capacity, weights and values. Fractional input is rejected
// by knapsack.SolveFloat, so the raw floats are returned.
func (s Sheet) Knapsack() (capacity float64, weights, values []float64, err error) {
	if s.Capacity == "" || s.Weights == "" || s.Values == "" {
		return 0, nil, nil, fmt.Errorf("capacity, weights and values: %w", ErrMissingField)
	}
	if capacity, err = numparse.Float(s.Capacity); err != nil {
		return 0, nil, nil, fmt.Errorf("capacity: %w", err)
	}
	if weights, err = numparse.Floats(s.Weights); err != nil {
		return 0, nil, nil, fmt.Errorf("weights: %w", err)
	}
	if values, err = numparse.Floats(s.Values); err != nil {
		return 0, nil, nil, fmt.Errorf("values: %w", err)
	}
	if len(weights) != len(values) {
		return 0, nil, nil, fmt.Errorf("%d weights, %d values: %w", len(weights), len(values), knapsack.ErrInvalidInput)
	}

	return capacity, weights, values, nil
}

// DistanceTable parses the distance grid and start city. Start is 1-based in the
// sheet, matching the default city labels; empty means city 1.
func (s Sheet) DistanceTable() (dist [][]float64, start int, err error) {
	if len(s.Distances) == 0 {
		return nil, 0, fmt.Errorf("distances: %w", ErrMissingField)
	}
	if dist, err = parseGrid(s.Distances); err != nil {
		return nil, 0, fmt.Errorf("distances: %w", err)
	}
	if strings.TrimSpace(s.Start) != "" {
		if start, err = numparse.Int(s.Start); err != nil {
			return nil, 0, fmt.Errorf("start: %w", err)
		}
		start--
	}

	return dist, start, nil
}

// Transport parses supply, demand and the cost grid.
func (s Sheet) Transport() (transport.Problem, error) {
	if s.Supply == "" || s.Demand == "" || len(s.Costs) == 0 {
		return transport.Problem{}, fmt.Errorf("supply, demand and costs: %w", ErrMissingField)
	}
	supply, err := numparse.Floats(s.Supply)
	if err != nil {
		return transport.Problem{}, fmt.Errorf("supply: %w", err)
	}
	demand, err := numparse.Floats(s.Demand)
	if err != nil {
		return transport.Problem{}, fmt.Errorf("demand: %w", err)
	}
	costs, err := parseGrid(s.Costs)
	if err != nil {
		return transport.Problem{}, fmt.Errorf("costs: %w", err)
	}

	return transport.Problem{
		Supply:       supply,
		Demand:       demand,
		Costs:        costs,
		Sources:      s.Sources,
		Destinations: s.Destinations,
	}, nil
}

func parseGrid(rows []string) ([][]float64, error) {
	out := make([][]float64, len(rows))
	for i, r := range rows {
		v, err := numparse.Floats(r)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		out[i] = v
	}

	return out, nil
}
