// SPDX-License-Identifier: MIT

package worksheet

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"
)

// Status strings for kinds without an lp.Status.
const (
	StatusHeuristic = "heuristic"
	StatusInitial   = "initial_solution"
)

// Report is the outcome of running one sheet.
type Report struct {
	Title  string `json:"title,omitempty"`
	Kind   Kind   `json:"kind"`
	Status string `json:"status"`

	// Objective is nil when the solver produced no objective value.
	Objective *float64 `json:"objective,omitempty"`

	// Names labels Values; nil means x1..xn.
	Names  []string  `json:"names,omitempty"`
	Values []float64 `json:"values,omitempty"`

	// Dual carries the dual solution for duality sheets.
	Dual []float64 `json:"dual,omitempty"`

	// Tour is the closed TSP tour (0-based).
	Tour []int `json:"tour,omitempty"`

	// Allocation is the best transportation allocation.
	Allocation [][]float64 `json:"allocation,omitempty"`

	Iterations int `json:"iterations,omitempty"`

	// Details holds solver-specific display lines (tableaux, formulation,
	// search tree, steps).
	Details []string `json:"details,omitempty"`

	Elapsed time.Duration `json:"-"`
}

func (r *Report) setObjective(v float64) {
	r.Objective = &v
}

func (r *Report) addDetails(block string) {
	r.Details = append(r.Details, strings.Split(strings.TrimRight(block, "\n"), "\n")...)
}

// WriteText renders the report for a terminal.
func (r Report) WriteText(w io.Writer) error {
	var b strings.Builder
	title := r.Title
	if title == "" {
		title = "untitled"
	}
	fmt.Fprintf(&b, "== %s (%s) ==\n", title, r.Kind)
	fmt.Fprintf(&b, "status: %s\n", r.Status)
	if r.Objective != nil {
		fmt.Fprintf(&b, "objective: %s\n", num(*r.Objective))
	}
	for i, v := range r.Values {
		fmt.Fprintf(&b, "%s = %s\n", r.name(i), num(v))
	}
	for i, v := range r.Dual {
		fmt.Fprintf(&b, "y%d = %s\n", i+1, num(v))
	}
	if len(r.Tour) > 0 {
		parts := make([]string, len(r.Tour))
		for i, c := range r.Tour {
			parts[i] = fmt.Sprint(c + 1)
		}
		fmt.Fprintf(&b, "tour: %s\n", strings.Join(parts, " -> "))
	}
	for _, row := range r.Allocation {
		fmt.Fprintf(&b, "%v\n", row)
	}
	if r.Iterations > 0 {
		fmt.Fprintf(&b, "iterations: %d\n", r.Iterations)
	}
	for _, line := range r.Details {
		fmt.Fprintf(&b, "  %s\n", line)
	}
	_, err := io.WriteString(w, b.String())

	return err
}

// WriteJSON writes the report as indented JSON.
func (r Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(r)
}

func (r Report) name(i int) string {
	if i < len(r.Names) && r.Names[i] != "" {
		return r.Names[i]
	}

	return fmt.Sprintf("x%d", i+1)
}

// num prints values rounded to 6 decimals without trailing zeros.
func num(v float64) string {
	s := fmt.Sprintf("%.6f", v)
	s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	if s == "-0" {
		return "0"
	}

	return s
}
