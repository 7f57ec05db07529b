// SPDX-License-Identifier: MIT

// Package worksheet runs calculator problem sheets through the lvopt solvers.
//
// A sheet is a YAML or JSON document naming one problem kind and its data.
// Numeric fields are strings, exactly as typed into a calculator form, and go
// through numparse so that malformed input is reported before any solving:
//
//	kind: simplex
//	title: Furniture
//	sense: max
//	objective: "3, 2"
//	constraints:
//	  - {coefficients: "1, 1", relation: "<=", rhs: "4"}
//	  - {coefficients: "1, 3", relation: "<=", rhs: "6"}
//
// Kinds: simplex, duality, graphical, knapsack, tsp, branchbound, transport.
//
// Solver settings come from a JSON Config (LoadConfig, default optcalc.json);
// a missing file means defaults. Runner.Run dispatches a sheet to exactly one
// solver and returns a Report that renders as text or JSON.
package worksheet
