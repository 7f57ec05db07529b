// SPDX-License-Identifier: MIT

package worksheet_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvopt/worksheet"
)

func TestReport_WriteText(t *testing.T) {
	rep := run(t, worksheet.DefaultConfig(), load(t, "tsp.yaml"))

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	assert.Equal(t, `== Four cities (tsp) ==
status: heuristic
objective: 80
tour: 1 -> 2 -> 4 -> 3 -> 1
  A -> B: 10
  B -> D: 25
  D -> C: 30
  C -> A: 15
`, buf.String())
}

func TestReport_WriteTextNames(t *testing.T) {
	obj := 1.5
	rep := worksheet.Report{
		Kind:       worksheet.KindSimplex,
		Status:     "optimal",
		Objective:  &obj,
		Names:      []string{"chairs"},
		Values:     []float64{0.25, -0.0000001},
		Iterations: 2,
	}

	var buf bytes.Buffer
	require.NoError(t, rep.WriteText(&buf))
	assert.Equal(t, `== untitled (simplex) ==
status: optimal
objective: 1.5
chairs = 0.25
x2 = 0
iterations: 2
`, buf.String())
}

func TestReport_WriteJSON(t *testing.T) {
	rep := run(t, worksheet.DefaultConfig(), load(t, "transport.json"))

	var buf bytes.Buffer
	require.NoError(t, rep.WriteJSON(&buf))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "transport", got["kind"])
	assert.Equal(t, "initial_solution", got["status"])
	assert.Equal(t, 320.0, got["objective"])
	assert.NotContains(t, got, "values")
	assert.NotContains(t, got, "Elapsed")
	require.Contains(t, got, "allocation")
}
