// SPDX-License-Identifier: MIT

package simplex

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvopt/matrix"
)

// Format renders the tableau with a column header line and a basis label per
// row ("Z" for the objective row), as the worked examples in textbooks do.
//
// Complexity: O(rows·cols).
func (t *Tableau) Format() string {
	return formatDense(t.data, t.ColumnNames(), t.basisLabels())
}

// FormatSnapshot renders a History entry with the same headers as t.
// Basis labels are omitted because snapshots do not carry a basis.
func (t *Tableau) FormatSnapshot(d *matrix.Dense) string {
	return formatDense(d, t.ColumnNames(), nil)
}

func (t *Tableau) basisLabels() []string {
	var (
		names  = t.ColumnNames()
		labels = make([]string, t.data.Rows())
	)
	for i, col := range t.basis {
		labels[i] = names[col]
	}
	labels[len(labels)-1] = "Z"

	return labels
}

// formatDense prints the gonum formatted view of d under a header line.
func formatDense(d *matrix.Dense, header, labels []string) string {
	var b strings.Builder

	b.WriteString(strings.Join(header, "\t"))
	b.WriteByte('\n')

	body := fmt.Sprintf("%.4g", mat.Formatted(d.Mat(), mat.Squeeze()))
	for i, line := range strings.Split(body, "\n") {
		if i < len(labels) && labels[i] != "" {
			b.WriteString(labels[i])
			b.WriteByte('\t')
		}
		b.WriteString(strings.TrimSpace(line))
		b.WriteByte('\n')
	}

	return b.String()
}
