package newton

import (
	"fmt"
	"io"
	"strings"
)

// WriteTable writes the table one row per sample, each row labelled with its
// abscissa and truncated to its valid columns:
//
//	x = 0.000000:     1.000000     1.000000     1.000000
func WriteTable(w io.Writer, t *Table) error {
	var sb strings.Builder
	sb.WriteString("\nDivided Differences Table:\n")

	n := t.Size()
	for i := range n {
		fmt.Fprintf(&sb, "x = %.6f: ", t.xs[i])
		for j := range n - i {
			fmt.Fprintf(&sb, "%12.6f ", t.d[i][j])
		}
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
