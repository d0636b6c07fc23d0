package ui

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

// Table renders field/value style rows in aligned columns, sized for the
// short status listings venvup prints.
type Table struct {
	w *tabwriter.Writer
}

// NewTable creates a table writer. Headers are uppercased on output.
func NewTable(out io.Writer, headers ...string) *Table {
	tw := tabwriter.NewWriter(out, 0, 4, 3, ' ', 0)
	up := make([]string, len(headers))
	for i, h := range headers {
		up[i] = strings.ToUpper(h)
	}
	_, _ = fmt.Fprintln(tw, strings.Join(up, "\t"))
	return &Table{w: tw}
}

// Row appends a row of values, one per header.
func (t *Table) Row(values ...any) {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprint(v)
	}
	_, _ = fmt.Fprintln(t.w, strings.Join(parts, "\t"))
}

// Flush writes the buffered output.
func (t *Table) Flush() error {
	return t.w.Flush()
}
