package ui

import (
	"fmt"
	"io"
)

// Steps announces progress through a fixed sequence of workflow steps.
// Output goes to the writer it was created with (stderr in practice, so
// stdout stays clean for eval-able activation snippets).
type Steps struct {
	out   io.Writer
	total int
	n     int
}

// NewSteps creates an announcer for a workflow of total steps.
func NewSteps(out io.Writer, total int) *Steps {
	return &Steps{out: out, total: total}
}

// Start announces the beginning of the next step.
func (s *Steps) Start(label string) {
	s.n++
	_, _ = fmt.Fprintf(s.out, "[%d/%d] %s\n", s.n, s.total, label)
}

// Log prints an informational message at the current step.
func (s *Steps) Log(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format+"\n", args...)
}
