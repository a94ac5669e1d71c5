package diagnostics

import (
	"fmt"
	"io"
)

// Collector is an ordered, append-only log of diagnostics produced during a
// single phase. A phase succeeds iff its collector is empty when the phase
// finishes.
type Collector struct {
	diags []Diagnostic
}

// NewCollector returns an empty collector.
func NewCollector() *Collector {
	return &Collector{}
}

// Add appends a diagnostic. Order of addition is preserved.
func (c *Collector) Add(d Diagnostic) {
	c.diags = append(c.diags, d)
}

// HasErrors returns true if at least one diagnostic has been recorded.
func (c *Collector) HasErrors() bool {
	return len(c.diags) > 0
}

// Len returns the number of recorded diagnostics.
func (c *Collector) Len() int {
	return len(c.diags)
}

// Drain returns every recorded diagnostic in order and empties the collector.
// Each phase drains its collector exactly once, on the error path back to the
// caller.
func (c *Collector) Drain() []Diagnostic {
	drained := c.diags
	c.diags = nil
	return drained
}

// Report writes all diagnostics to w, one per line, each with its span.
func Report(w io.Writer, diags []Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(w, "Error at: %s | %s\n", d.Span(), d.Error())
	}
}
