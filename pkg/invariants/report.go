package invariants

import (
	"fmt"
	"strings"
)

// Violation describes a single invariant that failed to hold, naming the
// property and the index (if any) within the aggregate's stuck sequence
// where it was detected.
type Violation struct {
	Property string
	Index    int // -1 when the violation is not tied to a single index
	Details  string
}

// Report is the result of running Check against an aggregate.
type Report struct {
	Passed     bool
	Violations []Violation
}

// NewReport creates an empty, passing report.
func NewReport() *Report {
	return &Report{Passed: true}
}

// Fail appends a violation and marks the report as failed.
func (r *Report) Fail(property string, index int, details string) {
	r.Passed = false
	r.Violations = append(r.Violations, Violation{Property: property, Index: index, Details: details})
}

// Summary renders a human-readable report, mirroring the pass/fail +
// itemized-findings layout used elsewhere in this codebase's reporting.
func (r *Report) Summary() string {
	var b strings.Builder
	if r.Passed {
		b.WriteString("invariants: PASSED\n")
		return b.String()
	}
	fmt.Fprintf(&b, "invariants: FAILED (%d violation(s))\n", len(r.Violations))
	for i, v := range r.Violations {
		if v.Index >= 0 {
			fmt.Fprintf(&b, "  %d. [%s] index %d: %s\n", i+1, v.Property, v.Index, v.Details)
		} else {
			fmt.Fprintf(&b, "  %d. [%s] %s\n", i+1, v.Property, v.Details)
		}
	}
	return b.String()
}
