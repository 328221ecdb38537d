package framework

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// SuiteResult is a point-in-time summary of one suite's counters.
type SuiteResult struct {
	Name   string
	Status RunCounter
}

// TestResult is a point-in-time summary of one test's counters.
type TestResult struct {
	SuiteName string
	Name      string
	Origin    Origin
	Status    RunCounter
}

// Results aggregates the outcome of one or more suite runs.
type Results struct {
	Suites   []SuiteResult
	Tests    []TestResult
	Failures []TestResult
}

// OK reports whether every non-skipped suite and test succeeded. A suite can
// fail with no failing tests (a startup or teardown assertion), so both are
// checked.
func (r Results) OK() bool {
	if len(r.Failures) > 0 {
		return false
	}
	for _, s := range r.Suites {
		if s.Status.Skipped() {
			continue
		}
		if s.Status.Failed() {
			return false
		}
	}
	return true
}

// SnapshotResults builds a Results summary from the current counter state of
// the given suites, using the status predicates only. Call it after the
// suites have been run; suites or tests that never ran show up as skipped,
// not as failures.
func SnapshotResults(suites ...*SuiteDescriptor) Results {
	var r Results
	for _, s := range suites {
		r.Suites = append(r.Suites, SuiteResult{Name: s.Name(), Status: s.Status()})
		for _, t := range s.tests {
			if t.Body == nil {
				break
			}
			tr := TestResult{
				SuiteName: s.Name(),
				Name:      t.Name(),
				Origin:    t.Origin(),
				Status:    t.Status(),
			}
			r.Tests = append(r.Tests, tr)
			if tr.Status.Skipped() {
				continue
			}
			if tr.Status.Failed() {
				r.Failures = append(r.Failures, tr)
			}
		}
	}
	return r
}

// PrintResults writes a human-readable summary of the results to dest.
func PrintResults(dest io.Writer, results Results) {
	if results.OK() {
		color.New(color.FgGreen).Fprintf(dest, "All tests passed (%d tests in %d suites)\n",
			len(results.Tests), len(results.Suites))
		return
	}
	color.New(color.FgRed).Fprintf(dest, "FAILED: %d tests out of %d\n",
		len(results.Failures), len(results.Tests))
	for _, f := range results.Failures {
		fmt.Fprintf(dest, "  %s/%s (%s): %d of %d checks passed\n",
			f.SuiteName, f.Name, f.Origin, f.Status.Succeeded, f.Status.Performed)
	}
	for _, s := range results.Suites {
		if s.Status.Skipped() || s.Status.Successful() {
			continue
		}
		fmt.Fprintf(dest, "  suite %s failed (%d of %d checks passed)\n",
			s.Name, s.Status.Succeeded, s.Status.Performed)
	}
}
