package framework

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// ConsoleReporter writes test outcomes to a terminal as they happen: a green
// PASS or red FAIL line per test, indented failure messages per failed
// assertion, and optionally each test's captured debug output.
type ConsoleReporter struct {
	// DebugOutputOnFailure dumps a test's captured debug log under its FAIL
	// line. DebugOutputOnSuccess does the same for passing tests.
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool

	// Output defaults to os.Stdout.
	Output io.Writer
}

func (c *ConsoleReporter) dest() io.Writer {
	if c.Output != nil {
		return c.Output
	}
	return os.Stdout
}

func (c *ConsoleReporter) SuccessfulAssertion(ctx Scope, message string) {}

func (c *ConsoleReporter) FailedAssertion(ctx Scope, message string) {
	for _, line := range strings.Split(message, "\n") {
		color.New(color.FgRed).Fprintf(c.dest(), "  %s\n", line)
	}
}

func (c *ConsoleReporter) SuccessfulTest(test *TestDescriptor) {
	color.New(color.FgGreen).Fprintf(c.dest(), "  PASS: %s\n", test.Path())
	if c.DebugOutputOnSuccess {
		test.DebugOutput().Dump(c.dest(), "    DEBUG ")
	}
}

func (c *ConsoleReporter) FailedTest(test *TestDescriptor) {
	color.New(color.FgRed).Fprintf(c.dest(), "  FAIL: %s (%s)\n", test.Path(), test.Origin())
	if c.DebugOutputOnFailure {
		test.DebugOutput().Dump(c.dest(), "    DEBUG ")
	}
}

// PrintFilterDescription explains on stdout which tests will be excluded by
// the given filters, if any.
func PrintFilterDescription(filters RegexFilters) {
	if !filters.MustMatch.IsDefined() && !filters.MustNotMatch.IsDefined() {
		return
	}
	fmt.Println("Some tests will be skipped based on the filter criteria for this run:")
	if filters.MustMatch.IsDefined() {
		fmt.Printf("  skip any not matching %s\n", filters.MustMatch)
	}
	if filters.MustNotMatch.IsDefined() {
		fmt.Printf("  skip any matching %s\n", filters.MustNotMatch)
	}
	fmt.Println()
}
