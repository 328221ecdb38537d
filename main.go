// Command microut-demo runs the framework's demonstration suites: a set of
// sample tests over an in-memory ring buffer, exercising every part of the
// suite lifecycle (startup, per-test hooks, teardown, captured debug output).
// Its exit code reflects the overall verdict, so it doubles as a smoke test
// for the engine itself.
package main

import (
	"fmt"
	"os"

	"github.com/microut/microut-go/framework"
)

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	framework.PrintFilterDescription(params.filters)

	reporter := &framework.ConsoleReporter{
		DebugOutputOnFailure: params.debug || params.debugAll,
		DebugOutputOnSuccess: params.debugAll,
	}

	suites := buildDemoSuites(params.filters.AsFilter)

	fmt.Println("Running demonstration suites")
	ok := true
	for _, suite := range suites {
		fmt.Printf("[%s] %s\n", suite.Name(), suite.Description())
		if !framework.RunSuite(suite, reporter) {
			ok = false
		}
	}

	fmt.Println()
	results := framework.SnapshotResults(suites...)
	framework.PrintResults(os.Stdout, results)
	if !ok || !results.OK() {
		if cmd := rerunCommand(os.Args[0], results); cmd != "" {
			fmt.Println()
			fmt.Println("To rerun only the failed tests:")
			fmt.Printf("  %s\n", cmd)
		}
		os.Exit(1)
	}
}
