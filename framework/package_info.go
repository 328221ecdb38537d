// Package framework implements a minimal test-execution engine.
//
// The general model is:
//
// 1. A suite descriptor holds an ordered list of test descriptors plus
// optional lifecycle hooks (startup, teardown, before-each, after-each).
// Both descriptor kinds carry run counters tracking how many checks were
// performed and how many succeeded.
//
// 2. RunSuite drives a suite through its lifecycle. A failed assertion
// stops only the body or hook it occurred in; sibling tests and the rest
// of the suite lifecycle still run. A failed startup hook stops the whole
// suite before any test runs.
//
// 3. Outcome reporting goes through the Reporter interface, which the
// embedding application implements (a colored console reporter is
// provided). The engine itself never formats or prints anything.
//
// Status classification is derived purely from the counters: an item that
// never started is skipped; a started item whose performed and succeeded
// counts match is successful; everything else is failed. Skipped and failed
// overlap for never-started items, so reporting code must check Skipped
// before Failed.
package framework
