package framework

import (
	"fmt"
	"runtime/debug"
)

type environment struct {
	reporter Reporter
}

// RunSuite drives one suite through its full lifecycle and returns whether
// the suite finished successful. The order is: startup, then for each test
// in registration order before-each / body / after-each, then teardown.
//
// A failed assertion stops only the body or hook it occurred in. A failed
// startup stops the whole run: no tests execute and teardown is skipped, so
// a broken environment cannot produce misleading per-test results. A failed
// test never stops sibling tests or teardown. Teardown assertions can still
// flip the final verdict.
//
// Counters on the suite and on every test it reaches are reset at the start
// of the run, so the same suite can be run repeatedly without accumulating
// state. A nil reporter means no outcome callbacks.
func RunSuite(suite *SuiteDescriptor, reporter Reporter) bool {
	if reporter == nil {
		reporter = NullReporter()
	}
	env := &environment{reporter: reporter}

	suite.begin(env)
	defer suite.end()

	protectedCall(suite, &suite.runState, func() {
		if suite.Startup != nil {
			suite.Startup(suite)
		}
	})
	if !suite.Successful() {
		return false
	}

	for _, test := range suite.tests {
		if test.Body == nil {
			// sequence terminator
			break
		}
		runTest(suite, test, env)
	}

	protectedCall(suite, &suite.runState, func() {
		if suite.Teardown != nil {
			suite.Teardown(suite)
		}
	})
	return suite.Successful()
}

func runTest(suite *SuiteDescriptor, test *TestDescriptor, env *environment) {
	test.begin(env)
	defer test.end()

	// The suite-level tally counts tests attempted, not assertions.
	suite.counter.Performed++

	protectedCall(test, &test.runState, func() {
		if suite.BeforeEach != nil {
			suite.BeforeEach(test)
		}
	})
	if test.Successful() {
		protectedCall(test, &test.runState, func() {
			test.Body(test)
		})
	}
	// Cleanup always executes, even when before-each or the body failed.
	protectedCall(test, &test.runState, func() {
		if suite.AfterEach != nil {
			suite.AfterEach(test)
		}
	})

	if test.Successful() {
		suite.counter.Succeeded++
		env.reporter.SuccessfulTest(test)
	} else {
		env.reporter.FailedTest(test)
	}
}

// protectedCall invokes body, containing any failure to that one invocation.
// A bodyAbort panic (the normal exit path of a failed assertion) is
// swallowed. Any other panic is recorded as a failed check with the panic
// value and stack, keeping the counters as the single error channel.
func protectedCall(ctx Scope, st *runState, body func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if _, ok := r.(bodyAbort); ok {
			return
		}
		st.counter.Performed++
		st.reporter().FailedAssertion(ctx,
			fmt.Sprintf("unexpected panic: %+v\n%s", r, string(debug.Stack())))
	}()
	body()
}
