package framework

import "fmt"

// bodyAbort is the sentinel panic value used to unwind a single test body or
// hook after a failed assertion. The runner's protected call swallows it; it
// never crosses a descriptor boundary, so a failure in one body cannot stop
// sibling tests or the remaining suite lifecycle.
type bodyAbort struct{}

func performAssertion(ctx Scope, st *runState, condition bool, message string) {
	st.counter.Performed++
	if condition {
		st.counter.Succeeded++
		st.reporter().SuccessfulAssertion(ctx, message)
		return
	}
	st.reporter().FailedAssertion(ctx, message)
	panic(bodyAbort{})
}

func performEquality(ctx Scope, st *runState, actual, expected interface{}, message string) {
	performAssertion(ctx, st, actual == expected,
		fmt.Sprintf("%s (equality check failed: expected %v, got %v)", message, expected, actual))
}

func performHexEquality(ctx Scope, st *runState, actual, expected interface{}, message string) {
	performAssertion(ctx, st, actual == expected,
		fmt.Sprintf("%s (equality check failed: expected %#x, got %#x)", message, expected, actual))
}

// Assert performs one check against this test. The performed counter always
// advances; if the condition holds, the succeeded counter advances and the
// reporter's SuccessfulAssertion hook fires. Otherwise the FailedAssertion
// hook fires and the enclosing body or hook stops immediately.
func (t *TestDescriptor) Assert(condition bool, message string) {
	performAssertion(t, &t.runState, condition, message)
}

// Fail records an unconditionally failed check and stops the enclosing body
// or hook. Equivalent to Assert(false, message).
func (t *TestDescriptor) Fail(message string) {
	t.Assert(false, message)
}

// AssertEqual checks that actual equals expected, formatting both values into
// the failure message. The values must be comparable and of the same dynamic
// type to compare equal.
func (t *TestDescriptor) AssertEqual(actual, expected interface{}, message string) {
	performEquality(t, &t.runState, actual, expected, message)
}

// AssertHexEqual is AssertEqual with values rendered in hexadecimal, for
// checks against masks, flags, and addresses.
func (t *TestDescriptor) AssertHexEqual(actual, expected interface{}, message string) {
	performHexEquality(t, &t.runState, actual, expected, message)
}

// Assert performs one check against the suite itself, from a startup or
// teardown hook. A failed assertion in startup stops the whole suite run; a
// failed assertion in teardown flips the suite's final verdict.
func (s *SuiteDescriptor) Assert(condition bool, message string) {
	performAssertion(s, &s.runState, condition, message)
}

// Fail records an unconditionally failed suite-level check and stops the
// enclosing hook.
func (s *SuiteDescriptor) Fail(message string) {
	s.Assert(false, message)
}

// AssertEqual checks that actual equals expected at the suite level.
func (s *SuiteDescriptor) AssertEqual(actual, expected interface{}, message string) {
	performEquality(s, &s.runState, actual, expected, message)
}

// AssertHexEqual is the suite-level counterpart of the test method.
func (s *SuiteDescriptor) AssertHexEqual(actual, expected interface{}, message string) {
	performHexEquality(s, &s.runState, actual, expected, message)
}
