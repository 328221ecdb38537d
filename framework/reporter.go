package framework

// Reporter receives the engine's outcome callbacks: one per assertion and
// one per finished test. All four methods are side-effect only; the engine
// never reads anything back through them. A run is fully sequential, so
// implementations need not be safe for concurrent use.
type Reporter interface {
	// SuccessfulAssertion is invoked after each passing check, with the
	// descriptor (test or suite) the check ran against.
	SuccessfulAssertion(ctx Scope, message string)
	// FailedAssertion is invoked after each failing check, just before the
	// enclosing body or hook is stopped.
	FailedAssertion(ctx Scope, message string)
	// SuccessfulTest is invoked once per test that finishes successful,
	// after its after-each hook has run.
	SuccessfulTest(test *TestDescriptor)
	// FailedTest is invoked once per test that finishes failed.
	FailedTest(test *TestDescriptor)
}

type nullReporter struct{}

func (nullReporter) SuccessfulAssertion(Scope, string) {}
func (nullReporter) FailedAssertion(Scope, string)     {}
func (nullReporter) SuccessfulTest(*TestDescriptor)    {}
func (nullReporter) FailedTest(*TestDescriptor)        {}

// NullReporter returns a Reporter that discards all callbacks.
func NullReporter() Reporter { return nullReporter{} }
