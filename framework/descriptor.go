package framework

import (
	"fmt"
	"runtime"
)

// TestFunc is the body of a test, or a per-test hook. It receives the
// descriptor of the test being run and records outcomes against it through
// the assertion methods.
type TestFunc func(*TestDescriptor)

// SuiteFunc is a suite-level hook (startup or teardown). It receives the
// suite descriptor and may record assertions against it; a failed assertion
// in startup stops the whole suite run.
type SuiteFunc func(*SuiteDescriptor)

// Scope identifies the descriptor an assertion ran against. Both
// *TestDescriptor and *SuiteDescriptor implement it.
type Scope interface {
	Name() string
	Description() string
	Status() RunCounter
}

// Origin records where a test was registered, for diagnostics.
type Origin struct {
	File string
	Line int
}

func (o Origin) String() string {
	if o.File == "" {
		return "<unknown>"
	}
	return fmt.Sprintf("%s:%d", o.File, o.Line)
}

func callerOrigin(skip int) Origin {
	if _, file, line, ok := runtime.Caller(skip + 1); ok {
		return Origin{File: file, Line: line}
	}
	return Origin{}
}

// runState is the mutable per-run state shared by both descriptor kinds:
// the counters, the reporter binding for the active run, and the captured
// debug log. It is reset each time the descriptor begins a run.
type runState struct {
	counter  RunCounter
	env      *environment
	debugLog *CapturingLogger
}

func (st *runState) begin(env *environment) {
	st.counter.begin()
	st.env = env
	st.debugLog = &CapturingLogger{}
}

func (st *runState) end() {
	st.env = nil
}

func (st *runState) reporter() Reporter {
	if st.env != nil {
		return st.env.reporter
	}
	return NullReporter()
}

// Status returns a snapshot of the run counters. It is a pure read and may
// be called at any time, including mid-run.
func (st *runState) Status() RunCounter {
	return st.counter
}

// Skipped reports whether this descriptor never started. See RunCounter.
func (st *runState) Skipped() bool { return st.counter.Skipped() }

// Successful reports whether this descriptor started and all of its checks
// passed. See RunCounter.
func (st *runState) Successful() bool { return st.counter.Successful() }

// Failed is the negation of Successful. A never-started descriptor is both
// Skipped and Failed; check Skipped first when reporting.
func (st *runState) Failed() bool { return st.counter.Failed() }

// Debug records a message in the descriptor's captured debug log for the
// current run. Reporters may dump the log for failed tests.
func (st *runState) Debug(format string, args ...interface{}) {
	if st.debugLog == nil {
		st.debugLog = &CapturingLogger{}
	}
	st.debugLog.Printf(format, args...)
}

// DebugOutput returns the debug messages captured during the most recent
// run of this descriptor.
func (st *runState) DebugOutput() CapturedOutput {
	if st.debugLog == nil {
		return nil
	}
	return st.debugLog.Output()
}

// TestDescriptor is the identity and run state of a single test case. The
// identity fields are fixed at registration; the counters are reset by the
// runner at the start of every run.
type TestDescriptor struct {
	name        string
	description string
	origin      Origin
	suite       *SuiteDescriptor

	// Body executes the test's checks. A nil Body marks a sequence
	// terminator: the runner stops iterating when it reaches one.
	Body TestFunc

	runState
}

// NewTest constructs a standalone test descriptor, capturing the caller's
// file and line as its origin. Most callers should use SuiteDescriptor.AddTest
// instead, which also registers the test in execution order.
func NewTest(name, description string, body TestFunc) *TestDescriptor {
	return newTest(name, description, body, callerOrigin(1))
}

func newTest(name, description string, body TestFunc, origin Origin) *TestDescriptor {
	return &TestDescriptor{
		name:        name,
		description: description,
		origin:      origin,
		Body:        body,
	}
}

func (t *TestDescriptor) Name() string { return t.name }

func (t *TestDescriptor) Description() string { return t.description }

func (t *TestDescriptor) Origin() Origin { return t.origin }

// Path returns "suite/test" for a registered test, or just the test name if
// the test has not been added to a suite. Filters match against this form.
func (t *TestDescriptor) Path() string {
	if t.suite == nil {
		return t.name
	}
	return t.suite.name + "/" + t.name
}

// SuiteDescriptor is the identity, lifecycle hooks, ordered test sequence,
// and run state of one suite. A suite exclusively owns its tests; no test
// descriptor is shared across suites.
type SuiteDescriptor struct {
	name        string
	description string

	// Startup and Teardown run once per suite run, before the first test
	// and after the last. BeforeEach and AfterEach run around every test.
	// All four may be nil, which means a no-op.
	Startup    SuiteFunc
	Teardown   SuiteFunc
	BeforeEach TestFunc
	AfterEach  TestFunc

	tests []*TestDescriptor

	runState
}

// NewSuite constructs a suite descriptor with no hooks and no tests.
func NewSuite(name, description string) *SuiteDescriptor {
	return &SuiteDescriptor{name: name, description: description}
}

func (s *SuiteDescriptor) Name() string { return s.name }

func (s *SuiteDescriptor) Description() string { return s.description }

// AddTest registers a test at the end of the suite's execution order,
// capturing the caller's file and line as the test's origin. Registration
// order is execution order. It returns the new descriptor so callers can
// inspect its status after a run.
func (s *SuiteDescriptor) AddTest(name, description string, body TestFunc) *TestDescriptor {
	t := newTest(name, description, body, callerOrigin(1))
	t.suite = s
	s.tests = append(s.tests, t)
	return t
}

// Tests returns the suite's test descriptors in execution order. The
// returned slice is a copy; the descriptors themselves are shared.
func (s *SuiteDescriptor) Tests() []*TestDescriptor {
	return append([]*TestDescriptor(nil), s.tests...)
}
