package framework

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// eventReporter records every collaborator callback in order, so tests can
// check both what was reported and when.
type eventReporter struct {
	events          []string
	failureMessages []string
}

func (r *eventReporter) SuccessfulAssertion(ctx Scope, message string) {
	r.events = append(r.events, "assert-ok:"+ctx.Name())
}

func (r *eventReporter) FailedAssertion(ctx Scope, message string) {
	r.failureMessages = append(r.failureMessages, message)
	r.events = append(r.events, "assert-fail:"+ctx.Name())
}

func (r *eventReporter) SuccessfulTest(test *TestDescriptor) {
	r.events = append(r.events, "test-ok:"+test.Name())
}

func (r *eventReporter) FailedTest(test *TestDescriptor) {
	r.events = append(r.events, "test-fail:"+test.Name())
}

func (r *eventReporter) lastFailure() string {
	if len(r.failureMessages) == 0 {
		return ""
	}
	return r.failureMessages[len(r.failureMessages)-1]
}

func TestEndToEndOnePassingOneFailingTest(t *testing.T) {
	suite := NewSuite("s", "")
	a := suite.AddTest("A", "", func(td *TestDescriptor) {
		td.Assert(1 == 1, "one is one")
	})
	b := suite.AddTest("B", "", func(td *TestDescriptor) {
		td.Assert(1 == 2, "one is two")
	})

	rep := &eventReporter{}
	ok := RunSuite(suite, rep)

	assert.False(t, ok)
	assert.Equal(t, uint(2), suite.Status().Performed)
	assert.Equal(t, uint(1), suite.Status().Succeeded)
	assert.True(t, a.Successful())
	assert.True(t, b.Failed())
	assert.Equal(t, []string{
		"assert-ok:A", "test-ok:A",
		"assert-fail:B", "test-fail:B",
	}, rep.events)
}

func TestStartupFailurePreventsTestsAndTeardown(t *testing.T) {
	teardownRan := false
	suite := NewSuite("s", "")
	suite.Startup = func(s *SuiteDescriptor) {
		s.Fail("environment broken")
	}
	suite.Teardown = func(s *SuiteDescriptor) {
		teardownRan = true
	}
	test := suite.AddTest("T", "", func(td *TestDescriptor) {
		td.Assert(true, "never reached")
	})

	ok := RunSuite(suite, nil)

	require.False(t, ok)
	assert.True(t, test.Skipped())
	assert.False(t, test.Status().Started)
	assert.False(t, teardownRan)
	// The only mark on the suite's counters is the failed startup check;
	// no test was ever tallied.
	assert.Equal(t, uint(1), suite.Status().Performed)
	assert.Equal(t, uint(0), suite.Status().Succeeded)
}

func TestBeforeEachFailureSkipsBodyButRunsAfterEachAndSiblings(t *testing.T) {
	var bodyRan []string
	var afterRan []string
	suite := NewSuite("s", "")
	suite.BeforeEach = func(td *TestDescriptor) {
		if td.Name() == "T1" {
			td.Fail("broken precondition")
		}
	}
	suite.AfterEach = func(td *TestDescriptor) {
		afterRan = append(afterRan, td.Name())
	}
	t1 := suite.AddTest("T1", "", func(td *TestDescriptor) {
		bodyRan = append(bodyRan, td.Name())
	})
	t2 := suite.AddTest("T2", "", func(td *TestDescriptor) {
		bodyRan = append(bodyRan, td.Name())
	})

	ok := RunSuite(suite, nil)

	assert.False(t, ok)
	assert.Equal(t, []string{"T2"}, bodyRan)
	assert.Equal(t, []string{"T1", "T2"}, afterRan)
	assert.True(t, t1.Failed())
	assert.True(t, t2.Successful())
	assert.Equal(t, uint(2), suite.Status().Performed)
	assert.Equal(t, uint(1), suite.Status().Succeeded)
}

func TestAfterEachRunsWhenBodyFails(t *testing.T) {
	afterRan := false
	suite := NewSuite("s", "")
	suite.AfterEach = func(td *TestDescriptor) {
		afterRan = true
	}
	suite.AddTest("T", "", func(td *TestDescriptor) {
		td.Fail("body failure")
	})

	RunSuite(suite, nil)

	assert.True(t, afterRan)
}

func TestTeardownRunsAfterTestsAndCanFlipTheVerdict(t *testing.T) {
	suite := NewSuite("s", "")
	suite.Teardown = func(s *SuiteDescriptor) {
		s.Fail("resource leak detected")
	}
	test := suite.AddTest("T", "", func(td *TestDescriptor) {
		td.Assert(true, "fine")
	})

	ok := RunSuite(suite, nil)

	assert.False(t, ok)
	assert.True(t, test.Successful())
	assert.True(t, suite.Failed())
}

func TestFailedAssertionAbortsOnlyItsOwnBody(t *testing.T) {
	reached := false
	suite := NewSuite("s", "")
	test := suite.AddTest("T", "", func(td *TestDescriptor) {
		td.Assert(false, "first check fails")
		reached = true
		td.Assert(true, "second check never runs")
	})

	RunSuite(suite, nil)

	assert.False(t, reached)
	assert.Equal(t, uint(1), test.Status().Performed)
	assert.Equal(t, uint(0), test.Status().Succeeded)
	assert.True(t, test.Failed())
}

func TestRunningTwiceResetsAllCountersEachRun(t *testing.T) {
	suite := NewSuite("s", "")
	test := suite.AddTest("T", "", func(td *TestDescriptor) {
		td.Assert(true, "check one")
		td.Assert(true, "check two")
	})

	require.True(t, RunSuite(suite, nil))
	first := suite.Status()
	firstTest := test.Status()

	require.True(t, RunSuite(suite, nil))
	assert.Equal(t, first, suite.Status())
	assert.Equal(t, firstTest, test.Status())
	assert.Equal(t, uint(1), suite.Status().Performed)
	assert.Equal(t, uint(2), test.Status().Performed)
}

func TestTestWithZeroAssertionsIsSuccessful(t *testing.T) {
	suite := NewSuite("s", "")
	test := suite.AddTest("T", "", func(td *TestDescriptor) {})

	ok := RunSuite(suite, nil)

	assert.True(t, ok)
	assert.True(t, test.Successful())
}

func TestNilBodyActsAsSequenceTerminator(t *testing.T) {
	suite := NewSuite("s", "")
	real := suite.AddTest("real", "", func(td *TestDescriptor) {})
	suite.AddTest("sentinel", "", nil)
	after := suite.AddTest("after", "", func(td *TestDescriptor) {})

	ok := RunSuite(suite, nil)

	assert.True(t, ok)
	assert.True(t, real.Successful())
	assert.True(t, after.Skipped())
	assert.Equal(t, uint(1), suite.Status().Performed)
}

func TestUnexpectedPanicIsRecordedAsFailedCheck(t *testing.T) {
	suite := NewSuite("s", "")
	test := suite.AddTest("T", "", func(td *TestDescriptor) {
		panic("boom")
	})

	rep := &eventReporter{}
	ok := RunSuite(suite, rep)

	assert.False(t, ok)
	assert.True(t, test.Failed())
	assert.Equal(t, uint(1), test.Status().Performed)
	assert.Equal(t, uint(0), test.Status().Succeeded)
	require.NotEmpty(t, rep.failureMessages)
	assert.True(t, strings.Contains(rep.lastFailure(), "boom"))
}

func TestNilHooksAndNilReporterAreNoOps(t *testing.T) {
	suite := NewSuite("s", "")
	suite.AddTest("T", "", func(td *TestDescriptor) {
		td.Assert(true, "fine")
	})

	assert.True(t, RunSuite(suite, nil))
}
