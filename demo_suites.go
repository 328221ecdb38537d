package main

import (
	"fmt"

	"github.com/microut/microut-go/framework"
)

// suiteBuilder registers tests into a suite, honoring the -run/-skip
// filters. Filtered tests are never registered, so they do not appear in the
// run at all rather than showing up as skipped.
type suiteBuilder struct {
	suite  *framework.SuiteDescriptor
	filter framework.Filter
}

func (b *suiteBuilder) add(name, description string, body framework.TestFunc) {
	if b.filter != nil && !b.filter(b.suite.Name()+"/"+name) {
		return
	}
	b.suite.AddTest(name, description, body)
}

func buildDemoSuites(filter framework.Filter) []*framework.SuiteDescriptor {
	return []*framework.SuiteDescriptor{
		buildBasicsSuite(filter),
		buildWraparoundSuite(filter),
	}
}

func buildBasicsSuite(filter framework.Filter) *framework.SuiteDescriptor {
	suite := framework.NewSuite("ring-buffer-basics",
		"push/pop behavior of a freshly created buffer")

	var buf *ringBuffer
	suite.BeforeEach = func(t *framework.TestDescriptor) {
		buf = newRingBuffer(4)
		t.Debug("fresh buffer with capacity %d", buf.Cap())
	}
	suite.AfterEach = func(t *framework.TestDescriptor) {
		buf = nil
	}

	b := &suiteBuilder{suite: suite, filter: filter}
	b.add("empty-pop", "popping an empty buffer reports no value",
		func(t *framework.TestDescriptor) {
			_, ok := buf.Pop()
			t.Assert(!ok, "Pop on an empty buffer must report failure")
			t.AssertEqual(buf.Len(), 0, "length after failed pop")
		})
	b.add("push-pop-order", "values come back in insertion order",
		func(t *framework.TestDescriptor) {
			for i := 0; i < 3; i++ {
				t.Assert(buf.Push(fmt.Sprintf("item-%d", i)), "push within capacity must succeed")
			}
			for i := 0; i < 3; i++ {
				v, ok := buf.Pop()
				t.Assert(ok, "pop of a pushed value must succeed")
				t.AssertEqual(v, fmt.Sprintf("item-%d", i), "FIFO order")
			}
		})
	b.add("overfill", "pushes beyond capacity are rejected",
		func(t *framework.TestDescriptor) {
			for i := 0; i < buf.Cap(); i++ {
				t.Assert(buf.Push("x"), "filling push must succeed")
			}
			t.Assert(!buf.Push("overflow"), "push to a full buffer must be rejected")
			t.AssertEqual(buf.Len(), buf.Cap(), "length capped at capacity")
		})
	return suite
}

func buildWraparoundSuite(filter framework.Filter) *framework.SuiteDescriptor {
	suite := framework.NewSuite("ring-buffer-wraparound",
		"behavior once the write position wraps past the end of the backing slice")

	var buf *ringBuffer
	suite.Startup = func(s *framework.SuiteDescriptor) {
		s.AssertEqual(newRingBuffer(2).Cap(), 2, "fixture must honor the requested capacity")
	}
	suite.BeforeEach = func(t *framework.TestDescriptor) {
		// Leave the buffer empty but with head offset from zero, so every
		// push in the test body exercises the modular index arithmetic.
		buf = newRingBuffer(3)
		buf.Push("warm-1")
		buf.Push("warm-2")
		buf.Pop()
		buf.Pop()
		t.AssertEqual(buf.Len(), 0, "before-each leaves an empty, offset buffer")
		t.Debug("head offset after warm-up: 2 of %d", buf.Cap())
	}
	suite.AfterEach = func(t *framework.TestDescriptor) {
		buf = nil
	}
	suite.Teardown = func(s *framework.SuiteDescriptor) {
		s.Assert(buf == nil, "after-each must have released the fixture")
	}

	b := &suiteBuilder{suite: suite, filter: filter}
	b.add("wrapped-order", "FIFO order survives index wraparound",
		func(t *framework.TestDescriptor) {
			for i := 0; i < buf.Cap(); i++ {
				t.Assert(buf.Push(fmt.Sprintf("wrapped-%d", i)), "wrapping push must succeed")
			}
			for i := 0; i < buf.Cap(); i++ {
				v, ok := buf.Pop()
				t.Assert(ok, "pop after wraparound must succeed")
				t.AssertEqual(v, fmt.Sprintf("wrapped-%d", i), "FIFO order across the wrap point")
			}
		})
	b.add("reuse-after-drain", "the buffer stays usable through repeated fill/drain cycles",
		func(t *framework.TestDescriptor) {
			for cycle := 0; cycle < 3; cycle++ {
				t.Assert(buf.Push("v"), "push at cycle start must succeed")
				v, ok := buf.Pop()
				t.Assert(ok, "pop at cycle end must succeed")
				t.AssertEqual(v, "v", "value round-trips through the buffer")
				t.AssertEqual(buf.Len(), 0, "buffer drains back to empty")
			}
		})
	return suite
}
