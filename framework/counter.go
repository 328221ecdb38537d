package framework

// RunCounter tracks the execution state of one test or one suite. At the
// test level Performed and Succeeded count assertions; at the suite level
// they count tests (plus any assertions made by the suite's own startup and
// teardown hooks). The same derivation rules apply at both levels.
//
// Succeeded never exceeds Performed.
type RunCounter struct {
	Started   bool
	Performed uint
	Succeeded uint
}

// Skipped reports whether the item never began executing.
func (c RunCounter) Skipped() bool {
	return !c.Started
}

// Successful reports whether the item started and every performed check
// succeeded. An item that started and performed zero checks is successful.
func (c RunCounter) Successful() bool {
	return c.Started && c.Performed == c.Succeeded
}

// Failed is the exact negation of Successful. An item that never started is
// therefore both Skipped and Failed; callers that report outcomes must check
// Skipped before Failed.
func (c RunCounter) Failed() bool {
	return !c.Successful()
}

// begin marks the item started and zeroes the counters, so running the same
// descriptor again starts from a clean state instead of accumulating.
func (c *RunCounter) begin() {
	c.Started = true
	c.Performed = 0
	c.Succeeded = 0
}
