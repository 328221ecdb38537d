package framework

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFreshCounterIsSkippedAndFailedNeverSuccessful(t *testing.T) {
	var c RunCounter
	assert.True(t, c.Skipped())
	assert.True(t, c.Failed())
	assert.False(t, c.Successful())
}

func TestStartedCounterWithNoChecksIsVacuouslySuccessful(t *testing.T) {
	c := RunCounter{Started: true}
	assert.False(t, c.Skipped())
	assert.True(t, c.Successful())
	assert.False(t, c.Failed())
}

func TestCounterClassification(t *testing.T) {
	for _, p := range []struct {
		name       string
		counter    RunCounter
		skipped    bool
		successful bool
		failed     bool
	}{
		{"never started", RunCounter{}, true, false, true},
		{"never started with stale counts", RunCounter{Performed: 2, Succeeded: 2}, true, false, true},
		{"started, all passed", RunCounter{Started: true, Performed: 3, Succeeded: 3}, false, true, false},
		{"started, one failed", RunCounter{Started: true, Performed: 3, Succeeded: 2}, false, false, true},
		{"started, nothing performed", RunCounter{Started: true}, false, true, false},
	} {
		t.Run(p.name, func(t *testing.T) {
			assert.Equal(t, p.skipped, p.counter.Skipped())
			assert.Equal(t, p.successful, p.counter.Successful())
			assert.Equal(t, p.failed, p.counter.Failed())
		})
	}
}

func TestBeginResetsCountsAndMarksStarted(t *testing.T) {
	c := RunCounter{Started: true, Performed: 5, Succeeded: 3}
	c.begin()
	assert.True(t, c.Started)
	assert.Equal(t, uint(0), c.Performed)
	assert.Equal(t, uint(0), c.Succeeded)
}
