package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRecorder_Summarize(t *testing.T) {
	r := NewRecorder()

	r.Record(10*time.Millisecond, true)
	r.Record(20*time.Millisecond, true)
	r.Record(30*time.Millisecond, false)

	s := r.Summarize()

	assert.Equal(t, int64(3), s.Requests)
	assert.Equal(t, int64(2), s.Successes)
	assert.Equal(t, int64(1), s.Failures)
	assert.GreaterOrEqual(t, s.Max, s.Min)
	assert.GreaterOrEqual(t, s.P99, s.Median)
	// 3 sig figs: recorded values land within 0.1% of the true latency.
	assert.InDelta(t, float64(10*time.Millisecond), float64(s.Min), float64(time.Millisecond))
	assert.InDelta(t, float64(30*time.Millisecond), float64(s.Max), float64(time.Millisecond))
}

func TestRecorder_Empty(t *testing.T) {
	s := NewRecorder().Summarize()

	assert.Equal(t, int64(0), s.Requests)
	assert.Equal(t, time.Duration(0), s.Max)
}
