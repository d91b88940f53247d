// Package metrics aggregates per-request latency for the CLI's repeat
// mode using an HDR histogram.
package metrics

import (
	"sync"
	"time"

	"github.com/HdrHistogram/hdrhistogram-go"
)

// Histogram range: 1 microsecond to 1 hour, 3 significant figures.
const (
	histogramMin     = 1
	histogramMax     = 3600000000
	histogramSigFigs = 3
)

// Recorder collects latency samples and success/failure counts. Safe
// for concurrent use.
type Recorder struct {
	mu        sync.Mutex
	hist      *hdrhistogram.Histogram
	successes int64
	failures  int64
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{
		hist: hdrhistogram.New(histogramMin, histogramMax, histogramSigFigs),
	}
}

// Record adds one request observation.
func (r *Recorder) Record(latency time.Duration, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// Histogram recording can only fail for out-of-range values, which
	// the configured bounds make unreachable for sane latencies.
	_ = r.hist.RecordValue(latency.Microseconds())

	if ok {
		r.successes++
	} else {
		r.failures++
	}
}

// Summary is a point-in-time aggregation of recorded samples.
type Summary struct {
	Requests  int64
	Successes int64
	Failures  int64
	Min       time.Duration
	Median    time.Duration
	P95       time.Duration
	P99       time.Duration
	Max       time.Duration
}

// Summarize computes the current summary.
func (r *Recorder) Summarize() Summary {
	r.mu.Lock()
	defer r.mu.Unlock()

	micros := func(v int64) time.Duration {
		return time.Duration(v) * time.Microsecond
	}

	return Summary{
		Requests:  r.successes + r.failures,
		Successes: r.successes,
		Failures:  r.failures,
		Min:       micros(r.hist.Min()),
		Median:    micros(r.hist.ValueAtQuantile(50)),
		P95:       micros(r.hist.ValueAtQuantile(95)),
		P99:       micros(r.hist.ValueAtQuantile(99)),
		Max:       micros(r.hist.Max()),
	}
}
