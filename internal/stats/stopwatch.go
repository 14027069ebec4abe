// Package stats collects simple runtime statistics for the solver driver:
// elapsed-time measurement and integer histograms.
package stats

import (
	"time"
)

// Stopwatch measures elapsed wall-clock time. The zero value is usable and
// reports a zero duration until Start and Stop are called.
type Stopwatch struct {
	start time.Time
	stop  time.Time
}

// NewStopwatch returns a Stopwatch already running.
func NewStopwatch() *Stopwatch {
	now := time.Now()
	return &Stopwatch{start: now, stop: now}
}

// Start resets the clock to now.
func (s *Stopwatch) Start() {
	s.start = time.Now()
}

// Stop freezes the elapsed duration at now.
func (s *Stopwatch) Stop() {
	s.stop = time.Now()
}

// Elapsed returns the duration between Start and Stop.
func (s *Stopwatch) Elapsed() time.Duration {
	return s.stop.Sub(s.start)
}

func (s *Stopwatch) String() string {
	return s.Elapsed().String()
}
