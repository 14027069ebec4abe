package stats

import (
	"testing"
	"time"
)

func TestStopwatch_ElapsedIsNonNegativeAfterStop(t *testing.T) {
	sw := NewStopwatch()
	time.Sleep(time.Millisecond)
	sw.Stop()
	if sw.Elapsed() < 0 {
		t.Errorf("Elapsed() = %v, want >= 0", sw.Elapsed())
	}
}

func TestHistogram_AddGrowsAndCounts(t *testing.T) {
	var h Histogram
	h.Add(0)
	h.Add(3)
	h.Add(3)
	h.Add(3)

	if got := h.Count(0); got != 1 {
		t.Errorf("Count(0) = %d, want 1", got)
	}
	if got := h.Count(3); got != 3 {
		t.Errorf("Count(3) = %d, want 3", got)
	}
	if got := h.Count(1); got != 0 {
		t.Errorf("Count(1) = %d, want 0", got)
	}
	if got := h.Len(); got != 4 {
		t.Errorf("Len() = %d, want 4", got)
	}
}

func TestHistogram_AddNRecordsBulkObservations(t *testing.T) {
	var h Histogram
	h.AddN(2, 5)
	h.AddN(2, 0)

	if got := h.Count(2); got != 5 {
		t.Errorf("Count(2) = %d, want 5", got)
	}
	if got := h.Len(); got != 3 {
		t.Errorf("Len() = %d, want 3", got)
	}
}

func TestHistogram_AddNegativeBinPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Add(-1): want panic, got none")
		}
	}()
	var h Histogram
	h.Add(-1)
}
