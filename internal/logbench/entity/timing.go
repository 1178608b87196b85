package entity

import "time"

// TimingRecord holds the elapsed time of both passes.
type TimingRecord struct {
	Sequential time.Duration
	Concurrent time.Duration
}

// SequentialMillis returns the sequential duration in whole milliseconds.
func (r TimingRecord) SequentialMillis() int64 {
	return r.Sequential.Milliseconds()
}

// ConcurrentMillis returns the concurrent duration in whole milliseconds.
func (r TimingRecord) ConcurrentMillis() int64 {
	return r.Concurrent.Milliseconds()
}

// Speedup returns sequential/concurrent computed on millisecond values.
// ok is false when the concurrent pass measured 0 ms.
func (r TimingRecord) Speedup() (speedup float64, ok bool) {
	conc := r.ConcurrentMillis()
	if conc <= 0 {
		return 0, false
	}
	return float64(r.SequentialMillis()) / float64(conc), true
}
