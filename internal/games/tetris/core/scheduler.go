package core

import "time"

// DropScheduler accumulates frame time and fires once the accumulated time
// exceeds the current interval. It is driven by the caller's frame loop and
// never runs on its own goroutine.
type DropScheduler struct {
	interval time.Duration
	acc      time.Duration
	running  bool
}

// NewDropScheduler creates a stopped scheduler.
func NewDropScheduler(interval time.Duration) *DropScheduler {
	return &DropScheduler{interval: interval}
}

// Start resumes accumulation from zero.
func (s *DropScheduler) Start() {
	s.running = true
	s.acc = 0
}

// Stop halts the scheduler and discards accumulated time, so nothing can
// fire after a reset. Calling Stop twice is a no-op.
func (s *DropScheduler) Stop() {
	s.running = false
	s.acc = 0
}

// ResetAccumulator restarts the wait for the next drop.
func (s *DropScheduler) ResetAccumulator() {
	s.acc = 0
}

// SetInterval changes the drop interval; accumulated time is kept.
func (s *DropScheduler) SetInterval(d time.Duration) {
	s.interval = d
}

// Interval returns the current drop interval.
func (s *DropScheduler) Interval() time.Duration {
	return s.interval
}

// Advance adds elapsed time and reports whether a drop is due.
// At most one drop fires per call.
func (s *DropScheduler) Advance(elapsed time.Duration) bool {
	if !s.running {
		return false
	}
	s.acc += elapsed
	if s.acc > s.interval {
		s.acc = 0
		return true
	}
	return false
}
