package core

import (
	"testing"
	"time"
)

func TestSchedulerFiresAfterInterval(t *testing.T) {
	s := NewDropScheduler(100 * time.Millisecond)
	s.Start()

	if s.Advance(60 * time.Millisecond) {
		t.Fatal("should not fire before interval")
	}
	if s.Advance(40 * time.Millisecond) {
		t.Fatal("should not fire at exactly the interval")
	}
	if !s.Advance(time.Millisecond) {
		t.Fatal("should fire once the interval is exceeded")
	}
	if s.acc != 0 {
		t.Errorf("accumulator should reset after firing, got %v", s.acc)
	}
}

func TestSchedulerAtMostOneDropPerAdvance(t *testing.T) {
	s := NewDropScheduler(10 * time.Millisecond)
	s.Start()

	if !s.Advance(time.Second) {
		t.Fatal("large elapsed should fire")
	}
	if s.Advance(0) {
		t.Error("a long frame should not leave extra drops queued")
	}
}

func TestSchedulerStopIsIdempotent(t *testing.T) {
	s := NewDropScheduler(50 * time.Millisecond)
	s.Start()
	s.Advance(40 * time.Millisecond)

	s.Stop()
	s.Stop()

	if s.running {
		t.Fatal("scheduler should be stopped")
	}
	if s.Advance(time.Second) {
		t.Error("stopped scheduler must not fire")
	}

	s.Start()
	if s.Advance(20 * time.Millisecond) {
		t.Error("time accumulated before Stop must not carry over")
	}
}

func TestSchedulerResetAccumulator(t *testing.T) {
	s := NewDropScheduler(50 * time.Millisecond)
	s.Start()
	s.Advance(45 * time.Millisecond)
	s.ResetAccumulator()

	if s.Advance(10 * time.Millisecond) {
		t.Error("reset should restart the wait")
	}
}

func TestDropIntervalCurve(t *testing.T) {
	r := DefaultRules()

	tests := []struct {
		level int
		want  time.Duration
	}{
		{1, 1000 * time.Millisecond},
		{2, 600 * time.Millisecond},
		{4, 400 * time.Millisecond},
		{100, 208 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := r.DropInterval(tc.level); got != tc.want {
			t.Errorf("DropInterval(%d) = %v, want %v", tc.level, got, tc.want)
		}
	}

	r.Offset = 0
	if got := r.DropInterval(1000); got != r.MinInterval {
		t.Errorf("interval should be floored at %v, got %v", r.MinInterval, got)
	}
}

func TestLevelFor(t *testing.T) {
	r := DefaultRules()
	if r.LevelFor(9) != 1 || r.LevelFor(10) != 2 || r.LevelFor(25) != 3 {
		t.Error("level should rise every 10 lines")
	}
	r.StartLevel = 5
	if r.LevelFor(0) != 5 {
		t.Error("level should start at StartLevel")
	}
}
