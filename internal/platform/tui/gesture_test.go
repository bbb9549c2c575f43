package tui

import (
	"testing"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

func newTracker() *GestureTracker {
	return NewGestureTracker(GestureConfigFrom(config.DefaultTetrisConfig().Touch))
}

func TestGestureTap(t *testing.T) {
	g := newTracker()
	t0 := time.Unix(0, 0)

	g.Press(10, 5, t0)
	if a := g.Release(11, 5, t0.Add(100*time.Millisecond)); a != core.ActionRotate {
		t.Errorf("quick small release = %v, want Rotate", a)
	}
	if g.Active() {
		t.Error("gesture should end on release")
	}
}

func TestGestureSlowPressIsNotTap(t *testing.T) {
	g := newTracker()
	t0 := time.Unix(0, 0)

	g.Press(10, 5, t0)
	if a := g.Release(10, 5, t0.Add(time.Second)); a != core.ActionNone {
		t.Errorf("long press = %v, want None", a)
	}
}

func TestGestureSwipeDown(t *testing.T) {
	tests := []struct {
		name   string
		dx, dy int
		want   core.Action
	}{
		{"straight down", 0, 4, core.ActionSoftDrop},
		{"mostly down", 1, 3, core.ActionSoftDrop},
		{"too short", 0, 2, core.ActionNone},
		{"upward", 0, -5, core.ActionNone},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := newTracker()
			t0 := time.Unix(0, 0)
			g.Press(10, 5, t0)
			if a := g.Release(10+tc.dx, 5+tc.dy, t0.Add(400*time.Millisecond)); a != tc.want {
				t.Errorf("Release = %v, want %v", a, tc.want)
			}
		})
	}
}

func TestGestureDragMovesPerStep(t *testing.T) {
	g := newTracker() // drag step is 2 cells
	t0 := time.Unix(0, 0)
	g.Press(10, 5, t0)

	if a := g.Motion(11, 5); len(a) != 0 {
		t.Fatalf("half a step should not move, got %v", a)
	}
	if a := g.Motion(12, 5); len(a) != 1 || a[0] != core.ActionRight {
		t.Fatalf("one step right = %v", a)
	}
	if a := g.Motion(17, 6); len(a) != 2 || a[1] != core.ActionRight {
		t.Fatalf("five more cells = %v, want two moves", a)
	}
	if a := g.Motion(12, 6); len(a) != 2 || a[0] != core.ActionLeft {
		t.Fatalf("drag back left = %v, want two left moves", a)
	}

	// A drag never turns into a tap or swipe on release.
	if a := g.Release(12, 12, t0.Add(50*time.Millisecond)); a != core.ActionNone {
		t.Errorf("release after drag = %v, want None", a)
	}
}

func TestGestureIgnoresStrayEvents(t *testing.T) {
	g := newTracker()
	if a := g.Motion(20, 5); a != nil {
		t.Errorf("motion without press = %v", a)
	}
	if a := g.Release(20, 5, time.Now()); a != core.ActionNone {
		t.Errorf("release without press = %v", a)
	}

	g.Press(1, 1, time.Now())
	g.Cancel()
	if g.Active() {
		t.Error("Cancel should end the gesture")
	}
}
