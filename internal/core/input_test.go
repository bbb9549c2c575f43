package core

import (
	"testing"
	"time"
)

func TestInputFrameKeepsArrivalOrder(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionLeft)
	f.Push(ActionRotate)
	f.Push(ActionNone)
	f.Push(ActionLeft)

	got := f.Actions()
	want := []Action{ActionLeft, ActionRotate, ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestInputFrameClear(t *testing.T) {
	f := NewInputFrame()
	f.Push(ActionPause)
	f.Elapsed = 16 * time.Millisecond

	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", f.Len())
	}
	if f.Elapsed != 0 {
		t.Errorf("Elapsed after Clear = %v, want 0", f.Elapsed)
	}
}

func TestActionString(t *testing.T) {
	if ActionSoftDrop.String() != "SoftDrop" {
		t.Errorf("ActionSoftDrop.String() = %q", ActionSoftDrop.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("unknown action should stringify as Unknown")
	}
}
