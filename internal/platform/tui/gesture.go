package tui

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// GestureConfig holds the mouse gesture thresholds.
type GestureConfig struct {
	TapMaxCells    int           // max displacement for a tap, in cells
	TapMaxDuration time.Duration // a tap must release sooner than this
	SwipeMinRows   int           // min downward travel for a swipe
	DragStepCells  int           // horizontal travel per move while dragging
}

// GestureConfigFrom converts the touch section of the game config.
func GestureConfigFrom(t config.TouchConfig) GestureConfig {
	return GestureConfig{
		TapMaxCells:    t.TapMaxCells,
		TapMaxDuration: time.Duration(t.TapMaxMs) * time.Millisecond,
		SwipeMinRows:   t.SwipeMinRows,
		DragStepCells:  max(1, t.DragStepCells),
	}
}

// GestureTracker turns a press, motion, release sequence of the left mouse
// button into game actions: a tap rotates, a horizontal drag moves one
// column per step, and a downward swipe soft-drops.
type GestureTracker struct {
	cfg GestureConfig

	active  bool
	dragged bool
	startX  int
	startY  int
	lastX   int
	startAt time.Time
}

// NewGestureTracker creates a tracker with the given thresholds.
func NewGestureTracker(cfg GestureConfig) *GestureTracker {
	if cfg.DragStepCells <= 0 {
		cfg.DragStepCells = 1
	}
	return &GestureTracker{cfg: cfg}
}

// Active reports whether a gesture is in progress.
func (g *GestureTracker) Active() bool {
	return g.active
}

// Press begins a gesture at (x, y).
func (g *GestureTracker) Press(x, y int, at time.Time) {
	g.active = true
	g.dragged = false
	g.startX, g.startY = x, y
	g.lastX = x
	g.startAt = at
}

// Motion reports movement while the button is held. It returns one move
// action for every full drag step covered since the last step.
func (g *GestureTracker) Motion(x, _ int) []core.Action {
	if !g.active {
		return nil
	}
	dx := x - g.lastX
	steps := core.Abs(dx) / g.cfg.DragStepCells
	if steps == 0 {
		return nil
	}

	action, sign := core.ActionRight, 1
	if dx < 0 {
		action, sign = core.ActionLeft, -1
	}
	actions := make([]core.Action, steps)
	for i := range actions {
		actions[i] = action
	}
	g.lastX += sign * steps * g.cfg.DragStepCells
	g.dragged = true
	return actions
}

// Release ends the gesture and returns the tap or swipe action, if any.
// A gesture that already produced drag moves yields nothing on release.
func (g *GestureTracker) Release(x, y int, at time.Time) core.Action {
	if !g.active {
		return core.ActionNone
	}
	g.active = false
	if g.dragged {
		return core.ActionNone
	}

	dx := x - g.startX
	dy := y - g.startY
	if core.Abs(dx) <= g.cfg.TapMaxCells && core.Abs(dy) <= g.cfg.TapMaxCells &&
		at.Sub(g.startAt) < g.cfg.TapMaxDuration {
		return core.ActionRotate
	}
	if dy > g.cfg.SwipeMinRows && dy > core.Abs(dx) {
		return core.ActionSoftDrop
	}
	return core.ActionNone
}

// Cancel abandons the gesture in progress.
func (g *GestureTracker) Cancel() {
	g.active = false
	g.dragged = false
}
