package tui

import (
	"bytes"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
)

// recordingGame captures every frame it is stepped with.
type recordingGame struct {
	frames []core.InputFrame
	state  core.GameState
	board  core.Rect
}

func (g *recordingGame) ID() string { return "recording" }
func (g *recordingGame) Title() string { return "Recording" }
func (g *recordingGame) Reset(core.RuntimeConfig) {}
func (g *recordingGame) Render(dst *core.Screen) { dst.DrawText(0, 0, "board") }
func (g *recordingGame) State() core.GameState { return g.state }
func (g *recordingGame) BoardRect(_, _ int) core.Rect { return g.board }

func (g *recordingGame) Step(in core.InputFrame) core.StepResult {
	// The model reuses the frame's backing array, so keep a copy.
	frame := core.NewInputFrame()
	for _, a := range in.Actions() {
		frame.Push(a)
	}
	frame.Elapsed = in.Elapsed
	g.frames = append(g.frames, frame)
	return core.StepResult{State: g.state}
}

func newTestModel(g *recordingGame, logger *log.Logger) Model {
	return NewModel(g, Options{
		Runtime:  core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: 1},
		Gestures: GestureConfigFrom(config.DefaultTetrisConfig().Touch),
		Logger:   logger,
	})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelQueuesKeysUntilTick(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, nil)

	m = update(t, m, runeKey('a'))
	m = update(t, m, runeKey('w'))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})

	t0 := time.Unix(100, 0)
	m = update(t, m, TickMsg(t0))
	if len(g.frames) != 1 {
		t.Fatalf("expected one step, got %d", len(g.frames))
	}
	got := g.frames[0].Actions()
	want := []core.Action{core.ActionLeft, core.ActionRotate, core.ActionSoftDrop}
	if len(got) != len(want) {
		t.Fatalf("frame actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}
	if g.frames[0].Elapsed != 0 {
		t.Errorf("first tick should use the nominal duration, got %v", g.frames[0].Elapsed)
	}

	// Queue is drained after a tick; elapsed is measured between ticks.
	update(t, m, TickMsg(t0.Add(20*time.Millisecond)))
	if g.frames[1].Len() != 0 {
		t.Errorf("second frame should be empty, got %v", g.frames[1].Actions())
	}
	if g.frames[1].Elapsed != 20*time.Millisecond {
		t.Errorf("elapsed = %v, want 20ms", g.frames[1].Elapsed)
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&recordingGame{}, nil)
	next, cmd := m.Update(runeKey('q'))
	if cmd == nil {
		t.Fatal("quit should return a command")
	}
	if next.(Model).View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelMouseGesturesOnBoardOnly(t *testing.T) {
	g := &recordingGame{board: core.NewRect(10, 1, 20, 20)}
	m := newTestModel(g, nil)

	press := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
	}
	release := func(x, y int) tea.MouseMsg {
		return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionRelease, Button: tea.MouseButtonNone}
	}

	// Outside the board: ignored.
	m = update(t, m, press(2, 2))
	m = update(t, m, release(2, 2))

	// Tap on the board: rotate.
	m = update(t, m, press(15, 5))
	m = update(t, m, release(15, 5))

	// Drag on the board: two moves left.
	m = update(t, m, press(20, 5))
	m = update(t, m, tea.MouseMsg{X: 16, Y: 5, Action: tea.MouseActionMotion, Button: tea.MouseButtonLeft})
	m = update(t, m, release(16, 5))

	update(t, m, TickMsg(time.Now()))
	got := g.frames[0].Actions()
	want := []core.Action{core.ActionRotate, core.ActionLeft, core.ActionLeft}
	if len(got) != len(want) {
		t.Fatalf("actions = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("action %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestModelLogsTransitions(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	g := &recordingGame{state: core.GameState{Level: 1}}
	m := newTestModel(g, logger)

	now := time.Unix(0, 0)
	tick := func(s core.GameState) {
		g.state = s
		now = now.Add(16 * time.Millisecond)
		m = update(t, m, TickMsg(now))
	}

	tick(core.GameState{Started: true, Level: 1, Round: 1})
	tick(core.GameState{Started: true, Level: 2, Lines: 10, Score: 500, Round: 1})
	tick(core.GameState{Started: true, GameOver: true, Level: 2, Lines: 10, Score: 500, Round: 1})

	out := buf.String()
	for _, want := range []string{"round started", "level up", "game over", "run="} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}

func TestModelRestartStartsNewRun(t *testing.T) {
	var buf bytes.Buffer
	logger := log.New(&buf)
	g := &recordingGame{state: core.GameState{Level: 1}}
	m := newTestModel(g, logger)

	now := time.Unix(0, 0)
	tick := func(s core.GameState) {
		g.state = s
		now = now.Add(16 * time.Millisecond)
		m = update(t, m, TickMsg(now))
	}

	// Restart before anything scored: only the round counter moves.
	tick(core.GameState{Started: true, Level: 1, Round: 1})
	tick(core.GameState{Started: true, Level: 1, Round: 1})
	tick(core.GameState{Started: true, Level: 1, Round: 2})

	out := buf.String()
	if n := strings.Count(out, "round started"); n != 2 {
		t.Fatalf("round started logged %d times, want 2:\n%s", n, out)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if runID(lines[0]) == "" || runID(lines[0]) == runID(lines[1]) {
		t.Errorf("each round should get its own run id:\n%s", out)
	}
}

// runID extracts the run=<id> field from a log line.
func runID(line string) string {
	for _, f := range strings.Fields(line) {
		if id, ok := strings.CutPrefix(f, "run="); ok {
			return id
		}
	}
	return ""
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &recordingGame{}
	m := newTestModel(g, nil)
	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})

	if m.screen.Width() != 100 {
		t.Errorf("screen width = %d, want 100", m.screen.Width())
	}
	if m.screen.Height() >= 40 {
		t.Errorf("screen height %d should leave room for the help footer", m.screen.Height())
	}
	if !strings.Contains(m.View(), "board") {
		t.Error("view should contain the rendered game")
	}
}
