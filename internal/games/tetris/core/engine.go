package core

import (
	"math/rand"
	"time"

	platformcore "github.com/vovakirdan/tui-tetris/internal/core"
)

// Status is the lifecycle state of the engine.
type Status int

const (
	StatusIdle Status = iota
	StatusPlaying
	StatusGameOver
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusIdle:
		return "idle"
	case StatusPlaying:
		return "playing"
	case StatusGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Randomizer picks the type of the next spawned piece.
type Randomizer interface {
	Next() Type
}

// uniform draws each piece independently with equal probability.
type uniform struct {
	rng *rand.Rand
}

// NewRandomizer returns a seeded uniform randomizer over the seven types.
func NewRandomizer(seed int64) Randomizer {
	return &uniform{rng: rand.New(rand.NewSource(seed))}
}

func (u *uniform) Next() Type {
	return Type(u.rng.Intn(typeCount))
}

// sequence cycles through a fixed list of types.
type sequence struct {
	types []Type
	next  int
}

// NewSequence returns a randomizer that repeats types in order.
func NewSequence(types ...Type) Randomizer {
	if len(types) == 0 {
		types = Types()
	}
	return &sequence{types: types}
}

func (s *sequence) Next() Type {
	t := s.types[s.next%len(s.types)]
	s.next++
	return t
}

// Engine owns the complete game state: board, active piece, score, level
// and the drop scheduler. It is not safe for concurrent use; the caller
// drives it from a single frame loop.
type Engine struct {
	rules  Rules
	random Randomizer

	board    *Board
	piece    ActivePiece
	hasPiece bool

	status Status
	paused bool

	score   int
	lines   int
	level   int
	spawned int
	rounds  int // rounds started, kept across Reset

	sched *DropScheduler
}

// New creates an idle engine. A zero Rules selects DefaultRules.
func New(rules Rules, random Randomizer) *Engine {
	if rules == (Rules{}) {
		rules = DefaultRules()
	}
	rules = rules.withDefaults()
	if random == nil {
		random = NewRandomizer(time.Now().UnixNano())
	}
	e := &Engine{
		rules:  rules,
		random: random,
		sched:  NewDropScheduler(rules.DropInterval(rules.StartLevel)),
	}
	e.Reset()
	return e
}

// Rules returns the rules the engine was built with.
func (e *Engine) Rules() Rules { return e.rules }

// Status returns the lifecycle state.
func (e *Engine) Status() Status { return e.status }

// Paused reports whether play is suspended.
func (e *Engine) Paused() bool { return e.paused }

// Score returns the current score.
func (e *Engine) Score() int { return e.score }

// Lines returns the cumulative number of cleared rows.
func (e *Engine) Lines() int { return e.lines }

// Level returns the current level.
func (e *Engine) Level() int { return e.level }

// Spawned returns how many pieces have entered play this round.
func (e *Engine) Spawned() int { return e.spawned }

// DropInterval returns the current automatic drop interval.
func (e *Engine) DropInterval() time.Duration { return e.sched.Interval() }

// Rounds returns how many rounds have been started, restarts included.
func (e *Engine) Rounds() int { return e.rounds }

// Board returns the locked-cell board. Callers must treat it as read-only.
func (e *Engine) Board() *Board { return e.board }

// Piece returns the active piece, if any.
func (e *Engine) Piece() (ActivePiece, bool) { return e.piece, e.hasPiece }

// Reset returns to idle with an empty board. The scheduler is stopped.
func (e *Engine) Reset() {
	e.sched.Stop()
	e.board = NewBoard(e.rules.Width, e.rules.Height)
	e.piece = ActivePiece{}
	e.hasPiece = false
	e.status = StatusIdle
	e.paused = false
	e.score = 0
	e.lines = 0
	e.level = e.rules.StartLevel
	e.spawned = 0
	e.sched.SetInterval(e.rules.DropInterval(e.level))
}

// Start begins a round from idle. It returns false in any other state.
func (e *Engine) Start() bool {
	if e.status != StatusIdle {
		return false
	}
	e.Reset()
	e.status = StatusPlaying
	e.rounds++
	e.sched.Start()
	e.spawn()
	return true
}

// Restart resets and immediately starts a new round.
func (e *Engine) Restart() {
	e.Reset()
	e.Start()
}

// TogglePause suspends or resumes play. Only valid while playing.
func (e *Engine) TogglePause() bool {
	if e.status != StatusPlaying {
		return false
	}
	e.paused = !e.paused
	if e.paused {
		e.sched.Stop()
	} else {
		e.sched.Start()
	}
	return true
}

// active reports whether gameplay commands are accepted.
func (e *Engine) active() bool {
	return e.status == StatusPlaying && !e.paused && e.hasPiece
}

// spawn places a new piece centered on row 0. A spawn that collides ends
// the game and leaves the board untouched.
func (e *Engine) spawn() bool {
	t := e.random.Next()
	m := RotationsOf(t)[0]
	x := e.rules.Width/2 - m.Size()/2
	candidate := NewActivePiece(t, Point{X: x, Y: 0})

	e.piece = candidate
	e.hasPiece = true
	e.spawned++

	if !Fits(candidate, e.board) {
		e.gameOver()
		return false
	}
	return true
}

func (e *Engine) gameOver() {
	e.status = StatusGameOver
	e.paused = false
	e.sched.Stop()
}

// Move shifts the piece one column; dir is -1 or +1. Returns true if the
// move was committed.
func (e *Engine) Move(dir int) bool {
	if !e.active() || (dir != -1 && dir != 1) {
		return false
	}
	candidate := e.piece.Moved(dir, 0)
	if !Fits(candidate, e.board) {
		return false
	}
	e.piece = candidate
	return true
}

// kicks are the horizontal offsets tried for a rotation, in priority order.
var kicks = [...]int{0, 1, -1}

// Rotate advances to the next rotation state, trying the unchanged
// position first and then one column right and left.
func (e *Engine) Rotate() bool {
	if !e.active() {
		return false
	}
	for _, kick := range kicks {
		candidate := e.piece.Rotated(kick)
		if Fits(candidate, e.board) {
			e.piece = candidate
			return true
		}
	}
	return false
}

// SoftDrop moves the piece down one row, locking it if it cannot move.
// Returns true if the piece moved.
func (e *Engine) SoftDrop() bool {
	return e.drop()
}

// AutoDrop is the scheduler-driven drop. It behaves exactly like SoftDrop.
func (e *Engine) AutoDrop() bool {
	return e.drop()
}

func (e *Engine) drop() bool {
	if !e.active() {
		return false
	}
	candidate := e.piece.Moved(0, 1)
	if Fits(candidate, e.board) {
		e.piece = candidate
		e.sched.ResetAccumulator()
		return true
	}
	e.lock()
	return false
}

// lock merges the piece, clears rows and spawns the next piece.
func (e *Engine) lock() {
	if e.rules.TopOut == TopOutGameOver && e.piece.Pos.Y < e.rules.TopMargin {
		e.gameOver()
		return
	}
	e.board.Merge(e.piece.Matrix, e.piece.Pos, e.piece.Color)
	e.hasPiece = false
	e.clearLines()
	e.spawn()
}

// clearLines removes full rows and applies score and level changes.
// Points use the level in effect before any level-up from this clear.
func (e *Engine) clearLines() int {
	n := e.board.ClearFullRows()
	if n == 0 {
		return 0
	}
	e.score += e.rules.LineScore(n, e.level)
	e.lines += n

	if level := e.rules.LevelFor(e.lines); level != e.level {
		e.level = level
		e.sched.SetInterval(e.rules.DropInterval(level))
	}
	return n
}

// Tick advances the drop scheduler by elapsed and performs at most one
// automatic drop. Returns true if a drop was attempted.
func (e *Engine) Tick(elapsed time.Duration) bool {
	if e.status != StatusPlaying || e.paused {
		return false
	}
	if !e.sched.Advance(elapsed) {
		return false
	}
	e.AutoDrop()
	return true
}

// Apply executes one queued command. Gameplay commands are ignored unless
// a round is playing and not paused.
func (e *Engine) Apply(a platformcore.Action) {
	switch a {
	case platformcore.ActionStart:
		switch e.status {
		case StatusIdle:
			e.Start()
		case StatusGameOver:
			e.Restart()
		}
	case platformcore.ActionRestart:
		if e.status != StatusIdle {
			e.Restart()
		}
	case platformcore.ActionPause:
		e.TogglePause()
	case platformcore.ActionLeft:
		e.Move(-1)
	case platformcore.ActionRight:
		e.Move(1)
	case platformcore.ActionSoftDrop:
		e.SoftDrop()
	case platformcore.ActionRotate:
		e.Rotate()
	}
}
