// Package tetris adapts the falling-block engine to the platform Game
// interface: it drains queued input into the engine each tick, feeds frame
// time to the drop scheduler and renders the board into a Screen.
package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	tcore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// ID is the registry identifier of the game.
const ID = "tetris"

// Game implements registry.Game.
type Game struct {
	cfg     config.TetrisConfig
	runtime core.RuntimeConfig
	engine  *tcore.Engine
	tick    uint64
}

// New creates a game with the default configuration.
func New() *Game {
	return &Game{cfg: config.DefaultTetrisConfig()}
}

func init() {
	registry.Register(ID, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string { return ID }

// Title returns the display name.
func (g *Game) Title() string { return "Tetris" }

// Configure replaces the configuration used by the next Reset.
func (g *Game) Configure(cfg config.TetrisConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	g.cfg = cfg
	return nil
}

// Config returns the active configuration.
func (g *Game) Config() config.TetrisConfig { return g.cfg }

// RulesFromConfig converts the YAML config to engine rules.
func RulesFromConfig(cfg config.TetrisConfig) tcore.Rules {
	rules := tcore.Rules{
		Width:         cfg.Board.Width,
		Height:        cfg.Board.Height,
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		StartLevel:    cfg.Scoring.StartLevel,
		BaseInterval:  time.Duration(cfg.Drop.BaseMs) * time.Millisecond,
		Factor:        cfg.Drop.Factor,
		Offset:        time.Duration(cfg.Drop.OffsetMs) * time.Millisecond,
		MinInterval:   time.Duration(cfg.Drop.MinMs) * time.Millisecond,
		TopOut:        tcore.TopOutPolicy(cfg.Lock.TopOutPolicy),
		TopMargin:     cfg.Lock.TopMargin,
	}
	copy(rules.LineScores[:], cfg.Scoring.LineScores)
	return rules
}

// Reset builds a fresh idle engine. The seed drives piece selection.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	g.engine = tcore.New(RulesFromConfig(g.cfg), tcore.NewRandomizer(rc.Seed))
	g.tick = 0
}

// Step applies queued actions in arrival order, then advances the drop
// scheduler by the frame's elapsed time.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	for _, a := range in.Actions() {
		g.engine.Apply(a)
	}

	elapsed := in.Elapsed
	if elapsed <= 0 {
		elapsed = g.runtime.TickDuration()
	}
	g.engine.Tick(elapsed)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	status := g.engine.Status()
	return core.GameState{
		Score:    g.engine.Score(),
		Level:    g.engine.Level(),
		Lines:    g.engine.Lines(),
		Started:  status != tcore.StatusIdle,
		GameOver: status == tcore.StatusGameOver,
		Paused:   g.engine.Paused(),
		Round:    g.engine.Rounds(),
	}
}

// Engine exposes the underlying engine for read-only inspection.
func (g *Game) Engine() *tcore.Engine { return g.engine }
