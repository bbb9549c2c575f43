package tetris

import tcore "github.com/vovakirdan/tui-tetris/internal/games/tetris/core"

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick   uint64
	Engine tcore.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:   g.tick,
		Engine: g.engine.Snapshot(),
	}
}
