package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the hardcoded default configuration.
// It matches defaults/tetris.yaml.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
		},
		Scoring: ScoringConfig{
			LineScores:    []int{0, 40, 100, 300, 1200},
			LinesPerLevel: 10,
			StartLevel:    1,
		},
		Drop: DropConfig{
			BaseMs:   1000,
			Factor:   0.8,
			OffsetMs: 200,
			MinMs:    100,
		},
		Lock: LockConfig{
			TopOutPolicy: TopOutGameOver,
			TopMargin:    1,
		},
		Touch: TouchConfig{
			TapMaxCells:   1,
			TapMaxMs:      250,
			SwipeMinRows:  2,
			DragStepCells: 2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultTetrisYAML
}
