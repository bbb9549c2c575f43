// Package config provides YAML-based game configuration loading,
// validation and difficulty presets for tui-tetris.
package config

import (
	"errors"
	"fmt"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// TetrisConfig contains all configuration for the game.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Scoring ScoringConfig `yaml:"scoring"`
	Drop    DropConfig    `yaml:"drop"`
	Lock    LockConfig    `yaml:"lock"`
	Touch   TouchConfig   `yaml:"touch"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ScoringConfig defines points and level progression.
type ScoringConfig struct {
	LineScores    []int `yaml:"line_scores"`     // Points for 0..4 rows, multiplied by level
	LinesPerLevel int   `yaml:"lines_per_level"` // Cleared lines per level-up
	StartLevel    int   `yaml:"start_level"`
}

// DropConfig defines the automatic drop curve:
// max(min_ms, base_ms/level*factor + offset_ms).
type DropConfig struct {
	BaseMs   int     `yaml:"base_ms"`
	Factor   float64 `yaml:"factor"`
	OffsetMs int     `yaml:"offset_ms"`
	MinMs    int     `yaml:"min_ms"`
}

// LockConfig defines what happens when a piece locks near the top.
type LockConfig struct {
	TopOutPolicy string `yaml:"top_out_policy"` // "game_over" or "merge"
	TopMargin    int    `yaml:"top_margin"`     // Rows from the top that count as topped out
}

// TouchConfig defines mouse gesture thresholds, in terminal cells.
type TouchConfig struct {
	TapMaxCells   int `yaml:"tap_max_cells"`
	TapMaxMs      int `yaml:"tap_max_ms"`
	SwipeMinRows  int `yaml:"swipe_min_rows"`
	DragStepCells int `yaml:"drag_step_cells"`
}

// Top-out policies accepted in lock.top_out_policy.
const (
	TopOutGameOver = "game_over"
	TopOutMerge    = "merge"
)

// Validate checks that every value is usable.
func (c TetrisConfig) Validate() error {
	switch {
	case c.Board.Width < 4 || c.Board.Width > 40:
		return fmt.Errorf("%w: board.width %d must be in [4, 40]", ErrInvalid, c.Board.Width)
	case c.Board.Height < 4 || c.Board.Height > 40:
		return fmt.Errorf("%w: board.height %d must be in [4, 40]", ErrInvalid, c.Board.Height)
	case len(c.Scoring.LineScores) != 5:
		return fmt.Errorf("%w: scoring.line_scores needs 5 entries, got %d", ErrInvalid, len(c.Scoring.LineScores))
	case c.Scoring.LinesPerLevel <= 0:
		return fmt.Errorf("%w: scoring.lines_per_level must be positive", ErrInvalid)
	case c.Scoring.StartLevel < 1:
		return fmt.Errorf("%w: scoring.start_level must be at least 1", ErrInvalid)
	case c.Drop.BaseMs <= 0:
		return fmt.Errorf("%w: drop.base_ms must be positive", ErrInvalid)
	case c.Drop.Factor <= 0:
		return fmt.Errorf("%w: drop.factor must be positive", ErrInvalid)
	case c.Drop.OffsetMs < 0:
		return fmt.Errorf("%w: drop.offset_ms must not be negative", ErrInvalid)
	case c.Drop.MinMs <= 0:
		return fmt.Errorf("%w: drop.min_ms must be positive", ErrInvalid)
	case c.Lock.TopOutPolicy != TopOutGameOver && c.Lock.TopOutPolicy != TopOutMerge:
		return fmt.Errorf("%w: lock.top_out_policy %q must be %q or %q",
			ErrInvalid, c.Lock.TopOutPolicy, TopOutGameOver, TopOutMerge)
	case c.Lock.TopMargin < 0:
		return fmt.Errorf("%w: lock.top_margin must not be negative", ErrInvalid)
	case c.Touch.TapMaxCells < 0 || c.Touch.SwipeMinRows < 0:
		return fmt.Errorf("%w: touch thresholds must not be negative", ErrInvalid)
	case c.Touch.TapMaxMs <= 0 || c.Touch.DragStepCells <= 0:
		return fmt.Errorf("%w: touch.tap_max_ms and touch.drag_step_cells must be positive", ErrInvalid)
	}
	for i, s := range c.Scoring.LineScores {
		if s < 0 {
			return fmt.Errorf("%w: scoring.line_scores[%d] must not be negative", ErrInvalid, i)
		}
	}
	return nil
}
