package core

import "time"

// TopOutPolicy decides what happens when a piece locks inside the top margin.
type TopOutPolicy string

const (
	// TopOutGameOver ends the game without merging the piece.
	TopOutGameOver TopOutPolicy = "game_over"
	// TopOutMerge merges the piece normally; the next spawn decides game over.
	TopOutMerge TopOutPolicy = "merge"
)

// DefaultLineScores is the points table indexed by rows cleared at once.
var DefaultLineScores = [5]int{0, 40, 100, 300, 1200}

// Rules holds every tunable of the engine.
type Rules struct {
	Width  int
	Height int

	LineScores    [5]int
	LinesPerLevel int
	StartLevel    int

	// Drop interval curve: max(MinInterval, BaseInterval/level*Factor + Offset).
	BaseInterval time.Duration
	Factor       float64
	Offset       time.Duration
	MinInterval  time.Duration

	TopOut    TopOutPolicy
	TopMargin int
}

// DefaultRules returns the canonical 10x20 rules.
func DefaultRules() Rules {
	return Rules{
		Width:         10,
		Height:        20,
		LineScores:    DefaultLineScores,
		LinesPerLevel: 10,
		StartLevel:    1,
		BaseInterval:  1000 * time.Millisecond,
		Factor:        0.8,
		Offset:        200 * time.Millisecond,
		MinInterval:   100 * time.Millisecond,
		TopOut:        TopOutGameOver,
		TopMargin:     1,
	}
}

// withDefaults fills zero or nonsensical fields from DefaultRules.
// LineScores is taken as given: an all-zero table is a valid choice.
func (r Rules) withDefaults() Rules {
	def := DefaultRules()
	if r.Width < 4 {
		r.Width = def.Width
	}
	if r.Height < 4 {
		r.Height = def.Height
	}
	if r.LinesPerLevel <= 0 {
		r.LinesPerLevel = def.LinesPerLevel
	}
	if r.StartLevel <= 0 {
		r.StartLevel = def.StartLevel
	}
	if r.BaseInterval <= 0 {
		r.BaseInterval = def.BaseInterval
	}
	if r.Factor <= 0 {
		r.Factor = def.Factor
	}
	if r.Offset < 0 {
		r.Offset = 0
	}
	if r.MinInterval <= 0 {
		r.MinInterval = def.MinInterval
	}
	if r.TopOut != TopOutMerge {
		r.TopOut = TopOutGameOver
	}
	if r.TopMargin < 0 {
		r.TopMargin = 0
	}
	return r
}

// LineScore returns the points for clearing n rows at the given level.
func (r Rules) LineScore(n, level int) int {
	if n <= 0 {
		return 0
	}
	if n >= len(r.LineScores) {
		n = len(r.LineScores) - 1
	}
	return r.LineScores[n] * level
}

// LevelFor returns the level reached after the given cumulative lines.
func (r Rules) LevelFor(lines int) int {
	return r.StartLevel + lines/r.LinesPerLevel
}

// DropInterval returns the automatic drop interval for a level.
func (r Rules) DropInterval(level int) time.Duration {
	if level < 1 {
		level = 1
	}
	ms := float64(r.BaseInterval.Milliseconds())/float64(level)*r.Factor +
		float64(r.Offset.Milliseconds())
	d := time.Duration(ms * float64(time.Millisecond))
	return max(r.MinInterval, d)
}
