package core

import "time"

// Snapshot is a read-only copy of the engine state for renderers and
// determinism checks.
type Snapshot struct {
	Status       Status
	Paused       bool
	Score        int
	Lines        int
	Level        int
	Spawned      int
	DropInterval time.Duration

	Board [][]int // locked cells, top row first

	HasPiece   bool
	PieceType  Type
	Rotation   int
	PieceX     int
	PieceY     int
	PieceColor int
	PieceCells []Point // absolute board coordinates, may include y < 0
}

// Snapshot captures the current state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		Status:       e.status,
		Paused:       e.paused,
		Score:        e.score,
		Lines:        e.lines,
		Level:        e.level,
		Spawned:      e.spawned,
		DropInterval: e.sched.Interval(),
		Board:        e.board.Rows(),
		HasPiece:     e.hasPiece,
	}
	if e.hasPiece {
		s.PieceType = e.piece.Type
		s.Rotation = e.piece.Rotation
		s.PieceX = e.piece.Pos.X
		s.PieceY = e.piece.Pos.Y
		s.PieceColor = e.piece.Color
		s.PieceCells = e.piece.Blocks()
	}
	return s
}

// Composite returns the board with the active piece drawn over it.
// Piece cells above the board are omitted.
func (s Snapshot) Composite() [][]int {
	out := make([][]int, len(s.Board))
	for y, row := range s.Board {
		out[y] = make([]int, len(row))
		copy(out[y], row)
	}
	if !s.HasPiece {
		return out
	}
	for _, c := range s.PieceCells {
		if c.Y >= 0 && c.Y < len(out) && c.X >= 0 && c.X < len(out[c.Y]) {
			out[c.Y][c.X] = s.PieceColor
		}
	}
	return out
}

// Equal reports whether two snapshots describe the same state.
func (s Snapshot) Equal(o Snapshot) bool {
	if s.Status != o.Status || s.Paused != o.Paused || s.Score != o.Score ||
		s.Lines != o.Lines || s.Level != o.Level || s.Spawned != o.Spawned ||
		s.DropInterval != o.DropInterval || s.HasPiece != o.HasPiece ||
		s.PieceType != o.PieceType || s.Rotation != o.Rotation ||
		s.PieceX != o.PieceX || s.PieceY != o.PieceY {
		return false
	}
	return Matrix(s.Board).Equal(Matrix(o.Board))
}
