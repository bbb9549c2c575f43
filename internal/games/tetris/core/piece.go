package core

import (
	"fmt"
	"strings"
)

// Type identifies one of the seven tetrominoes.
type Type int

const (
	TypeT Type = iota
	TypeO
	TypeL
	TypeJ
	TypeI
	TypeS
	TypeZ
)

// typeCount is the number of distinct pieces in the catalog.
const typeCount = 7

// String returns the single-letter name of the piece.
func (t Type) String() string {
	if t < 0 || int(t) >= typeCount {
		return "?"
	}
	return string("TOLJISZ"[t])
}

// ParseType converts a single letter (case-insensitive) to a piece type.
func ParseType(s string) (Type, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	idx := strings.Index("TOLJISZ", name)
	if len(name) != 1 || idx < 0 {
		return 0, fmt.Errorf("unknown piece type %q", s)
	}
	return Type(idx), nil
}

// Types returns all piece types in catalog order.
func Types() []Type {
	return []Type{TypeT, TypeO, TypeL, TypeJ, TypeI, TypeS, TypeZ}
}

// Matrix is a square shape matrix. Zero cells are empty; nonzero cells
// carry the piece color index.
type Matrix [][]int

// Size returns the side length of the matrix.
func (m Matrix) Size() int {
	return len(m)
}

// Cells returns the offsets of every filled cell, row by row.
func (m Matrix) Cells() []Point {
	var cells []Point
	for y, row := range m {
		for x, v := range row {
			if v != 0 {
				cells = append(cells, Point{X: x, Y: y})
			}
		}
	}
	return cells
}

// Equal reports whether two matrices hold the same values.
func (m Matrix) Equal(other Matrix) bool {
	if len(m) != len(other) {
		return false
	}
	for y := range m {
		if len(m[y]) != len(other[y]) {
			return false
		}
		for x := range m[y] {
			if m[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// definition is a catalog entry: pre-rotated matrices and a color index.
type definition struct {
	rotations []Matrix
	color     int
}

// catalog holds every rotation state pre-baked, so rotation is a lookup.
var catalog = [typeCount]definition{
	TypeT: {color: 1, rotations: []Matrix{
		{{0, 1, 0}, {1, 1, 1}, {0, 0, 0}},
		{{0, 1, 0}, {0, 1, 1}, {0, 1, 0}},
		{{0, 0, 0}, {1, 1, 1}, {0, 1, 0}},
		{{0, 1, 0}, {1, 1, 0}, {0, 1, 0}},
	}},
	TypeO: {color: 2, rotations: []Matrix{
		{{2, 2}, {2, 2}},
	}},
	TypeL: {color: 3, rotations: []Matrix{
		{{0, 0, 3}, {3, 3, 3}, {0, 0, 0}},
		{{0, 3, 0}, {0, 3, 0}, {0, 3, 3}},
		{{0, 0, 0}, {3, 3, 3}, {3, 0, 0}},
		{{3, 3, 0}, {0, 3, 0}, {0, 3, 0}},
	}},
	TypeJ: {color: 4, rotations: []Matrix{
		{{4, 0, 0}, {4, 4, 4}, {0, 0, 0}},
		{{0, 4, 4}, {0, 4, 0}, {0, 4, 0}},
		{{0, 0, 0}, {4, 4, 4}, {0, 0, 4}},
		{{0, 4, 0}, {0, 4, 0}, {4, 4, 0}},
	}},
	TypeI: {color: 5, rotations: []Matrix{
		{{0, 0, 0, 0}, {5, 5, 5, 5}, {0, 0, 0, 0}, {0, 0, 0, 0}},
		{{0, 0, 5, 0}, {0, 0, 5, 0}, {0, 0, 5, 0}, {0, 0, 5, 0}},
		{{0, 0, 0, 0}, {0, 0, 0, 0}, {5, 5, 5, 5}, {0, 0, 0, 0}},
		{{0, 5, 0, 0}, {0, 5, 0, 0}, {0, 5, 0, 0}, {0, 5, 0, 0}},
	}},
	TypeS: {color: 6, rotations: []Matrix{
		{{0, 6, 6}, {6, 6, 0}, {0, 0, 0}},
		{{0, 6, 0}, {0, 6, 6}, {0, 0, 6}},
		{{0, 0, 0}, {0, 6, 6}, {6, 6, 0}},
		{{6, 0, 0}, {6, 6, 0}, {0, 6, 0}},
	}},
	TypeZ: {color: 7, rotations: []Matrix{
		{{7, 7, 0}, {0, 7, 7}, {0, 0, 0}},
		{{0, 0, 7}, {0, 7, 7}, {0, 7, 0}},
		{{0, 0, 0}, {7, 7, 0}, {0, 7, 7}},
		{{0, 7, 0}, {7, 7, 0}, {7, 0, 0}},
	}},
}

// RotationsOf returns the ordered rotation states of a piece.
// The returned matrices are shared and must not be modified.
func RotationsOf(t Type) []Matrix {
	return catalog[t].rotations
}

// ColorOf returns the color index (1-7) of a piece.
func ColorOf(t Type) int {
	return catalog[t].color
}

// ActivePiece is the falling piece. It is a value: transforms return a
// candidate copy which the engine commits only if it does not collide.
type ActivePiece struct {
	Type     Type
	Rotation int
	Matrix   Matrix
	Pos      Point
	Color    int
}

// NewActivePiece creates a piece of type t in rotation 0 at pos.
func NewActivePiece(t Type, pos Point) ActivePiece {
	return ActivePiece{
		Type:   t,
		Matrix: catalog[t].rotations[0],
		Pos:    pos,
		Color:  catalog[t].color,
	}
}

// Moved returns a candidate shifted by (dx, dy).
func (p ActivePiece) Moved(dx, dy int) ActivePiece {
	p.Pos = Point{X: p.Pos.X + dx, Y: p.Pos.Y + dy}
	return p
}

// Rotated returns a candidate in the next rotation state, offset by kick
// columns.
func (p ActivePiece) Rotated(kick int) ActivePiece {
	rotations := catalog[p.Type].rotations
	p.Rotation = (p.Rotation + 1) % len(rotations)
	p.Matrix = rotations[p.Rotation]
	p.Pos.X += kick
	return p
}

// RotationCount returns the number of rotation states of the piece.
func (p ActivePiece) RotationCount() int {
	return len(catalog[p.Type].rotations)
}

// Blocks returns the absolute board coordinates of every filled cell.
func (p ActivePiece) Blocks() []Point {
	cells := p.Matrix.Cells()
	for i := range cells {
		cells[i].X += p.Pos.X
		cells[i].Y += p.Pos.Y
	}
	return cells
}
