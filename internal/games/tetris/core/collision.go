package core

// Collides reports whether placing m at pos is invalid on b.
//
// A filled cell collides when it lies past a side wall or below the floor,
// or when it sits on a visible row over a locked block. Cells above the
// board (y < 0) skip the occupancy check so pieces can spawn or rotate
// partially above the top edge; they still respect the side walls.
func Collides(m Matrix, pos Point, b *Board) bool {
	for y, row := range m {
		for x, v := range row {
			if v == 0 {
				continue
			}
			absX := pos.X + x
			absY := pos.Y + y
			if absX < 0 || absX >= b.width {
				return true
			}
			if absY >= b.height {
				return true
			}
			if absY >= 0 && b.rows[absY][absX] != 0 {
				return true
			}
		}
	}
	return false
}

// Fits is the negation of Collides for a piece value.
func Fits(p ActivePiece, b *Board) bool {
	return !Collides(p.Matrix, p.Pos, b)
}
