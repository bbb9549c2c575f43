package core

// Point is a board coordinate. Y grows downward; row 0 is the top.
type Point struct {
	X, Y int
}

// Board is the grid of locked cells. Cells hold 0 (empty) or a color index.
// Dimensions are fixed at creation; only cell values change.
type Board struct {
	width  int
	height int
	rows   [][]int
}

// NewBoard creates an empty board.
func NewBoard(width, height int) *Board {
	b := &Board{width: width, height: height, rows: make([][]int, height)}
	for y := range b.rows {
		b.rows[y] = make([]int, width)
	}
	return b
}

// Width returns the number of columns.
func (b *Board) Width() int { return b.width }

// Height returns the number of rows.
func (b *Board) Height() int { return b.height }

// InBounds returns true if (x, y) is a cell on the board.
func (b *Board) InBounds(x, y int) bool {
	return x >= 0 && x < b.width && y >= 0 && y < b.height
}

// Get returns the cell value at (x, y). Out of bounds returns 0.
func (b *Board) Get(x, y int) int {
	if !b.InBounds(x, y) {
		return 0
	}
	return b.rows[y][x]
}

// Set writes a cell value. Out of bounds writes are ignored.
func (b *Board) Set(x, y, v int) {
	if b.InBounds(x, y) {
		b.rows[y][x] = v
	}
}

// IsRowFull returns true if every cell in row y is nonzero.
func (b *Board) IsRowFull(y int) bool {
	if y < 0 || y >= b.height {
		return false
	}
	for _, v := range b.rows[y] {
		if v == 0 {
			return false
		}
	}
	return true
}

// Merge writes the nonzero cells of m at pos using color.
// Cells outside the board are dropped.
func (b *Board) Merge(m Matrix, pos Point, color int) {
	for _, c := range m.Cells() {
		b.Set(pos.X+c.X, pos.Y+c.Y, color)
	}
}

// ClearFullRows removes every full row, scanning bottom to top, and inserts
// empty rows at the top so the height is unchanged. Remaining rows keep
// their relative order. Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]int, 0, b.height)
	cleared := 0
	for y := b.height - 1; y >= 0; y-- {
		if b.IsRowFull(y) {
			cleared++
			continue
		}
		kept = append(kept, b.rows[y])
	}
	if cleared == 0 {
		return 0
	}

	// kept is bottom-up; rebuild top-down with fresh empty rows first.
	rows := make([][]int, 0, b.height)
	for i := 0; i < cleared; i++ {
		rows = append(rows, make([]int, b.width))
	}
	for i := len(kept) - 1; i >= 0; i-- {
		rows = append(rows, kept[i])
	}
	b.rows = rows
	return cleared
}

// Rows returns a deep copy of the grid, top row first.
func (b *Board) Rows() [][]int {
	out := make([][]int, b.height)
	for y, row := range b.rows {
		out[y] = make([]int, b.width)
		copy(out[y], row)
	}
	return out
}
