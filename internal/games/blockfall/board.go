package blockfall

// Board is the grid of locked cells. A cell holds 0 when empty or the
// CellValue of the kind locked there.
type Board struct {
	rows  int
	cols  int
	cells [][]int
}

// NewBoard creates an empty board.
func NewBoard(rows, cols int) *Board {
	b := &Board{rows: rows, cols: cols}
	b.Reset()
	return b
}

// Reset empties every cell.
func (b *Board) Reset() {
	b.cells = make([][]int, b.rows)
	for r := range b.cells {
		b.cells[r] = make([]int, b.cols)
	}
}

// Rows returns the board height.
func (b *Board) Rows() int {
	return b.rows
}

// Cols returns the board width.
func (b *Board) Cols() int {
	return b.cols
}

// At returns the value of a cell, or 0 outside the board.
func (b *Board) At(row, col int) int {
	if row < 0 || row >= b.rows || col < 0 || col >= b.cols {
		return 0
	}
	return b.cells[row][col]
}

// Collides reports whether shape anchored at (row, col) leaves the side
// walls, goes through the floor, or overlaps a locked cell.
// Cells above the top edge are never rejected.
func (b *Board) Collides(row, col int, shape Shape) bool {
	for r, line := range shape {
		for c, on := range line {
			if !on {
				continue
			}
			y, x := row+r, col+c
			if x < 0 || x >= b.cols || y >= b.rows {
				return true
			}
			if y >= 0 && b.cells[y][x] != 0 {
				return true
			}
		}
	}
	return false
}

// Merge writes value into every board cell covered by shape at (row, col).
// Cells outside the board are dropped.
func (b *Board) Merge(row, col int, shape Shape, value int) {
	for r, line := range shape {
		for c, on := range line {
			y, x := row+r, col+c
			if !on || y < 0 || y >= b.rows || x < 0 || x >= b.cols {
				continue
			}
			b.cells[y][x] = value
		}
	}
}

// ClearFullRows removes every row without an empty cell and refills the top
// with empty rows. Remaining rows keep their relative order.
// Returns the number of rows removed.
func (b *Board) ClearFullRows() int {
	kept := make([][]int, 0, b.rows)
	for _, row := range b.cells {
		if rowHasGap(row) {
			kept = append(kept, row)
		}
	}

	cleared := b.rows - len(kept)
	if cleared == 0 {
		return 0
	}

	fresh := make([][]int, cleared, b.rows)
	for r := range fresh {
		fresh[r] = make([]int, b.cols)
	}
	b.cells = append(fresh, kept...)
	return cleared
}

func rowHasGap(row []int) bool {
	for _, v := range row {
		if v == 0 {
			return true
		}
	}
	return false
}

// Cells returns a copy of the grid.
func (b *Board) Cells() [][]int {
	out := make([][]int, b.rows)
	for r, row := range b.cells {
		out[r] = append([]int(nil), row...)
	}
	return out
}

// Empty reports whether no cell is occupied.
func (b *Board) Empty() bool {
	for _, row := range b.cells {
		for _, v := range row {
			if v != 0 {
				return false
			}
		}
	}
	return true
}
