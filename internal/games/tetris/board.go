package tetris

import "strings"

// Default playfield dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Board is a fixed rows×cols occupancy grid indexed [y][x].
// Boards are values: Merge and ClearLines return new boards and never
// modify the receiver.
type Board struct {
	rows  int
	cols  int
	cells [][]bool
}

// NewBoard returns an empty board with the given dimensions.
func NewBoard(rows, cols int) Board {
	b := Board{rows: rows, cols: cols, cells: make([][]bool, rows)}
	for y := range b.cells {
		b.cells[y] = make([]bool, cols)
	}
	return b
}

// ParseBoard builds a board from text rows, '#' for filled and anything
// else for empty. All rows must have the same length.
func ParseBoard(rows ...string) Board {
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	b := NewBoard(len(rows), cols)
	for y, row := range rows {
		for x := 0; x < cols && x < len(row); x++ {
			b.cells[y][x] = row[x] == '#'
		}
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return b.rows
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	return b.cols
}

// Filled reports whether the cell at (x, y) is occupied.
// Coordinates outside the board report false.
func (b Board) Filled(x, y int) bool {
	if !b.inBounds(x, y) {
		return false
	}
	return b.cells[y][x]
}

func (b Board) inBounds(x, y int) bool {
	return x >= 0 && x < b.cols && y >= 0 && y < b.rows
}

// Clone returns a deep copy of the board.
func (b Board) Clone() Board {
	c := Board{rows: b.rows, cols: b.cols, cells: make([][]bool, b.rows)}
	for y := range b.cells {
		c.cells[y] = append([]bool(nil), b.cells[y]...)
	}
	return c
}

// Collides reports whether any filled cell of p falls outside the board
// or onto an occupied cell. It is the only legality check for pieces.
func (b Board) Collides(p Piece) bool {
	for pt := range p.Cells() {
		if !b.inBounds(pt.X, pt.Y) || b.cells[pt.Y][pt.X] {
			return true
		}
	}
	return false
}

// Merge returns a copy of the board with every cell of p filled.
// The placement is not validated; callers check Collides first.
func (b Board) Merge(p Piece) Board {
	merged := b.Clone()
	for pt := range p.Cells() {
		if merged.inBounds(pt.X, pt.Y) {
			merged.cells[pt.Y][pt.X] = true
		}
	}
	return merged
}

// ClearLines removes every full row and prepends the same number of empty
// rows at the top. Remaining rows keep their relative order.
func (b Board) ClearLines() (int, Board) {
	kept := make([][]bool, 0, b.rows)
	for _, row := range b.cells {
		if !rowFull(row) {
			kept = append(kept, append([]bool(nil), row...))
		}
	}

	cleared := b.rows - len(kept)
	out := Board{rows: b.rows, cols: b.cols, cells: make([][]bool, 0, b.rows)}
	for range cleared {
		out.cells = append(out.cells, make([]bool, b.cols))
	}
	out.cells = append(out.cells, kept...)
	return cleared, out
}

func rowFull(row []bool) bool {
	for _, filled := range row {
		if !filled {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b Board) FilledCount() int {
	n := 0
	for _, row := range b.cells {
		for _, filled := range row {
			if filled {
				n++
			}
		}
	}
	return n
}

// String renders the board as rows of '#' and '.'.
func (b Board) String() string {
	var sb strings.Builder
	for y, row := range b.cells {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for _, filled := range row {
			if filled {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
