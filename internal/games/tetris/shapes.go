// Package tetris implements the falling-block puzzle: shape catalog, board model,
// piece movement, the session controller and its gravity loop.
package tetris

import "github.com/vovakirdan/tui-tetris/internal/core"

// PieceType identifies one of the seven tetrominoes.
type PieceType uint8

const (
	PieceI PieceType = iota
	PieceJ
	PieceL
	PieceO
	PieceS
	PieceZ
	PieceT
)

// PieceTypes lists every piece type in catalog order.
var PieceTypes = [...]PieceType{PieceI, PieceJ, PieceL, PieceO, PieceS, PieceZ, PieceT}

// String returns the single-letter name of the piece.
func (t PieceType) String() string {
	switch t {
	case PieceI:
		return "I"
	case PieceJ:
		return "J"
	case PieceL:
		return "L"
	case PieceO:
		return "O"
	case PieceS:
		return "S"
	case PieceZ:
		return "Z"
	case PieceT:
		return "T"
	default:
		return "?"
	}
}

// Color returns the display color used for the piece.
func (t PieceType) Color() core.Color {
	switch t {
	case PieceI:
		return core.ColorBrightCyan
	case PieceJ:
		return core.ColorBlue
	case PieceL:
		return core.ColorOrange
	case PieceO:
		return core.ColorYellow
	case PieceS:
		return core.ColorGreen
	case PieceZ:
		return core.ColorRed
	case PieceT:
		return core.ColorMagenta
	default:
		return core.ColorDefault
	}
}

// Shape is one orientation of a piece: an N×N occupancy grid indexed [y][x].
type Shape [][]bool

// baseShapes holds the canonical spawn orientation of every piece.
// Never return these slices directly; BaseShape hands out copies.
var baseShapes = [...]Shape{
	PieceI: parseShape(
		"....",
		"####",
		"....",
		"....",
	),
	PieceJ: parseShape(
		"#..",
		"###",
		"...",
	),
	PieceL: parseShape(
		"..#",
		"###",
		"...",
	),
	PieceO: parseShape(
		"##",
		"##",
	),
	PieceS: parseShape(
		".##",
		"##.",
		"...",
	),
	PieceZ: parseShape(
		"##.",
		".##",
		"...",
	),
	PieceT: parseShape(
		".#.",
		"###",
		"...",
	),
}

func parseShape(rows ...string) Shape {
	s := make(Shape, len(rows))
	for y, row := range rows {
		s[y] = make([]bool, len(row))
		for x, c := range row {
			s[y][x] = c == '#'
		}
	}
	return s
}

// BaseShape returns a copy of the canonical orientation of t.
func BaseShape(t PieceType) Shape {
	if int(t) >= len(baseShapes) {
		return nil
	}
	return baseShapes[t].Clone()
}

// Size returns N for an N×N shape.
func (s Shape) Size() int {
	return len(s)
}

// Width returns the width of the shape's bounding grid.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// Clone returns a deep copy of the shape.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for y := range s {
		c[y] = append([]bool(nil), s[y]...)
	}
	return c
}

// Equal reports whether two shapes have identical grids.
func (s Shape) Equal(o Shape) bool {
	if len(s) != len(o) {
		return false
	}
	for y := range s {
		if len(s[y]) != len(o[y]) {
			return false
		}
		for x := range s[y] {
			if s[y][x] != o[y][x] {
				return false
			}
		}
	}
	return true
}

// Rotate returns s turned 90° clockwise: result[x][N-1-y] = s[y][x].
func Rotate(s Shape) Shape {
	n := len(s)
	r := make(Shape, n)
	for i := range r {
		r[i] = make([]bool, n)
	}
	for y := range n {
		for x := range n {
			r[x][n-1-y] = s[y][x]
		}
	}
	return r
}

// RotateCCW returns s turned 90° counterclockwise, as three clockwise turns.
func RotateCCW(s Shape) Shape {
	return Rotate(Rotate(Rotate(s)))
}
