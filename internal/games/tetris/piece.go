package tetris

import (
	"iter"

	"github.com/vovakirdan/tui-tetris/internal/core"
)

// kickOffsets are the horizontal offsets tried, in order, when a rotation
// does not fit in place. Only same-row shifts are attempted.
var kickOffsets = [...]int{0, 1, -1}

// Piece is the active piece: its type, current orientation and the board
// position of the shape's top-left corner. Pieces are replaced on every
// transform, never modified in place.
type Piece struct {
	Type  PieceType
	Shape Shape
	X, Y  int
}

// SpawnPiece places the base orientation of t at the top-center spawn
// column of a board with the given column count.
func SpawnPiece(t PieceType, cols int) Piece {
	shape := BaseShape(t)
	return Piece{
		Type:  t,
		Shape: shape,
		X:     cols/2 - core.CeilDiv(shape.Width(), 2),
		Y:     0,
	}
}

// Cells yields the board coordinates of every filled cell of the piece.
func (p Piece) Cells() iter.Seq[core.Point] {
	return func(yield func(core.Point) bool) {
		for y, row := range p.Shape {
			for x, filled := range row {
				if !filled {
					continue
				}
				if !yield(core.Point{X: x, Y: y}.Add(p.X, p.Y)) {
					return
				}
			}
		}
	}
}

// Shifted returns a copy of p moved by (dx, dy).
func (p Piece) Shifted(dx, dy int) Piece {
	p.X += dx
	p.Y += dy
	return p
}

// Move shifts p one column in dir (-1 left, +1 right). The second result
// is false, and p is returned unchanged, when the shift would collide.
func Move(b Board, p Piece, dir int) (Piece, bool) {
	candidate := p.Shifted(sign(dir), 0)
	if b.Collides(candidate) {
		return p, false
	}
	return candidate, true
}

// Fall moves p down one row. A false result means p cannot fall further
// and must lock.
func Fall(b Board, p Piece) (Piece, bool) {
	candidate := p.Shifted(0, 1)
	if b.Collides(candidate) {
		return p, false
	}
	return candidate, true
}

// DropPosition returns p moved down to the lowest legal row.
func DropPosition(b Board, p Piece) Piece {
	for {
		next, ok := Fall(b, p)
		if !ok {
			return p
		}
		p = next
	}
}

// RotatePiece turns p clockwise (dir > 0) or counterclockwise (dir < 0),
// trying each kick offset in turn. When no offset fits, p is returned
// unchanged with false.
func RotatePiece(b Board, p Piece, dir int) (Piece, bool) {
	if dir == 0 {
		return p, false
	}

	rotated := Rotate(p.Shape)
	if dir < 0 {
		rotated = RotateCCW(p.Shape)
	}

	for _, dx := range kickOffsets {
		candidate := Piece{Type: p.Type, Shape: rotated, X: p.X + dx, Y: p.Y}
		if !b.Collides(candidate) {
			return candidate, true
		}
	}
	return p, false
}

func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	default:
		return 0
	}
}
