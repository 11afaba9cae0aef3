package tetris

import "testing"

func TestSpawnPieceColumn(t *testing.T) {
	tests := []struct {
		piece    PieceType
		cols     int
		expected int
	}{
		{PieceI, 10, 3},
		{PieceO, 10, 4},
		{PieceT, 10, 3},
		{PieceI, 4, 0},
		{PieceT, 7, 1},
	}

	for _, tt := range tests {
		p := SpawnPiece(tt.piece, tt.cols)
		if p.X != tt.expected || p.Y != 0 {
			t.Errorf("SpawnPiece(%s, %d) at (%d,%d), expected (%d,0)", tt.piece, tt.cols, p.X, p.Y, tt.expected)
		}
		if !p.Shape.Equal(BaseShape(tt.piece)) {
			t.Errorf("SpawnPiece(%s) not in base orientation", tt.piece)
		}
	}
}

func TestMove(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := Piece{Type: PieceO, Shape: BaseShape(PieceO), X: 0, Y: 0}

	if _, ok := Move(b, p, -1); ok {
		t.Error("Move() past the left wall should be rejected")
	}

	moved, ok := Move(b, p, 1)
	if !ok || moved.X != 1 {
		t.Errorf("Move(right) = x %d, ok %v, expected x 1, ok true", moved.X, ok)
	}
	if p.X != 0 {
		t.Error("Move() modified the original piece")
	}
}

func TestDropPositionIOnEmptyBoard(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := DropPosition(b, SpawnPiece(PieceI, DefaultCols))

	for c := range p.Cells() {
		if c.Y != 19 {
			t.Errorf("dropped I cell at row %d, expected 19", c.Y)
		}
	}
	if _, ok := Fall(b, p); ok {
		t.Error("Fall() below the drop position should fail")
	}
}

func TestRotatePieceKicksOffWall(t *testing.T) {
	b := NewBoard(10, 6)
	// Vertical T with its empty left column hanging past the wall.
	p := Piece{Type: PieceT, Shape: Rotate(BaseShape(PieceT)), X: -1, Y: 4}
	if b.Collides(p) {
		t.Fatal("fixture piece should be legal")
	}

	got, ok := RotatePiece(b, p, 1)
	if !ok {
		t.Fatal("RotatePiece() should succeed with a kick")
	}
	if got.X != 0 || got.Y != 4 {
		t.Errorf("RotatePiece() at (%d,%d), expected (0,4)", got.X, got.Y)
	}
	if !got.Shape.Equal(Rotate(Rotate(BaseShape(PieceT)))) {
		t.Error("RotatePiece() produced the wrong orientation")
	}
}

func TestRotatePieceCounterClockwise(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	p := SpawnPiece(PieceT, DefaultCols)
	p.Y = 5

	got, ok := RotatePiece(b, p, -1)
	if !ok {
		t.Fatal("RotatePiece(ccw) rejected on an empty board")
	}
	if !got.Shape.Equal(RotateCCW(p.Shape)) || got.X != p.X {
		t.Error("RotatePiece(ccw) should rotate in place")
	}
}

func TestRotatePieceRejected(t *testing.T) {
	b := ParseBoard(
		"#.#",
		"#.#",
		"#.#",
		"#.#",
		"#.#",
		"#.#",
	)
	// Vertical I in the one-wide well; horizontal never fits.
	p := Piece{Type: PieceI, Shape: Rotate(BaseShape(PieceI)), X: -1, Y: 0}
	if b.Collides(p) {
		t.Fatal("fixture piece should be legal")
	}

	got, ok := RotatePiece(b, p, 1)
	if ok {
		t.Error("RotatePiece() should be rejected")
	}
	if got.X != p.X || !got.Shape.Equal(p.Shape) {
		t.Error("rejected rotation should return the piece unchanged")
	}
}
