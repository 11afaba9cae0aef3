package tetris

import (
	"strings"
	"testing"
)

func TestNewBoardIsEmpty(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)

	if b.Rows() != 20 || b.Cols() != 10 {
		t.Fatalf("NewBoard() = %dx%d, expected 20x10", b.Rows(), b.Cols())
	}
	if n := b.FilledCount(); n != 0 {
		t.Errorf("FilledCount() = %d, expected 0", n)
	}
}

func TestParseBoardRoundTrip(t *testing.T) {
	rows := []string{
		"..#.",
		"#..#",
		"####",
	}
	b := ParseBoard(rows...)

	if got := b.String(); got != strings.Join(rows, "\n") {
		t.Errorf("String() = %q", got)
	}
	if !b.Filled(2, 0) || b.Filled(0, 0) {
		t.Error("Filled() does not match the fixture")
	}
	if b.Filled(-1, 0) || b.Filled(0, 3) {
		t.Error("Filled() outside the board should be false")
	}
}

func TestCollides(t *testing.T) {
	b := ParseBoard(
		"......",
		"......",
		"......",
		"..#...",
		"......",
	)
	o := BaseShape(PieceO)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"free", 0, 0, false},
		{"past left wall", -1, 0, true},
		{"past right wall", 5, 0, true},
		{"touching right wall", 4, 0, false},
		{"past floor", 0, 4, true},
		{"resting on floor", 0, 3, false},
		{"above ceiling", 0, -1, true},
		{"overlapping block", 1, 2, true},
		{"beside block", 3, 3, false},
	}

	for _, tt := range tests {
		p := Piece{Type: PieceO, Shape: o, X: tt.x, Y: tt.y}
		if got := b.Collides(p); got != tt.expected {
			t.Errorf("%s: Collides(O at %d,%d) = %v, expected %v", tt.name, tt.x, tt.y, got, tt.expected)
		}
	}
}

func TestCollidesIgnoresEmptyShapeCells(t *testing.T) {
	b := NewBoard(4, 4)
	// The I shape's top row is empty, so y = -1 still fits.
	p := Piece{Type: PieceI, Shape: BaseShape(PieceI), X: 0, Y: -1}

	if b.Collides(p) {
		t.Error("Collides() should ignore empty cells of the shape")
	}
}

func TestMergeLeavesReceiverUntouched(t *testing.T) {
	b := NewBoard(4, 4)
	merged := b.Merge(Piece{Type: PieceO, Shape: BaseShape(PieceO), X: 1, Y: 2})

	if b.FilledCount() != 0 {
		t.Error("Merge() modified the receiver")
	}
	expected := "....\n....\n.##.\n.##."
	if got := merged.String(); got != expected {
		t.Errorf("Merge() = %q, expected %q", got, expected)
	}
}

func TestClearLines(t *testing.T) {
	tests := []struct {
		name     string
		before   []string
		cleared  int
		expected []string
	}{
		{
			name:     "nothing full",
			before:   []string{"....", "#.#.", "###."},
			cleared:  0,
			expected: []string{"....", "#.#.", "###."},
		},
		{
			name:     "single bottom row",
			before:   []string{"....", "#...", "####"},
			cleared:  1,
			expected: []string{"....", "....", "#..."},
		},
		{
			name:     "non-adjacent rows keep order",
			before:   []string{"#...", "####", ".#..", "####", "..#."},
			cleared:  2,
			expected: []string{"....", "....", "#...", ".#..", "..#."},
		},
		{
			name:     "whole board",
			before:   []string{"####", "####"},
			cleared:  2,
			expected: []string{"....", "...."},
		},
	}

	for _, tt := range tests {
		b := ParseBoard(tt.before...)
		n, out := b.ClearLines()
		if n != tt.cleared {
			t.Errorf("%s: ClearLines() cleared %d, expected %d", tt.name, n, tt.cleared)
		}
		if got, want := out.String(), strings.Join(tt.expected, "\n"); got != want {
			t.Errorf("%s: ClearLines() =\n%s\nexpected\n%s", tt.name, got, want)
		}
		if out.Rows() != b.Rows() || out.Cols() != b.Cols() {
			t.Errorf("%s: dimensions changed to %dx%d", tt.name, out.Rows(), out.Cols())
		}
		if out.FilledCount() != b.FilledCount()-n*b.Cols() {
			t.Errorf("%s: FilledCount() = %d after clearing %d rows", tt.name, out.FilledCount(), n)
		}
	}
}
