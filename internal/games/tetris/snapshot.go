package tetris

import "time"

// Snapshot captures the complete session state for determinism testing
// and rendering.
type Snapshot struct {
	State        string
	Board        Board
	Active       Piece
	Next         PieceType
	Held         *HeldPiece
	CanHold      bool
	Score        int
	Lines        int
	Level        int
	DropInterval time.Duration
}

// Snapshot returns a copy of the session state. Mutating it does not
// affect the session.
func (s *Session) Snapshot() Snapshot {
	snap := Snapshot{
		State:        s.State(),
		Board:        s.Board(),
		Active:       s.Active(),
		Next:         s.next,
		CanHold:      s.canHold,
		Score:        s.score,
		Lines:        s.lines,
		Level:        s.level,
		DropInterval: s.DropInterval(),
	}
	if held, ok := s.Held(); ok {
		snap.Held = &held
	}
	return snap
}
