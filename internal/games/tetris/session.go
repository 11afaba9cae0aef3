package tetris

import (
	"context"
	"math/rand"
	"time"

	"github.com/looplab/fsm"
)

// Session states.
const (
	StateRunning  = "running"
	StatePaused   = "paused"
	StateGameOver = "gameover"
)

// Session events.
const (
	eventPause  = "pause"
	eventResume = "resume"
	eventTopOut = "top_out"
	eventReset  = "reset"
)

// PieceSource supplies the piece types that enter the queue.
type PieceSource interface {
	Next() PieceType
}

// RandSource draws piece types uniformly at random. There is no bag:
// every draw is independent.
type RandSource struct {
	rng *rand.Rand
}

// NewRandSource returns a uniform source seeded with seed.
func NewRandSource(seed int64) *RandSource {
	return &RandSource{rng: rand.New(rand.NewSource(seed))}
}

// Next returns a uniformly chosen piece type.
func (s *RandSource) Next() PieceType {
	return PieceTypes[s.rng.Intn(len(PieceTypes))]
}

// GameOverFunc is called with the final score each time a session tops out.
type GameOverFunc func(finalScore int)

// HeldPiece is the piece set aside by Hold, kept in its base orientation.
type HeldPiece struct {
	Type  PieceType
	Shape Shape
}

// Session is one game: the board, the active/next/held pieces, the score
// counters and the running/paused/gameover state machine. A Session is
// not safe for concurrent use; callers serialize input and gravity ticks.
type Session struct {
	rules      Rules
	source     PieceSource
	onGameOver GameOverFunc
	machine    *fsm.FSM

	board   Board
	active  Piece
	next    PieceType
	held    *HeldPiece
	canHold bool
	score   int
	lines   int
	level   int
}

// Option configures a Session.
type Option func(*Session)

// WithGameOverFunc registers the callback fired on every game over.
func WithGameOverFunc(fn GameOverFunc) Option {
	return func(s *Session) {
		s.onGameOver = fn
	}
}

// NewSession creates a running session with a fresh board.
func NewSession(rules Rules, source PieceSource, opts ...Option) *Session {
	s := &Session{
		rules:  rules,
		source: source,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.machine = fsm.NewFSM(
		StateRunning,
		fsm.Events{
			{Name: eventPause, Src: []string{StateRunning}, Dst: StatePaused},
			{Name: eventResume, Src: []string{StatePaused}, Dst: StateRunning},
			{Name: eventTopOut, Src: []string{StateRunning}, Dst: StateGameOver},
			{Name: eventReset, Src: []string{StateRunning, StatePaused, StateGameOver}, Dst: StateRunning},
		},
		fsm.Callbacks{
			"enter_" + StateGameOver: func(_ context.Context, _ *fsm.Event) {
				if s.onGameOver != nil {
					s.onGameOver(s.score)
				}
			},
		},
	)

	s.Reset()
	return s
}

// fire triggers a state machine event. Callers check the current state
// first; the only expected error is NoTransitionError for a reset while
// already running.
func (s *Session) fire(event string) {
	_ = s.machine.Event(context.Background(), event)
}

// Reset starts a new game from any state.
func (s *Session) Reset() {
	s.board = NewBoard(s.rules.Rows, s.rules.Cols)
	s.active = SpawnPiece(s.source.Next(), s.rules.Cols)
	s.next = s.source.Next()
	s.held = nil
	s.canHold = true
	s.score = 0
	s.lines = 0
	s.level = 1
	s.fire(eventReset)
}

// TogglePause switches between running and paused. It does nothing
// after game over.
func (s *Session) TogglePause() {
	switch s.machine.Current() {
	case StateRunning:
		s.fire(eventPause)
	case StatePaused:
		s.fire(eventResume)
	}
}

func (s *Session) running() bool {
	return s.machine.Is(StateRunning)
}

// Move shifts the active piece one column left (dir < 0) or right (dir > 0).
func (s *Session) Move(dir int) bool {
	if !s.running() {
		return false
	}
	p, ok := Move(s.board, s.active, dir)
	if ok {
		s.active = p
	}
	return ok
}

// Rotate turns the active piece clockwise (dir > 0) or counterclockwise (dir < 0).
func (s *Session) Rotate(dir int) bool {
	if !s.running() {
		return false
	}
	p, ok := RotatePiece(s.board, s.active, dir)
	if ok {
		s.active = p
	}
	return ok
}

// SoftDrop moves the active piece down one row, locking it when it cannot
// fall. It reports whether a lock happened.
func (s *Session) SoftDrop() bool {
	if !s.running() {
		return false
	}
	p, ok := Fall(s.board, s.active)
	if ok {
		s.active = p
		return false
	}
	s.lock(s.active)
	return true
}

// Tick applies one step of gravity.
func (s *Session) Tick() bool {
	return s.SoftDrop()
}

// HardDrop drops the active piece to its lowest legal row and locks it.
func (s *Session) HardDrop() bool {
	if !s.running() {
		return false
	}
	s.active = DropPosition(s.board, s.active)
	s.lock(s.active)
	return true
}

// Hold sets the active piece aside, or swaps it with the held piece.
// Only one hold is allowed per spawned piece. A swap whose incoming piece
// does not fit at the spawn position is rejected and changes nothing,
// including the held piece.
func (s *Session) Hold() bool {
	if !s.running() || !s.canHold {
		return false
	}

	outgoing := &HeldPiece{Type: s.active.Type, Shape: BaseShape(s.active.Type)}

	if s.held == nil {
		s.held = outgoing
		s.canHold = false
		s.spawnNext()
		if s.board.Collides(s.active) {
			s.fire(eventTopOut)
		}
		return true
	}

	incoming := SpawnPiece(s.held.Type, s.rules.Cols)
	if s.board.Collides(incoming) {
		return false
	}
	s.held = outgoing
	s.active = incoming
	s.canHold = false
	return true
}

// lock merges p into the board, clears lines, scores them and spawns the
// queued piece. A spawn that collides ends the game.
func (s *Session) lock(p Piece) {
	cleared, board := s.board.Merge(p).ClearLines()
	s.board = board

	if cleared > 0 {
		s.score += LineClearScore(cleared, s.level)
		s.lines += cleared
		s.level = s.rules.Level(s.lines)
	}

	s.spawnNext()
	s.canHold = true

	if s.board.Collides(s.active) {
		s.fire(eventTopOut)
	}
}

// spawnNext makes the queued piece active and refills the queue.
func (s *Session) spawnNext() {
	s.active = SpawnPiece(s.next, s.rules.Cols)
	s.next = s.source.Next()
}

// State returns the current state name.
func (s *Session) State() string {
	return s.machine.Current()
}

// Paused reports whether the session is paused.
func (s *Session) Paused() bool {
	return s.machine.Is(StatePaused)
}

// GameOver reports whether the session has topped out.
func (s *Session) GameOver() bool {
	return s.machine.Is(StateGameOver)
}

// Board returns a copy of the playfield.
func (s *Session) Board() Board {
	return s.board.Clone()
}

// Active returns the active piece.
func (s *Session) Active() Piece {
	p := s.active
	p.Shape = p.Shape.Clone()
	return p
}

// Next returns the queued piece type.
func (s *Session) Next() PieceType {
	return s.next
}

// Held returns the held piece, or false when nothing is held.
func (s *Session) Held() (HeldPiece, bool) {
	if s.held == nil {
		return HeldPiece{}, false
	}
	return HeldPiece{Type: s.held.Type, Shape: s.held.Shape.Clone()}, true
}

// CanHold reports whether Hold is currently allowed.
func (s *Session) CanHold() bool {
	return s.canHold
}

// Score returns the current score.
func (s *Session) Score() int {
	return s.score
}

// Lines returns the total number of cleared rows.
func (s *Session) Lines() int {
	return s.lines
}

// Level returns the current level.
func (s *Session) Level() int {
	return s.level
}

// Rules returns the rules the session was created with.
func (s *Session) Rules() Rules {
	return s.rules
}

// DropInterval returns the gravity cadence for the current level.
func (s *Session) DropInterval() time.Duration {
	return s.rules.DropInterval(s.level)
}
