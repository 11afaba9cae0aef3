package tetris

import "time"

// Loop turns display frames into gravity ticks for a session. The caller
// invokes Frame once per refresh with a monotonic timestamp and keeps
// scheduling frames for as long as Frame returns true.
type Loop struct {
	session   *Session
	last      time.Duration
	armed     bool
	elapsed   time.Duration
	cancelled bool
}

// NewLoop returns a loop driving s.
func NewLoop(s *Session) *Loop {
	return &Loop{session: s}
}

// Frame accumulates the time since the previous frame and fires a single
// gravity tick once the accumulator exceeds the current drop interval.
// The first frame after the loop is (re)armed only records the clock.
// It reports whether another frame should be scheduled.
func (l *Loop) Frame(now time.Duration) bool {
	if l.cancelled {
		return false
	}
	if !l.session.running() {
		l.armed = false
		return false
	}

	if !l.armed {
		l.armed = true
		l.last = now
		return true
	}

	if delta := now - l.last; delta > 0 {
		l.elapsed += delta
	}
	l.last = now

	if l.elapsed > l.session.DropInterval() {
		l.session.Tick()
		l.elapsed = 0
	}

	return l.session.running()
}

// Rearm drops the accumulated time. The next frame only records the clock.
func (l *Loop) Rearm() {
	l.armed = false
	l.elapsed = 0
}

// Cancel stops the loop for good. Later frames do nothing.
func (l *Loop) Cancel() {
	l.cancelled = true
}

// Cancelled reports whether Cancel has been called.
func (l *Loop) Cancelled() bool {
	return l.cancelled
}
