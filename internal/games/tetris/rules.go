package tetris

import (
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
)

// lineRewards is the base score for clearing 0..4 rows at once.
var lineRewards = [...]int{0, 100, 300, 500, 800}

// Rules holds the tunable parameters of a session.
type Rules struct {
	Rows          int
	Cols          int
	LinesPerLevel int
	BaseInterval  time.Duration // Drop interval at level 1
	IntervalStep  time.Duration // Reduction per level
	MinInterval   time.Duration // Floor for the drop interval
}

// DefaultRules returns the standard 20×10 rules.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultTetrisConfig())
}

// RulesFromConfig converts a loaded YAML configuration into Rules.
func RulesFromConfig(cfg config.TetrisConfig) Rules {
	cfg.Validate()
	return Rules{
		Rows:          cfg.Board.Rows,
		Cols:          cfg.Board.Cols,
		LinesPerLevel: cfg.Scoring.LinesPerLevel,
		BaseInterval:  time.Duration(cfg.Gravity.BaseMS) * time.Millisecond,
		IntervalStep:  time.Duration(cfg.Gravity.StepMS) * time.Millisecond,
		MinInterval:   time.Duration(cfg.Gravity.MinMS) * time.Millisecond,
	}
}

// Level returns the level reached after clearing totalLines rows.
func (r Rules) Level(totalLines int) int {
	return 1 + totalLines/r.LinesPerLevel
}

// DropInterval returns the gravity cadence for level.
func (r Rules) DropInterval(level int) time.Duration {
	interval := r.BaseInterval - time.Duration(level-1)*r.IntervalStep
	if interval < r.MinInterval {
		return r.MinInterval
	}
	return interval
}

// LineClearScore returns the points for clearing cleared rows at level.
// Anything outside 1..4 scores nothing.
func LineClearScore(cleared, level int) int {
	if cleared < 0 || cleared >= len(lineRewards) {
		return 0
	}
	return lineRewards[cleared] * level
}
