// Package config provides YAML-based configuration loading for the
// tetris rules.
package config

// TetrisConfig contains all configuration for the game rules.
type TetrisConfig struct {
	Board   BoardConfig   `yaml:"board"`
	Gravity GravityConfig `yaml:"gravity"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// BoardConfig defines the playfield dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GravityConfig defines the automatic drop cadence.
// interval = max(BaseMS - (level-1)*StepMS, MinMS)
type GravityConfig struct {
	BaseMS int `yaml:"base_ms"`
	StepMS int `yaml:"step_ms"`
	MinMS  int `yaml:"min_ms"`
}

// ScoringConfig defines level progression.
type ScoringConfig struct {
	LinesPerLevel int `yaml:"lines_per_level"`
}

// Validate replaces unusable values with their defaults and reports
// whether anything was changed.
func (c *TetrisConfig) Validate() bool {
	def := DefaultTetrisConfig()
	changed := false

	// Pieces are up to 4 cells wide.
	if c.Board.Rows < 4 || c.Board.Cols < 4 {
		c.Board = def.Board
		changed = true
	}
	if c.Gravity.BaseMS <= 0 || c.Gravity.MinMS <= 0 || c.Gravity.StepMS < 0 {
		c.Gravity = def.Gravity
		changed = true
	}
	if c.Scoring.LinesPerLevel <= 0 {
		c.Scoring = def.Scoring
		changed = true
	}
	return changed
}
