package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default rules configuration.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Rows: 20,
			Cols: 10,
		},
		Gravity: GravityConfig{
			BaseMS: 1000,
			StepMS: 100,
			MinMS:  100,
		},
		Scoring: ScoringConfig{
			LinesPerLevel: 10,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a config name.
func GetDefaultYAML(name string) []byte {
	switch name {
	case "tetris":
		return defaultTetrisYAML
	default:
		return nil
	}
}
