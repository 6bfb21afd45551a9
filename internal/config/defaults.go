package config

import (
	_ "embed"
)

//go:embed defaults/cruncher.yaml
var defaultCruncherYAML []byte

// DefaultCruncherConfig returns the built-in configuration: a 6x9 board,
// 15 crunches to win and an adversary acting every 4 seconds.
func DefaultCruncherConfig() CruncherConfig {
	return CruncherConfig{
		Board: BoardConfig{
			Rows: 6,
			Cols: 9,
		},
		Gameplay: GameplayConfig{
			RequiredCrunches: 15,
			AdversaryPeriod:  4.0,
		},
		Difficulty: DifficultyConfig{
			Preset: DifficultyFixed,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCruncherYAML
}
