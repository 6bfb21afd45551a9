// Package config provides YAML-based game configuration loading and
// difficulty presets for the cruncher.
package config

// CruncherConfig contains all tunable parameters of a cruncher session.
type CruncherConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Gameplay   GameplayConfig   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the grid dimensions.
type BoardConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GameplayConfig defines win condition and adversary pacing.
type GameplayConfig struct {
	RequiredCrunches int     `yaml:"required_crunches"`
	AdversaryPeriod  float64 `yaml:"adversary_period"` // seconds
}

// DifficultyConfig selects a named preset.
type DifficultyConfig struct {
	Preset DifficultyPreset `yaml:"preset"`
}

// AdversaryPeriodTicks converts the adversary period to simulation ticks.
// Never returns less than one tick.
func (c CruncherConfig) AdversaryPeriodTicks(tickRate int) int {
	ticks := int(c.Gameplay.AdversaryPeriod*float64(tickRate) + 0.5)
	if ticks < 1 {
		return 1
	}
	return ticks
}
