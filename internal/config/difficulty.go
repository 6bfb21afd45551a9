package config

import (
	"errors"
	"fmt"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed" // keep the file's adversary_period
)

// ErrUnknownPreset is returned by ParsePreset for unrecognised names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset validates a preset name. Empty means "use the config file".
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
}

// adversaryPeriodForPreset returns the adversary period in seconds.
func adversaryPeriodForPreset(preset DifficultyPreset) (float64, bool) {
	switch preset {
	case DifficultyEasy:
		return 6.0, true
	case DifficultyNormal:
		return 4.0, true
	case DifficultyHard:
		return 2.0, true
	default:
		return 0, false
	}
}

// ApplyPreset modifies the config based on a difficulty preset.
// An empty preset leaves the config untouched.
func ApplyPreset(cfg *CruncherConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	cfg.Difficulty.Preset = preset
	if period, ok := adversaryPeriodForPreset(preset); ok {
		cfg.Gameplay.AdversaryPeriod = period
	}
}
