package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// ConfigFile is the file name searched for in the config directories.
const ConfigFile = "cruncher.yaml"

// LoadCruncher loads the cruncher configuration.
// Search order: customPath -> ~/.cruncher/configs/cruncher.yaml ->
// $XDG_CONFIG_HOME/cruncher/cruncher.yaml (and XDG_CONFIG_DIRS) ->
// ./configs/cruncher.yaml -> embedded default.
// Keys missing from a file keep their default values. The file's own
// difficulty preset is applied before returning.
func LoadCruncher(customPath string) (CruncherConfig, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CruncherConfig{}, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := parse(data)
		if err != nil {
			return CruncherConfig{}, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	if userCfgPath := userConfigPath(ConfigFile); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if xdgPath, err := xdg.SearchConfigFile(filepath.Join("cruncher", ConfigFile)); err == nil {
		if data, err := os.ReadFile(xdgPath); err == nil {
			if cfg, err := parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	if data, err := os.ReadFile(filepath.Join("configs", ConfigFile)); err == nil {
		if cfg, err := parse(data); err == nil {
			return cfg, nil
		}
	}

	cfg, err := parse(defaultCruncherYAML)
	if err != nil {
		return DefaultCruncherConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// parse decodes YAML over the hardcoded defaults and validates the result.
func parse(data []byte) (CruncherConfig, error) {
	cfg := DefaultCruncherConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if _, err := ParsePreset(string(cfg.Difficulty.Preset)); err != nil {
		return cfg, err
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	ApplyPreset(&cfg, cfg.Difficulty.Preset)
	return cfg, nil
}

// Validate checks that the configuration describes a playable board.
func (c CruncherConfig) Validate() error {
	var errs []error
	if c.Board.Rows < 1 || c.Board.Cols < 1 {
		errs = append(errs, fmt.Errorf("board must be at least 1x1, got %dx%d", c.Board.Rows, c.Board.Cols))
	}
	if c.Gameplay.RequiredCrunches < 1 {
		errs = append(errs, fmt.Errorf("required_crunches must be positive, got %d", c.Gameplay.RequiredCrunches))
	}
	if c.Gameplay.AdversaryPeriod <= 0 {
		errs = append(errs, fmt.Errorf("adversary_period must be positive, got %v", c.Gameplay.AdversaryPeriod))
	}
	return errors.Join(errs...)
}

// userConfigPath returns the path to a user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".cruncher", "configs", filename)
}
