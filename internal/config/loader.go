package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBricks loads the brick breaker configuration.
// Search order: customPath -> ~/.arcade/configs/bricks.yaml -> ./configs/bricks.yaml -> embedded default.
// Files are decoded over the defaults, so a file only needs the keys it changes.
func LoadBricks(customPath string) (BricksConfig, error) {
	cfg := DefaultBricksConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return DefaultBricksConfig(), fmt.Errorf("config: parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, path := range []string{userConfigPath("bricks.yaml"), filepath.Join("configs", "bricks.yaml")} {
		if path == "" {
			continue
		}
		if parsed, ok := decodeFile(path); ok {
			return parsed, nil
		}
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultBricksYAML, &cfg); err != nil {
		return DefaultBricksConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// decodeFile reads an optional config file. Missing or malformed files are skipped.
func decodeFile(path string) (BricksConfig, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		return BricksConfig{}, false
	}
	cfg := DefaultBricksConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BricksConfig{}, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBricksPreset modifies the config based on a difficulty preset.
func ApplyBricksPreset(cfg *BricksConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Paddle.Width = 240
		cfg.Ball.Speed = 2
	case DifficultyHard:
		cfg.Paddle.Width = 160
		cfg.Ball.Speed = 4
		cfg.Blocks.MaxBlocks = 150
	}
}
