package config

import (
	_ "embed"
)

//go:embed defaults/bricks.yaml
var defaultBricksYAML []byte

// DefaultBricksConfig returns the hard-coded brick breaker configuration.
// It matches defaults/bricks.yaml and is the last resort when nothing else loads.
func DefaultBricksConfig() BricksConfig {
	return BricksConfig{
		World: BricksWorld{
			Width:       800,
			Height:      600,
			BorderWidth: 20,
		},
		Ball: BricksBall{
			Count:       2,
			Radius:      5,
			Speed:       3,
			AngleSpread: 60,
			StartX:      390,
			StartY:      550,
			Color:       "red",
		},
		Paddle: BricksPaddle{
			X:      350,
			Y:      560,
			Width:  200,
			Height: 5,
			Speed:  16,
			Wrap:   true,
			Color:  "cyan",
		},
		Blocks: BricksBlocks{
			Layout:    "random",
			Width:     50,
			Height:    20,
			StartX:    20,
			EndX:      730,
			StartY:    60,
			EndY:      280,
			MaxBlocks: 100,
			Palette:   []string{"red", "blue", "green", "yellow", "pink", "cyan"},
		},
		Physics: BricksPhysics{
			CollisionMargin: 5,
			MaxBallSpeed:    8,
		},
		Gameplay: BricksGameplay{
			BlockPoints: 5,
			WinBonus:    100,
			LogHits:     true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "bricks", "bricks_grid":
		return defaultBricksYAML
	default:
		return nil
	}
}
