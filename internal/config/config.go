// Package config provides YAML-based game configuration loading and
// difficulty management.
package config

// BricksConfig contains all configuration for the brick breaker.
// Distances and speeds are in world units; the world is projected onto
// whatever terminal size is available.
type BricksConfig struct {
	World      BricksWorld      `yaml:"world"`
	Ball       BricksBall       `yaml:"ball"`
	Paddle     BricksPaddle     `yaml:"paddle"`
	Blocks     BricksBlocks     `yaml:"blocks"`
	Physics    BricksPhysics    `yaml:"physics"`
	Gameplay   BricksGameplay   `yaml:"gameplay"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BricksWorld defines the playfield.
type BricksWorld struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	BorderWidth float64 `yaml:"border_width"` // thickness of the top, left and right walls
}

// BricksBall defines how balls are served.
type BricksBall struct {
	Count       int     `yaml:"count"`
	Radius      float64 `yaml:"radius"`
	Speed       float64 `yaml:"speed"`        // distance per tick
	AngleSpread float64 `yaml:"angle_spread"` // launch angle drawn from [-spread, spread) degrees
	StartX      float64 `yaml:"start_x"`
	StartY      float64 `yaml:"start_y"`
	Color       string  `yaml:"color"`
}

// BricksPaddle defines the player paddle.
type BricksPaddle struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // distance per movement tick
	Wrap   bool    `yaml:"wrap"`  // wrap around the screen edges instead of stopping at the walls
	Color  string  `yaml:"color"`
}

// BricksBlocks defines the block grid.
type BricksBlocks struct {
	Layout    string   `yaml:"layout"` // "random" or "grid"
	Width     float64  `yaml:"width"`
	Height    float64  `yaml:"height"`
	StartX    float64  `yaml:"start_x"`
	EndX      float64  `yaml:"end_x"` // last column's x, inclusive
	StartY    float64  `yaml:"start_y"`
	EndY      float64  `yaml:"end_y"` // last row's y, inclusive
	MaxBlocks int      `yaml:"max_blocks"`
	Palette   []string `yaml:"palette"`
}

// BricksPhysics defines collision parameters.
type BricksPhysics struct {
	CollisionMargin float64 `yaml:"collision_margin"` // inflation of block and paddle collision rectangles
	MaxBallSpeed    float64 `yaml:"max_ball_speed"`
}

// BricksGameplay defines scoring.
type BricksGameplay struct {
	BlockPoints int  `yaml:"block_points"`
	WinBonus    int  `yaml:"win_bonus"`
	LogHits     bool `yaml:"log_hits"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI value to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
