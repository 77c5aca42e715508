package bricks

import (
	"fmt"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// ScoreIndicator draws the score and remaining counts on the top wall.
type ScoreIndicator struct {
	score  *Counter
	blocks *Counter
	balls  *Counter
	at     geom.Point
	color  core.Color
}

// NewScoreIndicator creates an indicator drawn at the given world point.
func NewScoreIndicator(score, blocks, balls *Counter, at geom.Point) *ScoreIndicator {
	return &ScoreIndicator{score: score, blocks: blocks, balls: balls, at: at, color: core.ColorBrightWhite}
}

// Text returns the line the indicator draws.
func (s *ScoreIndicator) Text() string {
	return fmt.Sprintf("Score: %d  Blocks: %d  Balls: %d", s.score.Value(), s.blocks.Value(), s.balls.Value())
}

// Draw implements Sprite.
func (s *ScoreIndicator) Draw(surface core.Surface) {
	surface.DrawText(s.at, s.Text(), s.color)
}

// TimePassed implements Sprite.
func (s *ScoreIndicator) TimePassed(core.InputFrame) {}
