package bricks

import (
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/physics"
)

// Arena is the part of the game listeners use to take things out of play.
type Arena interface {
	RemoveSprite(s Sprite)
	RemoveCollidable(c physics.Collidable)
}

// BlockRemover removes a block hit by a ball of another color. The ball takes
// the block's color, so it passes through blocks of that color afterwards.
type BlockRemover struct {
	arena     Arena
	remaining *Counter
}

// NewBlockRemover creates a remover that decrements remaining per removed block.
func NewBlockRemover(arena Arena, remaining *Counter) *BlockRemover {
	return &BlockRemover{arena: arena, remaining: remaining}
}

// HitEvent implements physics.HitListener.
func (r *BlockRemover) HitEvent(beingHit *physics.Block, hitter *physics.Ball) {
	if beingHit.ColorMatches(hitter) {
		return
	}
	hitter.SetColor(beingHit.Color())
	beingHit.RemoveHitListener(r)
	r.arena.RemoveCollidable(beingHit)
	r.arena.RemoveSprite(beingHit)
	r.remaining.Decrease(1)
}

// BallRemover takes balls out of play when they reach the death region.
type BallRemover struct {
	arena     Arena
	remaining *Counter
}

// NewBallRemover creates a remover that decrements remaining per removed ball.
func NewBallRemover(arena Arena, remaining *Counter) *BallRemover {
	return &BallRemover{arena: arena, remaining: remaining}
}

// HitEvent implements physics.HitListener.
func (r *BallRemover) HitEvent(_ *physics.Block, hitter *physics.Ball) {
	r.arena.RemoveSprite(hitter)
	r.remaining.Decrease(1)
}

// ScoreTracker adds points for every notified hit.
type ScoreTracker struct {
	score  *Counter
	points int
}

// NewScoreTracker creates a tracker adding points to score per hit.
func NewScoreTracker(score *Counter, points int) *ScoreTracker {
	return &ScoreTracker{score: score, points: points}
}

// HitEvent implements physics.HitListener.
func (t *ScoreTracker) HitEvent(*physics.Block, *physics.Ball) {
	t.score.Increase(t.points)
}

// LoggingHitListener writes a debug line per hit.
type LoggingHitListener struct {
	logger *log.Logger
}

// NewLoggingHitListener creates a listener writing to logger.
func NewLoggingHitListener(logger *log.Logger) *LoggingHitListener {
	return &LoggingHitListener{logger: logger}
}

// HitEvent implements physics.HitListener.
func (l *LoggingHitListener) HitEvent(beingHit *physics.Block, hitter *physics.Ball) {
	l.logger.Debug("block hit",
		"block", beingHit.Color(),
		"ball", hitter.Color(),
		"at", hitter.Center(),
		"velocity", hitter.Velocity(),
	)
}
