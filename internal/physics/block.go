package physics

import (
	"reflect"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Block is a static colored obstacle. Its collision rectangle is the drawn
// rectangle inflated by a margin so the ball's radius is roughly accounted for.
type Block struct {
	rect      geom.Rectangle
	collision geom.Rectangle
	color     core.Color
	glyph     rune
	listeners []HitListener
}

// NewBlock creates a block drawn at rect that collides at rect inflated by margin.
func NewBlock(rect geom.Rectangle, color core.Color, margin float64) *Block {
	return &Block{
		rect:      rect,
		collision: rect.Inflate(margin),
		color:     color,
		glyph:     '█',
	}
}

// Rect returns the drawn rectangle.
func (b *Block) Rect() geom.Rectangle { return b.rect }

// Color returns the block color.
func (b *Block) Color() core.Color { return b.color }

// SetGlyph changes the rune the block is drawn with.
func (b *Block) SetGlyph(r rune) { b.glyph = r }

// CollisionRectangle implements Collidable.
func (b *Block) CollisionRectangle() geom.Rectangle {
	return b.collision
}

// ColorMatches reports whether the ball has the block's color.
func (b *Block) ColorMatches(ball *Ball) bool {
	return ball.Color() == b.color
}

// Hit implements Collidable.
//
// Listeners are notified only when the ball's color differs from the block's.
// The edge is classified by exact coordinate equality: a point on the top or
// bottom edge reflects dy, otherwise a point on the left or right edge
// reflects dx. Anything else leaves the velocity unchanged.
func (b *Block) Hit(hitter *Ball, collisionPoint geom.Point, current Velocity) Velocity {
	if !b.ColorMatches(hitter) {
		b.notifyHit(hitter)
	}

	r := b.collision
	switch {
	case collisionPoint.Y == r.Top() || collisionPoint.Y == r.Bottom():
		return Velocity{DX: current.DX, DY: -current.DY}
	case collisionPoint.X == r.Left() || collisionPoint.X == r.Right():
		return Velocity{DX: -current.DX, DY: current.DY}
	}
	return current
}

// AddHitListener implements HitNotifier.
func (b *Block) AddHitListener(l HitListener) {
	b.listeners = append(b.listeners, l)
}

// RemoveHitListener implements HitNotifier. Only the first registration is removed.
// Listeners of non-comparable types (funcs, structs holding slices or maps)
// cannot be matched and stay subscribed.
func (b *Block) RemoveHitListener(l HitListener) {
	if l == nil || !reflect.TypeOf(l).Comparable() {
		return
	}
	for i, existing := range b.listeners {
		if existing == l {
			b.listeners = append(b.listeners[:i:i], b.listeners[i+1:]...)
			return
		}
	}
}

// Listeners returns the number of subscribed listeners.
func (b *Block) Listeners() int {
	return len(b.listeners)
}

// Draw fills the drawn rectangle.
func (b *Block) Draw(s core.Surface) {
	s.FillRect(b.rect, b.glyph, b.color)
}

// TimePassed is a no-op; blocks never move.
func (b *Block) TimePassed(core.InputFrame) {}

// notifyHit dispatches over a snapshot so listeners may unsubscribe themselves.
func (b *Block) notifyHit(hitter *Ball) {
	snapshot := make([]HitListener, len(b.listeners))
	copy(snapshot, b.listeners)
	for _, l := range snapshot {
		l.HitEvent(b, hitter)
	}
}
