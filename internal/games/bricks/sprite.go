package bricks

import "github.com/vovakirdan/tui-bricks/internal/core"

// Sprite is anything drawn every frame and advanced every tick.
type Sprite interface {
	Draw(s core.Surface)
	TimePassed(in core.InputFrame)
}

// SpriteCollection keeps sprites in insertion order, which is also draw order.
type SpriteCollection struct {
	sprites []Sprite
}

// NewSpriteCollection creates an empty collection.
func NewSpriteCollection() *SpriteCollection {
	return &SpriteCollection{}
}

// Add appends s.
func (c *SpriteCollection) Add(s Sprite) {
	c.sprites = append(c.sprites, s)
}

// Remove drops the first occurrence of s. Unknown sprites are ignored.
func (c *SpriteCollection) Remove(s Sprite) {
	for i, existing := range c.sprites {
		if existing == s {
			c.sprites = append(c.sprites[:i:i], c.sprites[i+1:]...)
			return
		}
	}
}

// Contains reports whether s is in the collection.
func (c *SpriteCollection) Contains(s Sprite) bool {
	for _, existing := range c.sprites {
		if existing == s {
			return true
		}
	}
	return false
}

// Len returns the number of sprites.
func (c *SpriteCollection) Len() int {
	return len(c.sprites)
}

// NotifyAllTimePassed advances every sprite present at the start of the call.
// Sprites removed during the pass are still advanced this tick.
func (c *SpriteCollection) NotifyAllTimePassed(in core.InputFrame) {
	snapshot := make([]Sprite, len(c.sprites))
	copy(snapshot, c.sprites)
	for _, s := range snapshot {
		s.TimePassed(in)
	}
}

// DrawAll draws every sprite in order.
func (c *SpriteCollection) DrawAll(s core.Surface) {
	for _, sprite := range c.sprites {
		sprite.Draw(s)
	}
}
