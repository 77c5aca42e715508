package physics

// HitListener is notified when a ball hits a block of a different color.
type HitListener interface {
	HitEvent(beingHit *Block, hitter *Ball)
}

// HitListenerFunc adapts a plain function to HitListener.
type HitListenerFunc func(beingHit *Block, hitter *Ball)

// HitEvent calls f.
func (f HitListenerFunc) HitEvent(beingHit *Block, hitter *Ball) {
	f(beingHit, hitter)
}

// HitNotifier is anything listeners can subscribe to.
type HitNotifier interface {
	AddHitListener(l HitListener)
	RemoveHitListener(l HitListener)
}
