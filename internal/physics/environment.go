package physics

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Environment holds the obstacles balls can collide with.
//
// It does not own them: whoever adds an obstacle keeps it alive and removes it
// when it leaves the game. Registration order is preserved and decides ties.
// An Environment is not safe for concurrent use.
type Environment struct {
	collidables []Collidable
}

// NewEnvironment creates an empty environment.
func NewEnvironment() *Environment {
	return &Environment{}
}

// AddCollidable registers c.
func (e *Environment) AddCollidable(c Collidable) error {
	if c == nil {
		return ErrNilCollidable
	}
	e.collidables = append(e.collidables, c)
	return nil
}

// RemoveCollidable drops the first registration of c.
// Removing an obstacle that was never added is a no-op.
func (e *Environment) RemoveCollidable(c Collidable) error {
	if c == nil {
		return ErrNilCollidable
	}
	for i, existing := range e.collidables {
		if existing == c {
			e.collidables = append(e.collidables[:i], e.collidables[i+1:]...)
			return nil
		}
	}
	return nil
}

// Collidables returns a copy of the registered obstacles in registration order.
func (e *Environment) Collidables() []Collidable {
	out := make([]Collidable, len(e.collidables))
	copy(out, e.collidables)
	return out
}

// Len returns the number of registered obstacles.
func (e *Environment) Len() int {
	return len(e.collidables)
}

// ClosestCollision finds the obstacle whose collision rectangle the trajectory
// meets nearest to its start. When two obstacles are hit at exactly the same
// distance, the one registered first wins.
func (e *Environment) ClosestCollision(trajectory geom.Line) (CollisionInfo, bool) {
	var (
		best     CollisionInfo
		found    bool
		bestDist = math.Inf(1)
	)

	for _, c := range e.collidables {
		p, ok := trajectory.ClosestIntersectionToStart(c.CollisionRectangle())
		if !ok {
			continue
		}
		if d := trajectory.Start().Distance(p); d < bestDist {
			best = CollisionInfo{point: p, object: c}
			bestDist = d
			found = true
		}
	}
	return best, found
}
