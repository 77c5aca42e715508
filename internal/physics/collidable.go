package physics

import (
	"errors"

	"github.com/vovakirdan/tui-bricks/internal/geom"
)

var (
	// ErrNilCollidable is returned when a nil obstacle is registered, removed or
	// attached to a collision record.
	ErrNilCollidable = errors.New("physics: nil collidable")
	// ErrNilEnvironment is returned when a ball is given a nil environment.
	ErrNilEnvironment = errors.New("physics: nil environment")
)

// Collidable is an obstacle the ball can hit.
type Collidable interface {
	// CollisionRectangle is the shape tested against ball trajectories.
	CollisionRectangle() geom.Rectangle
	// Hit is called when hitter reaches collisionPoint moving at current.
	// It returns the velocity the ball leaves with.
	Hit(hitter *Ball, collisionPoint geom.Point, current Velocity) Velocity
}

// CollisionInfo describes the nearest obstacle on a trajectory.
type CollisionInfo struct {
	point  geom.Point
	object Collidable
}

// NewCollisionInfo pairs a collision point with the obstacle it lies on.
func NewCollisionInfo(p geom.Point, c Collidable) (CollisionInfo, error) {
	if c == nil {
		return CollisionInfo{}, ErrNilCollidable
	}
	return CollisionInfo{point: p, object: c}, nil
}

// Point returns the collision point.
func (ci CollisionInfo) Point() geom.Point {
	return ci.point
}

// Object returns the obstacle that was hit.
func (ci CollisionInfo) Object() Collidable {
	return ci.object
}
