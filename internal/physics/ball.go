package physics

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

const (
	// LookAheadFactor is how many steps of velocity the collision query spans.
	LookAheadFactor = 2.0
	// FudgeOffset is how far before a collision point the ball is parked.
	FudgeOffset = 0.1
)

// Ball is a moving circle. Collisions are tested for its center only; the radius
// is used for drawing and for pushing it out of obstacles it ended up inside.
type Ball struct {
	center   geom.Point
	radius   float64
	color    core.Color
	velocity Velocity
	env      *Environment
}

// NewBall creates a stationary ball with no environment.
func NewBall(center geom.Point, radius float64, color core.Color) *Ball {
	return &Ball{center: center, radius: radius, color: color}
}

func (b *Ball) Center() geom.Point     { return b.center }
func (b *Ball) Radius() float64        { return b.radius }
func (b *Ball) Color() core.Color      { return b.color }
func (b *Ball) SetColor(c core.Color)  { b.color = c }
func (b *Ball) Velocity() Velocity     { return b.velocity }
func (b *Ball) SetVelocity(v Velocity) { b.velocity = v }

// Environment returns the attached obstacles, or nil.
func (b *Ball) Environment() *Environment {
	return b.env
}

// SetEnvironment attaches the obstacles the ball collides with.
func (b *Ball) SetEnvironment(env *Environment) error {
	if env == nil {
		return ErrNilEnvironment
	}
	b.env = env
	return nil
}

// Trajectory is the segment tested for collisions during the next step.
// It is deliberately LookAheadFactor steps long.
func (b *Ball) Trajectory() geom.Line {
	end := b.velocity.Scale(LookAheadFactor).ApplyToPoint(b.center)
	return geom.NewLine(b.center, end)
}

// MoveOneStep advances the ball by one step.
//
// Without a collision on the trajectory the center moves by the velocity.
// Otherwise the ball is parked just short of the collision point and the
// obstacle decides the new velocity. Afterwards the ball is pushed out of any
// obstacle whose collision rectangle still contains its center.
func (b *Ball) MoveOneStep() {
	if b.env == nil {
		b.center = b.velocity.ApplyToPoint(b.center)
		return
	}

	info, ok := b.env.ClosestCollision(b.Trajectory())
	if !ok {
		b.center = b.velocity.ApplyToPoint(b.center)
	} else {
		b.center = b.parkBefore(info.Point())
		b.velocity = info.Object().Hit(b, info.Point(), b.velocity)
	}

	b.resolveOverlaps()
}

// TimePassed advances the ball once per tick.
func (b *Ball) TimePassed(core.InputFrame) {
	b.MoveOneStep()
}

// Draw renders the ball as a filled circle.
func (b *Ball) Draw(s core.Surface) {
	s.FillCircle(b.center, b.radius, '●', b.color)
}

// parkBefore returns p backed off by FudgeOffset against the direction of travel.
func (b *Ball) parkBefore(p geom.Point) geom.Point {
	speed := b.velocity.Speed()
	if speed == 0 {
		return p
	}
	ux, uy := b.velocity.DX/speed, b.velocity.DY/speed
	return geom.NewPoint(p.X-FudgeOffset*ux, p.Y-FudgeOffset*uy)
}

// resolveOverlaps moves the center out through the nearest edge of every
// obstacle that contains it and points the matching velocity component away.
func (b *Ball) resolveOverlaps() {
	for _, c := range b.env.Collidables() {
		rect := c.CollisionRectangle()
		if !rect.ContainsPoint(b.center) {
			continue
		}

		toLeft := math.Abs(b.center.X - rect.Left())
		toRight := math.Abs(b.center.X - rect.Right())
		toTop := math.Abs(b.center.Y - rect.Top())
		toBottom := math.Abs(b.center.Y - rect.Bottom())

		if math.Min(toLeft, toRight) < math.Min(toTop, toBottom) {
			if toLeft < toRight {
				b.center.X = rect.Left() - b.radius
				b.velocity.DX = -math.Abs(b.velocity.DX)
			} else {
				b.center.X = rect.Right() + b.radius
				b.velocity.DX = math.Abs(b.velocity.DX)
			}
			continue
		}

		if toTop < toBottom {
			b.center.Y = rect.Top() - b.radius
			b.velocity.DY = -math.Abs(b.velocity.DY)
		} else {
			b.center.Y = rect.Bottom() + b.radius
			b.velocity.DY = math.Abs(b.velocity.DY)
		}
	}
}
