// Package physics implements the collision engine: a registry of axis-aligned
// obstacles, a ball that advances one discrete step at a time, and the
// response policies of blocks and the paddle.
package physics

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// Velocity is a displacement per step.
type Velocity struct {
	DX, DY float64
}

// NewVelocity creates a velocity from its components.
func NewVelocity(dx, dy float64) Velocity {
	return Velocity{DX: dx, DY: dy}
}

// FromAngleAndSpeed builds a velocity from a heading in degrees.
// 0 points straight up and angles grow clockwise, so 90 points right.
func FromAngleAndSpeed(angle, speed float64) Velocity {
	rad := angle * math.Pi / 180
	return Velocity{
		DX: speed * math.Sin(rad),
		DY: -speed * math.Cos(rad),
	}
}

// ApplyToPoint returns p moved by one step.
func (v Velocity) ApplyToPoint(p geom.Point) geom.Point {
	return geom.NewPoint(p.X+v.DX, p.Y+v.DY)
}

// Speed returns the magnitude.
func (v Velocity) Speed() float64 {
	return math.Hypot(v.DX, v.DY)
}

// Scale multiplies both components by f.
func (v Velocity) Scale(f float64) Velocity {
	return Velocity{DX: v.DX * f, DY: v.DY * f}
}

// WithSpeed keeps the direction and sets the magnitude. A zero velocity stays zero.
func (v Velocity) WithSpeed(speed float64) Velocity {
	cur := v.Speed()
	if cur == 0 {
		return v
	}
	return v.Scale(speed / cur)
}

func (v Velocity) String() string {
	return fmt.Sprintf("<%g, %g>", v.DX, v.DY)
}
