package physics

import (
	"math"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// PaddleRegions is the number of equal-width zones the paddle's surface is split into.
const PaddleRegions = 5

// regionAngles are the launch headings for the outer regions, in degrees.
// The middle region keeps the horizontal component and only bounces upward.
var regionAngles = [PaddleRegions + 1]float64{1: 300, 2: 330, 4: 30, 5: 60}

// wrapVisible is how much of the paddle stays on screen before it wraps around.
const wrapVisible = 20

// PaddleOptions configures paddle movement.
type PaddleOptions struct {
	Speed      float64 // distance per movement tick
	Margin     float64 // collision rectangle inflation
	WorldWidth float64 // used by wrap-around
	Wrap       bool    // re-enter from the opposite side instead of clamping
	MinX       float64 // leftmost x the paddle may reach when not wrapping
	MaxX       float64 // rightmost x the paddle may reach when not wrapping
	Color      core.Color
}

// Paddle is the player-controlled obstacle. Where the ball lands on it decides
// the bounce angle.
type Paddle struct {
	rect geom.Rectangle
	opts PaddleOptions
}

// NewPaddle creates a paddle drawn at rect.
func NewPaddle(rect geom.Rectangle, opts PaddleOptions) *Paddle {
	return &Paddle{rect: rect, opts: opts}
}

// Rect returns the drawn rectangle.
func (p *Paddle) Rect() geom.Rectangle { return p.rect }

// Color returns the paddle color.
func (p *Paddle) Color() core.Color { return p.opts.Color }

// SetSpeed changes the movement step.
func (p *Paddle) SetSpeed(speed float64) { p.opts.Speed = speed }

// CollisionRectangle implements Collidable.
func (p *Paddle) CollisionRectangle() geom.Rectangle {
	return p.rect.Inflate(p.opts.Margin)
}

// Region returns which fifth of the collision rectangle x falls in, 1 being
// the leftmost. Values outside the paddle clamp to the nearest region.
func (p *Paddle) Region(x float64) int {
	r := p.CollisionRectangle()
	if r.Width() == 0 {
		return (PaddleRegions + 1) / 2
	}
	region := int(math.Floor((x-r.Left())/(r.Width()/PaddleRegions))) + 1
	return core.Clamp(region, 1, PaddleRegions)
}

// Hit implements Collidable. The outgoing speed always equals the incoming one.
func (p *Paddle) Hit(_ *Ball, collisionPoint geom.Point, current Velocity) Velocity {
	region := p.Region(collisionPoint.X)
	if region == (PaddleRegions+1)/2 {
		return Velocity{DX: current.DX, DY: -math.Abs(current.DY)}
	}
	return FromAngleAndSpeed(regionAngles[region], current.Speed())
}

// MoveLeft moves the paddle one step left.
func (p *Paddle) MoveLeft() {
	x := p.rect.Left()
	if p.opts.Wrap {
		if x < -p.rect.Width()+wrapVisible {
			x = p.opts.WorldWidth
		}
		p.moveTo(x - p.opts.Speed)
		return
	}
	p.moveTo(math.Max(x-p.opts.Speed, p.opts.MinX))
}

// MoveRight moves the paddle one step right.
func (p *Paddle) MoveRight() {
	x := p.rect.Left()
	if p.opts.Wrap {
		if x > p.opts.WorldWidth-wrapVisible {
			x = -p.rect.Width() + wrapVisible
		}
		p.moveTo(x + p.opts.Speed)
		return
	}
	p.moveTo(math.Min(x+p.opts.Speed, p.opts.MaxX-p.rect.Width()))
}

// TimePassed applies the movement requested this tick.
func (p *Paddle) TimePassed(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		p.MoveLeft()
	}
	if in.Has(core.ActionRight) {
		p.MoveRight()
	}
}

// Draw fills the drawn rectangle.
func (p *Paddle) Draw(s core.Surface) {
	s.FillRect(p.rect, '▀', p.opts.Color)
}

func (p *Paddle) moveTo(x float64) {
	p.rect = geom.NewRectangleXY(x, p.rect.Top(), p.rect.Width(), p.rect.Height())
}
