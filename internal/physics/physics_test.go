package physics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
)

// wall is a stub obstacle that records hits and returns a fixed response.
type wall struct {
	rect geom.Rectangle
	hits int
}

func newWall(x, y, w, h float64) *wall {
	return &wall{rect: geom.NewRectangleXY(x, y, w, h)}
}

func (w *wall) CollisionRectangle() geom.Rectangle { return w.rect }

func (w *wall) Hit(_ *Ball, _ geom.Point, current Velocity) Velocity {
	w.hits++
	return current
}

func TestFromAngleAndSpeed(t *testing.T) {
	tests := []struct {
		angle  float64
		dx, dy float64
	}{
		{0, 0, -2},
		{90, 2, 0},
		{180, 0, 2},
		{270, -2, 0},
	}

	for _, tc := range tests {
		v := FromAngleAndSpeed(tc.angle, 2)
		assert.InDelta(t, tc.dx, v.DX, 1e-12, "angle %v", tc.angle)
		assert.InDelta(t, tc.dy, v.DY, 1e-12, "angle %v", tc.angle)
		assert.InDelta(t, 2, v.Speed(), 1e-12)
	}
}

func TestVelocityHelpers(t *testing.T) {
	v := NewVelocity(3, -4)
	assert.Equal(t, 5.0, v.Speed())
	assert.Equal(t, geom.NewPoint(4, -3), v.ApplyToPoint(geom.NewPoint(1, 1)))
	assert.Equal(t, NewVelocity(6, -8), v.Scale(2))
	assert.InDelta(t, 10, v.WithSpeed(10).Speed(), 1e-12)
	assert.Equal(t, Velocity{}, Velocity{}.WithSpeed(4))
	assert.Equal(t, "<3, -4>", v.String())
}

func TestNewCollisionInfoRejectsNil(t *testing.T) {
	_, err := NewCollisionInfo(geom.NewPoint(1, 1), nil)
	assert.ErrorIs(t, err, ErrNilCollidable)

	w := newWall(0, 0, 1, 1)
	info, err := NewCollisionInfo(geom.NewPoint(1, 1), w)
	require.NoError(t, err)
	assert.Equal(t, geom.NewPoint(1, 1), info.Point())
	assert.Same(t, w, info.Object())
}

func TestEnvironmentRegistration(t *testing.T) {
	env := NewEnvironment()
	a, b := newWall(0, 0, 1, 1), newWall(5, 5, 1, 1)

	assert.ErrorIs(t, env.AddCollidable(nil), ErrNilCollidable)
	assert.Equal(t, 0, env.Len())

	require.NoError(t, env.AddCollidable(a))
	require.NoError(t, env.AddCollidable(b))
	require.NoError(t, env.AddCollidable(a))
	assert.Equal(t, []Collidable{a, b, a}, env.Collidables())

	require.NoError(t, env.RemoveCollidable(a))
	assert.Equal(t, []Collidable{b, a}, env.Collidables(), "only the first registration is removed")

	require.NoError(t, env.RemoveCollidable(newWall(9, 9, 1, 1)))
	assert.Equal(t, 2, env.Len())

	assert.ErrorIs(t, env.RemoveCollidable(nil), ErrNilCollidable)
	assert.Equal(t, 2, env.Len())
}

func TestEnvironmentCollidablesIsACopy(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.AddCollidable(newWall(0, 0, 1, 1)))

	list := env.Collidables()
	list[0] = nil
	assert.NotNil(t, env.Collidables()[0])
}

func TestClosestCollisionPicksNearest(t *testing.T) {
	env := NewEnvironment()
	at5, at3, at8 := newWall(5, -1, 1, 2), newWall(3, -1, 1, 2), newWall(8, -1, 1, 2)
	for _, w := range []*wall{at5, at3, at8} {
		require.NoError(t, env.AddCollidable(w))
	}

	trajectory := geom.NewLineXY(0, 0, 20, 0)
	info, ok := env.ClosestCollision(trajectory)
	require.True(t, ok)
	assert.Same(t, at3, info.Object())
	assert.Equal(t, geom.NewPoint(3, 0), info.Point())

	again, ok := env.ClosestCollision(trajectory)
	require.True(t, ok)
	assert.Equal(t, info, again, "query does not mutate")
}

func TestClosestCollisionTieGoesToFirstRegistered(t *testing.T) {
	env := NewEnvironment()
	first, second := newWall(5, -1, 1, 2), newWall(5, -1, 1, 2)
	require.NoError(t, env.AddCollidable(first))
	require.NoError(t, env.AddCollidable(second))

	info, ok := env.ClosestCollision(geom.NewLineXY(0, 0, 20, 0))
	require.True(t, ok)
	assert.Same(t, first, info.Object())
}

func TestClosestCollisionMiss(t *testing.T) {
	env := NewEnvironment()
	_, ok := env.ClosestCollision(geom.NewLineXY(0, 0, 20, 0))
	assert.False(t, ok, "empty environment")

	require.NoError(t, env.AddCollidable(newWall(5, 10, 1, 2)))
	_, ok = env.ClosestCollision(geom.NewLineXY(0, 0, 20, 0))
	assert.False(t, ok)
}

func TestBallMovesFreelyWithoutEnvironment(t *testing.T) {
	b := NewBall(geom.NewPoint(1, 1), 5, core.ColorRed)
	b.SetVelocity(NewVelocity(2, 3))
	b.MoveOneStep()
	assert.Equal(t, geom.NewPoint(3, 4), b.Center())

	assert.ErrorIs(t, b.SetEnvironment(nil), ErrNilEnvironment)
	assert.Nil(t, b.Environment())
}

func TestBallTrajectoryLooksTwoStepsAhead(t *testing.T) {
	b := NewBall(geom.NewPoint(0, 0), 5, core.ColorRed)
	b.SetVelocity(NewVelocity(5, -1))
	assert.Equal(t, geom.NewLineXY(0, 0, 10, -2), b.Trajectory())
}

func TestBallStopsShortOfEdgeAndReflects(t *testing.T) {
	env := NewEnvironment()
	block := NewBlock(geom.NewRectangleXY(10, -5, 10, 10), core.ColorRed, 0)
	require.NoError(t, env.AddCollidable(block))

	b := NewBall(geom.NewPoint(0, 0), 1, core.ColorRed)
	require.NoError(t, b.SetEnvironment(env))
	b.SetVelocity(NewVelocity(5, 0))

	b.MoveOneStep()
	assert.InDelta(t, 9.9, b.Center().X, 1e-9)
	assert.Equal(t, 0.0, b.Center().Y)
	assert.Equal(t, NewVelocity(-5, 0), b.Velocity())
}

func TestBallAdvancesOneStepWhenLookAheadIsClear(t *testing.T) {
	env := NewEnvironment()
	w := newWall(15, -5, 10, 10)
	require.NoError(t, env.AddCollidable(w))

	b := NewBall(geom.NewPoint(0, 0), 1, core.ColorRed)
	require.NoError(t, b.SetEnvironment(env))
	b.SetVelocity(NewVelocity(5, 0))

	b.MoveOneStep()
	assert.Equal(t, geom.NewPoint(5, 0), b.Center())
	assert.Equal(t, 0, w.hits)

	// The next trajectory reaches x=15 and the hit lands before the next step would.
	b.MoveOneStep()
	assert.InDelta(t, 14.9, b.Center().X, 1e-9)
	assert.Equal(t, 1, w.hits)
}

func TestBallFailSafeVertical(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.AddCollidable(newWall(0, 10, 100, 20)))

	b := NewBall(geom.NewPoint(50, 11), 5, core.ColorRed)
	require.NoError(t, b.SetEnvironment(env))
	b.SetVelocity(NewVelocity(0, 3))

	b.MoveOneStep()
	assert.Equal(t, geom.NewPoint(50, 5), b.Center(), "snapped to top minus radius")
	assert.Equal(t, NewVelocity(0, -3), b.Velocity())
}

func TestBallFailSafeHorizontal(t *testing.T) {
	env := NewEnvironment()
	require.NoError(t, env.AddCollidable(newWall(0, 0, 100, 100)))

	b := NewBall(geom.NewPoint(2, 50), 5, core.ColorRed)
	require.NoError(t, b.SetEnvironment(env))
	b.SetVelocity(NewVelocity(3, 0))

	b.MoveOneStep()
	assert.Equal(t, geom.NewPoint(-5, 50), b.Center())
	assert.Equal(t, NewVelocity(-3, 0), b.Velocity())
}

func TestParkBeforeWithZeroSpeed(t *testing.T) {
	b := NewBall(geom.NewPoint(0, 0), 1, core.ColorRed)
	p := geom.NewPoint(4, 4)
	assert.Equal(t, p, b.parkBefore(p))

	b.SetVelocity(NewVelocity(0, 2))
	assert.InDelta(t, 3.9, b.parkBefore(p).Y, 1e-12)
}

func TestBlockHitReflection(t *testing.T) {
	block := NewBlock(geom.NewRectangleXY(10, 10, 20, 10), core.ColorBlue, 0)
	v := NewVelocity(2, 3)

	tests := []struct {
		name  string
		point geom.Point
		want  Velocity
	}{
		{"top edge", geom.NewPoint(15, 10), NewVelocity(2, -3)},
		{"bottom edge", geom.NewPoint(15, 20), NewVelocity(2, -3)},
		{"left edge", geom.NewPoint(10, 15), NewVelocity(-2, 3)},
		{"right edge", geom.NewPoint(30, 15), NewVelocity(-2, 3)},
		{"corner counts as top", geom.NewPoint(10, 10), NewVelocity(2, -3)},
		{"interior", geom.NewPoint(15, 15), v},
	}

	ball := NewBall(geom.NewPoint(0, 0), 1, core.ColorBlue)
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, block.Hit(ball, tc.point, v))
		})
	}
}

func TestBlockCollisionRectangleIsInflated(t *testing.T) {
	block := NewBlock(geom.NewRectangleXY(20, 60, 50, 20), core.ColorGreen, 5)
	assert.Equal(t, geom.NewRectangleXY(15, 55, 60, 30), block.CollisionRectangle())
	assert.Equal(t, geom.NewRectangleXY(20, 60, 50, 20), block.Rect())
}

// selfRemover unsubscribes itself on the first event it receives.
type selfRemover struct {
	calls int
}

func (s *selfRemover) HitEvent(beingHit *Block, _ *Ball) {
	s.calls++
	beingHit.RemoveHitListener(s)
}

func TestBlockNotifiesOnColorMismatchOnly(t *testing.T) {
	block := NewBlock(geom.NewRectangleXY(0, 0, 10, 10), core.ColorBlue, 0)

	var events []core.Color
	block.AddHitListener(HitListenerFunc(func(b *Block, hitter *Ball) {
		events = append(events, hitter.Color())
	}))

	same := NewBall(geom.NewPoint(0, 0), 1, core.ColorBlue)
	block.Hit(same, geom.NewPoint(5, 0), NewVelocity(0, 1))
	assert.Empty(t, events)

	other := NewBall(geom.NewPoint(0, 0), 1, core.ColorRed)
	block.Hit(other, geom.NewPoint(5, 0), NewVelocity(0, 1))
	assert.Equal(t, []core.Color{core.ColorRed}, events)
}

// taggedListener is a value type that cannot be compared with ==.
type taggedListener struct {
	tags []string
}

func (taggedListener) HitEvent(*Block, *Ball) {}

func TestBlockRemoveNonComparableListener(t *testing.T) {
	block := NewBlock(geom.NewRectangleXY(0, 0, 10, 10), core.ColorBlue, 0)
	tagged := taggedListener{tags: []string{"a"}}
	ptr := &selfRemover{}

	block.AddHitListener(tagged)
	block.AddHitListener(HitListenerFunc(func(*Block, *Ball) {}))
	block.AddHitListener(ptr)

	assert.NotPanics(t, func() {
		block.RemoveHitListener(tagged)
		block.RemoveHitListener(nil)
	})
	assert.Equal(t, 3, block.Listeners(), "non-comparable listeners stay subscribed")

	block.RemoveHitListener(ptr)
	assert.Equal(t, 2, block.Listeners())
}

func TestBlockListenerMayRemoveItselfDuringDispatch(t *testing.T) {
	block := NewBlock(geom.NewRectangleXY(0, 0, 10, 10), core.ColorBlue, 0)
	remover := &selfRemover{}
	after := &selfRemover{}
	block.AddHitListener(remover)
	block.AddHitListener(after)

	ball := NewBall(geom.NewPoint(0, 0), 1, core.ColorRed)
	block.Hit(ball, geom.NewPoint(5, 0), NewVelocity(0, 1))

	assert.Equal(t, 1, remover.calls)
	assert.Equal(t, 1, after.calls, "listeners after a self-removing one still run")
	assert.Equal(t, 0, block.Listeners())

	block.Hit(ball, geom.NewPoint(5, 0), NewVelocity(0, 1))
	assert.Equal(t, 1, remover.calls)
}

func TestBallBreaksMismatchedBlock(t *testing.T) {
	env := NewEnvironment()
	block := NewBlock(geom.NewRectangleXY(40, 0, 20, 10), core.ColorBlue, 5)
	require.NoError(t, env.AddCollidable(block))

	hits := 0
	block.AddHitListener(HitListenerFunc(func(*Block, *Ball) { hits++ }))

	b := NewBall(geom.NewPoint(50, 30), 5, core.ColorRed)
	require.NoError(t, b.SetEnvironment(env))
	b.SetVelocity(NewVelocity(0, -10))

	b.MoveOneStep()
	assert.Equal(t, 1, hits)
	assert.InDelta(t, 15.1, b.Center().Y, 1e-9, "parked below the inflated bottom edge")
	assert.Equal(t, NewVelocity(0, 10), b.Velocity())
}

func newTestPaddle(opts PaddleOptions) *Paddle {
	opts.Margin = 5
	return NewPaddle(geom.NewRectangleXY(350, 560, 200, 5), opts)
}

func TestPaddleRegion(t *testing.T) {
	p := newTestPaddle(PaddleOptions{})

	tests := []struct {
		name string
		x    float64
		want int
	}{
		{"left boundary", 345, 1},
		{"left of paddle", 300, 1},
		{"second fifth", 390, 2},
		{"midpoint", 450, 3},
		{"fourth fifth", 480, 4},
		{"right boundary", 555, 5},
		{"right of paddle", 700, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, p.Region(tc.x))
		})
	}
}

const sin60 = 0.8660254037844386

func TestPaddleHit(t *testing.T) {
	p := newTestPaddle(PaddleOptions{})
	incoming := NewVelocity(1, 2)

	tests := []struct {
		name   string
		x      float64
		dx, dy float64
	}{
		{"region 1 leaves at 300 degrees", 345, -incoming.Speed() * sin60, -incoming.Speed() / 2},
		{"region 2 leaves at 330 degrees", 390, -incoming.Speed() / 2, -incoming.Speed() * sin60},
		{"region 3 only flips upward", 450, 1, -2},
		{"region 4 leaves at 30 degrees", 480, incoming.Speed() / 2, -incoming.Speed() * sin60},
		{"region 5 leaves at 60 degrees", 555, incoming.Speed() * sin60, -incoming.Speed() / 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			out := p.Hit(nil, geom.NewPoint(tc.x, 555), incoming)
			assert.InDelta(t, tc.dx, out.DX, 1e-9)
			assert.InDelta(t, tc.dy, out.DY, 1e-9)
			assert.InDelta(t, incoming.Speed(), out.Speed(), 1e-9)
		})
	}

	up := p.Hit(nil, geom.NewPoint(450, 555), NewVelocity(1, -2))
	assert.Equal(t, NewVelocity(1, -2), up, "an upward ball stays upward")
}

func TestPaddleWrapAround(t *testing.T) {
	opts := PaddleOptions{Speed: 30, WorldWidth: 800, Wrap: true}

	p := newTestPaddle(opts)
	p.MoveLeft()
	assert.Equal(t, 320.0, p.Rect().Left())

	tests := []struct {
		name  string
		start float64
		left  bool
		want  float64
	}{
		{"left edge not yet passed", -170, true, -200},
		{"left re-enters from the right", -190, true, 770},
		{"right edge not yet passed", 770, false, 800},
		{"right re-enters from the left", 790, false, -150},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := NewPaddle(geom.NewRectangleXY(tc.start, 560, 200, 5), opts)
			if tc.left {
				p.MoveLeft()
			} else {
				p.MoveRight()
			}
			assert.Equal(t, tc.want, p.Rect().Left())
		})
	}

	t.Run("wrap is checked before the step", func(t *testing.T) {
		withMargin := opts
		withMargin.Margin = 5
		p := NewPaddle(geom.NewRectangleXY(-170, 560, 200, 5), withMargin)
		p.MoveLeft()
		p.MoveLeft()
		assert.Equal(t, 770.0, p.Rect().Left())
		assert.Equal(t, 765.0, p.CollisionRectangle().Left())
	})
}

func TestPaddleClamp(t *testing.T) {
	opts := PaddleOptions{Speed: 30, MinX: 20, MaxX: 780}

	p := NewPaddle(geom.NewRectangleXY(30, 560, 200, 5), opts)
	p.MoveLeft()
	assert.Equal(t, 20.0, p.Rect().Left())

	p = NewPaddle(geom.NewRectangleXY(570, 560, 200, 5), opts)
	p.MoveRight()
	assert.Equal(t, 580.0, p.Rect().Left())
	assert.Equal(t, 780.0, p.Rect().Right())
}

func TestPaddleTimePassed(t *testing.T) {
	p := newTestPaddle(PaddleOptions{Speed: 10, MinX: 0, MaxX: 800})

	in := core.NewInputFrame()
	in.Set(core.ActionRight)
	p.TimePassed(in)
	assert.Equal(t, 360.0, p.Rect().Left())

	p.TimePassed(core.NewInputFrame())
	assert.Equal(t, 360.0, p.Rect().Left())

	in = core.NewInputFrame()
	in.Set(core.ActionLeft)
	p.TimePassed(in)
	assert.Equal(t, 350.0, p.Rect().Left())
}
