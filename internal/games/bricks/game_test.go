package bricks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/physics"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

func testRuntime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     seed,
	}
}

// singleBlockConfig serves one ball straight up at one blue block.
func singleBlockConfig() config.BricksConfig {
	cfg := config.DefaultBricksConfig()
	cfg.Ball.Count = 1
	cfg.Ball.AngleSpread = 0
	cfg.Blocks = config.BricksBlocks{
		Layout:    LayoutGrid,
		Width:     50,
		Height:    20,
		StartX:    370,
		EndX:      370,
		StartY:    300,
		EndY:      300,
		MaxBlocks: 1,
		Palette:   []string{"blue"},
	}
	cfg.Difficulty.Enabled = false
	return cfg
}

func runUntilOver(g *Game, maxTicks int) int {
	for i := 1; i <= maxTicks; i++ {
		if g.Step(core.NewInputFrame()).State.GameOver {
			return i
		}
	}
	return -1
}

func TestGameAssembly(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(1), config.DefaultBricksConfig())

	assert.Equal(t, 100, g.RemainingBlocks())
	assert.Equal(t, 2, g.RemainingBalls())
	// 3 walls, death region, paddle, blocks
	assert.Equal(t, 105, g.env.Len())
	// 3 walls, blocks, paddle, balls, score indicator
	assert.Equal(t, 107, g.sprites.Len())

	for _, ball := range g.balls {
		v := ball.Velocity()
		assert.Less(t, v.DY, 0.0, "balls are served upward")
		assert.InDelta(t, 3, v.Speed(), 1e-9)
		assert.Equal(t, core.ColorRed, ball.Color())
	}
}

func TestGridVariant(t *testing.T) {
	g := NewGrid()
	g.ResetWithConfig(testRuntime(1), config.DefaultBricksConfig())

	assert.Equal(t, "bricks_grid", g.ID())
	assert.Equal(t, 180, g.RemainingBlocks())
}

func TestRegistered(t *testing.T) {
	for _, id := range []string{"bricks", "bricks_grid"} {
		g, err := registry.Create(id)
		require.NoError(t, err)
		assert.Equal(t, id, g.ID())
	}
}

func TestGameWinsWhenLastBlockBreaks(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(7), singleBlockConfig())
	require.Equal(t, 1, g.RemainingBlocks())

	ticks := runUntilOver(g, 200)
	require.Positive(t, ticks, "round should end")

	state := g.State()
	assert.True(t, state.Won)
	assert.True(t, state.GameOver)
	assert.Equal(t, 5+100, state.Score, "block points plus win bonus")
	assert.Equal(t, 0, g.RemainingBlocks())
	assert.Equal(t, 5, g.env.Len(), "only walls, death region and paddle remain")
	assert.Equal(t, core.ColorBlue, g.balls[0].Color(), "ball takes the broken block's color")
	assert.Equal(t, 74, ticks)
}

func TestGameLostWhenBallsFall(t *testing.T) {
	cfg := singleBlockConfig()
	cfg.Ball.StartY = 580
	cfg.Paddle.X = 560
	cfg.Paddle.Wrap = false

	g := New()
	g.ResetWithConfig(testRuntime(7), cfg)
	g.balls[0].SetVelocity(physics.NewVelocity(0, 3))

	ticks := runUntilOver(g, 50)
	require.Equal(t, 4, ticks)

	state := g.State()
	assert.True(t, state.GameOver)
	assert.False(t, state.Won)
	assert.Equal(t, 0, g.RemainingBalls())
	assert.Empty(t, g.balls)
	assert.Equal(t, 1, g.RemainingBlocks())

	restart := core.NewInputFrame()
	restart.Set(core.ActionRestart)
	state = g.Step(restart).State
	assert.False(t, state.GameOver)
	assert.Equal(t, 0, state.Score)
	assert.Equal(t, 1, g.RemainingBalls())
}

func TestGamePause(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(3), config.DefaultBricksConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)

	assert.True(t, g.Step(pause).State.Paused)
	before := g.Snapshot()

	g.Step(core.NewInputFrame())
	after := g.Snapshot()
	assert.Equal(t, before.Hash(), after.Hash(), "nothing moves while paused")

	assert.False(t, g.Step(pause).State.Paused)
	assert.Equal(t, uint64(1), g.Snapshot().Tick)
}

func TestGameDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 300)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		switch {
		case i%7 < 3:
			inputs[i].Set(core.ActionRight)
		case i%7 < 5:
			inputs[i].Set(core.ActionLeft)
		}
	}

	run := func() Snapshot {
		g := New()
		g.ResetWithConfig(testRuntime(12345), config.DefaultBricksConfig())
		for _, in := range inputs {
			if g.Step(in).State.GameOver {
				break
			}
		}
		return g.Snapshot()
	}

	snap1, snap2 := run(), run()
	if snap1.Hash() != snap2.Hash() {
		t.Errorf("Determinism failed: hashes differ. Run1=%d, Run2=%d", snap1.Hash(), snap2.Hash())
	}
	assert.Equal(t, snap1, snap2)
}

func TestSeedChangesLayout(t *testing.T) {
	a, b := New(), New()
	a.ResetWithConfig(testRuntime(1), config.DefaultBricksConfig())
	b.ResetWithConfig(testRuntime(2), config.DefaultBricksConfig())

	assert.NotEqual(t, a.Snapshot().BlockData, b.Snapshot().BlockData)
}

func TestDifficultyScalesBallSpeed(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(1), config.DefaultBricksConfig())

	g.score.Increase(500)
	g.applyDifficulty()

	for _, ball := range g.balls {
		assert.InDelta(t, 4.5, ball.Velocity().Speed(), 1e-9)
	}

	fixed := config.DefaultBricksConfig()
	config.ApplyBricksPreset(&fixed, config.DifficultyFixed)
	g.ResetWithConfig(testRuntime(1), fixed)
	g.score.Increase(500)
	g.applyDifficulty()
	for _, ball := range g.balls {
		assert.InDelta(t, 3, ball.Velocity().Speed(), 1e-9)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(1), config.DefaultBricksConfig())

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	assert.Contains(t, screen.Row(0), "Score: 0  Blocks: 100  Balls: 2")
	assert.Equal(t, 'S', screen.GetCell(4, 0).Rune, "indicator starts two wall widths in")
	assert.Equal(t, core.ColorGray, screen.GetCell(0, 0).Color)
	assert.Equal(t, core.Cell{Rune: '●', Color: core.ColorRed}, screen.GetCell(39, 22))
	assert.Equal(t, core.ColorCyan, screen.GetCell(36, 22).Color, "paddle")
}

func TestRenderOverlay(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(1), config.DefaultBricksConfig())

	pause := core.NewInputFrame()
	pause.Set(core.ActionPause)
	g.Step(pause)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	assert.Contains(t, screen.String(), "PAUSED")
}

func TestScreenTooSmall(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}, config.DefaultBricksConfig())

	before := g.Snapshot()
	g.Step(core.NewInputFrame())
	assert.Equal(t, before.Hash(), g.Snapshot().Hash())

	screen := core.NewScreen(20, 10)
	g.Render(screen)
	assert.Contains(t, screen.Row(4), "Window too small")
}

func TestResizeResumesRound(t *testing.T) {
	g := New()
	g.ResetWithConfig(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60, Seed: 1}, config.DefaultBricksConfig())
	g.Step(core.NewInputFrame())
	assert.Equal(t, 0, g.Ticks())

	g.Resize(80, 24)
	g.Step(core.NewInputFrame())
	assert.Equal(t, 1, g.Ticks())
	assert.Equal(t, 100, g.RemainingBlocks(), "resizing keeps the round")

	var _ registry.Resizer = g
	var _ registry.RoundReporter = g
}

func TestSnapshotHashOnReturnedValue(t *testing.T) {
	g := New()
	g.ResetWithConfig(testRuntime(7), config.DefaultBricksConfig())

	assert.Equal(t, g.Snapshot().Hash(), g.Snapshot().Hash())

	g.Step(core.NewInputFrame())
	assert.NotEqual(t, uint64(0), g.Snapshot().Hash())
}
