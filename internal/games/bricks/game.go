// Package bricks implements the color-matching brick breaker on top of the
// physics engine. A ball removes a block only when their colors differ and then
// takes the block's color; the round is won when no blocks remain and lost when
// every ball has fallen into the death region.
package bricks

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-bricks/internal/config"
	"github.com/vovakirdan/tui-bricks/internal/core"
	"github.com/vovakirdan/tui-bricks/internal/geom"
	"github.com/vovakirdan/tui-bricks/internal/physics"
	"github.com/vovakirdan/tui-bricks/internal/registry"
)

// Visual characters for rendering
const (
	WallGlyph  = '█'
	BlockGlyph = '▆'
)

// Round states
const (
	StatePlaying  = "playing"
	StatePaused   = "paused"
	StateGameOver = "gameover"
	StateWin      = "win"
)

// Minimum terminal size the world is still readable at.
const (
	MinScreenW = 40
	MinScreenH = 15
)

// deathRegionHeight is the thickness of the invisible strip below the world.
const deathRegionHeight = 20

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger receives hit and round events. Discarded unless SetLogger is called.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLogger routes game events to l. A nil logger discards them.
func SetLogger(l *log.Logger) {
	if l == nil {
		l = log.New(io.Discard)
	}
	logger = l
}

// Game is one brick breaker round and everything it needs to restart.
type Game struct {
	id        string
	title     string
	layout    string // forced layout, empty means the configured one
	cfg       config.BricksConfig
	runtime   core.RuntimeConfig
	rng       *rand.Rand
	diff      *config.DifficultyManager
	env       *physics.Environment
	sprites   *SpriteCollection
	paddle    *physics.Paddle
	balls     []*physics.Ball
	blocks    []*physics.Block
	score     *Counter
	blocksCnt *Counter
	ballsCnt  *Counter

	state          string
	tickCount      int
	screenTooSmall bool
}

// New creates a game using the configured block layout.
func New() *Game {
	return &Game{id: "bricks", title: "Bricks"}
}

// NewGrid creates a game that always uses the full grid layout.
func NewGrid() *Game {
	return &Game{id: "bricks_grid", title: "Bricks (Grid)", layout: LayoutGrid}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return g.id
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return g.title
}

// Reset loads the configuration and starts a new round.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	cfg, err := config.LoadBricks(configPath)
	if err != nil {
		logger.Warn("using default config", "err", err)
		cfg = config.DefaultBricksConfig()
	}

	if difficultyPreset != "" {
		config.ApplyBricksPreset(&cfg, difficultyPreset)
	}

	g.ResetWithConfig(runtime, cfg)
}

// ResetWithConfig starts a new round from an explicit configuration.
// The same seed and configuration always produce the same round.
func (g *Game) ResetWithConfig(runtime core.RuntimeConfig, cfg config.BricksConfig) {
	if g.layout != "" {
		cfg.Blocks.Layout = g.layout
	}

	g.runtime = runtime
	g.cfg = cfg
	g.rng = rand.New(rand.NewSource(runtime.Seed)) //#nosec G404 -- gameplay randomness
	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	g.env = physics.NewEnvironment()
	g.sprites = NewSpriteCollection()
	g.balls = nil
	g.blocks = nil
	g.score = NewCounter(0)
	g.blocksCnt = NewCounter(0)
	g.ballsCnt = NewCounter(0)
	g.state = StatePlaying
	g.tickCount = 0
	g.screenTooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH

	g.addWalls()
	g.addDeathRegion()
	g.addBlocks()
	g.addPaddle()
	g.addBalls()

	border := cfg.World.BorderWidth
	g.sprites.Add(NewScoreIndicator(g.score, g.blocksCnt, g.ballsCnt, geom.NewPoint(2*border, 0)))

	logger.Info("round started",
		"game", g.id,
		"seed", runtime.Seed,
		"blocks", g.blocksCnt.Value(),
		"balls", g.ballsCnt.Value(),
	)
}

// addWalls adds the top, left and right walls.
func (g *Game) addWalls() {
	w, h, border := g.cfg.World.Width, g.cfg.World.Height, g.cfg.World.BorderWidth
	walls := []geom.Rectangle{
		geom.NewRectangleXY(0, 0, w, border),
		geom.NewRectangleXY(0, 0, border, h),
		geom.NewRectangleXY(w-border, 0, border, h),
	}
	for _, r := range walls {
		wall := physics.NewBlock(r, core.ColorGray, g.cfg.Physics.CollisionMargin)
		wall.SetGlyph(WallGlyph)
		g.register(wall, wall)
	}
}

// addDeathRegion adds the strip below the world that swallows balls.
func (g *Game) addDeathRegion() {
	r := geom.NewRectangleXY(0, g.cfg.World.Height, g.cfg.World.Width, deathRegionHeight)
	death := physics.NewBlock(r, core.ColorBlack, g.cfg.Physics.CollisionMargin)
	death.AddHitListener(NewBallRemover(g, g.ballsCnt))
	g.register(death, nil)
}

// addBlocks places the layout's blocks and wires their listeners.
func (g *Game) addBlocks() {
	place := layoutFunc(g.cfg.Blocks.Layout)
	remover := NewBlockRemover(g, g.blocksCnt)
	tracker := NewScoreTracker(g.score, g.cfg.Gameplay.BlockPoints)
	var hitLog *LoggingHitListener
	if g.cfg.Gameplay.LogHits {
		hitLog = NewLoggingHitListener(logger)
	}

	for _, spec := range place(g.cfg.Blocks, g.palette(), g.rng) {
		block := physics.NewBlock(spec.Rect, spec.Color, g.cfg.Physics.CollisionMargin)
		block.SetGlyph(BlockGlyph)
		if hitLog != nil {
			block.AddHitListener(hitLog)
		}
		block.AddHitListener(remover)
		block.AddHitListener(tracker)

		g.register(block, block)
		g.blocks = append(g.blocks, block)
		g.blocksCnt.Increase(1)
	}
}

// addPaddle creates the player paddle.
func (g *Game) addPaddle() {
	p := g.cfg.Paddle
	g.paddle = physics.NewPaddle(geom.NewRectangleXY(p.X, p.Y, p.Width, p.Height), physics.PaddleOptions{
		Speed:      p.Speed,
		Margin:     g.cfg.Physics.CollisionMargin,
		WorldWidth: g.cfg.World.Width,
		Wrap:       p.Wrap,
		MinX:       g.cfg.World.BorderWidth,
		MaxX:       g.cfg.World.Width - g.cfg.World.BorderWidth,
		Color:      parseColor(p.Color, core.ColorCyan),
	})
	g.register(g.paddle, g.paddle)
}

// addBalls serves the configured balls with random launch angles.
func (g *Game) addBalls() {
	b := g.cfg.Ball
	color := parseColor(b.Color, core.ColorRed)
	speed := g.ballSpeed()

	for range b.Count {
		ball := physics.NewBall(geom.NewPoint(b.StartX, b.StartY), b.Radius, color)
		angle := g.rng.Float64()*2*b.AngleSpread - b.AngleSpread
		ball.SetVelocity(physics.FromAngleAndSpeed(angle, speed))
		if err := ball.SetEnvironment(g.env); err != nil {
			logger.Error("attach ball", "err", err)
			continue
		}

		g.sprites.Add(ball)
		g.balls = append(g.balls, ball)
		g.ballsCnt.Increase(1)
	}
}

// register adds c to the environment and s, when non-nil, to the sprites.
func (g *Game) register(c physics.Collidable, s Sprite) {
	if err := g.env.AddCollidable(c); err != nil {
		logger.Error("register collidable", "err", err)
		return
	}
	if s != nil {
		g.sprites.Add(s)
	}
}

// palette resolves the configured block colors, skipping unknown names.
func (g *Game) palette() []core.Color {
	var colors []core.Color
	for _, name := range g.cfg.Blocks.Palette {
		if c, ok := core.ParseColor(name); ok {
			colors = append(colors, c)
		}
	}
	if len(colors) == 0 {
		colors = []core.Color{core.ColorRed}
	}
	return colors
}

// parseColor resolves a configured color name, falling back to def.
func parseColor(name string, def core.Color) core.Color {
	if c, ok := core.ParseColor(name); ok {
		return c
	}
	return def
}

// RemoveSprite implements Arena.
func (g *Game) RemoveSprite(s Sprite) {
	g.sprites.Remove(s)
	switch v := s.(type) {
	case *physics.Ball:
		g.balls = removeItem(g.balls, v)
	case *physics.Block:
		g.blocks = removeItem(g.blocks, v)
	}
}

// RemoveCollidable implements Arena.
func (g *Game) RemoveCollidable(c physics.Collidable) {
	if err := g.env.RemoveCollidable(c); err != nil {
		logger.Error("remove collidable", "err", err)
	}
}

func removeItem[T comparable](items []T, item T) []T {
	for i, existing := range items {
		if existing == item {
			return append(items[:i:i], items[i+1:]...)
		}
	}
	return items
}

// Resize adapts to a new screen size. The world is scaled to the screen, so
// the round continues; a round paused by a too small window resumes.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.screenTooSmall = w < MinScreenW || h < MinScreenH
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.screenTooSmall || g.sprites == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.ResetWithConfig(g.runtime, g.cfg)
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		if g.state == StatePaused {
			g.state = StatePlaying
		} else if g.state == StatePlaying {
			g.state = StatePaused
		}
	}

	if g.state != StatePlaying {
		return core.StepResult{State: g.State()}
	}

	g.tickCount++
	g.sprites.NotifyAllTimePassed(in)
	g.applyDifficulty()

	// Outcome is decided only after every sprite has moved.
	switch {
	case g.blocksCnt.Value() <= 0:
		g.score.Increase(g.cfg.Gameplay.WinBonus)
		g.state = StateWin
		logger.Info("round won", "game", g.id, "score", g.score.Value(), "ticks", g.tickCount)
	case g.ballsCnt.Value() <= 0:
		g.state = StateGameOver
		logger.Info("round lost", "game", g.id, "score", g.score.Value(), "blocks", g.blocksCnt.Value())
	}

	return core.StepResult{State: g.State()}
}

// ballSpeed returns the speed balls should currently travel at.
func (g *Game) ballSpeed() float64 {
	if !g.diff.IsEnabled() {
		return g.cfg.Ball.Speed
	}
	return g.diff.BallSpeed(g.cfg.Ball.Speed, g.cfg.Physics.MaxBallSpeed, g.score.Value(), g.tickCount)
}

// applyDifficulty rescales every ball to the current speed, keeping direction.
func (g *Game) applyDifficulty() {
	if !g.diff.IsEnabled() {
		return
	}
	speed := g.ballSpeed()
	for _, ball := range g.balls {
		ball.SetVelocity(ball.Velocity().WithSpeed(speed))
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.screenTooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}
	if g.sprites == nil {
		return
	}

	area := core.NewRect(0, 0, dst.Width(), dst.Height())
	g.sprites.DrawAll(core.NewCanvas(dst, area, g.cfg.World.Width, g.cfg.World.Height))

	g.renderOverlay(dst)
}

// renderOverlay draws game state messages.
func (g *Game) renderOverlay(dst *core.Screen) {
	switch g.state {
	case StatePaused:
		drawCenteredBox(dst, "PAUSED", "Press P to resume")

	case StateGameOver:
		subtitle := fmt.Sprintf("Score: %d  |  Press R to restart", g.score.Value())
		drawCenteredBox(dst, "GAME OVER", subtitle)

	case StateWin:
		subtitle := fmt.Sprintf("Final Score: %d  |  Press R to restart", g.score.Value())
		drawCenteredBox(dst, "YOU WIN!", subtitle)
	}
}

// drawCenteredBox draws a centered message box.
func drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	score := 0
	if g.score != nil {
		score = g.score.Value()
	}
	return core.GameState{
		Score:    score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Won:      g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// RemainingBlocks returns how many blocks are still in play.
func (g *Game) RemainingBlocks() int { return g.blocksCnt.Value() }

// RemainingBalls returns how many balls are still in play.
func (g *Game) RemainingBalls() int { return g.ballsCnt.Value() }

// Ticks returns how many ticks the current round has simulated.
func (g *Game) Ticks() int { return g.tickCount }

// Register the games with the registry
func init() {
	registry.Register("bricks", func() registry.Game {
		return New()
	})
	registry.Register("bricks_grid", func() registry.Game {
		return NewGrid()
	})
}
