package bricks

import "math"

// Snapshot captures the round state for determinism checks.
// Floats are kept as-is; Hash compares their exact bit patterns.
type Snapshot struct {
	Tick            uint64
	Score           int
	BlocksRemaining int
	BallsRemaining  int
	State           string
	PaddleX         float64

	// Each ball is 5 values: X, Y, DX, DY, Color
	BallData []float64

	// Each block is 3 values: X, Y, Color
	BlockData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	ballData := make([]float64, 0, len(g.balls)*5)
	for _, ball := range g.balls {
		c, v := ball.Center(), ball.Velocity()
		ballData = append(ballData, c.X, c.Y, v.DX, v.DY, float64(ball.Color()))
	}

	blockData := make([]float64, 0, len(g.blocks)*3)
	for _, block := range g.blocks {
		ul := block.Rect().UpperLeft()
		blockData = append(blockData, ul.X, ul.Y, float64(block.Color()))
	}

	return Snapshot{
		Tick:            uint64(g.tickCount), //#nosec G115 -- tick count is always positive
		Score:           g.score.Value(),
		BlocksRemaining: g.blocksCnt.Value(),
		BallsRemaining:  g.ballsCnt.Value(),
		State:           g.state,
		PaddleX:         g.paddle.Rect().Left(),
		BallData:        ballData,
		BlockData:       blockData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BlocksRemaining) //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BallsRemaining)  //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PaddleX)

	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}

	for _, v := range snap.BallData {
		h = h*31 + math.Float64bits(v)
	}

	for _, v := range snap.BlockData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
