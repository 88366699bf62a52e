package breakout

import "math"

// Snapshot contains the complete simulation state for replay and
// determinism checks. Bricks are listed in arena order.
type Snapshot struct {
	Tick            uint64
	Score           int
	BricksRemaining int
	Paused          bool

	PaddleX float64

	BallX, BallY   float64
	BallVX, BallVY float64

	// Live bricks, flattened as (X, Y) center pairs
	BrickData []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	w := g.world
	ball := w.Ball

	brickData := make([]float64, 0, w.BricksRemaining()*2)
	for _, c := range w.Colliders() {
		if c.Kind == KindBrick {
			brickData = append(brickData, c.Pos.X, c.Pos.Y)
		}
	}

	return Snapshot{
		Tick:            g.tickCount,
		Score:           w.Score.Score,
		BricksRemaining: w.BricksRemaining(),
		Paused:          g.paused,
		PaddleX:         w.PaddleCollider().Pos.X,
		BallX:           ball.Pos.X,
		BallY:           ball.Pos.Y,
		BallVX:          ball.Vel.X,
		BallVY:          ball.Vel.Y,
		BrickData:       brickData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
// Floats are hashed by bit pattern, so equal hashes mean bit-identical runs.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	h = h*31 + uint64(snap.Score)           //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.BricksRemaining) //#nosec G115 -- hash computation
	if snap.Paused {
		h = h*31 + 1
	}

	h = h*31 + math.Float64bits(snap.PaddleX)
	h = h*31 + math.Float64bits(snap.BallX)
	h = h*31 + math.Float64bits(snap.BallY)
	h = h*31 + math.Float64bits(snap.BallVX)
	h = h*31 + math.Float64bits(snap.BallVY)

	for _, v := range snap.BrickData {
		h = h*31 + math.Float64bits(v)
	}

	return h
}
