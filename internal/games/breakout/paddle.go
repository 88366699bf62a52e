package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// PaddleLimits is the allowed range of the paddle center and its speed.
type PaddleLimits struct {
	MinX  float64
	MaxX  float64
	Speed float64
}

// PaddleLimitsFor keeps the paddle inside the side walls: half a wall plus
// half a paddle away from each wall line.
func PaddleLimitsFor(cfg config.BreakoutConfig) PaddleLimits {
	inset := (cfg.Arena.WallThickness + cfg.Paddle.Width) / 2
	return PaddleLimits{
		MinX:  cfg.Arena.Left + inset,
		MaxX:  cfg.Arena.Right - inset,
		Speed: cfg.Paddle.Speed,
	}
}

// MovePaddle moves the paddle horizontally by dir*speed*dt and clamps it.
// dir is the summed input: -1 left, +1 right, 0 for none or both.
func MovePaddle(w *World, dir, dt float64) {
	p := w.PaddleCollider()
	x := p.Pos.X + dir*w.Paddle.Speed*dt
	p.Pos.X = core.ClampF(x, w.Paddle.MinX, w.Paddle.MaxX)
}
