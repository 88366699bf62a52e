package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// GridSize returns how many brick rows and columns fit the region between
// the paddle gap, the ceiling gap and the side gaps without overflow.
func GridSize(cfg config.BreakoutConfig) (rows, cols int) {
	a, b := cfg.Arena, cfg.Bricks

	totalW := a.Width() - 2*b.GapToSides
	totalH := a.Height() - b.GapToCeiling - b.GapToPaddle

	rows = int(math.Floor(totalH / (b.Height + b.Gap)))
	cols = int(math.Floor(totalW / (b.Width + b.Gap)))
	return max(rows, 0), max(cols, 0)
}

// NewWorld builds the startup arena: one paddle, four walls, the brick grid
// and one ball. Spawn order fixes the collision enumeration order.
func NewWorld(cfg config.BreakoutConfig) *World {
	a := cfg.Arena
	w := &World{
		Paddle: PaddleLimitsFor(cfg),
	}

	centerX := (a.Left + a.Right) / 2
	centerY := (a.Bottom + a.Top) / 2

	w.paddle = w.Spawn(Collider{
		Kind: KindPaddle,
		Pos:  core.V2(centerX, a.Bottom+cfg.Paddle.BottomOffset),
		Size: core.V2(cfg.Paddle.Width, cfg.Paddle.Height),
	})

	vertical := core.V2(a.WallThickness, a.Height()+a.WallThickness)
	horizontal := core.V2(a.Width()+a.WallThickness, a.WallThickness)
	walls := []Collider{
		{Kind: KindWall, Wall: WallLeft, Pos: core.V2(a.Left, centerY), Size: vertical},
		{Kind: KindWall, Wall: WallRight, Pos: core.V2(a.Right, centerY), Size: vertical},
		{Kind: KindWall, Wall: WallTop, Pos: core.V2(centerX, a.Top), Size: horizontal},
		{Kind: KindWall, Wall: WallBottom, Pos: core.V2(centerX, a.Bottom), Size: horizontal},
	}
	for _, wall := range walls {
		w.Spawn(wall)
	}

	b := cfg.Bricks
	rows, cols := GridSize(cfg)
	offsetX := a.Left + b.GapToSides + b.Width/2
	offsetY := a.Bottom + b.GapToPaddle + b.Height/2
	size := core.V2(b.Width, b.Height)

	for row := range rows {
		for col := range cols {
			w.Spawn(Collider{
				Kind: KindBrick,
				Pos: core.V2(
					offsetX+float64(col)*(b.Width+b.Gap),
					offsetY+float64(row)*(b.Height+b.Gap),
				),
				Size: size,
			})
		}
	}

	w.Ball = Ball{
		Pos:  core.V2(cfg.Ball.StartX, cfg.Ball.StartY),
		Size: core.V2(cfg.Ball.Size, cfg.Ball.Size),
		Vel:  core.V2(cfg.Ball.DirectionX, cfg.Ball.DirectionY).Scale(cfg.Ball.Speed),
	}

	return w
}
