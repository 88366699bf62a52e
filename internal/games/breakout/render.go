package breakout

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-breakout/internal/config"
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Visual characters for rendering
const (
	BallChar   = '●'
	PaddleChar = '▀'
	BrickChar  = '█'
	WallCharV  = '│'
	WallCharH  = '─'
)

// hudRows is the number of screen rows above the arena.
const hudRows = 1

// Minimum screen size for a readable arena
const (
	minScreenW = 30
	minScreenH = 12
)

// Viewport maps world coordinates (y-up) onto screen cells (y-down),
// stretching the arena including its walls across the screen below the HUD.
type Viewport struct {
	minX, maxY     float64
	scaleX, scaleY float64
}

// NewViewport fits the arena of cfg into a screen of the given size.
func NewViewport(cfg config.BreakoutConfig, screenW, screenH int) Viewport {
	a := cfg.Arena
	half := a.WallThickness / 2
	worldW := a.Width() + a.WallThickness
	worldH := a.Height() + a.WallThickness
	rows := max(screenH-hudRows, 1)

	return Viewport{
		minX:   a.Left - half,
		maxY:   a.Top + half,
		scaleX: float64(screenW) / worldW,
		scaleY: float64(rows) / worldH,
	}
}

// Project converts a world box to the screen cells it covers.
// Every box covers at least one cell.
func (v Viewport) Project(b core.AABB) core.Rect {
	x0 := int(math.Round((b.Min.X - v.minX) * v.scaleX))
	x1 := int(math.Round((b.Max.X - v.minX) * v.scaleX))
	y0 := int(math.Round((v.maxY-b.Max.Y)*v.scaleY)) + hudRows
	y1 := int(math.Round((v.maxY-b.Min.Y)*v.scaleY)) + hudRows

	return core.NewRect(x0, y0, max(x1-x0, 1), max(y1-y0, 1))
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if dst.Width() < minScreenW || dst.Height() < minScreenH {
		dst.DrawTextCentered(dst.Height()/2-1, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("Need %dx%d", minScreenW, minScreenH))
		return
	}

	vp := NewViewport(g.cfg, dst.Width(), dst.Height())

	for _, c := range g.world.Colliders() {
		r := vp.Project(c.Bounds())
		switch c.Kind {
		case KindWall:
			dst.DrawRect(r, wallChar(c.Wall), core.ColorWall)
		case KindPaddle:
			dst.DrawRect(r, PaddleChar, core.ColorPaddle)
		case KindBrick:
			// Leave a one-cell seam so neighbouring bricks stay distinct
			if r.W > 2 {
				r.W--
			}
			dst.DrawRect(r, BrickChar, core.ColorBrick)
		}
	}

	dst.DrawRect(vp.Project(g.world.Ball.Bounds()), BallChar, core.ColorBall)

	g.renderHUD(dst)
}

// wallChar picks the line glyph running along a wall.
func wallChar(side WallSide) rune {
	if side == WallLeft || side == WallRight {
		return WallCharV
	}
	return WallCharH
}

// renderHUD draws the scoreboard and the pause marker.
func (g *Game) renderHUD(dst *core.Screen) {
	label := "Score: "
	dst.DrawTextColor(1, 0, label, core.ColorText)
	dst.DrawTextColor(1+len(label), 0, fmt.Sprintf("%d", g.world.Score.Score), core.ColorScore)

	bricks := fmt.Sprintf("Bricks: %d", g.world.BricksRemaining())
	dst.DrawTextColor(dst.Width()-len(bricks)-1, 0, bricks, core.ColorText)

	if g.paused {
		dst.DrawTextCentered(0, "PAUSED")
	}
}
