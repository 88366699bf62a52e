package breakout

import (
	"fmt"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Kind tags what a collider is.
type Kind int

const (
	KindPaddle Kind = iota
	KindWall
	KindBrick // Destructible: scored and removed when struck
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindPaddle:
		return "paddle"
	case KindWall:
		return "wall"
	case KindBrick:
		return "brick"
	default:
		return "unknown"
	}
}

// WallSide identifies one of the four boundary walls.
type WallSide int

const (
	WallLeft WallSide = iota
	WallRight
	WallTop
	WallBottom
)

// EntityID is a generation-tagged handle into the collider arena.
// A handle goes stale once its slot is despawned, even if the slot is reused.
// The zero EntityID never refers to a live entity.
type EntityID struct {
	Index uint32
	Gen   uint32
}

// Pack folds the handle into a single integer for events and logs.
func (id EntityID) Pack() uint64 {
	return uint64(id.Gen)<<32 | uint64(id.Index)
}

// String formats the handle as index:generation.
func (id EntityID) String() string {
	return fmt.Sprintf("%d:%d", id.Index, id.Gen)
}

// Collider is anything the ball can strike: the paddle, a wall or a brick.
// Pos is the center and Size the full extent.
type Collider struct {
	Kind Kind
	Wall WallSide // Only meaningful for KindWall
	Pos  core.Vec2
	Size core.Vec2
}

// Bounds returns the collider's box.
func (c *Collider) Bounds() core.AABB {
	return core.AABBFromCenter(c.Pos, c.Size)
}

// Ball is the single moving body. It is not itself a collider.
type Ball struct {
	Pos  core.Vec2
	Size core.Vec2
	Vel  core.Vec2
}

// Bounds returns the ball's box.
func (b *Ball) Bounds() core.AABB {
	return core.AABBFromCenter(b.Pos, b.Size)
}

// Scoreboard counts destroyed bricks.
type Scoreboard struct {
	Score int
}
