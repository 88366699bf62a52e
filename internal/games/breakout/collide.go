package breakout

import (
	"math"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Collision indicates which side of a collider the ball struck.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	CollisionTop
	CollisionBottom
	CollisionInside
)

// String returns the side name.
func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionTop:
		return "top"
	case CollisionBottom:
		return "bottom"
	case CollisionInside:
		return "inside"
	default:
		return "unknown"
	}
}

// Collide tests box A (the ball) against box B, both given as center and
// full size, and reports which side of B was struck.
//
// Each axis is classified on its own: A straddling B's low edge gives Left
// (Bottom on Y), straddling the high edge gives Right (Top), anything else
// is Inside with a depth of -Inf. The axis with the shallower penetration
// wins; X wins ties. Touching edges are not a collision.
func Collide(aPos, aSize, bPos, bSize core.Vec2) Collision {
	a := core.AABBFromCenter(aPos, aSize)
	b := core.AABBFromCenter(bPos, bSize)

	if !a.Overlaps(b) {
		return CollisionNone
	}

	xSide, xDepth := classifyAxis(a.Min.X, a.Max.X, b.Min.X, b.Max.X, CollisionLeft, CollisionRight)
	ySide, yDepth := classifyAxis(a.Min.Y, a.Max.Y, b.Min.Y, b.Max.Y, CollisionBottom, CollisionTop)

	if math.Abs(yDepth) < math.Abs(xDepth) {
		return ySide
	}
	return xSide
}

// classifyAxis returns the struck side along one axis and its signed
// penetration depth (negative, magnitude = overlap).
func classifyAxis(aMin, aMax, bMin, bMax float64, low, high Collision) (Collision, float64) {
	switch {
	case aMin < bMin && aMax > bMin && aMax < bMax:
		return low, bMin - aMax
	case aMin > bMin && aMin < bMax && aMax > bMax:
		return high, aMin - bMax
	default:
		return CollisionInside, math.Inf(-1)
	}
}
