package breakout

import (
	"github.com/vovakirdan/tui-breakout/internal/core"
)

// Reflect flips the velocity axis that points into the struck side.
// A velocity already pointing away from the side is left alone.
func Reflect(vel core.Vec2, side Collision) core.Vec2 {
	reflectX, reflectY := false, false

	switch side {
	case CollisionLeft:
		reflectX = vel.X > 0
	case CollisionRight:
		reflectX = vel.X < 0
	case CollisionTop:
		reflectY = vel.Y < 0
	case CollisionBottom:
		reflectY = vel.Y > 0
	}

	if reflectX {
		vel.X = -vel.X
	}
	if reflectY {
		vel.Y = -vel.Y
	}
	return vel
}

// CheckBallCollisions tests the ball against every live collider and
// appends the resulting events.
//
// Each hit reflects the ball, requests a collision sound, and for bricks
// adds one point and queues the brick's despawn. Colliders are independent:
// when the ball overlaps several in one tick each one reflects in turn
// against the velocity left by the previous hit, so on conflicting sides the
// last hit wins. A ball still embedded next tick collides again.
func CheckBallCollisions(w *World, events []core.Event) []core.Event {
	ball := &w.Ball

	for id, c := range w.Colliders() {
		side := Collide(ball.Pos, ball.Size, c.Pos, c.Size)
		if side == CollisionNone {
			continue
		}

		ball.Vel = Reflect(ball.Vel, side)

		if c.Kind == KindBrick {
			w.Score.Score++
			w.QueueDespawn(id)
			events = append(events, core.Event{
				Type:   core.EventDespawn,
				Entity: id.Pack(),
				Detail: c.Kind.String(),
			})
		}

		events = append(events, core.Event{
			Type:   core.EventSound,
			Detail: c.Kind.String() + ":" + side.String(),
		})
	}

	return events
}
