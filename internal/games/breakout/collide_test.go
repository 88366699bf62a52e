package breakout

import (
	"testing"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

func TestCollide(t *testing.T) {
	ball := core.V2(10, 10)
	box := core.V2(20, 20)

	tests := []struct {
		name string
		bPos core.Vec2
		want Collision
	}{
		{"far apart", core.V2(100, 100), CollisionNone},
		{"touching edge", core.V2(15, 0), CollisionNone},
		{"touching corner", core.V2(15, 15), CollisionNone},
		{"left side", core.V2(12, 0), CollisionLeft},
		{"right side", core.V2(-12, 0), CollisionRight},
		{"bottom side", core.V2(0, 12), CollisionBottom},
		{"top side", core.V2(0, -12), CollisionTop},
		{"equal depth picks x", core.V2(12, 12), CollisionLeft},
		{"shallower x wins", core.V2(13, 12), CollisionLeft},
		{"shallower y wins", core.V2(12, 13), CollisionBottom},
		{"shallower y wins top", core.V2(-12, -13), CollisionTop},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Collide(core.V2(0, 0), ball, tt.bPos, box)
			if got != tt.want {
				t.Errorf("Collide() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollideInside(t *testing.T) {
	// Ball fully inside the box
	if got := Collide(core.V2(0, 0), core.V2(10, 10), core.V2(0, 0), core.V2(40, 40)); got != CollisionInside {
		t.Errorf("ball inside box = %v, want inside", got)
	}

	// Box fully inside the ball
	if got := Collide(core.V2(0, 0), core.V2(40, 40), core.V2(0, 0), core.V2(10, 10)); got != CollisionInside {
		t.Errorf("box inside ball = %v, want inside", got)
	}

	// Identical boxes have no straddled edge on either axis
	if got := Collide(core.V2(5, 5), core.V2(10, 10), core.V2(5, 5), core.V2(10, 10)); got != CollisionInside {
		t.Errorf("identical boxes = %v, want inside", got)
	}
}

func TestCollideInsideOneAxis(t *testing.T) {
	// X straddles the left edge, Y is contained: the finite X depth wins
	got := Collide(core.V2(0, 0), core.V2(10, 10), core.V2(12, 0), core.V2(20, 100))
	if got != CollisionLeft {
		t.Errorf("Collide() = %v, want left", got)
	}
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name string
		vel  core.Vec2
		side Collision
		want core.Vec2
	}{
		{"left moving right", core.V2(200, 50), CollisionLeft, core.V2(-200, 50)},
		{"left moving away", core.V2(-200, 50), CollisionLeft, core.V2(-200, 50)},
		{"right moving left", core.V2(-200, 50), CollisionRight, core.V2(200, 50)},
		{"right moving away", core.V2(200, 50), CollisionRight, core.V2(200, 50)},
		{"top moving down", core.V2(50, -200), CollisionTop, core.V2(50, 200)},
		{"top moving away", core.V2(50, 200), CollisionTop, core.V2(50, 200)},
		{"bottom moving up", core.V2(50, 200), CollisionBottom, core.V2(50, -200)},
		{"bottom moving away", core.V2(50, -200), CollisionBottom, core.V2(50, -200)},
		{"inside", core.V2(50, 200), CollisionInside, core.V2(50, 200)},
		{"none", core.V2(50, 200), CollisionNone, core.V2(50, 200)},
		{"zero velocity", core.V2(0, 0), CollisionLeft, core.V2(0, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Reflect(tt.vel, tt.side); got != tt.want {
				t.Errorf("Reflect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCollisionString(t *testing.T) {
	if CollisionBottom.String() != "bottom" {
		t.Errorf("CollisionBottom.String() = %q", CollisionBottom.String())
	}
	if Collision(99).String() != "unknown" {
		t.Errorf("unknown collision = %q", Collision(99).String())
	}
}
