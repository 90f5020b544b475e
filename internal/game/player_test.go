package game

import (
	"math"
	"testing"
)

func TestPlayer_ForwardMoveFollowsFacing(t *testing.T) {
	g := openRoom(10, 10)
	p := NewPlayer(Vec{5, 5}, math.Pi/2) // facing south (+Y)
	p.move(g, Vec{Y: 1}, 0.1)
	if math.Abs(p.Pos.X-5) > 1e-9 {
		t.Fatalf("forward move drifted in X: %v", p.Pos.X)
	}
	if p.Pos.Y <= 5 {
		t.Fatalf("forward move went %v, want +Y", p.Pos.Y)
	}
}

func TestPlayer_StrafeIsPerpendicular(t *testing.T) {
	g := openRoom(10, 10)
	p := NewPlayer(Vec{5, 5}, 0) // facing east
	p.move(g, Vec{X: 1}, 0.1)    // strafe right
	if math.Abs(p.Pos.X-5) > 1e-9 {
		t.Fatalf("strafe drifted along the facing axis: %v", p.Pos.X)
	}
	if p.Pos.Y <= 5 {
		t.Fatalf("right strafe went %v, want +Y", p.Pos.Y)
	}
}

func TestPlayer_DiagonalInputNotFaster(t *testing.T) {
	g := openRoom(20, 20)
	straight := NewPlayer(Vec{10, 10}, 0)
	straight.move(g, Vec{Y: 1}, 0.1)
	diag := NewPlayer(Vec{10, 10}, 0)
	diag.move(g, Vec{X: 1, Y: 1}, 0.1)

	ds := straight.Pos.Dist(Vec{10, 10})
	dd := diag.Pos.Dist(Vec{10, 10})
	if math.Abs(ds-dd) > 1e-9 {
		t.Fatalf("diagonal moved %v, straight %v: input must be normalised", dd, ds)
	}
}

func TestPlayer_VelRecordsRealisedMovement(t *testing.T) {
	g := openRoom(10, 10)
	p := NewPlayer(Vec{8.7, 5}, 0) // wall dead ahead
	p.move(g, Vec{Y: 1}, 0.1)
	if p.Vel.Len() > 1e-9 {
		t.Fatalf("blocked move recorded velocity %v", p.Vel)
	}
	p.Pos = Vec{5, 5}
	p.move(g, Vec{Y: 1}, 0.1)
	if math.Abs(p.Vel.Len()-playerMoveSpeed) > 1e-6 {
		t.Fatalf("open move velocity = %v, want %v", p.Vel.Len(), playerMoveSpeed)
	}
}

func TestPlayer_TimersClampAtZero(t *testing.T) {
	p := NewPlayer(Vec{1, 1}, 0)
	p.AttackCooldown = 0.1
	p.HurtTimer = 0.1
	p.SwingTimer = 0.1
	p.tickTimers(1.0)
	if p.AttackCooldown != 0 || p.HurtTimer != 0 || p.SwingTimer != 0 {
		t.Fatalf("timers = %v %v %v, want all zero", p.AttackCooldown, p.HurtTimer, p.SwingTimer)
	}
}
