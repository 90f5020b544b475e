package game

import (
	"math/rand"
	"testing"
)

func testRNG() *rand.Rand { return rand.New(rand.NewSource(7)) }

// farPlayer is a player position far enough away to not trigger any
// proximity behavior.
var farPlayer = Vec{100, 100}

func TestGuard_NeverMoves(t *testing.T) {
	g := openRoom(10, 10)
	e := NewEnemy(0, Vec{5, 5}, BehaviorGuard)
	rng := testRNG()
	for i := 0; i < 300; i++ {
		e.Update(0.05, Vec{5, 2}, g, rng)
	}
	if e.Pos != (Vec{5, 5}) {
		t.Fatalf("guard moved to %+v", e.Pos)
	}
}

func TestGuard_TelegraphsWhenPlayerNear(t *testing.T) {
	g := openRoom(10, 10)
	e := NewEnemy(0, Vec{5, 5}, BehaviorGuard)
	rng := testRNG()
	e.Update(0.05, Vec{5, 4}, g, rng) // 1 cell away, inside detect range
	if e.State != StateAttacking {
		t.Fatalf("state = %v, want attacking", e.State)
	}
	e.Update(0.05, farPlayer, g, rng)
	if e.State != StateIdle {
		t.Fatalf("state = %v, want idle once the player leaves", e.State)
	}
}

func TestPatrol_CyclesWaypoints(t *testing.T) {
	g := openRoom(12, 4)
	a := Vec{2.5, 1.5}
	b := Vec{9.5, 1.5}
	e := NewEnemy(0, a, BehaviorPatrol)
	e.Waypoints = []Vec{a, b}

	rng := testRNG()
	reachedB := false
	returnedA := false
	// Walk speed is 0.5 cells/s; give it plenty of simulated time.
	for i := 0; i < 8000; i++ {
		e.Update(0.01, farPlayer, g, rng)
		if !reachedB && e.Pos.Dist(b) < patrolEpsilon*2 {
			reachedB = true
		}
		if reachedB && e.Pos.Dist(a) < patrolEpsilon*2 {
			returnedA = true
			break
		}
	}
	if !reachedB {
		t.Fatal("patroller never reached the far waypoint")
	}
	if !returnedA {
		t.Fatal("patroller never returned to its start waypoint")
	}
	if e.State != StateWalking {
		t.Fatalf("moving patroller state = %v, want walking", e.State)
	}
}

func TestPatrol_NoWaypointsIdles(t *testing.T) {
	g := openRoom(6, 6)
	e := NewEnemy(0, Vec{3, 3}, BehaviorPatrol)
	e.Update(0.05, farPlayer, g, testRNG())
	if e.State != StateIdle || e.Pos != (Vec{3, 3}) {
		t.Fatalf("waypointless patroller: state=%v pos=%+v", e.State, e.Pos)
	}
}

func TestWander_StaysNearHome(t *testing.T) {
	g := openRoom(20, 20)
	home := Vec{10, 10}
	e := NewEnemy(0, home, BehaviorWander)
	e.HomeRadius = 2.0
	rng := testRNG()
	for i := 0; i < 10000; i++ {
		e.Update(0.02, farPlayer, g, rng)
		if d := e.Pos.Dist(home); d > e.HomeRadius+0.05 {
			t.Fatalf("step %d: wanderer drifted %.2f cells from home", i, d)
		}
	}
}

func TestChase_ApproachesPlayerInRange(t *testing.T) {
	g := openRoom(10, 10)
	player := Vec{5, 5}
	e := NewEnemy(0, Vec{7, 5}, BehaviorChase) // 2 cells, inside chase range
	rng := testRNG()
	start := e.Pos.Dist(player)
	for i := 0; i < 100; i++ {
		e.Update(0.05, player, g, rng)
	}
	if got := e.Pos.Dist(player); got >= start {
		t.Fatalf("chaser distance went %v -> %v, want closer", start, got)
	}
}

func TestChase_IgnoresPlayerOutOfRange(t *testing.T) {
	g := openRoom(16, 16)
	e := NewEnemy(0, Vec{3, 3}, BehaviorChase)
	pos := e.Pos
	for i := 0; i < 50; i++ {
		e.Update(0.05, Vec{12, 12}, g, testRNG())
	}
	if e.Pos != pos || e.State != StateIdle {
		t.Fatalf("out-of-range chaser moved: pos=%+v state=%v", e.Pos, e.State)
	}
}

func TestChase_AttacksAtCloseRange(t *testing.T) {
	g := openRoom(10, 10)
	e := NewEnemy(0, Vec{5.9, 5}, BehaviorChase)
	e.Update(0.05, Vec{5, 5}, g, testRNG())
	if e.State != StateAttacking {
		t.Fatalf("state = %v, want attacking inside attack range", e.State)
	}
}

func TestChase_StopsBeforeOverlappingPlayer(t *testing.T) {
	g := openRoom(10, 10)
	player := Vec{5, 5}
	e := NewEnemy(0, Vec{6.5, 5}, BehaviorChase)
	rng := testRNG()
	for i := 0; i < 2000; i++ {
		e.Update(0.05, player, g, rng)
	}
	// One step of overshoot is possible on the tick that crosses the
	// stop boundary; past that it must hold distance.
	minAllowed := chaseStopRange - enemyChaseSpeed*0.05
	if d := e.Pos.Dist(player); d < minAllowed {
		t.Fatalf("chaser crowded to %.3f cells, want >= %.3f", d, minAllowed)
	}
}

func TestEnemy_DamageAndDeath(t *testing.T) {
	e := NewEnemy(0, Vec{1, 1}, BehaviorGuard)
	e.Damage(1)
	if !e.Alive() || e.Health != enemyMaxHealth-1 {
		t.Fatalf("after one hit: alive=%v health=%d", e.Alive(), e.Health)
	}
	e.Damage(1)
	if e.Alive() || e.State != StateDead {
		t.Fatalf("after lethal hit: alive=%v state=%v", e.Alive(), e.State)
	}
	// Further damage is a no-op.
	e.Damage(5)
	if e.Health != 0 {
		t.Fatalf("dead enemy health = %d, want 0", e.Health)
	}
}

func TestEnemy_DeathAnimationFreezesOnLastFrame(t *testing.T) {
	g := openRoom(6, 6)
	e := NewEnemy(0, Vec{3, 3}, BehaviorGuard)
	e.Kill()
	rng := testRNG()
	for i := 0; i < 200; i++ {
		e.Update(0.05, farPlayer, g, rng)
	}
	if e.AnimFrame() != animFrames-1 {
		t.Fatalf("death frame = %d, want last frame %d", e.AnimFrame(), animFrames-1)
	}
	if !e.deathDone {
		t.Fatal("death animation should be marked finished")
	}
	// And it stays there.
	e.Update(0.05, farPlayer, g, rng)
	if e.AnimFrame() != animFrames-1 {
		t.Fatal("death frame must not loop")
	}
}

func TestEnemy_WalkingAnimationLoops(t *testing.T) {
	g := openRoom(12, 4)
	e := NewEnemy(0, Vec{2.5, 1.5}, BehaviorPatrol)
	e.Waypoints = []Vec{{2.5, 1.5}, {9.5, 1.5}}
	rng := testRNG()
	seen := map[int]bool{}
	for i := 0; i < 400; i++ {
		e.Update(0.02, farPlayer, g, rng)
		seen[e.AnimFrame()] = true
	}
	if len(seen) != animFrames {
		t.Fatalf("walking animation visited frames %v, want all %d", seen, animFrames)
	}
}

func TestEnemy_FacingFollowsMovement(t *testing.T) {
	g := openRoom(12, 4)
	e := NewEnemy(0, Vec{9.5, 1.5}, BehaviorPatrol)
	e.Waypoints = []Vec{{9.5, 1.5}, {2.5, 1.5}}
	rng := testRNG()
	// First waypoint is the spawn, so it immediately heads west.
	for i := 0; i < 20; i++ {
		e.Update(0.05, farPlayer, g, rng)
	}
	if !e.FacingLeft {
		t.Fatal("westbound enemy should face left")
	}
}
