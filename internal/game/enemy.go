package game

import (
	"math"
	"math/rand"
)

const (
	enemyRadius      = 0.2  // cells, collision body half-width
	enemyWalkSpeed   = 0.5  // cells per second
	enemyChaseSpeed  = 0.75 // cells per second when chasing
	patrolEpsilon    = 0.1  // waypoint arrival distance
	wanderRetargetLo = 2.0  // seconds between wander target picks
	wanderRetargetHi = 4.0
	chaseRange       = 3.0  // player distance that activates chasing
	chaseAttackRange = 1.5  // inside this the chaser winds up an attack
	chaseStopRange   = 0.35 // don't crowd into the player's body
	guardDetectRange = 2.5  // guards react (animation only) inside this

	animFrames    = 4
	animFrameTime = 0.2 // seconds per animation frame

	enemyMaxHealth = 2 // player hits to bring one down
)

// BehaviorType selects how an enemy decides where to move.
type BehaviorType uint8

const (
	BehaviorGuard  BehaviorType = iota // stationary sentry
	BehaviorPatrol                     // cycles a waypoint ring
	BehaviorWander                     // random targets around a home point
	BehaviorChase                      // pursues the player in range
)

func (b BehaviorType) String() string {
	switch b {
	case BehaviorGuard:
		return "guard"
	case BehaviorPatrol:
		return "patrol"
	case BehaviorWander:
		return "wander"
	case BehaviorChase:
		return "chase"
	default:
		return "unknown"
	}
}

// BehaviorState is the animation-relevant activity state.
type BehaviorState uint8

const (
	StateIdle BehaviorState = iota
	StateWalking
	StateAttacking
	StateDead
)

func (s BehaviorState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateWalking:
		return "walking"
	case StateAttacking:
		return "attacking"
	case StateDead:
		return "dead"
	default:
		return "unknown"
	}
}

// Enemy is one maze inhabitant. Behavior-specific data (waypoints,
// home radius) sits directly on the struct, discriminated by Behavior;
// a single Update switch handles every kind.
type Enemy struct {
	ID       int
	Pos      Vec
	Behavior BehaviorType
	State    BehaviorState
	Health   int

	// Patrol only: ordered waypoint ring and current target index.
	Waypoints []Vec
	wpIndex   int

	// Wander only.
	Home       Vec
	HomeRadius float64
	wanderTo   Vec
	wanderWait float64

	// Animation.
	Frame      float64 // fractional frame accumulator
	FacingLeft bool

	deathDone bool // death animation has reached its last frame
}

// NewEnemy creates an enemy of the given behavior at pos. Patrol
// enemies get their waypoints from the caller; wander enemies default
// to a one-cell home radius around their spawn.
func NewEnemy(id int, pos Vec, behavior BehaviorType) *Enemy {
	e := &Enemy{
		ID:       id,
		Pos:      pos,
		Behavior: behavior,
		State:    StateIdle,
		Health:   enemyMaxHealth,
		Home:     pos,
	}
	if behavior == BehaviorWander {
		e.HomeRadius = 1.0
		e.wanderTo = pos
	}
	return e
}

// Alive reports whether the enemy still takes part in AI, collision
// and combat. Dead enemies remain rendered as corpses.
func (e *Enemy) Alive() bool { return e.State != StateDead }

// Kill transitions the enemy to its death state. The death animation
// plays once and freezes on the final frame.
func (e *Enemy) Kill() {
	if e.State == StateDead {
		return
	}
	e.State = StateDead
	e.Frame = 0
}

// Damage applies one or more hit points and kills at zero.
func (e *Enemy) Damage(points int) {
	if !e.Alive() {
		return
	}
	e.Health -= points
	if e.Health <= 0 {
		e.Health = 0
		e.Kill()
	}
}

// Update runs one AI tick: pick a movement intent for the behavior
// kind, route it through collision, then advance animation. Enemies
// only read player state and mutate their own record, so updates are
// independent across enemies.
func (e *Enemy) Update(dt float64, player Vec, grid *Grid, rng *rand.Rand) {
	if e.State == StateDead {
		e.advanceAnimation(dt)
		return
	}

	switch e.Behavior {
	case BehaviorGuard:
		e.updateGuard(player)
	case BehaviorPatrol:
		e.updatePatrol(dt, grid)
	case BehaviorWander:
		e.updateWander(dt, grid, rng)
	case BehaviorChase:
		e.updateChase(dt, player, grid)
	}

	e.advanceAnimation(dt)
}

func (e *Enemy) updateGuard(player Vec) {
	// Guards never move; they only telegraph when the player is near.
	if e.Pos.Dist(player) < guardDetectRange {
		e.setState(StateAttacking)
	} else {
		e.setState(StateIdle)
	}
}

func (e *Enemy) updatePatrol(dt float64, grid *Grid) {
	if len(e.Waypoints) == 0 {
		e.setState(StateIdle)
		return
	}
	target := e.Waypoints[e.wpIndex]
	if e.Pos.Dist(target) < patrolEpsilon {
		e.wpIndex = (e.wpIndex + 1) % len(e.Waypoints)
		target = e.Waypoints[e.wpIndex]
	}
	e.stepToward(target, enemyWalkSpeed*dt, grid)
}

func (e *Enemy) updateWander(dt float64, grid *Grid, rng *rand.Rand) {
	e.wanderWait -= dt
	arrived := e.Pos.Dist(e.wanderTo) < patrolEpsilon
	if arrived || e.wanderWait <= 0 {
		e.pickWanderTarget(rng)
		e.wanderWait = wanderRetargetLo + rng.Float64()*(wanderRetargetHi-wanderRetargetLo)
	}
	if e.Pos.Dist(e.wanderTo) < patrolEpsilon {
		e.setState(StateIdle)
		return
	}
	e.stepToward(e.wanderTo, enemyWalkSpeed*dt, grid)
}

// pickWanderTarget chooses a random point inside the home radius.
func (e *Enemy) pickWanderTarget(rng *rand.Rand) {
	angle := rng.Float64() * 2 * math.Pi
	dist := rng.Float64() * e.HomeRadius
	e.wanderTo = Vec{
		X: e.Home.X + math.Cos(angle)*dist,
		Y: e.Home.Y + math.Sin(angle)*dist,
	}
}

func (e *Enemy) updateChase(dt float64, player Vec, grid *Grid) {
	dist := e.Pos.Dist(player)
	if dist > chaseRange {
		e.setState(StateIdle)
		return
	}
	if dist < chaseAttackRange {
		e.setState(StateAttacking)
	}
	if dist <= chaseStopRange {
		return
	}
	speed := enemyChaseSpeed * dt
	moved := e.stepTowardKeepState(player, speed, grid)
	if e.State != StateAttacking {
		if moved {
			e.setState(StateWalking)
		} else {
			e.setState(StateIdle)
		}
	}
}

// stepToward moves toward target through collision resolution and
// sets the walking/idle state from whether progress was made.
func (e *Enemy) stepToward(target Vec, maxStep float64, grid *Grid) {
	if e.stepTowardKeepState(target, maxStep, grid) {
		e.setState(StateWalking)
	} else {
		e.setState(StateIdle)
	}
}

// stepTowardKeepState moves toward target without touching the
// behavior state. Returns true if the position changed.
func (e *Enemy) stepTowardKeepState(target Vec, maxStep float64, grid *Grid) bool {
	delta := target.Sub(e.Pos)
	if d := delta.Len(); d > maxStep {
		delta = delta.Norm().Scale(maxStep)
	}
	next := ResolveMove(grid, e.Pos, delta, enemyRadius)
	moved := next.Dist(e.Pos) > 1e-9
	if moved {
		e.FacingLeft = next.X < e.Pos.X
		e.Pos = next
	}
	return moved
}

func (e *Enemy) setState(s BehaviorState) {
	if e.State == StateDead || e.State == s {
		return
	}
	e.State = s
	e.Frame = 0
}

// advanceAnimation ticks the frame accumulator. The death animation
// stops on its last frame; everything else loops.
func (e *Enemy) advanceAnimation(dt float64) {
	e.Frame += dt / animFrameTime
	if e.State == StateDead {
		last := float64(animFrames - 1)
		if e.Frame >= last {
			e.Frame = last
			e.deathDone = true
		}
		return
	}
	for e.Frame >= animFrames {
		e.Frame -= animFrames
	}
}

// AnimFrame returns the whole frame index for rendering.
func (e *Enemy) AnimFrame() int {
	f := int(e.Frame)
	if f >= animFrames {
		f = animFrames - 1
	}
	return f
}
