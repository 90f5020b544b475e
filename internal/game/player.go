package game

import "math"

const (
	playerFOV       = math.Pi / 3
	playerRadius    = 0.2 // cells
	playerMoveSpeed = 3.0 // cells per second
	playerTurnSpeed = 2.5 // radians per second for key turning
	swingDuration   = 0.25
	footstepPeriod  = 0.38 // seconds between footstep sounds while moving
)

// Player is the first-person actor. The world loop owns it
// exclusively; input and collision mutate it once per frame.
type Player struct {
	Pos    Vec
	Angle  float64 // facing, radians
	FOV    float64
	Vel    Vec // last frame's realised velocity, cells/second
	Health int

	AttackCooldown float64 // seconds until the next swing is allowed
	SwingTimer     float64 // remaining visible swing time
	HurtTimer      float64 // post-hit invulnerability remaining

	stepTimer float64
}

// NewPlayer creates a player at pos facing angle.
func NewPlayer(pos Vec, angle float64) *Player {
	return &Player{
		Pos:    pos,
		Angle:  angle,
		FOV:    playerFOV,
		Health: playerMaxHealth,
	}
}

// tickTimers advances the player's cooldown clocks.
func (p *Player) tickTimers(dt float64) {
	if p.AttackCooldown > 0 {
		p.AttackCooldown = math.Max(0, p.AttackCooldown-dt)
	}
	if p.SwingTimer > 0 {
		p.SwingTimer = math.Max(0, p.SwingTimer-dt)
	}
	if p.HurtTimer > 0 {
		p.HurtTimer = math.Max(0, p.HurtTimer-dt)
	}
}

// move applies the input movement vector: Move.Y is forward/back along
// the facing, Move.X strafes perpendicular to it. The request runs
// through sliding collision; Vel records what actually happened.
func (p *Player) move(grid *Grid, move Vec, dt float64) (moved bool) {
	if move.X == 0 && move.Y == 0 {
		p.Vel = Vec{}
		return false
	}
	move = move.Norm()
	dirX, dirY := math.Cos(p.Angle), math.Sin(p.Angle)
	// Strafe axis is the facing rotated a quarter turn clockwise.
	delta := Vec{
		X: (dirX*move.Y - dirY*move.X) * playerMoveSpeed * dt,
		Y: (dirY*move.Y + dirX*move.X) * playerMoveSpeed * dt,
	}
	next := ResolveMove(grid, p.Pos, delta, playerRadius)
	realised := next.Sub(p.Pos)
	p.Vel = realised.Scale(1 / dt)
	moved = realised.Len() > 1e-9
	p.Pos = next
	return moved
}
