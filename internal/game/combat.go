package game

import "math"

const (
	attackRadius    = 2.5                // cells: melee reach
	attackHalfAngle = 15 * math.Pi / 180 // cone half-angle either side of facing
	attackCooldown  = 0.4                // seconds between swings
	attackDamage    = 1                  // health points per hit

	// Enemy contact damage against the player.
	touchRange      = 0.8 // cells
	touchDamage     = 10
	hurtInvulnTime  = 1.0 // seconds of post-hit invulnerability
	playerMaxHealth = 100
)

// AttackResult reports what one swing accomplished.
type AttackResult struct {
	Swung       bool // false when the cooldown gate rejected the attack
	HitEnemyIDs []int
	Missed      bool // swung but connected with nothing
}

// TryAttack resolves a melee swing from pos facing angle against the
// enemy list. The swing is gated by the player's cooldown timer; when
// it goes through, every living enemy inside the attack radius and
// inside the angular cone takes damage — a cone sweep is inherently
// multi-target. A swing that passes the gate plays the swing sound,
// then the hit sound on any connection or the miss sound on none; a
// rejected swing stays silent.
func TryAttack(p *Player, enemies []*Enemy, audio AudioSink) AttackResult {
	if p.AttackCooldown > 0 {
		return AttackResult{}
	}
	p.AttackCooldown = attackCooldown
	p.SwingTimer = swingDuration
	audio.PlayOneShot(SoundSwing)

	res := AttackResult{Swung: true}
	for _, e := range enemies {
		if !e.Alive() {
			continue
		}
		if p.Pos.Dist(e.Pos) > attackRadius {
			continue
		}
		diff := normalizeAngle(p.Pos.AngleTo(e.Pos) - p.Angle)
		if math.Abs(diff) > attackHalfAngle {
			continue
		}
		e.Damage(attackDamage)
		res.HitEnemyIDs = append(res.HitEnemyIDs, e.ID)
		if !e.Alive() {
			audio.PlayOneShot(SoundEnemyDeath)
		}
	}

	if len(res.HitEnemyIDs) > 0 {
		audio.PlayOneShot(SoundHit)
	} else {
		res.Missed = true
		audio.PlayOneShot(SoundMiss)
	}
	return res
}

// resolveTouchDamage applies contact damage from attacking enemies to
// the player, gated by the player's invulnerability window.
func resolveTouchDamage(p *Player, enemies []*Enemy, audio AudioSink) {
	if p.HurtTimer > 0 || p.Health <= 0 {
		return
	}
	for _, e := range enemies {
		if !e.Alive() || e.State != StateAttacking {
			continue
		}
		if p.Pos.Dist(e.Pos) > touchRange {
			continue
		}
		p.Health -= touchDamage
		if p.Health < 0 {
			p.Health = 0
		}
		p.HurtTimer = hurtInvulnTime
		audio.PlayOneShot(SoundPlayerHurt)
		return // one source of contact damage per window
	}
}
