package game

import "math/rand"

// goalRadius is how close to the goal cell centre counts as reaching it.
const goalRadius = 0.7

// World is the complete mutable game state for one level run. It is
// passed explicitly through every frame phase; there are no globals.
type World struct {
	Grid    *Grid
	Player  *Player
	Enemies []*Enemy
	Goal    Vec // goal cell centre

	Victory  bool
	Defeated bool
	Frame    int

	LastAttack AttackResult

	audio AudioSink
	rng   *rand.Rand
}

// NewWorld builds the run state for a loaded level. A nil audio sink
// falls back to the silent one.
func NewWorld(lvl *Level, audio AudioSink, seed int64) *World {
	if audio == nil {
		audio = NopAudio{}
	}
	gc, gr := lvl.Grid.GoalCell()
	w := &World{
		Grid:   lvl.Grid,
		Player: NewPlayer(lvl.PlayerStart, lvl.PlayerAngle),
		Goal:   CellCenter(gc, gr),
		audio:  audio,
		rng:    rand.New(rand.NewSource(seed)), // #nosec G404 -- gameplay randomness
	}
	w.Enemies = lvl.SpawnEnemies()
	return w
}

// Step advances the world by dt seconds: player movement, enemy AI,
// combat, then the goal check. One call per frame, no suspension
// points in between. All speeds scale with dt, so behaviour does not
// depend on the actual frame duration.
func (w *World) Step(in InputState, dt float64) {
	if dt <= 0 || w.Victory || w.Defeated {
		return
	}
	w.Frame++
	p := w.Player
	p.tickTimers(dt)

	// 1. MOVE: input through sliding collision.
	p.Angle = normalizeAngle(p.Angle + in.LookDelta)
	if p.move(w.Grid, in.Move, dt) {
		p.stepTimer -= dt
		if p.stepTimer <= 0 {
			p.stepTimer = footstepPeriod
			w.audio.PlayOneShot(SoundFootstep)
		}
	} else {
		p.stepTimer = 0
	}

	// 2. THINK: enemy AI reads player state, mutates only itself.
	for _, e := range w.Enemies {
		e.Update(dt, p.Pos, w.Grid, w.rng)
	}

	// 3. FIGHT.
	w.LastAttack = AttackResult{}
	if in.AttackPressed {
		w.LastAttack = TryAttack(p, w.Enemies, w.audio)
	}
	resolveTouchDamage(p, w.Enemies, w.audio)
	if p.Health <= 0 {
		w.Defeated = true
		return
	}

	// 4. GOAL.
	if p.Pos.Dist(w.Goal) <= goalRadius {
		w.Victory = true
		w.audio.PlayOneShot(SoundVictory)
	}
}

// AliveEnemies counts enemies still in play.
func (w *World) AliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive() {
			n++
		}
	}
	return n
}
