package game

import "fmt"

// Harness is a headless world runner used by tests and the
// headless-report command. It mirrors the interactive frame loop but
// has no rendering or device dependencies and steps with a fixed dt,
// so runs are fully deterministic for a given seed.
type Harness struct {
	World *World
	Level *Level
	DT    float64
}

// HarnessOption configures a Harness during construction.
type HarnessOption func(*harnessConfig)

type harnessConfig struct {
	mapText     string
	level       *Level
	seed        int64
	dt          float64
	extraSpawns []EnemySpawn
	playerPos   *Vec
	playerAngle *float64
	noEnemies   bool
}

// WithMap parses the given maze text as the level.
func WithMap(text string) HarnessOption {
	return func(c *harnessConfig) { c.mapText = text }
}

// WithLevel uses an already-parsed level.
func WithLevel(lvl *Level) HarnessOption {
	return func(c *harnessConfig) { c.level = lvl }
}

// WithSeed fixes the world RNG seed.
func WithSeed(seed int64) HarnessOption {
	return func(c *harnessConfig) { c.seed = seed }
}

// WithDT overrides the fixed step duration (default 1/60 s).
func WithDT(dt float64) HarnessOption {
	return func(c *harnessConfig) { c.dt = dt }
}

// WithEnemy adds an enemy spawn on top of whatever the level defines.
func WithEnemy(sp EnemySpawn) HarnessOption {
	return func(c *harnessConfig) { c.extraSpawns = append(c.extraSpawns, sp) }
}

// WithoutLevelEnemies drops the level's own spawns, leaving only the
// harness-added ones.
func WithoutLevelEnemies() HarnessOption {
	return func(c *harnessConfig) { c.noEnemies = true }
}

// WithPlayerAt overrides the level's player start.
func WithPlayerAt(pos Vec, angle float64) HarnessOption {
	return func(c *harnessConfig) {
		c.playerPos = &pos
		c.playerAngle = &angle
	}
}

// NewHarness builds a world from the options. Exactly one of WithMap
// or WithLevel must be supplied.
func NewHarness(opts ...HarnessOption) (*Harness, error) {
	cfg := harnessConfig{seed: 1, dt: 1.0 / 60.0}
	for _, o := range opts {
		o(&cfg)
	}

	lvl := cfg.level
	if lvl == nil {
		if cfg.mapText == "" {
			return nil, fmt.Errorf("harness: no map or level supplied")
		}
		var err error
		lvl, err = ParseLevel("harness", cfg.mapText)
		if err != nil {
			return nil, err
		}
	}
	if cfg.noEnemies {
		lvlCopy := *lvl
		lvlCopy.Enemies = nil
		lvl = &lvlCopy
	}
	if len(cfg.extraSpawns) > 0 {
		lvlCopy := *lvl
		lvlCopy.Enemies = append(append([]EnemySpawn{}, lvl.Enemies...), cfg.extraSpawns...)
		lvl = &lvlCopy
	}

	w := NewWorld(lvl, NopAudio{}, cfg.seed)
	if cfg.playerPos != nil {
		w.Player.Pos = *cfg.playerPos
		w.Player.Angle = *cfg.playerAngle
	}
	return &Harness{World: w, Level: lvl, DT: cfg.dt}, nil
}

// Run steps the world for n frames. input, when non-nil, supplies the
// per-frame input state; a nil input means the player stands still.
func (h *Harness) Run(n int, input func(frame int) InputState) {
	for i := 0; i < n; i++ {
		var in InputState
		if input != nil {
			in = input(i)
		}
		h.World.Step(in, h.DT)
	}
}
