package game

import "testing"

func TestBuiltinLevels_AllLoad(t *testing.T) {
	levels := BuiltinLevels()
	if len(levels) < 3 {
		t.Fatalf("builtin levels = %d, want at least 3", len(levels))
	}
	for _, lvl := range levels {
		if lvl.Name == "" || lvl.Description == "" {
			t.Errorf("level missing name/description: %+v", lvl.Name)
		}
		if len(lvl.Enemies) == 0 {
			t.Errorf("level %q has no enemies", lvl.Name)
		}
		if lvl.MusicTrack < 0 {
			t.Errorf("level %q has no music track", lvl.Name)
		}
	}
}

func TestBuiltinLevels_SpawnsOnWalkableGround(t *testing.T) {
	for _, lvl := range BuiltinLevels() {
		if !lvl.Grid.WalkableAt(lvl.PlayerStart) {
			t.Errorf("level %q: player start %+v not walkable", lvl.Name, lvl.PlayerStart)
		}
		for i, sp := range lvl.Enemies {
			if !lvl.Grid.WalkableAt(sp.Pos) {
				t.Errorf("level %q: enemy %d at %+v not walkable", lvl.Name, i, sp.Pos)
			}
		}
	}
}

func TestBuiltinLevels_GoalReachableDistance(t *testing.T) {
	// Sanity: goal is somewhere other than on top of the player.
	for _, lvl := range BuiltinLevels() {
		gc, gr := lvl.Grid.GoalCell()
		if gc < 0 {
			t.Fatalf("level %q: no goal cell", lvl.Name)
		}
		if lvl.PlayerStart.Dist(CellCenter(gc, gr)) < 3 {
			t.Errorf("level %q: goal starts %0.1f cells from the player", lvl.Name,
				lvl.PlayerStart.Dist(CellCenter(gc, gr)))
		}
	}
}

func TestBuiltinLevels_BehaviorVariety(t *testing.T) {
	seen := map[BehaviorType]bool{}
	for _, lvl := range BuiltinLevels() {
		for _, sp := range lvl.Enemies {
			seen[sp.Behavior] = true
		}
	}
	for _, b := range []BehaviorType{BehaviorGuard, BehaviorPatrol, BehaviorWander, BehaviorChase} {
		if !seen[b] {
			t.Errorf("no builtin level spawns a %v enemy", b)
		}
	}
}
