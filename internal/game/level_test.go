package game

import (
	"math"
	"strings"
	"testing"
)

const simpleMap = `
#########
#p      #
#   G   #
#      g#
#########`

func mustParse(t *testing.T, text string) *Level {
	t.Helper()
	lvl, err := ParseLevel("test", text)
	if err != nil {
		t.Fatalf("ParseLevel failed: %v", err)
	}
	return lvl
}

func TestParseLevel_Basic(t *testing.T) {
	lvl := mustParse(t, simpleMap)
	if lvl.Grid.Cols != 9 || lvl.Grid.Rows != 5 {
		t.Fatalf("grid = %dx%d, want 9x5", lvl.Grid.Cols, lvl.Grid.Rows)
	}
	if lvl.PlayerStart != (Vec{1.5, 1.5}) {
		t.Fatalf("player start = %+v, want (1.5,1.5)", lvl.PlayerStart)
	}
	gc, gr := lvl.Grid.GoalCell()
	if gc != 7 || gr != 3 {
		t.Fatalf("goal = (%d,%d), want (7,3)", gc, gr)
	}
	if len(lvl.Enemies) != 1 || lvl.Enemies[0].Behavior != BehaviorGuard {
		t.Fatalf("enemies = %+v, want one guard", lvl.Enemies)
	}
}

func TestParseLevel_WallTextureFromSymbol(t *testing.T) {
	lvl := mustParse(t, simpleMap)
	cell := lvl.Grid.CellAt(0, 0)
	if cell.Kind != CellWall || cell.Tex != '#' {
		t.Fatalf("border cell = %+v, want wall with tex '#'", cell)
	}
}

func TestParseLevel_PlayerAndSpawnCellsAreFloor(t *testing.T) {
	lvl := mustParse(t, simpleMap)
	if !lvl.Grid.IsWalkable(1, 1) {
		t.Fatal("player cell must be floor")
	}
	if !lvl.Grid.IsWalkable(4, 2) {
		t.Fatal("spawn cell must be floor")
	}
}

func TestParseLevel_RejectsRaggedRows(t *testing.T) {
	_, err := ParseLevel("bad", "#####\n#p g#\n#####\n####")
	if err == nil || !strings.Contains(err.Error(), "row") {
		t.Fatalf("want ragged-row error, got %v", err)
	}
}

func TestParseLevel_RejectsTooSmall(t *testing.T) {
	if _, err := ParseLevel("bad", "##\n##"); err == nil {
		t.Fatal("want size error for 2x2 map")
	}
}

func TestParseLevel_RejectsMissingGoal(t *testing.T) {
	_, err := ParseLevel("bad", "#####\n#p  #\n#####")
	if err == nil || !strings.Contains(err.Error(), "goal") {
		t.Fatalf("want goal error, got %v", err)
	}
}

func TestParseLevel_RejectsTwoPlayers(t *testing.T) {
	_, err := ParseLevel("bad", "#####\n#ppg#\n#####")
	if err == nil || !strings.Contains(err.Error(), "player") {
		t.Fatalf("want player error, got %v", err)
	}
}

func TestParseLevel_RejectsOpenBorder(t *testing.T) {
	_, err := ParseLevel("bad", "## ##\n#p g#\n#####")
	if err == nil || !strings.Contains(err.Error(), "border") {
		t.Fatalf("want border error, got %v", err)
	}
}

func TestParseLevel_PatrolRouteFollowsCorridor(t *testing.T) {
	lvl := mustParse(t, `
#########
#p P   g#
#########`)
	if len(lvl.Enemies) != 1 {
		t.Fatalf("want one enemy, got %d", len(lvl.Enemies))
	}
	wp := lvl.Enemies[0].Waypoints
	if len(wp) != 2 {
		t.Fatalf("want 2 waypoints, got %d", len(wp))
	}
	if wp[0] != lvl.Enemies[0].Pos {
		t.Fatalf("first waypoint %+v, want spawn %+v", wp[0], lvl.Enemies[0].Pos)
	}
	// Longest run from the spawn is east to the goal cell.
	if wp[1].X <= wp[0].X || wp[1].Y != wp[0].Y {
		t.Fatalf("second waypoint %+v not east along corridor", wp[1])
	}
}

func TestParseLevel_PlayerFacesOpenGround(t *testing.T) {
	lvl := mustParse(t, `
#########
#p     g#
#########`)
	if math.Abs(lvl.PlayerAngle) > 1e-9 {
		t.Fatalf("player angle = %v, want 0 (east, along the corridor)", lvl.PlayerAngle)
	}
}

func TestSpawnEnemies_FreshInstances(t *testing.T) {
	lvl := mustParse(t, simpleMap)
	a := lvl.SpawnEnemies()
	b := lvl.SpawnEnemies()
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("spawn counts = %d,%d, want 1,1", len(a), len(b))
	}
	a[0].Kill()
	if !b[0].Alive() {
		t.Fatal("spawned enemies must not share state across worlds")
	}
}

func TestSpawnEnemies_WanderHomeRadius(t *testing.T) {
	lvl := mustParse(t, `
#########
#p  W  g#
#########`)
	es := lvl.SpawnEnemies()
	if len(es) != 1 || es[0].Behavior != BehaviorWander {
		t.Fatalf("want one wanderer, got %+v", es)
	}
	if es[0].HomeRadius <= 0 {
		t.Fatal("wanderer needs a positive home radius")
	}
}
