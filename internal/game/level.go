package game

import (
	"fmt"
	"math"
	"strings"
)

// EnemySpawn is a level-authored enemy, instantiated fresh for every
// world built from the level.
type EnemySpawn struct {
	Pos        Vec
	Behavior   BehaviorType
	Waypoints  []Vec   // patrol only
	HomeRadius float64 // wander only
}

// Level is one loaded maze: the immutable grid plus everything needed
// to start a run. Created on level load, dropped wholesale when the
// player moves on.
type Level struct {
	Name        string
	Description string
	Grid        *Grid
	PlayerStart Vec
	PlayerAngle float64
	Enemies     []EnemySpawn
	MusicTrack  int
}

// Level file symbols. Any other non-space character is a wall whose
// texture id is the character itself.
const (
	symFloor       = ' '
	symGoal        = 'g'
	symPlayer      = 'p'
	symSpawnGuard  = 'G'
	symSpawnPatrol = 'P'
	symSpawnWander = 'W'
	symSpawnChase  = 'C'
)

// ParseLevel builds a Level from a textual maze. Structural problems
// are load-time fatal: no partial level is ever returned.
func ParseLevel(name string, text string) (*Level, error) {
	lines := strings.Split(strings.Trim(text, "\n"), "\n")
	rows := len(lines)
	if rows < 3 {
		return nil, fmt.Errorf("level %q: need at least 3 rows, got %d", name, rows)
	}
	cols := len(lines[0])
	if cols < 3 {
		return nil, fmt.Errorf("level %q: need at least 3 columns, got %d", name, cols)
	}
	for i, l := range lines {
		if len(l) != cols {
			return nil, fmt.Errorf("level %q: row %d has %d cells, want %d", name, i, len(l), cols)
		}
	}

	lvl := &Level{Name: name, Grid: NewGrid(cols, rows)}
	goals := 0
	players := 0

	for r, line := range lines {
		for c := 0; c < cols; c++ {
			ch := line[c]
			pos := CellCenter(c, r)
			switch ch {
			case symFloor:
				lvl.Grid.SetCell(c, r, Cell{Kind: CellFloor})
			case symGoal:
				lvl.Grid.SetCell(c, r, Cell{Kind: CellGoal})
				goals++
			case symPlayer:
				lvl.Grid.SetCell(c, r, Cell{Kind: CellFloor})
				lvl.PlayerStart = pos
				players++
			case symSpawnGuard:
				lvl.Grid.SetCell(c, r, Cell{Kind: CellFloor})
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Pos: pos, Behavior: BehaviorGuard})
			case symSpawnPatrol:
				lvl.Grid.SetCell(c, r, Cell{Kind: CellFloor})
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Pos: pos, Behavior: BehaviorPatrol})
			case symSpawnWander:
				lvl.Grid.SetCell(c, r, Cell{Kind: CellFloor})
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Pos: pos, Behavior: BehaviorWander, HomeRadius: 1.0})
			case symSpawnChase:
				lvl.Grid.SetCell(c, r, Cell{Kind: CellFloor})
				lvl.Enemies = append(lvl.Enemies, EnemySpawn{Pos: pos, Behavior: BehaviorChase})
			default:
				lvl.Grid.SetCell(c, r, Cell{Kind: CellWall, Tex: TextureID(ch)})
			}
		}
	}

	if goals != 1 {
		return nil, fmt.Errorf("level %q: want exactly one goal cell, got %d", name, goals)
	}
	if players != 1 {
		return nil, fmt.Errorf("level %q: want exactly one player spawn, got %d", name, players)
	}
	if err := checkBorder(lvl.Grid); err != nil {
		return nil, fmt.Errorf("level %q: %w", name, err)
	}

	for i := range lvl.Enemies {
		if lvl.Enemies[i].Behavior == BehaviorPatrol {
			lvl.Enemies[i].Waypoints = derivePatrolRoute(lvl.Grid, lvl.Enemies[i].Pos)
		}
	}

	// Face the player toward open ground rather than a wall.
	lvl.PlayerAngle = openingAngle(lvl.Grid, lvl.PlayerStart)
	return lvl, nil
}

// checkBorder verifies the outer boundary is fully walled, which is
// what lets the raycaster and collision trust `out of bounds == wall`.
func checkBorder(g *Grid) error {
	for c := 0; c < g.Cols; c++ {
		if !g.Solid(c, 0) || !g.Solid(c, g.Rows-1) {
			return fmt.Errorf("open border at column %d", c)
		}
	}
	for r := 0; r < g.Rows; r++ {
		if !g.Solid(0, r) || !g.Solid(g.Cols-1, r) {
			return fmt.Errorf("open border at row %d", r)
		}
	}
	return nil
}

// derivePatrolRoute builds a waypoint ring for a patrol spawn: the
// spawn cell plus the end of the longest straight walkable run from
// it. A spawn boxed in on all sides patrols in place.
func derivePatrolRoute(g *Grid, from Vec) []Vec {
	col, row := int(from.X), int(from.Y)
	best := from
	bestLen := 0
	dirs := [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	for _, d := range dirs {
		c, r, n := col, row, 0
		for g.IsWalkable(c+d[0], r+d[1]) {
			c += d[0]
			r += d[1]
			n++
		}
		if n > bestLen {
			bestLen = n
			best = CellCenter(c, r)
		}
	}
	if bestLen == 0 {
		return []Vec{from}
	}
	return []Vec{from, best}
}

// openingAngle returns the heading toward the most open cardinal
// direction from p.
func openingAngle(g *Grid, p Vec) float64 {
	angles := [4]float64{0, math.Pi / 2, math.Pi, -math.Pi / 2}
	dirs := [4][2]int{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	col, row := int(p.X), int(p.Y)
	bestAngle, bestRun := 0.0, -1
	for i, d := range dirs {
		c, r, n := col, row, 0
		for g.IsWalkable(c+d[0], r+d[1]) {
			c += d[0]
			r += d[1]
			n++
		}
		if n > bestRun {
			bestRun = n
			bestAngle = angles[i]
		}
	}
	return bestAngle
}

// SpawnEnemies instantiates fresh enemies from the level's spawn list.
func (lvl *Level) SpawnEnemies() []*Enemy {
	out := make([]*Enemy, 0, len(lvl.Enemies))
	for i, sp := range lvl.Enemies {
		e := NewEnemy(i, sp.Pos, sp.Behavior)
		switch sp.Behavior {
		case BehaviorPatrol:
			e.Waypoints = sp.Waypoints
		case BehaviorWander:
			if sp.HomeRadius > 0 {
				e.HomeRadius = sp.HomeRadius
			}
		}
		out = append(out, e)
	}
	return out
}
