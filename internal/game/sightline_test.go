package game

import "testing"

func TestLineOfSight_ClearRoom(t *testing.T) {
	g := openRoom(10, 10)
	if !HasLineOfSight(g, Vec{1.5, 1.5}, Vec{8.5, 8.5}) {
		t.Fatal("open room must have clear sightlines")
	}
}

func TestLineOfSight_BlockedByWall(t *testing.T) {
	g := openRoom(10, 10)
	// Wall column bisecting the room.
	for r := 1; r < 9; r++ {
		g.SetCell(5, r, Cell{Kind: CellWall, Tex: '+'})
	}
	if HasLineOfSight(g, Vec{2.5, 5.5}, Vec{8.5, 5.5}) {
		t.Fatal("sightline through a wall must be blocked")
	}
}

func TestLineOfSight_AlongWallNotBlocked(t *testing.T) {
	g := openRoom(10, 10)
	// Parallel to the wall, one cell inside it.
	if !HasLineOfSight(g, Vec{1.5, 1.5}, Vec{8.5, 1.5}) {
		t.Fatal("sightline parallel to a wall must stay clear")
	}
}

func TestLineOfSight_SamePoint(t *testing.T) {
	g := openRoom(5, 5)
	if !HasLineOfSight(g, Vec{2.5, 2.5}, Vec{2.5, 2.5}) {
		t.Fatal("zero-length sightline on open floor must be clear")
	}
}

func TestLineOfSight_SingleWallCellNotSkipped(t *testing.T) {
	g := openRoom(12, 12)
	g.SetCell(6, 6, Cell{Kind: CellWall, Tex: '+'})
	// Diagonal through the lone wall cell's centre.
	if HasLineOfSight(g, Vec{5.5, 5.5}, Vec{7.5, 7.5}) {
		t.Fatal("quarter-cell sampling must not step over a wall cell")
	}
}
