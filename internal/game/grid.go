package game

// CellKind classifies a grid cell.
type CellKind uint8

const (
	CellEmpty CellKind = iota // void outside the playable area; blocks everything
	CellFloor                 // walkable open ground
	CellWall                  // solid wall, carries a texture id
	CellGoal                  // walkable exit cell
)

// Cell is one square of the maze.
type Cell struct {
	Kind CellKind
	Tex  TextureID // wall texture; zero for non-walls
}

// Grid is the immutable maze layout. It is built once by the level
// loader and never mutated afterwards, so it is safe to read from
// multiple goroutines during the parallel raycasting pass.
type Grid struct {
	Cols  int
	Rows  int
	cells []Cell // row-major: index = row*Cols + col
}

// NewGrid creates an all-empty grid of the given dimensions.
func NewGrid(cols, rows int) *Grid {
	return &Grid{Cols: cols, Rows: rows, cells: make([]Cell, cols*rows)}
}

func (g *Grid) inBounds(col, row int) bool {
	return col >= 0 && col < g.Cols && row >= 0 && row < g.Rows
}

// CellAt returns the cell at (col, row). Out-of-bounds queries return a
// wall: rays and movement are stopped at the edge of the world rather
// than erroring.
func (g *Grid) CellAt(col, row int) Cell {
	if !g.inBounds(col, row) {
		return Cell{Kind: CellWall, Tex: FallbackTexture}
	}
	return g.cells[row*g.Cols+col]
}

// SetCell writes a cell. Only the level loader calls this; after load
// the grid is treated as read-only.
func (g *Grid) SetCell(col, row int, c Cell) {
	if !g.inBounds(col, row) {
		return
	}
	g.cells[row*g.Cols+col] = c
}

// IsWalkable reports whether an entity may occupy (col, row).
func (g *Grid) IsWalkable(col, row int) bool {
	switch g.CellAt(col, row).Kind {
	case CellFloor, CellGoal:
		return true
	default:
		return false
	}
}

// WalkableAt reports whether the world-space point p lies in a
// walkable cell.
func (g *Grid) WalkableAt(p Vec) bool {
	if p.X < 0 || p.Y < 0 {
		return false
	}
	return g.IsWalkable(int(p.X), int(p.Y))
}

// Solid reports whether a ray terminates at (col, row).
func (g *Grid) Solid(col, row int) bool {
	switch g.CellAt(col, row).Kind {
	case CellWall, CellEmpty:
		return true
	default:
		return false
	}
}

// GoalCell returns the coordinates of the goal cell. The loader
// guarantees exactly one exists.
func (g *Grid) GoalCell() (col, row int) {
	for r := 0; r < g.Rows; r++ {
		for c := 0; c < g.Cols; c++ {
			if g.cells[r*g.Cols+c].Kind == CellGoal {
				return c, r
			}
		}
	}
	return -1, -1
}

// CellCenter returns the world-space centre of a cell.
func CellCenter(col, row int) Vec {
	return Vec{float64(col) + 0.5, float64(row) + 0.5}
}
