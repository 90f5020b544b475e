package game

// ResolveMove attempts to move an entity of the given body radius by
// delta, returning the furthest walkable position. A blocked diagonal
// move degrades to axis-separated attempts so entities slide along
// walls instead of sticking to them. The result is always walkable;
// worst case is no movement at all.
func ResolveMove(grid *Grid, pos, delta Vec, radius float64) Vec {
	full := pos.Add(delta)
	if bodyFits(grid, full, radius) {
		return full
	}
	// Slide: X first, then Y on top of whatever X achieved.
	next := pos
	xOnly := Vec{X: next.X + delta.X, Y: next.Y}
	if bodyFits(grid, xOnly, radius) {
		next = xOnly
	}
	yOnly := Vec{X: next.X, Y: next.Y + delta.Y}
	if bodyFits(grid, yOnly, radius) {
		next = yOnly
	}
	if bodyFits(grid, next, radius) {
		return next
	}
	return pos
}

// bodyFits checks the four corners of the entity's bounding square
// against the grid, the same corner-sampling scheme the entity bodies
// use for wall contact everywhere else.
func bodyFits(grid *Grid, p Vec, radius float64) bool {
	if radius <= 0 {
		return grid.WalkableAt(p)
	}
	corners := [4]Vec{
		{p.X - radius, p.Y - radius},
		{p.X + radius, p.Y - radius},
		{p.X - radius, p.Y + radius},
		{p.X + radius, p.Y + radius},
	}
	for _, c := range corners {
		if !grid.WalkableAt(c) {
			return false
		}
	}
	return true
}
