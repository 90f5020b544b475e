package game

import (
	"math"
	"runtime"
	"sync"
)

// maxRayDist stops the DDA walk on open or malformed maps.
const maxRayDist = 24.0

// Side identifies which face of a wall cell a ray entered through.
type Side uint8

const (
	SideNorth Side = iota
	SideSouth
	SideEast
	SideWest
)

// Ray is the per-column raycast result. Rays are ephemeral: a fresh
// slice is filled every frame and nothing holds onto them.
type Ray struct {
	Origin Vec
	Angle  float64
	Dist   float64 // Euclidean distance along the ray
	Perp   float64 // fisheye-corrected distance used for projection
	Side   Side
	Tex    TextureID
	WallU  float64 // fractional wall-hit coordinate for texture sampling
	Hit    bool    // false when the ray ran out at maxRayDist
	// Degenerate marks a ray that started inside a solid cell; it
	// carries zero distance and must never crash the frame.
	Degenerate bool
}

// CastRay walks the grid with a DDA step from origin along angle and
// returns the first solid cell hit. Axis-parallel rays are handled by
// treating the dead axis's step distance as infinite.
func CastRay(grid *Grid, origin Vec, angle float64) Ray {
	r := Ray{Origin: origin, Angle: angle}

	mapX, mapY := int(math.Floor(origin.X)), int(math.Floor(origin.Y))
	if grid.Solid(mapX, mapY) {
		r.Degenerate = true
		r.Hit = true
		r.Tex = grid.CellAt(mapX, mapY).Tex
		return r
	}

	dirX, dirY := math.Cos(angle), math.Sin(angle)

	deltaX, deltaY := math.Inf(1), math.Inf(1)
	if dirX != 0 {
		deltaX = math.Abs(1 / dirX)
	}
	if dirY != 0 {
		deltaY = math.Abs(1 / dirY)
	}

	var stepX, stepY int
	var sideX, sideY float64
	if dirX < 0 {
		stepX = -1
		sideX = (origin.X - float64(mapX)) * deltaX
	} else {
		stepX = 1
		sideX = (float64(mapX) + 1 - origin.X) * deltaX
	}
	if dirY < 0 {
		stepY = -1
		sideY = (origin.Y - float64(mapY)) * deltaY
	} else {
		stepY = 1
		sideY = (float64(mapY) + 1 - origin.Y) * deltaY
	}

	for {
		var xAxis bool
		if sideX < sideY {
			r.Dist = sideX
			sideX += deltaX
			mapX += stepX
			xAxis = true
		} else {
			r.Dist = sideY
			sideY += deltaY
			mapY += stepY
		}
		if r.Dist > maxRayDist {
			r.Dist = maxRayDist
			r.Perp = maxRayDist
			return r
		}
		if !grid.Solid(mapX, mapY) {
			continue
		}

		r.Hit = true
		r.Tex = grid.CellAt(mapX, mapY).Tex
		hitX := origin.X + dirX*r.Dist
		hitY := origin.Y + dirY*r.Dist
		if xAxis {
			// Crossed a vertical grid line: U runs along the Y axis.
			r.WallU = hitY - math.Floor(hitY)
			if stepX > 0 {
				r.Side = SideWest
			} else {
				r.Side = SideEast
				r.WallU = 1 - r.WallU
			}
		} else {
			r.WallU = hitX - math.Floor(hitX)
			if stepY > 0 {
				r.Side = SideNorth
				r.WallU = 1 - r.WallU
			} else {
				r.Side = SideSouth
			}
		}
		return r
	}
}

// ColumnAngle returns the ray angle for screen column i of n at the
// given facing and field of view.
func ColumnAngle(facing, fov float64, i, n int) float64 {
	return facing - fov/2 + fov*(float64(i)+0.5)/float64(n)
}

// CastColumns fills out with one ray per screen column. Columns share
// no mutable state, so the pass is split across worker goroutines
// writing disjoint slices of out. Perp carries the fisheye-corrected
// distance: raw distance scaled by the cosine of the offset from the
// facing direction.
func CastColumns(grid *Grid, origin Vec, facing, fov float64, out []Ray) {
	n := len(out)
	if n == 0 {
		return
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * chunk
		hi := lo + chunk
		if hi > n {
			hi = n
		}
		if lo >= hi {
			break
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			for i := lo; i < hi; i++ {
				a := ColumnAngle(facing, fov, i, n)
				r := CastRay(grid, origin, a)
				r.Perp = r.Dist * math.Cos(normalizeAngle(a-facing))
				out[i] = r
			}
		}(lo, hi)
	}
	wg.Wait()
}
