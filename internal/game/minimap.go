package game

import (
	"image/color"
	"math"
)

const (
	mmScale   = 7    // pixels per maze cell on the minimap
	mmCells   = 21   // cells shown per axis, centred on the player
	mmAlpha   = 0.78 // overlay opacity
	mmMargin  = 16   // pixels from the bottom edge
	mmHeading = 9.0  // length of the player facing line, pixels
)

var (
	mmWallColor   = color.RGBA{R: 110, G: 100, B: 100, A: 255}
	mmFloorColor  = color.RGBA{R: 36, G: 32, B: 32, A: 255}
	mmGoalColor   = color.RGBA{R: 230, G: 200, B: 60, A: 255}
	mmPlayerColor = color.RGBA{R: 230, G: 40, B: 40, A: 255}
	mmFacingColor = color.RGBA{R: 240, G: 220, B: 70, A: 255}

	// Behavior colours match the original's legend.
	mmBehaviorColors = map[BehaviorType]color.RGBA{
		BehaviorGuard:  {R: 235, G: 140, B: 30, A: 255},
		BehaviorPatrol: {R: 60, G: 110, B: 235, A: 255},
		BehaviorWander: {R: 60, G: 200, B: 80, A: 255},
		BehaviorChase:  {R: 180, G: 60, B: 220, A: 255},
	}
)

// DrawMinimap blends a top-down view of the maze around the player
// into the framebuffer: walls, goal, living enemies coloured by
// behavior, and the player with a facing line. Drawn after the 3D
// pass; it ignores the depth buffer entirely.
func DrawMinimap(fb *Framebuffer, w *World) {
	sizePx := mmCells * mmScale
	originX := (fb.W - sizePx) / 2
	originY := fb.H - sizePx - mmMargin

	pCol, pRow := int(w.Player.Pos.X), int(w.Player.Pos.Y)
	half := mmCells / 2

	for dy := -half; dy <= half; dy++ {
		for dx := -half; dx <= half; dx++ {
			cell := w.Grid.CellAt(pCol+dx, pRow+dy)
			var c color.RGBA
			switch cell.Kind {
			case CellWall, CellEmpty:
				c = mmWallColor
			case CellGoal:
				c = mmGoalColor
			default:
				c = mmFloorColor
			}
			px := originX + (dx+half)*mmScale
			py := originY + (dy+half)*mmScale
			fillRectBlend(fb, px, py, mmScale, mmScale, c, mmAlpha)
		}
	}

	// Living enemies within the window.
	for _, e := range w.Enemies {
		if !e.Alive() {
			continue
		}
		dx := int(e.Pos.X) - pCol
		dy := int(e.Pos.Y) - pRow
		if dx < -half || dx > half || dy < -half || dy > half {
			continue
		}
		c := mmBehaviorColors[e.Behavior]
		px := originX + (dx+half)*mmScale + mmScale/2
		py := originY + (dy+half)*mmScale + mmScale/2
		fillRectBlend(fb, px-1, py-1, 3, 3, c, 1.0)
	}

	// Player dot and facing line, always at the window centre.
	cx := originX + half*mmScale + mmScale/2
	cy := originY + half*mmScale + mmScale/2
	fillRectBlend(fb, cx-2, cy-2, 4, 4, mmPlayerColor, 1.0)
	drawLineBlend(fb, cx, cy,
		cx+int(math.Cos(w.Player.Angle)*mmHeading),
		cy+int(math.Sin(w.Player.Angle)*mmHeading),
		mmFacingColor)
}

func fillRectBlend(fb *Framebuffer, x, y, w, h int, c color.RGBA, alpha float64) {
	for yy := y; yy < y+h; yy++ {
		for xx := x; xx < x+w; xx++ {
			fb.blendPixel(xx, yy, c, alpha)
		}
	}
}

// drawLineBlend draws a short line by dense parametric sampling; the
// minimap heading line is a handful of pixels, nothing fancier needed.
func drawLineBlend(fb *Framebuffer, x0, y0, x1, y1 int, c color.RGBA) {
	steps := int(math.Hypot(float64(x1-x0), float64(y1-y0))) * 2
	if steps == 0 {
		fb.blendPixel(x0, y0, c, 1.0)
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := x0 + int(t*float64(x1-x0)+0.5)
		y := y0 + int(t*float64(y1-y0)+0.5)
		fb.blendPixel(x, y, c, 1.0)
	}
}
