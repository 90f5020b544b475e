package game

import (
	"image/color"
	"math"
	"runtime"
	"sort"
	"sync"
)

const (
	spriteScale    = 0.7 // enemy height relative to a full wall
	spriteNearCull = 0.4 // cells: closer sprites would swallow the screen
	spriteFarCull  = 10.0
	// minPerp keeps the wall-height division sane for degenerate rays.
	minPerp = 1e-4
)

// Renderer composes one frame into a Framebuffer from world state.
// It owns the per-column ray slice so no allocation happens per frame.
type Renderer struct {
	fb   *Framebuffer
	tex  TextureSource
	rays []Ray

	// Precomputed per-row sky and floor gradients.
	skyRows   []color.RGBA
	floorRows []color.RGBA
}

// NewRenderer creates a renderer targeting a w×h framebuffer.
func NewRenderer(w, h int, tex TextureSource) *Renderer {
	r := &Renderer{
		fb:   NewFramebuffer(w, h),
		tex:  tex,
		rays: make([]Ray, w),
	}
	r.initGradients()
	return r
}

// Framebuffer exposes the target buffer for presentation and overlays.
func (r *Renderer) Framebuffer() *Framebuffer { return r.fb }

// Rays exposes the last frame's column rays (minimap debug view).
func (r *Renderer) Rays() []Ray { return r.rays }

// initGradients precomputes the sky and floor colour per screen row,
// a dark crimson wash above and near-black below.
func (r *Renderer) initGradients() {
	half := r.fb.H / 2
	r.skyRows = make([]color.RGBA, half)
	r.floorRows = make([]color.RGBA, r.fb.H-half)
	for y := 0; y < half; y++ {
		t := float64(y) / float64(half)
		r.skyRows[y] = color.RGBA{
			R: uint8(40 + t*70),
			G: uint8(14 + t*22),
			B: uint8(16 + t*20),
			A: 255,
		}
	}
	for y := range r.floorRows {
		t := float64(y) / float64(len(r.floorRows))
		r.floorRows[y] = color.RGBA{
			R: uint8(8 + t*36),
			G: uint8(4 + t*8),
			B: uint8(4 + t*8),
			A: 255,
		}
	}
}

// RenderFrame draws the full 3D view for the current world state:
// parallel column raycast, parallel wall/sky/floor composition, then
// depth-tested sprites back to front.
func (r *Renderer) RenderFrame(w *World) {
	r.fb.Clear()
	CastColumns(w.Grid, w.Player.Pos, w.Player.Angle, w.Player.FOV, r.rays)
	r.drawColumns()
	r.drawSprites(w)
}

// drawColumns renders every screen column. Each column writes a
// disjoint set of pixels, so the work is split across goroutines with
// no locking.
func (r *Renderer) drawColumns() {
	n := r.fb.W
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for wk := 0; wk < workers; wk++ {
		lo := wk * chunk
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
			for x := lo; x < hi; x++ {
				r.drawColumn(x, r.rays[x])
			}
		}(lo, hi)
	}
	wg.Wait()
}

func (r *Renderer) drawColumn(x int, ray Ray) {
	h := r.fb.H
	half := h / 2

	// Sky and floor first; they sit at infinite depth so sprites and
	// walls always win the depth test.
	for y := 0; y < half; y++ {
		r.fb.SetPixel(x, y, r.skyRows[y])
	}
	for y := half; y < h; y++ {
		r.fb.SetPixel(x, y, r.floorRows[y-half])
	}

	if !ray.Hit {
		return // open ray: nothing but haze out there
	}

	perp := ray.Perp
	if perp < minPerp {
		perp = minPerp
	}
	lineH := float64(h) / perp
	top := float64(half) - lineH/2
	yStart := int(top)
	yEnd := int(top + lineH)
	if yStart < 0 {
		yStart = 0
	}
	if yEnd > h {
		yEnd = h
	}

	tex := r.tex.Wall(ray.Tex)
	sideShade := 1.0
	if ray.Side == SideNorth || ray.Side == SideSouth {
		sideShade = 0.75
	}
	fog := FogFactor(perp)

	for y := yStart; y < yEnd; y++ {
		v := (float64(y) - top) / lineH
		c := tex.Sample(ray.WallU, v)
		if sideShade != 1.0 {
			c = shade(c, sideShade)
		}
		if fog > 0 {
			c = ApplyFog(c, perp)
		}
		r.fb.SetPixelDepth(x, y, c, perp)
	}
}

// spriteView is one enemy prepared for billboard drawing.
type spriteView struct {
	enemy     *Enemy
	depthPerp float64
	angleDiff float64
}

// drawSprites projects enemies (corpses included) as billboards,
// farthest first, with per-pixel depth tests against the wall pass so
// walls occlude sprites correctly.
func (r *Renderer) drawSprites(w *World) {
	p := w.Player
	views := make([]spriteView, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		d := p.Pos.Dist(e.Pos)
		if d < spriteNearCull || d > spriteFarCull {
			continue
		}
		diff := normalizeAngle(p.Pos.AngleTo(e.Pos) - p.Angle)
		if math.Abs(diff) > p.FOV/2+0.2 {
			continue
		}
		if !HasLineOfSight(w.Grid, p.Pos, e.Pos) {
			continue
		}
		depth := d * math.Cos(diff)
		if depth <= minPerp {
			continue
		}
		views = append(views, spriteView{enemy: e, depthPerp: depth, angleDiff: diff})
	}
	sort.Slice(views, func(i, j int) bool {
		return views[i].depthPerp > views[j].depthPerp
	})
	for _, v := range views {
		r.drawSprite(v)
	}
}

func (r *Renderer) drawSprite(v spriteView) {
	e := v.enemy
	h := float64(r.fb.H)
	size := h / v.depthPerp * spriteScale
	if size < 1 {
		return
	}
	screenX := (v.angleDiff/playerFOV + 0.5) * float64(r.fb.W)
	startX := int(screenX - size/2)
	startY := int(h/2 - size/2)
	endX := startX + int(size)
	endY := startY + int(size)

	tex := r.tex.SpriteFrame(e.State, e.AnimFrame())
	fog := FogFactor(v.depthPerp)

	for x := startX; x < endX; x++ {
		if x < 0 || x >= r.fb.W {
			continue
		}
		u := (float64(x) - float64(startX)) / size
		if e.FacingLeft {
			u = 1 - u
		}
		for y := startY; y < endY; y++ {
			if y < 0 || y >= r.fb.H {
				continue
			}
			vv := (float64(y) - float64(startY)) / size
			c := tex.Sample(u, vv)
			if c.A == 0 {
				continue
			}
			if fog > 0 {
				c = ApplyFog(c, v.depthPerp)
			}
			r.fb.SetPixelDepth(x, y, c, v.depthPerp)
		}
	}
}

// shade scales a colour's brightness by f in [0,1].
func shade(c color.RGBA, f float64) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
