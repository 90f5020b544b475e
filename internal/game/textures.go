package game

import (
	"image/color"
	"math"
)

// TextureID keys a wall or sprite texture. Wall ids come straight from
// the level file characters.
type TextureID byte

// FallbackTexture is used for out-of-bounds hits and unknown ids.
const FallbackTexture TextureID = '+'

const texSize = 64

// Texture is an opaque pixel handle: the renderer samples it and never
// cares where the pixels came from. Pix is RGBA, row-major.
type Texture struct {
	W, H int
	Pix  []uint8
}

// At returns the texel at (x, y), clamped to the texture bounds.
func (t *Texture) At(x, y int) color.RGBA {
	if x < 0 {
		x = 0
	} else if x >= t.W {
		x = t.W - 1
	}
	if y < 0 {
		y = 0
	} else if y >= t.H {
		y = t.H - 1
	}
	i := (y*t.W + x) * 4
	return color.RGBA{R: t.Pix[i], G: t.Pix[i+1], B: t.Pix[i+2], A: t.Pix[i+3]}
}

// Sample returns the texel at fractional coordinates u,v in [0,1).
func (t *Texture) Sample(u, v float64) color.RGBA {
	return t.At(int(u*float64(t.W)), int(v*float64(t.H)))
}

// TextureSource supplies texture handles to the renderer. Asset
// decoding lives behind this boundary; the shipped implementation
// generates its pixels procedurally.
type TextureSource interface {
	Wall(id TextureID) *Texture
	// SpriteFrame returns one animation frame for an enemy sprite.
	// Transparent texels have zero alpha.
	SpriteFrame(state BehaviorState, frame int) *Texture
}

// TextureStore is the built-in TextureSource. All textures are
// generated once at construction; lookups afterwards are map reads.
type TextureStore struct {
	walls   map[TextureID]*Texture
	sprites map[BehaviorState][]*Texture
}

// NewTextureStore generates the full wall and sprite set.
func NewTextureStore() *TextureStore {
	ts := &TextureStore{
		walls:   make(map[TextureID]*Texture),
		sprites: make(map[BehaviorState][]*Texture),
	}
	ts.walls['+'] = genBrick(color.RGBA{R: 96, G: 42, B: 38, A: 255})
	ts.walls['-'] = genBrick(color.RGBA{R: 80, G: 52, B: 40, A: 255})
	ts.walls['|'] = genStone(color.RGBA{R: 70, G: 66, B: 72, A: 255})
	ts.walls['1'] = genBrick(color.RGBA{R: 110, G: 48, B: 36, A: 255})
	ts.walls['2'] = genStone(color.RGBA{R: 58, G: 70, B: 58, A: 255})
	ts.walls['3'] = genStone(color.RGBA{R: 84, G: 74, B: 52, A: 255})
	for _, st := range []BehaviorState{StateIdle, StateWalking, StateAttacking, StateDead} {
		frames := make([]*Texture, animFrames)
		for f := 0; f < animFrames; f++ {
			frames[f] = genSpriteFrame(st, f)
		}
		ts.sprites[st] = frames
	}
	return ts
}

// Wall returns the wall texture for id, or the fallback texture.
func (ts *TextureStore) Wall(id TextureID) *Texture {
	if t, ok := ts.walls[id]; ok {
		return t
	}
	return ts.walls[FallbackTexture]
}

// SpriteFrame returns the sprite frame for the given state, clamping
// the frame index.
func (ts *TextureStore) SpriteFrame(state BehaviorState, frame int) *Texture {
	frames, ok := ts.sprites[state]
	if !ok {
		frames = ts.sprites[StateIdle]
	}
	if frame < 0 {
		frame = 0
	}
	if frame >= len(frames) {
		frame = len(frames) - 1
	}
	return frames[frame]
}

func newTexture(w, h int) *Texture {
	return &Texture{W: w, H: h, Pix: make([]uint8, w*h*4)}
}

func (t *Texture) set(x, y int, c color.RGBA) {
	i := (y*t.W + x) * 4
	t.Pix[i] = c.R
	t.Pix[i+1] = c.G
	t.Pix[i+2] = c.B
	t.Pix[i+3] = c.A
}

// genBrick produces a mortar-lined brick pattern around a base colour.
func genBrick(base color.RGBA) *Texture {
	t := newTexture(texSize, texSize)
	mortar := color.RGBA{R: 38, G: 30, B: 28, A: 255}
	for y := 0; y < texSize; y++ {
		course := y / 16
		for x := 0; x < texSize; x++ {
			xo := x
			if course%2 == 1 {
				xo = (x + 16) % texSize
			}
			c := base
			if y%16 >= 14 || xo%32 >= 30 {
				c = mortar
			} else {
				// Slight per-texel variation keeps flat faces readable.
				n := uint8((x*31 + y*17) % 13)
				c = color.RGBA{R: base.R - n, G: base.G - n/2, B: base.B - n/2, A: 255}
			}
			t.set(x, y, c)
		}
	}
	return t
}

// genStone produces rough stone blocks around a base colour.
func genStone(base color.RGBA) *Texture {
	t := newTexture(texSize, texSize)
	for y := 0; y < texSize; y++ {
		for x := 0; x < texSize; x++ {
			n := math.Sin(float64(x)*0.35)*6 + math.Sin(float64(y)*0.22)*5
			v := float64((x*13+y*7)%11) - 5
			shade := int(n + v)
			c := color.RGBA{
				R: clampU8(int(base.R) + shade),
				G: clampU8(int(base.G) + shade),
				B: clampU8(int(base.B) + shade),
				A: 255,
			}
			if x%21 == 0 || y%17 == 0 {
				c = color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: 255}
			}
			t.set(x, y, c)
		}
	}
	return t
}

// genSpriteFrame draws a simple hooded-figure billboard. The silhouette
// changes per state and the frame index sways limbs so animation reads
// at a distance.
func genSpriteFrame(state BehaviorState, frame int) *Texture {
	t := newTexture(texSize, texSize)
	body := color.RGBA{R: 140, G: 30, B: 30, A: 255}
	trim := color.RGBA{R: 210, G: 180, B: 60, A: 255}
	switch state {
	case StateAttacking:
		body = color.RGBA{R: 180, G: 40, B: 30, A: 255}
	case StateDead:
		body = color.RGBA{R: 70, G: 60, B: 60, A: 255}
	}
	sway := float64(frame%animFrames)/float64(animFrames-1)*2 - 1 // -1..1
	cx := float64(texSize) / 2
	for y := 0; y < texSize; y++ {
		fy := float64(y) / texSize
		var halfW float64
		switch {
		case fy < 0.2: // hood
			halfW = 6 + fy*30
		case fy < 0.7: // torso
			halfW = 12 + math.Sin(fy*math.Pi)*4
		default: // legs
			halfW = 9 - (fy-0.7)*14
		}
		if state == StateDead {
			// Collapsed heap: flatten toward the ground.
			halfW *= fy
		}
		offset := sway * 3 * fy
		for x := 0; x < texSize; x++ {
			dx := float64(x) - cx - offset
			if math.Abs(dx) > halfW {
				continue
			}
			c := body
			if fy > 0.18 && fy < 0.24 {
				c = trim
			}
			t.set(x, y, c)
		}
	}
	return t
}

func clampU8(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
