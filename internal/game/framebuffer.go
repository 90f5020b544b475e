package game

import (
	"image/color"
	"math"
)

// Framebuffer is a software RGBA pixel buffer with a per-pixel depth
// channel. The renderer composes the whole frame here; presentation is
// a single pixel upload by whoever owns the screen.
type Framebuffer struct {
	W, H  int
	Pix   []uint8   // RGBA, row-major
	depth []float64 // perpendicular distance per pixel
}

// NewFramebuffer allocates a buffer of the given size.
func NewFramebuffer(w, h int) *Framebuffer {
	fb := &Framebuffer{
		W:     w,
		H:     h,
		Pix:   make([]uint8, w*h*4),
		depth: make([]float64, w*h),
	}
	fb.Clear()
	return fb
}

// Clear resets the colour buffer to black and the depth buffer to
// infinity.
func (fb *Framebuffer) Clear() {
	for i := range fb.Pix {
		fb.Pix[i] = 0
	}
	for i := range fb.depth {
		fb.depth[i] = math.Inf(1)
	}
	// Alpha channel stays opaque.
	for i := 3; i < len(fb.Pix); i += 4 {
		fb.Pix[i] = 255
	}
}

// SetPixel writes a pixel unconditionally, ignoring depth.
func (fb *Framebuffer) SetPixel(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return
	}
	i := (y*fb.W + x) * 4
	fb.Pix[i] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = 255
}

// SetPixelDepth writes a pixel only if depth is nearer than what is
// already there. Returns true when the pixel was written.
func (fb *Framebuffer) SetPixelDepth(x, y int, c color.RGBA, depth float64) bool {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return false
	}
	di := y*fb.W + x
	if depth >= fb.depth[di] {
		return false
	}
	fb.depth[di] = depth
	i := di * 4
	fb.Pix[i] = c.R
	fb.Pix[i+1] = c.G
	fb.Pix[i+2] = c.B
	fb.Pix[i+3] = 255
	return true
}

// DepthAt returns the stored depth at (x, y), infinity out of bounds.
func (fb *Framebuffer) DepthAt(x, y int) float64 {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return math.Inf(1)
	}
	return fb.depth[y*fb.W+x]
}

// blendPixel mixes c over the existing pixel by alpha in [0,1].
// Used by the minimap overlay; depth is untouched.
func (fb *Framebuffer) blendPixel(x, y int, c color.RGBA, alpha float64) {
	if x < 0 || x >= fb.W || y < 0 || y >= fb.H {
		return
	}
	i := (y*fb.W + x) * 4
	inv := 1 - alpha
	fb.Pix[i] = uint8(float64(fb.Pix[i])*inv + float64(c.R)*alpha)
	fb.Pix[i+1] = uint8(float64(fb.Pix[i+1])*inv + float64(c.G)*alpha)
	fb.Pix[i+2] = uint8(float64(fb.Pix[i+2])*inv + float64(c.B)*alpha)
}

// --- Fog ---

// fogMaxDist is the distance at which surfaces are fully fogged.
const fogMaxDist = 8.0

// fogColor is what far surfaces fade into.
var fogColor = color.RGBA{R: 26, G: 14, B: 16, A: 255}

// FogFactor returns the fog blend amount for a corrected distance:
// 0 at the eye, 1 at fogMaxDist and beyond, monotonic non-decreasing
// in between. Farther never gets brighter.
func FogFactor(dist float64) float64 {
	if dist <= 0 {
		return 0
	}
	return clamp01(dist / fogMaxDist)
}

// ApplyFog blends c toward the fog colour by FogFactor(dist).
func ApplyFog(c color.RGBA, dist float64) color.RGBA {
	f := FogFactor(dist)
	if f <= 0 {
		return c
	}
	inv := 1 - f
	return color.RGBA{
		R: uint8(float64(c.R)*inv + float64(fogColor.R)*f),
		G: uint8(float64(c.G)*inv + float64(fogColor.G)*f),
		B: uint8(float64(c.B)*inv + float64(fogColor.B)*f),
		A: 255,
	}
}
