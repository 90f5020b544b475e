package game

import (
	"image/color"
	"math"
	"testing"
)

func TestFogFactor_Endpoints(t *testing.T) {
	if f := FogFactor(0); f != 0 {
		t.Fatalf("fog at zero distance = %v, want 0", f)
	}
	if f := FogFactor(fogMaxDist); f != 1 {
		t.Fatalf("fog at max distance = %v, want 1", f)
	}
	if f := FogFactor(fogMaxDist * 3); f != 1 {
		t.Fatalf("fog beyond max = %v, want 1", f)
	}
	if f := FogFactor(-2); f != 0 {
		t.Fatalf("fog at negative distance = %v, want 0", f)
	}
}

func TestFogFactor_Monotonic(t *testing.T) {
	prev := -1.0
	for d := 0.0; d < fogMaxDist*1.5; d += 0.1 {
		f := FogFactor(d)
		if f < prev {
			t.Fatalf("fog decreased: f(%v)=%v after %v", d, f, prev)
		}
		prev = f
	}
}

func TestApplyFog_FullFogIsFogColor(t *testing.T) {
	c := ApplyFog(color.RGBA{R: 250, G: 250, B: 250, A: 255}, fogMaxDist)
	if c.R != fogColor.R || c.G != fogColor.G || c.B != fogColor.B {
		t.Fatalf("fully fogged pixel = %+v, want fog colour %+v", c, fogColor)
	}
}

func TestApplyFog_ZeroDistanceUntouched(t *testing.T) {
	in := color.RGBA{R: 12, G: 99, B: 200, A: 255}
	if out := ApplyFog(in, 0); out != in {
		t.Fatalf("unfogged pixel changed: %+v -> %+v", in, out)
	}
}

func TestFramebuffer_ClearResetsDepthAndAlpha(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	fb.SetPixelDepth(3, 3, color.RGBA{R: 255}, 2.0)
	fb.Clear()
	if !math.IsInf(fb.DepthAt(3, 3), 1) {
		t.Fatal("Clear must reset depth to infinity")
	}
	i := (3*8 + 3) * 4
	if fb.Pix[i] != 0 || fb.Pix[i+3] != 255 {
		t.Fatalf("cleared pixel = %v, want black opaque", fb.Pix[i:i+4])
	}
}

func TestFramebuffer_DepthTest(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	if !fb.SetPixelDepth(1, 1, color.RGBA{R: 10}, 5.0) {
		t.Fatal("first write against infinite depth must pass")
	}
	if fb.SetPixelDepth(1, 1, color.RGBA{R: 20}, 6.0) {
		t.Fatal("farther write must be rejected")
	}
	if !fb.SetPixelDepth(1, 1, color.RGBA{R: 30}, 3.0) {
		t.Fatal("nearer write must pass")
	}
	if fb.DepthAt(1, 1) != 3.0 {
		t.Fatalf("depth = %v, want 3.0", fb.DepthAt(1, 1))
	}
	if fb.Pix[(1*4+1)*4] != 30 {
		t.Fatal("nearer colour did not land")
	}
}

func TestFramebuffer_EqualDepthRejected(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixelDepth(0, 0, color.RGBA{R: 10}, 4.0)
	if fb.SetPixelDepth(0, 0, color.RGBA{R: 99}, 4.0) {
		t.Fatal("equal depth must not overdraw")
	}
}

func TestFramebuffer_OutOfBoundsWritesIgnored(t *testing.T) {
	fb := NewFramebuffer(2, 2)
	fb.SetPixel(-1, 0, color.RGBA{R: 1})
	fb.SetPixel(0, 5, color.RGBA{R: 1})
	if fb.SetPixelDepth(2, 0, color.RGBA{R: 1}, 1) {
		t.Fatal("out-of-bounds depth write must report false")
	}
	if !math.IsInf(fb.DepthAt(-3, 0), 1) {
		t.Fatal("out-of-bounds depth read must be infinite")
	}
}
