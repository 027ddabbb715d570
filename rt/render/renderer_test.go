package render

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/blackhole/rt/core"
)

func testScene() Scene {
	return Scene{
		Env: core.SolidEnvironment{Color: mgl32.Vec3{1, 1, 1}},
		Ramp: core.NewColorRamp([]mgl32.Vec3{
			{1, 0.3, 0.1},
			{1, 0.9, 0.5},
		}),
	}
}

func TestRenderFrameProducesFiniteImage(t *testing.T) {
	r := New(48, 32, 4)
	cam := core.ComputeCamera(core.CameraInput{
		Width: 48, Height: 32,
		FrontView: true,
		FovScale:  1,
	})

	frame := r.RenderFrame(core.DefaultRenderConfig(), testScene(), cam, 1.0)

	var maxLum float32
	nonBlack := false
	for _, c := range frame.Pix {
		for i := 0; i < 3; i++ {
			if math.IsNaN(float64(c[i])) || math.IsInf(float64(c[i]), 0) {
				t.Fatalf("non-finite pixel %v", c)
			}
		}
		if c != (mgl32.Vec3{}) {
			nonBlack = true
		}
		lum := 0.2126*c.X() + 0.7152*c.Y() + 0.0722*c.Z()
		if lum > maxLum {
			maxLum = lum
		}
	}
	if !nonBlack {
		t.Fatal("frame is entirely black")
	}
	if maxLum >= 10000 {
		t.Fatalf("runaway luminance %v", maxLum)
	}
}

func TestRenderFrameShowsHorizonShadow(t *testing.T) {
	cfg := core.DefaultRenderConfig()
	cfg.AccretionDiskEnabled = false
	r := New(33, 33, 2)
	cam := core.ComputeCamera(core.CameraInput{
		Width: 33, Height: 33,
		FrontView: true,
		FovScale:  1,
	})

	frame := r.RenderFrame(cfg, testScene(), cam, 0)
	// The camera looks straight at the hole; the center pixel must fall in.
	if c := frame.At(16, 16); c != (mgl32.Vec3{}) {
		t.Fatalf("no shadow at frame center, pixel %v", c)
	}
	// Corners clear the photon region and keep the background.
	if c := frame.At(0, 0); c == (mgl32.Vec3{}) {
		t.Fatal("corner pixel swallowed")
	}
}

func TestRenderFrameAllOffIsBackgroundOrShadow(t *testing.T) {
	cfg := core.RenderConfig{}
	bg := mgl32.Vec3{0.25, 0.5, 0.75}
	scene := Scene{
		Env:  core.SolidEnvironment{Color: bg},
		Ramp: core.NewColorRamp(nil),
	}
	r := New(16, 16, 1)
	cam := core.ComputeCamera(core.CameraInput{
		Width: 16, Height: 16,
		FrontView: true,
		FovScale:  1,
	})

	frame := r.RenderFrame(cfg, scene, cam, 0)
	// With lensing and the disk both off, rays travel straight: each
	// pixel is exactly the background, or exactly black where the ray
	// crossed the horizon.
	for i, c := range frame.Pix {
		if c != bg && c != (mgl32.Vec3{}) {
			t.Fatalf("pixel %d = %v, want background or shadow", i, c)
		}
	}
}

func TestRendererDoubleBuffering(t *testing.T) {
	r := New(8, 8, 1)
	cam := core.ComputeCamera(core.CameraInput{Width: 8, Height: 8, FrontView: true, FovScale: 1})

	first := r.RenderFrame(core.DefaultRenderConfig(), testScene(), cam, 0)
	if r.Front() != first {
		t.Fatal("published frame is not the front buffer")
	}
	second := r.RenderFrame(core.DefaultRenderConfig(), testScene(), cam, 0.5)
	if first == second {
		t.Fatal("both frames share one buffer")
	}
	if r.Front() != second {
		t.Fatal("front buffer not swapped")
	}
}

func TestRendererResize(t *testing.T) {
	r := New(8, 8, 1)
	r.Resize(12, 6)
	if f := r.Front(); f.W != 12 || f.H != 6 {
		t.Fatalf("front buffer %dx%d after resize", f.W, f.H)
	}
}
