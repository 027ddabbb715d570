package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMarchRadialRayAbsorbed(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.AccretionDiskEnabled = false
	res := march(cfg, testRamp(), mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, 0)
	if !res.absorbed {
		t.Fatal("radial infalling ray was not absorbed")
	}
	if res.color != (mgl32.Vec3{}) {
		t.Fatalf("absorbed ray with disk off accumulated %v", res.color)
	}
}

func TestAbsorbedRayIgnoresBackground(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.AccretionDiskEnabled = false
	env := &SolidEnvironment{Color: mgl32.Vec3{1, 1, 1}}
	c := TraceColor(cfg, env, testRamp(), mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, -1}, 0)
	if c != (mgl32.Vec3{}) {
		t.Fatalf("horizon ray picked up background: %v", c)
	}
}

func TestMarchWithoutLensingKeepsDirection(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.GravitationalLensing = false
	cfg.AccretionDiskEnabled = false
	dir := mgl32.Vec3{0.6, 0.48, 0.64}.Normalize()
	res := march(cfg, testRamp(), mgl32.Vec3{0, 3, 20}, dir, 0)
	want := dir.Mul(StepSize)
	if !res.dir.ApproxEqual(want) {
		t.Fatalf("flat-space direction drifted: got %v, want %v", res.dir, want)
	}
}

func TestImmediateEscapeReturnsBackground(t *testing.T) {
	cfg := DefaultRenderConfig()
	env := &SolidEnvironment{Color: mgl32.Vec3{0.2, 0.4, 0.6}}
	// Already past the bailout radius and outbound: the first iteration
	// breaks and only the background sample remains at full alpha.
	c := TraceColor(cfg, env, testRamp(), mgl32.Vec3{0, 0, 40}, mgl32.Vec3{0, 0, 1}, 0)
	if c != env.Color {
		t.Fatalf("escape ray = %v, want plain background %v", c, env.Color)
	}
}

func TestBackgroundYawLeavesColorMagnitude(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.GravitationalLensing = false
	cfg.AccretionDiskEnabled = false
	cfg.BackgroundYawRate = 0.7
	env := &SolidEnvironment{Color: mgl32.Vec3{0.5, 0.5, 0.5}}
	c := TraceColor(cfg, env, testRamp(), mgl32.Vec3{0, 3, 20}, mgl32.Vec3{1, 0, 0}, 3.0)
	// A solid environment is rotation invariant.
	if c != env.Color {
		t.Fatalf("yawed solid background changed: %v", c)
	}
}

func TestTraceTangentialRayReachesBackground(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.AccretionDiskEnabled = false
	env := &SolidEnvironment{Color: mgl32.Vec3{1, 1, 1}}
	// Large impact parameter: bends a little, never falls in.
	c := TraceColor(cfg, env, testRamp(), mgl32.Vec3{-20, 8, 0}, mgl32.Vec3{1, 0, 0}, 0)
	if c == (mgl32.Vec3{}) {
		t.Fatal("wide ray swallowed by the hole")
	}
}
