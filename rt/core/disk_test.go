package core

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func testRamp() *ColorRamp {
	return NewColorRamp([]mgl32.Vec3{
		{1, 0.2, 0.05},
		{1, 0.8, 0.3},
		{0.9, 0.9, 1},
	})
}

func sampleDisk(t *testing.T, cfg RenderConfig, pos mgl32.Vec3) (mgl32.Vec3, float32) {
	t.Helper()
	var color mgl32.Vec3
	alpha := float32(1)
	DiskColor(cfg, testRamp(), pos, 1.5, &color, &alpha)
	return color, alpha
}

func TestDiskRejectsOutsideSupport(t *testing.T) {
	cfg := DefaultRenderConfig()
	cases := []struct {
		name string
		pos  mgl32.Vec3
	}{
		{"beyond outer radius", mgl32.Vec3{DiskOuterRadius + 1, 0, 0}},
		{"above slab", mgl32.Vec3{6, cfg.DiskHeight * 2, 0}},
		{"below slab", mgl32.Vec3{6, -cfg.DiskHeight * 2, 0}},
		{"inside ISCO", mgl32.Vec3{DiskInnerRadius * 0.5, 0, 0}},
	}
	for _, tc := range cases {
		color, alpha := sampleDisk(t, cfg, tc.pos)
		if color != (mgl32.Vec3{}) || alpha != 1 {
			t.Errorf("%s: got color %v alpha %v, want untouched", tc.name, color, alpha)
		}
	}
}

func TestDiskEmitsInsideSupport(t *testing.T) {
	cfg := DefaultRenderConfig()
	// Midplane sample well inside the disk body. The noise product can be
	// arbitrarily small but the alpha attenuation does not depend on it.
	_, alpha := sampleDisk(t, cfg, mgl32.Vec3{5, 0, 0})
	if alpha >= 1 {
		t.Fatalf("midplane sample left alpha at %v", alpha)
	}
	if alpha <= 0 {
		t.Fatalf("single sample fully opaque, alpha %v", alpha)
	}
}

func TestDiskColorNonNegative(t *testing.T) {
	cfg := DefaultRenderConfig()
	for _, pos := range []mgl32.Vec3{
		{4, 0.1, 1}, {7, -0.2, -3}, {10, 0.3, 2}, {3, 0, 0},
	} {
		color, _ := sampleDisk(t, cfg, pos)
		for i := 0; i < 3; i++ {
			if color[i] < 0 {
				t.Fatalf("negative emission %v at %v", color, pos)
			}
		}
	}
}

func TestDiskDebugModeIsGreenOnly(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.ParticleModeEnabled = false
	color, alpha := sampleDisk(t, cfg, mgl32.Vec3{5, 0, 0})
	if color.X() != 0 || color.Z() != 0 {
		t.Fatalf("debug mode touched non-green channels: %v", color)
	}
	if color.Y() <= 0 {
		t.Fatalf("debug mode emitted nothing at a dense sample: %v", color)
	}
	if alpha != 1 {
		t.Fatalf("debug mode altered alpha: %v", alpha)
	}
}

func TestDiskZeroHeightIsInert(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.DiskHeight = 0
	color, alpha := sampleDisk(t, cfg, mgl32.Vec3{5, 0, 0})
	if color != (mgl32.Vec3{}) || alpha != 1 {
		t.Fatalf("zero-height disk still emitted: %v %v", color, alpha)
	}
}

func TestDiskISCOTaper(t *testing.T) {
	cfg := DefaultRenderConfig()
	cfg.ParticleModeEnabled = false // density-proportional output
	inner, _ := sampleDisk(t, cfg, mgl32.Vec3{DiskInnerRadius * 1.02, 0, 0})
	body, _ := sampleDisk(t, cfg, mgl32.Vec3{DiskInnerRadius * 1.2, 0, 0})
	if inner.Y() >= body.Y() {
		t.Fatalf("no taper at the inner edge: inner %v, body %v", inner.Y(), body.Y())
	}
}
