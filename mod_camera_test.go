package blackhole

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/gekko3d/blackhole/rt/core"
)

func TestCameraViewKeysAreExclusive(t *testing.T) {
	rig := &CameraRig{FovScale: 1}
	input := &Input{WindowWidth: 100, WindowHeight: 100}
	clock := &Time{}

	input.JustPressed[Key1] = true
	cameraSystem(rig, input, clock)
	assert.True(t, rig.FrontView)

	input.JustPressed[Key1] = false
	input.JustPressed[Key2] = true
	cameraSystem(rig, input, clock)
	assert.True(t, rig.TopView)
	assert.False(t, rig.FrontView, "top view must clear front view")
}

func TestCameraAutopilotFlight(t *testing.T) {
	rig := &CameraRig{FovScale: 1}
	input := &Input{WindowWidth: 100, WindowHeight: 100}
	clock := &Time{Elapsed: 5}

	input.JustPressed[KeyC] = true
	cameraSystem(rig, input, clock)
	assert.True(t, rig.AutopilotActive)
	assert.Equal(t, autopilotPath[0], rig.State.Position, "flight starts at the first control point")

	input.JustPressed[KeyC] = false
	clock.Elapsed = 5 + autopilotDuration/2
	cameraSystem(rig, input, clock)
	assert.True(t, rig.AutopilotActive)
	assert.NotEqual(t, autopilotPath[0], rig.State.Position)

	clock.Elapsed = 5 + autopilotDuration + 1
	cameraSystem(rig, input, clock)
	assert.False(t, rig.AutopilotActive, "flight ends after its duration")
}

func TestCameraFovClamped(t *testing.T) {
	rig := &CameraRig{FovScale: 1}
	input := &Input{WindowWidth: 100, WindowHeight: 100}
	clock := &Time{Dt: time.Second}

	input.Pressed[KeyUp] = true
	for i := 0; i < 50; i++ {
		cameraSystem(rig, input, clock)
	}
	assert.GreaterOrEqual(t, rig.FovScale, float32(0.2))

	input.Pressed[KeyUp] = false
	input.Pressed[KeyDown] = true
	for i := 0; i < 50; i++ {
		cameraSystem(rig, input, clock)
	}
	assert.LessOrEqual(t, rig.FovScale, float32(3.0))
}

func TestCameraDefaultOrbit(t *testing.T) {
	rig := &CameraRig{FovScale: 1}
	input := &Input{WindowWidth: 100, WindowHeight: 100}

	cameraSystem(rig, input, &Time{Elapsed: 0})
	first := rig.State.Position
	cameraSystem(rig, input, &Time{Elapsed: 10})
	assert.NotEqual(t, first, rig.State.Position, "idle camera should orbit")

	want := core.ComputeCamera(core.CameraInput{
		Time: 10, Width: 100, Height: 100, FovScale: 1,
	})
	assert.Equal(t, want.Position, rig.State.Position)
}
