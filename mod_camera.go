package blackhole

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/blackhole/rt/core"
)

// autopilotDuration is the flight time over the full approach curve.
const autopilotDuration = 18.0

// autopilotPath swings wide around the hole, dives through the disk plane
// and settles just above the horizon shadow.
var autopilotPath = [4]mgl32.Vec3{
	{25, 12, 25},
	{-15, 8, 20},
	{12, 3, 8},
	{0, 1, 5},
}

// CameraRig is the persistent camera control state. The per-frame result
// of resolving it lives in State.
type CameraRig struct {
	FrontView bool
	TopView   bool

	AutopilotActive bool
	autopilotStart  float64

	RollDegrees float32
	FovScale    float32

	State core.CameraState
}

type CameraModule struct{}

func (m CameraModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&CameraRig{FovScale: 1})
	app.UseSystem(
		System(cameraSystem).InStage(PostUpdate),
	)
}

func cameraSystem(rig *CameraRig, input *Input, t *Time) {
	if input.JustPressed[KeyC] {
		rig.AutopilotActive = !rig.AutopilotActive
		rig.autopilotStart = t.Elapsed
	}
	if input.JustPressed[Key1] {
		rig.FrontView = !rig.FrontView
		rig.TopView = false
	}
	if input.JustPressed[Key2] {
		rig.TopView = !rig.TopView
		rig.FrontView = false
	}

	dt := float32(t.Dt.Seconds())
	if input.Pressed[KeyLeft] {
		rig.RollDegrees -= 45 * dt
	}
	if input.Pressed[KeyRight] {
		rig.RollDegrees += 45 * dt
	}
	if input.Pressed[KeyUp] {
		rig.FovScale *= 1 - 0.5*dt
	}
	if input.Pressed[KeyDown] {
		rig.FovScale *= 1 + 0.5*dt
	}
	if rig.FovScale < 0.2 {
		rig.FovScale = 0.2
	}
	if rig.FovScale > 3 {
		rig.FovScale = 3
	}

	in := core.CameraInput{
		Time:           t.Elapsed,
		Width:          input.WindowWidth,
		Height:         input.WindowHeight,
		PointerX:       float32(input.MouseX),
		PointerY:       float32(input.MouseY),
		PointerControl: input.Pressed[MouseButtonLeft],
		FrontView:      rig.FrontView,
		TopView:        rig.TopView,
		RollDegrees:    rig.RollDegrees,
		FovScale:       rig.FovScale,
	}

	if rig.AutopilotActive {
		u := float32((t.Elapsed - rig.autopilotStart) / autopilotDuration)
		if u >= 1 {
			rig.AutopilotActive = false
		} else {
			in.AutopilotActive = true
			in.AutopilotPos = core.CurvePoint(autopilotPath, core.EaseInOutCubic(u))
		}
	}

	rig.State = core.ComputeCamera(in)
}
