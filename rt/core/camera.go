package core

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// CameraInput is the per-frame control state the camera positioning reads.
// Mode flags are evaluated in a fixed priority order, so exactly one
// positioning branch runs per frame: autopilot, pointer, front, top, then
// the ambient idle orbit.
type CameraInput struct {
	Time          float64
	Width, Height int

	PointerX, PointerY float32
	PointerControl     bool

	FrontView bool
	TopView   bool

	AutopilotActive bool
	AutopilotPos    mgl32.Vec3

	RollDegrees float32
	FovScale    float32
}

// CameraState is the resolved camera for one frame. Position and basis are
// consumed by the per-pixel ray generator; the matrices are for external
// consumers that rasterize on top of the traced image.
type CameraState struct {
	Position mgl32.Vec3
	Target   mgl32.Vec3
	Roll     float32 // radians
	FovScale float32

	View       mgl32.Mat4
	Projection mgl32.Mat4

	forward mgl32.Vec3
	right   mgl32.Vec3
	up      mgl32.Vec3
}

// orbit geometry shared by the pointer and idle modes.
const (
	orbitRadius    float32 = 15.0
	pointerAzSpan  float32 = 10.0
	pointerElSpan  float32 = 30.0
	idleOrbitSpeed         = 0.1
)

// Fixed viewpoints.
var (
	frontViewPos = mgl32.Vec3{10, 1, 10}
	topViewPos   = mgl32.Vec3{15, 15, 0}
)

// ComputeCamera resolves the camera mode machine for one frame. It is a
// pure function of its input; there is no cross-frame camera state.
func ComputeCamera(in CameraInput) CameraState {
	cs := CameraState{
		FovScale: in.FovScale,
		Roll:     mgl32.DegToRad(in.RollDegrees),
	}
	if cs.FovScale <= 0 {
		cs.FovScale = 1
	}

	switch {
	case in.AutopilotActive:
		cs.Position = in.AutopilotPos
	case in.PointerControl:
		mx := clampf(in.PointerX/float32(in.Width), 0, 1) - 0.5
		my := clampf(in.PointerY/float32(in.Height), 0, 1) - 0.5
		cs.Position = mgl32.Vec3{
			-cosf(mx*pointerAzSpan) * orbitRadius,
			my * pointerElSpan,
			sinf(mx*pointerAzSpan) * orbitRadius,
		}
	case in.FrontView:
		cs.Position = frontViewPos
	case in.TopView:
		cs.Position = topViewPos
	default:
		t := float32(in.Time * idleOrbitSpeed)
		cs.Position = mgl32.Vec3{
			-cosf(t) * orbitRadius,
			sinf(t) * orbitRadius,
			sinf(t) * orbitRadius,
		}
	}

	cs.Target = mgl32.Vec3{}

	// Roll rotates the up reference in the camera's local XY plane rather
	// than the world frame; that is what makes the autopilot bank.
	rolledUp := mgl32.Vec3{sinf(cs.Roll), cosf(cs.Roll), 0}.Normalize()

	cs.forward = cs.Target.Sub(cs.Position).Normalize()
	cs.right = cs.forward.Cross(rolledUp).Normalize()
	cs.up = cs.right.Cross(cs.forward)

	aspect := float32(1)
	if in.Width > 0 && in.Height > 0 {
		aspect = float32(in.Width) / float32(in.Height)
	}
	fovY := 2 * float32(math.Atan(0.5*float64(cs.FovScale)))
	cs.View = mgl32.LookAtV(cs.Position, cs.Target, rolledUp)
	cs.Projection = mgl32.Perspective(fovY, aspect, 0.1, 500.0)

	return cs
}

// Ray produces a world-space camera ray for screen coordinates expressed in
// the height-normalized convention: v spans [-0.5, 0.5] bottom to top and u
// spans the same scale horizontally. FovScale multiplies the projected
// offset directly, so there is no per-pixel trigonometry.
func (cs *CameraState) Ray(u, v float32) (origin, dir mgl32.Vec3) {
	dir = cs.forward.
		Add(cs.right.Mul(u * cs.FovScale)).
		Add(cs.up.Mul(v * cs.FovScale)).
		Normalize()
	return cs.Position, dir
}
