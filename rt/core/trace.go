package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// marchResult carries everything a trace produced besides the accumulated
// color: the final (step-scaled) direction for the background lookup and
// whether the ray ended inside the horizon.
type marchResult struct {
	color    mgl32.Vec3
	alpha    float32
	dir      mgl32.Vec3
	absorbed bool
}

// march advances one ray through the field until absorption, escape, or
// step budget exhaustion. Pure function of its arguments; every piece of
// per-step state lives on the stack.
func march(cfg RenderConfig, ramp *ColorRamp, origin, dir mgl32.Vec3, time float32) marchResult {
	res := marchResult{alpha: 1.0}

	// h² comes from the unscaled direction; the step scaling below would
	// otherwise leak into the conserved quantity.
	h2 := SpecificAngularMomentumSq(origin, dir)

	step := dir.Mul(StepSize)
	pos := origin

	for i, budget := 0, StepBudget(origin.Dot(origin)); i < budget; i++ {
		if cfg.GravitationalLensing {
			step = step.Add(BendingAccel(h2, pos))
		}
		if CrossedHorizon(pos) {
			res.dir = step
			res.absorbed = true
			return res
		}
		if Escaped(pos, step) {
			break
		}
		if cfg.AccretionDiskEnabled {
			DiskColor(cfg, ramp, pos, time, &res.color, &res.alpha)
		}
		pos = pos.Add(step)
	}

	res.dir = step
	return res
}

// TraceColor marches a single camera ray and returns its HDR radiance. The
// initial direction should be unit length; it is pre-scaled by StepSize
// internally. The returned color is unclamped and may exceed 1 per channel;
// the post chain owns range reduction.
func TraceColor(cfg RenderConfig, env Environment, ramp *ColorRamp, origin, dir mgl32.Vec3, time float32) mgl32.Vec3 {
	res := march(cfg, ramp, origin, dir, time)
	if res.absorbed {
		// Light inside the horizon never reaches the background.
		return res.color
	}

	bgDir := res.dir
	if cfg.BackgroundYawRate != 0 {
		bgDir = RotateY(bgDir, time*cfg.BackgroundYawRate)
	}
	return res.color.Add(env.Sample(bgDir).Mul(res.alpha))
}
