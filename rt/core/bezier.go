package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Cubic Bézier utilities for the autopilot flight path. These live outside
// the marching core; the camera only ever consumes the evaluated position.

// CurvePoint evaluates a cubic Bézier with control points p at t in [0, 1].
func CurvePoint(p [4]mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	uu := u * u
	tt := t * t
	return p[0].Mul(uu * u).
		Add(p[1].Mul(3 * uu * t)).
		Add(p[2].Mul(3 * u * tt)).
		Add(p[3].Mul(tt * t))
}

// CurveTangent returns the normalized derivative of the curve at t.
func CurveTangent(p [4]mgl32.Vec3, t float32) mgl32.Vec3 {
	u := 1 - t
	uu := u * u
	tt := t * t
	tangent := p[0].Mul(-3 * uu).
		Add(p[1].Mul(3*uu - 6*u*t)).
		Add(p[2].Mul(6*u*t - 3*tt)).
		Add(p[3].Mul(3 * tt))
	return tangent.Normalize()
}

// Monotonic easing remaps for the autopilot time parameter.

func EaseInOutCubic(t float32) float32 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

func EaseInOutQuint(t float32) float32 {
	if t < 0.5 {
		return 16 * t * t * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f*f*f/2
}

func EaseInOutSine(t float32) float32 {
	return -(cosf(3.14159265*t) - 1) / 2
}
