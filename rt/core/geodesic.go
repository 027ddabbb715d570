package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// SpecificAngularMomentumSq derives the conserved quantity h² of a ray from
// its initial position and (unscaled) direction. Conservation is enforced by
// construction: the value is computed once and reused for the whole march.
func SpecificAngularMomentumSq(pos, dir mgl32.Vec3) float32 {
	h := pos.Cross(dir)
	return h.Dot(h)
}

// BendingAccel is the first-order approximation of null-geodesic bending,
//
//	a = -1.5 h² p / |p|⁵
//
// valid in the weak-to-moderate field regime. It is applied to the ray
// direction once per step before the position advances.
func BendingAccel(h2 float32, pos mgl32.Vec3) mgl32.Vec3 {
	r2 := pos.Dot(pos)
	r5 := r2 * r2 * sqrtf(r2)
	return pos.Mul(-1.5 * h2 / r5)
}

// CrossedHorizon reports whether the ray has fallen inside the event
// horizon. The check runs before any density evaluation, which is also what
// keeps the 1/r⁵ term in BendingAccel away from the singularity.
func CrossedHorizon(pos mgl32.Vec3) bool {
	return pos.Dot(pos) < HorizonRadiusSq
}

// Escaped reports whether the ray is outside the bailout radius and still
// receding; such a ray cannot be bent back and only the background sample
// remains to be taken.
func Escaped(pos, dir mgl32.Vec3) bool {
	return pos.Dot(pos) > EscapeRadiusSq && pos.Dot(dir) > 0
}
