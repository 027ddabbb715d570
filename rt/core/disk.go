package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// diskAbsorption converts a sample's geometric density into alpha loss.
// Stand-in for a real transmittance integral; tuned so the far side of the
// disk and the star field stay faintly visible through thin regions.
const diskAbsorption float32 = 0.1

// DiskColor evaluates the accretion disk at pos (disk frame, y up) and
// accumulates its radiance into color/alpha. The rejection chain is ordered
// cheapest-first so most samples exit before the noise octaves are paid
// for; reordering it changes performance, not output.
func DiskColor(cfg RenderConfig, ramp *ColorRamp, pos mgl32.Vec3, time float32, color *mgl32.Vec3, alpha *float32) {
	if cfg.DiskHeight <= 0 {
		return
	}
	planarSq := pos.X()*pos.X() + pos.Z()*pos.Z()
	if planarSq > DiskOuterRadius*DiskOuterRadius {
		return
	}
	height := absf(pos.Y())
	if height > cfg.DiskHeight {
		return
	}

	// Geometric density: 1 at the center of the slab, 0 at its edge.
	scaled := mgl32.Vec3{
		pos.X() / DiskOuterRadius,
		pos.Y() / cfg.DiskHeight,
		pos.Z() / DiskOuterRadius,
	}
	density := maxf(0, 1-scaled.Len())
	if density < densityEpsilon {
		return
	}

	density *= powf(1-height/cfg.DiskHeight, cfg.DiskDensityVertical)
	if density < densityEpsilon {
		return
	}

	// No stable orbits below the ISCO; taper instead of a hard cut so the
	// inner edge does not alias.
	radius := pos.Len()
	density *= smoothstep(DiskInnerRadius, DiskInnerRadius*1.1, radius)
	if density < densityEpsilon {
		return
	}

	occlusion := clampf(density, 0, 1)

	// Spherical-ish coordinates with the angles stretched so the noise
	// filaments read correctly at the default camera distance. Aesthetic
	// calibration, not geometry.
	azimuth := atan2f(pos.Z(), pos.X()) * 2.0
	colatitude := acosf(pos.Y()/radius) * 4.0

	density *= DiskGain / powf(radius, cfg.DiskDensityHorizontal)

	if !cfg.ParticleModeEnabled {
		// Density-only debug view.
		color[1] += density * 0.02
		return
	}

	octaves := cfg.NoiseOctaves
	if octaves > maxNoiseOctaves {
		octaves = maxNoiseOctaves
	}
	coord := mgl32.Vec3{radius, azimuth, colatitude}
	noise := float32(1.0)
	for i := 0; i < octaves; i++ {
		// Octaves multiply rather than sum: the product carves the smooth
		// field into sharp filaments, which is the whole look of the disk.
		noise *= 0.5*Noise3(coord.Mul(float32(i*i)*cfg.NoiseScale)) + 0.5
		if i%2 == 0 {
			coord[1] += time * cfg.DiskRotationSpeed
		} else {
			coord[1] -= time * cfg.DiskRotationSpeed
		}
	}

	dust := ramp.Sample(radius / DiskOuterRadius)
	contribution := density * cfg.DiskBrightness * *alpha * absf(noise)
	*color = color.Add(dust.Mul(contribution))
	*alpha *= 1 - occlusion*diskAbsorption
}
