package core

// Schwarzschild radius of the hole is normalized to 1 world unit; every
// other constant below is expressed in those units.
const (
	// HorizonRadiusSq is the squared radius below which a ray is absorbed.
	HorizonRadiusSq float32 = 1.0

	// EscapeRadiusSq is the squared bailout radius. A ray beyond it that is
	// also moving away from the origin can no longer be bent back, so the
	// march stops early and only the background sample remains.
	EscapeRadiusSq float32 = 900.0

	// StepSize scales the ray direction once before marching. Directions are
	// kept pre-scaled instead of unit length to save a multiply per step.
	StepSize float32 = 0.1

	// DiskInnerRadius marks the innermost stable circular orbit; density is
	// tapered to zero below it. DiskOuterRadius bounds the disk support.
	DiskInnerRadius float32 = 2.6
	DiskOuterRadius float32 = 12.0

	// DiskGain lifts raw disk density into the same range as the bloom
	// threshold downstream. Tuned against the post chain, not physical.
	DiskGain float32 = 16000.0

	// densityEpsilon is the cutoff under which a disk sample is skipped
	// before any noise evaluation is paid for.
	densityEpsilon float32 = 0.001

	// maxNoiseOctaves caps the multiplicative noise accumulation regardless
	// of what the control surface asks for.
	maxNoiseOctaves = 4
)

// Step budget tiers. Rays that start far from the hole bend little and
// tolerate coarse stepping; near-field rays get the full budget. The
// thresholds are squared start distances.
const (
	stepsNear = 320
	stepsMid  = 240
	stepsFar  = 160

	nearFieldRadiusSq float32 = 400.0
	farFieldRadiusSq  float32 = 800.0
)

// RenderConfig is the full per-frame parameter set of the tracer. It is
// passed by value: a frame owns an immutable copy, so mid-frame edits from
// the control surface never race the pixel workers.
type RenderConfig struct {
	GravitationalLensing bool
	AccretionDiskEnabled bool
	ParticleModeEnabled  bool

	DiskHeight            float32 // half height of the disk slab, 0..1
	DiskDensityVertical   float32 // vertical falloff exponent, 0..10
	DiskDensityHorizontal float32 // radial falloff exponent, 0..10
	DiskBrightness        float32 // emission gain, 0..4

	NoiseOctaves int     // requested octaves, 1..12, capped internally
	NoiseScale   float32 // noise frequency multiplier, 0..10

	DiskRotationSpeed float32 // azimuthal drift per second, 0..1

	// BackgroundYawRate rotates the environment around the vertical axis
	// over time. Zero leaves the final ray direction untouched.
	BackgroundYawRate float32
}

// DefaultRenderConfig mirrors the tuning the visualizer ships with.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		GravitationalLensing:  true,
		AccretionDiskEnabled:  true,
		ParticleModeEnabled:   true,
		DiskHeight:            0.55,
		DiskDensityVertical:   2.0,
		DiskDensityHorizontal: 4.0,
		DiskBrightness:        0.25,
		NoiseOctaves:          5,
		NoiseScale:            0.8,
		DiskRotationSpeed:     0.5,
		BackgroundYawRate:     0,
	}
}

// Clamped returns a copy with every parameter forced into its documented
// range. The tracer itself never validates; the control surface calls this
// once per frame instead.
func (c RenderConfig) Clamped() RenderConfig {
	c.DiskHeight = clampf(c.DiskHeight, 0, 1)
	c.DiskDensityVertical = clampf(c.DiskDensityVertical, 0, 10)
	c.DiskDensityHorizontal = clampf(c.DiskDensityHorizontal, 0, 10)
	c.DiskBrightness = clampf(c.DiskBrightness, 0, 4)
	if c.NoiseOctaves < 1 {
		c.NoiseOctaves = 1
	}
	if c.NoiseOctaves > 12 {
		c.NoiseOctaves = 12
	}
	c.NoiseScale = clampf(c.NoiseScale, 0, 10)
	c.DiskRotationSpeed = clampf(c.DiskRotationSpeed, 0, 1)
	return c
}

// StepBudget picks the iteration cap for a ray from its squared start
// distance. Any tiering that keeps near-field rays well resolved works;
// these tiers trade tail accuracy on far rays for frame time.
func StepBudget(startDistSq float32) int {
	switch {
	case startDistSq > farFieldRadiusSq:
		return stepsFar
	case startDistSq > nearFieldRadiusSq:
		return stepsMid
	default:
		return stepsNear
	}
}
