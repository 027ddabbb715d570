package blackhole

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/blackhole/rt/core"
)

// Procedural fallbacks for running without an asset directory: a hashed
// starfield skybox and a blackbody-ish disk ramp. Both are deterministic
// for a given seed so frames are reproducible.

func (server *AssetServer) CreateStarfield(faceSize int, seed uint64) AssetId {
	id := makeAssetId()

	var faces [6]*core.Bitmap
	for f := 0; f < 6; f++ {
		bm := core.NewBitmap(faceSize, faceSize)
		for y := 0; y < faceSize; y++ {
			for x := 0; x < faceSize; x++ {
				h := pixelHash(seed, uint64(f), uint64(x), uint64(y))
				// Roughly one star per 600 texels.
				if h%601 == 0 {
					brightness := 0.3 + float32((h>>32)%700)/1000.0
					tint := float32((h>>44)%200) / 1000.0
					bm.Set(x, y, mgl32.Vec3{
						brightness,
						brightness,
						brightness + tint,
					})
				}
			}
		}
		faces[f] = bm
	}

	cm, err := core.NewCubemap(faces)
	if err != nil {
		// All faces share one size; the constructor cannot object.
		panic(err)
	}
	server.cubemaps[id] = cm
	return id
}

// CreateThermalRamp builds the disk color lookup: white-hot at the inner
// edge cooling through orange to deep red at the rim.
func (server *AssetServer) CreateThermalRamp(steps int) AssetId {
	if steps < 2 {
		steps = 2
	}
	id := makeAssetId()

	colors := make([]mgl32.Vec3, steps)
	for i := range colors {
		t := float32(i) / float32(steps-1)
		colors[i] = mgl32.Vec3{
			1,
			0.85 - 0.65*t,
			0.6 - 0.55*t,
		}
	}
	server.ramps[id] = core.NewColorRamp(colors)
	return id
}

// pixelHash is splitmix64 over the packed pixel address.
func pixelHash(seed, face, x, y uint64) uint64 {
	z := seed ^ (face << 40) ^ (y << 20) ^ x
	z += 0x9e3779b97f4a7c15
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}
