package post

import (
	"image"
	"image/color"
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/blackhole/rt/render"
)

// Chain is the fixed-order post stack: bloom extraction, composite,
// optional tonemap, gamma. The zero value is unusable; construct with
// NewChain.
type Chain struct {
	BloomLevels    int
	BloomCutoff    float32
	BloomStrength  float32
	TonemapEnabled bool
	Gamma          float32
}

// NewChain returns the stock tuning. Bloom picks up pixels past 1.0, the
// pyramid goes five levels deep, and the blur is mixed back in at a tenth.
func NewChain() *Chain {
	return &Chain{
		BloomLevels:    5,
		BloomCutoff:    1.0,
		BloomStrength:  0.1,
		TonemapEnabled: true,
		Gamma:          2.5,
	}
}

// Process composites bloom over the HDR frame and returns a new frame with
// range reduction applied. The input frame is not modified.
func (c *Chain) Process(src *render.Frame) *render.Frame {
	glow := bloom(src, c.BloomLevels, c.BloomCutoff)

	out := render.NewFrame(src.W, src.H)
	for i := range src.Pix {
		v := src.Pix[i].Add(glow.Pix[i].Mul(c.BloomStrength))
		if c.TonemapEnabled {
			v = tonemap(v)
		}
		out.Pix[i] = gammaEncode(v, c.Gamma)
	}
	return out
}

// ToRGBA runs the chain and packs the result into an 8-bit image, ready
// for the surface blit or a PNG encoder.
func (c *Chain) ToRGBA(src *render.Frame) *image.RGBA {
	processed := c.Process(src)
	img := image.NewRGBA(image.Rect(0, 0, processed.W, processed.H))
	for y := 0; y < processed.H; y++ {
		for x := 0; x < processed.W; x++ {
			p := processed.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: packChannel(p.X()),
				G: packChannel(p.Y()),
				B: packChannel(p.Z()),
				A: 0xff,
			})
		}
	}
	return img
}

// tonemap compresses unbounded radiance into [0, 1) per channel.
func tonemap(c mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		c.X() / (1 + c.X()),
		c.Y() / (1 + c.Y()),
		c.Z() / (1 + c.Z()),
	}
}

func gammaEncode(c mgl32.Vec3, gamma float32) mgl32.Vec3 {
	inv := 1 / float64(gamma)
	enc := func(v float32) float32 {
		if v <= 0 {
			return 0
		}
		return float32(math.Pow(float64(v), inv))
	}
	return mgl32.Vec3{enc(c.X()), enc(c.Y()), enc(c.Z())}
}

func packChannel(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
