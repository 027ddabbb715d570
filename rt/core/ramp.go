package core

import (
	"image"

	"github.com/go-gl/mathgl/mgl32"
)

// ColorRamp is a 1D lookup keyed by normalized disk radius: 0 at the hole,
// 1 at the outer edge. Inner entries are hot and blue-white, outer entries
// cool and red.
type ColorRamp struct {
	colors []mgl32.Vec3
}

func NewColorRamp(colors []mgl32.Vec3) *ColorRamp {
	if len(colors) == 0 {
		colors = []mgl32.Vec3{{1, 1, 1}}
	}
	return &ColorRamp{colors: colors}
}

// RampFromImage reads the middle scanline of an image as ramp entries, so a
// thin 2D color map texture works as-is.
func RampFromImage(img image.Image) *ColorRamp {
	bounds := img.Bounds()
	y := bounds.Min.Y + bounds.Dy()/2
	colors := make([]mgl32.Vec3, 0, bounds.Dx())
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		r, g, b, _ := img.At(x, y).RGBA()
		colors = append(colors, mgl32.Vec3{
			float32(r) / 0xffff,
			float32(g) / 0xffff,
			float32(b) / 0xffff,
		})
	}
	return NewColorRamp(colors)
}

// Sample linearly interpolates the ramp at t in [0, 1], clamping outside.
func (r *ColorRamp) Sample(t float32) mgl32.Vec3 {
	if len(r.colors) == 1 {
		return r.colors[0]
	}
	f := clampf(t, 0, 1) * float32(len(r.colors)-1)
	i := int(f)
	if i >= len(r.colors)-1 {
		return r.colors[len(r.colors)-1]
	}
	frac := f - float32(i)
	return r.colors[i].Mul(1 - frac).Add(r.colors[i+1].Mul(frac))
}
