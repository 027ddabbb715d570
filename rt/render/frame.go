package render

import (
	"image"
	"image/color"

	"github.com/go-gl/mathgl/mgl32"
)

// Frame is an HDR render target. Pixels are linear radiance, row-major,
// top row first. Nothing in here is clamped; range reduction happens in
// the post chain.
type Frame struct {
	W, H int
	Pix  []mgl32.Vec3
}

func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]mgl32.Vec3, w*h)}
}

func (f *Frame) At(x, y int) mgl32.Vec3 {
	return f.Pix[y*f.W+x]
}

func (f *Frame) Set(x, y int, c mgl32.Vec3) {
	f.Pix[y*f.W+x] = c
}

// Clear zeroes the buffer in place.
func (f *Frame) Clear() {
	for i := range f.Pix {
		f.Pix[i] = mgl32.Vec3{}
	}
}

// ToRGBA clamps the frame into an 8-bit image. Intended for debugging and
// raw dumps; the tonemapped path lives in the post package.
func (f *Frame) ToRGBA() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	for y := 0; y < f.H; y++ {
		for x := 0; x < f.W; x++ {
			c := f.At(x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: channelByte(c.X()),
				G: channelByte(c.Y()),
				B: channelByte(c.Z()),
				A: 0xff,
			})
		}
	}
	return img
}

func channelByte(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 0xff
	}
	return uint8(v*255 + 0.5)
}
