package core

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// Environment supplies the background radiance a ray picks up after it has
// left the scene. Implementations must be safe for concurrent reads; the
// renderer samples them from every pixel worker at once.
type Environment interface {
	Sample(dir mgl32.Vec3) mgl32.Vec3
}

// SolidEnvironment returns one color regardless of direction. Mostly a test
// harness tool, also a sensible fallback when no skybox is available.
type SolidEnvironment struct {
	Color mgl32.Vec3
}

func (e SolidEnvironment) Sample(mgl32.Vec3) mgl32.Vec3 {
	return e.Color
}

// Cubemap face indices follow the GL convention.
const (
	FacePosX = iota
	FaceNegX
	FacePosY
	FaceNegY
	FacePosZ
	FaceNegZ
)

// Bitmap is a small HDR raster used for cubemap faces and lookup textures.
type Bitmap struct {
	W, H int
	Pix  []mgl32.Vec3
}

func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, Pix: make([]mgl32.Vec3, w*h)}
}

func (b *Bitmap) At(x, y int) mgl32.Vec3 {
	return b.Pix[y*b.W+x]
}

func (b *Bitmap) Set(x, y int, c mgl32.Vec3) {
	b.Pix[y*b.W+x] = c
}

// bilinear samples the bitmap at normalized (u, v) with edge clamping.
func (b *Bitmap) bilinear(u, v float32) mgl32.Vec3 {
	fx := clampf(u, 0, 1) * float32(b.W-1)
	fy := clampf(v, 0, 1) * float32(b.H-1)
	x0 := int(fx)
	y0 := int(fy)
	x1 := x0 + 1
	y1 := y0 + 1
	if x1 > b.W-1 {
		x1 = b.W - 1
	}
	if y1 > b.H-1 {
		y1 = b.H - 1
	}
	tx := fx - float32(x0)
	ty := fy - float32(y0)

	top := b.At(x0, y0).Mul(1 - tx).Add(b.At(x1, y0).Mul(tx))
	bot := b.At(x0, y1).Mul(1 - tx).Add(b.At(x1, y1).Mul(tx))
	return top.Mul(1 - ty).Add(bot.Mul(ty))
}

// Cubemap is a six-face seamless environment. All faces must be square and
// equally sized.
type Cubemap struct {
	Faces [6]*Bitmap
}

func NewCubemap(faces [6]*Bitmap) (*Cubemap, error) {
	size := faces[0].W
	for i, f := range faces {
		if f == nil {
			return nil, fmt.Errorf("cubemap face %d is nil", i)
		}
		if f.W != size || f.H != size {
			return nil, fmt.Errorf("cubemap face %d is %dx%d, want %dx%d", i, f.W, f.H, size, size)
		}
	}
	return &Cubemap{Faces: faces}, nil
}

// Sample looks up the face pierced by dir and bilinearly filters it. The
// direction need not be normalized.
func (c *Cubemap) Sample(dir mgl32.Vec3) mgl32.Vec3 {
	x, y, z := dir.X(), dir.Y(), dir.Z()
	ax, ay, az := absf(x), absf(y), absf(z)

	var face int
	var u, v, ma float32
	switch {
	case ax >= ay && ax >= az:
		ma = ax
		if x > 0 {
			face, u, v = FacePosX, -z, -y
		} else {
			face, u, v = FaceNegX, z, -y
		}
	case ay >= az:
		ma = ay
		if y > 0 {
			face, u, v = FacePosY, x, z
		} else {
			face, u, v = FaceNegY, x, -z
		}
	default:
		ma = az
		if z > 0 {
			face, u, v = FacePosZ, x, -y
		} else {
			face, u, v = FaceNegZ, -x, -y
		}
	}
	if ma == 0 {
		return mgl32.Vec3{}
	}
	return c.Faces[face].bilinear((u/ma+1)*0.5, (v/ma+1)*0.5)
}

// RotateY spins a direction around the vertical axis; used for the slow
// drift of the star field.
func RotateY(dir mgl32.Vec3, angle float32) mgl32.Vec3 {
	s, c := sinf(angle), cosf(angle)
	return mgl32.Vec3{
		c*dir.X() + s*dir.Z(),
		dir.Y(),
		-s*dir.X() + c*dir.Z(),
	}
}
