package post

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/blackhole/rt/render"
)

func floorf(v float32) float32 {
	return float32(math.Floor(float64(v)))
}

// luminance uses the Rec. 709 weights.
func luminance(c mgl32.Vec3) float32 {
	return 0.2126*c.X() + 0.7152*c.Y() + 0.0722*c.Z()
}

// threshold keeps only pixels brighter than the cutoff. Everything below it
// contributes nothing to bloom.
func threshold(src *render.Frame, cutoff float32) *render.Frame {
	out := render.NewFrame(src.W, src.H)
	for i, c := range src.Pix {
		if luminance(c) > cutoff {
			out.Pix[i] = c
		}
	}
	return out
}

// downsample halves the frame with a 2x2 box filter.
func downsample(src *render.Frame) *render.Frame {
	w := src.W / 2
	h := src.H / 2
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	out := render.NewFrame(w, h)
	for y := 0; y < h; y++ {
		sy0 := y * 2
		sy1 := sy0 + 1
		if sy1 > src.H-1 {
			sy1 = src.H - 1
		}
		for x := 0; x < w; x++ {
			sx0 := x * 2
			sx1 := sx0 + 1
			if sx1 > src.W-1 {
				sx1 = src.W - 1
			}
			sum := src.At(sx0, sy0).
				Add(src.At(sx1, sy0)).
				Add(src.At(sx0, sy1)).
				Add(src.At(sx1, sy1))
			out.Set(x, y, sum.Mul(0.25))
		}
	}
	return out
}

// upsampleInto bilinearly stretches src onto dst's grid and accumulates.
func upsampleInto(dst, src *render.Frame) {
	for y := 0; y < dst.H; y++ {
		fy := (float32(y) + 0.5) / float32(dst.H) * float32(src.H)
		sy0 := int(floorf(fy - 0.5))
		ty := fy - 0.5 - float32(sy0)
		if sy0 < 0 {
			sy0, ty = 0, 0
		}
		sy1 := sy0 + 1
		if sy1 > src.H-1 {
			sy1 = src.H - 1
		}
		for x := 0; x < dst.W; x++ {
			fx := (float32(x) + 0.5) / float32(dst.W) * float32(src.W)
			sx0 := int(floorf(fx - 0.5))
			tx := fx - 0.5 - float32(sx0)
			if sx0 < 0 {
				sx0, tx = 0, 0
			}
			sx1 := sx0 + 1
			if sx1 > src.W-1 {
				sx1 = src.W - 1
			}
			top := src.At(sx0, sy0).Mul(1 - tx).Add(src.At(sx1, sy0).Mul(tx))
			bot := src.At(sx0, sy1).Mul(1 - tx).Add(src.At(sx1, sy1).Mul(tx))
			dst.Set(x, y, dst.At(x, y).Add(top.Mul(1-ty).Add(bot.Mul(ty))))
		}
	}
}

// bloom builds a mip pyramid from the thresholded frame, then collapses it
// back up so every level's blur contributes. The result is at full
// resolution and unscaled; the composite applies the strength.
func bloom(src *render.Frame, levels int, cutoff float32) *render.Frame {
	bright := threshold(src, cutoff)

	mips := make([]*render.Frame, 0, levels+1)
	mips = append(mips, bright)
	for i := 0; i < levels; i++ {
		prev := mips[len(mips)-1]
		if prev.W <= 1 && prev.H <= 1 {
			break
		}
		mips = append(mips, downsample(prev))
	}

	for i := len(mips) - 1; i > 0; i-- {
		upsampleInto(mips[i-1], mips[i])
	}
	return mips[0]
}
