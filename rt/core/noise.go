package core

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Simplex gradient noise over a 289-periodic lattice. The permutation is a
// pure arithmetic hash, so the function needs no tables and can be sampled
// at any rate. Output stays in roughly [-1, 1] with a small overshoot.

func mod289(x float32) float32 {
	return x - floorf(x*(1.0/289.0))*289.0
}

func permute(x float32) float32 {
	return mod289((x*34.0 + 1.0) * x)
}

func taylorInvSqrt(r float32) float32 {
	return 1.79284291400159 - 0.85373472095314*r
}

func stepf(edge, x float32) float32 {
	if x < edge {
		return 0
	}
	return 1
}

// Noise3 evaluates 3D simplex noise at v.
func Noise3(v mgl32.Vec3) float32 {
	const (
		cx float32 = 1.0 / 6.0
		cy float32 = 1.0 / 3.0
	)

	// Skew into simplex cell space and find the base corner.
	s := (v[0] + v[1] + v[2]) * cy
	i0 := floorf(v[0] + s)
	i1 := floorf(v[1] + s)
	i2 := floorf(v[2] + s)
	t := (i0 + i1 + i2) * cx
	x0 := mgl32.Vec3{v[0] - i0 + t, v[1] - i1 + t, v[2] - i2 + t}

	// Rank the components of x0 to pick the simplex traversal order.
	gx := stepf(x0[1], x0[0])
	gy := stepf(x0[2], x0[1])
	gz := stepf(x0[0], x0[2])
	lx := 1 - gx
	ly := 1 - gy
	lz := 1 - gz

	o1 := mgl32.Vec3{minf(gx, lz), minf(gy, lx), minf(gz, ly)}
	o2 := mgl32.Vec3{maxf(gx, lz), maxf(gy, lx), maxf(gz, ly)}

	x1 := mgl32.Vec3{x0[0] - o1[0] + cx, x0[1] - o1[1] + cx, x0[2] - o1[2] + cx}
	x2 := mgl32.Vec3{x0[0] - o2[0] + cy, x0[1] - o2[1] + cy, x0[2] - o2[2] + cy}
	x3 := mgl32.Vec3{x0[0] - 0.5, x0[1] - 0.5, x0[2] - 0.5}

	// Hash the four corner indices.
	i0 = mod289(i0)
	i1 = mod289(i1)
	i2 = mod289(i2)

	var p [4]float32
	zOff := [4]float32{0, o1[2], o2[2], 1}
	yOff := [4]float32{0, o1[1], o2[1], 1}
	xOff := [4]float32{0, o1[0], o2[0], 1}
	for k := 0; k < 4; k++ {
		p[k] = permute(permute(permute(i2+zOff[k])+i1+yOff[k]) + i0 + xOff[k])
	}

	// Map each hash onto a point of a 7x7 gradient grid on two octahedra.
	const n float32 = 1.0 / 7.0
	nsX := n * 2.0
	nsY := n*0.5 - 1.0
	nsZ := n

	var gradX, gradY, gradZ [4]float32
	for k := 0; k < 4; k++ {
		j := p[k] - 49.0*floorf(p[k]*nsZ*nsZ)
		xr := floorf(j * nsZ)
		yr := floorf(j - 7.0*xr)

		x := xr*nsX + nsY
		y := yr*nsX + nsY
		h := 1.0 - absf(x) - absf(y)

		sx := floorf(x)*2.0 + 1.0
		sy := floorf(y)*2.0 + 1.0
		var sh float32
		if h <= 0 {
			sh = -1
		}

		gradX[k] = x + sx*sh
		gradY[k] = y + sy*sh
		gradZ[k] = h
	}

	corners := [4]mgl32.Vec3{x0, x1, x2, x3}
	var total float32
	for k := 0; k < 4; k++ {
		g := mgl32.Vec3{gradX[k], gradY[k], gradZ[k]}
		norm := taylorInvSqrt(g.Dot(g))
		g = g.Mul(norm)

		m := maxf(0.6-corners[k].Dot(corners[k]), 0)
		m = m * m
		total += m * m * g.Dot(corners[k])
	}
	return 42.0 * total
}
