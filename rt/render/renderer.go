package render

import (
	"runtime"
	"sync"

	"github.com/gekko3d/blackhole/rt/core"
)

// Scene bundles the static inputs of a frame: what the rays march through
// and what they see when they leave.
type Scene struct {
	Env  core.Environment
	Ramp *core.ColorRamp
}

// Renderer traces frames on the CPU. It keeps two buffers: workers fill
// the back buffer while the presenter reads the front one, and a finished
// frame is published with a pointer swap.
type Renderer struct {
	workers int

	mu    sync.Mutex
	front *Frame
	back  *Frame
}

// New sizes both buffers. workers <= 0 means one per logical CPU.
func New(w, h, workers int) *Renderer {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Renderer{
		workers: workers,
		front:   NewFrame(w, h),
		back:    NewFrame(w, h),
	}
}

// Front returns the last published frame. The buffer stays valid until two
// more RenderFrame calls complete.
func (r *Renderer) Front() *Frame {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.front
}

// Resize reallocates both buffers. Not safe to call concurrently with
// RenderFrame.
func (r *Renderer) Resize(w, h int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if w == r.front.W && h == r.front.H {
		return
	}
	r.front = NewFrame(w, h)
	r.back = NewFrame(w, h)
}

// RenderFrame traces every pixel of the back buffer and publishes it.
// Rows are handed to workers over a channel; a row is the scheduling unit
// because neighboring pixels share cache lines in the output buffer.
func (r *Renderer) RenderFrame(cfg core.RenderConfig, scene Scene, cam core.CameraState, time float32) *Frame {
	target := r.back
	h := target.H

	rows := make(chan int, h)
	var wg sync.WaitGroup
	for i := 0; i < r.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for y := range rows {
				r.renderRow(target, cfg, scene, cam, time, y)
			}
		}()
	}
	for y := 0; y < h; y++ {
		rows <- y
	}
	close(rows)
	wg.Wait()

	r.mu.Lock()
	r.front, r.back = target, r.front
	published := r.front
	r.mu.Unlock()

	return published
}

// renderRow traces one scanline. Screen coordinates are height-normalized:
// v spans [-0.5, 0.5] bottom to top and u uses the same scale, so square
// pixels come out square at any aspect ratio.
func (r *Renderer) renderRow(target *Frame, cfg core.RenderConfig, scene Scene, cam core.CameraState, time float32, y int) {
	w, h := target.W, target.H
	invH := 1 / float32(h)
	v := (float32(h)*0.5 - (float32(y) + 0.5)) * invH
	for x := 0; x < w; x++ {
		u := ((float32(x) + 0.5) - float32(w)*0.5) * invH
		origin, dir := cam.Ray(u, v)
		target.Set(x, y, core.TraceColor(cfg, scene.Env, scene.Ramp, origin, dir, time))
	}
}
