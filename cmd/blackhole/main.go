package main

import (
	"flag"

	"github.com/gekko3d/blackhole"
)

func main() {
	width := flag.Int("width", 1280, "window or frame width")
	height := flag.Int("height", 720, "window or frame height")
	scale := flag.Float64("scale", 0.75, "traced resolution as a fraction of the window size")
	workers := flag.Int("workers", 0, "tracer worker goroutines, 0 for one per CPU")
	headless := flag.Bool("headless", false, "render to PNG files instead of a window")
	frames := flag.Int("frames", 1, "frame count in headless mode")
	output := flag.String("output", ".", "output directory in headless mode")
	serve := flag.String("serve", "", "serve frames over websocket on this address, e.g. :8090")
	skybox := flag.String("skybox", "", "skybox directory with px/nx/py/ny/pz/nz.png faces")
	colormap := flag.String("colormap", "", "disk color ramp image")
	debug := flag.Bool("debug", false, "verbose logging")
	flag.Parse()

	builder := blackhole.NewAppBuilder().
		UseModule(
			blackhole.LoggingModule{Prefix: "blackhole", Debug: *debug},
			blackhole.TimeModule{},
		)

	if *headless {
		builder.UseModule(blackhole.HeadlessModule{
			Width:  *width,
			Height: *height,
			Frames: *frames,
			Output: *output,
		})
	} else {
		builder.UseModule(
			blackhole.NewPlatformWindow(*width, *height, "Black Hole"),
			blackhole.InputModule{},
		)
	}

	builder.UseModule(
		blackhole.CameraModule{},
		blackhole.AssetServerModule{},
		blackhole.RenderModule{Workers: *workers, Scale: float32(*scale)},
		blackhole.SceneLoaderModule{SkyboxDir: *skybox, ColormapPath: *colormap},
		blackhole.PostModule{},
		blackhole.HudModule{},
	)

	if !*headless {
		builder.UseModule(blackhole.DisplayModule{})
	}
	if *serve != "" {
		builder.UseModule(blackhole.StreamModule{Addr: *serve})
	}

	builder.Build().Run()
}
