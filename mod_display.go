package blackhole

import (
	"image"
)

// PresentImage is the 8-bit frame the display blits. The post module
// refreshes it every frame; the HUD draws over it in between.
type PresentImage struct {
	Image *image.RGBA
}

// DisplayModule owns the GPU surface and pushes the finished frame to it.
// It requires PlatformWindowModule for the window and surface.
type DisplayModule struct{}

func (m DisplayModule) Install(app *App, cmd *Commands) {
	ws := mustResource[*WindowState](app)
	cmd.AddResources(createGpuState(ws))

	app.UseSystem(
		System(displaySystem).InStage(Finale),
	)
}

func displaySystem(ws *WindowState, gpu *GpuState, img *PresentImage, logger *DefaultLogger) {
	if img.Image == nil {
		return
	}
	gpu.resizeSurface(ws.WindowWidth, ws.WindowHeight)
	gpu.uploadFrame(img.Image, logger)
	gpu.present(logger)
}
