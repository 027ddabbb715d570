package blackhole

import (
	"reflect"
)

// PlatformWindowModule ensures a single shared GLFW window (WindowState) is
// created and made available as a resource for the display and input
// modules. Install is idempotent: if a WindowState resource already exists,
// it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
}

// NewPlatformWindow creates a module that provides a shared WindowState
// resource. If Width/Height are zero, sensible defaults are used.
func NewPlatformWindow(width, height int, title string) *PlatformWindowModule {
	if width <= 0 {
		width = 1280
	}
	if height <= 0 {
		height = 720
	}
	if title == "" {
		title = "Black Hole"
	}
	return &PlatformWindowModule{
		Width:  width,
		Height: height,
		Title:  title,
	}
}

// Install provides the WindowState resource if missing.
func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	t := reflect.TypeOf((*WindowState)(nil)).Elem()
	if _, ok := app.resources[t]; ok {
		// Already created elsewhere; preserve the single-window invariant.
		return
	}

	ws := createWindowState(m.Width, m.Height, m.Title)
	app.addResources(ws)

	app.UseSystem(
		System(windowSystem).InStage(Prelude),
	)
}

// windowSystem pumps the event loop and mirrors the framebuffer size so
// downstream systems never touch glfw directly.
func windowSystem(s *WindowState, cmd *Commands) {
	pollEvents()

	if s.windowGlfw.ShouldClose() {
		cmd.Quit()
		return
	}
	s.WindowWidth, s.WindowHeight = s.windowGlfw.GetFramebufferSize()
}
