package blackhole

import (
	"github.com/gekko3d/blackhole/rt/core"
	"github.com/gekko3d/blackhole/rt/render"
)

// RenderSettings is the live control surface of the tracer. The settings
// system mutates it from keyboard input; the render system reads a clamped
// copy each frame.
type RenderSettings struct {
	Config core.RenderConfig

	// Scale is the traced resolution as a fraction of the window size.
	Scale float32
}

// SceneData is what the rays march through: the background environment
// and the disk color lookup. Main wires it from the asset server.
type SceneData struct {
	Env  core.Environment
	Ramp *core.ColorRamp
}

// FrameHDR carries the latest traced frame to the post chain.
type FrameHDR struct {
	Frame *render.Frame
}

type renderState struct {
	renderer *render.Renderer
}

// RenderModule runs the CPU tracer. Workers <= 0 means one per CPU.
type RenderModule struct {
	Workers int
	Scale   float32
}

func (m RenderModule) Install(app *App, cmd *Commands) {
	scale := m.Scale
	if scale <= 0 || scale > 1 {
		scale = 0.75
	}
	cmd.AddResources(
		&RenderSettings{Config: core.DefaultRenderConfig(), Scale: scale},
		&SceneData{},
		&FrameHDR{},
		&renderState{renderer: render.New(1, 1, m.Workers)},
	)
	app.UseSystem(
		System(settingsSystem).InStage(Update),
	)
	app.UseSystem(
		System(renderSystem).InStage(Render),
	)
}

func settingsSystem(settings *RenderSettings, input *Input, logger *DefaultLogger) {
	cfg := &settings.Config

	switch {
	case input.JustPressed[KeyG]:
		cfg.GravitationalLensing = !cfg.GravitationalLensing
		logger.Infof("lensing: %v", cfg.GravitationalLensing)
	case input.JustPressed[KeyD]:
		cfg.AccretionDiskEnabled = !cfg.AccretionDiskEnabled
		logger.Infof("accretion disk: %v", cfg.AccretionDiskEnabled)
	case input.JustPressed[KeyN]:
		cfg.ParticleModeEnabled = !cfg.ParticleModeEnabled
		logger.Infof("particle mode: %v", cfg.ParticleModeEnabled)
	case input.JustPressed[KeyB]:
		if cfg.BackgroundYawRate == 0 {
			cfg.BackgroundYawRate = 0.02
		} else {
			cfg.BackgroundYawRate = 0
		}
		logger.Infof("background drift: %v", cfg.BackgroundYawRate)
	case input.JustPressed[KeyMinus]:
		cfg.NoiseOctaves--
		logger.Infof("noise octaves: %d", cfg.NoiseOctaves)
	case input.JustPressed[KeyEqual]:
		cfg.NoiseOctaves++
		logger.Infof("noise octaves: %d", cfg.NoiseOctaves)
	case input.JustPressed[KeyR]:
		*cfg = core.DefaultRenderConfig()
		logger.Infof("settings reset")
	case input.JustPressed[KeyL]:
		logger.SetDebug(!logger.DebugEnabled())
		logger.Infof("debug logging: %v", logger.DebugEnabled())
	}

	*cfg = cfg.Clamped()
}

func renderSystem(state *renderState, settings *RenderSettings, scene *SceneData, rig *CameraRig, input *Input, t *Time, out *FrameHDR) {
	if scene.Env == nil || scene.Ramp == nil {
		return
	}

	w := int(float32(input.WindowWidth) * settings.Scale)
	h := int(float32(input.WindowHeight) * settings.Scale)
	if w < 1 || h < 1 {
		return
	}
	state.renderer.Resize(w, h)

	out.Frame = state.renderer.RenderFrame(
		settings.Config,
		render.Scene{Env: scene.Env, Ramp: scene.Ramp},
		rig.State,
		float32(t.Elapsed),
	)
}
