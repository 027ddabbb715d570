package blackhole

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/blackhole/rt/core"
)

func TestSettingsToggles(t *testing.T) {
	settings := &RenderSettings{Config: core.DefaultRenderConfig()}
	input := &Input{}
	logger := NewDefaultLogger("test", false)

	require.True(t, settings.Config.GravitationalLensing)
	input.JustPressed[KeyG] = true
	settingsSystem(settings, input, logger)
	assert.False(t, settings.Config.GravitationalLensing)

	input.JustPressed[KeyG] = false
	input.JustPressed[KeyD] = true
	settingsSystem(settings, input, logger)
	assert.False(t, settings.Config.AccretionDiskEnabled)

	input.JustPressed[KeyD] = false
	input.JustPressed[KeyR] = true
	settingsSystem(settings, input, logger)
	assert.Equal(t, core.DefaultRenderConfig(), settings.Config)
}

func TestSettingsDebugLoggingToggle(t *testing.T) {
	settings := &RenderSettings{Config: core.DefaultRenderConfig()}
	input := &Input{}
	logger := NewDefaultLogger("test", false)

	input.JustPressed[KeyL] = true
	settingsSystem(settings, input, logger)
	assert.True(t, logger.DebugEnabled())

	settingsSystem(settings, input, logger)
	assert.False(t, logger.DebugEnabled())
}

func TestSettingsOctavesStayInRange(t *testing.T) {
	settings := &RenderSettings{Config: core.DefaultRenderConfig()}
	input := &Input{}
	logger := NewDefaultLogger("test", false)

	input.JustPressed[KeyMinus] = true
	for i := 0; i < 20; i++ {
		settingsSystem(settings, input, logger)
	}
	assert.Equal(t, 1, settings.Config.NoiseOctaves)

	input.JustPressed[KeyMinus] = false
	input.JustPressed[KeyEqual] = true
	for i := 0; i < 20; i++ {
		settingsSystem(settings, input, logger)
	}
	assert.Equal(t, 12, settings.Config.NoiseOctaves)
}

func TestRenderSystemProducesFrame(t *testing.T) {
	state := &renderState{}
	app := NewAppBuilder().
		UseModule(
			LoggingModule{Prefix: "test"},
			AssetServerModule{},
			RenderModule{Workers: 2, Scale: 0.5},
			SceneLoaderModule{},
		).
		Build()

	*state = *mustResource[*renderState](app)
	settings := mustResource[*RenderSettings](app)
	scene := mustResource[*SceneData](app)
	out := mustResource[*FrameHDR](app)

	rig := &CameraRig{FovScale: 1, FrontView: true}
	input := &Input{WindowWidth: 64, WindowHeight: 48}
	clock := &Time{Elapsed: 1}
	rig.State = core.ComputeCamera(core.CameraInput{
		Width: 64, Height: 48, FrontView: true, FovScale: 1,
	})

	renderSystem(state, settings, scene, rig, input, clock, out)

	require.NotNil(t, out.Frame)
	assert.Equal(t, 32, out.Frame.W)
	assert.Equal(t, 24, out.Frame.H)
}

func TestRenderSystemSkipsWithoutScene(t *testing.T) {
	state := &renderState{}
	out := &FrameHDR{}
	renderSystem(state, &RenderSettings{Scale: 0.75}, &SceneData{}, &CameraRig{}, &Input{WindowWidth: 10, WindowHeight: 10}, &Time{}, out)
	assert.Nil(t, out.Frame)
}
