package blackhole

import (
	"github.com/gekko3d/blackhole/rt/post"
)

// PostModule folds the HDR frame through bloom and tonemapping into the
// 8-bit PresentImage.
type PostModule struct{}

type PostState struct {
	Chain *post.Chain
}

func (m PostModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&PostState{Chain: post.NewChain()}, &PresentImage{})

	app.UseSystem(
		System(postToggleSystem).InStage(Update),
	)
	app.UseSystem(
		System(postSystem).InStage(PostRender),
	)
}

func postToggleSystem(state *PostState, input *Input, logger *DefaultLogger) {
	if input.JustPressed[KeyT] {
		state.Chain.TonemapEnabled = !state.Chain.TonemapEnabled
		logger.Infof("tonemap: %v", state.Chain.TonemapEnabled)
	}
}

func postSystem(state *PostState, in *FrameHDR, out *PresentImage) {
	if in.Frame == nil {
		return
	}
	out.Image = state.Chain.ToRGBA(in.Frame)
}
