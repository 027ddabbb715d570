package blackhole

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// HudModule draws the status overlay straight into the PresentImage, so
// the same text shows up in the window, headless dumps and the stream.
type HudModule struct{}

type HudState struct {
	Visible bool
	face    font.Face
}

func (m HudModule) Install(app *App, cmd *Commands) {
	parsed, err := opentype.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		panic(err)
	}

	cmd.AddResources(&HudState{Visible: true, face: face})
	app.UseSystem(
		System(hudSystem).InStage(PostRender),
	)
}

func hudSystem(hud *HudState, img *PresentImage, settings *RenderSettings, post *PostState, rig *CameraRig, input *Input, t *Time) {
	if input.JustPressed[KeyH] {
		hud.Visible = !hud.Visible
	}
	if !hud.Visible || img.Image == nil {
		return
	}

	fps := 0.0
	if dt := t.Dt.Seconds(); dt > 0 {
		fps = 1 / dt
	}

	cfg := settings.Config
	lines := []string{
		fmt.Sprintf("%.0f fps  %dx%d @ %.0f%%", fps, img.Image.Bounds().Dx(), img.Image.Bounds().Dy(), settings.Scale*100),
		fmt.Sprintf("camera: %s", cameraModeName(rig, input)),
		fmt.Sprintf("lensing %s  disk %s  particles %s  tonemap %s",
			onOff(cfg.GravitationalLensing),
			onOff(cfg.AccretionDiskEnabled),
			onOff(cfg.ParticleModeEnabled),
			onOff(post.Chain.TonemapEnabled)),
		fmt.Sprintf("octaves %d  scale %.2f  brightness %.2f", cfg.NoiseOctaves, cfg.NoiseScale, cfg.DiskBrightness),
	}

	drawLines(hud.face, img.Image, lines)
}

func cameraModeName(rig *CameraRig, input *Input) string {
	switch {
	case rig.AutopilotActive:
		return "autopilot"
	case input.Pressed[MouseButtonLeft]:
		return "pointer"
	case rig.FrontView:
		return "front"
	case rig.TopView:
		return "top"
	}
	return "orbit"
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func drawLines(face font.Face, dst *image.RGBA, lines []string) {
	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
	}
	shadow := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(color.RGBA{0, 0, 0, 255}),
		Face: face,
	}

	y := 20
	for _, line := range lines {
		shadow.Dot = fixed.P(11, y+1)
		shadow.DrawString(line)
		d.Dot = fixed.P(10, y)
		d.DrawString(line)
		y += 18
	}
}
