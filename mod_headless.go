package blackhole

import (
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"
)

// HeadlessModule drives the app without a window: it fixes the viewport
// size, steps the clock as usual, writes every finished frame to disk and
// quits after the requested count.
type HeadlessModule struct {
	Width  int
	Height int
	Frames int
	Output string
}

type headlessState struct {
	frames    int
	written   int
	outputDir string
}

func (m HeadlessModule) Install(app *App, cmd *Commands) {
	frames := m.Frames
	if frames <= 0 {
		frames = 1
	}
	cmd.AddResources(
		&Input{WindowWidth: m.Width, WindowHeight: m.Height},
		&headlessState{frames: frames, outputDir: m.Output},
	)
	app.UseSystem(
		System(headlessClockSystem).InStage(PreUpdate),
	)
	app.UseSystem(
		System(headlessSystem).InStage(Finale),
	)
}

// headlessClockSystem replaces the wall clock with a fixed 60 Hz step so
// repeated runs produce identical frames.
func headlessClockSystem(state *headlessState, t *Time) {
	t.Dt = time.Second / 60
	t.Elapsed = float64(state.written) / 60.0
}

func headlessSystem(state *headlessState, img *PresentImage, logger *DefaultLogger, cmd *Commands) {
	if img.Image == nil {
		return
	}

	path := filepath.Join(state.outputDir, fmt.Sprintf("frame-%04d.png", state.written))
	if err := writePng(path, img); err != nil {
		logger.Errorf("write frame: %v", err)
		cmd.Quit()
		return
	}
	logger.Infof("wrote %s", path)

	state.written++
	if state.written >= state.frames {
		cmd.Quit()
	}
}

func writePng(path string, img *PresentImage) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := png.Encode(file, img.Image); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}
