package blackhole

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

func testFace(t *testing.T) font.Face {
	t.Helper()
	parsed, err := opentype.Parse(goregular.TTF)
	require.NoError(t, err)
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{Size: 14, DPI: 72})
	require.NoError(t, err)
	return face
}

func TestDrawLinesMarksPixels(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 200, 60))
	drawLines(testFace(t), img, []string{"lensing on"})

	touched := false
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i-3] != 0 || img.Pix[i-2] != 0 || img.Pix[i-1] != 0 {
			touched = true
			break
		}
	}
	assert.True(t, touched, "text drawing left the image black")
}

func TestHudToggle(t *testing.T) {
	hud := &HudState{Visible: true, face: testFace(t)}
	input := &Input{}
	img := &PresentImage{}

	input.JustPressed[KeyH] = true
	hudSystem(hud, img, &RenderSettings{}, &PostState{}, &CameraRig{}, input, &Time{})
	assert.False(t, hud.Visible)

	hudSystem(hud, img, &RenderSettings{}, &PostState{}, &CameraRig{}, input, &Time{})
	assert.True(t, hud.Visible)
}
