package blackhole

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyB int = iota
	KeyC
	KeyD
	KeyG
	KeyH
	KeyL
	KeyN
	KeyR
	KeyT
	Key1
	Key2
	KeyEscape
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyMinus
	KeyEqual
	MouseButtonLeft
	MouseButtonRight
	keyCount
)

type InputModule struct{}

// Input mirrors the keyboard and pointer once per frame. Systems read it
// instead of talking to glfw, which keeps them testable.
type Input struct {
	Pressed      [keyCount]bool
	JustPressed  [keyCount]bool
	JustReleased [keyCount]bool

	MouseX, MouseY float64

	WindowWidth, WindowHeight int
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{})
	app.UseSystem(
		System(inputSystem).InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input, cmd *Commands) {
	for key, glfwKey := range keyToGlfw {
		action := s.windowGlfw.GetKey(glfwKey)
		updateButton(input, key, glfw.Press == action)
	}

	for key, glfwBtn := range mouseToGlfw {
		action := s.windowGlfw.GetMouseButton(glfwBtn)
		updateButton(input, key, glfw.Press == action)
	}

	input.MouseX, input.MouseY = s.windowGlfw.GetCursorPos()
	input.WindowWidth, input.WindowHeight = s.windowGlfw.GetSize()

	if input.JustPressed[KeyEscape] {
		cmd.Quit()
	}
}

func updateButton(input *Input, key int, down bool) {
	input.JustPressed[key] = false
	input.JustReleased[key] = false

	if down {
		if !input.Pressed[key] {
			input.JustPressed[key] = true
		}
		input.Pressed[key] = true
	} else {
		if input.Pressed[key] {
			input.JustReleased[key] = true
		}
		input.Pressed[key] = false
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyB:      glfw.KeyB,
	KeyC:      glfw.KeyC,
	KeyD:      glfw.KeyD,
	KeyG:      glfw.KeyG,
	KeyH:      glfw.KeyH,
	KeyL:      glfw.KeyL,
	KeyN:      glfw.KeyN,
	KeyR:      glfw.KeyR,
	KeyT:      glfw.KeyT,
	Key1:      glfw.Key1,
	Key2:      glfw.Key2,
	KeyEscape: glfw.KeyEscape,
	KeyUp:     glfw.KeyUp,
	KeyDown:   glfw.KeyDown,
	KeyLeft:   glfw.KeyLeft,
	KeyRight:  glfw.KeyRight,
	KeyMinus:  glfw.KeyMinus,
	KeyEqual:  glfw.KeyEqual,
}

var mouseToGlfw = map[int]glfw.MouseButton{
	MouseButtonLeft:  glfw.MouseButtonLeft,
	MouseButtonRight: glfw.MouseButtonRight,
}
