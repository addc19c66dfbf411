package learngl

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	KeyW int = iota
	KeyA
	KeyS
	KeyD
	KeyR
	KeySpace
	KeyShift
	KeyEscape
	KeyTab
	numKeys
)

type InputModule struct {
	// CaptureMouse hides and locks the cursor from the first frame.
	CaptureMouse bool
}

type Input struct {
	Pressed [numKeys]bool

	JustPressed  [numKeys]bool
	JustReleased [numKeys]bool

	MouseX, MouseY float64
	MouseCaptured  bool

	// ScrollX/ScrollY are the wheel offsets received during the last poll.
	ScrollX, ScrollY float64

	CloseRequested bool
}

// setKey records the state of key for this frame and derives the edge flags.
func (input *Input) setKey(key int, pressed bool) {
	input.JustPressed[key] = pressed && !input.Pressed[key]
	input.JustReleased[key] = !pressed && input.Pressed[key]
	input.Pressed[key] = pressed
}

func (input *Input) setCursor(x, y float64) {
	input.MouseX = x
	input.MouseY = y
}

func (mod InputModule) Install(app *App, cmd *Commands) {
	cmd.AddResources(&Input{MouseCaptured: mod.CaptureMouse})
	app.UseSystem(
		System(inputSystem).
			InStage(PreUpdate),
	)
}

func inputSystem(s *WindowState, input *Input) {
	glfw.PollEvents()

	for key, glfwKey := range keyToGlfw {
		input.setKey(key, s.windowGlfw.GetKey(glfwKey) == glfw.Press)
	}

	input.setCursor(s.windowGlfw.GetCursorPos())
	input.ScrollX, input.ScrollY = s.takeScroll()
	input.CloseRequested = s.windowGlfw.ShouldClose()

	if input.MouseCaptured {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	} else {
		s.windowGlfw.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	}
}

var keyToGlfw = map[int]glfw.Key{
	KeyW:      glfw.KeyW,
	KeyA:      glfw.KeyA,
	KeyS:      glfw.KeyS,
	KeyD:      glfw.KeyD,
	KeyR:      glfw.KeyR,
	KeySpace:  glfw.KeySpace,
	KeyShift:  glfw.KeyLeftShift,
	KeyEscape: glfw.KeyEscape,
	KeyTab:    glfw.KeyTab,
}
