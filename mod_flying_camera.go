package learngl

import (
	"github.com/gekko3d/learngl/gfx/core"
	"github.com/go-gl/mathgl/mgl32"
)

var defaultCameraPosition = mgl32.Vec3{0, 0, 3}

type KeyBinding struct {
	Key      int
	Movement core.Movement
}

// DefaultBindings maps WASD to the horizontal moves and Space/Shift to
// vertical ones.
var DefaultBindings = []KeyBinding{
	{KeyW, core.Forward},
	{KeyS, core.Backward},
	{KeyA, core.Left},
	{KeyD, core.Right},
	{KeySpace, core.Up},
	{KeyShift, core.Down},
}

// FlyingCameraModule installs the shared *core.Camera and drives it from the
// Input resource every frame.
type FlyingCameraModule struct {
	// Camera defaults to a camera at (0, 0, 3) looking down -Z.
	Camera *core.Camera
	// Bindings defaults to DefaultBindings.
	Bindings []KeyBinding
	// FreePitch disables the ±89° pitch clamp.
	FreePitch bool
}

func (m FlyingCameraModule) Install(app *App, cmd *Commands) {
	cam := m.Camera
	if cam == nil {
		cam = core.NewDefaultCamera(defaultCameraPosition)
	}
	bindings := m.Bindings
	if len(bindings) == 0 {
		bindings = DefaultBindings
	}

	cmd.AddResources(cam, &FlyingCamera{
		Bindings:       bindings,
		ConstrainPitch: !m.FreePitch,
		firstMouse:     true,
	})
	app.UseSystem(
		System(flyingCameraSystem).
			InStage(Update),
	)
}

// FlyingCamera is the per-session controller state: bindings and the last
// cursor sample used to turn absolute positions into look deltas.
type FlyingCamera struct {
	Bindings       []KeyBinding
	ConstrainPitch bool

	lastX, lastY float64
	firstMouse   bool
}

func flyingCameraSystem(input *Input, t *Time, cam *core.Camera, fly *FlyingCamera, cmd *Commands) {
	if fly.apply(input, t.Seconds(), cam) {
		cmd.Exit()
	}
}

// apply feeds one frame of input into cam and reports whether exit was
// requested.
func (fly *FlyingCamera) apply(input *Input, dt float32, cam *core.Camera) bool {
	if input.CloseRequested || input.Pressed[KeyEscape] {
		return true
	}

	if input.JustPressed[KeyTab] {
		input.MouseCaptured = !input.MouseCaptured
	}

	for _, b := range fly.Bindings {
		if input.Pressed[b.Key] {
			cam.ProcessMovement(b.Movement, dt)
		}
	}

	if input.MouseCaptured {
		// the first sample after (re)capture only seeds the last position
		if fly.firstMouse {
			fly.lastX, fly.lastY = input.MouseX, input.MouseY
			fly.firstMouse = false
		}
		xoffset := input.MouseX - fly.lastX
		yoffset := fly.lastY - input.MouseY // reversed: window y grows downwards
		fly.lastX, fly.lastY = input.MouseX, input.MouseY

		if xoffset != 0 || yoffset != 0 {
			cam.ProcessLookDelta(float32(xoffset), float32(yoffset), fly.ConstrainPitch)
		}
	} else {
		fly.firstMouse = true
	}

	if input.ScrollY != 0 {
		cam.ProcessZoomDelta(float32(input.ScrollY))
	}
	return false
}
