package learngl

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/gekko3d/learngl/gfx/glcore"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	defaultWindowWidth  = 1600
	defaultWindowHeight = 900
	defaultWindowTitle  = "LearnOpenGL"
)

// WindowState holds the GLFW window and its current framebuffer size. The GL
// context of the window is current on the thread that created it.
type WindowState struct {
	windowGlfw        *glfw.Window
	WindowWidth       int
	WindowHeight      int
	FramebufferWidth  int
	FramebufferHeight int
	windowTitle       string

	scrollX, scrollY float64
}

// takeScroll returns the scroll offset accumulated since the last call.
func (s *WindowState) takeScroll() (float64, float64) {
	x, y := s.scrollX, s.scrollY
	s.scrollX, s.scrollY = 0, 0
	return x, y
}

func createWindowState(windowWidth int, windowHeight int, windowTitle string, vsync bool) (*WindowState, error) {
	runtime.LockOSThread()
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("initializing glfw: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	win, err := glfw.CreateWindow(windowWidth, windowHeight, windowTitle, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("creating window: %w", err)
	}
	win.MakeContextCurrent()
	if vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := glcore.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, err
	}

	s := &WindowState{
		windowGlfw:   win,
		WindowWidth:  windowWidth,
		WindowHeight: windowHeight,
		windowTitle:  windowTitle,
	}
	s.FramebufferWidth, s.FramebufferHeight = win.GetFramebufferSize()

	win.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		s.FramebufferWidth, s.FramebufferHeight = width, height
	})
	win.SetSizeCallback(func(w *glfw.Window, width, height int) {
		s.WindowWidth, s.WindowHeight = width, height
	})
	win.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		s.scrollX += xoff
		s.scrollY += yoff
	})
	return s, nil
}

func (s *WindowState) destroy() {
	if s.windowGlfw == nil {
		return
	}
	s.windowGlfw.Destroy()
	s.windowGlfw = nil
	glfw.Terminate()
}

// PlatformWindowModule ensures a single shared GLFW window (WindowState) with
// an OpenGL 3.3 core context is created and made available as a resource.
// Install is idempotent: if a WindowState resource already exists, it is reused.
type PlatformWindowModule struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// withDefaults fills in a zero size or empty title.
func (m PlatformWindowModule) withDefaults() PlatformWindowModule {
	if m.Width <= 0 {
		m.Width = defaultWindowWidth
	}
	if m.Height <= 0 {
		m.Height = defaultWindowHeight
	}
	if m.Title == "" {
		m.Title = defaultWindowTitle
	}
	return m
}

func (m PlatformWindowModule) Install(app *App, cmd *Commands) {
	if app.hasResource(reflect.TypeFor[WindowState]()) {
		return
	}

	ws, err := createWindowState(m.Width, m.Height, m.Title, m.VSync)
	if err != nil {
		app.Logger().Errorf("Window: %v", err)
		cmd.Fail(err)
		return
	}
	app.addResources(ws)
	cmd.OnClose(ws.destroy)
	app.Logger().Infof("Created window (%dx%d) '%s', OpenGL %s", m.Width, m.Height, m.Title, glcore.Version())

	app.UseSystem(
		System(swapBuffersSystem).
			InStage(PostRender),
	)
}

func swapBuffersSystem(s *WindowState) {
	s.windowGlfw.SwapBuffers()
}
