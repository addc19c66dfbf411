package learngl

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/gekko3d/learngl/gfx/core"
	"github.com/gekko3d/learngl/gfx/glcore"
	"github.com/gekko3d/learngl/gfx/shaders"
	"github.com/gekko3d/learngl/scenes"
)

const (
	nearPlane = 0.1
	farPlane  = 100.0
)

var ErrNoWindow = errors.New("renderer requires a window")

var _ scenes.Device = (*glcore.Device)(nil)

// RendererModule sets up one scene on the window's GL context and draws it
// every frame with the shared camera.
type RendererModule struct {
	Scene string
	// ShaderDir replaces the embedded shaders when set.
	ShaderDir    string
	TexturePaths map[string]string
}

// RenderState is the scene being drawn and the environment it was set up with.
type RenderState struct {
	Scene  scenes.Scene
	Env    scenes.Env
	device *glcore.Device

	viewportWidth, viewportHeight int
}

func shaderFS(dir string) fs.FS {
	if dir == "" {
		return shaders.FS
	}
	return os.DirFS(dir)
}

func (m RendererModule) Install(app *App, cmd *Commands) {
	ensureSingleRenderer(app, m.Scene)
	if app.Err() != nil {
		return
	}
	if _, ok := Resource[WindowState](app); !ok {
		cmd.Fail(ErrNoWindow)
		return
	}

	scene, err := scenes.New(m.Scene)
	if err != nil {
		cmd.Fail(err)
		return
	}

	dev := glcore.NewDevice()
	dev.EnableDepthTest()

	env := scenes.Env{
		Device:       dev,
		Shaders:      shaderFS(m.ShaderDir),
		TexturePaths: m.TexturePaths,
		Log:          app.Logger(),
	}
	if assets, ok := Resource[AssetServer](app); ok {
		env.Textures = assets
	}

	if err := scene.Setup(env); err != nil {
		scene.Release()
		cmd.Fail(fmt.Errorf("setting up scene %s: %w", m.Scene, err))
		return
	}
	app.Logger().Infof("Scene %s ready (shaders: %v)", scene.Name(), scene.Sources())

	cmd.AddResources(&RenderState{Scene: scene, Env: env, device: dev})
	cmd.OnClose(scene.Release)
	app.UseSystem(
		System(renderSystem).
			InStage(Render),
	)
}

func renderSystem(ws *WindowState, cam *core.Camera, t *Time, rs *RenderState) {
	w, h := ws.FramebufferWidth, ws.FramebufferHeight
	if w != rs.viewportWidth || h != rs.viewportHeight {
		rs.device.Viewport(w, h)
		rs.viewportWidth, rs.viewportHeight = w, h
	}

	f, ok := makeFrame(cam, w, h, t.Elapsed())
	if !ok {
		return
	}
	rs.Scene.Draw(f)
}

// makeFrame derives the per-frame matrices from the camera. It reports false
// for an empty framebuffer, as when the window is minimised.
func makeFrame(cam *core.Camera, width, height int, elapsed float32) (scenes.Frame, bool) {
	if width <= 0 || height <= 0 {
		return scenes.Frame{}, false
	}
	aspect := float32(width) / float32(height)
	return scenes.Frame{
		View:       cam.ViewMatrix(),
		Projection: cam.ProjectionMatrix(aspect, nearPlane, farPlane),
		ViewPos:    cam.Position(),
		ViewFront:  cam.Front(),
		Time:       elapsed,
	}, true
}
