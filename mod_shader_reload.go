package learngl

import (
	"slices"

	"github.com/gekko3d/learngl/gfx/shader"
	"github.com/gekko3d/learngl/logging"
	"github.com/gekko3d/learngl/scenes"
)

// ShaderReloadModule rebuilds the scene's programs when one of its shader
// files changes under Dir, or when R is pressed. Without Dir only the key
// works.
type ShaderReloadModule struct {
	Dir string
}

type ShaderReload struct {
	changes <-chan string
	log     logging.Logger
}

func (m ShaderReloadModule) Install(app *App, cmd *Commands) {
	sr := &ShaderReload{log: app.Logger()}

	if m.Dir != "" {
		w, err := shader.NewWatcher(m.Dir, app.Logger())
		if err != nil {
			app.Logger().Warnf("Shader hot reload disabled: %v", err)
		} else {
			sr.changes = w.Changes()
			cmd.OnClose(func() {
				if err := w.Close(); err != nil {
					app.Logger().Warnf("Closing shader watcher: %v", err)
				}
			})
			app.Logger().Infof("Watching %s for shader changes", m.Dir)
		}
	}

	cmd.AddResources(sr)
	app.UseSystem(
		System(shaderReloadSystem).
			InStage(PreRender),
	)
}

// pending drains every change queued since the last frame.
func (sr *ShaderReload) pending() []string {
	var changed []string
	for {
		select {
		case p, ok := <-sr.changes:
			if !ok {
				sr.changes = nil
				return changed
			}
			if !slices.Contains(changed, p) {
				changed = append(changed, p)
			}
		default:
			return changed
		}
	}
}

func shaderReloadSystem(sr *ShaderReload, input *Input, rs *RenderState) {
	reloadScene(rs.Scene, rs.Env, sr.pending(), input.JustPressed[KeyR], sr.log)
}

// reloadScene rebuilds the scene's programs when force is set or a changed
// path is one of its sources. A failed rebuild leaves the previous programs
// in place.
func reloadScene(scene scenes.Scene, env scenes.Env, changed []string, force bool, log logging.Logger) (bool, error) {
	if !force && !affects(scene.Sources(), changed) {
		return false, nil
	}
	if err := scene.Reload(env); err != nil {
		log.Errorf("Reloading %s shaders failed, keeping previous programs: %v", scene.Name(), err)
		return false, err
	}
	log.Infof("Reloaded %s shaders", scene.Name())
	return true, nil
}

func affects(sources, changed []string) bool {
	for _, p := range changed {
		if slices.Contains(sources, p) {
			return true
		}
	}
	return false
}
