package learngl

// ensureWindowResource installs win unless a WindowState already exists.
func ensureWindowResource(app *App, win PlatformWindowModule) {
	app.UseModules(win.withDefaults())
}

// UseRenderer installs exactly one scene renderer together with the window
// it draws into. A second call with a different scene panics.
// Usage:
//
//	app.UseRenderer(RendererModule{Scene: scenes.PhongName}, PlatformWindowModule{VSync: true})
func (app *App) UseRenderer(mod RendererModule, win PlatformWindowModule) *App {
	ensureSingleRenderer(app, mod.Scene)
	ensureWindowResource(app, win)
	app.Logger().Infof("Renderer selected: %s", mod.Scene)
	return app.UseModules(mod)
}
