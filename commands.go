package learngl

// Commands is the handle modules and systems use to change the App.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Exit stops the loop after the current frame.
func (cmd *Commands) Exit() {
	cmd.app.requestExit()
}

// Fail stops the loop after the current frame; Run returns err.
func (cmd *Commands) Fail(err error) {
	cmd.app.fail(err)
}

// OnClose registers fn to run when Run returns. Closers run in reverse order.
func (cmd *Commands) OnClose(fn func()) *Commands {
	cmd.app.onClose(fn)
	return cmd
}
