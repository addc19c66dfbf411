package learngl

import "github.com/gekko3d/learngl/logging"

// LoggingModule installs a default logger as a resource.
type LoggingModule struct {
	Prefix string
	Debug  bool
}

func (m LoggingModule) Install(app *App, cmd *Commands) {
	logger := logging.NewDefaultLogger(m.Prefix, m.Debug)
	app.addResources(logger)
}
