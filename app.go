package learngl

import (
	"fmt"
	"reflect"
	"runtime"

	"github.com/gekko3d/learngl/logging"
)

type systemFn any

// App owns the resources and the per-frame systems of a running demo. It is
// driven from a single goroutine locked to the thread owning the GL context.
type App struct {
	modules   []Module
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	closers   []func()

	exitRequested bool
	err           error
	frames        uint64
}

type Module interface {
	Install(app *App, cmd *Commands)
}

func NewApp() *App {
	app := &App{
		systems:   make(map[string][]systemFn),
		resources: make(map[reflect.Type]any),
	}
	for _, stage := range defaultStages {
		app.stages = append(app.stages, stage)
		app.systems[stage.Name] = make([]systemFn, 0)
	}
	return app
}

func (app *App) Commands() *Commands {
	return &Commands{
		app: app,
	}
}

// UseModules installs modules in order. Later modules may depend on
// resources added by earlier ones.
func (app *App) UseModules(modules ...Module) *App {
	cmd := app.Commands()
	for _, module := range modules {
		app.modules = append(app.modules, module)
		module.Install(app, cmd)
	}
	return app
}

// Run executes frames until a system requests exit, then releases every
// registered closer in reverse order. An error recorded during setup or by a
// system is returned.
func (app *App) Run() error {
	defer app.close()

	if app.err != nil {
		return app.err
	}

	app.Logger().Infof("Running with %d modules", len(app.modules))
	for !app.exitRequested {
		app.Step()
	}
	app.Logger().Infof("Stopped after %d frames", app.frames)
	return app.err
}

// Step runs every stage once.
func (app *App) Step() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
	app.frames++
}

func (app *App) Frames() uint64 {
	return app.frames
}

func (app *App) requestExit() {
	app.exitRequested = true
}

// fail records the first error and stops the loop.
func (app *App) fail(err error) {
	if err == nil {
		return
	}
	if app.err == nil {
		app.err = err
	}
	app.exitRequested = true
}

func (app *App) Err() error {
	return app.err
}

func (app *App) onClose(fn func()) {
	app.closers = append(app.closers, fn)
}

func (app *App) close() {
	for i := len(app.closers) - 1; i >= 0; i-- {
		app.closers[i]()
	}
	app.closers = nil
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("%s is not a pointer resource", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}

		app.resources[resourceType.Elem()] = resource
	}
	return app
}

func (app *App) hasResource(t reflect.Type) bool {
	_, ok := app.resources[t]
	return ok
}

// Resource returns the resource of type T, if present.
func Resource[T any](app *App) (*T, bool) {
	res, ok := app.resources[reflect.TypeFor[T]()]
	if !ok {
		return nil, false
	}
	return res.(*T), true
}

// Logger returns the first Logger resource if present, otherwise a no-op logger.
// Safe to call at any time; never returns nil.
func (app *App) Logger() logging.Logger {
	if app == nil {
		return logging.NewNopLogger()
	}
	for _, r := range app.resources {
		if l, ok := r.(logging.Logger); ok {
			return l
		}
	}
	return logging.NewNopLogger()
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())

	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		if argType.Kind() != reflect.Pointer {
			panic(app.unresolved(systemValue, systemType, argType))
		}
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, argIsResource := app.resources[underlyingType]; argIsResource {
			args[i] = reflect.ValueOf(resource)
		} else {
			panic(app.unresolved(systemValue, systemType, argType))
		}
	}
	systemValue.Call(args)
}

func (app *App) unresolved(systemValue reflect.Value, systemType, argType reflect.Type) string {
	msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
		runtime.FuncForPC(systemValue.Pointer()).Name(),
		fmt.Sprint(systemType),
		fmt.Sprint(argType),
	)
	app.Logger().Errorf("%s", msg)
	return msg
}
