package blackhole

import (
	"fmt"
	"reflect"
	"runtime"
)

type systemFn any

// App runs an installed set of modules. Modules contribute resources and
// systems; systems are plain functions whose pointer arguments are resolved
// against the resource table by type on every call.
type App struct {
	stages    []Stage
	systems   map[string][]systemFn
	resources map[reflect.Type]any
	quitting  bool
}

func (app *App) Commands() *Commands {
	return &Commands{app: app}
}

// Run steps the schedule until a system requests quit.
func (app *App) Run() {
	for !app.quitting {
		app.Step()
	}
}

// Step runs every stage once, in order.
func (app *App) Step() {
	for _, stage := range app.stages {
		for _, system := range app.systems[stage.Name] {
			app.callSystem(system)
		}
	}
}

func (app *App) addResources(resources ...any) *App {
	for _, resource := range resources {
		resourceType := reflect.TypeOf(resource)
		if resourceType.Kind() != reflect.Pointer {
			panic(fmt.Sprintf("resource %s must be a pointer", resourceType))
		}
		if _, ok := app.resources[resourceType.Elem()]; ok {
			panic(fmt.Sprintf("%s is already in resources", resourceType))
		}
		app.resources[resourceType.Elem()] = resource
	}
	return app
}

// mustResource fetches an installed resource during module Install, for
// modules that depend on another module's state. T must be a pointer type.
func mustResource[T any](app *App) T {
	key := reflect.TypeOf((*T)(nil)).Elem().Elem()
	r, ok := app.resources[key]
	if !ok {
		panic(fmt.Sprintf("resource %v is not installed", key))
	}
	return r.(T)
}

var typeOfCommands = reflect.TypeOf(Commands{})

func (app *App) callSystem(system systemFn) {
	systemType := reflect.TypeOf(system)
	systemValue := reflect.ValueOf(system)

	args := make([]reflect.Value, systemType.NumIn())
	for i := 0; i < systemType.NumIn(); i++ {
		argType := systemType.In(i)
		underlyingType := argType.Elem()

		if underlyingType == typeOfCommands {
			args[i] = reflect.ValueOf(&Commands{app: app})
		} else if resource, ok := app.resources[underlyingType]; ok {
			args[i] = reflect.ValueOf(resource)
		} else {
			msg := fmt.Sprintf("Unable to resolve System dependency.\nSystem: %s\nSystem type: %s\nDependency: %s",
				runtime.FuncForPC(systemValue.Pointer()).Name(),
				fmt.Sprint(systemType),
				fmt.Sprint(argType),
			)
			panic(msg)
		}
	}
	systemValue.Call(args)
}
