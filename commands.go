package blackhole

// Commands is the handle systems and modules use to mutate the app itself.
type Commands struct {
	app *App
}

func (cmd *Commands) AddResources(resources ...any) *Commands {
	cmd.app.addResources(resources...)
	return cmd
}

// Quit stops the run loop after the current step completes.
func (cmd *Commands) Quit() {
	cmd.app.quitting = true
}
