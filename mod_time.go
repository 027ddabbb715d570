package blackhole

import (
	"time"
)

// Time is the frame clock. Elapsed feeds the tracer's animation inputs
// (disk rotation, background drift, idle orbit), Dt is for rate displays.
type Time struct {
	Start   time.Time
	Time    time.Time
	Dt      time.Duration
	Elapsed float64
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := time.Now()
	cmd.AddResources(&Time{
		Start: now,
		Time:  now,
	})
	app.UseSystem(
		System(timeSystem).InStage(Prelude),
	)
}

func timeSystem(timeResource *Time) {
	now := time.Now()

	timeResource.Dt = now.Sub(timeResource.Time)
	timeResource.Time = now
	timeResource.Elapsed = now.Sub(timeResource.Start).Seconds()
}
