package learngl

import (
	"time"
)

type Time struct {
	Start time.Time
	Time  time.Time
	Dt    time.Duration

	ticking bool
}

// Seconds is the frame delta in seconds.
func (t *Time) Seconds() float32 {
	return float32(t.Dt.Seconds())
}

// Elapsed is the time since the first frame, in seconds.
func (t *Time) Elapsed() float32 {
	return float32(t.Time.Sub(t.Start).Seconds())
}

// advance moves the clock to now. The first tick restarts the clock; setup
// is not a frame.
func (t *Time) advance(now time.Time) {
	if !t.ticking {
		t.ticking = true
		t.Start = now
		t.Time = now
	}
	t.Dt = now.Sub(t.Time)
	t.Time = now
}

type TimeModule struct {
}

func (mod TimeModule) Install(app *App, cmd *Commands) {
	now := time.Now()
	cmd.AddResources(&Time{
		Start: now,
		Time:  now,
		Dt:    0,
	})
	app.UseSystem(
		System(timeSystem).
			InStage(Prelude),
	)
}

func timeSystem(timeResource *Time) {
	timeResource.advance(time.Now())
}
