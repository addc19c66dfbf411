package learngl

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTime_advance(t *testing.T) {
	start := time.Unix(100, 0)
	tm := &Time{}

	tm.advance(start)
	assert.Zero(t, tm.Dt)
	assert.Equal(t, start, tm.Start)

	tm.advance(start.Add(16 * time.Millisecond))
	assert.Equal(t, 16*time.Millisecond, tm.Dt)
	assert.InDelta(t, 0.016, tm.Seconds(), 1e-6)

	tm.advance(start.Add(2 * time.Second))
	assert.InDelta(t, 1.984, tm.Seconds(), 1e-6)
	assert.InDelta(t, 2.0, tm.Elapsed(), 1e-6)
}

func TestTime_FirstTickIgnoresSetup(t *testing.T) {
	installed := time.Unix(100, 0)
	tm := &Time{Start: installed, Time: installed}

	first := installed.Add(3 * time.Second)
	tm.advance(first)
	assert.Zero(t, tm.Dt, "setup is not a frame")
	assert.Equal(t, first, tm.Start)
	assert.Zero(t, tm.Elapsed())
}

func TestTimeModule_UpdatesEveryFrame(t *testing.T) {
	app := NewApp().UseModules(TimeModule{})
	tm, ok := Resource[Time](app)
	require.True(t, ok)
	installed := tm.Time

	app.Step()
	assert.False(t, tm.Time.Before(installed))
	assert.Zero(t, tm.Dt)
	assert.Equal(t, tm.Time, tm.Start)

	app.Step()
	assert.GreaterOrEqual(t, tm.Dt, time.Duration(0))
	assert.False(t, tm.Time.Before(tm.Start))
}
