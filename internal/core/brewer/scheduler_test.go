package brewer

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacer_CarriesFractions(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var pacer Pacer
	pacer.Reset(start)

	assert.Equal(t, 0, pacer.Advance(start.Add(400*time.Millisecond)))
	assert.Equal(t, 0, pacer.Advance(start.Add(900*time.Millisecond)))
	assert.Equal(t, 1, pacer.Advance(start.Add(1300*time.Millisecond)))
	assert.Equal(t, 0, pacer.Advance(start.Add(1900*time.Millisecond)))
	assert.Equal(t, 1, pacer.Advance(start.Add(2000*time.Millisecond)))
}

func TestPacer_SleepGap(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var pacer Pacer
	pacer.Reset(start)

	assert.Equal(t, 95, pacer.Advance(start.Add(95*time.Second+200*time.Millisecond)))
	assert.Equal(t, 1, pacer.Advance(start.Add(96*time.Second+200*time.Millisecond)))
}

func TestPacer_ClockBackwards(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var pacer Pacer
	pacer.Reset(start)

	assert.Equal(t, 0, pacer.Advance(start.Add(-time.Minute)))
	assert.Equal(t, 2, pacer.Advance(start.Add(-time.Minute+2*time.Second)))
}

func TestPacer_ZeroValueStartsOnFirstReading(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	var pacer Pacer

	assert.Equal(t, 0, pacer.Advance(start))
	assert.Equal(t, 3, pacer.Advance(start.Add(3*time.Second)))
}

func TestScheduler_StepTicksElapsedSeconds(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	controller, _, notifier := newTestController()
	controller.options.Now = func() time.Time { return now }
	scheduler := NewScheduler(controller, time.Second, nil)

	scheduler.step(start.Add(time.Second))
	assert.Equal(t, 0, controller.Remaining(), "idle controller is left alone")

	controller.Start(10)
	scheduler.step(start.Add(500 * time.Millisecond))
	assert.Equal(t, 10, controller.Remaining())

	scheduler.step(start.Add(1200 * time.Millisecond))
	assert.Equal(t, 9, controller.Remaining())

	// Suspended for a minute.
	scheduler.step(start.Add(61 * time.Second))
	assert.Equal(t, 0, controller.Remaining())
	assert.Equal(t, StateCompleted, controller.State())
	assert.Equal(t, 1, notifier.count())

	scheduler.step(start.Add(70 * time.Second))
	assert.Equal(t, 1, notifier.count())
}

func TestScheduler_ResetsForNewBrew(t *testing.T) {
	start := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	now := start
	controller, _, _ := newTestController()
	controller.options.Now = func() time.Time { return now }
	scheduler := NewScheduler(controller, time.Second, nil)

	controller.Start(30)
	scheduler.step(start.Add(5 * time.Second))
	require.Equal(t, 25, controller.Remaining())

	now = start.Add(20 * time.Second)
	controller.Start(30)
	scheduler.step(start.Add(22 * time.Second))

	assert.Equal(t, 28, controller.Remaining())
}

func TestScheduler_RunStopsOnCancel(t *testing.T) {
	controller, _, _ := newTestController()
	scheduler := NewScheduler(controller, time.Millisecond, nil)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		scheduler.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("scheduler did not stop")
	}
}
