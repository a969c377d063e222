package brewer

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
)

// Scheduler is the single loop that ticks a Controller.
type Scheduler struct {
	controller *Controller
	interval   time.Duration
	now        func() time.Time
	logger     *slog.Logger
	pacer      Pacer
	brewID     uuid.UUID
}

// NewScheduler polls the wall clock every interval (a quarter second when
// interval is not positive) and ticks the controller once per elapsed second.
func NewScheduler(controller *Controller, interval time.Duration, logger *slog.Logger) *Scheduler {
	if interval <= 0 {
		interval = 250 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		controller: controller,
		interval:   interval,
		now:        time.Now,
		logger:     logger,
	}
}

// Run blocks until ctx is cancelled.
func (scheduler *Scheduler) Run(ctx context.Context) {
	ticker := time.NewTicker(scheduler.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			scheduler.step(scheduler.now())
		}
	}
}

func (scheduler *Scheduler) step(now time.Time) {
	if !scheduler.controller.IsRunning() {
		return
	}
	brew := scheduler.controller.Current()
	if brew.ID != scheduler.brewID {
		scheduler.brewID = brew.ID
		scheduler.pacer.Reset(brew.StartedAt)
	}

	elapsed := scheduler.pacer.Advance(now)
	if elapsed <= 0 {
		return
	}
	if elapsed > 1 {
		scheduler.logger.Debug("catching up after clock gap", "brew", brew.ID, "seconds", elapsed)
	}
	scheduler.controller.advance(brew.ID, elapsed)
}
