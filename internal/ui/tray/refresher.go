package tray

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"sync"
	"time"

	"brewbell/internal/ui/icon"

	"fyne.io/fyne/v2"
)

// Refresher redraws the tray icon from the render state at a fixed cadence,
// skipping frames when nothing changed.
type Refresher struct {
	mu            sync.Mutex
	state         *icon.State
	setIcon       func(fyne.Resource)
	interval      time.Duration
	flashInterval time.Duration
	lastVersion   uint64
	drawn         bool
	flashing      bool
	logger        *slog.Logger
}

// NewRefresher creates a refresher. setIcon must be safe to call from any
// goroutine; hosts wrap fyne calls in fyne.Do.
func NewRefresher(state *icon.State, setIcon func(fyne.Resource), interval time.Duration, logger *slog.Logger) *Refresher {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Refresher{
		state:         state,
		setIcon:       setIcon,
		interval:      interval,
		flashInterval: 400 * time.Millisecond,
		logger:        logger,
	}
}

// Run refreshes until ctx is cancelled.
func (refresher *Refresher) Run(ctx context.Context) {
	ticker := time.NewTicker(refresher.interval)
	defer ticker.Stop()

	refresher.Refresh()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			refresher.Refresh()
		}
	}
}

// Refresh draws the icon if the render state changed since the last draw.
func (refresher *Refresher) Refresh() {
	refresher.mu.Lock()
	defer refresher.mu.Unlock()
	if refresher.flashing {
		return
	}
	version := refresher.state.Version()
	if refresher.drawn && version == refresher.lastVersion {
		return
	}
	refresher.drawLocked(refresher.state.Render(), version)
}

// Redraw draws the icon unconditionally.
func (refresher *Refresher) Redraw() {
	refresher.mu.Lock()
	defer refresher.mu.Unlock()
	refresher.drawLocked(refresher.state.Render(), refresher.state.Version())
}

// Flash blinks the icon to draw attention, then shows the current state.
func (refresher *Refresher) Flash(ctx context.Context, times int) error {
	refresher.mu.Lock()
	if refresher.flashing {
		refresher.mu.Unlock()
		return nil
	}
	refresher.flashing = true
	refresher.mu.Unlock()

	defer func() {
		refresher.mu.Lock()
		refresher.flashing = false
		refresher.drawLocked(refresher.state.Render(), refresher.state.Version())
		refresher.mu.Unlock()
	}()

	blank := image.NewNRGBA(image.Rect(0, 0, refresher.state.Size(), refresher.state.Size()))
	for i := 0; i < times; i++ {
		if err := refresher.set(blank, "flash"); err != nil {
			return err
		}
		if !sleepWithContext(ctx, refresher.flashInterval) {
			return ctx.Err()
		}
		if err := refresher.set(refresher.state.Render(), "flash-on"); err != nil {
			return err
		}
		if !sleepWithContext(ctx, refresher.flashInterval) {
			return ctx.Err()
		}
	}
	return nil
}

func (refresher *Refresher) drawLocked(img image.Image, version uint64) {
	if err := refresher.set(img, fmt.Sprintf("v%d", version)); err != nil {
		refresher.logger.Warn("draw tray icon", "error", err)
		return
	}
	refresher.lastVersion = version
	refresher.drawn = true
}

func (refresher *Refresher) set(img image.Image, tag string) error {
	data, err := icon.EncodePNG(img)
	if err != nil {
		return err
	}
	refresher.setIcon(fyne.NewStaticResource(fmt.Sprintf("brewbell-%s.png", tag), data))
	return nil
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
