package brewer

import (
	"sync"
	"time"

	"brewbell/internal/core/model"
	"brewbell/internal/core/shape"
	"brewbell/internal/ui/icon"

	"github.com/google/uuid"
)

// QuickTimerName labels brews started from a bare duration.
const QuickTimerName = "Quick timer"

// Completion describes a brew that ran to zero.
type Completion struct {
	BrewID  uuid.UUID
	Name    string
	Total   int
	Options model.BrewOptions
	At      time.Time
}

// Notifier receives the one-shot completion signal. Implementations must
// return promptly; delivery is their concern.
type Notifier interface {
	BrewComplete(completion Completion)
}

// Renderer receives render snapshots pushed by the controller.
type Renderer interface {
	Apply(snapshot icon.Snapshot)
	Restore()
}

// Brew is a copy of the active (or last) brew.
type Brew struct {
	ID        uuid.UUID
	Name      string
	Shape     shape.Shape
	Options   model.BrewOptions
	Total     int
	Remaining int
	StartedAt time.Time
}

// Config contains runtime options for the Controller.
type Config struct {
	Defaults model.BrewOptions
	Now      func() time.Time
}

// Controller is the brew countdown state machine.
type Controller struct {
	mu             sync.Mutex
	renderer       Renderer
	notifier       Notifier
	options        Config
	state          State
	brew           Brew
	completedFired bool
	events         []chan Event
}

// New creates an idle Controller. Renderer and notifier may be nil.
func New(renderer Renderer, notifier Notifier, options Config) *Controller {
	if options.Now == nil {
		options.Now = time.Now
	}
	return &Controller{
		renderer: renderer,
		notifier: notifier,
		options:  options,
		state:    StateIdle,
	}
}

// SetNotifier injects the completion notifier.
func (controller *Controller) SetNotifier(notifier Notifier) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.notifier = notifier
}

// SetDefaults replaces the options used by Start. Running brews keep theirs.
func (controller *Controller) SetDefaults(options model.BrewOptions) {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	controller.options.Defaults = options
}

// Subscribe registers a new observer channel.
func (controller *Controller) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	controller.mu.Lock()
	controller.events = append(controller.events, ch)
	controller.mu.Unlock()
	return ch
}

// Close closes all observer channels.
func (controller *Controller) Close() {
	controller.mu.Lock()
	events := controller.events
	controller.events = nil
	controller.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

// Start begins a quick-timer brew of durationSeconds using the default options.
// Non-positive durations count as one second.
func (controller *Controller) Start(durationSeconds int) uuid.UUID {
	controller.mu.Lock()
	defaults := controller.options.Defaults
	controller.mu.Unlock()

	return controller.begin(QuickTimerName, durationSeconds, shape.Default, defaults)
}

// StartBeverage begins brewing the beverage with the given options.
func (controller *Controller) StartBeverage(beverage model.Beverage, options model.BrewOptions) uuid.UUID {
	return controller.begin(beverage.Name, beverage.BrewSeconds, beverage.Shape, options)
}

func (controller *Controller) begin(name string, durationSeconds int, cupShape shape.Shape, options model.BrewOptions) uuid.UUID {
	if durationSeconds < 1 {
		durationSeconds = 1
	}

	controller.mu.Lock()
	defer controller.mu.Unlock()

	// Any active brew is replaced without a cancellation event.
	controller.brew = Brew{
		ID:        uuid.New(),
		Name:      name,
		Shape:     shape.Normalize(cupShape),
		Options:   options,
		Total:     durationSeconds,
		Remaining: durationSeconds,
		StartedAt: controller.options.Now(),
	}
	controller.state = StateRunning
	controller.completedFired = false

	controller.pushSnapshotLocked()
	controller.emitLocked(controller.eventLocked(EventStarted))
	return controller.brew.ID
}

// Tick advances the countdown by elapsedSeconds (values below one count as
// one). It is a no-op unless a brew is running.
func (controller *Controller) Tick(elapsedSeconds int) {
	controller.advance(uuid.Nil, elapsedSeconds)
}

// advance ticks the running brew; a non-nil brewID must match it.
func (controller *Controller) advance(brewID uuid.UUID, elapsedSeconds int) {
	if elapsedSeconds < 1 {
		elapsedSeconds = 1
	}

	controller.mu.Lock()
	if controller.state != StateRunning || (brewID != uuid.Nil && brewID != controller.brew.ID) {
		controller.mu.Unlock()
		return
	}

	controller.brew.Remaining -= elapsedSeconds
	if controller.brew.Remaining < 0 {
		controller.brew.Remaining = 0
	}
	controller.pushSnapshotLocked()
	controller.emitLocked(controller.eventLocked(EventProgress))

	if controller.brew.Remaining > 0 || controller.completedFired {
		controller.mu.Unlock()
		return
	}

	controller.completedFired = true
	controller.state = StateCompleted
	completion := Completion{
		BrewID:  controller.brew.ID,
		Name:    controller.brew.Name,
		Total:   controller.brew.Total,
		Options: controller.brew.Options,
		At:      controller.options.Now(),
	}
	controller.emitLocked(controller.eventLocked(EventCompleted))
	notifier := controller.notifier
	controller.mu.Unlock()

	if notifier != nil {
		notifier.BrewComplete(completion)
	}
}

// Cancel stops a running brew and returns the icon to its idle look.
// It is a no-op unless a brew is running.
func (controller *Controller) Cancel() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.state != StateRunning {
		return
	}
	controller.state = StateCancelled
	if controller.renderer != nil {
		controller.renderer.Restore()
	}
	controller.emitLocked(controller.eventLocked(EventCancelled))
}

// Reset clears a completed or cancelled brew back to idle.
func (controller *Controller) Reset() {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	if controller.state != StateCompleted && controller.state != StateCancelled {
		return
	}
	controller.state = StateIdle
	controller.brew.Remaining = 0
	if controller.renderer != nil {
		controller.renderer.Restore()
	}
	controller.emitLocked(controller.eventLocked(EventReset))
}

// Remaining returns the seconds left in the current brew.
func (controller *Controller) Remaining() int {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.brew.Remaining
}

// IsRunning reports whether a brew is counting down.
func (controller *Controller) IsRunning() bool {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state == StateRunning
}

// State returns the current controller state.
func (controller *Controller) State() State {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.state
}

// Progress returns the elapsed fraction of the current brew.
func (controller *Controller) Progress() float64 {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.progressLocked()
}

// Current returns a copy of the current brew.
func (controller *Controller) Current() Brew {
	controller.mu.Lock()
	defer controller.mu.Unlock()
	return controller.brew
}

func (controller *Controller) progressLocked() float64 {
	if controller.state == StateIdle || controller.brew.Total <= 0 {
		return 0
	}
	progress := float64(controller.brew.Total-controller.brew.Remaining) / float64(controller.brew.Total)
	if progress < 0 {
		return 0
	}
	if progress > 1 {
		return 1
	}
	return progress
}

func (controller *Controller) pushSnapshotLocked() {
	if controller.renderer == nil {
		return
	}
	label := ""
	if controller.brew.Options.ShowTimer {
		label = model.FormatRemaining(controller.brew.Remaining)
	}
	controller.renderer.Apply(icon.Snapshot{
		Shape:          controller.brew.Shape,
		Progress:       controller.progressLocked(),
		RemainingLabel: label,
	})
}

func (controller *Controller) eventLocked(eventType EventType) Event {
	return Event{
		Type:      eventType,
		State:     controller.state,
		BrewID:    controller.brew.ID,
		Name:      controller.brew.Name,
		Total:     controller.brew.Total,
		Remaining: controller.brew.Remaining,
		Progress:  controller.progressLocked(),
		At:        controller.options.Now(),
	}
}

func (controller *Controller) emitLocked(event Event) {
	for _, ch := range controller.events {
		select {
		case ch <- event:
		default:
		}
	}
}
