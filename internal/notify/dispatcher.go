package notify

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"brewbell/internal/core/brewer"
	"brewbell/internal/core/model"

	"github.com/google/uuid"
)

// Kind names a completion channel that the user can switch on or off.
type Kind string

const (
	KindNotify Kind = "notify"
	KindSound  Kind = "sound"
	KindSpeak  Kind = "speak"
	KindBounce Kind = "bounce"
	KindAlert  Kind = "alert"
)

// Enabled reports whether the brew options switch this kind on.
func (kind Kind) Enabled(options model.BrewOptions) bool {
	switch kind {
	case KindNotify:
		return options.Notify
	case KindSound:
		return options.Sound
	case KindSpeak:
		return options.Speak
	case KindBounce:
		return options.Bounce
	case KindAlert:
		return options.Alert
	default:
		return false
	}
}

// Sink delivers a completion through one channel.
type Sink interface {
	Kind() Kind
	Deliver(ctx context.Context, completion brewer.Completion) error
}

const recentLimit = 16

// Dispatcher fans a completion out to the enabled sinks without blocking
// the caller.
type Dispatcher struct {
	mu      sync.Mutex
	sinks   []Sink
	recent  []uuid.UUID
	logger  *slog.Logger
	timeout time.Duration
	wg      sync.WaitGroup
}

// NewDispatcher creates a dispatcher delivering to sinks.
func NewDispatcher(logger *slog.Logger, sinks ...Sink) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{
		sinks:   sinks,
		logger:  logger,
		timeout: 30 * time.Second,
	}
}

// Add registers another sink.
func (dispatcher *Dispatcher) Add(sink Sink) {
	dispatcher.mu.Lock()
	defer dispatcher.mu.Unlock()
	dispatcher.sinks = append(dispatcher.sinks, sink)
}

// BrewComplete implements brewer.Notifier.
func (dispatcher *Dispatcher) BrewComplete(completion brewer.Completion) {
	dispatcher.mu.Lock()
	for _, id := range dispatcher.recent {
		if id == completion.BrewID {
			dispatcher.mu.Unlock()
			dispatcher.logger.Error("completion delivered twice, dropping", "brew", completion.BrewID, "name", completion.Name)
			return
		}
	}
	dispatcher.recent = append(dispatcher.recent, completion.BrewID)
	if len(dispatcher.recent) > recentLimit {
		dispatcher.recent = dispatcher.recent[len(dispatcher.recent)-recentLimit:]
	}
	sinks := append([]Sink(nil), dispatcher.sinks...)
	dispatcher.mu.Unlock()

	dispatcher.logger.Info("brew complete", "brew", completion.BrewID, "name", completion.Name, "seconds", completion.Total)

	for _, sink := range sinks {
		if !sink.Kind().Enabled(completion.Options) {
			continue
		}
		dispatcher.wg.Add(1)
		go dispatcher.deliver(sink, completion)
	}
}

// Wait blocks until in-flight deliveries finish.
func (dispatcher *Dispatcher) Wait() {
	dispatcher.wg.Wait()
}

func (dispatcher *Dispatcher) deliver(sink Sink, completion brewer.Completion) {
	defer dispatcher.wg.Done()
	ctx, cancel := context.WithTimeout(context.Background(), dispatcher.timeout)
	defer cancel()

	if err := sink.Deliver(ctx, completion); err != nil {
		dispatcher.logger.Warn("completion delivery failed", "kind", sink.Kind(), "brew", completion.BrewID, "error", err)
	}
}

// Title is the headline used by every notification channel.
const Title = "Brewing complete"

// Message returns the body text for a completion.
func Message(completion brewer.Completion) string {
	if completion.Name == "" || completion.Name == brewer.QuickTimerName {
		return fmt.Sprintf("Your %s timer has finished.", model.FormatRemaining(completion.Total))
	}
	return fmt.Sprintf("Your %s is ready.", completion.Name)
}
