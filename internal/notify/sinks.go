package notify

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"time"

	"brewbell/internal/core/brewer"

	"github.com/gen2brain/beeep"
)

// ErrSpeechUnavailable indicates no speech synthesiser was found on PATH.
var ErrSpeechUnavailable = errors.New("speech synthesis unavailable")

// DesktopSink posts a desktop notification through beeep.
type DesktopSink struct {
	send func(title, message string) error
}

// NewDesktopSink returns a sink backed by the platform notification service.
func NewDesktopSink() *DesktopSink {
	return &DesktopSink{
		send: func(title, message string) error {
			return beeep.Notify(title, message, "")
		},
	}
}

func (sink *DesktopSink) Kind() Kind {
	return KindNotify
}

func (sink *DesktopSink) Deliver(_ context.Context, completion brewer.Completion) error {
	if err := sink.send(Title, Message(completion)); err != nil {
		return fmt.Errorf("desktop notification: %w", err)
	}
	return nil
}

// SoundSink plays a short run of beeps.
type SoundSink struct {
	Repeat int
	Gap    time.Duration
	beep   func() error
}

// NewSoundSink returns a sink that beeps three times.
func NewSoundSink() *SoundSink {
	return &SoundSink{
		Repeat: 3,
		Gap:    300 * time.Millisecond,
		beep: func() error {
			return beeep.Beep(beeep.DefaultFreq, beeep.DefaultDuration)
		},
	}
}

func (sink *SoundSink) Kind() Kind {
	return KindSound
}

func (sink *SoundSink) Deliver(ctx context.Context, _ brewer.Completion) error {
	for i := 0; i < sink.Repeat; i++ {
		if i > 0 && !sleepWithContext(ctx, sink.Gap) {
			return ctx.Err()
		}
		if err := sink.beep(); err != nil {
			return fmt.Errorf("beep: %w", err)
		}
	}
	return nil
}

// SpeechSink reads the completion message aloud with the first speech
// command found on PATH.
type SpeechSink struct {
	lookPath func(string) (string, error)
	run      func(ctx context.Context, path string, text string) error
}

var speechCommands = []string{"say", "spd-say", "espeak"}

// NewSpeechSink returns a sink using say, spd-say or espeak.
func NewSpeechSink() *SpeechSink {
	return &SpeechSink{
		lookPath: exec.LookPath,
		run: func(ctx context.Context, path string, text string) error {
			return exec.CommandContext(ctx, path, text).Run()
		},
	}
}

func (sink *SpeechSink) Kind() Kind {
	return KindSpeak
}

func (sink *SpeechSink) Deliver(ctx context.Context, completion brewer.Completion) error {
	for _, command := range speechCommands {
		path, err := sink.lookPath(command)
		if err != nil {
			continue
		}
		if err := sink.run(ctx, path, Message(completion)); err != nil {
			return fmt.Errorf("%s: %w", command, err)
		}
		return nil
	}
	return ErrSpeechUnavailable
}

// FuncSink adapts a host callback, such as a tray flash or alert window.
type FuncSink struct {
	kind    Kind
	deliver func(brewer.Completion) error
}

// NewFuncSink wraps deliver as a sink of the given kind.
func NewFuncSink(kind Kind, deliver func(brewer.Completion) error) *FuncSink {
	return &FuncSink{kind: kind, deliver: deliver}
}

func (sink *FuncSink) Kind() Kind {
	return sink.kind
}

func (sink *FuncSink) Deliver(_ context.Context, completion brewer.Completion) error {
	return sink.deliver(completion)
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
