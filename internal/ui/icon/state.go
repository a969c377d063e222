package icon

import (
	"image"
	"math"
	"sync"

	"brewbell/internal/core/shape"
)

// DefaultSize is the edge length, in pixels, of rendered icons.
const DefaultSize = 128

// Snapshot is the group of values the icon is drawn from.
type Snapshot struct {
	Shape          shape.Shape
	Progress       float64
	RemainingLabel string
}

// IdleSnapshot is the resting appearance shown when nothing is brewing.
func IdleSnapshot() Snapshot {
	return Snapshot{Shape: shape.Default}
}

// State holds the latest snapshot and renders it on demand.
type State struct {
	mu       sync.RWMutex
	snapshot Snapshot
	version  uint64
	size     int
}

// NewState returns a State in the idle appearance.
func NewState(size int) *State {
	if size <= 0 {
		size = DefaultSize
	}
	return &State{snapshot: IdleSnapshot(), size: size}
}

// SetShape sets the cup shape.
func (state *State) SetShape(value shape.Shape) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.snapshot.Shape = shape.Normalize(value)
	state.version++
}

// SetProgress sets the fill fraction, clamped to [0, 1].
func (state *State) SetProgress(value float64) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.snapshot.Progress = clampProgress(value)
	state.version++
}

// SetRemainingLabel sets the text drawn over the cup. Empty hides it.
func (state *State) SetRemainingLabel(text string) {
	state.mu.Lock()
	defer state.mu.Unlock()
	state.snapshot.RemainingLabel = text
	state.version++
}

// Apply replaces the whole snapshot at once.
func (state *State) Apply(snapshot Snapshot) {
	snapshot.Shape = shape.Normalize(snapshot.Shape)
	snapshot.Progress = clampProgress(snapshot.Progress)

	state.mu.Lock()
	defer state.mu.Unlock()
	state.snapshot = snapshot
	state.version++
}

// Restore returns to the idle appearance. Hosts call it before exiting.
func (state *State) Restore() {
	state.Apply(IdleSnapshot())
}

// Snapshot returns a copy of the current snapshot.
func (state *State) Snapshot() Snapshot {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.snapshot
}

// Version increases on every change.
func (state *State) Version() uint64 {
	state.mu.RLock()
	defer state.mu.RUnlock()
	return state.version
}

// Size returns the icon edge length in pixels.
func (state *State) Size() int {
	return state.size
}

// Render draws the current snapshot.
func (state *State) Render() image.Image {
	return Draw(state.Snapshot(), state.size)
}

func clampProgress(value float64) float64 {
	if math.IsNaN(value) || value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
