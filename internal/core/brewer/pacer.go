package brewer

import "time"

// Pacer turns wall-clock readings into whole elapsed seconds, carrying the
// remainder between calls. Readings are stripped of their monotonic
// component so time spent suspended still counts.
type Pacer struct {
	last  time.Time
	carry time.Duration
}

// Reset restarts accounting at the given instant.
func (pacer *Pacer) Reset(at time.Time) {
	pacer.last = at.Round(0)
	pacer.carry = 0
}

// Advance returns the whole seconds elapsed since the previous reading.
func (pacer *Pacer) Advance(now time.Time) int {
	now = now.Round(0)
	if pacer.last.IsZero() {
		pacer.last = now
		return 0
	}
	delta := now.Sub(pacer.last)
	pacer.last = now
	if delta <= 0 {
		// Clock moved backwards; wait for it to catch up.
		return 0
	}
	pacer.carry += delta
	seconds := int(pacer.carry / time.Second)
	pacer.carry -= time.Duration(seconds) * time.Second
	return seconds
}
