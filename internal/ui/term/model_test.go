package term

import (
	"testing"
	"time"

	"brewbell/internal/core/brewer"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRunning(t *testing.T, seconds int) (*brewer.Controller, time.Time) {
	t.Helper()
	start := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)
	controller := brewer.New(nil, nil, brewer.Config{Now: func() time.Time { return start }})
	controller.Start(seconds)
	return controller, start
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestModel_TicksFollowWallClock(t *testing.T) {
	controller, start := newRunning(t, 60)
	m := New(controller, time.Second)

	updated, cmd := m.Update(tickMsg(start.Add(3500 * time.Millisecond)))
	m = updated.(Model)

	assert.Equal(t, 57, controller.Remaining())
	assert.False(t, isQuit(cmd))
	assert.Equal(t, OutcomeRunning, m.Outcome())

	updated, _ = m.Update(tickMsg(start.Add(4 * time.Second)))
	m = updated.(Model)
	assert.Equal(t, 56, controller.Remaining(), "carried half second completes a tick")
	assert.Contains(t, m.View(), "0:56")
}

func TestModel_CompletesAfterGap(t *testing.T) {
	controller, start := newRunning(t, 30)
	m := New(controller, time.Second)

	updated, cmd := m.Update(tickMsg(start.Add(10 * time.Minute)))
	m = updated.(Model)

	assert.Equal(t, 0, controller.Remaining())
	assert.Equal(t, brewer.StateCompleted, controller.State())
	assert.Equal(t, OutcomeCompleted, m.Outcome())
	assert.True(t, isQuit(cmd))
	assert.Contains(t, m.View(), "Brewing complete")
}

func TestModel_QuitKeyCancels(t *testing.T) {
	for _, key := range []tea.KeyMsg{
		{Type: tea.KeyRunes, Runes: []rune("q")},
		{Type: tea.KeyCtrlC},
		{Type: tea.KeyEsc},
	} {
		t.Run(key.String(), func(t *testing.T) {
			controller, _ := newRunning(t, 30)
			m := New(controller, time.Second)

			updated, cmd := m.Update(key)
			m = updated.(Model)

			require.True(t, isQuit(cmd))
			assert.Equal(t, brewer.StateCancelled, controller.State())
			assert.Equal(t, OutcomeCancelled, m.Outcome())
			assert.Contains(t, m.View(), "Cancelled at 0:30")
		})
	}
}

func TestModel_WindowResizeBoundsBar(t *testing.T) {
	controller, _ := newRunning(t, 30)
	m := New(controller, time.Second)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 200, Height: 40})
	assert.Equal(t, maxBarWidth, updated.(Model).bar.Width)

	updated, _ = m.Update(tea.WindowSizeMsg{Width: 8, Height: 40})
	assert.Equal(t, 10, updated.(Model).bar.Width)
}
