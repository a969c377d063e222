// Package term renders a running brew in the terminal with bubbletea.
package term

import (
	"fmt"
	"strings"
	"time"

	"brewbell/internal/core/brewer"
	"brewbell/internal/core/model"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultInterval = 250 * time.Millisecond
	maxBarWidth     = 60
)

// Outcome is how the terminal session ended.
type Outcome int

const (
	OutcomeRunning Outcome = iota
	OutcomeCompleted
	OutcomeCancelled
)

type tickMsg time.Time

// Model drives a Controller from bubbletea ticks. The controller must already
// be running a brew.
type Model struct {
	controller *brewer.Controller
	pacer      *brewer.Pacer
	interval   time.Duration
	bar        progress.Model
	outcome    Outcome
}

// New creates a terminal model for the controller's current brew.
func New(controller *brewer.Controller, interval time.Duration) Model {
	if interval <= 0 {
		interval = defaultInterval
	}
	bar := progress.New(progress.WithScaledGradient("#7A4A1E", "#E8BE42"))
	bar.Width = 40
	pacer := &brewer.Pacer{}
	pacer.Reset(controller.Current().StartedAt)
	return Model{
		controller: controller,
		pacer:      pacer,
		interval:   interval,
		bar:        bar,
	}
}

// Outcome reports how the session ended.
func (m Model) Outcome() Outcome {
	return m.outcome
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.tick()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			m.controller.Cancel()
			m.outcome = OutcomeCancelled
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.bar.Width = min(msg.Width-4, maxBarWidth)
		if m.bar.Width < 10 {
			m.bar.Width = 10
		}
	case tickMsg:
		return m.advance(time.Time(msg))
	}
	return m, nil
}

func (m Model) advance(now time.Time) (tea.Model, tea.Cmd) {
	if elapsed := m.pacer.Advance(now); elapsed > 0 {
		m.controller.Tick(elapsed)
	}

	switch m.controller.State() {
	case brewer.StateCompleted:
		m.outcome = OutcomeCompleted
		return m, tea.Quit
	case brewer.StateCancelled, brewer.StateIdle:
		m.outcome = OutcomeCancelled
		return m, tea.Quit
	}
	return m, m.tick()
}

// View implements tea.Model.
func (m Model) View() string {
	brew := m.controller.Current()
	var b strings.Builder

	b.WriteString(styleName.Render(brew.Name))
	b.WriteString("\n\n")
	b.WriteString(m.bar.ViewAs(m.controller.Progress()))
	b.WriteString("  ")

	switch m.outcome {
	case OutcomeCompleted:
		b.WriteString(styleDone.Render("Brewing complete"))
	case OutcomeCancelled:
		b.WriteString(styleCancelled.Render("Cancelled at " + model.FormatRemaining(brew.Remaining)))
	default:
		b.WriteString(styleRemaining.Render(model.FormatRemaining(brew.Remaining)))
		b.WriteString("\n\n")
		b.WriteString(styleHint.Render(fmt.Sprintf("%s total · q to cancel", model.FormatRemaining(brew.Total))))
	}
	b.WriteString("\n")
	return styleFrame.Render(b.String())
}
