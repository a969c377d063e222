package term

import "github.com/charmbracelet/lipgloss"

var (
	colorTea    = lipgloss.Color("#C8843A")
	colorDone   = lipgloss.Color("#00E676")
	colorMuted  = lipgloss.Color("#8C8C8C")
	colorDanger = lipgloss.Color("#FF5252")
)

var (
	styleName = lipgloss.NewStyle().
			Foreground(colorTea).
			Bold(true)

	styleRemaining = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE")).
			Bold(true)

	styleDone = lipgloss.NewStyle().
			Foreground(colorDone).
			Bold(true)

	styleCancelled = lipgloss.NewStyle().
			Foreground(colorDanger)

	styleHint = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleFrame = lipgloss.NewStyle().
			Padding(1, 2)
)
