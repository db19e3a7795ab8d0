package styles

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Text styles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#FAFAFA")).
		Background(lipgloss.Color("#7D56F4")).
		Padding(0, 1)

	Info = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#DEDEDE"))

	// Echo of the command the user typed
	Echo = lipgloss.NewStyle().
		Foreground(lipgloss.Color("#7D56F4")).
		Bold(true)

	// Status bar styles, one per playback status
	StatusPlaying = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#43BF6D")).
			Padding(0, 1)

	StatusPaused = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2C94C")).
			Padding(0, 1)

	StatusStopped = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 1)

	// Hint shown above the input while a search waits for a selection
	SelectionHint = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F2C94C")).
			Italic(true)
)

// Layout helpers
func Header(width int, title string) string {
	return Title.
		Width(width).
		Align(lipgloss.Center).
		Render(title)
}

func ContentBox(width int, content string, padding int) string {
	return lipgloss.NewStyle().
		Width(width).
		Padding(padding).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#555555")).
		Render(content)
}

func CenteredText(width int, text string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(text)
}
