package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the terminal UI and blocks until the user quits
func Run(bridge *Bridge, executor Executor, playback PlaybackStatus, prompt string) error {
	defer bridge.Close()
	p := tea.NewProgram(NewModel(bridge, executor, playback, prompt), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
