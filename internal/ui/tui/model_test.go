package tui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/PizzaHomicide/reel/internal/command"
	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/repository/library"
	"github.com/PizzaHomicide/reel/internal/service"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingExecutor struct {
	out   io.Writer
	lines []string
	err   error
}

func (e *recordingExecutor) Execute(line string) error {
	e.lines = append(e.lines, line)
	_, _ = fmt.Fprintf(e.out, "ran %s\n", line)
	return e.err
}

type stoppedPlayback struct{}

func (stoppedPlayback) Current() *domain.Video         { return nil }
func (stoppedPlayback) Status() domain.PlaybackStatus { return domain.StatusStopped }

func nextEvent(t *testing.T, b *Bridge) tea.Msg {
	t.Helper()
	select {
	case msg := <-b.events:
		return msg
	case <-time.After(2 * time.Second):
		t.Fatal("Timed out waiting for a bridge event")
		return nil
	}
}

// drainUntilDone feeds bridge events into the model until a command completes
func drainUntilDone(t *testing.T, m *Model, b *Bridge) {
	t.Helper()
	for {
		msg := nextEvent(t, b)
		m.Update(msg)
		if _, done := msg.(commandDoneMsg); done {
			return
		}
	}
}

func enter(m *Model, text string) tea.Cmd {
	m.input.SetValue(text)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestBridgeWriteSplitsLines(t *testing.T) {
	b := NewBridge()

	_, err := io.WriteString(b, "first\nsec")
	require.NoError(t, err)
	_, err = io.WriteString(b, "ond\n")
	require.NoError(t, err)

	assert.Equal(t, outputMsg{Line: "first"}, nextEvent(t, b))
	assert.Equal(t, outputMsg{Line: "second"}, nextEvent(t, b))
}

func TestBridgeCloseReleasesPrompt(t *testing.T) {
	b := NewBridge()

	errCh := make(chan error, 1)
	go func() {
		_, err := b.Prompt()
		errCh <- err
	}()

	assert.Equal(t, awaitingSelectionMsg{}, nextEvent(t, b))
	b.Close()
	b.Close()

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, io.EOF))
	case <-time.After(2 * time.Second):
		t.Fatal("Prompt was not released by Close")
	}
}

func TestModelRunsCommands(t *testing.T) {
	b := NewBridge()
	exec := &recordingExecutor{out: b}
	m := NewModel(b, exec, stoppedPlayback{}, "> ")

	cmd := enter(m, "NUMBER_OF_VIDEOS")
	require.NotNil(t, cmd)
	assert.True(t, m.busy)
	assert.Nil(t, enter(m, "STOP"), "input is ignored while a command runs")

	cmd()
	drainUntilDone(t, m, b)

	assert.False(t, m.busy)
	assert.Equal(t, []string{"NUMBER_OF_VIDEOS"}, exec.lines)
	assert.Contains(t, m.lines, "ran NUMBER_OF_VIDEOS")
	assert.Nil(t, enter(m, "   "), "blank lines are not executed")
}

func TestModelHistory(t *testing.T) {
	b := NewBridge()
	m := NewModel(b, &recordingExecutor{out: io.Discard}, stoppedPlayback{}, "> ")

	enter(m, "PLAY a")()
	drainUntilDone(t, m, b)
	enter(m, "PAUSE")()
	drainUntilDone(t, m, b)

	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "PAUSE", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, "PLAY a", m.input.Value())
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, "", m.input.Value())
}

func TestModelExitQuits(t *testing.T) {
	b := NewBridge()
	m := NewModel(b, &recordingExecutor{out: b, err: command.ErrExit}, stoppedPlayback{}, "> ")

	enter(m, "EXIT")()
	assert.Equal(t, outputMsg{Line: "ran EXIT"}, nextEvent(t, b))
	m.Update(outputMsg{Line: "ran EXIT"})
	done := nextEvent(t, b)
	assert.Equal(t, commandDoneMsg{Err: command.ErrExit}, done)

	_, cmd := m.Update(done)
	require.NotNil(t, cmd)
	_, quit := cmd().(tea.QuitMsg)
	assert.True(t, quit)

	// Closing the bridge on exit releases any prompt still waiting
	_, err := b.Prompt()
	assert.True(t, errors.Is(err, io.EOF))
}

func TestModelSearchSelection(t *testing.T) {
	catalog, err := library.NewCatalog([]*domain.Video{
		domain.NewVideo("amazing_cats_video_id", "Amazing Cats", []string{"#cat", "#animal"}),
		domain.NewVideo("dog_video_id", "Dog Video", []string{"#dog"}),
	})
	require.NoError(t, err)

	b := NewBridge()
	session := service.NewSession(catalog, b, b)
	m := NewModel(b, command.NewDispatcher(session, b), session.Playback, "> ")
	assert.Equal(t, "■ Stopped", m.status)

	go enter(m, "SEARCH_VIDEOS cat")()

	for !m.awaiting {
		m.Update(nextEvent(t, b))
	}
	assert.Contains(t, m.lines, "  1) Amazing Cats (amazing_cats_video_id) [#cat #animal]")
	assert.Contains(t, m.View(), "Enter the number of a result")

	answer := enter(m, "1")
	require.NotNil(t, answer)
	answer()
	drainUntilDone(t, m, b)

	assert.Contains(t, m.lines, "Playing video: Amazing Cats")
	assert.Equal(t, "▶ Amazing Cats", m.status)
	assert.False(t, m.awaiting)
}

func TestModelHelpToggle(t *testing.T) {
	b := NewBridge()
	m := NewModel(b, &recordingExecutor{out: io.Discard}, stoppedPlayback{}, "> ")
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})

	m.Update(tea.KeyMsg{Type: tea.KeyCtrlH})
	assert.True(t, m.showHelp)
	assert.True(t, strings.Contains(m.View(), "PLAY_RANDOM"))

	m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, m.showHelp)
	assert.Contains(t, m.View(), "Stopped")
}
