package tui

import (
	"bytes"
	"io"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
)

// outputMsg carries one line of session output
type outputMsg struct {
	Line string
}

// awaitingSelectionMsg is sent when a search blocks waiting for the user to pick a result
type awaitingSelectionMsg struct{}

// commandDoneMsg is sent when a command has finished running
type commandDoneMsg struct {
	Err error
}

// Bridge connects the synchronous session to the bubbletea event loop.  Session output written to it and prompts
// issued through it are delivered to the UI in order, as messages on a single channel.
type Bridge struct {
	events  chan tea.Msg
	answers chan string
	done    chan struct{}

	mu      sync.Mutex
	partial bytes.Buffer

	closeOnce sync.Once
}

func NewBridge() *Bridge {
	return &Bridge{
		events:  make(chan tea.Msg, 256),
		answers: make(chan string),
		done:    make(chan struct{}),
	}
}

// Write splits p into lines and emits an outputMsg for each complete one
func (b *Bridge) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.partial.Write(p)
	for {
		line, err := b.partial.ReadString('\n')
		if err != nil {
			// Incomplete line, keep it for the next write
			b.partial.Reset()
			b.partial.WriteString(line)
			break
		}
		b.emit(outputMsg{Line: line[:len(line)-1]})
	}
	return len(p), nil
}

// Prompt blocks until the UI submits an answer.  Returns io.EOF once the bridge is closed.
func (b *Bridge) Prompt() (string, error) {
	b.emit(awaitingSelectionMsg{})
	select {
	case answer := <-b.answers:
		return answer, nil
	case <-b.done:
		return "", io.EOF
	}
}

// Close releases any prompt that is still waiting for an answer
func (b *Bridge) Close() {
	b.closeOnce.Do(func() {
		close(b.done)
	})
}

func (b *Bridge) emit(msg tea.Msg) {
	select {
	case b.events <- msg:
	case <-b.done:
	}
}

// listen waits for the next event from the session
func (b *Bridge) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.events:
			return msg
		case <-b.done:
			return nil
		}
	}
}

// answer hands the user's reply to the waiting prompt
func (b *Bridge) answer(reply string) tea.Cmd {
	return func() tea.Msg {
		select {
		case b.answers <- reply:
		case <-b.done:
		}
		return nil
	}
}

// execute runs a command line off the UI goroutine.  Completion is reported through the event channel so that it
// arrives after all of the command's output.
func (b *Bridge) execute(executor Executor, line string) tea.Cmd {
	return func() tea.Msg {
		err := executor.Execute(line)
		b.emit(commandDoneMsg{Err: err})
		return nil
	}
}
