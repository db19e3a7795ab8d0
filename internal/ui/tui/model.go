package tui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PizzaHomicide/reel/internal/command"
	"github.com/PizzaHomicide/reel/internal/domain"
	"github.com/PizzaHomicide/reel/internal/log"
	"github.com/PizzaHomicide/reel/internal/ui/tui/components"
	kb "github.com/PizzaHomicide/reel/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/reel/internal/ui/tui/styles"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Executor runs one command line.  Implemented by command.Dispatcher.
type Executor interface {
	Execute(line string) error
}

// PlaybackStatus exposes what the status bar shows.  Implemented by service.PlaybackService.
type PlaybackStatus interface {
	Current() *domain.Video
	Status() domain.PlaybackStatus
}

// chrome is the number of rows used by everything except the output viewport
const chrome = 6

// Model is the single screen of the terminal UI: scrolling output, a status bar and the command input
type Model struct {
	width, height int

	bridge   *Bridge
	executor Executor
	playback PlaybackStatus

	output   viewport.Model
	input    textinput.Model
	lines    []string
	history  []string
	histPos  int
	busy     bool // A command is running
	awaiting bool // A search is waiting for a selection
	showHelp bool
	status   string
	statusOf domain.PlaybackStatus
}

func NewModel(bridge *Bridge, executor Executor, playback PlaybackStatus, prompt string) *Model {
	input := textinput.New()
	input.Prompt = prompt
	input.Placeholder = "HELP"
	input.Focus()

	m := &Model{
		bridge:   bridge,
		executor: executor,
		playback: playback,
		output:   viewport.New(80, 20),
		input:    input,
	}
	m.refreshStatus()
	m.appendLines("Hello and welcome to reel, what would you like to do?",
		"Enter HELP for list of available commands or EXIT to terminate.")
	return m
}

func (m *Model) Init() tea.Cmd {
	log.Info("Initialising reel TUI")
	return tea.Batch(textinput.Blink, m.bridge.listen())
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		log.Debug("Window size changed", "width", msg.Width, "height", msg.Height)
		m.resize(msg.Width, msg.Height)
		return m, nil

	case outputMsg:
		m.appendLines(msg.Line)
		return m, m.bridge.listen()

	case awaitingSelectionMsg:
		m.awaiting = true
		m.input.Placeholder = "result number"
		return m, m.bridge.listen()

	case commandDoneMsg:
		m.busy = false
		m.awaiting = false
		m.input.Placeholder = "HELP"
		m.refreshStatus()
		if errors.Is(msg.Err, command.ErrExit) {
			m.bridge.Close()
			return m, tea.Quit
		}
		if msg.Err != nil {
			log.Error("Command failed", "error", msg.Err)
			m.appendLines(fmt.Sprintf("error: %v", msg.Err))
		}
		return m, m.bridge.listen()

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch kb.GetActionByKey(msg, kb.ContextGlobal) {
	case kb.ActionQuit:
		log.Info("Quit command received.  Shutting down...")
		m.bridge.Close()
		return m, tea.Quit
	case kb.ActionToggleHelp:
		m.showHelp = !m.showHelp
		return m, nil
	}

	if m.showHelp {
		if kb.GetActionByKey(msg, kb.ContextHelp) == kb.ActionBack {
			m.showHelp = false
		}
		return m, nil
	}

	switch kb.GetActionByKey(msg, m.context()) {
	case kb.ActionSubmit:
		return m, m.submit()
	case kb.ActionCancelSelect:
		m.input.SetValue("")
		return m, m.submit()
	case kb.ActionHistoryPrev:
		m.recall(-1)
		return m, nil
	case kb.ActionHistoryNext:
		m.recall(1)
		return m, nil
	case kb.ActionScrollUp, kb.ActionScrollDown:
		var cmd tea.Cmd
		m.output, cmd = m.output.Update(msg)
		return m, cmd
	case kb.ActionScrollTop:
		m.output.GotoTop()
		return m, nil
	case kb.ActionScrollBottom:
		m.output.GotoBottom()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit sends the input line either to the waiting search prompt or to the dispatcher
func (m *Model) submit() tea.Cmd {
	line := m.input.Value()
	m.input.SetValue("")

	if m.awaiting {
		m.awaiting = false
		m.appendLines(styles.Echo.Render("? ") + line)
		return m.bridge.answer(line)
	}

	if m.busy {
		return nil
	}
	if strings.TrimSpace(line) == "" {
		return nil
	}

	m.history = append(m.history, line)
	m.histPos = len(m.history)
	m.busy = true
	m.appendLines(styles.Echo.Render(m.input.Prompt) + line)
	return m.bridge.execute(m.executor, line)
}

// recall moves through previously submitted commands
func (m *Model) recall(delta int) {
	if len(m.history) == 0 {
		return
	}
	m.histPos += delta
	if m.histPos < 0 {
		m.histPos = 0
	}
	if m.histPos >= len(m.history) {
		m.histPos = len(m.history)
		m.input.SetValue("")
		return
	}
	m.input.SetValue(m.history[m.histPos])
	m.input.CursorEnd()
}

func (m *Model) context() kb.ContextName {
	if m.awaiting {
		return kb.ContextSelection
	}
	return kb.ContextCommand
}

func (m *Model) appendLines(lines ...string) {
	m.lines = append(m.lines, lines...)
	m.output.SetContent(strings.Join(m.lines, "\n"))
	m.output.GotoBottom()
}

func (m *Model) refreshStatus() {
	m.statusOf = m.playback.Status()
	switch m.statusOf {
	case domain.StatusStopped:
		m.status = "■ Stopped"
	case domain.StatusPaused:
		m.status = "❚❚ " + m.playback.Current().Title
	default:
		m.status = "▶ " + m.playback.Current().Title
	}
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.output.Width = width
	m.output.Height = max(height-chrome, 1)
	m.input.Width = max(width-lipgloss.Width(m.input.Prompt)-1, 1)
	m.output.GotoBottom()
}

func (m *Model) View() string {
	width := m.width
	if width == 0 {
		width = 80
	}

	if m.showHelp {
		help := command.HelpText() + "\n" + kb.FormatKeyHelp(kb.ContextBindings[kb.ContextHelp][0])
		return lipgloss.JoinVertical(lipgloss.Left,
			styles.Header(width, "reel - help"),
			styles.ContentBox(width-2, help, 1),
		)
	}

	status := components.StatusBar(width, m.statusOf, m.status)

	hint := ""
	if m.awaiting {
		hint = styles.SelectionHint.Render("Enter the number of a result to play it, anything else to skip")
	}

	bar := components.KeyBindingsBar(width, kb.ContextBindings[m.context()])

	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Header(width, "reel"),
		m.output.View(),
		status,
		hint,
		m.input.View(),
		bar,
	)
}
