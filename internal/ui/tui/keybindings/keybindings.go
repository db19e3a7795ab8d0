package keybindings

import tea "github.com/charmbracelet/bubbletea"

// Action represents a specific action that can be triggered by a key
type Action string

// Define all possible actions
const (
	// Global actions
	ActionQuit       Action = "quit"
	ActionToggleHelp Action = "toggle_help"
	ActionBack       Action = "back" // General purpose "go back" or "cancel"

	// Output navigation
	ActionScrollUp     Action = "scroll_up"
	ActionScrollDown   Action = "scroll_down"
	ActionScrollTop    Action = "scroll_top"
	ActionScrollBottom Action = "scroll_bottom"

	// Command input
	ActionSubmit       Action = "submit"
	ActionHistoryPrev  Action = "history_prev"
	ActionHistoryNext  Action = "history_next"
	ActionCancelSelect Action = "cancel_selection"
)

// ContextName represents a specific UI context in the application that has its own keybinds
type ContextName string

const (
	ContextGlobal    ContextName = "global"
	ContextCommand   ContextName = "command"
	ContextSelection ContextName = "selection"
	ContextHelp      ContextName = "help"
)

var ContextBindings = map[ContextName][]Binding{
	ContextGlobal:    globalBindings,
	ContextCommand:   commandBindings,
	ContextSelection: selectionBindings,
	ContextHelp:      helpBindings,
}

// KeyMap stores the mappings from actions to key sequences for each context
type KeyMap struct {
	Primary   string
	Secondary string // Optional alternative key
	Help      string // Description for help screen
}

// Binding maps an action to its keys and help text
type Binding struct {
	Action Action
	KeyMap KeyMap
}

// scrollBindings contains output scrolling bindings shared by every context that shows command output
var scrollBindings = []Binding{
	{
		Action: ActionScrollUp,
		KeyMap: KeyMap{
			Primary: "pgup",
			Help:    "Scroll output up",
		},
	},
	{
		Action: ActionScrollDown,
		KeyMap: KeyMap{
			Primary: "pgdown",
			Help:    "Scroll output down",
		},
	},
	{
		Action: ActionScrollTop,
		KeyMap: KeyMap{
			Primary: "ctrl+home",
			Help:    "Scroll to the oldest output",
		},
	},
	{
		Action: ActionScrollBottom,
		KeyMap: KeyMap{
			Primary: "ctrl+end",
			Help:    "Scroll to the latest output",
		},
	},
}

// globalBindings contains key bindings that work across all views
var globalBindings = []Binding{
	{
		Action: ActionQuit,
		KeyMap: KeyMap{
			Primary: "ctrl+c",
			Help:    "Quit application",
		},
	},
	{
		Action: ActionToggleHelp,
		KeyMap: KeyMap{
			Primary: "ctrl+h",
			Help:    "Toggle command help",
		},
	},
}

// commandBindings apply while the input line takes commands
var commandBindings = withScrolling([]Binding{
	{
		Action: ActionSubmit,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Run command",
		},
	},
	{
		Action: ActionHistoryPrev,
		KeyMap: KeyMap{
			Primary: "up",
			Help:    "Previous command",
		},
	},
	{
		Action: ActionHistoryNext,
		KeyMap: KeyMap{
			Primary: "down",
			Help:    "Next command",
		},
	},
})

// selectionBindings apply while a search is waiting for the number of a result
var selectionBindings = withScrolling([]Binding{
	{
		Action: ActionSubmit,
		KeyMap: KeyMap{
			Primary: "enter",
			Help:    "Play the numbered result",
		},
	},
	{
		Action: ActionCancelSelect,
		KeyMap: KeyMap{
			Primary: "esc",
			Help:    "Don't play anything",
		},
	},
})

// helpBindings contains key bindings specific to the help view
var helpBindings = []Binding{
	{
		Action: ActionBack,
		KeyMap: KeyMap{
			Primary:   "esc",
			Secondary: "q",
			Help:      "Close help",
		},
	},
}

// GetActionKey returns the primary key for an action
func GetActionKey(action Action, bindings []Binding) string {
	for _, binding := range bindings {
		if binding.Action == action {
			return binding.KeyMap.Primary
		}
	}
	return ""
}

// GetActionByKey returns just the action for a given key, or an empty Action if not found
func GetActionByKey(keyMsg tea.KeyMsg, name ContextName) Action {
	if bindings, exists := ContextBindings[name]; exists {
		key := keyMsg.String()
		for _, binding := range bindings {
			if binding.KeyMap.Primary == key || binding.KeyMap.Secondary == key {
				return binding.Action
			}
		}
	}
	return ""
}

// FormatKeyHelp formats a key binding for display in help text
func FormatKeyHelp(binding Binding) string {
	if binding.KeyMap.Secondary != "" {
		return binding.KeyMap.Primary + "/" + binding.KeyMap.Secondary + ": " + binding.KeyMap.Help
	}
	return binding.KeyMap.Primary + ": " + binding.KeyMap.Help
}

// withScrolling is a helper function to include scroll bindings in other binding sets
func withScrolling(bindings []Binding) []Binding {
	return append(append([]Binding{}, scrollBindings...), bindings...)
}
