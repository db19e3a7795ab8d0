package components

import (
	"strings"

	"github.com/PizzaHomicide/reel/internal/domain"
	kb "github.com/PizzaHomicide/reel/internal/ui/tui/keybindings"
	"github.com/PizzaHomicide/reel/internal/ui/tui/styles"
	"github.com/PizzaHomicide/reel/internal/ui/tui/util"
	"github.com/charmbracelet/lipgloss"
)

const keySeparator = " • "

// keyStyle is used to highlight keyboard shortcuts in UI
var keyStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("#7D56F4")).
	Bold(true)

// KeyBindingsBar renders a centred footer listing each binding's primary key.  Bindings that do not fit in width
// are left off, so earlier entries in the list take priority.
func KeyBindingsBar(width int, bindings []kb.Binding) string {
	var parts []string
	used := 0
	for _, b := range bindings {
		part := keyStyle.Render(b.KeyMap.Primary) + ": " + b.KeyMap.Help
		partWidth := lipgloss.Width(part)
		if len(parts) > 0 {
			partWidth += lipgloss.Width(keySeparator)
		}
		if used+partWidth > width {
			break
		}
		parts = append(parts, part)
		used += partWidth
	}

	return styles.CenteredText(width, styles.Info.Render(strings.Join(parts, keySeparator)))
}

// StatusBar renders one line describing playback, coloured by status and fitted to width
func StatusBar(width int, status domain.PlaybackStatus, text string) string {
	style := styles.StatusStopped
	switch status {
	case domain.StatusPlaying:
		style = styles.StatusPlaying
	case domain.StatusPaused:
		style = styles.StatusPaused
	}
	// Leave room for the style's horizontal padding
	return style.Render(util.FitWidth(text, max(width-style.GetHorizontalPadding(), 0)))
}
