package border

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/justinpbarnett/buildwall/internal/ui/styles"
)

// Keybind is a single hint such as [esc] back.
type Keybind struct {
	Key   string
	Label string
}

// RenderKeybind renders [key]label with the key highlighted.
func RenderKeybind(kb Keybind) string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.KeybindLabel)
	return styles.KeyStyle.Render("["+kb.Key+"]") + labelStyle.Render(kb.Label)
}

// KeybindWidth returns the display width of a rendered keybind.
func KeybindWidth(kb Keybind) int {
	return 2 + lipgloss.Width(kb.Key) + lipgloss.Width(kb.Label)
}
