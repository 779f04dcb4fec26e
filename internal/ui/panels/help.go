package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/buildwall/internal/ui/border"
	"github.com/justinpbarnett/buildwall/internal/ui/styles"
)

type HelpOverlay struct {
	width  int
	height int
}

func NewHelpOverlay() *HelpOverlay {
	return &HelpOverlay{
		width:  44,
		height: 18,
	}
}

func (h HelpOverlay) Update(msg tea.Msg) (HelpOverlay, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "esc", "?", "q":
			return h, func() tea.Msg { return CloseModalMsg{} }
		}
	}
	return h, nil
}

func (h HelpOverlay) View() string {
	descStyle := styles.TextPrimaryStyle
	sectionStyle := styles.TitleStyle

	kv := func(key, desc string) string {
		return "  " + styles.KeyStyle.Render(key) + "  " + descStyle.Render(desc)
	}

	var b strings.Builder
	b.WriteString(sectionStyle.Render("Navigation") + "\n")
	b.WriteString(kv("←↓↑→/hjkl", "Move between tiles") + "\n")
	b.WriteString(kv("Enter", "Focus build (or click)") + "\n")
	b.WriteString(kv("Esc/⌫", "Back to all builds") + "\n")
	b.WriteString(kv("PgUp/PgDn", "Scroll") + "\n")
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Actions") + "\n")
	b.WriteString(kv("r", "Refresh now") + "\n")
	b.WriteString(kv("y", "Copy build URL") + "\n")
	b.WriteString("\n")
	b.WriteString(sectionStyle.Render("Global") + "\n")
	b.WriteString(kv("?", "Toggle this help") + "\n")
	b.WriteString(kv("q", "Quit"))

	bottomKb := []border.Keybind{{Key: "?", Label: " close"}, {Key: "Esc", Label: " close"}}
	return border.RenderPanel("Keybinds", b.String(), bottomKb, h.width, h.height, true)
}
