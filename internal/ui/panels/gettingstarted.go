package panels

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/justinpbarnett/buildwall/internal/ui/border"
	"github.com/justinpbarnett/buildwall/internal/ui/styles"
	"github.com/justinpbarnett/buildwall/internal/ui/text"
)

const gettingStartedHeight = 6

// GettingStarted is the onboarding banner shown above the grid until the
// user dismisses it.
type GettingStarted struct {
	width  int
	source string
}

func NewGettingStarted(source string) *GettingStarted {
	return &GettingStarted{source: source}
}

func (g *GettingStarted) SetSize(w int) { g.width = w }

// Height is the number of rows the banner occupies.
func (g *GettingStarted) Height() int { return gettingStartedHeight }

func (g GettingStarted) Update(msg tea.Msg) (GettingStarted, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "x":
			return g, closeGettingStarted(false)
		case "n", "N":
			return g, closeGettingStarted(true)
		}
	}
	return g, nil
}

func closeGettingStarted(never bool) tea.Cmd {
	return func() tea.Msg { return GettingStartedClosedMsg{Never: never} }
}

func (g GettingStarted) View() string {
	inner := max(g.width-4, 1)
	lines := []string{
		styles.TextPrimaryStyle.Render(text.Truncate("Watching "+g.source+". Tiles are newest first; the first two rows get the full view.", inner)),
		styles.TextSecondaryStyle.Render(text.Truncate("Click a tile or press Enter to focus a build, Esc to go back.", inner)),
		styles.TextSecondaryStyle.Render(text.Truncate("Point source.path in buildwall.yaml at a snapshot file to watch your own pipelines.", inner)),
	}
	kbs := []border.Keybind{{Key: "x", Label: " close"}, {Key: "n", Label: "ever show again"}}
	body := " " + strings.Join(lines, "\n ")
	return border.RenderPanel("Getting started", body, kbs, g.width, gettingStartedHeight, true)
}
